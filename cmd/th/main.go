package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"time-helper/internal/api"
	"time-helper/internal/cli"
	"time-helper/internal/config"
	"time-helper/internal/engine"
	"time-helper/internal/report"
	"time-helper/internal/repository/sqlite"
)

func main() {
	// Optional .env file next to the binary or in the working directory
	_ = godotenv.Load()

	cfg := config.Load()

	dbPath := cfg.GetDatabasePath()
	if err := os.MkdirAll(filepath.Dir(dbPath), os.FileMode(cfg.Database.DirPermissions)); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating database directory: %v\n", err)
		os.Exit(1)
	}

	repo, err := sqlite.New(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing database: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	loc, err := cfg.Location()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading timezone: %v\n", err)
		os.Exit(1)
	}

	exporter := engine.NewTimew(cfg.Engine.Binary)
	apiInstance := api.New(repo, exporter, loc, report.Options{Precision: cfg.Report.Precision})

	root := cli.NewRootCommand(apiInstance, cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
