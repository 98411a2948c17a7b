package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"time-helper/internal/api"
	"time-helper/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(apiInstance api.API, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		app:    NewApp(apiInstance, cfg),
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "th",
		Short: "A command-line time reporting tool",
		Long: `Time Helper (th) builds time reports from timewarrior data.

FEATURES:
  • Weekly and custom date range reports with daily and per-tag totals
  • Terminal, Markdown and CSV output formats
  • Tag filtering across reports
  • Local SQLite cache so past weeks render without the engine
  • Fully configurable via environment variables and command-line flags

EXAMPLES:
  th report                                # Report for the current week
  th report -1                             # Report for last week
  th report --start 2026-01-12 --end 2026-01-18
  th report --tags work,meeting            # Only entries carrying those tags
  th report --format markdown > report.md  # Markdown output
  th report --format csv > report.csv      # CSV output
  th export -1                             # Cache last week's entries
  th tags                                  # List known tags with totals
  th weeks                                 # List recent week offsets

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Database Configuration:
    TH_DB_DIR                              Database directory (default: ~/.time-helper)
    TH_DB_FILENAME                         Database filename (default: time_helper.db)
    TH_DB_QUERY_TIMEOUT                    Query timeout (default: 30s)

  Report Configuration:
    TH_REPORT_TIMEZONE                     IANA timezone for day bucketing (default: system local)
    TH_REPORT_PRECISION                    Decimal places for hours (default: 2)
    TH_REPORT_FORMAT                       Default output format (default: terminal)

  Engine Configuration:
    TH_ENGINE_BINARY                       Timewarrior binary (default: timew)
    TH_ENGINE_TIMEOUT                      Engine call timeout (default: 30s)

  Application Configuration:
    TH_APP_TIMEOUT                         Application timeout (default: 60s)
    TH_APP_VERBOSE                         Enable verbose output (default: false)

GETTING HELP:
  th [command] --help                      # Get help for any specific command
  th completion bash                       # Generate bash completion script
  th completion zsh                        # Generate zsh completion script`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Database directory (overrides TH_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TH_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TH_DB_QUERY_TIMEOUT)")

	flags.String("timezone", "", "IANA timezone for day bucketing (overrides TH_REPORT_TIMEZONE)")
	flags.Int("precision", 0, "Decimal places for hours (overrides TH_REPORT_PRECISION)")

	flags.String("engine-binary", "", "Timewarrior binary (overrides TH_ENGINE_BINARY)")
	flags.Duration("engine-timeout", 0, "Engine call timeout (overrides TH_ENGINE_TIMEOUT)")

	flags.Duration("app-timeout", 0, "Application timeout (overrides TH_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TH_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	reportOpts := ReportOptions{}
	reportCmd := &cobra.Command{
		Use:   "report [week-offset]",
		Short: "Build a time report",
		Long: `Build a time report for a week or a custom date range.

The optional positional argument selects a week relative to the current
one: 0 is the current week, -1 last week. The --start and --end flags
select an explicit inclusive date range instead and take precedence.

Examples:
  th report                  # Current week
  th report -2               # Two weeks ago
  th report --start 2026-01-12 --end 2026-01-18
  th report --tags work --format markdown`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewReportCommand(r.app).Execute(ctx, args, reportOpts)
		},
	}
	reportFlags := reportCmd.Flags()
	reportFlags.StringVar(&reportOpts.Start, "start", "", "Range start date (YYYY-MM-DD)")
	reportFlags.StringVar(&reportOpts.End, "end", "", "Range end date (YYYY-MM-DD)")
	reportFlags.StringSliceVar(&reportOpts.Tags, "tags", nil, "Only include entries carrying one of these tags")
	reportFlags.StringVar(&reportOpts.Format, "format", "", "Output format: terminal, markdown or csv (overrides TH_REPORT_FORMAT)")
	reportFlags.BoolVar(&reportOpts.NoCache, "no-cache", false, "Bypass the local cache and query the engine directly")

	exportCmd := &cobra.Command{
		Use:   "export [week-offset]",
		Short: "Fetch a week from the engine into the local cache",
		Long: `Fetch entries for a week from timewarrior and store them locally.

Examples:
  th export        # Current week
  th export -1     # Last week`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewExportCommand(r.app).Execute(ctx, args)
		},
	}

	tagsCmd := &cobra.Command{
		Use:   "tags",
		Short: "List known tags with their total hours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewTagsCommand(r.app).Execute(ctx, args)
		},
	}

	weeksCmd := &cobra.Command{
		Use:   "weeks [count]",
		Short: "List recent week offsets",
		Long:  "List recent weeks with the offsets accepted by the report and export commands.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewWeeksCommand(r.app).Execute(ctx, args)
		},
	}

	r.cmd.AddCommand(
		reportCmd,
		exportCmd,
		tagsCmd,
		weeksCmd,
	)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}
	if queryTimeout, _ := flags.GetDuration("db-query-timeout"); queryTimeout > 0 {
		r.config.Database.QueryTimeout = queryTimeout
	}

	if timezone, _ := flags.GetString("timezone"); timezone != "" {
		r.config.Report.Timezone = timezone
	}
	if precision, _ := flags.GetInt("precision"); precision > 0 {
		r.config.Report.Precision = precision
	}

	if engineBinary, _ := flags.GetString("engine-binary"); engineBinary != "" {
		r.config.Engine.Binary = engineBinary
	}
	if engineTimeout, _ := flags.GetDuration("engine-timeout"); engineTimeout > 0 {
		r.config.Engine.Timeout = engineTimeout
	}

	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}
