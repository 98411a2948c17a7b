package cli

import (
	"io"
	"os"
	"regexp"
	"strconv"
	"time"

	"time-helper/internal/api"
	"time-helper/internal/config"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App bundles the dependencies shared by all command handlers.
type App struct {
	api    api.API
	config *config.Config
	out    io.Writer
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, cfg *config.Config) *App {
	return &App{
		api:    apiInstance,
		config: cfg,
		out:    os.Stdout,
	}
}

// SetOutput redirects command output, used by tests.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

var offsetPattern = regexp.MustCompile(`^-?\d+$`)

// parseWeekOffset parses a week offset argument such as "0", "-1" or "-3".
// Positive values are rejected since future weeks have no tracked time.
func parseWeekOffset(arg string) (int, bool) {
	if !offsetPattern.MatchString(arg) {
		return 0, false
	}
	offset, err := strconv.Atoi(arg)
	if err != nil || offset > 0 {
		return 0, false
	}
	return offset, true
}
