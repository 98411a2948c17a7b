package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"time-helper/internal/api"
	"time-helper/internal/validation"
)

const defaultWeekCount = 10

// WeeksCommand handles the weeks command
type WeeksCommand struct {
	api    api.API
	out    io.Writer
	errors *ErrorHandler
}

// NewWeeksCommand creates a new weeks command handler
func NewWeeksCommand(app *App) *WeeksCommand {
	return &WeeksCommand{
		api:    app.api,
		out:    app.out,
		errors: NewErrorHandler(),
	}
}

// Execute runs the weeks command, listing recent week offsets to use with
// the report and export commands.
func (c *WeeksCommand) Execute(ctx context.Context, args []string) error {
	count := defaultWeekCount
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed <= 0 {
			ve := validation.NewValidationError()
			ve.AddInvalidValueError("count", args[0], "a positive integer")
			return c.errors.HandleSimple(ve)
		}
		count = parsed
	}

	for _, week := range c.api.ListWeeks(count, timeNow()) {
		fmt.Fprintf(c.out, "%3d  %s to %s  %s\n",
			week.Offset,
			week.Start.Format("2006-01-02"),
			week.End.Format("2006-01-02"),
			week.Description)
	}
	return nil
}
