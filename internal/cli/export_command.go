package cli

import (
	"context"
	"fmt"
	"io"

	"time-helper/internal/api"
	"time-helper/internal/config"
	"time-helper/internal/domain"
	"time-helper/internal/validation"
)

// ExportCommand handles the export command
type ExportCommand struct {
	api    api.API
	config *config.Config
	out    io.Writer
	errors *ErrorHandler
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{
		api:    app.api,
		config: app.config,
		out:    app.out,
		errors: NewErrorHandler(),
	}
}

// Execute runs the export command for the week selected by the optional
// offset argument, defaulting to the current week.
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	loc, err := c.config.Location()
	if err != nil {
		return c.errors.HandleSimple(err)
	}

	offset := 0
	if len(args) > 0 {
		parsed, ok := parseWeekOffset(args[0])
		if !ok {
			ve := validation.NewValidationError()
			ve.AddInvalidFormatError("week offset", args[0], "a non-positive integer such as 0 or -1")
			return c.errors.HandleSimple(ve)
		}
		offset = parsed
	}

	start := domain.WeekStartForOffset(offset, timeNow().In(loc))
	end := start.AddDate(0, 0, 6)

	count, err := c.api.ExportRange(ctx, start, end)
	if err != nil {
		return c.errors.Handle("export entries", err)
	}

	if count == 0 {
		fmt.Fprintf(c.out, "No entries found for %s\n", domain.FormatWeekRange(start))
		return nil
	}
	fmt.Fprintf(c.out, "Stored %d entries for %s\n", count, domain.FormatWeekRange(start))
	return nil
}
