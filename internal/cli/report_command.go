package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"time-helper/internal/api"
	"time-helper/internal/config"
	"time-helper/internal/domain"
	"time-helper/internal/report"
	"time-helper/internal/validation"
)

// ReportOptions carries the flag values for the report command.
type ReportOptions struct {
	Start   string
	End     string
	Tags    []string
	Format  string
	NoCache bool
}

// ReportCommand handles the report command
type ReportCommand struct {
	api    api.API
	config *config.Config
	out    io.Writer
	errors *ErrorHandler
}

// NewReportCommand creates a new report command handler
func NewReportCommand(app *App) *ReportCommand {
	return &ReportCommand{
		api:    app.api,
		config: app.config,
		out:    app.out,
		errors: NewErrorHandler(),
	}
}

// Execute runs the report command. The optional positional argument is a
// week offset such as "-1" for last week; explicit --start/--end flags
// take precedence over it.
func (c *ReportCommand) Execute(ctx context.Context, args []string, opts ReportOptions) error {
	start, end, err := c.resolveRange(args, opts)
	if err != nil {
		return c.errors.HandleSimple(err)
	}

	formatValue := opts.Format
	if formatValue == "" {
		formatValue = c.config.Report.DefaultFormat
	}
	format, err := report.ParseFormat(formatValue)
	if err != nil {
		return c.errors.HandleSimple(err)
	}

	output, err := c.api.GenerateReport(ctx, api.ReportRequest{
		StartDate: start,
		EndDate:   end,
		Tags:      splitTags(opts.Tags),
		Format:    format,
		UseCache:  !opts.NoCache,
	})
	if err != nil {
		return c.errors.Handle("generate report", err)
	}

	fmt.Fprint(c.out, output)
	return nil
}

// resolveRange turns flags and the optional week offset into an inclusive
// date range. Without any input it covers the current week.
func (c *ReportCommand) resolveRange(args []string, opts ReportOptions) (time.Time, time.Time, error) {
	loc, err := c.config.Location()
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	validator := validation.NewReportRequestValidator()
	if opts.Start != "" || opts.End != "" {
		if opts.Start == "" || opts.End == "" {
			ve := validation.NewValidationError()
			ve.AddInvalidValueError("date range", opts.Start+".."+opts.End, "both --start and --end must be provided together")
			return time.Time{}, time.Time{}, ve
		}
		start, err := validator.ParseDate("start", opts.Start, loc)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end, err := validator.ParseDate("end", opts.End, loc)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return start, end, nil
	}

	offset := 0
	if len(args) > 0 {
		parsed, ok := parseWeekOffset(args[0])
		if !ok {
			ve := validation.NewValidationError()
			ve.AddInvalidFormatError("week offset", args[0], "a non-positive integer such as 0 or -1")
			return time.Time{}, time.Time{}, ve
		}
		offset = parsed
	}

	start := domain.WeekStartForOffset(offset, timeNow().In(loc))
	return start, start.AddDate(0, 0, 6), nil
}

// splitTags flattens repeated and comma separated --tags values.
func splitTags(values []string) []string {
	var tags []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				tags = append(tags, part)
			}
		}
	}
	return tags
}
