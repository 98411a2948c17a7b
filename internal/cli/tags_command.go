package cli

import (
	"context"
	"fmt"
	"io"

	"time-helper/internal/api"
)

// TagsCommand handles the tags command
type TagsCommand struct {
	api    api.API
	out    io.Writer
	errors *ErrorHandler
}

// NewTagsCommand creates a new tags command handler
func NewTagsCommand(app *App) *TagsCommand {
	return &TagsCommand{
		api:    app.api,
		out:    app.out,
		errors: NewErrorHandler(),
	}
}

// Execute runs the tags command, listing stored tags with their totals.
func (c *TagsCommand) Execute(ctx context.Context, args []string) error {
	stats, err := c.api.ListTags(ctx)
	if err != nil {
		return c.errors.Handle("list tags", err)
	}

	if len(stats) == 0 {
		fmt.Fprintln(c.out, "No tags found")
		return nil
	}

	for _, stat := range stats {
		lastUsed := "never"
		if stat.LastUsed != nil {
			lastUsed = stat.LastUsed.Format("2006-01-02")
		}
		fmt.Fprintf(c.out, "%s: %.2f hours (last used %s)\n", stat.Tag, stat.TotalHours, lastUsed)
	}
	return nil
}
