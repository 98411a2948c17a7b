package report

import (
	"fmt"
	"strings"
)

// RenderMarkdown produces the same logical content as the terminal layout
// reorganized into headers and pipe-tables, with identical rounding and
// ordering. The output contains no box-drawing characters.
func RenderMarkdown(rep *RangeReport, opts Options) string {
	var b strings.Builder

	b.WriteString("# Time Report\n\n")
	fmt.Fprintf(&b, "*%s*\n\n", rep.RangeString())

	b.WriteString("## Daily Reports\n\n")
	if rep.IsEmpty() {
		b.WriteString("*No time tracked in this range*\n\n")
	}
	for _, day := range rep.Days {
		fmt.Fprintf(&b, "### %s (%s)\n\n", day.DayName(), day.FormattedDate())
		b.WriteString("| Tag | Hours | Annotations |\n")
		b.WriteString("| --- | --- | --- |\n")
		for _, line := range day.Lines {
			fmt.Fprintf(&b, "| %s | %s | %s |\n",
				escapeMarkdown(line.Tag),
				opts.FormatHours(line.Hours),
				escapeMarkdown(strings.Join(line.Annotations, "; ")))
		}
		fmt.Fprintf(&b, "\n**Daily Total: %s hours**\n\n", opts.FormatHours(day.Total))
	}

	b.WriteString("## Summary\n\n")
	if len(rep.Summaries) > 0 {
		b.WriteString("| Tag | Total Hours | Daily Breakdown |\n")
		b.WriteString("| --- | --- | --- |\n")
		for _, summary := range rep.Summaries {
			fmt.Fprintf(&b, "| %s | %s | %s |\n",
				escapeMarkdown(summary.Tag),
				opts.FormatHours(summary.Total),
				escapeMarkdown(dailyBreakdown(summary, opts)))
		}
		b.WriteString("\n")
	} else {
		b.WriteString("*No time tracked in this range*\n\n")
	}

	fmt.Fprintf(&b, "**Total Hours: %s hours**\n", opts.FormatHours(rep.Total))
	return b.String()
}

// escapeMarkdown keeps cell content from breaking the pipe-table structure.
func escapeMarkdown(value string) string {
	value = strings.ReplaceAll(value, "|", "\\|")
	return strings.ReplaceAll(value, "\n", " ")
}
