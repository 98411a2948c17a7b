package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RenderTerminal produces the human-oriented terminal layout: a heading
// naming the range, per-day sections, a summary table and a grand total.
func RenderTerminal(rep *RangeReport, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Time Report: %s\n\n", rep.RangeString())

	if rep.IsEmpty() {
		b.WriteString("No time tracked in this range.\n\n")
	}

	for _, day := range rep.Days {
		fmt.Fprintf(&b, "%s (%s):\n", day.DayName(), day.FormattedDate())
		for _, line := range day.Lines {
			fmt.Fprintf(&b, "  %s: %s hours\n", line.Tag, opts.FormatHours(line.Hours))
			for _, annotation := range line.Annotations {
				fmt.Fprintf(&b, "    %s\n", annotation)
			}
		}
		fmt.Fprintf(&b, "Daily Total: %s hours\n\n", opts.FormatHours(day.Total))
	}

	if len(rep.Active) > 0 {
		b.WriteString("Currently running:\n")
		for _, entry := range rep.Active {
			fmt.Fprintf(&b, "  %s (since %s)\n", entry.PrimaryTag, entry.Start.Format("2006-01-02 15:04"))
		}
		b.WriteString("\n")
	}

	b.WriteString("Summary:\n")
	if len(rep.Summaries) > 0 {
		b.WriteString(summaryTable(rep, opts))
		b.WriteString("\n")
	} else {
		b.WriteString("  No time tracked.\n")
	}

	fmt.Fprintf(&b, "\nTotal Hours: %s hours\n", opts.FormatHours(rep.Total))
	return b.String()
}

// summaryTable renders the trailing Tag / Total Hours / Daily Breakdown
// table. Styling is plain padding only, keeping the output byte-identical
// across terminals.
func summaryTable(rep *RangeReport, opts Options) string {
	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return cell
		}).
		Headers("Tag", "Total Hours", "Daily Breakdown")

	for _, summary := range rep.Summaries {
		t.Row(summary.Tag, opts.FormatHours(summary.Total), dailyBreakdown(summary, opts))
	}
	return t.Render()
}

// dailyBreakdown builds the compact "Mon: 5.41, Wed: 3.22" list from a
// tag's per-day contributions, in chronological day order.
func dailyBreakdown(summary TagSummary, opts Options) string {
	if len(summary.Days) == 0 {
		return "No hours"
	}
	parts := make([]string, 0, len(summary.Days))
	for _, day := range summary.Days {
		parts = append(parts, fmt.Sprintf("%s: %s", day.Date.Format("Mon"), opts.FormatHours(day.Hours)))
	}
	return strings.Join(parts, ", ")
}
