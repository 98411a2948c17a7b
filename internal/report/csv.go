package report

import (
	"encoding/csv"
	"strings"
)

// RenderCSV produces one row per (day, tag) in the same chronological and
// first-seen order as the other formats, followed by a per-tag totals
// section and a grand-total row. Quoting follows standard CSV escaping.
func RenderCSV(rep *RangeReport, opts Options) string {
	var b strings.Builder
	w := csv.NewWriter(&b)

	w.Write([]string{"Date", "Tag", "Hours", "Annotations"})
	for _, day := range rep.Days {
		for _, line := range day.Lines {
			w.Write([]string{
				day.FormattedDate(),
				line.Tag,
				opts.FormatHours(line.Hours),
				strings.Join(line.Annotations, "; "),
			})
		}
	}
	w.Flush()
	b.WriteString("\n")

	w.Write([]string{"Tag", "Total Hours"})
	for _, summary := range rep.Summaries {
		w.Write([]string{summary.Tag, opts.FormatHours(summary.Total)})
	}
	w.Flush()
	b.WriteString("\n")

	w.Write([]string{"Grand Total", opts.FormatHours(rep.Total)})
	w.Flush()

	return b.String()
}
