package report

import (
	"fmt"
	"time"

	"time-helper/internal/domain"
)

// Options carries the rendering context for the aggregation core. It is
// passed explicitly rather than read from process-wide state so reports
// can be built and rendered under varied precisions in tests.
type Options struct {
	// Precision is the number of decimal places used at the formatting
	// boundary. Zero means the default of 2. Internal accumulation always
	// keeps full floating-point precision.
	Precision int
}

func (o Options) precision() int {
	if o.Precision <= 0 {
		return 2
	}
	return o.Precision
}

// FormatHours renders an hour value with the configured precision.
func (o Options) FormatHours(hours float64) string {
	return fmt.Sprintf("%.*f", o.precision(), hours)
}

// TagLine is a single (tag, hours, annotations) line within a day.
type TagLine struct {
	Tag         string
	Hours       float64
	Annotations []string
}

// DayHours records the hours a tag contributed on one day.
type DayHours struct {
	Date  time.Time
	Hours float64
}

// TagSummary aggregates a tag across the whole range: total hours plus the
// per-day contributions, in chronological day order. Only days with more
// than zero hours appear.
type TagSummary struct {
	Tag   string
	Total float64
	Days  []DayHours
}

// DailyReport is the aggregate for one calendar day. Lines keep the
// first-seen order of tags within the day.
type DailyReport struct {
	Date  time.Time
	Lines []TagLine
	Total float64
}

// DayName returns the weekday name, e.g. "Monday".
func (d DailyReport) DayName() string {
	return d.Date.Format("Monday")
}

// FormattedDate returns the day as YYYY-MM-DD.
func (d DailyReport) FormattedDate() string {
	return d.Date.Format("2006-01-02")
}

// RangeReport is the complete aggregated result for a requested date range.
// Days with zero qualifying entries are omitted; Summaries keeps tags in
// order of first chronological appearance across the range. Active holds
// still-running entries inside the range; they contribute to no total.
type RangeReport struct {
	Start     time.Time
	End       time.Time
	Days      []DailyReport
	Summaries []TagSummary
	Total     float64
	Active    []domain.Entry
}

// IsEmpty returns true if the report has no qualifying entries.
func (r *RangeReport) IsEmpty() bool {
	return len(r.Days) == 0
}

// RangeString returns the inclusive range as "YYYY-MM-DD to YYYY-MM-DD".
func (r *RangeReport) RangeString() string {
	return fmt.Sprintf("%s to %s", r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"))
}

// TotalFromDays recomputes the grand total by summing daily totals.
// It must agree with TotalFromTags up to floating-point tolerance.
func (r *RangeReport) TotalFromDays() float64 {
	var total float64
	for _, day := range r.Days {
		total += day.Total
	}
	return total
}

// TotalFromTags recomputes the grand total by summing tag totals.
func (r *RangeReport) TotalFromTags() float64 {
	var total float64
	for _, summary := range r.Summaries {
		total += summary.Total
	}
	return total
}
