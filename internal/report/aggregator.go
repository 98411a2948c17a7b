package report

import (
	"sort"
	"time"

	"time-helper/internal/domain"
	"time-helper/internal/errors"
)

// BuildReport aggregates normalized entries into a RangeReport for the
// inclusive date range [start, end]. Entries bucketing outside the range
// are ignored. Open entries are surfaced in the Active sidecar and
// contribute nothing to any total. Entries with identical start times
// keep their original ingestion order, so output is deterministic
// regardless of storage iteration order.
func BuildReport(entries []domain.Entry, start, end time.Time) (*RangeReport, error) {
	rangeStart := domain.DayOf(start)
	rangeEnd := domain.DayOf(end)
	if rangeEnd.Before(rangeStart) {
		return nil, errors.NewValidationError("report range end precedes start", nil).
			WithContext("start", rangeStart.Format("2006-01-02")).
			WithContext("end", rangeEnd.Format("2006-01-02"))
	}

	ordered := make([]domain.Entry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start.Before(ordered[j].Start)
	})

	rep := &RangeReport{
		Start: rangeStart,
		End:   rangeEnd,
	}

	dayIndex := make(map[string]int)
	lineIndex := make(map[string]map[string]int)
	tagIndex := make(map[string]int)

	for _, entry := range ordered {
		if entry.Date.Before(rangeStart) || entry.Date.After(rangeEnd) {
			continue
		}
		if entry.IsOpen() {
			rep.Active = append(rep.Active, entry)
			continue
		}

		dayKey := entry.DayKey()
		di, seenDay := dayIndex[dayKey]
		if !seenDay {
			di = len(rep.Days)
			dayIndex[dayKey] = di
			lineIndex[dayKey] = make(map[string]int)
			rep.Days = append(rep.Days, DailyReport{Date: entry.Date})
		}
		day := &rep.Days[di]

		hours := entry.DurationHours()
		tag := entry.PrimaryTag

		li, seenLine := lineIndex[dayKey][tag]
		if !seenLine {
			li = len(day.Lines)
			lineIndex[dayKey][tag] = li
			day.Lines = append(day.Lines, TagLine{Tag: tag})
		}
		line := &day.Lines[li]
		line.Hours += hours
		if entry.Annotation != "" {
			line.Annotations = appendUnique(line.Annotations, entry.Annotation)
		}
		day.Total += hours

		ti, seenTag := tagIndex[tag]
		if !seenTag {
			ti = len(rep.Summaries)
			tagIndex[tag] = ti
			rep.Summaries = append(rep.Summaries, TagSummary{Tag: tag})
		}
		summary := &rep.Summaries[ti]
		summary.Total += hours
		if hours > 0 {
			summary.Days = addDayHours(summary.Days, entry.Date, hours)
		}
	}

	rep.Total = rep.TotalFromTags()
	return rep, nil
}

// addDayHours accumulates hours into the contribution slice for a day,
// keeping chronological order. Entries arrive sorted by start time, so a
// new day is always appended at the end.
func addDayHours(days []DayHours, date time.Time, hours float64) []DayHours {
	for i := range days {
		if days[i].Date.Equal(date) {
			days[i].Hours += hours
			return days
		}
	}
	return append(days, DayHours{Date: date, Hours: hours})
}

func appendUnique(values []string, value string) []string {
	for _, existing := range values {
		if existing == value {
			return values
		}
	}
	return append(values, value)
}
