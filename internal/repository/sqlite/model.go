package sqlite

import "time"

// TimeEntry is the database representation of a normalized time entry.
// Entries are keyed by the composite (ID, Date): day-by-day export can
// surface the same engine ID on two dates when an entry spans midnight.
type TimeEntry struct {
	ID         int64
	Date       string // local calendar day, YYYY-MM-DD
	StartTime  time.Time
	EndTime    *time.Time // nil while the entry is still running
	PrimaryTag string
	Tags       []string // full normalized tag list, original order
	Annotation string
	Hours      float64
}

// TagStat is an aggregate row for one tag across the whole store.
type TagStat struct {
	Tag        string
	TotalHours float64
	LastUsed   *time.Time
}
