package domain

import (
	"strings"
	"time"

	"time-helper/internal/errors"
)

// UntaggedTag is the sentinel tag assigned to entries recorded without tags.
const UntaggedTag = "untagged"

// Entry is the normalized form of a RawEntry: timestamps converted to the
// local time zone, tags lowercased and de-duplicated, day bucket derived
// from the local start time. Entries are never mutated after creation.
type Entry struct {
	ID         int64
	Start      time.Time
	End        *time.Time // nil for entries that are still running
	Tags       []string
	PrimaryTag string
	Annotation string
	Date       time.Time // local midnight of the day the entry buckets into
}

// IsOpen returns true if the entry is still running (no end time).
func (e Entry) IsOpen() bool {
	return e.End == nil
}

// DurationHours returns the entry duration in hours. Open entries
// contribute zero; they are excluded from all totals.
func (e Entry) DurationHours() float64 {
	if e.End == nil {
		return 0
	}
	return e.End.Sub(e.Start).Hours()
}

// DayKey returns the entry's local calendar day as YYYY-MM-DD.
func (e Entry) DayKey() string {
	return e.Date.Format("2006-01-02")
}

// Normalize validates a raw entry and converts it into an Entry in the
// given location. It fails with a validation error for an unparsable
// timestamp or an end time before the start time.
func Normalize(raw RawEntry, loc *time.Location) (Entry, error) {
	if loc == nil {
		loc = time.Local
	}

	start, err := ParseExportTime(raw.Start)
	if err != nil {
		return Entry{}, err
	}
	localStart := start.In(loc)

	var localEnd *time.Time
	if !raw.IsOpen() {
		end, err := ParseExportTime(raw.End)
		if err != nil {
			return Entry{}, err
		}
		if end.Before(start) {
			return Entry{}, errors.NewValidationError("entry end time precedes start time", nil).
				WithContext("start", raw.Start).
				WithContext("end", raw.End)
		}
		e := end.In(loc)
		localEnd = &e
	}

	tags := NormalizeTags(raw.Tags)

	return Entry{
		ID:         raw.ID,
		Start:      localStart,
		End:        localEnd,
		Tags:       tags,
		PrimaryTag: tags[0],
		Annotation: raw.Annotation,
		Date:       DayOf(localStart),
	}, nil
}

// NormalizeAll normalizes a batch of raw entries, failing on the first
// invalid record. A single bad entry indicates a data-integrity issue,
// so the whole batch is rejected rather than silently filtered.
func NormalizeAll(raws []RawEntry, loc *time.Location) ([]Entry, error) {
	entries := make([]Entry, 0, len(raws))
	for _, raw := range raws {
		entry, err := Normalize(raw, loc)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// NormalizeTags lowercases and de-duplicates a tag list, preserving the
// original order. An empty list yields the untagged sentinel.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return []string{UntaggedTag}
	}
	seen := make(map[string]bool, len(tags))
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		lowered := strings.ToLower(strings.TrimSpace(tag))
		if lowered == "" || seen[lowered] {
			continue
		}
		seen[lowered] = true
		normalized = append(normalized, lowered)
	}
	if len(normalized) == 0 {
		return []string{UntaggedTag}
	}
	return normalized
}

// FilterByTags returns the entries whose tag set intersects the requested
// tags. An entry qualifies if it carries at least one requested tag; an
// empty filter matches everything. Matching is case-insensitive.
func FilterByTags(entries []Entry, tags []string) []Entry {
	if len(tags) == 0 {
		return entries
	}
	wanted := make(map[string]bool, len(tags))
	for _, tag := range tags {
		wanted[strings.ToLower(strings.TrimSpace(tag))] = true
	}

	filtered := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		for _, tag := range entry.Tags {
			if wanted[tag] {
				filtered = append(filtered, entry)
				break
			}
		}
	}
	return filtered
}

// DedupeByID removes entries sharing an ID with an earlier entry. Day-by-day
// export can report the same entry twice when it spans midnight.
func DedupeByID(entries []Entry) []Entry {
	seen := make(map[int64]bool, len(entries))
	unique := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if seen[entry.ID] {
			continue
		}
		seen[entry.ID] = true
		unique = append(unique, entry)
	}
	return unique
}

// DayOf truncates a time to local midnight in its own location.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
