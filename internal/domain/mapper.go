package domain

import (
	"time"

	"time-helper/internal/repository/sqlite"
)

// EntryMapper handles conversion between domain and database entry models.
// The location determines which local time zone database timestamps are
// surfaced in; day keys are already local at ingestion and pass through.
type EntryMapper struct {
	loc *time.Location
}

// NewEntryMapper creates a new EntryMapper for the given location.
func NewEntryMapper(loc *time.Location) *EntryMapper {
	if loc == nil {
		loc = time.Local
	}
	return &EntryMapper{loc: loc}
}

// ToDatabase converts a domain Entry to a database TimeEntry.
func (m *EntryMapper) ToDatabase(entry Entry) *sqlite.TimeEntry {
	return &sqlite.TimeEntry{
		ID:         entry.ID,
		Date:       entry.DayKey(),
		StartTime:  entry.Start,
		EndTime:    entry.End,
		PrimaryTag: entry.PrimaryTag,
		Tags:       entry.Tags,
		Annotation: entry.Annotation,
		Hours:      entry.DurationHours(),
	}
}

// FromDatabase converts a database TimeEntry to a domain Entry.
func (m *EntryMapper) FromDatabase(dbEntry *sqlite.TimeEntry) Entry {
	date, err := time.ParseInLocation("2006-01-02", dbEntry.Date, m.loc)
	if err != nil {
		date = DayOf(dbEntry.StartTime.In(m.loc))
	}

	var end *time.Time
	if dbEntry.EndTime != nil {
		e := dbEntry.EndTime.In(m.loc)
		end = &e
	}

	tags := dbEntry.Tags
	if len(tags) == 0 {
		tags = []string{dbEntry.PrimaryTag}
	}

	return Entry{
		ID:         dbEntry.ID,
		Start:      dbEntry.StartTime.In(m.loc),
		End:        end,
		Tags:       tags,
		PrimaryTag: dbEntry.PrimaryTag,
		Annotation: dbEntry.Annotation,
		Date:       date,
	}
}

// ToDatabaseSlice converts a slice of domain Entries to database TimeEntries.
func (m *EntryMapper) ToDatabaseSlice(entries []Entry) []*sqlite.TimeEntry {
	dbEntries := make([]*sqlite.TimeEntry, len(entries))
	for i, entry := range entries {
		dbEntries[i] = m.ToDatabase(entry)
	}
	return dbEntries
}

// FromDatabaseSlice converts a slice of database TimeEntries to domain Entries.
func (m *EntryMapper) FromDatabaseSlice(dbEntries []*sqlite.TimeEntry) []Entry {
	entries := make([]Entry, len(dbEntries))
	for i, dbEntry := range dbEntries {
		entries[i] = m.FromDatabase(dbEntry)
	}
	return entries
}
