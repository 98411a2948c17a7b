package sqlite

import (
	"database/sql"
)

// ScanTimeEntry scans a single time entry from a database row. Times are
// stored as RFC3339 text, so they are scanned as strings and parsed.
func ScanTimeEntry(scanner Scanner) (*TimeEntry, error) {
	entry := &TimeEntry{}
	var startTime string
	var endTime, annotation sql.NullString

	err := scanner.Scan(
		&entry.ID,
		&entry.Date,
		&startTime,
		&endTime,
		&entry.PrimaryTag,
		&annotation,
		&entry.Hours,
	)
	if err != nil {
		return nil, err
	}

	entry.StartTime, err = ParseTimeFromDB(startTime)
	if err != nil {
		return nil, err
	}
	if endTime.Valid {
		end, err := ParseTimeFromDB(endTime.String)
		if err != nil {
			return nil, err
		}
		entry.EndTime = &end
	}
	if annotation.Valid {
		entry.Annotation = annotation.String
	}

	return entry, nil
}

// ScanTimeEntries scans multiple time entries from database rows
func ScanTimeEntries(rows Rows) ([]*TimeEntry, error) {
	var entries []*TimeEntry
	for rows.Next() {
		entry, err := ScanTimeEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// ScanTagStat scans a single tag statistics row
func ScanTagStat(scanner Scanner) (*TagStat, error) {
	stat := &TagStat{}
	var lastUsed sql.NullString

	if err := scanner.Scan(&stat.Tag, &stat.TotalHours, &lastUsed); err != nil {
		return nil, err
	}

	if lastUsed.Valid {
		t, err := ParseTimeFromDB(lastUsed.String + "T00:00:00Z")
		if err != nil {
			return nil, err
		}
		stat.LastUsed = &t
	}

	return stat, nil
}

// ScanTagStats scans multiple tag statistics rows
func ScanTagStats(rows Rows) ([]*TagStat, error) {
	var stats []*TagStat
	for rows.Next() {
		stat, err := ScanTagStat(rows)
		if err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
