package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"time-helper/internal/errors"
	"time-helper/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// SearchOptions contains the retrieval parameters the reporting core
// requires from storage: an inclusive date range plus an optional tag
// set. An empty tag set means no tag filtering.
type SearchOptions struct {
	StartDate *time.Time
	EndDate   *time.Time
	Tags      []string
}

// Repository defines the interface for database operations
type Repository interface {
	// StoreEntries upserts a batch of normalized entries and their tag sets
	StoreEntries(ctx context.Context, entries []*TimeEntry) error

	// SearchEntries returns entries matching range ∩ tag-set, ordered by
	// (date, start time), stable across calls
	SearchEntries(ctx context.Context, opts SearchOptions) ([]*TimeEntry, error)

	// ListTagStats returns per-tag totals across the whole store
	ListTagStats(ctx context.Context) ([]*TagStat, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("enable foreign keys", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// StoreEntries upserts entries inside a single transaction. Re-exporting a
// day replaces the rows for the same (id, date) keys.
func (r *SQLiteRepository) StoreEntries(ctx context.Context, entries []*TimeEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin transaction", err)
	}

	entryQuery := `
	INSERT OR REPLACE INTO time_entries (id, date, start_time, end_time, primary_tag, annotation, hours)
	VALUES (?, ?, ?, ?, ?, ?, ?)`
	tagDelete := `DELETE FROM entry_tags WHERE entry_id = ? AND entry_date = ?`
	tagInsert := `INSERT INTO entry_tags (entry_id, entry_date, position, tag) VALUES (?, ?, ?, ?)`

	for _, entry := range entries {
		var annotation interface{}
		if entry.Annotation != "" {
			annotation = entry.Annotation
		}

		_, err = tx.ExecContext(ctx, entryQuery,
			entry.ID,
			entry.Date,
			FormatTimeForDB(entry.StartTime),
			FormatTimePtrForDB(entry.EndTime),
			entry.PrimaryTag,
			annotation,
			entry.Hours,
		)
		if err != nil {
			tx.Rollback()
			return HandleDatabaseError("store time entry", err)
		}

		if _, err = tx.ExecContext(ctx, tagDelete, entry.ID, entry.Date); err != nil {
			tx.Rollback()
			return HandleDatabaseError("replace entry tags", err)
		}
		for position, tag := range entry.Tags {
			if _, err = tx.ExecContext(ctx, tagInsert, entry.ID, entry.Date, position, tag); err != nil {
				tx.Rollback()
				return HandleDatabaseError("store entry tag", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit entries", err)
	}
	return nil
}

// SearchEntries returns entries within the date range that carry at least
// one of the requested tags. Tags are normalized at ingestion, so matching
// here is a plain equality check.
func (r *SQLiteRepository) SearchEntries(ctx context.Context, opts SearchOptions) ([]*TimeEntry, error) {
	var conditions []string
	var args []interface{}

	if opts.StartDate != nil {
		conditions = append(conditions, "time_entries.date >= ?")
		args = append(args, FormatDateForDB(*opts.StartDate))
	}
	if opts.EndDate != nil {
		conditions = append(conditions, "time_entries.date <= ?")
		args = append(args, FormatDateForDB(*opts.EndDate))
	}

	joinTags := len(opts.Tags) > 0
	if joinTags {
		placeholders := strings.Repeat("?,", len(opts.Tags))
		conditions = append(conditions, fmt.Sprintf("entry_tags.tag IN (%s)", placeholders[:len(placeholders)-1]))
		for _, tag := range opts.Tags {
			args = append(args, strings.ToLower(strings.TrimSpace(tag)))
		}
	}

	query := `
	SELECT DISTINCT time_entries.id, time_entries.date, start_time, end_time, primary_tag, annotation, hours
	FROM time_entries`
	if joinTags {
		query += " JOIN entry_tags ON entry_tags.entry_id = time_entries.id AND entry_tags.entry_date = time_entries.date"
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY time_entries.date ASC, start_time ASC, time_entries.id ASC"

	entries, err := QueryMultiple(ctx, r.db, query, ScanTimeEntries, "time entries", args...)
	if err != nil {
		return nil, err
	}

	if err := r.loadTags(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// loadTags attaches the full ordered tag list to each entry.
func (r *SQLiteRepository) loadTags(ctx context.Context, entries []*TimeEntry) error {
	if len(entries) == 0 {
		return nil
	}

	byKey := make(map[string]*TimeEntry, len(entries))
	for _, entry := range entries {
		byKey[tagKey(entry.ID, entry.Date)] = entry
	}

	query := `SELECT entry_id, entry_date, tag FROM entry_tags ORDER BY entry_id, entry_date, position`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return HandleDatabaseError("query entry tags", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var date, tag string
		if err := rows.Scan(&id, &date, &tag); err != nil {
			return HandleDatabaseError("scan entry tag", err)
		}
		if entry, ok := byKey[tagKey(id, date)]; ok {
			entry.Tags = append(entry.Tags, tag)
		}
	}
	return rows.Err()
}

func tagKey(id int64, date string) string {
	return fmt.Sprintf("%d|%s", id, date)
}

// ListTagStats returns tag totals ordered by total hours descending.
func (r *SQLiteRepository) ListTagStats(ctx context.Context) ([]*TagStat, error) {
	query := `
	SELECT primary_tag, SUM(hours) AS total_hours, MAX(date) AS last_used
	FROM time_entries
	GROUP BY primary_tag
	ORDER BY total_hours DESC, primary_tag ASC`

	return QueryMultiple(ctx, r.db, query, ScanTagStats, "tag statistics")
}
