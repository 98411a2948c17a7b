package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func testEntry(id int64, date string, startHour int, hours float64, tags []string, annotation string) *TimeEntry {
	start := mustParseDate(date).Add(time.Duration(startHour) * time.Hour)
	end := start.Add(time.Duration(hours * float64(time.Hour)))
	primary := "untagged"
	if len(tags) > 0 {
		primary = tags[0]
	} else {
		tags = []string{primary}
	}
	return &TimeEntry{
		ID:         id,
		Date:       date,
		StartTime:  start,
		EndTime:    &end,
		PrimaryTag: primary,
		Tags:       tags,
		Annotation: annotation,
		Hours:      hours,
	}
}

func mustParseDate(date string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNew_RunsMigrations(t *testing.T) {
	repo := newTestRepository(t)

	var count int
	err := repo.db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, 2)
}

func TestStoreEntries_AndSearch(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	entries := []*TimeEntry{
		testEntry(1, "2026-01-12", 9, 5.0, []string{"clientname", "billing"}, "invoice review"),
		testEntry(2, "2026-01-12", 15, 1.0, nil, ""),
		testEntry(3, "2026-01-14", 9, 3.25, []string{"clientname"}, ""),
	}
	require.NoError(t, repo.StoreEntries(ctx, entries))

	start := mustParseDate("2026-01-12")
	end := mustParseDate("2026-01-18")
	found, err := repo.SearchEntries(ctx, SearchOptions{StartDate: &start, EndDate: &end})

	require.NoError(t, err)
	require.Len(t, found, 3)
	assert.Equal(t, int64(1), found[0].ID)
	assert.Equal(t, []string{"clientname", "billing"}, found[0].Tags)
	assert.Equal(t, "invoice review", found[0].Annotation)
	assert.InDelta(t, 5.0, found[0].Hours, 1e-9)
	assert.Equal(t, []string{"untagged"}, found[1].Tags)
	assert.Equal(t, "2026-01-14", found[2].Date)
}

func TestStoreEntries_UpsertReplacesExisting(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	original := testEntry(1, "2026-01-12", 9, 2.0, []string{"work", "meeting"}, "")
	require.NoError(t, repo.StoreEntries(ctx, []*TimeEntry{original}))

	updated := testEntry(1, "2026-01-12", 9, 3.0, []string{"work"}, "extended")
	require.NoError(t, repo.StoreEntries(ctx, []*TimeEntry{updated}))

	found, err := repo.SearchEntries(ctx, SearchOptions{})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.InDelta(t, 3.0, found[0].Hours, 1e-9)
	assert.Equal(t, []string{"work"}, found[0].Tags)
	assert.Equal(t, "extended", found[0].Annotation)
}

func TestStoreEntries_SameIDOnTwoDates(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	// An entry spanning midnight shows up under both dates with one ID.
	entries := []*TimeEntry{
		testEntry(1, "2026-01-12", 23, 1.0, []string{"work"}, ""),
		testEntry(1, "2026-01-13", 0, 1.0, []string{"work"}, ""),
	}
	require.NoError(t, repo.StoreEntries(ctx, entries))

	found, err := repo.SearchEntries(ctx, SearchOptions{})
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestSearchEntries_DateRange(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	entries := []*TimeEntry{
		testEntry(1, "2026-01-05", 9, 1.0, []string{"work"}, ""),
		testEntry(2, "2026-01-12", 9, 1.0, []string{"work"}, ""),
		testEntry(3, "2026-01-19", 9, 1.0, []string{"work"}, ""),
	}
	require.NoError(t, repo.StoreEntries(ctx, entries))

	start := mustParseDate("2026-01-12")
	end := mustParseDate("2026-01-18")
	found, err := repo.SearchEntries(ctx, SearchOptions{StartDate: &start, EndDate: &end})

	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, int64(2), found[0].ID)
}

func TestSearchEntries_TagFilter(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	entries := []*TimeEntry{
		testEntry(1, "2026-01-12", 9, 1.0, []string{"work", "meeting"}, ""),
		testEntry(2, "2026-01-12", 11, 1.0, []string{"personal"}, ""),
		testEntry(3, "2026-01-13", 9, 1.0, []string{"meeting"}, ""),
	}
	require.NoError(t, repo.StoreEntries(ctx, entries))

	tests := []struct {
		name        string
		tags        []string
		expectedIDs []int64
	}{
		{name: "secondary tag matches", tags: []string{"meeting"}, expectedIDs: []int64{1, 3}},
		{name: "multiple tags union entries", tags: []string{"personal", "work"}, expectedIDs: []int64{1, 2}},
		{name: "filter is case-insensitive", tags: []string{"MEETING"}, expectedIDs: []int64{1, 3}},
		{name: "no matches", tags: []string{"missing"}, expectedIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := repo.SearchEntries(ctx, SearchOptions{Tags: tt.tags})
			require.NoError(t, err)

			var ids []int64
			for _, entry := range found {
				ids = append(ids, entry.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestSearchEntries_OrderedByDateThenStart(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	entries := []*TimeEntry{
		testEntry(3, "2026-01-13", 9, 1.0, []string{"work"}, ""),
		testEntry(2, "2026-01-12", 14, 1.0, []string{"work"}, ""),
		testEntry(1, "2026-01-12", 9, 1.0, []string{"work"}, ""),
	}
	require.NoError(t, repo.StoreEntries(ctx, entries))

	found, err := repo.SearchEntries(ctx, SearchOptions{})
	require.NoError(t, err)
	require.Len(t, found, 3)
	assert.Equal(t, int64(1), found[0].ID)
	assert.Equal(t, int64(2), found[1].ID)
	assert.Equal(t, int64(3), found[2].ID)
}

func TestSearchEntries_OpenEntryRoundTrips(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	open := testEntry(1, "2026-01-12", 9, 0, []string{"work"}, "")
	open.EndTime = nil
	require.NoError(t, repo.StoreEntries(ctx, []*TimeEntry{open}))

	found, err := repo.SearchEntries(ctx, SearchOptions{})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Nil(t, found[0].EndTime)
	assert.Zero(t, found[0].Hours)
}

func TestListTagStats(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	entries := []*TimeEntry{
		testEntry(1, "2026-01-12", 9, 5.0, []string{"clientname"}, ""),
		testEntry(2, "2026-01-13", 9, 2.0, []string{"meeting"}, ""),
		testEntry(3, "2026-01-14", 9, 3.0, []string{"clientname"}, ""),
	}
	require.NoError(t, repo.StoreEntries(ctx, entries))

	stats, err := repo.ListTagStats(ctx)

	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "clientname", stats[0].Tag)
	assert.InDelta(t, 8.0, stats[0].TotalHours, 1e-9)
	require.NotNil(t, stats[0].LastUsed)
	assert.Equal(t, "2026-01-14", stats[0].LastUsed.Format("2006-01-02"))
	assert.Equal(t, "meeting", stats[1].Tag)
}

func TestListTagStats_EmptyStore(t *testing.T) {
	repo := newTestRepository(t)

	stats, err := repo.ListTagStats(context.Background())

	require.NoError(t, err)
	assert.Empty(t, stats)
}
