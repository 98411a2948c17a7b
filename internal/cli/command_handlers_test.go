package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"time-helper/internal/repository/sqlite"
)

func TestExportCommand(t *testing.T) {
	defer fixedNow(t)()
	mock := &mockAPI{exportCount: 12}
	app, buf := newTestApp(mock)

	err := NewExportCommand(app).Execute(context.Background(), []string{"-1"})

	require.NoError(t, err)
	assert.Equal(t, "Stored 12 entries for 2026-01-05 to 2026-01-11\n", buf.String())
	require.Len(t, mock.exportRanges, 1)
	assert.Equal(t, "2026-01-05", mock.exportRanges[0][0].Format("2006-01-02"))
	assert.Equal(t, "2026-01-11", mock.exportRanges[0][1].Format("2006-01-02"))
}

func TestExportCommand_NoData(t *testing.T) {
	defer fixedNow(t)()
	app, buf := newTestApp(&mockAPI{exportCount: 0})

	err := NewExportCommand(app).Execute(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, "No entries found for 2026-01-12 to 2026-01-18\n", buf.String())
}

func TestExportCommand_InvalidOffset(t *testing.T) {
	defer fixedNow(t)()
	app, _ := newTestApp(&mockAPI{})

	err := NewExportCommand(app).Execute(context.Background(), []string{"1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "week offset")
}

func TestTagsCommand(t *testing.T) {
	lastUsed := time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC)
	mock := &mockAPI{
		tagStats: []*sqlite.TagStat{
			{Tag: "clientname", TotalHours: 8.216, LastUsed: &lastUsed},
			{Tag: "meeting", TotalHours: 2},
		},
	}
	app, buf := newTestApp(mock)

	err := NewTagsCommand(app).Execute(context.Background(), nil)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "clientname: 8.22 hours (last used 2026-01-14)\n")
	assert.Contains(t, buf.String(), "meeting: 2.00 hours (last used never)\n")
}

func TestTagsCommand_Empty(t *testing.T) {
	app, buf := newTestApp(&mockAPI{})

	err := NewTagsCommand(app).Execute(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, "No tags found\n", buf.String())
}

func TestWeeksCommand(t *testing.T) {
	defer fixedNow(t)()
	app, buf := newTestApp(&mockAPI{})

	err := NewWeeksCommand(app).Execute(context.Background(), []string{"2"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "  0  2026-01-12 to 2026-01-18")
	assert.Contains(t, buf.String(), " -1  2026-01-05 to 2026-01-11")
}

func TestWeeksCommand_InvalidCount(t *testing.T) {
	app, _ := newTestApp(&mockAPI{})

	err := NewWeeksCommand(app).Execute(context.Background(), []string{"zero"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "count")
}

func TestParseWeekOffset(t *testing.T) {
	tests := []struct {
		name     string
		arg      string
		expected int
		ok       bool
	}{
		{name: "current week", arg: "0", expected: 0, ok: true},
		{name: "last week", arg: "-1", expected: -1, ok: true},
		{name: "future week rejected", arg: "2", ok: false},
		{name: "not a number", arg: "last", ok: false},
		{name: "empty", arg: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, ok := parseWeekOffset(tt.arg)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, offset)
			}
		})
	}
}
