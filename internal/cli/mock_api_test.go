package cli

import (
	"context"
	"time"

	"time-helper/internal/api"
	"time-helper/internal/report"
	"time-helper/internal/repository/sqlite"
)

// mockAPI implements the api.API interface for testing
type mockAPI struct {
	generateOutput   string
	generateErr      error
	generateRequests []api.ReportRequest

	exportCount  int
	exportErr    error
	exportRanges [][2]time.Time

	tagStats []*sqlite.TagStat
	tagsErr  error
}

func (m *mockAPI) GenerateReport(ctx context.Context, req api.ReportRequest) (string, error) {
	m.generateRequests = append(m.generateRequests, req)
	return m.generateOutput, m.generateErr
}

func (m *mockAPI) BuildRangeReport(ctx context.Context, req api.ReportRequest) (*report.RangeReport, error) {
	return nil, nil
}

func (m *mockAPI) ExportRange(ctx context.Context, start, end time.Time) (int, error) {
	m.exportRanges = append(m.exportRanges, [2]time.Time{start, end})
	return m.exportCount, m.exportErr
}

func (m *mockAPI) ListTags(ctx context.Context) ([]*sqlite.TagStat, error) {
	return m.tagStats, m.tagsErr
}

func (m *mockAPI) ListWeeks(count int, now time.Time) []api.WeekInfo {
	weeks := make([]api.WeekInfo, 0, count)
	for i := 0; i < count; i++ {
		start := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -7*i)
		weeks = append(weeks, api.WeekInfo{
			Offset:      -i,
			Start:       start,
			End:         start.AddDate(0, 0, 6),
			Description: "week",
		})
	}
	return weeks
}
