package api

import (
	"context"
	"fmt"
	"time"

	"time-helper/internal/domain"
	"time-helper/internal/engine"
	"time-helper/internal/logging"
	"time-helper/internal/report"
	"time-helper/internal/repository/sqlite"
	"time-helper/internal/validation"
)

// ReportRequest carries the caller-supplied parameters for one report
// build. Tags filter with intersection semantics: an entry qualifies when
// it carries at least one requested tag.
type ReportRequest struct {
	StartDate time.Time
	EndDate   time.Time
	Tags      []string
	Format    report.Format
	UseCache  bool
}

// WeekInfo describes one selectable week offset.
type WeekInfo struct {
	Offset      int
	Start       time.Time
	End         time.Time
	Description string
}

// API defines the interface for report building and data acquisition.
type API interface {
	// GenerateReport produces a rendered report for the request,
	// preferring cached entries and falling back to the engine.
	GenerateReport(ctx context.Context, req ReportRequest) (string, error)

	// BuildRangeReport returns the aggregated representation without
	// rendering it.
	BuildRangeReport(ctx context.Context, req ReportRequest) (*report.RangeReport, error)

	// ExportRange fetches entries from the engine for an inclusive date
	// range and stores them. It returns the number of entries stored.
	ExportRange(ctx context.Context, start, end time.Time) (int, error)

	// ListTags returns per-tag statistics from the store.
	ListTags(ctx context.Context) ([]*sqlite.TagStat, error)

	// ListWeeks enumerates recent week offsets relative to now.
	ListWeeks(count int, now time.Time) []WeekInfo
}

type apiImpl struct {
	repo      sqlite.Repository
	exporter  engine.Exporter
	mapper    *domain.EntryMapper
	validator *validation.ReportRequestValidator
	loc       *time.Location
	opts      report.Options
}

// New creates a new API instance.
func New(repo sqlite.Repository, exporter engine.Exporter, loc *time.Location, opts report.Options) API {
	if loc == nil {
		loc = time.Local
	}
	return &apiImpl{
		repo:      repo,
		exporter:  exporter,
		mapper:    domain.NewEntryMapper(loc),
		validator: validation.NewReportRequestValidator(),
		loc:       loc,
		opts:      opts,
	}
}

func (a *apiImpl) GenerateReport(ctx context.Context, req ReportRequest) (string, error) {
	rep, err := a.BuildRangeReport(ctx, req)
	if err != nil {
		return "", err
	}
	return report.Render(rep, req.Format, a.opts)
}

func (a *apiImpl) BuildRangeReport(ctx context.Context, req ReportRequest) (*report.RangeReport, error) {
	if err := a.validator.ValidateRange(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}
	if err := a.validator.ValidateTags(req.Tags); err != nil {
		return nil, err
	}

	entries, err := a.collectEntries(ctx, req)
	if err != nil {
		return nil, err
	}

	return report.BuildReport(entries, req.StartDate, req.EndDate)
}

// collectEntries resolves the entry batch for a request: cache first, then
// a direct engine export that is cached for the next run.
func (a *apiImpl) collectEntries(ctx context.Context, req ReportRequest) ([]domain.Entry, error) {
	if req.UseCache && a.repo != nil {
		opts := sqlite.SearchOptions{
			StartDate: &req.StartDate,
			EndDate:   &req.EndDate,
			Tags:      req.Tags,
		}
		dbEntries, err := a.repo.SearchEntries(ctx, opts)
		if err != nil {
			return nil, err
		}
		if len(dbEntries) > 0 {
			logging.Debugf("api: using %d cached entries\n", len(dbEntries))
			return a.mapper.FromDatabaseSlice(dbEntries), nil
		}
	}

	entries, err := a.fetchRange(ctx, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	if req.UseCache && a.repo != nil && len(entries) > 0 {
		if err := a.repo.StoreEntries(ctx, a.mapper.ToDatabaseSlice(entries)); err != nil {
			return nil, err
		}
	}

	return domain.FilterByTags(entries, req.Tags), nil
}

// fetchRange exports each day of the inclusive range from the engine and
// normalizes the result. Day-by-day export duplicates entries spanning
// midnight, so the batch is de-duplicated by engine ID.
func (a *apiImpl) fetchRange(ctx context.Context, start, end time.Time) ([]domain.Entry, error) {
	if a.exporter == nil {
		return nil, nil
	}

	var raws []domain.RawEntry
	for day := domain.DayOf(start); !day.After(domain.DayOf(end)); day = day.AddDate(0, 0, 1) {
		dayRaws, err := a.exporter.ExportDay(ctx, day)
		if err != nil {
			return nil, err
		}
		raws = append(raws, dayRaws...)
	}

	entries, err := domain.NormalizeAll(raws, a.loc)
	if err != nil {
		return nil, err
	}
	return domain.DedupeByID(entries), nil
}

func (a *apiImpl) ExportRange(ctx context.Context, start, end time.Time) (int, error) {
	entries, err := a.fetchRange(ctx, start, end)
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, nil
	}
	if a.repo != nil {
		if err := a.repo.StoreEntries(ctx, a.mapper.ToDatabaseSlice(entries)); err != nil {
			return 0, err
		}
	}
	return len(entries), nil
}

func (a *apiImpl) ListTags(ctx context.Context) ([]*sqlite.TagStat, error) {
	return a.repo.ListTagStats(ctx)
}

func (a *apiImpl) ListWeeks(count int, now time.Time) []WeekInfo {
	if count <= 0 {
		count = 10
	}

	weeks := make([]WeekInfo, 0, count)
	for i := 0; i < count; i++ {
		start := domain.WeekStartForOffset(-i, now)
		var description string
		switch i {
		case 0:
			description = "Current week"
		case 1:
			description = "Last week"
		default:
			description = fmt.Sprintf("%d weeks ago", i)
		}
		weeks = append(weeks, WeekInfo{
			Offset:      -i,
			Start:       start,
			End:         start.AddDate(0, 0, 6),
			Description: description,
		})
	}
	return weeks
}
