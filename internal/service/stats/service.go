package stats

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/sigevents/staffops-backend-go/internal/domain/stats"
)

// storedDateLayout is how the upstream collections format the date field,
// and therefore how source-side range filters must be expressed.
const storedDateLayout = "2006/01/02"

type StatsServiceImpl struct {
	source   stats.RecordSource
	datasets map[string]stats.DatasetSpec
	engine   *Engine
	logger   *slog.Logger

	mu    sync.Mutex
	views map[string]*datasetView
}

// datasetView tracks one dataset's query sequence and last published
// snapshot. Each QueryWindow call takes the next sequence number; a result
// is published only if no newer query was issued while it was in flight
// (last-request-wins).
type datasetView struct {
	issued  uint64
	current *stats.WindowStatistics
}

func NewStatsService(source stats.RecordSource, datasets map[string]stats.DatasetSpec, normalize stats.Normalizer, logger *slog.Logger) stats.StatsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatsServiceImpl{
		source:   source,
		datasets: datasets,
		engine:   NewEngine(normalize),
		logger:   logger,
		views:    make(map[string]*datasetView),
	}
}

func (s *StatsServiceImpl) QueryWindow(ctx context.Context, req stats.WindowRequest) (*stats.WindowStatistics, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	spec, ok := s.datasets[req.Dataset]
	if !ok {
		return nil, stats.ErrDatasetNotFound
	}

	start, err := stats.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := stats.ParseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, stats.ErrInvalidRange
	}
	window := stats.Window{Start: start, End: end}

	seq := s.issueSequence(req.Dataset)

	// The source-side filter narrows the fetch; the engine re-validates
	// every date locally regardless.
	records, err := s.source.FetchRecords(ctx, spec.Name, []stats.Filter{
		{Field: spec.DateField, Op: stats.OpGTE, Value: start.Format(storedDateLayout)},
		{Field: spec.DateField, Op: stats.OpLTE, Value: end.Format(storedDateLayout)},
	})
	if err != nil {
		return nil, err
	}

	rows, warnings := s.engine.Aggregate(records, spec, window)
	for _, w := range warnings {
		s.logger.Warn("record skipped during aggregation",
			slog.String("dataset", spec.Name),
			slog.String("record_id", w.RecordID),
			slog.String("reason", w.Reason),
		)
	}

	result := &stats.WindowStatistics{
		Dataset:   spec.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Sequence:  seq,
		Rows:      rows,
		Warnings:  warnings,
		Empty:     isEmpty(rows),
	}

	s.publish(req.Dataset, seq, result)
	return result, nil
}

func (s *StatsServiceImpl) ApplyRate(ctx context.Context, req stats.ApplyRateRequest) (*stats.WindowStatistics, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, ok := s.datasets[req.Dataset]; !ok {
		return nil, stats.ErrDatasetNotFound
	}

	rate := parseRate(req.Rate)
	key := s.engine.normalize(req.Identity)

	s.mu.Lock()
	defer s.mu.Unlock()

	view := s.views[req.Dataset]
	if view == nil || view.current == nil {
		return nil, stats.ErrNoCurrentWindow
	}

	for i := range view.current.Rows {
		if view.current.Rows[i].Identity != key {
			continue
		}
		view.current.Rows[i].HourlyRate = rate
		view.current.Rows[i].Recompute()
		return view.current.Clone(), nil
	}
	return nil, stats.ErrIdentityNotFound
}

func (s *StatsServiceImpl) CurrentStatistics(ctx context.Context, dataset string) (*stats.WindowStatistics, error) {
	if _, ok := s.datasets[dataset]; !ok {
		return nil, stats.ErrDatasetNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	view := s.views[dataset]
	if view == nil || view.current == nil {
		return nil, stats.ErrNoCurrentWindow
	}
	return view.current.Clone(), nil
}

func (s *StatsServiceImpl) issueSequence(dataset string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := s.views[dataset]
	if view == nil {
		view = &datasetView{}
		s.views[dataset] = view
	}
	view.issued++
	return view.issued
}

// publish installs the result as the dataset's current snapshot unless a
// newer query has been issued since; stale arrivals are dropped.
func (s *StatsServiceImpl) publish(dataset string, seq uint64, result *stats.WindowStatistics) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := s.views[dataset]
	if view == nil || seq != view.issued {
		return false
	}
	view.current = result.Clone()
	return true
}

// parseRate mirrors the dashboard's lenient numeric entry: anything that
// does not parse is a zero rate, never an error.
func parseRate(raw string) float64 {
	rate, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return rate
}

func isEmpty(rows []stats.PeriodStatistics) bool {
	for _, row := range rows {
		if row.TotalEvents > 0 {
			return false
		}
	}
	return true
}
