package steps

import (
	"context"
	"fmt"
	"sort"

	"github.com/sigevents/staffops-backend-go/internal/domain/stats"
	"github.com/sigevents/staffops-backend-go/internal/domain/steps"
)

const storedDateLayout = "2006/01/02"

// Field names in the steps documents, matching the upstream collection.
const (
	fieldDate     = "date"
	fieldWaiterID = "waiterId"
	fieldSteps    = "counted_steps"
)

type StepsServiceImpl struct {
	source stats.RecordSource
}

func NewStepsService(source stats.RecordSource) steps.StepsService {
	return &StepsServiceImpl{source: source}
}

// PeriodSummary implements steps.StepsService.
func (s *StepsServiceImpl) PeriodSummary(ctx context.Context, req steps.SummaryRequest) (steps.StepsSummary, error) {
	waiters, err := s.aggregate(ctx, req)
	if err != nil {
		return steps.StepsSummary{}, err
	}

	summary := steps.StepsSummary{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Waiters:   waiters,
	}

	var countedDays int
	for _, w := range waiters {
		summary.TotalSteps += w.TotalSteps
		countedDays += w.CountedDays
	}
	if countedDays > 0 {
		summary.AverageSteps = summary.TotalSteps / float64(countedDays)
	}

	return summary, nil
}

// EfficiencyBoard implements steps.StepsService.
func (s *StepsServiceImpl) EfficiencyBoard(ctx context.Context, req steps.SummaryRequest) ([]steps.WaiterStepStats, error) {
	waiters, err := s.aggregate(ctx, req)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(waiters, func(i, j int) bool {
		if waiters[i].AverageSteps != waiters[j].AverageSteps {
			return waiters[i].AverageSteps > waiters[j].AverageSteps
		}
		return waiters[i].TotalSteps > waiters[j].TotalSteps
	})

	return waiters, nil
}

func (s *StepsServiceImpl) aggregate(ctx context.Context, req steps.SummaryRequest) ([]steps.WaiterStepStats, error) {
	if err := req.Validate(); err != nil {
		return nil, err
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

	records, err := s.source.FetchRecords(ctx, stats.DatasetSteps, []stats.Filter{
		{Field: fieldDate, Op: stats.OpGTE, Value: start.Format(storedDateLayout)},
		{Field: fieldDate, Op: stats.OpLTE, Value: end.Format(storedDateLayout)},
	})
	if err != nil {
		return nil, fmt.Errorf("fetch step records: %w", err)
	}

	byWaiter := map[string]*steps.WaiterStepStats{}
	var order []string
	for _, record := range records {
		waiterID := record.String(fieldWaiterID)
		if waiterID == "" {
			continue
		}
		counted := record.Number(fieldSteps)
		// Zero and negative readings mean the counter never synced
		if counted <= 0 {
			continue
		}

		row, ok := byWaiter[waiterID]
		if !ok {
			row = &steps.WaiterStepStats{WaiterID: waiterID}
			byWaiter[waiterID] = row
			order = append(order, waiterID)
		}
		row.TotalSteps += counted
		row.CountedDays++
	}

	waiters := make([]steps.WaiterStepStats, 0, len(order))
	for _, waiterID := range order {
		row := byWaiter[waiterID]
		if row.CountedDays > 0 {
			row.AverageSteps = row.TotalSteps / float64(row.CountedDays)
		}
		waiters = append(waiters, *row)
	}

	return waiters, nil
}
