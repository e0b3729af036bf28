package dashboard

import (
	"context"

	"github.com/sigevents/staffops-backend-go/internal/domain/dashboard"
	"github.com/sigevents/staffops-backend-go/internal/domain/stats"
	"github.com/sigevents/staffops-backend-go/internal/domain/steps"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	stats stats.StatsService
	steps steps.StepsService
}

func NewDashboardService(statsService stats.StatsService, stepsService steps.StepsService) dashboard.DashboardService {
	return &DashboardServiceImpl{
		stats: statsService,
		steps: stepsService,
	}
}

// GetDashboard returns combined period data using parallel goroutines,
// one per underlying dataset query.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, req dashboard.DashboardRequest) (*dashboard.DashboardResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var (
		signature *stats.WindowStatistics
		casual    *stats.WindowStatistics
		stepsData steps.StepsSummary
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		result, err := s.stats.QueryWindow(gCtx, stats.WindowRequest{
			Dataset:   stats.DatasetSignatureWaiters,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		})
		if err != nil {
			return err
		}
		signature = result
		return nil
	})

	g.Go(func() error {
		result, err := s.stats.QueryWindow(gCtx, stats.WindowRequest{
			Dataset:   stats.DatasetCasualWaiters,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		})
		if err != nil {
			return err
		}
		casual = result
		return nil
	})

	g.Go(func() error {
		result, err := s.steps.PeriodSummary(gCtx, steps.SummaryRequest{
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		})
		if err != nil {
			return err
		}
		stepsData = result
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.DashboardResponse{
		SignatureWaiters: signature,
		CasualWaiters:    casual,
		Steps:            stepsData,
	}, nil
}
