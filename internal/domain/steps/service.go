package steps

import "context"

type StepsService interface {
	PeriodSummary(ctx context.Context, req SummaryRequest) (StepsSummary, error)
	EfficiencyBoard(ctx context.Context, req SummaryRequest) ([]WaiterStepStats, error)
}
