package steps

// WaiterStepStats aggregates the pedometer readings one waiter logged
// over a period. Zero readings are treated as days the counter never
// synced and stay out of the totals.
type WaiterStepStats struct {
	WaiterID     string  `json:"waiter_id"`
	TotalSteps   float64 `json:"total_steps"`
	CountedDays  int     `json:"counted_days"`
	AverageSteps float64 `json:"average_steps"`
}

type StepsSummary struct {
	StartDate    string            `json:"start_date"`
	EndDate      string            `json:"end_date"`
	TotalSteps   float64           `json:"total_steps"`
	AverageSteps float64           `json:"average_steps"`
	Waiters      []WaiterStepStats `json:"waiters"`
}
