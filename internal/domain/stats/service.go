package stats

import "context"

// StatsService defines the period aggregation operations exposed to the
// presentation layer.
type StatsService interface {
	// QueryWindow fetches the dataset's records for an inclusive date
	// window and aggregates one statistics row per staff identity. Rate
	// fields always reset to zero on a fresh query. Stale results from
	// superseded queries are never published as the current snapshot.
	QueryWindow(ctx context.Context, req WindowRequest) (*WindowStatistics, error)

	// ApplyRate updates the hourly rate and derived pay figures for a
	// single identity in the dataset's current statistics. No other row
	// is touched and no refetch happens.
	ApplyRate(ctx context.Context, req ApplyRateRequest) (*WindowStatistics, error)

	// CurrentStatistics returns a read-only snapshot of the last published
	// statistics for the dataset.
	CurrentStatistics(ctx context.Context, dataset string) (*WindowStatistics, error)
}
