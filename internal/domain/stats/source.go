package stats

import "context"

// Operator is a record source filter operator. The set mirrors what the
// upstream document store supports natively.
type Operator string

const (
	OpGTE           Operator = ">="
	OpLTE           Operator = "<="
	OpEQ            Operator = "=="
	OpArrayContains Operator = "array-contains"
)

// Filter constrains a record fetch on a single document field.
type Filter struct {
	Field string
	Op    Operator
	Value any
}

// RecordSource yields raw event records for a named dataset. A source-side
// filter is an optimization only: callers must re-validate dates locally
// because stored date formats are not reliable.
//
// Fetch failures are reported wrapped in ErrSourceUnavailable and are not
// retried here; the user re-triggers the query.
type RecordSource interface {
	FetchRecords(ctx context.Context, dataset string, filters []Filter) ([]Record, error)
}

// RecordWriter ingests raw event documents into a dataset.
type RecordWriter interface {
	CreateRecord(ctx context.Context, dataset string, doc Record) (id string, err error)
}
