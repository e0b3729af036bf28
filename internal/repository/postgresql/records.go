package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sigevents/staffops-backend-go/internal/domain/stats"
	"github.com/sigevents/staffops-backend-go/internal/pkg/database"
)

// EventRecordRepository stores schemaless event documents in a single
// jsonb-backed table and serves the filtered reads the aggregation
// services issue.
type EventRecordRepository struct {
	db *database.DB
}

func NewEventRecordRepository(db *database.DB) *EventRecordRepository {
	return &EventRecordRepository{db: db}
}

func (r *EventRecordRepository) FetchRecords(ctx context.Context, dataset string, filters []stats.Filter) ([]stats.Record, error) {
	querier := GetQuerier(ctx, r.db)

	query := strings.Builder{}
	query.WriteString(`SELECT id, doc FROM event_records WHERE dataset = $1`)
	args := []interface{}{dataset}

	for _, f := range filters {
		clause, arg, err := compileFilter(f, len(args)+1)
		if err != nil {
			return nil, err
		}
		query.WriteString(" AND ")
		query.WriteString(clause)
		args = append(args, arg)
	}
	query.WriteString(` ORDER BY doc->>'date', id`)

	rows, err := querier.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%w: query event records: %v", stats.ErrSourceUnavailable, err)
	}
	defer rows.Close()

	var records []stats.Record
	for rows.Next() {
		var (
			id  uuid.UUID
			doc []byte
		)
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("%w: scan event record: %v", stats.ErrSourceUnavailable, err)
		}

		record := stats.Record{}
		if err := json.Unmarshal(doc, &record); err != nil {
			return nil, fmt.Errorf("%w: decode event record %s: %v", stats.ErrSourceUnavailable, id, err)
		}
		record["id"] = id.String()
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read event records: %v", stats.ErrSourceUnavailable, err)
	}

	return records, nil
}

func (r *EventRecordRepository) CreateRecord(ctx context.Context, dataset string, doc stats.Record) (string, error) {
	querier := GetQuerier(ctx, r.db)

	payload, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode event record: %w", err)
	}

	id := uuid.New()
	_, err = querier.Exec(ctx,
		`INSERT INTO event_records (id, dataset, doc) VALUES ($1, $2, $3)`,
		id, dataset, payload,
	)
	if err != nil {
		return "", fmt.Errorf("%w: insert event record: %v", stats.ErrSourceUnavailable, err)
	}

	return id.String(), nil
}

// compileFilter renders a single filter as a SQL clause over the doc
// column. Field names come from the dataset registry, not from request
// input, so they are interpolated directly; values always bind as
// parameters.
func compileFilter(f stats.Filter, position int) (string, interface{}, error) {
	if f.Field == "id" {
		if f.Op != stats.OpEQ {
			return "", nil, fmt.Errorf("unsupported operator %q on id", f.Op)
		}
		return fmt.Sprintf("id::text = $%d", position), fmt.Sprintf("%v", f.Value), nil
	}

	switch f.Op {
	case stats.OpGTE:
		return fmt.Sprintf("doc->>'%s' >= $%d", f.Field, position), fmt.Sprintf("%v", f.Value), nil
	case stats.OpLTE:
		return fmt.Sprintf("doc->>'%s' <= $%d", f.Field, position), fmt.Sprintf("%v", f.Value), nil
	case stats.OpEQ:
		return fmt.Sprintf("doc->>'%s' = $%d", f.Field, position), fmt.Sprintf("%v", f.Value), nil
	case stats.OpArrayContains:
		return fmt.Sprintf("doc->'%s' ? $%d", f.Field, position), fmt.Sprintf("%v", f.Value), nil
	default:
		return "", nil, fmt.Errorf("unsupported filter operator %q", f.Op)
	}
}
