package stats

import (
	"testing"
	"time"

	"github.com/sigevents/staffops-backend-go/internal/domain/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWindow(t *testing.T, start, end string) stats.Window {
	s, err := time.Parse("2006-01-02", start)
	require.NoError(t, err)
	e, err := time.Parse("2006-01-02", end)
	require.NoError(t, err)
	return stats.Window{Start: s, End: e}
}

func eventLevelSpec(roster []string) stats.DatasetSpec {
	return stats.DatasetSpec{
		Name:              "signature_waiters",
		DateField:         "date",
		ParticipantsField: "waiters",
		HoursField:        "hrs_worked",
		TransportField:    "transport",
		Roster:            roster,
		Policy:            stats.AllocationSharedFullValue,
	}
}

func TestEngine_Aggregate_SharedEventValues(t *testing.T) {
	t.Parallel()
	engine := NewEngine(nil)

	records := []stats.Record{
		{
			"id":         "evt-1",
			"date":       "2024/06/01",
			"waiters":    []any{"Ann", "Bob"},
			"hrs_worked": 5.0,
			"transport":  40.0,
		},
	}

	rows, warnings := engine.Aggregate(records, eventLevelSpec(nil), testWindow(t, "2024-06-01", "2024-06-30"))

	require.Empty(t, warnings)
	require.Len(t, rows, 2)

	assert.Equal(t, "ann", rows[0].Identity)
	assert.Equal(t, "Ann", rows[0].DisplayName)
	assert.Equal(t, 5.0, rows[0].TotalHours)
	assert.Equal(t, 1, rows[0].TotalEvents)
	assert.Equal(t, 40.0, rows[0].TotalTransport)
	assert.Zero(t, rows[0].HourlyRate)
	assert.Zero(t, rows[0].GrossEarnings)
	assert.Zero(t, rows[0].NetEarnings)

	assert.Equal(t, "bob", rows[1].Identity)
	assert.Equal(t, 5.0, rows[1].TotalHours)
	assert.Equal(t, 40.0, rows[1].TotalTransport)
}

func TestEngine_Aggregate_WindowExcludesRecord(t *testing.T) {
	t.Parallel()
	engine := NewEngine(nil)

	records := []stats.Record{
		{
			"id":         "evt-1",
			"date":       "2024/06/01",
			"waiters":    []any{"Ann", "Bob"},
			"hrs_worked": 5.0,
			"transport":  40.0,
		},
	}

	rows, warnings := engine.Aggregate(records, eventLevelSpec(nil), testWindow(t, "2024-05-01", "2024-05-31"))

	// out-of-window records are dropped quietly, not warned about
	assert.Empty(t, warnings)
	assert.Empty(t, rows)
}

func TestEngine_Aggregate_SumsAcrossRecords(t *testing.T) {
	t.Parallel()
	engine := NewEngine(nil)

	records := []stats.Record{
		{"id": "evt-1", "date": "2024/06/01", "waiters": []any{"Ann"}, "hrs_worked": 3.0, "transport": 10.0},
		{"id": "evt-2", "date": "2024/06/08", "waiters": []any{"Ann"}, "hrs_worked": 4.0, "transport": 15.0},
	}

	rows, _ := engine.Aggregate(records, eventLevelSpec(nil), testWindow(t, "2024-06-01", "2024-06-30"))

	require.Len(t, rows, 1)
	assert.Equal(t, 7.0, rows[0].TotalHours)
	assert.Equal(t, 2, rows[0].TotalEvents)
	assert.Equal(t, 25.0, rows[0].TotalTransport)
}

func TestEngine_Aggregate_RosterZeroFilled(t *testing.T) {
	t.Parallel()
	engine := NewEngine(nil)

	spec := eventLevelSpec([]string{"Vicky", "Buhle", "Zweli"})
	rows, warnings := engine.Aggregate(nil, spec, testWindow(t, "2024-06-01", "2024-06-30"))

	require.Empty(t, warnings)
	require.Len(t, rows, 3)
	// rostered staff appear even with zero hours, sorted by display name
	assert.Equal(t, "Buhle", rows[0].DisplayName)
	assert.Equal(t, "Vicky", rows[1].DisplayName)
	assert.Equal(t, "Zweli", rows[2].DisplayName)
	for _, row := range rows {
		assert.Zero(t, row.TotalHours)
		assert.Zero(t, row.TotalEvents)
		assert.Zero(t, row.TotalTransport)
	}
}

func TestEngine_Aggregate_RosterIgnoresUnknownNames(t *testing.T) {
	t.Parallel()
	engine := NewEngine(nil)

	spec := eventLevelSpec([]string{"Ann"})
	records := []stats.Record{
		{"id": "evt-1", "date": "2024/06/01", "waiters": []any{"Ann", "Stranger"}, "hrs_worked": 5.0, "transport": 40.0},
	}

	rows, _ := engine.Aggregate(records, spec, testWindow(t, "2024-06-01", "2024-06-30"))

	require.Len(t, rows, 1)
	assert.Equal(t, "ann", rows[0].Identity)
	assert.Equal(t, 5.0, rows[0].TotalHours)
}

func TestEngine_Aggregate_NormalizationMergesSpellings(t *testing.T) {
	t.Parallel()
	engine := NewEngine(nil)

	records := []stats.Record{
		{"id": "evt-1", "date": "2024/06/01", "waiters": []any{"Ann"}, "hrs_worked": 3.0, "transport": 0.0},
		{"id": "evt-2", "date": "2024/06/02", "waiters": []any{"  ANN  "}, "hrs_worked": 4.0, "transport": 0.0},
	}

	rows, _ := engine.Aggregate(records, eventLevelSpec(nil), testWindow(t, "2024-06-01", "2024-06-30"))

	require.Len(t, rows, 1)
	assert.Equal(t, "ann", rows[0].Identity)
	assert.Equal(t, 7.0, rows[0].TotalHours)
	assert.Equal(t, 2, rows[0].TotalEvents)
}

func TestEngine_Aggregate_CustomNormalizer(t *testing.T) {
	t.Parallel()
	// identity normalization is injectable; this caller groups by the
	// first word only
	engine := NewEngine(func(s string) string {
		fields := []rune(s)
		for i, r := range fields {
			if r == ' ' {
				return string(fields[:i])
			}
		}
		return s
	})

	records := []stats.Record{
		{"id": "evt-1", "date": "2024/06/01", "waiters": []any{"Ann Smith"}, "hrs_worked": 3.0, "transport": 0.0},
		{"id": "evt-2", "date": "2024/06/02", "waiters": []any{"Ann Jones"}, "hrs_worked": 4.0, "transport": 0.0},
	}

	rows, _ := engine.Aggregate(records, eventLevelSpec(nil), testWindow(t, "2024-06-01", "2024-06-30"))

	require.Len(t, rows, 1)
	assert.Equal(t, "Ann", rows[0].Identity)
	assert.Equal(t, 7.0, rows[0].TotalHours)
}

func TestEngine_Aggregate_MalformedParticipantsSkipped(t *testing.T) {
	t.Parallel()
	engine := NewEngine(nil)

	records := []stats.Record{
		{"id": "bad-1", "date": "2024/06/01", "waiters": "not a list", "hrs_worked": 9.0, "transport": 9.0},
		{"id": "bad-2", "date": "2024/06/01", "hrs_worked": 9.0, "transport": 9.0},
		{"id": "evt-1", "date": "2024/06/02", "waiters": []any{"Ann"}, "hrs_worked": 4.0, "transport": 10.0},
	}

	rows, warnings := engine.Aggregate(records, eventLevelSpec(nil), testWindow(t, "2024-06-01", "2024-06-30"))

	require.Len(t, warnings, 2)
	assert.Equal(t, "bad-1", warnings[0].RecordID)
	assert.Equal(t, "bad-2", warnings[1].RecordID)

	require.Len(t, rows, 1)
	assert.Equal(t, 4.0, rows[0].TotalHours)
}

func TestEngine_Aggregate_UnparseableDateSkipped(t *testing.T) {
	t.Parallel()
	engine := NewEngine(nil)

	records := []stats.Record{
		{"id": "bad-1", "date": "June 1st 2024", "waiters": []any{"Ann"}, "hrs_worked": 9.0},
		{"id": "bad-2", "waiters": []any{"Ann"}, "hrs_worked": 9.0},
		{"id": "evt-1", "date": "2024-06-02", "waiters": []any{"Ann"}, "hrs_worked": 4.0},
	}

	rows, warnings := engine.Aggregate(records, eventLevelSpec(nil), testWindow(t, "2024-06-01", "2024-06-30"))

	require.Len(t, warnings, 2)
	require.Len(t, rows, 1)
	// both dashed and slashed date layouts are accepted
	assert.Equal(t, 4.0, rows[0].TotalHours)
	assert.Equal(t, 1, rows[0].TotalEvents)
}

func TestEngine_Aggregate_SplitEvenlyPolicy(t *testing.T) {
	t.Parallel()
	engine := NewEngine(nil)

	spec := eventLevelSpec(nil)
	spec.Policy = stats.AllocationSplitEvenly
	records := []stats.Record{
		{"id": "evt-1", "date": "2024/06/01", "waiters": []any{"Ann", "Bob"}, "hrs_worked": 5.0, "transport": 40.0},
	}

	rows, _ := engine.Aggregate(records, spec, testWindow(t, "2024-06-01", "2024-06-30"))

	require.Len(t, rows, 2)
	assert.Equal(t, 2.5, rows[0].TotalHours)
	assert.Equal(t, 20.0, rows[0].TotalTransport)
	assert.Equal(t, 2.5, rows[1].TotalHours)
	assert.Equal(t, 20.0, rows[1].TotalTransport)
}

func TestEngine_Aggregate_PerParticipantSubRecords(t *testing.T) {
	t.Parallel()
	engine := NewEngine(nil)

	spec := eventLevelSpec(nil)
	spec.Policy = stats.AllocationPerParticipant
	records := []stats.Record{
		{
			"id":   "evt-1",
			"date": "2024/06/01",
			"waiters": []any{
				map[string]any{"name": "Ann", "hours": 6.0, "transport": 30.0},
				map[string]any{"name": "Bob", "hours": 4.0, "transport": 20.0},
			},
			// event-level values must not leak into per-participant sums
			"hrs_worked": 99.0,
			"transport":  99.0,
		},
	}

	rows, _ := engine.Aggregate(records, spec, testWindow(t, "2024-06-01", "2024-06-30"))

	require.Len(t, rows, 2)
	assert.Equal(t, 6.0, rows[0].TotalHours)
	assert.Equal(t, 30.0, rows[0].TotalTransport)
	assert.Equal(t, 4.0, rows[1].TotalHours)
	assert.Equal(t, 20.0, rows[1].TotalTransport)
}

func TestEngine_Aggregate_SubRecordHoursSharedTransport(t *testing.T) {
	t.Parallel()
	engine := NewEngine(nil)

	// casual staffing shape: hoursWorked per participant, transport on the
	// event, credited in full to each participant
	spec := stats.DatasetSpec{
		Name:              "casual_staffed",
		DateField:         "date",
		ParticipantsField: "cas_waiters",
		HoursField:        "hrs_worked",
		TransportField:    "transport",
		Policy:            stats.AllocationSharedFullValue,
	}
	records := []stats.Record{
		{
			"id":   "evt-1",
			"date": "2024/06/01",
			"cas_waiters": []any{
				map[string]any{"name": "Cindy", "hoursWorked": 7.0},
				map[string]any{"name": "Dan", "hoursWorked": 5.0},
			},
			"transport": 60.0,
		},
	}

	rows, _ := engine.Aggregate(records, spec, testWindow(t, "2024-06-01", "2024-06-30"))

	require.Len(t, rows, 2)
	assert.Equal(t, 7.0, rows[0].TotalHours)
	assert.Equal(t, 60.0, rows[0].TotalTransport)
	assert.Equal(t, 5.0, rows[1].TotalHours)
	assert.Equal(t, 60.0, rows[1].TotalTransport)
}

func TestEngine_Aggregate_DuplicateListingCountsOnce(t *testing.T) {
	t.Parallel()
	engine := NewEngine(nil)

	records := []stats.Record{
		{"id": "evt-1", "date": "2024/06/01", "waiters": []any{"Ann", "ann"}, "hrs_worked": 5.0, "transport": 40.0},
	}

	rows, _ := engine.Aggregate(records, eventLevelSpec(nil), testWindow(t, "2024-06-01", "2024-06-30"))

	require.Len(t, rows, 1)
	assert.Equal(t, 5.0, rows[0].TotalHours)
	assert.Equal(t, 1, rows[0].TotalEvents)
	assert.Equal(t, 40.0, rows[0].TotalTransport)
}

func TestEngine_Aggregate_SortedCaseInsensitive(t *testing.T) {
	t.Parallel()
	engine := NewEngine(nil)

	records := []stats.Record{
		{"id": "evt-1", "date": "2024/06/01", "waiters": []any{"zanele", "Buhle", "ann"}, "hrs_worked": 1.0, "transport": 0.0},
	}

	rows, _ := engine.Aggregate(records, eventLevelSpec(nil), testWindow(t, "2024-06-01", "2024-06-30"))

	require.Len(t, rows, 3)
	assert.Equal(t, "ann", rows[0].DisplayName)
	assert.Equal(t, "Buhle", rows[1].DisplayName)
	assert.Equal(t, "zanele", rows[2].DisplayName)
}

func TestEngine_Aggregate_Idempotent(t *testing.T) {
	t.Parallel()
	engine := NewEngine(nil)

	records := []stats.Record{
		{"id": "evt-1", "date": "2024/06/01", "waiters": []any{"Ann", "Bob"}, "hrs_worked": 5.0, "transport": 40.0},
		{"id": "evt-2", "date": "2024/06/10", "waiters": []any{"Bob"}, "hrs_worked": 2.0, "transport": 10.0},
	}
	window := testWindow(t, "2024-06-01", "2024-06-30")

	first, _ := engine.Aggregate(records, eventLevelSpec(nil), window)
	second, _ := engine.Aggregate(records, eventLevelSpec(nil), window)

	assert.Equal(t, first, second)
}

func TestEngine_Aggregate_TotalsNonNegative(t *testing.T) {
	t.Parallel()
	engine := NewEngine(nil)

	records := []stats.Record{
		{"id": "evt-1", "date": "2024/06/01", "waiters": []any{"Ann"}, "hrs_worked": 5.0, "transport": 40.0},
		{"id": "evt-2", "date": "2024/06/02", "waiters": []any{"Ann"}},
	}

	rows, _ := engine.Aggregate(records, eventLevelSpec(nil), testWindow(t, "2024-06-01", "2024-06-30"))

	require.Len(t, rows, 1)
	assert.GreaterOrEqual(t, rows[0].TotalHours, 0.0)
	assert.GreaterOrEqual(t, rows[0].TotalTransport, 0.0)
	assert.GreaterOrEqual(t, rows[0].TotalEvents, 0)
	// a record with no hours field still counts as a worked event
	assert.Equal(t, 2, rows[0].TotalEvents)
}
