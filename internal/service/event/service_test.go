package event

import (
	"context"
	"testing"

	"github.com/sigevents/staffops-backend-go/internal/domain/event"
	"github.com/sigevents/staffops-backend-go/internal/domain/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	records    map[string][]stats.Record
	err        error
	gotDataset string
	gotFilters []stats.Filter
}

func (f *fakeSource) FetchRecords(_ context.Context, dataset string, filters []stats.Filter) ([]stats.Record, error) {
	f.gotDataset = dataset
	f.gotFilters = filters
	if f.err != nil {
		return nil, f.err
	}
	return f.records[dataset], nil
}

func signatureSpec() stats.DatasetSpec {
	return stats.DefaultDatasets([]string{"Ann", "Bob"})[stats.DatasetSignatureWaiters]
}

func TestListStaffEvents_MapsRecords(t *testing.T) {
	t.Parallel()

	source := &fakeSource{records: map[string][]stats.Record{
		stats.DatasetSignatureWaiters: {
			{
				"id":         "evt-2",
				"date":       "2024/06/15",
				"start_time": "18:00",
				"end_time":   "23:00",
				"location":   "Sandton",
				"client_name": "Acme",
				"companyName": "Acme Holdings",
				"hrs_worked": 5.0,
				"transport":  40.0,
				"waiters":    []any{"Ann", "Bob"},
			},
			{
				"id":         "evt-1",
				"date":       "2024/06/01",
				"start_time": "10:00",
				"hrs_worked": 3.0,
				"transport":  20.0,
				"waiters":    []any{"Ann"},
			},
		},
	}}

	svc := NewEventService(source, signatureSpec())
	events, err := svc.ListStaffEvents(context.Background(), event.StaffEventsRequest{Name: "Ann"})
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Sorted by date ascending
	assert.Equal(t, "evt-1", events[0].ID)
	assert.Equal(t, "evt-2", events[1].ID)
	assert.Equal(t, "Sandton", events[1].Location)
	assert.Equal(t, "Acme Holdings", events[1].CompanyName)
	assert.Equal(t, 5.0, events[1].Hours)
	assert.Equal(t, 40.0, events[1].Transport)

	require.Len(t, source.gotFilters, 1)
	assert.Equal(t, stats.OpArrayContains, source.gotFilters[0].Op)
	assert.Equal(t, "waiters", source.gotFilters[0].Field)
	assert.Equal(t, "Ann", source.gotFilters[0].Value)
}

func TestListStaffEvents_WindowAddsDateFilters(t *testing.T) {
	t.Parallel()

	source := &fakeSource{records: map[string][]stats.Record{}}
	svc := NewEventService(source, signatureSpec())

	_, err := svc.ListStaffEvents(context.Background(), event.StaffEventsRequest{
		Name:      "Ann",
		StartDate: "2024-06-01",
		EndDate:   "2024-06-30",
	})
	require.NoError(t, err)

	require.Len(t, source.gotFilters, 3)
	assert.Equal(t, stats.OpGTE, source.gotFilters[1].Op)
	assert.Equal(t, "2024/06/01", source.gotFilters[1].Value)
	assert.Equal(t, stats.OpLTE, source.gotFilters[2].Op)
	assert.Equal(t, "2024/06/30", source.gotFilters[2].Value)
}

func TestListStaffEvents_InvalidRange(t *testing.T) {
	t.Parallel()

	source := &fakeSource{}
	svc := NewEventService(source, signatureSpec())

	_, err := svc.ListStaffEvents(context.Background(), event.StaffEventsRequest{
		Name:      "Ann",
		StartDate: "2024/07/01",
		EndDate:   "2024/06/01",
	})
	assert.ErrorIs(t, err, stats.ErrInvalidRange)
	assert.Empty(t, source.gotDataset)
}

func TestListStaffEvents_NameRequired(t *testing.T) {
	t.Parallel()

	svc := NewEventService(&fakeSource{}, signatureSpec())
	_, err := svc.ListStaffEvents(context.Background(), event.StaffEventsRequest{})
	assert.Error(t, err)
}

func TestListStaffEvents_TrimsName(t *testing.T) {
	t.Parallel()

	source := &fakeSource{}
	svc := NewEventService(source, signatureSpec())

	_, err := svc.ListStaffEvents(context.Background(), event.StaffEventsRequest{Name: "  Ann  "})
	require.NoError(t, err)
	require.Len(t, source.gotFilters, 1)
	assert.Equal(t, "Ann", source.gotFilters[0].Value)
}
