package event

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sigevents/staffops-backend-go/internal/domain/event"
	"github.com/sigevents/staffops-backend-go/internal/domain/stats"
)

const storedDateLayout = "2006/01/02"

// EventServiceImpl serves the personal schedule view off the signature
// waiter dataset. Names match by exact listing, the way the source
// documents store them.
type EventServiceImpl struct {
	source stats.RecordSource
	spec   stats.DatasetSpec
}

func NewEventService(source stats.RecordSource, spec stats.DatasetSpec) event.EventService {
	return &EventServiceImpl{source: source, spec: spec}
}

// ListStaffEvents implements event.EventService.
func (s *EventServiceImpl) ListStaffEvents(ctx context.Context, req event.StaffEventsRequest) ([]event.StaffEvent, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	filters := []stats.Filter{
		{Field: s.spec.ParticipantsField, Op: stats.OpArrayContains, Value: name},
	}

	if req.StartDate != "" {
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
		filters = append(filters,
			stats.Filter{Field: s.spec.DateField, Op: stats.OpGTE, Value: start.Format(storedDateLayout)},
			stats.Filter{Field: s.spec.DateField, Op: stats.OpLTE, Value: end.Format(storedDateLayout)},
		)
	}

	records, err := s.source.FetchRecords(ctx, s.spec.Name, filters)
	if err != nil {
		return nil, fmt.Errorf("fetch staff events: %w", err)
	}

	events := make([]event.StaffEvent, 0, len(records))
	for _, record := range records {
		events = append(events, event.StaffEvent{
			ID:          record.RecordID(),
			Date:        record.String(s.spec.DateField),
			StartTime:   record.String("start_time"),
			EndTime:     record.String("end_time"),
			Location:    record.String("location"),
			ClientName:  record.String("client_name"),
			CompanyName: record.String("companyName"),
			Hours:       record.Number(s.spec.HoursField),
			Transport:   record.Number(s.spec.TransportField),
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		return events[i].StartTime < events[j].StartTime
	})

	return events, nil
}
