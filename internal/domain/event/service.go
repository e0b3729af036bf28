package event

import "context"

type EventService interface {
	ListStaffEvents(ctx context.Context, req StaffEventsRequest) ([]StaffEvent, error)
}
