package http

import (
	"net/http"

	"github.com/sigevents/staffops-backend-go/internal/domain/event"
	"github.com/sigevents/staffops-backend-go/internal/handler/http/response"
)

type EventHandler interface {
	// ListStaffEvents returns the events a staff member worked
	ListStaffEvents(w http.ResponseWriter, r *http.Request)
}

type eventHandlerImpl struct {
	eventService event.EventService
}

func NewEventHandler(eventService event.EventService) EventHandler {
	return &eventHandlerImpl{eventService: eventService}
}

// ListStaffEvents handles GET /events
func (h *eventHandlerImpl) ListStaffEvents(w http.ResponseWriter, r *http.Request) {
	req := event.StaffEventsRequest{
		Name:      r.URL.Query().Get("name"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	result, err := h.eventService.ListStaffEvents(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
