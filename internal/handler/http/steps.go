package http

import (
	"net/http"

	"github.com/sigevents/staffops-backend-go/internal/domain/steps"
	"github.com/sigevents/staffops-backend-go/internal/handler/http/response"
)

type StepsHandler interface {
	// PeriodSummary returns totals and averages for a window
	PeriodSummary(w http.ResponseWriter, r *http.Request)
	// EfficiencyBoard returns waiters ranked by step average
	EfficiencyBoard(w http.ResponseWriter, r *http.Request)
}

type stepsHandlerImpl struct {
	stepsService steps.StepsService
}

func NewStepsHandler(stepsService steps.StepsService) StepsHandler {
	return &stepsHandlerImpl{stepsService: stepsService}
}

// PeriodSummary handles GET /steps
func (h *stepsHandlerImpl) PeriodSummary(w http.ResponseWriter, r *http.Request) {
	req := steps.SummaryRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	result, err := h.stepsService.PeriodSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// EfficiencyBoard handles GET /steps/efficiency
func (h *stepsHandlerImpl) EfficiencyBoard(w http.ResponseWriter, r *http.Request) {
	req := steps.SummaryRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	result, err := h.stepsService.EfficiencyBoard(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
