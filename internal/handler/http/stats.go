package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sigevents/staffops-backend-go/internal/domain/stats"
	"github.com/sigevents/staffops-backend-go/internal/handler/http/response"
)

type StatsHandler interface {
	// QueryWindow recomputes statistics for a date window
	QueryWindow(w http.ResponseWriter, r *http.Request)
	// ApplyRate sets an hourly rate on one staff row
	ApplyRate(w http.ResponseWriter, r *http.Request)
	// CurrentStatistics returns the last published snapshot
	CurrentStatistics(w http.ResponseWriter, r *http.Request)
}

type statsHandlerImpl struct {
	statsService stats.StatsService
}

func NewStatsHandler(statsService stats.StatsService) StatsHandler {
	return &statsHandlerImpl{statsService: statsService}
}

// QueryWindow handles GET /stats/{dataset}
func (h *statsHandlerImpl) QueryWindow(w http.ResponseWriter, r *http.Request) {
	req := stats.WindowRequest{
		Dataset:   chi.URLParam(r, "dataset"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	result, err := h.statsService.QueryWindow(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ApplyRate handles PUT /stats/{dataset}/rate
func (h *statsHandlerImpl) ApplyRate(w http.ResponseWriter, r *http.Request) {
	var req stats.ApplyRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Dataset = chi.URLParam(r, "dataset")

	result, err := h.statsService.ApplyRate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CurrentStatistics handles GET /stats/{dataset}/current
func (h *statsHandlerImpl) CurrentStatistics(w http.ResponseWriter, r *http.Request) {
	result, err := h.statsService.CurrentStatistics(r.Context(), chi.URLParam(r, "dataset"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
