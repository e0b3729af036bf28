package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sigevents/staffops-backend-go/internal/domain/stats"
	"github.com/sigevents/staffops-backend-go/internal/handler/http/response"
)

type RecordHandler interface {
	// CreateRecord ingests one event document into a dataset
	CreateRecord(w http.ResponseWriter, r *http.Request)
}

type recordHandlerImpl struct {
	writer   stats.RecordWriter
	datasets map[string]stats.DatasetSpec
}

func NewRecordHandler(writer stats.RecordWriter, datasets map[string]stats.DatasetSpec) RecordHandler {
	return &recordHandlerImpl{writer: writer, datasets: datasets}
}

// CreateRecord handles POST /records/{dataset}
func (h *recordHandlerImpl) CreateRecord(w http.ResponseWriter, r *http.Request) {
	dataset := chi.URLParam(r, "dataset")
	if _, ok := h.datasets[dataset]; !ok && dataset != stats.DatasetSteps {
		response.HandleError(w, stats.ErrDatasetNotFound)
		return
	}

	var doc stats.Record
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if len(doc) == 0 {
		response.BadRequest(w, "Document must not be empty", nil)
		return
	}

	id, err := h.writer.CreateRecord(r.Context(), dataset, doc)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Record created", map[string]string{"id": id})
}
