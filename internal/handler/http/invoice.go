package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sigevents/staffops-backend-go/internal/domain/invoice"
	"github.com/sigevents/staffops-backend-go/internal/handler/http/response"
)

type InvoiceHandler interface {
	// ListEvents returns the staffed events that can be invoiced
	ListEvents(w http.ResponseWriter, r *http.Request)
	// BuildInvoice assembles the invoice for one staffed event
	BuildInvoice(w http.ResponseWriter, r *http.Request)
}

type invoiceHandlerImpl struct {
	invoiceService invoice.InvoiceService
}

func NewInvoiceHandler(invoiceService invoice.InvoiceService) InvoiceHandler {
	return &invoiceHandlerImpl{invoiceService: invoiceService}
}

// ListEvents handles GET /invoices/events
func (h *invoiceHandlerImpl) ListEvents(w http.ResponseWriter, r *http.Request) {
	req := invoice.ListEventsRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	result, err := h.invoiceService.ListEvents(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// BuildInvoice handles GET /invoices/{eventID}
func (h *invoiceHandlerImpl) BuildInvoice(w http.ResponseWriter, r *http.Request) {
	req := invoice.BuildInvoiceRequest{
		EventID: chi.URLParam(r, "eventID"),
	}

	result, err := h.invoiceService.BuildInvoice(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
