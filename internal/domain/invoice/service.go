package invoice

import "context"

type InvoiceService interface {
	ListEvents(ctx context.Context, req ListEventsRequest) ([]EventSummary, error)
	BuildInvoice(ctx context.Context, req BuildInvoiceRequest) (Invoice, error)
}
