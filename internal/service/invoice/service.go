package invoice

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sigevents/staffops-backend-go/internal/domain/invoice"
	"github.com/sigevents/staffops-backend-go/internal/domain/stats"
)

const storedDateLayout = "2006/01/02"

// Field names in the staffed event and casual documents. These follow
// the upstream collection shapes and are not configurable.
const (
	fieldDate        = "date"
	fieldCompany     = "companyName"
	fieldCasualComp  = "comp"
	fieldHeadWaiters = "head_waiters"
	fieldWaiters     = "waiters"
	fieldCasWaiters  = "cas_waiters"
	fieldTransport   = "transport"
)

type InvoiceServiceImpl struct {
	source  stats.RecordSource
	rates   invoice.RoleRates
	issuer  invoice.CompanyDetails
	banking invoice.BankingDetails
	now     func() time.Time
}

func NewInvoiceService(source stats.RecordSource, rates invoice.RoleRates, issuer invoice.CompanyDetails, banking invoice.BankingDetails) invoice.InvoiceService {
	return &InvoiceServiceImpl{
		source:  source,
		rates:   rates,
		issuer:  issuer,
		banking: banking,
		now:     time.Now,
	}
}

// ListEvents implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) ListEvents(ctx context.Context, req invoice.ListEventsRequest) ([]invoice.EventSummary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

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

	records, err := s.source.FetchRecords(ctx, stats.DatasetStaffedEvents, []stats.Filter{
		{Field: fieldDate, Op: stats.OpGTE, Value: start.Format(storedDateLayout)},
		{Field: fieldDate, Op: stats.OpLTE, Value: end.Format(storedDateLayout)},
	})
	if err != nil {
		return nil, fmt.Errorf("fetch staffed events: %w", err)
	}

	summaries := make([]invoice.EventSummary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, invoice.EventSummary{
			ID:          record.RecordID(),
			Date:        record.String(fieldDate),
			ClientName:  record.String("client_name"),
			CompanyName: record.String(fieldCompany),
			Location:    record.String("location"),
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].Date != summaries[j].Date {
			return summaries[i].Date < summaries[j].Date
		}
		return summaries[i].CompanyName < summaries[j].CompanyName
	})

	return summaries, nil
}

// BuildInvoice implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) BuildInvoice(ctx context.Context, req invoice.BuildInvoiceRequest) (invoice.Invoice, error) {
	if err := req.Validate(); err != nil {
		return invoice.Invoice{}, err
	}

	records, err := s.source.FetchRecords(ctx, stats.DatasetStaffedEvents, []stats.Filter{
		{Field: "id", Op: stats.OpEQ, Value: req.EventID},
	})
	if err != nil {
		return invoice.Invoice{}, fmt.Errorf("fetch staffed event: %w", err)
	}
	if len(records) == 0 {
		return invoice.Invoice{}, invoice.ErrEventNotFound
	}
	record := records[0]

	inv := invoice.Invoice{
		Number:      uuid.NewString(),
		IssueDate:   s.now().Format(storedDateLayout),
		EventID:     record.RecordID(),
		EventDate:   record.String(fieldDate),
		ClientName:  record.String("client_name"),
		CompanyName: record.String(fieldCompany),
		Location:    record.String("location"),
		Issuer:      s.issuer,
		Banking:     s.banking,
	}

	inv.Lines = append(inv.Lines, s.staffLines(record, fieldHeadWaiters, invoice.RoleLabelHeadWaiter, s.rates.HeadWaiter)...)
	inv.Lines = append(inv.Lines, s.staffLines(record, fieldWaiters, invoice.RoleLabelWaiter, s.rates.Waiter)...)

	casualLines, err := s.casualLines(ctx, inv.CompanyName, inv.EventDate)
	if err != nil {
		return invoice.Invoice{}, err
	}
	inv.Lines = append(inv.Lines, casualLines...)

	for _, line := range inv.Lines {
		inv.Total += line.Total
	}

	return inv, nil
}

// staffLines renders one participant list of the staffed event as
// invoice lines. Sub-records carry their own hours and transport; a
// missing value bills as zero.
func (s *InvoiceServiceImpl) staffLines(record stats.Record, field string, role string, rate float64) []invoice.InvoiceLine {
	participants, ok := record.Participants(field)
	if !ok {
		return nil
	}

	lines := make([]invoice.InvoiceLine, 0, len(participants))
	for _, p := range participants {
		var hours, transport float64
		if p.Hours != nil {
			hours = *p.Hours
		}
		if p.Transport != nil {
			transport = *p.Transport
		}
		lines = append(lines, invoice.InvoiceLine{
			Name:      p.Name,
			Role:      role,
			Hours:     hours,
			Rate:      rate,
			Transport: transport,
			Total:     hours*rate + transport,
		})
	}
	return lines
}

// casualLines pulls the casual engagements booked for the same company
// on the same day. Casual sub-records carry their own hours while the
// transport allowance sits on the engagement document.
func (s *InvoiceServiceImpl) casualLines(ctx context.Context, companyName string, date string) ([]invoice.InvoiceLine, error) {
	records, err := s.source.FetchRecords(ctx, stats.DatasetCasualStaffed, []stats.Filter{
		{Field: fieldCasualComp, Op: stats.OpEQ, Value: companyName},
		{Field: fieldDate, Op: stats.OpEQ, Value: date},
	})
	if err != nil {
		return nil, fmt.Errorf("fetch casual engagements: %w", err)
	}

	var lines []invoice.InvoiceLine
	for _, record := range records {
		eventTransport := record.Number(fieldTransport)

		participants, ok := record.Participants(fieldCasWaiters)
		if !ok {
			continue
		}
		for _, p := range participants {
			var hours float64
			if p.Hours != nil {
				hours = *p.Hours
			}
			transport := eventTransport
			if p.Transport != nil {
				transport = *p.Transport
			}
			lines = append(lines, invoice.InvoiceLine{
				Name:      p.Name,
				Role:      invoice.RoleLabelCasual,
				Hours:     hours,
				Rate:      s.rates.Casual,
				Transport: transport,
				Total:     hours*s.rates.Casual + transport,
			})
		}
	}
	return lines, nil
}
