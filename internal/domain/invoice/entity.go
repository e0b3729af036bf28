package invoice

// RoleRates carries the fixed hourly rates applied per staffing role
// when an invoice is drawn up.
type RoleRates struct {
	HeadWaiter float64
	Waiter     float64
	Casual     float64
}

// CompanyDetails identifies the issuing agency on the invoice header.
type CompanyDetails struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// BankingDetails is the payment section printed on every invoice.
type BankingDetails struct {
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	BranchCode    string `json:"branch_code"`
}

const (
	RoleLabelHeadWaiter = "Head Waiter"
	RoleLabelWaiter     = "Waiter"
	RoleLabelCasual     = "Casual"
)

// InvoiceLine is one billable staff entry. Total is hours at the role
// rate plus the transport allowance.
type InvoiceLine struct {
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	Hours     float64 `json:"hours"`
	Rate      float64 `json:"rate"`
	Transport float64 `json:"transport"`
	Total     float64 `json:"total"`
}

type Invoice struct {
	Number      string         `json:"number"`
	IssueDate   string         `json:"issue_date"`
	EventID     string         `json:"event_id"`
	EventDate   string         `json:"event_date"`
	ClientName  string         `json:"client_name"`
	CompanyName string         `json:"company_name"`
	Location    string         `json:"location"`
	Lines       []InvoiceLine  `json:"lines"`
	Total       float64        `json:"total"`
	Issuer      CompanyDetails `json:"issuer"`
	Banking     BankingDetails `json:"banking"`
}

// EventSummary is a staffed event row in the invoiceable events list.
type EventSummary struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	ClientName  string `json:"client_name"`
	CompanyName string `json:"company_name"`
	Location    string `json:"location"`
}
