package event

// StaffEvent is one engagement a staff member was listed on, shaped for
// the personal schedule view.
type StaffEvent struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Location    string  `json:"location"`
	ClientName  string  `json:"client_name"`
	CompanyName string  `json:"company_name"`
	Hours       float64 `json:"hours"`
	Transport   float64 `json:"transport"`
}
