package event

import "github.com/sigevents/staffops-backend-go/internal/pkg/validator"

type StaffEventsRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *StaffEventsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	// The window is optional but must come as a pair
	if validator.IsEmpty(r.StartDate) != validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date and end_date must be provided together",
		})
	}
	if !validator.IsEmpty(r.StartDate) && !validator.IsValidDate(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY/MM/DD or YYYY-MM-DD)",
		})
	}
	if !validator.IsEmpty(r.EndDate) && !validator.IsValidDate(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY/MM/DD or YYYY-MM-DD)",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
