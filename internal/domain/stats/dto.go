package stats

import (
	"github.com/sigevents/staffops-backend-go/internal/pkg/validator"
)

type WindowRequest struct {
	Dataset   string `json:"dataset"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *WindowRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Dataset) {
		errs = append(errs, validator.ValidationError{
			Field:   "dataset",
			Message: "dataset is required",
		})
	}
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	}
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ApplyRateRequest sets the hourly rate for one staff identity. Rate is
// kept as raw text: malformed numeric input degrades to zero instead of
// rejecting the keystroke.
type ApplyRateRequest struct {
	Dataset  string `json:"dataset"`
	Identity string `json:"identity"`
	Rate     string `json:"rate"`
}

func (r *ApplyRateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Dataset) {
		errs = append(errs, validator.ValidationError{
			Field:   "dataset",
			Message: "dataset is required",
		})
	}
	if validator.IsEmpty(r.Identity) {
		errs = append(errs, validator.ValidationError{
			Field:   "identity",
			Message: "identity is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
