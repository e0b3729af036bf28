package dashboard

import (
	"github.com/sigevents/staffops-backend-go/internal/domain/stats"
	"github.com/sigevents/staffops-backend-go/internal/domain/steps"
	"github.com/sigevents/staffops-backend-go/internal/pkg/validator"
)

type DashboardRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *DashboardRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if !validator.IsValidDate(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY/MM/DD or YYYY-MM-DD)",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if !validator.IsValidDate(r.EndDate) {
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

type DashboardResponse struct {
	SignatureWaiters *stats.WindowStatistics `json:"signature_waiters"`
	CasualWaiters    *stats.WindowStatistics `json:"casual_waiters"`
	Steps            steps.StepsSummary      `json:"steps"`
}
