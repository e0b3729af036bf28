package response

import (
	"errors"
	"net/http"

	"github.com/sigevents/staffops-backend-go/internal/domain/auth"
	"github.com/sigevents/staffops-backend-go/internal/domain/invoice"
	"github.com/sigevents/staffops-backend-go/internal/domain/stats"
	"github.com/sigevents/staffops-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrForbidden):
		Forbidden(w, "Insufficient permissions")

	// Aggregation domain errors
	case errors.Is(err, stats.ErrInvalidRange):
		BadRequest(w, "Start date must not be after end date", nil)
	case errors.Is(err, stats.ErrInvalidDate):
		BadRequest(w, "Dates must be YYYY/MM/DD or YYYY-MM-DD", nil)
	case errors.Is(err, stats.ErrDatasetNotFound):
		NotFound(w, "Dataset not found")
	case errors.Is(err, stats.ErrIdentityNotFound):
		NotFound(w, "Staff member not found in current period")
	case errors.Is(err, stats.ErrNoCurrentWindow):
		NotFound(w, "No period has been queried yet")
	case errors.Is(err, stats.ErrSourceUnavailable):
		ServiceUnavailable(w, "Record source unavailable")

	// Invoice domain errors
	case errors.Is(err, invoice.ErrEventNotFound):
		NotFound(w, "Staffed event not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
