package stats

import "errors"

// Aggregation domain errors
var (
	ErrInvalidRange      = errors.New("start date must not be after end date")
	ErrInvalidDate       = errors.New("date must be in YYYY-MM-DD or YYYY/MM/DD format")
	ErrSourceUnavailable = errors.New("record source is unavailable")
	ErrDatasetNotFound   = errors.New("dataset not found")
	ErrIdentityNotFound  = errors.New("staff identity not found in current statistics")
	ErrNoCurrentWindow   = errors.New("no statistics have been computed for this dataset yet")
)
