package invoice

import "errors"

var (
	ErrEventNotFound = errors.New("staffed event not found")
)
