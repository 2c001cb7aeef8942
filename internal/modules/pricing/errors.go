package pricing

import "errors"

var (
	ErrValidation    = errors.New("invalid pricing request")
	ErrCourtNotFound = errors.New("court not found")
)
