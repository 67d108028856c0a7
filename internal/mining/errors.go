package mining

import "errors"

var (
	// ErrDivisionUndefined is returned when support is requested over zero records.
	ErrDivisionUndefined = errors.New("support undefined: total record count is zero")

	// ErrInvalidConfiguration is returned for a worker count that cannot be used.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
