package hebcal

import "errors"

var (
	// ErrUnavailable indicates the calendar conversion service could not
	// be reached.
	ErrUnavailable = errors.New("calendar conversion service unavailable")

	// ErrTimeout indicates a conversion request exceeded the configured
	// timeout.
	ErrTimeout = errors.New("calendar conversion request timed out")

	// ErrBadResponse indicates the conversion service returned a response
	// that could not be interpreted as a date.
	ErrBadResponse = errors.New("malformed calendar conversion response")
)
