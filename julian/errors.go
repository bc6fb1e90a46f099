package julian

import (
	"errors"
)

var (
	// ErrInvalidDate is returned when calendar fields name a date or
	// time that does not exist, such as February 29th of 1900
	ErrInvalidDate = errors.New("invalid date")

	// ErrDomain is returned for non-finite inputs that would otherwise
	// propagate NaN through every derived computation
	ErrDomain = errors.New("value outside numeric domain")
)
