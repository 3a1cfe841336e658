package viewstate

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks calls no valid UI path can produce.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfRange is returned when a catalog index is outside the catalog.
	ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrInvalidArgument)
	// ErrUnknownPage is returned for page ids outside the five known pages.
	ErrUnknownPage = fmt.Errorf("%w: unknown page", ErrInvalidArgument)
)
