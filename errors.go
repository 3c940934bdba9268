package frascr

import (
	"errors"
	"fmt"
)

// Palette and conversion errors. Callers test with errors.Is; returned
// errors usually wrap one of these with detail.
var (
	// ErrBadCall reports a missing or invalid argument.
	ErrBadCall = errors.New("frascr: bad call")

	// ErrAllocation reports that palette storage could not be reserved.
	ErrAllocation = errors.New("frascr: allocation refused")

	// ErrUnknownName reports a name that matches no colour space, mode or illuminant.
	ErrUnknownName = errors.New("frascr: unknown name")

	// ErrDimensionMismatch reports a swatch count that differs from the declared size.
	ErrDimensionMismatch = errors.New("frascr: swatch count does not match palette size")

	// ErrSpaceMismatch reports a swatch whose colour space differs from the palette's.
	// It wraps ErrBadCall.
	ErrSpaceMismatch = fmt.Errorf("%w: swatch colour space differs from palette", ErrBadCall)

	// ErrNoResult reports a query that produced no colour.
	ErrNoResult = errors.New("frascr: query produced no result")

	// ErrUnknownMode reports a query mode other than sample or linear.
	ErrUnknownMode = errors.New("frascr: unknown palette mode")
)
