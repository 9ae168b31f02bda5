package dist

import "errors"

var (
	// ErrInvalidParam is returned when a provider parameter fails eager
	// validation, before any entropy is consumed.
	ErrInvalidParam = errors.New("invalid parameter")

	// ErrInvalidBounds is returned when interval bounds are not finite
	// or not ordered.
	ErrInvalidBounds = errors.New("bounds must be finite and ordered")

	// ErrUnsupportedWidth is the panic value when a generic provider is
	// instantiated with a numeric width it has no mapping for.
	ErrUnsupportedWidth = errors.New("unsupported numeric width")
)
