package config

import "errors"

var (
	// ErrInvalidDim is returned when dim is neither 2 nor 3.
	ErrInvalidDim = errors.New("config: dim must be 2 or 3")

	// ErrInvalidDataSize is returned when data_size is not positive.
	ErrInvalidDataSize = errors.New("config: data_size must be positive")

	// ErrUnknownSelector is returned when default_selector names
	// something other than completion, face, edge, or corner.
	ErrUnknownSelector = errors.New("config: unknown default_selector")

	// ErrMissingBrick is returned by Forest.Connectivity when no brick
	// section was configured.
	ErrMissingBrick = errors.New("config: no brick connectivity configured")
)
