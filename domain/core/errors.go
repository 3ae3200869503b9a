package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Registry configuration errors
	ErrEmptyTypeName    = errors.New("type name cannot be empty")
	ErrNilConverter     = errors.New("converter function cannot be nil")
	ErrUnknownConverter = errors.New("unknown converter")

	// Inference errors
	ErrNoData = errors.New("insufficient data for analysis")
)

// Error constructors with context
func NewUnknownConverterError(name string) error {
	return fmt.Errorf("%w: no converter for type %q", ErrUnknownConverter, name)
}

// Error checking helpers
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrEmptyTypeName) ||
		errors.Is(err, ErrNilConverter) ||
		errors.Is(err, ErrUnknownConverter)
}

func IsNoDataError(err error) bool {
	return errors.Is(err, ErrNoData)
}
