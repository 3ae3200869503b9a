package core

import (
	"errors"
	"testing"
)

func TestUnknownConverterError(t *testing.T) {
	err := NewUnknownConverterError("currency")
	if !errors.Is(err, ErrUnknownConverter) {
		t.Error("wrapped error should match ErrUnknownConverter")
	}
	if !IsConfigurationError(err) {
		t.Error("unknown converter is a configuration error")
	}
	if IsConfigurationError(ErrNoData) {
		t.Error("ErrNoData is not a configuration error")
	}
	if !IsNoDataError(ErrNoData) {
		t.Error("ErrNoData should match IsNoDataError")
	}
}
