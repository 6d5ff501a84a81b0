package config

import (
	"errors"
	"testing"
)

func TestDefault_Validates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default() failed to validate: %v", err)
	}
}

func TestTesting_Validates(t *testing.T) {
	if err := Testing().Validate(); err != nil {
		t.Errorf("Testing() failed to validate: %v", err)
	}
}

func TestObservable_EnablesAmbientStack(t *testing.T) {
	cfg := Observable()
	if !cfg.EnableMetrics || !cfg.EnableStepLogging {
		t.Errorf("Observable() = %+v, want both ambient toggles on", cfg)
	}
}

func TestValidate_RejectsNegativeLimits(t *testing.T) {
	cfg := Default()
	cfg.MaxNodes = -1
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidLimit) {
		t.Errorf("Validate() = %v, want ErrInvalidLimit", err)
	}
}

func TestClone_Independent(t *testing.T) {
	cfg := Default()
	clone := cfg.Clone()
	clone.MaxNodes = 1
	if cfg.MaxNodes == 1 {
		t.Error("Clone() did not produce an independent copy")
	}
}
