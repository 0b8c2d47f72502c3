package gen

import (
	"errors"
	"fmt"
	"testing"
)

type countConfig struct {
	Amount int
}

func (c countConfig) Validate() error {
	if c.Amount < 0 {
		return fmt.Errorf("amount must not be negative, got %d", c.Amount)
	}
	return nil
}

type emptyConfig struct{}

func (emptyConfig) Validate() error { return nil }

func TestConfMatchesDynamicType(t *testing.T) {
	c, err := Conf[countConfig](countConfig{Amount: 3})
	if err != nil {
		t.Fatalf("conf with matching type: %v", err)
	}
	if c.Amount != 3 {
		t.Fatalf("expected amount 3, got %d", c.Amount)
	}
}

func TestConfRejectsWrongType(t *testing.T) {
	if _, err := Conf[countConfig](emptyConfig{}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for mismatched config type, got %v", err)
	}
}

func TestConfRejectsInvalidValues(t *testing.T) {
	if _, err := Conf[countConfig](countConfig{Amount: -1}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for failing validation, got %v", err)
	}
}
