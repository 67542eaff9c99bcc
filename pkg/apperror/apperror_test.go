package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"invalid value", InvalidValue("Invalid quantity"), KindInvalidValue},
		{"wrapped", fmt.Errorf("checkout: %w", Unauthorized()), KindUnauthorized},
		{"not found", NotFound("Invalid product id"), KindNotFound},
		{"plain error", errors.New("boom"), KindInternal},
		{"credentials", InvalidCredentials(), KindInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestMessageOfHidesInternalDetail(t *testing.T) {
	err := Internal("failed to save transaction", errors.New("pq: connection refused"))

	assert.Equal(t, "Internal server error", MessageOf(err))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestErrorsIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("wrap: %w", InvalidValue("Invalid cart"))

	assert.True(t, errors.Is(err, ErrInvalidValue))
	assert.True(t, errors.Is(err, InvalidValue("Invalid cart")))
	assert.False(t, errors.Is(err, InvalidValue("Invalid quantity")))
	assert.False(t, errors.Is(err, ErrUnauthorized))
}
