package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPassesThroughTaxonomyErrors(t *testing.T) {
	err := NotFound("Documento não encontrado")

	ae := From(err)
	assert.Equal(t, CodeNotFound, ae.Code)
	assert.Equal(t, 404, ae.Status)
	assert.Equal(t, "Documento não encontrado", ae.Message)
}

func TestFromUnwrapsNestedErrors(t *testing.T) {
	wrapped := fmt.Errorf("sign failed: %w", ErrDuplicateSignature)

	ae := From(wrapped)
	assert.Equal(t, CodeDuplicateSignature, ae.Code)
	assert.Equal(t, 409, ae.Status)
	assert.True(t, errors.Is(wrapped, ErrDuplicateSignature))
}

func TestFromHidesUnknownErrors(t *testing.T) {
	ae := From(errors.New("pq: connection refused"))

	assert.Equal(t, CodeInternal, ae.Code)
	assert.Equal(t, 500, ae.Status)
	assert.NotContains(t, ae.Message, "connection refused")
}

func TestStoreSurfacesCauseMessage(t *testing.T) {
	cause := errors.New("UNIQUE constraint failed")
	ae := Store(cause)

	assert.Equal(t, CodeValidation, ae.Code)
	assert.Equal(t, 400, ae.Status)
	assert.Equal(t, "UNIQUE constraint failed", ae.Message)
	require.ErrorIs(t, ae, cause)
}

func TestIsMatchesByCode(t *testing.T) {
	assert.True(t, errors.Is(Auth("Token inválido"), ErrInvalidCredentials))
	assert.False(t, errors.Is(NotFound("x"), ErrInvalidCredentials))
}
