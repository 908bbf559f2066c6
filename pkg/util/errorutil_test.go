package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError_PassesDomainErrorThrough(t *testing.T) {
	original := NewUnauthorized("nope")

	mapped := ToDomainError(original)
	require.NotNil(t, mapped)
	assert.Equal(t, "UNAUTHORIZED", mapped.Code)
	assert.Equal(t, http.StatusUnauthorized, mapped.HTTPStatus)
}

func TestToDomainError_WrapsUnknownErrors(t *testing.T) {
	mapped := ToDomainError(errors.New("boom"))
	require.NotNil(t, mapped)
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	// The wrapped cause stays internal; the message is generic.
	assert.Equal(t, "internal server error", mapped.Message)
	assert.ErrorContains(t, mapped, "boom")
}

func TestToDomainError_Nil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}

func TestNewProviderError_StatusPassThrough(t *testing.T) {
	err := NewProviderError("payment", http.StatusPaymentRequired, map[string]any{"error": "declined"})

	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, http.StatusPaymentRequired, domainErr.HTTPStatus)
	assert.Equal(t, "payment", domainErr.Details["provider"])
}

func TestNewProviderError_NonErrorStatusBecomesBadGateway(t *testing.T) {
	for _, status := range []int{0, 200, 302} {
		err := NewProviderError("email", status, nil)

		var domainErr *DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, http.StatusBadGateway, domainErr.HTTPStatus, "status %d", status)
	}
}

func TestNewRouteNotFound(t *testing.T) {
	err := NewRouteNotFound("/nope")

	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ROUTE_NOT_FOUND", domainErr.Code)
	assert.Equal(t, http.StatusNotFound, domainErr.HTTPStatus)
	assert.Equal(t, "/nope", domainErr.Details["path"])
}
