package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/food-order-service/pkg/util"
)

func TestBind_ValidRegisterPayload(t *testing.T) {
	var body UserRegisterRequest
	err := Bind(map[string]any{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "hunter22",
	}, &body)
	require.NoError(t, err)

	assert.Equal(t, "Ada", body.Name)
	assert.Equal(t, "ada@example.com", body.Email)
}

func TestBind_MissingRequiredFields(t *testing.T) {
	var body UserRegisterRequest
	err := Bind(map[string]any{"name": "Ada"}, &body)

	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Contains(t, domainErr.Details, "Email")
	assert.Contains(t, domainErr.Details, "Password")
}

func TestBind_BadEmail(t *testing.T) {
	var body LoginRequest
	err := Bind(map[string]any{"email": "not-an-email", "password": "x"}, &body)

	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "Email", firstKey(domainErr.Details))
}

func TestBind_CartItems(t *testing.T) {
	var body CartUpdateRequest
	err := Bind(map[string]any{
		"items": []any{
			map[string]any{"productId": "p1", "size": "medium", "quantity": 2},
		},
	}, &body)
	require.NoError(t, err)
	require.Len(t, body.Items, 1)
	assert.Equal(t, int64(2), body.Items[0].Quantity)
}

func TestBind_CartItemQuantityValidated(t *testing.T) {
	var body CartUpdateRequest
	err := Bind(map[string]any{
		"items": []any{
			map[string]any{"productId": "p1", "size": "medium", "quantity": 0},
		},
	}, &body)
	assert.Error(t, err)
}

func TestBind_UnknownFieldsIgnored(t *testing.T) {
	var body LoginRequest
	err := Bind(map[string]any{
		"email":    "ada@example.com",
		"password": "hunter22",
		"extra":    true,
	}, &body)
	assert.NoError(t, err)
}

func firstKey(m map[string]any) string {
	for k := range m {
		return k
	}
	return ""
}
