package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/food-order-service/internal/config"
)

func emailClientFor(server *httptest.Server) *EmailClient {
	return NewEmailClient(config.EmailConfig{
		BaseURL:        server.URL,
		Domain:         "mg.example.com",
		APIKey:         "key-123",
		From:           "Shop <shop@example.com>",
		TimeoutSeconds: 2,
	})
}

func testLines() []ReceiptLine {
	return []ReceiptLine{
		{Name: "Pizza", Quantity: 2, Total: 1000},
		{Name: "Soda", Quantity: 1, Total: 150},
	}
}

func TestSendReceipt_SendsFormAndAuth(t *testing.T) {
	var captured *http.Request
	var form map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		require.NoError(t, r.ParseForm())
		form = map[string]string{
			"from":    r.PostForm.Get("from"),
			"to":      r.PostForm.Get("to"),
			"subject": r.PostForm.Get("subject"),
			"text":    r.PostForm.Get("text"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"msg-1","message":"Queued"}`))
	}))
	defer server.Close()

	result, err := emailClientFor(server).SendReceipt(context.Background(), "a@b.com", testLines(), 1150)
	require.NoError(t, err)

	assert.Equal(t, "/v3/mg.example.com/messages", captured.URL.Path)

	user, pass, ok := captured.BasicAuth()
	require.True(t, ok)
	assert.Equal(t, "api", user)
	assert.Equal(t, "key-123", pass)

	assert.Equal(t, "Shop <shop@example.com>", form["from"])
	assert.Equal(t, "a@b.com", form["to"])
	assert.Equal(t, "Payment Confirmation", form["subject"])
	assert.Contains(t, form["text"], "Pizza")
	assert.Contains(t, form["text"], "Total Bill: Kes. 1150")

	assert.True(t, result.OK())
	assert.Equal(t, "Queued", result.Body["message"])
}

func TestSendReceipt_InvalidRecipient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request should be made for an invalid recipient")
	}))
	defer server.Close()

	client := emailClientFor(server)

	_, err := client.SendReceipt(context.Background(), "", testLines(), 1150)
	assert.Error(t, err)

	_, err = client.SendReceipt(context.Background(), "   ", testLines(), 1150)
	assert.Error(t, err)

	_, err = client.SendReceipt(context.Background(), "not-an-email", testLines(), 1150)
	assert.Error(t, err)
}

func TestSendReceipt_EmptyLines(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request should be made for an empty cart")
	}))
	defer server.Close()

	_, err := emailClientFor(server).SendReceipt(context.Background(), "a@b.com", nil, 0)
	assert.Error(t, err)
}

func TestSendReceipt_ProviderRejectionPassesThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"bad api key"}`))
	}))
	defer server.Close()

	result, err := emailClientFor(server).SendReceipt(context.Background(), "a@b.com", testLines(), 1150)
	require.NoError(t, err)

	assert.False(t, result.OK())
	assert.Equal(t, http.StatusUnauthorized, result.Status)
	assert.Equal(t, "bad api key", result.Body["message"])
}
