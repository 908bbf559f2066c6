package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/spec-kit/food-order-service/internal/config"
)

// EmailClient sends transactional receipt mail through the email provider's
// HTTP API.
type EmailClient struct {
	client *resty.Client
	domain string
	from   string
}

// NewEmailClient builds a client with basic auth and a bounded timeout.
func NewEmailClient(cfg config.EmailConfig) *EmailClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout()).
		SetBasicAuth("api", cfg.APIKey)

	return &EmailClient{client: client, domain: cfg.Domain, from: cfg.From}
}

// ReceiptLine is one row of the receipt body.
type ReceiptLine struct {
	Name     string
	Quantity int64
	Total    int64
}

// SendReceipt mails an order confirmation. It validates inputs before any
// network call; failure after a successful charge is reported to the
// caller, never compensated.
func (e *EmailClient) SendReceipt(ctx context.Context, toEmail string, lines []ReceiptLine, total int64) (*Result, error) {
	toEmail = strings.TrimSpace(toEmail)
	if toEmail == "" || !strings.Contains(toEmail, "@") {
		return nil, errors.New("recipient email is required")
	}
	if len(lines) == 0 {
		return nil, errors.New("no line items to mail")
	}

	resp, err := e.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"from":    e.from,
			"to":      toEmail,
			"subject": "Payment Confirmation",
			"text":    receiptBody(lines, total),
		}).
		Post(fmt.Sprintf("/v3/%s/messages", e.domain))
	if err != nil {
		return nil, fmt.Errorf("send mail request: %w", err)
	}

	return &Result{Status: resp.StatusCode(), Body: decodeBody(resp.Body())}, nil
}

func receiptBody(lines []ReceiptLine, total int64) string {
	var b strings.Builder
	b.WriteString("Dear sir/madam,\n\n")
	b.WriteString("Thank you very much for your patronage. Find details below on your order:\n\n")
	b.WriteString("Name\t\tquantity\t\ttotal\n")
	for _, line := range lines {
		fmt.Fprintf(&b, "%s\t\t%d\t\t%d\n", line.Name, line.Quantity, line.Total)
	}
	b.WriteString("-------------------------------------------------------------------------\n")
	fmt.Fprintf(&b, "Total Bill: Kes. %d\n\n", total)
	b.WriteString("Yours sincerely,\nNoritas Foodshack\n")
	return b.String()
}
