package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/silzatelesols/billify/internal/config"
	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

var (
	ErrNotConfigured = errors.New("mailer_not_configured")
	ErrSendFailed    = errors.New("email_send_failed")
)

// Notification is the payload posted to the notification endpoint when
// an invoice PDF is ready.
type Notification struct {
	ClientEmail   string `json:"client_email"`
	ClientName    string `json:"client_name"`
	CompanyName   string `json:"company_name"`
	InvoiceNumber string `json:"invoice_number"`
	InvoiceLink   string `json:"invoice_link"`
	DueDate       string `json:"due_date"`
}

// Mailer delivers invoice notifications.
type Mailer interface {
	SendInvoiceNotification(ctx context.Context, n Notification) error
}

// HTTPMailer posts notifications to an external email service. Any 2xx
// response counts as accepted.
type HTTPMailer struct {
	endpoint string
	client   *http.Client
	log      *zap.Logger
}

func NewHTTPMailer(cfg config.Config, client *http.Client, log *zap.Logger) *HTTPMailer {
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}
	return &HTTPMailer{
		endpoint: cfg.Email.Endpoint,
		client:   client,
		log:      log.Named("mailer"),
	}
}

func (m *HTTPMailer) SendInvoiceNotification(ctx context.Context, n Notification) error {
	if m.endpoint == "" {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		m.log.Error("notification request failed", zap.Error(err), zap.String("invoice_number", n.InvoiceNumber))
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		m.log.Error("notification rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("invoice_number", n.InvoiceNumber),
		)
		return fmt.Errorf("%w: status %d", ErrSendFailed, resp.StatusCode)
	}

	m.log.Info("invoice notification sent",
		zap.String("invoice_number", n.InvoiceNumber),
		zap.String("client_email", n.ClientEmail),
	)
	return nil
}
