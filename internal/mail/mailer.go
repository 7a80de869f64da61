// Package mail delivers report notification emails through the Resend API.
// Delivery is best-effort by design: the analysis flow never blocks on it,
// and failures are logged or retried by the outbox, never surfaced as an
// analysis error.
package mail

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/palmveda/palm-backend/internal/config"
)

// ErrNotConfigured indicates the email API key is absent. Reported at first
// use; startup does not require the key.
var ErrNotConfigured = errors.New("email service not configured")

// ReportEmail is one report notification to deliver.
type ReportEmail struct {
	To                 string
	FullName           string // optional; greeting falls back to "Hello"
	SelectedRole       string
	CompatibilityScore int
	Verdict            string
	ReportURL          string
}

// Mailer is the delivery contract used by the notification service and the
// outbox dispatcher. Tests substitute stubs.
type Mailer interface {
	// SendReport delivers one report email and returns the provider's
	// message id.
	SendReport(ctx context.Context, e ReportEmail) (string, error)
}

// ResendMailer sends report emails through the Resend transactional API.
type ResendMailer struct {
	client *resend.Client
	from   string
}

// NewResendMailer builds a mailer from configuration. A mailer built without
// an API key is valid but every send returns ErrNotConfigured.
func NewResendMailer(cfg config.EmailConfig) *ResendMailer {
	m := &ResendMailer{from: cfg.From}
	if cfg.APIKey != "" {
		m.client = resend.NewClient(cfg.APIKey)
	}
	return m
}

// SendReport implements Mailer.
func (m *ResendMailer) SendReport(ctx context.Context, e ReportEmail) (string, error) {
	if m.client == nil {
		return "", ErrNotConfigured
	}

	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{e.To},
		Subject: fmt.Sprintf("Your Palm Analysis Report - %s (%d%% Match)", e.SelectedRole, e.CompatibilityScore),
		Html:    reportHTML(e),
	})
	if err != nil {
		return "", err
	}
	return sent.Id, nil
}
