// Package services – NotificationService
//
// Synchronous, explicit report emails: the "email me this report" button.
// The recipient is always given by the caller, never looked up, so a report
// can be sent to any address its viewer chooses. Background delivery of
// owner notifications lives in OutboxDispatcher, not here.
package services

import (
	"context"
	"net/mail"
	"strings"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	mailpkg "github.com/palmveda/palm-backend/internal/mail"
	"github.com/palmveda/palm-backend/internal/repo"
)

// NotificationService sends one-off report emails on demand.
type NotificationService struct {
	DB         *gorm.DB
	Mailer     mailpkg.Mailer
	AppBaseURL string
}

// SendReportEmail delivers an existing report to the given address and
// returns the provider message id. The report is re-read from storage so
// the email always reflects persisted data, not whatever the client posted.
func (s *NotificationService) SendReportEmail(ctx context.Context, shareID, recipient, recipientName string) (string, error) {
	tr := otel.Tracer("services/NotificationService")
	ctx, span := tr.Start(ctx, "SendReportEmail",
		trace.WithAttributes(attribute.String("report.share_id", shareID)),
	)
	defer span.End()

	recipient = strings.TrimSpace(recipient)
	if shareID == "" || recipient == "" {
		return "", ErrMissingInput
	}
	if _, err := mail.ParseAddress(recipient); err != nil {
		return "", ErrInvalidEmail
	}

	r, err := repo.GetReportByShareID(ctx, s.DB, shareID)
	if err != nil {
		if err == repo.ErrNotFound {
			return "", ErrReportNotFound
		}
		return "", err
	}

	return s.Mailer.SendReport(ctx, mailpkg.ReportEmail{
		To:                 recipient,
		FullName:           strings.TrimSpace(recipientName),
		SelectedRole:       r.SelectedRole,
		CompatibilityScore: r.CompatibilityScore,
		Verdict:            r.Verdict,
		ReportURL:          s.AppBaseURL + "/report/" + r.ShareID,
	})
}
