// Package services – PendingService
//
// Stash-and-claim around external redirects. A client about to leave the
// app (payment flow, OAuth hop) stashes its image and role here, keeps only
// the returned token, and claims the submission back when it returns. A
// stash is single-use and expires after a configurable TTL.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/palmveda/palm-backend/internal/domain"
	"github.com/palmveda/palm-backend/internal/repo"
	"github.com/palmveda/palm-backend/internal/report"
)

// PendingService stores and releases in-flight analysis submissions.
type PendingService struct {
	DB  *gorm.DB
	TTL time.Duration
}

// Stash validates and stores an in-flight submission, returning its
// correlation token and expiry. The image is validated up front so an
// unusable submission is rejected before the redirect, not after.
func (s *PendingService) Stash(ctx context.Context, userID, imageDataURL, roleID string) (*domain.PendingSubmission, error) {
	tr := otel.Tracer("services/PendingService")
	ctx, span := tr.Start(ctx, "Stash",
		trace.WithAttributes(attribute.String("analysis.role", roleID)),
	)
	defer span.End()

	imageDataURL = strings.TrimSpace(imageDataURL)
	roleID = strings.TrimSpace(roleID)
	if imageDataURL == "" || roleID == "" {
		return nil, ErrMissingInput
	}
	if err := report.ValidateImageDataURL(imageDataURL); err != nil {
		return nil, ErrInvalidImage
	}

	return repo.CreatePending(ctx, s.DB, userID, roleID, imageDataURL, s.TTL)
}

// Claim releases a stashed submission by token. Exactly one claim succeeds
// per token; repeat claims get ErrPendingNotFound (used tokens), expired or
// unknown tokens likewise. The zero distinction between "never existed" and
// "expired" is deliberate: the token is a secret, and probing must not
// reveal which.
func (s *PendingService) Claim(ctx context.Context, token string) (*domain.PendingSubmission, error) {
	tr := otel.Tracer("services/PendingService")
	ctx, span := tr.Start(ctx, "Claim")
	defer span.End()

	p, err := repo.ClaimPending(ctx, s.DB, token, time.Now().UTC())
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) || errors.Is(err, repo.ErrAlreadyClaimed) {
			return nil, ErrPendingNotFound
		}
		return nil, err
	}
	return p, nil
}

// PurgeExpired deletes stashes past their expiry and returns the number of
// rows removed. Called periodically by the outbox dispatcher loop.
func (s *PendingService) PurgeExpired(ctx context.Context) (int64, error) {
	return repo.PurgeExpiredPending(ctx, s.DB, time.Now().UTC())
}
