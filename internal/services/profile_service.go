// Package services – ProfileService
//
// Owner-scoped profile reads and upserts. The caller identity always comes
// from the authenticated request context; a user can never address another
// user's profile through this service.
package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/palmveda/palm-backend/internal/domain"
	"github.com/palmveda/palm-backend/internal/repo"
)

// ProfileService manages per-user profile records.
type ProfileService struct {
	DB *gorm.DB
}

// Get returns the profile for userID, or ErrProfileNotFound when the user
// has never saved one.
func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	tr := otel.Tracer("services/ProfileService")
	ctx, span := tr.Start(ctx, "Get",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	p, err := repo.GetProfile(ctx, s.DB, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

// Upsert creates or replaces the caller's profile. The email address is
// validated because it becomes the recipient of report notifications;
// ErrInvalidEmail is returned for addresses net/mail cannot parse.
func (s *ProfileService) Upsert(ctx context.Context, userID, fullName, email, avatarURL string) (*domain.Profile, error) {
	tr := otel.Tracer("services/ProfileService")
	ctx, span := tr.Start(ctx, "Upsert",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	email = strings.TrimSpace(email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, ErrInvalidEmail
		}
	}

	now := time.Now().UTC()
	p := &domain.Profile{
		UserID:    userID,
		FullName:  strings.TrimSpace(fullName),
		Email:     email,
		AvatarURL: strings.TrimSpace(avatarURL),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.UpsertProfile(ctx, s.DB, p); err != nil {
		return nil, err
	}
	return p, nil
}
