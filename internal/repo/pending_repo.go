// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository helpers for the
// PendingSubmission model, which preserves an in-progress analysis request
// across an external redirect (claim-once semantics with expiry).
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/palmveda/palm-backend/internal/domain"
)

// ErrAlreadyClaimed indicates the pending submission was claimed before.
var ErrAlreadyClaimed = errors.New("pending submission already claimed")

// CreatePending inserts a pending submission with a fresh correlation token
// and the given TTL, and returns the persisted record.
func CreatePending(ctx context.Context, db *gorm.DB, userID, selectedRole, imageDataURL string, ttl time.Duration) (*domain.PendingSubmission, error) {
	now := time.Now().UTC()
	rec := &domain.PendingSubmission{
		ID:           uuid.NewString(),
		Token:        NewShareID() + NewShareID(), // 20 chars, same alphabet as share ids
		UserID:       userID,
		SelectedRole: selectedRole,
		ImageDataURL: imageDataURL,
		Status:       domain.PendingStatusPending,
		CreatedAt:    now,
		ExpiresAt:    now.Add(ttl),
	}
	if err := db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

// ClaimPending atomically flips an unexpired pending submission to claimed
// and returns it. The conditional UPDATE makes the claim exactly-once even
// under concurrent callers holding the same token.
//
// Returns ErrNotFound when the token does not exist or has expired, and
// ErrAlreadyClaimed when it was claimed earlier.
func ClaimPending(ctx context.Context, db *gorm.DB, token string, now time.Time) (*domain.PendingSubmission, error) {
	res := db.WithContext(ctx).
		Model(&domain.PendingSubmission{}).
		Where("token = ? AND status = ? AND expires_at > ?", token, domain.PendingStatusPending, now).
		Update("status", domain.PendingStatusClaimed)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Distinguish "claimed before" from "never existed / expired".
		var rec domain.PendingSubmission
		err := db.WithContext(ctx).Where("token = ?", token).First(&rec).Error
		if err == nil && rec.Status == domain.PendingStatusClaimed && rec.ExpiresAt.After(now) {
			return nil, ErrAlreadyClaimed
		}
		return nil, ErrNotFound
	}

	var rec domain.PendingSubmission
	if err := db.WithContext(ctx).Where("token = ?", token).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// PurgeExpiredPending deletes pending submissions past their expiry. Called
// opportunistically by the outbox dispatcher sweep; returns rows removed.
func PurgeExpiredPending(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	res := db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&domain.PendingSubmission{})
	return res.RowsAffected, res.Error
}
