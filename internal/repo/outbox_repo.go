// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository helpers for the EmailOutbox
// model: enqueue, due-row selection, and delivery bookkeeping.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/palmveda/palm-backend/internal/domain"
)

// EnqueueEmail inserts a pending outbox row due immediately.
func EnqueueEmail(ctx context.Context, db *gorm.DB, e *domain.EmailOutbox) error {
	now := time.Now().UTC()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.Status = domain.OutboxStatusPending
	e.Attempts = 0
	e.NextAttemptAt = now
	e.CreatedAt = now
	e.UpdatedAt = now
	return db.WithContext(ctx).Create(e).Error
}

// DuePending returns up to limit pending rows whose NextAttemptAt has
// passed, oldest due first.
func DuePending(ctx context.Context, db *gorm.DB, now time.Time, limit int) ([]domain.EmailOutbox, error) {
	var out []domain.EmailOutbox
	err := db.WithContext(ctx).
		Where("status = ? AND next_attempt_at <= ?", domain.OutboxStatusPending, now).
		Order("next_attempt_at asc").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// MarkSent records a successful delivery.
func MarkSent(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).
		Model(&domain.EmailOutbox{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     domain.OutboxStatusSent,
			"last_error": "",
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkFailed records a delivery failure. The attempt counter is incremented;
// while attempts remain the row stays pending with the next attempt pushed
// out by backoff, otherwise it becomes terminally failed.
func MarkFailed(ctx context.Context, db *gorm.DB, id string, sendErr error, maxAttempts int, backoff time.Duration) error {
	now := time.Now().UTC()
	var rec domain.EmailOutbox
	if err := db.WithContext(ctx).Where("id = ?", id).First(&rec).Error; err != nil {
		return err
	}

	updates := map[string]any{
		"attempts":   rec.Attempts + 1,
		"last_error": sendErr.Error(),
		"updated_at": now,
	}
	if rec.Attempts+1 >= maxAttempts {
		updates["status"] = domain.OutboxStatusFailed
	} else {
		updates["status"] = domain.OutboxStatusPending
		updates["next_attempt_at"] = now.Add(backoff * time.Duration(rec.Attempts+1))
	}
	return db.WithContext(ctx).
		Model(&domain.EmailOutbox{}).
		Where("id = ?", id).
		Updates(updates).Error
}
