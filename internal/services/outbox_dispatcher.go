// Package services – OutboxDispatcher
//
// Background delivery loop for queued report notifications. Runs as a
// single goroutine owned by main: ticks on a fixed interval, drains due
// outbox rows, and delivers each with bounded retries and linear backoff.
// The same tick opportunistically purges expired pending submissions so no
// second timer is needed.
package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/palmveda/palm-backend/internal/domain"
	"github.com/palmveda/palm-backend/internal/mail"
	"github.com/palmveda/palm-backend/internal/repo"
)

// dispatchBatchSize caps how many outbox rows one tick will attempt.
const dispatchBatchSize = 20

// OutboxDispatcher drains the email outbox in the background.
type OutboxDispatcher struct {
	DB      *gorm.DB
	Mailer  mail.Mailer
	Pending *PendingService

	Interval    time.Duration
	MaxAttempts int
	Backoff     time.Duration
}

// Run blocks until ctx is cancelled, processing due outbox entries every
// Interval. Intended to be started as a goroutine from main.
func (d *OutboxDispatcher) Run(ctx context.Context) {
	t := time.NewTicker(d.Interval)
	defer t.Stop()

	log.Info().Dur("interval", d.Interval).Msg("email outbox dispatcher started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("email outbox dispatcher stopped")
			return
		case <-t.C:
			d.tick(ctx)
		}
	}
}

// tick processes one batch of due entries and purges expired pending
// submissions. Errors are logged, never fatal: the next tick retries.
func (d *OutboxDispatcher) tick(ctx context.Context) {
	now := time.Now().UTC()

	due, err := repo.DuePending(ctx, d.DB, now, dispatchBatchSize)
	if err != nil {
		log.Error().Err(err).Msg("load due outbox entries")
		return
	}
	for i := range due {
		d.deliver(ctx, &due[i])
	}

	if d.Pending != nil {
		if n, err := d.Pending.PurgeExpired(ctx); err != nil {
			log.Error().Err(err).Msg("purge expired pending submissions")
		} else if n > 0 {
			log.Debug().Int64("purged", n).Msg("expired pending submissions removed")
		}
	}
}

// deliver sends one queued email and records the outcome. A send failure
// bumps the attempt counter; the row goes terminal after MaxAttempts.
func (d *OutboxDispatcher) deliver(ctx context.Context, e *domain.EmailOutbox) {
	msgID, err := d.Mailer.SendReport(ctx, mail.ReportEmail{
		To:                 e.Recipient,
		FullName:           e.RecipientName,
		SelectedRole:       e.SelectedRole,
		CompatibilityScore: e.CompatibilityScore,
		Verdict:            e.Verdict,
		ReportURL:          e.ReportURL,
	})
	if err != nil {
		log.Warn().Err(err).
			Str("outbox_id", e.ID).
			Int("attempts", e.Attempts+1).
			Msg("report email delivery failed")
		if mErr := repo.MarkFailed(ctx, d.DB, e.ID, err, d.MaxAttempts, d.Backoff); mErr != nil {
			log.Error().Err(mErr).Str("outbox_id", e.ID).Msg("record outbox failure")
		}
		return
	}

	log.Info().
		Str("outbox_id", e.ID).
		Str("message_id", msgID).
		Str("share_id", e.ReportShareID).
		Msg("report email delivered")
	if mErr := repo.MarkSent(ctx, d.DB, e.ID); mErr != nil {
		log.Error().Err(mErr).Str("outbox_id", e.ID).Msg("record outbox success")
	}
}
