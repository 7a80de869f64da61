// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Report
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a report is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"crypto/rand"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/palmveda/palm-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for consistency across the service
// layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// shareIDLen is the length of generated share identifiers. 10 characters of
// base62 give ~59 bits, plenty for a collision-free opaque token at this
// table's scale.
const shareIDLen = 10

const shareIDAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewShareID returns a fresh random URL-safe share identifier.
func NewShareID() string {
	b := make([]byte, shareIDLen)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms; fall back to a
		// UUID-derived token rather than panicking in a request path.
		return strings.ReplaceAll(uuid.NewString(), "-", "")[:shareIDLen]
	}
	for i := range b {
		b[i] = shareIDAlphabet[int(b[i])%len(shareIDAlphabet)]
	}
	return string(b)
}

// CreateReport inserts a new Report row with a generated UUID primary key and
// a fresh ShareID, and returns the persisted record. On the extremely
// unlikely ShareID unique collision the insert is retried once with a new
// token before the error is propagated.
func CreateReport(ctx context.Context, db *gorm.DB, userID *string, selectedRole string, score int, verdict, analysisJSON string) (*domain.Report, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		r := &domain.Report{
			ID:                 uuid.NewString(),
			ShareID:            NewShareID(),
			UserID:             userID,
			SelectedRole:       selectedRole,
			CompatibilityScore: score,
			Verdict:            verdict,
			Analysis:           analysisJSON,
			CreatedAt:          time.Now().UTC(),
		}
		err := db.WithContext(ctx).Create(r).Error
		if err == nil {
			return r, nil
		}
		lastErr = err
		if !isUniqueViolation(err) {
			break
		}
	}
	return nil, lastErr
}

// GetReportByShareID fetches a single report by its share identifier. Reads
// are public by design: no ownership check is performed here. Returns
// ErrNotFound when no row matches.
func GetReportByShareID(ctx context.Context, db *gorm.DB, shareID string) (*domain.Report, error) {
	var r domain.Report
	err := db.WithContext(ctx).
		Where("share_id = ?", shareID).
		First(&r).Error
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// CountReports returns the total number of reports owned by userID.
func CountReports(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Report{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

// ListReportsPage returns a paginated slice of reports owned by userID,
// ordered by creation time descending. Use CountReports for pagination
// metadata. The caller computes offset and limit.
func ListReportsPage(ctx context.Context, db *gorm.DB, userID string, offset, limit int) ([]domain.Report, error) {
	var out []domain.Report
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// ReportsStats returns aggregate metadata for a user's reports: total rows
// and the greatest CreatedAt among them. Used for weak ETag generation on
// the listing endpoint. When the user has no reports the count is 0 and
// maxCreatedAt is nil.
func ReportsStats(ctx context.Context, db *gorm.DB, userID string) (count int64, maxCreatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.Report{}).Where("user_id = ?", userID)

	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Latest created_at via ORDER BY (avoid MAX() -> TEXT in SQLite).
	var row struct {
		CreatedAt time.Time
	}
	if err = q.Select("created_at").Order("created_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.CreatedAt, nil
}

// isUniqueViolation detects unique-constraint failures across drivers.
// glebarez/sqlite often returns plain-text errors for UNIQUE violations.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "unique constraint failed") ||
		strings.Contains(low, "constraint failed: unique") ||
		strings.Contains(low, "duplicate key")
}
