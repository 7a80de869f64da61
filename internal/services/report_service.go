// Package services – ReportService
//
// Read-side operations over stored reports: public share-link lookups and
// the owner's paginated listing. Writes happen only in AnalysisService.
package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/palmveda/palm-backend/internal/domain"
	"github.com/palmveda/palm-backend/internal/repo"
)

// ReportService exposes read access to persisted reports.
type ReportService struct {
	DB *gorm.DB
}

// GetShared fetches a report by its share identifier. Anyone holding the
// share id may read the report; there is no ownership check. Returns
// ErrReportNotFound when no such report exists.
func (s *ReportService) GetShared(ctx context.Context, shareID string) (*domain.Report, error) {
	tr := otel.Tracer("services/ReportService")
	ctx, span := tr.Start(ctx, "GetShared",
		trace.WithAttributes(attribute.String("report.share_id", shareID)),
	)
	defer span.End()

	r, err := repo.GetReportByShareID(ctx, s.DB, shareID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return r, nil
}

// ListPage returns one page of the user's reports, newest first, together
// with the total row count for pagination metadata.
func (s *ReportService) ListPage(ctx context.Context, userID string, offset, limit int) ([]domain.Report, int64, error) {
	tr := otel.Tracer("services/ReportService")
	ctx, span := tr.Start(ctx, "ListPage",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.Int("page.offset", offset),
			attribute.Int("page.limit", limit),
		),
	)
	defer span.End()

	total, err := repo.CountReports(ctx, s.DB, userID)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Report{}, 0, nil
	}

	items, err := repo.ListReportsPage(ctx, s.DB, userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Stats returns the user's report count and latest creation time. The
// listing handler derives its weak ETag from these two values.
func (s *ReportService) Stats(ctx context.Context, userID string) (int64, *time.Time, error) {
	return repo.ReportsStats(ctx, s.DB, userID)
}
