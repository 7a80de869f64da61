// Handler wiring for the palm analysis API.
//
// This file defines the service contracts the HTTP layer consumes and the
// Handlers aggregate that binds them. Handlers stay transport-thin: they
// validate input, call a service, and translate the result (including
// sentinel errors) into the endpoint's response contract.
package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/palmveda/palm-backend/internal/domain"
	"github.com/palmveda/palm-backend/internal/services"
	"github.com/palmveda/palm-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// AnalysisService runs one palm analysis end to end.
//
// Implementations must be safe for concurrent use and honor the provided
// context for cancellation and timeouts.
type AnalysisService interface {
	// Analyze validates inputs, calls the model, and persists best-effort.
	Analyze(ctx context.Context, userID, imageDataURL, roleID string) (*services.AnalysisResult, error)
}

// ReportService exposes read access to stored reports.
type ReportService interface {
	// GetShared fetches a report by its public share id.
	GetShared(ctx context.Context, shareID string) (*domain.Report, error)
	// ListPage returns a page of the user's reports and the total count.
	ListPage(ctx context.Context, userID string, offset, limit int) ([]domain.Report, int64, error)
	// Stats returns report count and latest creation time for ETag checks.
	Stats(ctx context.Context, userID string) (int64, *time.Time, error)
}

// ProfileService manages the caller's profile record.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Upsert(ctx context.Context, userID, fullName, email, avatarURL string) (*domain.Profile, error)
}

// PendingService stashes and releases in-flight submissions around external
// redirects.
type PendingService interface {
	Stash(ctx context.Context, userID, imageDataURL, roleID string) (*domain.PendingSubmission, error)
	Claim(ctx context.Context, token string) (*domain.PendingSubmission, error)
}

// NotificationService sends one-off report emails on demand.
type NotificationService interface {
	// SendReportEmail delivers the stored report to recipient and returns
	// the provider message id.
	SendReportEmail(ctx context.Context, shareID, recipient, recipientName string) (string, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for analysis, reports, profiles,
// pending submissions, and notifications. It depends on service interfaces
// so transport concerns stay separate from business logic.
type Handlers struct {
	analysisSvc AnalysisService
	reportSvc   ReportService
	profileSvc  ProfileService
	pendingSvc  PendingService
	notifySvc   NotificationService
}

// New constructs a Handlers instance bound to the given services.
func New(analysisSvc AnalysisService, reportSvc ReportService, profileSvc ProfileService, pendingSvc PendingService, notifySvc NotificationService) *Handlers {
	return &Handlers{
		analysisSvc: analysisSvc,
		reportSvc:   reportSvc,
		profileSvc:  profileSvc,
		pendingSvc:  pendingSvc,
		notifySvc:   notifySvc,
	}
}

// userID extracts the authenticated user id from Gin context (set by
// upstream auth middleware). If absent it falls back to the "X-User-ID"
// header. An empty result means the caller is anonymous; endpoints that
// require identity reject that themselves.
func userID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if c != nil && c.Request != nil {
		if h := strings.TrimSpace(c.GetHeader("X-User-ID")); h != "" {
			return h
		}
	}
	return ""
}

//
// DTOs shared across handler files
//

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// clampPagination parses and bounds the page and page_size query params,
// returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	pageSize = utils.Clamp(pageSize, 1, maxPageSize)
	return
}
