// Package services – AnalysisService
//
// This file implements AnalysisService, the application-level component that
// owns the analysis pipeline: input validation, the single upstream model
// call, JSON extraction, schema validation, best-effort persistence, and
// notification enqueueing.
//
// Persistence and notification are deliberately decoupled from the result:
// a store failure is logged and the caller still receives the analysis
// (without a share id), and notifications only ever enter the outbox here.
//
// Observability: public methods are OpenTelemetry-instrumented; spans carry
// the selected role and, when known, the owner id.
package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/palmveda/palm-backend/internal/ai"
	"github.com/palmveda/palm-backend/internal/catalog"
	"github.com/palmveda/palm-backend/internal/domain"
	"github.com/palmveda/palm-backend/internal/repo"
	"github.com/palmveda/palm-backend/internal/report"
)

// AnalysisResult is the outcome of a successful analysis. ShareID is empty
// when persistence failed or was skipped; the analysis itself is still valid.
type AnalysisResult struct {
	Report  *report.AnalysisReport
	ShareID string
}

// AnalysisService coordinates the analysis pipeline around the upstream
// model client.
type AnalysisService struct {
	DB *gorm.DB
	AI ai.Analyzer

	// AppBaseURL is used to build the shared report link placed in
	// notification emails.
	AppBaseURL string
}

// Analyze runs one palm analysis for the given inputs.
//
// Pipeline: fail fast on missing or malformed inputs, send exactly one
// multimodal request upstream, extract and validate the JSON report, then
// persist best-effort. Upstream and parse errors propagate unchanged so the
// handler can map them onto the response contract; store errors do not
// propagate at all.
//
// userID may be empty: anonymous analyses are stored without an owner and
// remain reachable only through their share id.
func (s *AnalysisService) Analyze(ctx context.Context, userID, imageDataURL, roleID string) (*AnalysisResult, error) {
	tr := otel.Tracer("services/AnalysisService")
	ctx, span := tr.Start(ctx, "Analyze",
		trace.WithAttributes(
			attribute.String("analysis.role", roleID),
			attribute.String("user.id", userID),
		),
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

	raw, err := s.AI.AnalyzePalm(ctx, imageDataURL, roleID, catalog.Describe(roleID))
	if err != nil {
		return nil, err
	}

	parsed, err := report.Extract(raw)
	if err != nil {
		return nil, err
	}
	if err := report.Validate(parsed, raw); err != nil {
		return nil, err
	}

	res := &AnalysisResult{Report: parsed}
	res.ShareID = s.persist(ctx, userID, roleID, parsed)
	return res, nil
}

// persist stores the report and returns its share id. Failures are logged
// and swallowed: the user still sees the analysis, only sharing and email
// are skipped.
func (s *AnalysisService) persist(ctx context.Context, userID, roleID string, r *report.AnalysisReport) string {
	analysisJSON, err := r.MarshalJSONString()
	if err != nil {
		log.Error().Err(err).Str("role", roleID).Msg("serialize analysis report")
		return ""
	}

	var owner *string
	if userID != "" {
		owner = &userID
	}
	stored, err := repo.CreateReport(ctx, s.DB, owner, roleID, r.CompatibilityScore, r.Verdict, analysisJSON)
	if err != nil {
		log.Error().Err(err).Str("role", roleID).Msg("store analysis report")
		return ""
	}

	s.enqueueNotification(ctx, userID, stored, r)
	return stored.ShareID
}

// enqueueNotification adds an outbox row for the report owner when a profile
// with an email address exists. No profile, no email: anonymous reports are
// shared by link only. Enqueue failures are logged and swallowed.
func (s *AnalysisService) enqueueNotification(ctx context.Context, userID string, stored *domain.Report, r *report.AnalysisReport) {
	if userID == "" {
		return
	}
	profile, err := repo.GetProfile(ctx, s.DB, userID)
	if err != nil || strings.TrimSpace(profile.Email) == "" {
		return
	}

	entry := &domain.EmailOutbox{
		ReportShareID:      stored.ShareID,
		Recipient:          profile.Email,
		RecipientName:      profile.FullName,
		SelectedRole:       stored.SelectedRole,
		CompatibilityScore: r.CompatibilityScore,
		Verdict:            r.Verdict,
		ReportURL:          s.AppBaseURL + "/report/" + stored.ShareID,
	}
	if err := repo.EnqueueEmail(ctx, s.DB, entry); err != nil {
		log.Error().Err(err).Str("share_id", stored.ShareID).Msg("enqueue report email")
	}
}
