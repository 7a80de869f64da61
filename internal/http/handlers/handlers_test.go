package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/palmveda/palm-backend/internal/domain"
	"github.com/palmveda/palm-backend/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

//
// Service stubs. Each records its last call and returns canned values.
//

type stubAnalysisSvc struct {
	calls    int
	gotUser  string
	gotImage string
	gotRole  string

	res *services.AnalysisResult
	err error
}

func (s *stubAnalysisSvc) Analyze(ctx context.Context, userID, imageDataURL, roleID string) (*services.AnalysisResult, error) {
	s.calls++
	s.gotUser, s.gotImage, s.gotRole = userID, imageDataURL, roleID
	return s.res, s.err
}

type stubReportSvc struct {
	shared    *domain.Report
	sharedErr error

	items   []domain.Report
	total   int64
	listErr error

	statsCount int64
	statsTS    *time.Time
	statsErr   error
}

func (s *stubReportSvc) GetShared(ctx context.Context, shareID string) (*domain.Report, error) {
	return s.shared, s.sharedErr
}

func (s *stubReportSvc) ListPage(ctx context.Context, userID string, offset, limit int) ([]domain.Report, int64, error) {
	return s.items, s.total, s.listErr
}

func (s *stubReportSvc) Stats(ctx context.Context, userID string) (int64, *time.Time, error) {
	return s.statsCount, s.statsTS, s.statsErr
}

type stubProfileSvc struct {
	profile *domain.Profile
	getErr  error
	putErr  error
}

func (s *stubProfileSvc) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.profile, s.getErr
}

func (s *stubProfileSvc) Upsert(ctx context.Context, userID, fullName, email, avatarURL string) (*domain.Profile, error) {
	if s.putErr != nil {
		return nil, s.putErr
	}
	return &domain.Profile{UserID: userID, FullName: fullName, Email: email, AvatarURL: avatarURL}, nil
}

type stubPendingSvc struct {
	stashed  *domain.PendingSubmission
	stashErr error
	claimed  *domain.PendingSubmission
	claimErr error
}

func (s *stubPendingSvc) Stash(ctx context.Context, userID, imageDataURL, roleID string) (*domain.PendingSubmission, error) {
	return s.stashed, s.stashErr
}

func (s *stubPendingSvc) Claim(ctx context.Context, token string) (*domain.PendingSubmission, error) {
	return s.claimed, s.claimErr
}

type stubNotifySvc struct {
	gotShareID   string
	gotRecipient string
	gotName      string

	msgID string
	err   error
}

func (s *stubNotifySvc) SendReportEmail(ctx context.Context, shareID, recipient, recipientName string) (string, error) {
	s.gotShareID, s.gotRecipient, s.gotName = shareID, recipient, recipientName
	return s.msgID, s.err
}

//
// Router and request helpers.
//

type stubs struct {
	analysis *stubAnalysisSvc
	reports  *stubReportSvc
	profiles *stubProfileSvc
	pending  *stubPendingSvc
	notify   *stubNotifySvc
}

func newTestRouter(t *testing.T, s stubs) *gin.Engine {
	t.Helper()
	if s.analysis == nil {
		s.analysis = &stubAnalysisSvc{}
	}
	if s.reports == nil {
		s.reports = &stubReportSvc{}
	}
	if s.profiles == nil {
		s.profiles = &stubProfileSvc{}
	}
	if s.pending == nil {
		s.pending = &stubPendingSvc{}
	}
	if s.notify == nil {
		s.notify = &stubNotifySvc{}
	}
	h := New(s.analysis, s.reports, s.profiles, s.pending, s.notify)

	r := gin.New()
	r.POST("/analyze", h.Analyze)
	r.GET("/reports", h.ListReports)
	r.GET("/reports/:shareId", h.GetSharedReport)
	r.POST("/reports/email", h.EmailReport)
	r.GET("/roles", h.ListRoles)
	r.GET("/profile", h.GetProfile)
	r.PUT("/profile", h.UpsertProfile)
	r.POST("/pending", h.StashPending)
	r.POST("/pending/:token/claim", h.ClaimPending)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, into any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), into); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}
