package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/palmveda/palm-backend/internal/domain"
	"github.com/palmveda/palm-backend/internal/services"
)

func TestGetSharedReport_Success(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	stored := &domain.Report{
		ShareID:            "abc123defg",
		SelectedRole:       "CEO",
		CompatibilityScore: 82,
		Verdict:            "Highly Suitable",
		Analysis:           `{"compatibilityScore":82,"verdict":"Highly Suitable"}`,
		CreatedAt:          created,
	}
	r := newTestRouter(t, stubs{reports: &stubReportSvc{shared: stored}})

	w := doJSON(t, r, http.MethodGet, "/reports/abc123defg", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp SharedReportResponse
	decodeBody(t, w, &resp)
	if resp.ShareID != "abc123defg" || resp.SelectedRole != "CEO" || resp.CompatibilityScore != 82 {
		t.Fatalf("response: %+v", resp)
	}
	if string(resp.Analysis) != stored.Analysis {
		t.Fatalf("analysis not byte-stable: %s", resp.Analysis)
	}
	if resp.CreatedAt != "2026-03-14T09:26:53Z" {
		t.Fatalf("created_at = %q", resp.CreatedAt)
	}
}

func TestGetSharedReport_NotFound(t *testing.T) {
	r := newTestRouter(t, stubs{reports: &stubReportSvc{sharedErr: services.ErrReportNotFound}})

	w := doJSON(t, r, http.MethodGet, "/reports/nope", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	var resp ErrorResponse
	decodeBody(t, w, &resp)
	if resp.Code != ErrCodeNotFound {
		t.Fatalf("code = %q", resp.Code)
	}
}

func TestListReports_RequiresIdentity(t *testing.T) {
	r := newTestRouter(t, stubs{})

	w := doJSON(t, r, http.MethodGet, "/reports", nil, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
	var resp ErrorResponse
	decodeBody(t, w, &resp)
	if resp.Code != ErrCodeUnauthorized {
		t.Fatalf("code = %q", resp.Code)
	}
}

func TestListReports_PageAndETag(t *testing.T) {
	ts := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := &stubReportSvc{
		items:      []domain.Report{{ShareID: "s1"}, {ShareID: "s2"}},
		total:      42,
		statsCount: 42,
		statsTS:    &ts,
	}
	r := newTestRouter(t, stubs{reports: svc})
	hdr := map[string]string{"X-User-ID": "u1"}

	w := doJSON(t, r, http.MethodGet, "/reports?page=2&page_size=2", nil, hdr)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	wantETag := fmt.Sprintf(`W/"reports:u1:42:%d"`, ts.Unix())
	if got := w.Header().Get("ETag"); got != wantETag {
		t.Fatalf("ETag = %q, want %q", got, wantETag)
	}

	var resp ListReportsResponse
	decodeBody(t, w, &resp)
	if len(resp.Reports) != 2 {
		t.Fatalf("reports = %d", len(resp.Reports))
	}
	p := resp.Pagination
	if p.Page != 2 || p.PageSize != 2 || p.Total != 42 || p.TotalPages != 21 || !p.HasNext {
		t.Fatalf("pagination: %+v", p)
	}

	// Matching If-None-Match short-circuits with 304.
	hdr["If-None-Match"] = wantETag
	w = doJSON(t, r, http.MethodGet, "/reports", nil, hdr)
	if w.Code != http.StatusNotModified {
		t.Fatalf("status = %d, want 304", w.Code)
	}
}

func TestListReports_ClampsPagination(t *testing.T) {
	svc := &stubReportSvc{items: []domain.Report{}, total: 0}
	r := newTestRouter(t, stubs{reports: svc})

	w := doJSON(t, r, http.MethodGet, "/reports?page=-3&page_size=9999", nil,
		map[string]string{"X-User-ID": "u1"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp ListReportsResponse
	decodeBody(t, w, &resp)
	if resp.Pagination.Page != 1 || resp.Pagination.PageSize != 100 {
		t.Fatalf("pagination: %+v", resp.Pagination)
	}
}

func TestListReports_ServiceError(t *testing.T) {
	r := newTestRouter(t, stubs{reports: &stubReportSvc{listErr: errors.New("db down")}})

	w := doJSON(t, r, http.MethodGet, "/reports", nil, map[string]string{"X-User-ID": "u1"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	var resp ErrorResponse
	decodeBody(t, w, &resp)
	if resp.Code != ErrCodeListFailed {
		t.Fatalf("code = %q", resp.Code)
	}
}
