// Report HTTP handlers.
//
//   - GET /reports/{shareId}  (public shared read)
//   - GET /reports            (owner listing, paginated, ETag support)
//
// Shared reads are public by design: holding the share id is the
// authorization. Listing is owner-scoped and requires an identity.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/palmveda/palm-backend/internal/domain"
	"github.com/palmveda/palm-backend/internal/services"
	"github.com/palmveda/palm-backend/internal/utils"
)

// SharedReportResponse is the payload of GET /reports/{shareId}. Analysis is
// the stored report document, returned exactly as persisted.
type SharedReportResponse struct {
	ShareID            string          `json:"share_id"`
	SelectedRole       string          `json:"selected_role"`
	CompatibilityScore int             `json:"compatibility_score"`
	Verdict            string          `json:"verdict"`
	Analysis           json.RawMessage `json:"analysis"`
	CreatedAt          string          `json:"created_at"`
}

// ListReportsResponse wraps a page of reports and pagination information.
type ListReportsResponse struct {
	Reports    []domain.Report `json:"reports"`
	Pagination Pagination      `json:"pagination"`
}

// GetSharedReport godoc
// @ID          getSharedReport
// @Summary     Fetch a shared report
// @Description Returns a stored report by its public share id. No authentication; anyone holding the id can read.
// @Tags        Reports
// @Produce     json
//
// @Param       shareId  path  string  true  "Report share id"  example(aZ3kX9pQr1)
//
// @Success     200  {object}  handlers.SharedReportResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Report not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /reports/{shareId} [get]
func (h *Handlers) GetSharedReport(c *gin.Context) {
	shareID := c.Param("shareId")

	r, err := h.reportSvc.GetShared(c.Request.Context(), shareID)
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "report not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}

	// Analysis is stored as the exact JSON produced at analysis time;
	// RawMessage keeps re-reads byte-stable.
	ok(c, http.StatusOK, SharedReportResponse{
		ShareID:            r.ShareID,
		SelectedRole:       r.SelectedRole,
		CompatibilityScore: r.CompatibilityScore,
		Verdict:            r.Verdict,
		Analysis:           json.RawMessage(r.Analysis),
		CreatedAt:          r.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	})
}

// ListReports godoc
// @ID          listReports
// @Summary     List the caller's reports (paginated)
// @Description Returns a page of the user's reports, newest first. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Reports
// @Produce     json
//
// @Param       X-User-ID      header  string  true  "User ID"                      example(user123)
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"   example(W/\"abc123\")
// @Param       page           query   int     false "Page number"                  minimum(1) default(1)
// @Param       page_size      query   int     false "Items per page"               minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.ListReportsResponse
// @Header      200  {string} ETag  "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     401  {object} handlers.ErrorResponse "Missing identity"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /reports [get]
func (h *Handlers) ListReports(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)
	if uid == "" {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "identity required to list reports")
		return
	}
	page, pageSize := clampPagination(c)

	// ETag pre-check (best effort).
	if count, maxTS, err := h.reportSvc.Stats(ctx, uid); err == nil {
		var ts int64
		if maxTS != nil {
			ts = maxTS.Unix()
		}
		etag := fmt.Sprintf(`W/"reports:%s:%d:%d"`, uid, count, ts)
		c.Header("ETag", etag)
		if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
			c.Status(http.StatusNotModified)
			return
		}
	}

	items, total, err := h.reportSvc.ListPage(ctx, uid, (page-1)*pageSize, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	totalPages := utils.TotalPages(total, pageSize)
	ok(c, http.StatusOK, ListReportsResponse{
		Reports: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}
