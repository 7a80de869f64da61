// Analysis HTTP handler.
//
// POST /analyze accepts a base64 palm image plus a job role and returns the
// full structured reading. This endpoint keeps the response shapes its
// existing clients depend on: `{success:true, analysis, ...}` on success and
// a bare `{error}` object (plus `rawResponse` on 422) on failure, rather
// than the envelope used elsewhere in the API.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/palmveda/palm-backend/internal/ai"
	"github.com/palmveda/palm-backend/internal/http/middleware"
	"github.com/palmveda/palm-backend/internal/report"
	"github.com/palmveda/palm-backend/internal/services"
)

// AnalyzeRequest is the JSON payload for requesting a palm analysis.
type AnalyzeRequest struct {
	// ImageBase64 is a data URL: "data:image/<fmt>;base64,<payload>".
	ImageBase64 string `json:"imageBase64" example:"data:image/jpeg;base64,/9j/4AAQ..."`
	// SelectedRole is the job role id to evaluate against.
	SelectedRole string `json:"selectedRole" example:"software-engineer"`
}

// AnalyzeResponse is the success payload of POST /analyze.
type AnalyzeResponse struct {
	Success      bool                   `json:"success"`
	Analysis     *report.AnalysisReport `json:"analysis"`
	SelectedRole string                 `json:"selectedRole"`
	// ShareID is empty when persistence was skipped or failed; the
	// analysis is still valid, it just cannot be shared.
	ShareID string `json:"shareId,omitempty"`
}

// analyzeError is the failure payload of POST /analyze. RawResponse is set
// only on 422 so the client can surface or report the unparseable text.
type analyzeError struct {
	Error       string `json:"error"`
	RawResponse string `json:"rawResponse,omitempty"`
}

// Analyze godoc
// @ID          analyzePalm
// @Summary     Analyze a palm image against a job role
// @Description Runs one AI palm reading and returns the structured compatibility report. The report is persisted best-effort; shareId is present only when storage succeeded.
// @Tags        Analysis
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (optional; anonymous analyses allowed)"  example(user123)
// @Param       body       body    handlers.AnalyzeRequest  true  "Palm image and role"
//
// @Success     200  {object}  handlers.AnalyzeResponse
// @Failure     400  {object}  handlers.analyzeError  "Missing or invalid inputs"
// @Failure     402  {object}  handlers.analyzeError  "Upstream quota exhausted"
// @Failure     422  {object}  handlers.analyzeError  "Model output failed to parse or validate"
// @Failure     429  {object}  handlers.analyzeError  "Upstream rate limited"
// @Failure     503  {object}  handlers.analyzeError  "Analysis service not configured"
// @Failure     500  {object}  handlers.analyzeError  "Internal error"
// @Router      /analyze [post]
func (h *Handlers) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, analyzeError{Error: "invalid JSON body"})
		return
	}
	if req.ImageBase64 == "" || req.SelectedRole == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, analyzeError{Error: "Image and role are required"})
		return
	}

	res, err := h.analysisSvc.Analyze(c.Request.Context(), userID(c), req.ImageBase64, req.SelectedRole)
	if err != nil {
		h.analyzeFailure(c, err)
		return
	}

	ok(c, http.StatusOK, AnalyzeResponse{
		Success:      true,
		Analysis:     res.Report,
		SelectedRole: req.SelectedRole,
		ShareID:      res.ShareID,
	})
}

// analyzeFailure maps pipeline errors onto the endpoint's status contract.
func (h *Handlers) analyzeFailure(c *gin.Context, err error) {
	var parseErr *report.ParseError
	var schemaErr *report.SchemaError
	var upstreamErr *ai.UpstreamError

	switch {
	case errors.Is(err, services.ErrMissingInput):
		c.AbortWithStatusJSON(http.StatusBadRequest, analyzeError{Error: "Image and role are required"})
	case errors.Is(err, services.ErrInvalidImage):
		c.AbortWithStatusJSON(http.StatusBadRequest, analyzeError{Error: "Please upload a valid palm image"})
	case errors.Is(err, ai.ErrRateLimited):
		c.AbortWithStatusJSON(http.StatusTooManyRequests, analyzeError{Error: "Rate limit exceeded. Please try again in a few moments."})
	case errors.Is(err, ai.ErrQuotaExhausted):
		c.AbortWithStatusJSON(http.StatusPaymentRequired, analyzeError{Error: "AI service quota exhausted. Please try again later."})
	case errors.Is(err, ai.ErrNotConfigured):
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, analyzeError{Error: "Analysis service is not configured"})
	case errors.As(err, &parseErr):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, analyzeError{
			Error:       "Failed to parse analysis results. Please try again with a clearer image.",
			RawResponse: parseErr.Raw,
		})
	case errors.As(err, &schemaErr):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, analyzeError{
			Error:       "Failed to parse analysis results. Please try again with a clearer image.",
			RawResponse: schemaErr.Raw,
		})
	case errors.As(err, &upstreamErr):
		middleware.LoggerFrom(c).Error().
			Int("upstream_status", upstreamErr.StatusCode).
			Str("message", upstreamErr.Message).
			Msg("palm analysis upstream failure")
		c.AbortWithStatusJSON(http.StatusInternalServerError, analyzeError{Error: "Failed to analyze palm image"})
	default:
		middleware.LoggerFrom(c).Error().Err(err).Msg("palm analysis failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, analyzeError{Error: "Failed to analyze palm image"})
	}
}
