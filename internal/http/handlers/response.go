// Package handlers implements the HTTP endpoints of the palm analysis API.
//
// This file holds the shared response helpers. Most endpoints use the
// structured ErrorResponse envelope with a stable machine-readable `code`;
// the analysis and notification endpoints additionally speak the simpler
// `{error}` / `{success:true,...}` shapes their clients were built against.
//
// Conventions:
//   - fail() is the single path for envelope errors; 5xx responses are
//     logged with the request-scoped logger so every server error leaves a
//     correlated trace in the logs.
//   - ok() writes success bodies; noContent() writes bare 204s.
//
// Example error response:
//
//	HTTP/1.1 404 Not Found
//	{
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000",
//	  "code": "not_found",
//	  "message": "report not found"
//	}
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/palmveda/palm-backend/internal/http/middleware"
)

// ErrorResponse is the standard error envelope.
//
// RequestID echoes the X-Request-ID header so clients can quote it when
// reporting problems; Code is stable and machine-readable (see errors.go);
// Message is safe to show to end users.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"not_found"`
	// Human-readable message (safe to show to users)
	Message string `json:"message" example:"report not found"`
}

// fail aborts the request with a structured error envelope. Server errors
// (status >= 500) are logged through the request-scoped logger before the
// response is written.
func fail(c *gin.Context, status int, code, msg string) {
	reqID := c.Writer.Header().Get("X-Request-ID")
	resp := ErrorResponse{
		RequestID: reqID,
		Code:      code,
		Message:   msg,
	}

	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail(), for use by router-level fallbacks
// (NoRoute, NoMethod) that live outside this package's handlers.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// ok writes a success JSON response with the given status.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// noContent writes an HTTP 204 No Content response.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
