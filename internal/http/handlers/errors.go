// Package handlers – stable error codes.
//
// These constants form the machine-readable error taxonomy carried in the
// `code` field of ErrorResponse. Generic codes mirror HTTP status semantics;
// domain codes cover business failures the status alone cannot convey.
// Handlers pick the most specific matching code and pass it to fail().
package handlers

const (
	ErrCodeBadRequest   = "bad_request"
	ErrCodeUnauthorized = "unauthorized"
	ErrCodeNotFound     = "not_found"
	ErrCodeRateLimited  = "too_many_requests"
	ErrCodeInternal     = "internal_error"

	// Domain-specific:
	ErrCodeAnalysisFailed   = "analysis_failed"
	ErrCodeInvalidImage     = "invalid_image"
	ErrCodeInvalidEmail     = "invalid_email"
	ErrCodeListFailed       = "list_failed"
	ErrCodeSaveFailed       = "save_failed"
	ErrCodeMethodNotAllowed = "method_not_allowed"
)
