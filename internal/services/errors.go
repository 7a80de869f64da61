// Package services defines the business logic for palm analysis, report
// retrieval, profiles, pending submissions, and notifications. This file
// centralizes common service-level error values so they can be consistently
// returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer;
// translation into user-facing messages or HTTP status codes is performed
// at the handler layer.
package services

import "errors"

var (
	// ErrMissingInput is returned when an analysis request lacks the palm
	// image or the selected role. Checked before any upstream call.
	ErrMissingInput = errors.New("missing palm image or selected role")

	// ErrInvalidImage is returned when the image payload is not a base64
	// image data URL.
	ErrInvalidImage = errors.New("invalid palm image")

	// ErrReportNotFound indicates that no stored report matches the
	// requested share id.
	ErrReportNotFound = errors.New("report not found")

	// ErrProfileNotFound indicates the user has no profile on file.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInvalidEmail is returned when a notification request carries an
	// address that is obviously not deliverable.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrPendingNotFound indicates the pending-submission token is unknown,
	// expired, or already claimed.
	ErrPendingNotFound = errors.New("pending submission not found")
)
