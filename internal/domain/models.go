// Package domain defines the persistence models for palm analysis reports,
// user profiles, pending submissions, and the email outbox. These types are
// mapped with GORM and form the core data layer of the application.
package domain

import "time"

// Report is a persisted palm analysis. The full model output is stored as a
// JSON document in Analysis; the score, verdict, and role are duplicated in
// columns so listings and emails never need to unmarshal the document.
//
// Reports are append-only: they are created once after a successful analysis
// and never updated or deleted by the application. A report is reachable by
// anyone holding its ShareID; only the owner can list it.
type Report struct {
	ID                 string    `json:"id"                  gorm:"type:char(36);primaryKey"`
	ShareID            string    `json:"share_id"            gorm:"type:varchar(16);not null;uniqueIndex:ux_reports_share_id"`
	UserID             *string   `json:"user_id,omitempty"   gorm:"type:varchar(64);index:idx_user_reports"` // nil for anonymous reports
	SelectedRole       string    `json:"selected_role"       gorm:"type:varchar(64);not null"`
	CompatibilityScore int       `json:"compatibility_score" gorm:"not null"`
	Verdict            string    `json:"verdict"             gorm:"type:varchar(32);not null"`
	Analysis           string    `json:"-"                   gorm:"type:text;not null"` // full AnalysisReport JSON
	CreatedAt          time.Time `json:"created_at"`
}

// TableName returns the database table name for Report.
func (Report) TableName() string { return "palm_reports" }

// Profile holds account-level data for an authenticated user. One profile per
// user; mutable only by its owner. The email address is the default recipient
// for report notifications.
type Profile struct {
	UserID    string    `json:"user_id"    gorm:"type:varchar(64);primaryKey"`
	FullName  string    `json:"full_name"  gorm:"type:varchar(255)"`
	Email     string    `json:"email"      gorm:"type:varchar(255);not null"`
	AvatarURL string    `json:"avatar_url" gorm:"type:varchar(512)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for Profile.
func (Profile) TableName() string { return "profiles" }

// Pending submission status values.
const (
	PendingStatusPending = "pending"
	PendingStatusClaimed = "claimed"
)

// PendingSubmission preserves an in-progress analysis request across an
// external redirect (e.g. a payment provider). The client stashes the image
// and role before redirecting and claims them back with the correlation
// token afterwards. A record can be claimed exactly once and only before
// ExpiresAt.
type PendingSubmission struct {
	ID           string    `json:"id"            gorm:"type:char(36);primaryKey"`
	Token        string    `json:"token"         gorm:"type:varchar(64);not null;uniqueIndex:ux_pending_token"`
	UserID       string    `json:"user_id"       gorm:"type:varchar(64);index"`
	SelectedRole string    `json:"selected_role" gorm:"type:varchar(64);not null"`
	ImageDataURL string    `json:"-"             gorm:"type:text;not null"`
	Status       string    `json:"status"        gorm:"type:varchar(16);not null;default:'pending'"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"    gorm:"index"`
}

// TableName returns the database table name for PendingSubmission.
func (PendingSubmission) TableName() string { return "pending_submissions" }

// Email outbox status values.
const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
)

// EmailOutbox is a queued report notification. The analysis flow only inserts
// rows here; a background dispatcher delivers them with bounded retries so a
// slow or failing email provider never blocks or fails an analysis.
type EmailOutbox struct {
	ID                 string    `json:"id"                  gorm:"type:char(36);primaryKey"`
	ReportShareID      string    `json:"report_share_id"     gorm:"type:varchar(16);not null;index"`
	Recipient          string    `json:"recipient"           gorm:"type:varchar(255);not null"`
	RecipientName      string    `json:"recipient_name"      gorm:"type:varchar(255)"`
	SelectedRole       string    `json:"selected_role"       gorm:"type:varchar(64);not null"`
	CompatibilityScore int       `json:"compatibility_score" gorm:"not null"`
	Verdict            string    `json:"verdict"             gorm:"type:varchar(32);not null"`
	ReportURL          string    `json:"report_url"          gorm:"type:varchar(512);not null"`
	Status             string    `json:"status"              gorm:"type:varchar(16);not null;default:'pending';index:idx_outbox_due,priority:1"`
	Attempts           int       `json:"attempts"            gorm:"not null;default:0"`
	LastError          string    `json:"last_error,omitempty" gorm:"type:text"`
	NextAttemptAt      time.Time `json:"next_attempt_at"     gorm:"index:idx_outbox_due,priority:2"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// TableName returns the database table name for EmailOutbox.
func (EmailOutbox) TableName() string { return "email_outbox" }
