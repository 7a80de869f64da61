// Notification HTTP handler.
//
// POST /reports/email sends an existing report to an address the caller
// provides. Like /analyze, this endpoint keeps the `{success, ...}` response
// shape its clients were built against.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/palmveda/palm-backend/internal/http/middleware"
	"github.com/palmveda/palm-backend/internal/mail"
	"github.com/palmveda/palm-backend/internal/services"
)

// EmailReportRequest is the JSON payload for emailing a report. Score,
// verdict, role, and URL fields are accepted for compatibility but the
// email content always comes from the stored report identified by ShareID.
type EmailReportRequest struct {
	Email              string `json:"email" example:"reader@example.com"`
	FullName           string `json:"fullName,omitempty" example:"Alex Doe"`
	ShareID            string `json:"shareId" example:"aZ3kX9pQr1"`
	SelectedRole       string `json:"selectedRole,omitempty"`
	CompatibilityScore int    `json:"compatibilityScore,omitempty"`
	Verdict            string `json:"verdict,omitempty"`
	ReportURL          string `json:"reportUrl,omitempty"`
}

// emailReportResponse is the response payload of POST /reports/email.
type emailReportResponse struct {
	Success bool   `json:"success"`
	Data    string `json:"data,omitempty"`  // provider message id
	Error   string `json:"error,omitempty"` // set when Success is false
}

// EmailReport godoc
// @ID          emailReport
// @Summary     Email a report
// @Description Sends the stored report identified by shareId to the given address through the transactional email provider.
// @Tags        Reports
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.EmailReportRequest  true  "Recipient and report reference"
//
// @Success     200  {object}  handlers.emailReportResponse
// @Failure     400  {object}  handlers.emailReportResponse  "Missing or invalid recipient"
// @Failure     404  {object}  handlers.emailReportResponse  "Report not found"
// @Failure     500  {object}  handlers.emailReportResponse  "Delivery failed or service not configured"
// @Router      /reports/email [post]
func (h *Handlers) EmailReport(c *gin.Context) {
	var req EmailReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, emailReportResponse{Error: "invalid JSON body"})
		return
	}

	msgID, err := h.notifySvc.SendReportEmail(c.Request.Context(), req.ShareID, req.Email, req.FullName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingInput):
			c.AbortWithStatusJSON(http.StatusBadRequest, emailReportResponse{Error: "email and shareId are required"})
		case errors.Is(err, services.ErrInvalidEmail):
			c.AbortWithStatusJSON(http.StatusBadRequest, emailReportResponse{Error: "invalid email address"})
		case errors.Is(err, services.ErrReportNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, emailReportResponse{Error: "report not found"})
		case errors.Is(err, mail.ErrNotConfigured):
			c.AbortWithStatusJSON(http.StatusInternalServerError, emailReportResponse{Error: "Email service is not configured"})
		default:
			middleware.LoggerFrom(c).Error().Err(err).Str("share_id", req.ShareID).Msg("report email send failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, emailReportResponse{Error: "Failed to send report email"})
		}
		return
	}

	ok(c, http.StatusOK, emailReportResponse{Success: true, Data: msgID})
}
