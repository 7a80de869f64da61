// Pending submission HTTP handlers.
//
//   - POST /pending                (stash an in-flight submission)
//   - POST /pending/{token}/claim  (claim it back, exactly once)
//
// These bracket an external redirect such as a payment flow: the client
// stashes image and role before leaving, keeps only the token, and claims
// the submission on return.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/palmveda/palm-backend/internal/services"
)

// StashPendingRequest is the JSON payload for POST /pending.
type StashPendingRequest struct {
	ImageBase64  string `json:"imageBase64" example:"data:image/jpeg;base64,/9j/4AAQ..."`
	SelectedRole string `json:"selectedRole" example:"software-engineer"`
}

// StashPendingResponse returns the correlation token and its expiry.
type StashPendingResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ClaimPendingResponse returns the stashed submission to the client.
type ClaimPendingResponse struct {
	ImageBase64  string `json:"imageBase64"`
	SelectedRole string `json:"selectedRole"`
}

// StashPending godoc
// @ID          stashPending
// @Summary     Stash an in-flight submission
// @Description Stores the palm image and role server-side and returns a single-use correlation token, so the submission survives an external redirect.
// @Tags        Pending
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID"  example(user123)
// @Param       body       body    handlers.StashPendingRequest  true  "Submission to stash"
//
// @Success     201  {object}  handlers.StashPendingResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing or invalid inputs"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /pending [post]
func (h *Handlers) StashPending(c *gin.Context) {
	var req StashPendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	p, err := h.pendingSvc.Stash(c.Request.Context(), userID(c), req.ImageBase64, req.SelectedRole)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingInput):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "image and role are required")
		case errors.Is(err, services.ErrInvalidImage):
			fail(c, http.StatusBadRequest, ErrCodeInvalidImage, "not a valid image data URL")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeSaveFailed, err.Error())
		}
		return
	}

	ok(c, http.StatusCreated, StashPendingResponse{Token: p.Token, ExpiresAt: p.ExpiresAt})
}

// ClaimPending godoc
// @ID          claimPending
// @Summary     Claim a stashed submission
// @Description Releases the submission for the given token. Each token can be claimed exactly once; expired, used, and unknown tokens are indistinguishable.
// @Tags        Pending
// @Produce     json
//
// @Param       token  path  string  true  "Correlation token"
//
// @Success     200  {object}  handlers.ClaimPendingResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Token unknown, expired, or already claimed"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /pending/{token}/claim [post]
func (h *Handlers) ClaimPending(c *gin.Context) {
	p, err := h.pendingSvc.Claim(c.Request.Context(), c.Param("token"))
	if err != nil {
		if errors.Is(err, services.ErrPendingNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "pending submission not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}

	ok(c, http.StatusOK, ClaimPendingResponse{
		ImageBase64:  p.ImageDataURL,
		SelectedRole: p.SelectedRole,
	})
}
