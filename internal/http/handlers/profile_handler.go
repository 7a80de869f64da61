// Profile HTTP handlers.
//
//   - GET /profile  (read own profile)
//   - PUT /profile  (create or replace own profile)
//
// Both require an identity; the profile addressed is always the caller's.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/palmveda/palm-backend/internal/services"
)

// UpsertProfileRequest is the JSON payload for PUT /profile.
type UpsertProfileRequest struct {
	FullName  string `json:"full_name" example:"Alex Doe"`
	Email     string `json:"email" example:"alex@example.com"`
	AvatarURL string `json:"avatar_url,omitempty" example:"https://cdn.example.com/a.png"`
}

// GetProfile godoc
// @ID          getProfile
// @Summary     Get the caller's profile
// @Tags        Profile
// @Produce     json
//
// @Param       X-User-ID  header  string  true  "User ID"  example(user123)
//
// @Success     200  {object}  domain.Profile
// @Failure     401  {object}  handlers.ErrorResponse  "Missing identity"
// @Failure     404  {object}  handlers.ErrorResponse  "No profile saved yet"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /profile [get]
func (h *Handlers) GetProfile(c *gin.Context) {
	uid := userID(c)
	if uid == "" {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "identity required")
		return
	}

	p, err := h.profileSvc.Get(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "profile not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, p)
}

// UpsertProfile godoc
// @ID          upsertProfile
// @Summary     Create or replace the caller's profile
// @Description Saves name, email, and avatar for the current user. The email becomes the default recipient for report notifications.
// @Tags        Profile
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  true  "User ID"  example(user123)
// @Param       body       body    handlers.UpsertProfileRequest  true  "Profile fields"
//
// @Success     200  {object}  domain.Profile
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid payload or email"
// @Failure     401  {object}  handlers.ErrorResponse  "Missing identity"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /profile [put]
func (h *Handlers) UpsertProfile(c *gin.Context) {
	uid := userID(c)
	if uid == "" {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "identity required")
		return
	}

	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	p, err := h.profileSvc.Upsert(c.Request.Context(), uid, req.FullName, req.Email, req.AvatarURL)
	if err != nil {
		if errors.Is(err, services.ErrInvalidEmail) {
			fail(c, http.StatusBadRequest, ErrCodeInvalidEmail, "invalid email address")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeSaveFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, p)
}
