// Role catalog HTTP handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/palmveda/palm-backend/internal/catalog"
)

// RolesResponse wraps the role taxonomy returned by GET /roles.
type RolesResponse struct {
	Categories []catalog.Category `json:"categories"`
}

// ListRoles godoc
// @ID          listRoles
// @Summary     List selectable job roles
// @Description Returns the full role taxonomy grouped into categories. The data is static; clients may cache it.
// @Tags        Roles
// @Produce     json
//
// @Success     200  {object}  handlers.RolesResponse
// @Router      /roles [get]
func (h *Handlers) ListRoles(c *gin.Context) {
	ok(c, http.StatusOK, RolesResponse{Categories: catalog.Categories()})
}
