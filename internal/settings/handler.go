package settings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ToggleOrdering handles POST /admin/toggle_ordering.
func (h *Handler) ToggleOrdering(c *gin.Context) {
	if _, err := h.service.ToggleOrdering(c.Request.Context()); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin_dashboard")
}

// SetDeadline handles POST /admin/set_order_deadline. An empty value clears
// the cutoff.
func (h *Handler) SetDeadline(c *gin.Context) {
	if err := h.service.SetDeadline(c.Request.Context(), c.PostForm("order_deadline")); err != nil {
		if errors.Is(err, ErrBadDeadline) {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin_dashboard")
}
