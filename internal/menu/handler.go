package menu

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

// AddItem handles POST /admin/add_menu_item.
func (h *Handler) AddItem(c *gin.Context) {
	_, err := h.service.AddItem(
		c.Request.Context(),
		c.PostForm("item_name"),
		c.PostForm("item_price_small"),
		c.PostForm("item_price_medium"),
		c.PostForm("item_price_large"),
	)
	if err != nil {
		if errors.Is(err, ErrEmptyName) {
			c.String(http.StatusBadRequest, "item_name is required")
			return
		}
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin_dashboard")
}
