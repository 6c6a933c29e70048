package order

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Submit handles POST /order. The form carries parallel lists of item,
// size and extra_wishes fields, one triple per line.
func (h *Handler) Submit(c *gin.Context) {
	items := c.PostFormArray("item")
	sizes := c.PostFormArray("size")
	wishes := c.PostFormArray("extra_wishes")

	if len(sizes) != len(items) || len(wishes) != len(items) {
		c.String(http.StatusBadRequest, "item, size and extra_wishes lists must have the same length")
		return
	}

	lines := make([]Line, 0, len(items))
	for i := range items {
		lines = append(lines, Line{
			Item:        items[i],
			Size:        sizes[i],
			ExtraWishes: wishes[i],
		})
	}

	_, err := h.service.Submit(
		c.Request.Context(),
		c.PostForm("name"),
		c.PostForm("payment_method"),
		lines,
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrOrderingClosed):
			// Closed ordering is not an error page; the customer is sent
			// back to the menu unchanged.
			c.Redirect(http.StatusSeeOther, "/")
		case errors.Is(err, ErrValidation):
			c.String(http.StatusBadRequest, err.Error())
		default:
			c.String(http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// MarkPaid handles GET /admin/mark_paid/:id.
func (h *Handler) MarkPaid(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.MarkPaid(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.String(http.StatusNotFound, "order %d not found", id)
			return
		}
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin_dashboard")
}

// Delete handles POST /admin/delete_order/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.String(http.StatusNotFound, "order %d not found", id)
			return
		}
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin_dashboard")
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid order id %q", c.Param("id"))
	}
	return uint(id), nil
}
