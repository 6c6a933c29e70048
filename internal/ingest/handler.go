package ingest

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

// ShowUpload handles GET /admin/upload_menu: the upload form plus the
// latest job's status and report.
func (h *Handler) ShowUpload(c *gin.Context) {
	job, report, err := h.service.Latest(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.HTML(http.StatusOK, "upload_menu.html", gin.H{
		"Job":    job,
		"Report": report,
	})
}

// Upload handles POST /admin/upload_menu.
func (h *Handler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("menu_file")
	if err != nil {
		c.String(http.StatusBadRequest, "menu_file is required")
		return
	}
	defer file.Close()

	if _, err := h.service.Enqueue(c.Request.Context(), file, header.Filename); err != nil {
		if errors.Is(err, ErrNotPDF) {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/upload_menu")
}
