package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	secret  string
}

func NewHandler(service *Service, secret string) *Handler {
	return &Handler{service: service, secret: secret}
}

// ShowLogin handles GET /admin.
func (h *Handler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "admin.html", gin.H{})
}

// Login handles POST /admin. The wrong password is the one gracefully
// handled failure: the form is re-rendered with a fixed message.
func (h *Handler) Login(c *gin.Context) {
	if err := h.service.Login(c.PostForm("password")); err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.HTML(http.StatusUnauthorized, "admin.html", gin.H{
				"Error": "Falsches Passwort",
			})
			return
		}
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	token, err := GenerateSessionToken(h.secret)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.SetCookie(SessionCookie, token, 24*60*60, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/admin_dashboard")
}
