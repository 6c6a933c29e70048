package router

import (
	"html/template"
	"net/http"
	"time"

	"doenerkiosk/internal/auth"
	"doenerkiosk/internal/ingest"
	"doenerkiosk/internal/menu"
	"doenerkiosk/internal/middleware"
	"doenerkiosk/internal/order"
	"doenerkiosk/internal/settings"
	"doenerkiosk/templates"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps carries everything the HTTP surface needs.
type Deps struct {
	SessionSecret string

	Auth     *auth.Handler
	Menu     *menu.Service
	Orders   *order.Service
	Settings *settings.Service
	Ingest   *ingest.Handler

	MenuHandler     *menu.Handler
	OrderHandler    *order.Handler
	SettingsHandler *settings.Handler
}

// New builds the gin engine with all kiosk routes registered.
func New(deps Deps) *gin.Engine {
	r := gin.Default()

	r.SetHTMLTemplate(template.Must(template.ParseFS(templates.FS, "*.html")))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Customer surface
	r.GET("/", indexPage(deps))
	r.POST("/order", deps.OrderHandler.Submit)

	// Login
	r.GET("/admin", deps.Auth.ShowLogin)
	r.POST("/admin", deps.Auth.Login)

	// Admin surface, one explicit gate for everything below
	gated := r.Group("/")
	gated.Use(middleware.AdminRequired(deps.SessionSecret))
	{
		gated.GET("/admin_dashboard", dashboardPage(deps))
		gated.GET("/admin/mark_paid/:id", deps.OrderHandler.MarkPaid)
		gated.POST("/admin/delete_order/:id", deps.OrderHandler.Delete)
		gated.POST("/admin/add_menu_item", deps.MenuHandler.AddItem)
		gated.POST("/admin/toggle_ordering", deps.SettingsHandler.ToggleOrdering)
		gated.POST("/admin/set_order_deadline", deps.SettingsHandler.SetDeadline)
		gated.GET("/admin/upload_menu", deps.Ingest.ShowUpload)
		gated.POST("/admin/upload_menu", deps.Ingest.Upload)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}

func indexPage(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		items, err := deps.Menu.List(ctx)
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}

		open, err := deps.Settings.OrderingOpen(ctx)
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}

		c.HTML(http.StatusOK, "index.html", gin.H{
			"Menu":         items,
			"OrderingOpen": open,
		})
	}
}

func dashboardPage(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		orders, err := deps.Orders.List(ctx)
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}

		items, err := deps.Menu.List(ctx)
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}

		current, err := deps.Settings.Get(ctx)
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}

		c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
			"Orders":   orders,
			"Menu":     items,
			"Settings": current,
		})
	}
}
