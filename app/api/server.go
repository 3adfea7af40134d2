package api

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// NewServer creates the gin engine with all routes configured.
func NewServer(handler *Handler) *gin.Engine {
	// Set Gin mode (can be controlled via GIN_MODE environment variable)
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
		SkipPaths: []string{"/health"},
	}))

	r.Use(gin.Recovery())

	// CORS middleware for API endpoints
	r.Use(corsMiddleware())

	r.SetHTMLTemplate(handler.templates)

	setupRoutes(r, handler)

	return r
}

func setupRoutes(r *gin.Engine, handler *Handler) {
	r.GET("/health", handler.GetHealth)

	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})

	site := r.Group("/")
	site.Use(sessionMiddleware(handler.store, handler.settings.SessionTTL))
	{
		site.GET("/", handler.GetHome)
		site.GET("/about", handler.GetAbout)
		site.GET("/contact", handler.GetContact)
		site.GET("/login", handler.GetLogin)
		site.GET("/register", handler.GetRegister)
		site.GET("/membership", handler.GetMembership)
		site.GET("/updates", handler.GetUpdates)
		site.GET("/updates/rss", handler.GetUpdatesRSS)
		site.GET("/dashboard", handler.GetDashboard)
		site.GET("/admin", handler.GetAdmin)

		site.POST("/login", handler.PostLogin)
		site.POST("/register", handler.PostRegister)
		site.POST("/contact", handler.PostContact)
		site.POST("/updates/:id/action", handler.PostUpdateAction)
		site.POST("/membership/:tier/pay", handler.PostMembershipPay)
		site.POST("/dashboard/notices/:id/pay", handler.PostNoticePay)
		site.POST("/admin/updates", handler.PostAdminCreateUpdate)
		site.POST("/admin/updates/:id/delete", handler.PostAdminDeleteUpdate)
		site.POST("/admin/settings/:section", handler.PostAdminSettings)
		site.POST("/admin/import", handler.PostAdminImport)
	}

	api := r.Group("/api")
	api.Use(sessionMiddleware(handler.store, handler.settings.SessionTTL))
	{
		api.GET("/updates", handler.APIListUpdates)
		api.POST("/updates/:id/action", handler.APIUpdateAction)
		api.GET("/notifications", handler.APIListNotifications)
		api.DELETE("/notifications/:id", handler.APIDismissNotification)
		api.POST("/register", handler.APIRegister)
	}

	slog.Debug("Routes configured", "routes", len(r.Routes()))
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
