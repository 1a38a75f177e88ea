package web

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trayafront/internal/service"
	"trayafront/internal/session"
	"trayafront/internal/web/middleware"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	AllowOrigins []string
}

// SetupRouter sets up the Gin router
func SetupRouter(
	catalog *service.CatalogService,
	chat *service.ChatService,
	store *session.Store,
	logger *zap.Logger,
	cfg RouterConfig,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLog(logger))

	// CORS middleware
	r.Use(middleware.CORS(cfg.AllowOrigins))

	r.SetHTMLTemplate(loadTemplates())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	handler := NewHandler(catalog, chat, store, logger)
	handler.RegisterRoutes(r)

	return r
}
