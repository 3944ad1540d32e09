package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Dhruvsinh6969/Trade-Order-Sheet/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(authHandler *handlers.AuthHandler, referenceHandler *handlers.ReferenceHandler, orderHandler *handlers.OrderHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	api := r.Group("/api")
	{
		api.POST("/login", authHandler.Login)
		api.POST("/recommend", orderHandler.Recommend)
		api.POST("/orders", orderHandler.Submit)
		api.POST("/cache/refresh", referenceHandler.RefreshCache)

		reference := api.Group("/reference")
		{
			reference.GET("/parties", referenceHandler.Parties)
			reference.GET("/stores", referenceHandler.Stores)
			reference.GET("/store-info", referenceHandler.StoreInfo)
			reference.GET("/categories", referenceHandler.Categories)
			reference.GET("/skus", referenceHandler.SKUs)
		}
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
