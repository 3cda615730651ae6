package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouteRegistrar mounts a handler's endpoints on the engine.
type RouteRegistrar interface {
	Register(router gin.IRoutes)
}

func NewRouter(logger *zap.Logger, corsOrigins []string, handlers ...RouteRegistrar) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(RequestID(), Logger(logger), gin.Recovery(), CORS(corsOrigins))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/health", health)
	for _, h := range handlers {
		h.Register(r)
	}
	return r
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "Server is running",
		"timestamp": domain.Timestamp(time.Now()),
	})
}
