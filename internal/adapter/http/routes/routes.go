package routes

import (
	"log"

	"billbridge/internal/adapter/http/handlers"
	"billbridge/internal/observability/metrics"

	"github.com/gin-gonic/gin"
)

// NewRouter assembles the status server: /metrics plus the v1 sync surface.
func NewRouter(syncHandler *handlers.SyncHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/v1")
	addSyncRoutes(v1, syncHandler)
	return router
}
