package routes

import (
	"billbridge/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathHealth = "/healthz"
	PathSync   = "/sync"
)

func addSyncRoutes(rg *gin.RouterGroup, syncHandler *handlers.SyncHandler) {
	rg.GET(PathHealth, syncHandler.GetHealth)

	sync := rg.Group(PathSync)
	{
		sync.GET("/report", syncHandler.GetReport)
		sync.POST("/run", syncHandler.TriggerRun)
	}
}
