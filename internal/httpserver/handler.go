package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"trello-sheets-sync/internal/model"
	syncHTTP "trello-sheets-sync/internal/sync/delivery/http"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	if srv.environment != string(model.EnvironmentProduction) {
		srv.gin.Use(gin.Logger())
	}

	srv.l.Infof(context.Background(), "HTTP mode: %s (environment %s)", srv.mode, srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() {
	api := srv.gin.Group("/api/v1")

	syncHTTP.RegisterRoutes(api.Group("/sync"), srv.syncHandler, srv.middleware)
	srv.l.Infof(context.Background(), "Sync routes registered at POST /api/v1/sync/{summary,all,board,reset}")
}
