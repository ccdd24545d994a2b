package app

import (
	"github.com/gin-gonic/gin"

	"github.com/grapplelog/grapplelog-backend/internal/server"
)

func wireRouter(cfg Config, handlers Handlers, middleware Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		ServiceName:     cfg.ServiceName,
		AuthHandler:     handlers.Auth,
		AuthMiddleware:  middleware.Auth,
		TaxonomyHandler: handlers.Taxonomy,
		SkillLogHandler: handlers.SkillLog,
		AllowOrigins:    cfg.AllowOrigins,
	})
}
