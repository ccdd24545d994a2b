package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/grapplelog/grapplelog-backend/internal/handlers"
	"github.com/grapplelog/grapplelog-backend/internal/middleware"
)

type RouterConfig struct {
	ServiceName string

	AuthHandler     *handlers.AuthHandler
	AuthMiddleware  *middleware.AuthMiddleware
	TaxonomyHandler *handlers.TaxonomyHandler
	SkillLogHandler *handlers.SkillLogHandler

	AllowOrigins []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(otelgin.Middleware(cfg.ServiceName))

	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// Public
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/register", cfg.AuthHandler.Register)
	router.POST("/login", cfg.AuthHandler.Login)

	// Protected
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Skill log
	protected.POST("/skilllog/log", cfg.SkillLogHandler.LogSkill)
	protected.GET("/skilllog/entries", cfg.SkillLogHandler.ListEntries)
	// Taxonomy
	protected.GET("/taxonomy/categories", cfg.TaxonomyHandler.ListCategories)
	protected.GET("/taxonomy/categories/:id/skills", cfg.TaxonomyHandler.ListCategorySkills)

	return router
}
