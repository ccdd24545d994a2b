package app

import (
	"github.com/grapplelog/grapplelog-backend/internal/handlers"
	"github.com/grapplelog/grapplelog-backend/internal/platform/logger"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Taxonomy *handlers.TaxonomyHandler
	SkillLog *handlers.SkillLogHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:     handlers.NewAuthHandler(log, services.Auth),
		Taxonomy: handlers.NewTaxonomyHandler(log, services.CategoryResolver, services.SkillResolver),
		SkillLog: handlers.NewSkillLogHandler(log, services.SkillLogger),
	}
}
