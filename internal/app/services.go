package app

import (
	"gorm.io/gorm"

	"github.com/grapplelog/grapplelog-backend/internal/data/aggregates"
	"github.com/grapplelog/grapplelog-backend/internal/platform/logger"
	"github.com/grapplelog/grapplelog-backend/internal/services"
)

type Services struct {
	Auth             services.AuthService
	CategoryResolver services.CategoryResolver
	SkillResolver    services.SkillResolver
	SequenceBuilder  services.SequenceBuilder
	SkillLogger      services.SkillLogger
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos) Services {
	log.Info("Wiring services...")

	runner := aggregates.NewGormTxRunner(db)
	categoryResolver := services.NewCategoryResolver(db, log, repos.Category)
	skillResolver := services.NewSkillResolver(db, log, repos.Skill)
	sequenceBuilder := services.NewSequenceBuilder(db, log, repos.SkillSequence, repos.SequenceDetail)

	return Services{
		Auth:             services.NewAuthService(db, log, repos.User, cfg.JWTSecretKey, cfg.AccessTokenTTL),
		CategoryResolver: categoryResolver,
		SkillResolver:    skillResolver,
		SequenceBuilder:  sequenceBuilder,
		SkillLogger: services.NewSkillLogger(
			db, log, runner,
			categoryResolver, skillResolver, sequenceBuilder,
			repos.UserSkill,
		),
	}
}
