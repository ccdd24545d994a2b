package app

import (
	"gorm.io/gorm"

	skilllogrepos "github.com/grapplelog/grapplelog-backend/internal/data/repos/skilllog"
	taxonomyrepos "github.com/grapplelog/grapplelog-backend/internal/data/repos/taxonomy"
	userrepos "github.com/grapplelog/grapplelog-backend/internal/data/repos/user"
	"github.com/grapplelog/grapplelog-backend/internal/platform/logger"
)

type Repos struct {
	User           userrepos.UserRepo
	Category       taxonomyrepos.CategoryRepo
	Skill          taxonomyrepos.SkillRepo
	UserSkill      skilllogrepos.UserSkillRepo
	SkillSequence  skilllogrepos.SkillSequenceRepo
	SequenceDetail skilllogrepos.SequenceDetailRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:           userrepos.NewUserRepo(db, log),
		Category:       taxonomyrepos.NewCategoryRepo(db, log),
		Skill:          taxonomyrepos.NewSkillRepo(db, log),
		UserSkill:      skilllogrepos.NewUserSkillRepo(db, log),
		SkillSequence:  skilllogrepos.NewSkillSequenceRepo(db, log),
		SequenceDetail: skilllogrepos.NewSequenceDetailRepo(db, log),
	}
}
