// Package domain re-exports the persisted model types so call sites can
// import one alias hub instead of each sub-package.
package domain

import (
	"github.com/grapplelog/grapplelog-backend/internal/domain/skilllog"
	"github.com/grapplelog/grapplelog-backend/internal/domain/taxonomy"
	"github.com/grapplelog/grapplelog-backend/internal/domain/user"
)

type (
	User = user.User

	Category = taxonomy.Category
	Skill    = taxonomy.Skill

	UserSkill      = skilllog.UserSkill
	SkillSequence  = skilllog.SkillSequence
	SequenceDetail = skilllog.SequenceDetail
)

const (
	SourceTraining    = skilllog.SourceTraining
	SourceCompetition = skilllog.SourceCompetition
	SourceIndependent = skilllog.SourceIndependent
)
