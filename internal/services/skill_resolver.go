package services

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/grapplelog/grapplelog-backend/internal/data/aggregates"
	"github.com/grapplelog/grapplelog-backend/internal/data/repos/taxonomy"
	types "github.com/grapplelog/grapplelog-backend/internal/domain"
	domainagg "github.com/grapplelog/grapplelog-backend/internal/domain/aggregates"
	"github.com/grapplelog/grapplelog-backend/internal/platform/dbctx"
	"github.com/grapplelog/grapplelog-backend/internal/platform/logger"
)

// SkillResolver maps (name, category) onto the canonical Skill visible to
// the caller: a public definition wins, then the caller's own, then the
// first match on record; with no match at all a private skill is created.
type SkillResolver interface {
	Resolve(dbc dbctx.Context, name string, categoryID, callerID uuid.UUID) (*types.Skill, error)
	ListVisible(dbc dbctx.Context, categoryID, callerID uuid.UUID) ([]*types.Skill, error)
}

type skillResolver struct {
	db        *gorm.DB
	log       *logger.Logger
	skillRepo taxonomy.SkillRepo
}

func NewSkillResolver(db *gorm.DB, baseLog *logger.Logger, skillRepo taxonomy.SkillRepo) SkillResolver {
	return &skillResolver{
		db:        db,
		log:       baseLog.With("service", "SkillResolver"),
		skillRepo: skillRepo,
	}
}

func (s *skillResolver) Resolve(dbc dbctx.Context, name string, categoryID, callerID uuid.UUID) (*types.Skill, error) {
	const op = "skill.resolve"

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainagg.NewError(domainagg.CodeValidation, op, "skill name is required", nil)
	}
	if categoryID == uuid.Nil {
		return nil, domainagg.NewError(domainagg.CodeValidation, op, "category id is required", nil)
	}
	if callerID == uuid.Nil {
		return nil, domainagg.NewError(domainagg.CodeValidation, op, "caller id is required", nil)
	}

	matches, err := s.skillRepo.GetByCategoryAndName(dbc.Ctx, dbc.Tx, categoryID, name)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if sk := pickSkill(matches, callerID); sk != nil {
		return sk, nil
	}

	created := &types.Skill{
		ID:         uuid.New(),
		Name:       name,
		CategoryID: categoryID,
		IsPublic:   false,
		CreatorID:  &callerID,
	}
	err = runInSavepoint(dbc, s.db, func(tx *gorm.DB) error {
		_, cerr := s.skillRepo.Create(dbc.Ctx, tx, created)
		return cerr
	})
	if err == nil {
		s.log.Debug("created private skill", "name", name, "category_id", categoryID)
		return created, nil
	}
	if !aggregates.IsUniqueViolation(err) {
		return nil, aggregates.MapError(op, err)
	}

	// Concurrent create race: the unique index on (category_id, name)
	// rejected our insert, so the winner's row is there to re-read.
	matches, rerr := s.skillRepo.GetByCategoryAndName(dbc.Ctx, dbc.Tx, categoryID, name)
	if rerr != nil {
		return nil, aggregates.MapError(op, rerr)
	}
	if sk := pickSkill(matches, callerID); sk != nil {
		s.log.Debug("lost skill create race, reusing winner", "name", name, "category_id", categoryID)
		return sk, nil
	}
	return nil, aggregates.MapError(op, err)
}

// pickSkill applies the preference order over whatever rows exist. The
// repo already sorts public-first and oldest-first, so "first match" is
// stable across calls.
func pickSkill(matches []*types.Skill, callerID uuid.UUID) *types.Skill {
	if len(matches) == 0 {
		return nil
	}
	for _, sk := range matches {
		if sk.IsPublic {
			return sk
		}
	}
	for _, sk := range matches {
		if sk.CreatorID != nil && *sk.CreatorID == callerID {
			return sk
		}
	}
	return matches[0]
}

func (s *skillResolver) ListVisible(dbc dbctx.Context, categoryID, callerID uuid.UUID) ([]*types.Skill, error) {
	out, err := s.skillRepo.ListVisible(dbc.Ctx, dbc.Tx, categoryID, callerID)
	if err != nil {
		return nil, aggregates.MapError("skill.list", err)
	}
	return out, nil
}
