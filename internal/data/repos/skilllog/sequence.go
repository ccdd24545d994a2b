package skilllog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/grapplelog/grapplelog-backend/internal/domain"
	"github.com/grapplelog/grapplelog-backend/internal/platform/logger"
)

type SkillSequenceRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.SkillSequence) ([]*types.SkillSequence, error)
	GetByUserSkill(ctx context.Context, tx *gorm.DB, userSkillID uuid.UUID) ([]*types.SkillSequence, error)
}

type skillSequenceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSkillSequenceRepo(db *gorm.DB, baseLog *logger.Logger) SkillSequenceRepo {
	return &skillSequenceRepo{db: db, log: baseLog.With("repo", "SkillSequenceRepo")}
}

func (r *skillSequenceRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.SkillSequence) ([]*types.SkillSequence, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.SkillSequence{}, nil
	}
	if err := t.WithContext(ctx).Omit("Details").Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *skillSequenceRepo) GetByUserSkill(ctx context.Context, tx *gorm.DB, userSkillID uuid.UUID) ([]*types.SkillSequence, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.SkillSequence
	if userSkillID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Preload("Details", detailOrder).
		Where("user_skill_id = ?", userSkillID).
		Order("step_number ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
