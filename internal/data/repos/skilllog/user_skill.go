package skilllog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/grapplelog/grapplelog-backend/internal/domain"
	"github.com/grapplelog/grapplelog-backend/internal/platform/logger"
)

type UserSkillRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.UserSkill) (*types.UserSkill, error)

	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.UserSkill, error)
	// GetByUser returns the caller's log entries, newest first, with step
	// sequences ordered by step number and details in submitted order.
	GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.UserSkill, error)
	CountByUserAndSkill(ctx context.Context, tx *gorm.DB, userID, skillID uuid.UUID) (int64, error)
}

type userSkillRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserSkillRepo(db *gorm.DB, baseLog *logger.Logger) UserSkillRepo {
	return &userSkillRepo{db: db, log: baseLog.With("repo", "UserSkillRepo")}
}

func (r *userSkillRepo) Create(ctx context.Context, tx *gorm.DB, row *types.UserSkill) (*types.UserSkill, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil, nil
	}
	if err := t.WithContext(ctx).Omit("Sequences").Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *userSkillRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.UserSkill, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var out []*types.UserSkill
	if err := t.WithContext(ctx).
		Preload("Sequences", sequenceOrder).
		Preload("Sequences.Details", detailOrder).
		Where("id = ?", id).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *userSkillRepo) GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.UserSkill, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.UserSkill
	if userID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Preload("Sequences", sequenceOrder).
		Preload("Sequences.Details", detailOrder).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *userSkillRepo) CountByUserAndSkill(ctx context.Context, tx *gorm.DB, userID, skillID uuid.UUID) (int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if userID == uuid.Nil || skillID == uuid.Nil {
		return 0, nil
	}
	var n int64
	if err := t.WithContext(ctx).
		Model(&types.UserSkill{}).
		Where("user_id = ? AND skill_id = ?", userID, skillID).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func sequenceOrder(db *gorm.DB) *gorm.DB { return db.Order("step_number ASC") }

func detailOrder(db *gorm.DB) *gorm.DB { return db.Order("position ASC, created_at ASC") }
