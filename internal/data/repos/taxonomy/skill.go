package taxonomy

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/grapplelog/grapplelog-backend/internal/domain"
	"github.com/grapplelog/grapplelog-backend/internal/platform/logger"
)

// SkillRepo is the persistence boundary for canonical Skill records.
type SkillRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.Skill) (*types.Skill, error)

	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Skill, error)
	// GetByCategoryAndName returns every skill matching (category_id, name),
	// public rows first, then oldest first. The ordering is what makes the
	// resolver's preference scan deterministic.
	GetByCategoryAndName(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID, name string) ([]*types.Skill, error)

	ListVisible(ctx context.Context, tx *gorm.DB, categoryID, callerID uuid.UUID) ([]*types.Skill, error)
}

type skillRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSkillRepo(db *gorm.DB, baseLog *logger.Logger) SkillRepo {
	return &skillRepo{db: db, log: baseLog.With("repo", "SkillRepo")}
}

func (r *skillRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Skill) (*types.Skill, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil, nil
	}
	if err := t.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *skillRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Skill, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var out []*types.Skill
	if err := t.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *skillRepo) GetByCategoryAndName(ctx context.Context, tx *gorm.DB, categoryID uuid.UUID, name string) ([]*types.Skill, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Skill
	if categoryID == uuid.Nil || name == "" {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("category_id = ? AND name = ?", categoryID, name).
		Order("is_public DESC, created_at ASC, id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *skillRepo) ListVisible(ctx context.Context, tx *gorm.DB, categoryID, callerID uuid.UUID) ([]*types.Skill, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Skill
	if categoryID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("category_id = ? AND (is_public = TRUE OR creator_id = ?)", categoryID, callerID).
		Order("name ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
