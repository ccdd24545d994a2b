package taxonomy

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/grapplelog/grapplelog-backend/internal/domain"
	"github.com/grapplelog/grapplelog-backend/internal/platform/logger"
)

// CategoryRepo is the persistence boundary for Category reference data.
// Lookup misses return (nil, nil); callers decide whether a miss is an
// error or a create trigger.
type CategoryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.Category) (*types.Category, error)

	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Category, error)
	GetByOwnerAndName(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID, name string) (*types.Category, error)
	GetPredefinedByName(ctx context.Context, tx *gorm.DB, name string) (*types.Category, error)

	ListVisible(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) ([]*types.Category, error)
}

type categoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCategoryRepo(db *gorm.DB, baseLog *logger.Logger) CategoryRepo {
	return &categoryRepo{db: db, log: baseLog.With("repo", "CategoryRepo")}
}

func (r *categoryRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Category) (*types.Category, error) {
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

func (r *categoryRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Category, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if id == uuid.Nil {
		return nil, nil
	}
	var out []*types.Category
	if err := t.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *categoryRepo) GetByOwnerAndName(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID, name string) (*types.Category, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if ownerID == uuid.Nil || name == "" {
		return nil, nil
	}
	var out []*types.Category
	if err := t.WithContext(ctx).
		Where("owner_id = ? AND name = ?", ownerID, name).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *categoryRepo) GetPredefinedByName(ctx context.Context, tx *gorm.DB, name string) (*types.Category, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if name == "" {
		return nil, nil
	}
	var out []*types.Category
	if err := t.WithContext(ctx).
		Where("is_predefined = TRUE AND owner_id IS NULL AND name = ?", name).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *categoryRepo) ListVisible(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) ([]*types.Category, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Category
	if err := t.WithContext(ctx).
		Where("owner_id IS NULL OR owner_id = ?", ownerID).
		Order("is_predefined DESC, name ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
