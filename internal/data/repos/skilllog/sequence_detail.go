package skilllog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/grapplelog/grapplelog-backend/internal/domain"
	"github.com/grapplelog/grapplelog-backend/internal/platform/logger"
)

type SequenceDetailRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.SequenceDetail) ([]*types.SequenceDetail, error)
	GetBySequenceIDs(ctx context.Context, tx *gorm.DB, sequenceIDs []uuid.UUID) ([]*types.SequenceDetail, error)
}

type sequenceDetailRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSequenceDetailRepo(db *gorm.DB, baseLog *logger.Logger) SequenceDetailRepo {
	return &sequenceDetailRepo{db: db, log: baseLog.With("repo", "SequenceDetailRepo")}
}

func (r *sequenceDetailRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.SequenceDetail) ([]*types.SequenceDetail, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.SequenceDetail{}, nil
	}
	if err := t.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *sequenceDetailRepo) GetBySequenceIDs(ctx context.Context, tx *gorm.DB, sequenceIDs []uuid.UUID) ([]*types.SequenceDetail, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.SequenceDetail
	if len(sequenceIDs) == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("sequence_id IN ?", sequenceIDs).
		Order("sequence_id ASC, position ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
