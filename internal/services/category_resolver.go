package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/grapplelog/grapplelog-backend/internal/data/aggregates"
	"github.com/grapplelog/grapplelog-backend/internal/data/repos/taxonomy"
	types "github.com/grapplelog/grapplelog-backend/internal/domain"
	domainagg "github.com/grapplelog/grapplelog-backend/internal/domain/aggregates"
	"github.com/grapplelog/grapplelog-backend/internal/platform/dbctx"
	"github.com/grapplelog/grapplelog-backend/internal/platform/logger"
)

// CategoryResolver maps a category reference onto a canonical Category row,
// creating a personal one when a name reference matches nothing.
type CategoryResolver interface {
	Resolve(dbc dbctx.Context, ref CategoryRef, ownerID uuid.UUID) (*types.Category, error)
	ListVisible(dbc dbctx.Context, ownerID uuid.UUID) ([]*types.Category, error)
}

type categoryResolver struct {
	db           *gorm.DB
	log          *logger.Logger
	categoryRepo taxonomy.CategoryRepo
}

func NewCategoryResolver(db *gorm.DB, baseLog *logger.Logger, categoryRepo taxonomy.CategoryRepo) CategoryResolver {
	return &categoryResolver{
		db:           db,
		log:          baseLog.With("service", "CategoryResolver"),
		categoryRepo: categoryRepo,
	}
}

func (s *categoryResolver) Resolve(dbc dbctx.Context, ref CategoryRef, ownerID uuid.UUID) (*types.Category, error) {
	const op = "category.resolve"

	if ownerID == uuid.Nil {
		return nil, domainagg.NewError(domainagg.CodeValidation, op, "owner id is required", nil)
	}
	if !ref.Valid() {
		return nil, domainagg.NewError(domainagg.CodeValidation, op, "category reference needs an id or a name", nil)
	}

	// The caller asserted existence; a miss is final, no name fallback.
	if id, ok := ref.ByID(); ok {
		cat, err := s.categoryRepo.GetByID(dbc.Ctx, dbc.Tx, id)
		if err != nil {
			return nil, aggregates.MapError(op, err)
		}
		if cat == nil {
			return nil, domainagg.NewError(domainagg.CodeNotFound, op, fmt.Sprintf("category %s does not exist", id), nil)
		}
		return cat, nil
	}

	name, _ := ref.ByName()

	cat, err := s.findByName(dbc, name, ownerID)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if cat != nil {
		return cat, nil
	}

	created := &types.Category{
		ID:      uuid.New(),
		Name:    name,
		OwnerID: &ownerID,
	}
	err = runInSavepoint(dbc, s.db, func(tx *gorm.DB) error {
		_, cerr := s.categoryRepo.Create(dbc.Ctx, tx, created)
		return cerr
	})
	if err == nil {
		s.log.Debug("created personal category", "name", name)
		return created, nil
	}
	if !aggregates.IsUniqueViolation(err) {
		return nil, aggregates.MapError(op, err)
	}

	// Another writer created the same name between our read and insert.
	// Re-read once and use theirs.
	cat, rerr := s.findByName(dbc, name, ownerID)
	if rerr != nil {
		return nil, aggregates.MapError(op, rerr)
	}
	if cat == nil {
		return nil, aggregates.MapError(op, err)
	}
	s.log.Debug("lost category create race, reusing winner", "name", name)
	return cat, nil
}

// findByName applies the visibility order: the owner's personal category
// shadows a predefined one of the same name.
func (s *categoryResolver) findByName(dbc dbctx.Context, name string, ownerID uuid.UUID) (*types.Category, error) {
	cat, err := s.categoryRepo.GetByOwnerAndName(dbc.Ctx, dbc.Tx, ownerID, name)
	if err != nil {
		return nil, err
	}
	if cat != nil {
		return cat, nil
	}
	return s.categoryRepo.GetPredefinedByName(dbc.Ctx, dbc.Tx, name)
}

func (s *categoryResolver) ListVisible(dbc dbctx.Context, ownerID uuid.UUID) ([]*types.Category, error) {
	out, err := s.categoryRepo.ListVisible(dbc.Ctx, dbc.Tx, ownerID)
	if err != nil {
		return nil, aggregates.MapError("category.list", err)
	}
	return out, nil
}
