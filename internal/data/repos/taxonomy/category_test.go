package taxonomy

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/grapplelog/grapplelog-backend/internal/data/repos/testutil"
	types "github.com/grapplelog/grapplelog-backend/internal/domain"
)

func TestCategoryRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewCategoryRepo(db, testutil.Logger(t))

	owner := testutil.SeedUser(t, ctx, tx, testutil.UniqueName("owner")+"@example.com")
	other := testutil.SeedUser(t, ctx, tx, testutil.UniqueName("other")+"@example.com")

	guardName := testutil.UniqueName("Guard")
	personalName := testutil.UniqueName("Half Guard")

	predef := testutil.SeedPredefinedCategory(t, ctx, tx, guardName)
	personal := testutil.SeedPersonalCategory(t, ctx, tx, owner.ID, personalName)

	if got, err := repo.GetByID(ctx, tx, predef.ID); err != nil || got == nil || got.ID != predef.ID {
		t.Fatalf("GetByID: got=%v err=%v", got, err)
	}
	if got, err := repo.GetByID(ctx, tx, uuid.New()); err != nil || got != nil {
		t.Fatalf("GetByID(miss): got=%v err=%v, want nil,nil", got, err)
	}

	if got, err := repo.GetPredefinedByName(ctx, tx, guardName); err != nil || got == nil || !got.IsPredefined {
		t.Fatalf("GetPredefinedByName: got=%v err=%v", got, err)
	}
	if got, err := repo.GetPredefinedByName(ctx, tx, personalName); err != nil || got != nil {
		t.Fatalf("GetPredefinedByName(personal name): got=%v err=%v, want nil,nil", got, err)
	}

	if got, err := repo.GetByOwnerAndName(ctx, tx, owner.ID, personalName); err != nil || got == nil || got.ID != personal.ID {
		t.Fatalf("GetByOwnerAndName: got=%v err=%v", got, err)
	}
	if got, err := repo.GetByOwnerAndName(ctx, tx, other.ID, personalName); err != nil || got != nil {
		t.Fatalf("GetByOwnerAndName(other user): got=%v err=%v, want nil,nil", got, err)
	}

	created, err := repo.Create(ctx, tx, &types.Category{
		ID:      uuid.New(),
		Name:    testutil.UniqueName("Leg Locks"),
		OwnerID: testutil.PtrUUID(owner.ID),
	})
	if err != nil || created == nil {
		t.Fatalf("Create: created=%v err=%v", created, err)
	}

	visible, err := repo.ListVisible(ctx, tx, owner.ID)
	if err != nil {
		t.Fatalf("ListVisible: %v", err)
	}
	var sawPredef, sawPersonal, sawOther bool
	for _, c := range visible {
		switch c.ID {
		case predef.ID:
			sawPredef = true
		case personal.ID:
			sawPersonal = true
		}
		if c.OwnerID != nil && *c.OwnerID == other.ID {
			sawOther = true
		}
	}
	if !sawPredef || !sawPersonal || sawOther {
		t.Fatalf("ListVisible: predef=%v personal=%v other=%v", sawPredef, sawPersonal, sawOther)
	}
}
