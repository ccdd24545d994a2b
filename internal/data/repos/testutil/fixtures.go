package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/grapplelog/grapplelog-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  "pw",
		FirstName: "A",
		LastName:  "B",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedPredefinedCategory(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Category {
	tb.Helper()
	c := &types.Category{
		ID:           uuid.New(),
		Name:         name,
		IsPredefined: true,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed predefined category: %v", err)
	}
	return c
}

func SeedPersonalCategory(tb testing.TB, ctx context.Context, tx *gorm.DB, ownerID uuid.UUID, name string) *types.Category {
	tb.Helper()
	c := &types.Category{
		ID:      uuid.New(),
		Name:    name,
		OwnerID: PtrUUID(ownerID),
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed personal category: %v", err)
	}
	return c
}

func SeedSkill(tb testing.TB, ctx context.Context, tx *gorm.DB, categoryID uuid.UUID, name string, public bool, creatorID *uuid.UUID) *types.Skill {
	tb.Helper()
	s := &types.Skill{
		ID:         uuid.New(),
		Name:       name,
		CategoryID: categoryID,
		IsPublic:   public,
		CreatorID:  creatorID,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed skill: %v", err)
	}
	return s
}

func SeedUserSkill(tb testing.TB, ctx context.Context, tx *gorm.DB, userID, skillID uuid.UUID) *types.UserSkill {
	tb.Helper()
	us := &types.UserSkill{
		ID:      uuid.New(),
		UserID:  userID,
		SkillID: skillID,
		Source:  types.SourceTraining,
	}
	if err := tx.WithContext(ctx).Omit("Sequences").Create(us).Error; err != nil {
		tb.Fatalf("seed user skill: %v", err)
	}
	return us
}

// UniqueName suffixes a label so tests sharing the database never collide
// on the taxonomy unique indexes.
func UniqueName(label string) string {
	return fmt.Sprintf("%s-%s", label, uuid.New().String()[:8])
}

func PtrUUID(v uuid.UUID) *uuid.UUID { return &v }
