package services

import (
	"testing"

	"github.com/google/uuid"

	types "github.com/grapplelog/grapplelog-backend/internal/domain"
	domainagg "github.com/grapplelog/grapplelog-backend/internal/domain/aggregates"
)

func TestCategoryRefVariants(t *testing.T) {
	id := uuid.New()

	byID := CategoryByID(id)
	if got, ok := byID.ByID(); !ok || got != id {
		t.Fatalf("ByID: got=%v ok=%v", got, ok)
	}
	if _, ok := byID.ByName(); ok {
		t.Fatal("ByID ref should not report a name")
	}
	if !byID.Valid() {
		t.Fatal("ByID ref should be valid")
	}

	byName := CategoryByName("  Guard  ")
	if got, ok := byName.ByName(); !ok || got != "Guard" {
		t.Fatalf("ByName: got=%q ok=%v, want trimmed name", got, ok)
	}
	if _, ok := byName.ByID(); ok {
		t.Fatal("ByName ref should not report an id")
	}

	var zero CategoryRef
	if zero.Valid() {
		t.Fatal("zero ref should be invalid")
	}
	if CategoryByName("   ").Valid() {
		t.Fatal("blank name ref should be invalid")
	}
	if CategoryByID(uuid.Nil).Valid() {
		t.Fatal("nil id ref should be invalid")
	}
}

func TestValidateLogInput(t *testing.T) {
	userID := uuid.New()
	okRef := SkillRef{Name: "Armbar", Category: CategoryByName("Submissions")}

	if err := validateLogInput(userID, okRef, UserSkillInput{}); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
	if err := validateLogInput(uuid.Nil, okRef, UserSkillInput{}); !domainagg.IsCode(err, domainagg.CodeValidation) {
		t.Fatalf("missing user id: %v", err)
	}
	if err := validateLogInput(userID, SkillRef{Name: "  ", Category: okRef.Category}, UserSkillInput{}); !domainagg.IsCode(err, domainagg.CodeValidation) {
		t.Fatalf("blank skill name: %v", err)
	}
	if err := validateLogInput(userID, SkillRef{Name: "Armbar"}, UserSkillInput{}); !domainagg.IsCode(err, domainagg.CodeValidation) {
		t.Fatalf("missing category ref: %v", err)
	}
	if err := validateLogInput(userID, okRef, UserSkillInput{Source: "WARMUP"}); !domainagg.IsCode(err, domainagg.CodeValidation) {
		t.Fatalf("bad source: %v", err)
	}
	if err := validateLogInput(userID, okRef, UserSkillInput{Source: "COMPETITION"}); err != nil {
		t.Fatalf("known source rejected: %v", err)
	}
}

func TestPickSkill(t *testing.T) {
	caller := uuid.New()
	other := uuid.New()

	pub := &types.Skill{ID: uuid.New(), IsPublic: true}
	own := &types.Skill{ID: uuid.New(), CreatorID: &caller}
	foreign := &types.Skill{ID: uuid.New(), CreatorID: &other}

	if got := pickSkill([]*types.Skill{foreign, own, pub}, caller); got != pub {
		t.Fatal("public should win over own and foreign")
	}
	if got := pickSkill([]*types.Skill{foreign, own}, caller); got != own {
		t.Fatal("caller's own should win over foreign")
	}
	if got := pickSkill([]*types.Skill{foreign}, caller); got != foreign {
		t.Fatal("lone foreign match is the defensive fallback")
	}
	if got := pickSkill(nil, caller); got != nil {
		t.Fatal("no matches should pick nothing")
	}
}
