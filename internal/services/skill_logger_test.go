package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/grapplelog/grapplelog-backend/internal/data/aggregates"
	skilllogrepos "github.com/grapplelog/grapplelog-backend/internal/data/repos/skilllog"
	"github.com/grapplelog/grapplelog-backend/internal/data/repos/testutil"
	taxonomyrepos "github.com/grapplelog/grapplelog-backend/internal/data/repos/taxonomy"
	types "github.com/grapplelog/grapplelog-backend/internal/domain"
	domainagg "github.com/grapplelog/grapplelog-backend/internal/domain/aggregates"
	"github.com/grapplelog/grapplelog-backend/internal/domain/skilllog"
	"github.com/grapplelog/grapplelog-backend/internal/platform/dbctx"
)

// newTestLogger wires a SkillLogger against the real database, optionally
// swapping in a different detail repo to force mid-transaction failures.
func newTestLogger(t *testing.T, db *gorm.DB, detailRepo skilllogrepos.SequenceDetailRepo) SkillLogger {
	t.Helper()
	log := testutil.Logger(t)
	if detailRepo == nil {
		detailRepo = skilllogrepos.NewSequenceDetailRepo(db, log)
	}
	return NewSkillLogger(
		db,
		log,
		aggregates.NewGormTxRunner(db),
		NewCategoryResolver(db, log, taxonomyrepos.NewCategoryRepo(db, log)),
		NewSkillResolver(db, log, taxonomyrepos.NewSkillRepo(db, log)),
		NewSequenceBuilder(db, log, skilllogrepos.NewSkillSequenceRepo(db, log), detailRepo),
		skilllogrepos.NewUserSkillRepo(db, log),
	)
}

type failingDetailRepo struct{}

func (failingDetailRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.SequenceDetail) ([]*types.SequenceDetail, error) {
	return nil, errors.New("detail insert failed")
}

func (failingDetailRepo) GetBySequenceIDs(ctx context.Context, tx *gorm.DB, sequenceIDs []uuid.UUID) ([]*types.SequenceDetail, error) {
	return nil, nil
}

// seedCommittedUser creates a user outside any test transaction; LogSkill
// opens its own transaction, so its foreign keys need committed rows.
func seedCommittedUser(t *testing.T, db *gorm.DB) *types.User {
	t.Helper()
	u := testutil.SeedUser(t, context.Background(), db, testutil.UniqueName("logger")+"@example.com")
	t.Cleanup(func() {
		db.Exec(`DELETE FROM "user" WHERE id = ?`, u.ID)
	})
	return u
}

func cleanupLoggedRows(t *testing.T, db *gorm.DB, userID uuid.UUID, skillName, categoryName string) {
	t.Helper()
	t.Cleanup(func() {
		db.Exec(`DELETE FROM sequence_detail WHERE sequence_id IN (
			SELECT ss.id FROM skill_sequence ss
			JOIN user_skill us ON us.id = ss.user_skill_id
			WHERE us.user_id = ?)`, userID)
		db.Exec(`DELETE FROM skill_sequence WHERE user_skill_id IN (SELECT id FROM user_skill WHERE user_id = ?)`, userID)
		db.Exec(`DELETE FROM user_skill WHERE user_id = ?`, userID)
		db.Exec(`DELETE FROM skill WHERE name = ?`, skillName)
		db.Exec(`DELETE FROM category WHERE name = ?`, categoryName)
	})
}

func countByName(t *testing.T, db *gorm.DB, table, name string) int64 {
	t.Helper()
	var n int64
	if err := db.Table(table).Where("name = ?", name).Count(&n).Error; err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func TestSkillLoggerRoundTrip(t *testing.T) {
	db := testutil.DB(t)
	svc := newTestLogger(t, db, nil)
	ctx := context.Background()

	user := seedCommittedUser(t, db)
	skillName := testutil.UniqueName("Scissor Sweep")
	categoryName := testutil.UniqueName("Guard")
	cleanupLoggedRows(t, db, user.ID, skillName, categoryName)

	result, err := svc.LogSkill(ctx, user.ID, SkillRef{Name: skillName, Category: CategoryByName(categoryName)}, UserSkillInput{
		Note: "worked well from closed guard",
		Steps: []StepInput{
			{Intention: "Break posture", Details: []string{"grip collar", "grip sleeve"}},
			{Intention: "Attack", Details: []string{"pull head down"}},
		},
	})
	if err != nil {
		t.Fatalf("LogSkill: %v", err)
	}
	if result.Skill == nil || result.Skill.Name != skillName {
		t.Fatalf("result skill = %+v", result.Skill)
	}
	if result.UserSkill.Source != skilllog.SourceTraining {
		t.Fatalf("source defaulted to %q, want %q", result.UserSkill.Source, skilllog.SourceTraining)
	}

	entries, err := svc.ListEntries(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("ListEntries returned %d entries, want 1", len(entries))
	}
	entry := entries[0]
	if entry.ID != result.UserSkill.ID || entry.Note != "worked well from closed guard" {
		t.Fatalf("entry = %+v", entry)
	}
	if len(entry.Sequences) != 2 {
		t.Fatalf("entry has %d sequences, want 2", len(entry.Sequences))
	}
	first := entry.Sequences[0]
	if first.StepNumber != 1 || first.Intention != "Break posture" {
		t.Fatalf("first sequence = %+v", first)
	}
	if len(first.Details) != 2 || first.Details[0].Detail != "grip collar" || first.Details[1].Detail != "grip sleeve" {
		t.Fatalf("first sequence details = %+v", first.Details)
	}
	if entry.Sequences[1].StepNumber != 2 || entry.Sequences[1].Intention != "Attack" {
		t.Fatalf("second sequence = %+v", entry.Sequences[1])
	}
}

func TestSkillLoggerEmptySequence(t *testing.T) {
	db := testutil.DB(t)
	svc := newTestLogger(t, db, nil)
	ctx := context.Background()

	user := seedCommittedUser(t, db)
	skillName := testutil.UniqueName("Toe Hold")
	categoryName := testutil.UniqueName("Leg Locks")
	cleanupLoggedRows(t, db, user.ID, skillName, categoryName)

	result, err := svc.LogSkill(ctx, user.ID, SkillRef{Name: skillName, Category: CategoryByName(categoryName)}, UserSkillInput{})
	if err != nil {
		t.Fatalf("LogSkill(no steps): %v", err)
	}
	if len(result.UserSkill.Sequences) != 0 {
		t.Fatalf("expected zero sequences, got %d", len(result.UserSkill.Sequences))
	}

	entries, err := svc.ListEntries(ctx, user.ID)
	if err != nil || len(entries) != 1 || len(entries[0].Sequences) != 0 {
		t.Fatalf("ListEntries = %+v err=%v", entries, err)
	}
}

// A failed sequence-detail insert must take the whole unit down with it:
// no category, skill or log entry row survives.
func TestSkillLoggerAtomicity(t *testing.T) {
	db := testutil.DB(t)
	svc := newTestLogger(t, db, failingDetailRepo{})
	ctx := context.Background()

	user := seedCommittedUser(t, db)
	skillName := testutil.UniqueName("Heel Hook")
	categoryName := testutil.UniqueName("Leg Locks")
	cleanupLoggedRows(t, db, user.ID, skillName, categoryName)

	_, err := svc.LogSkill(ctx, user.ID, SkillRef{Name: skillName, Category: CategoryByName(categoryName)}, UserSkillInput{
		Steps: []StepInput{{Intention: "Entry", Details: []string{"knee line"}}},
	})
	if err == nil {
		t.Fatal("LogSkill succeeded despite failing detail insert")
	}

	if n := countByName(t, db, "category", categoryName); n != 0 {
		t.Fatalf("category survived rollback: %d rows", n)
	}
	if n := countByName(t, db, "skill", skillName); n != 0 {
		t.Fatalf("skill survived rollback: %d rows", n)
	}
	entries, err := svc.ListEntries(ctx, user.ID)
	if err != nil || len(entries) != 0 {
		t.Fatalf("log entry survived rollback: %v err=%v", entries, err)
	}
}

// Two users logging the same technique name end up sharing one skill row.
func TestSkillLoggerSkillReuse(t *testing.T) {
	db := testutil.DB(t)
	svc := newTestLogger(t, db, nil)
	ctx := context.Background()

	alice := seedCommittedUser(t, db)
	bob := seedCommittedUser(t, db)
	skillName := testutil.UniqueName("Armbar")
	categoryName := testutil.UniqueName("Submissions")
	cleanupLoggedRows(t, db, alice.ID, skillName, categoryName)
	cleanupLoggedRows(t, db, bob.ID, skillName, categoryName)

	ref := SkillRef{Name: skillName, Category: CategoryByName(categoryName)}
	first, err := svc.LogSkill(ctx, alice.ID, ref, UserSkillInput{})
	if err != nil {
		t.Fatalf("LogSkill(alice): %v", err)
	}
	// Bob refers to Alice's category by id; a by-name resolve would
	// lazily create Bob's own personal category instead.
	second, err := svc.LogSkill(ctx, bob.ID, SkillRef{Name: skillName, Category: CategoryByID(first.Skill.CategoryID)}, UserSkillInput{})
	if err != nil {
		t.Fatalf("LogSkill(bob): %v", err)
	}
	if second.Skill.ID != first.Skill.ID {
		t.Fatalf("skill not shared: %s vs %s", second.Skill.ID, first.Skill.ID)
	}
	if n := countByName(t, db, "skill", skillName); n != 1 {
		t.Fatalf("expected one skill row, found %d", n)
	}
}

// Concurrent first-time logs of the same category name: the unique index
// picks one winner and the loser re-reads, so exactly one row exists and
// both calls succeed.
func TestSkillLoggerConcurrentCategoryCreate(t *testing.T) {
	db := testutil.DB(t)
	svc := newTestLogger(t, db, nil)
	ctx := context.Background()

	user := seedCommittedUser(t, db)
	skillName := testutil.UniqueName("Knee Slice")
	categoryName := testutil.UniqueName("Passing")
	cleanupLoggedRows(t, db, user.ID, skillName, categoryName)

	ref := SkillRef{Name: skillName, Category: CategoryByName(categoryName)}
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.LogSkill(ctx, user.ID, ref, UserSkillInput{})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("concurrent LogSkill %d: %v", i, err)
		}
	}
	if n := countByName(t, db, "category", categoryName); n != 1 {
		t.Fatalf("expected one category row, found %d", n)
	}
	if n := countByName(t, db, "skill", skillName); n != 1 {
		t.Fatalf("expected one skill row, found %d", n)
	}
	entries, err := svc.ListEntries(ctx, user.ID)
	if err != nil || len(entries) != 2 {
		t.Fatalf("expected both log entries, got %d err=%v", len(entries), err)
	}
}

// LogSkillIn joins the caller's transaction: if the outer unit fails after
// the log succeeded, everything is discarded together.
func TestSkillLoggerComposesWithOuterTx(t *testing.T) {
	db := testutil.DB(t)
	svc := newTestLogger(t, db, nil)
	runner := aggregates.NewGormTxRunner(db)
	ctx := context.Background()

	user := seedCommittedUser(t, db)
	skillName := testutil.UniqueName("Kimura")
	categoryName := testutil.UniqueName("Submissions")
	cleanupLoggedRows(t, db, user.ID, skillName, categoryName)

	sentinel := errors.New("outer unit failed")
	err := runner.InTx(ctx, func(dbc dbctx.Context) error {
		if _, lerr := svc.LogSkillIn(dbc, user.ID, SkillRef{Name: skillName, Category: CategoryByName(categoryName)}, UserSkillInput{
			Steps: []StepInput{{Intention: "Isolate the arm"}},
		}); lerr != nil {
			return lerr
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("InTx err = %v, want sentinel", err)
	}

	if n := countByName(t, db, "category", categoryName); n != 0 {
		t.Fatalf("category survived outer rollback: %d rows", n)
	}
	if n := countByName(t, db, "skill", skillName); n != 0 {
		t.Fatalf("skill survived outer rollback: %d rows", n)
	}
	entries, err := svc.ListEntries(ctx, user.ID)
	if err != nil || len(entries) != 0 {
		t.Fatalf("log entry survived outer rollback: %v err=%v", entries, err)
	}
}

func TestSkillLoggerValidation(t *testing.T) {
	db := testutil.DB(t)
	svc := newTestLogger(t, db, nil)
	ctx := context.Background()

	ref := SkillRef{Name: "Armbar", Category: CategoryByName("Submissions")}
	if _, err := svc.LogSkill(ctx, uuid.Nil, ref, UserSkillInput{}); !domainagg.IsCode(err, domainagg.CodeValidation) {
		t.Fatalf("LogSkill(nil user): err=%v, want validation", err)
	}
	if _, err := svc.LogSkill(ctx, uuid.New(), SkillRef{Category: CategoryByName("Submissions")}, UserSkillInput{}); !domainagg.IsCode(err, domainagg.CodeValidation) {
		t.Fatalf("LogSkill(blank name): err=%v, want validation", err)
	}
	if _, err := svc.LogSkill(ctx, uuid.New(), SkillRef{Name: "Armbar"}, UserSkillInput{}); !domainagg.IsCode(err, domainagg.CodeValidation) {
		t.Fatalf("LogSkill(zero category ref): err=%v, want validation", err)
	}
	if _, err := svc.LogSkill(ctx, uuid.New(), ref, UserSkillInput{Source: "OSMOSIS"}); !domainagg.IsCode(err, domainagg.CodeValidation) {
		t.Fatalf("LogSkill(bad source): err=%v, want validation", err)
	}
	if _, err := svc.ListEntries(ctx, uuid.Nil); !domainagg.IsCode(err, domainagg.CodeValidation) {
		t.Fatalf("ListEntries(nil user): err=%v, want validation", err)
	}
}
