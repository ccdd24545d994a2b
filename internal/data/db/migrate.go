package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/grapplelog/grapplelog-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(
		// Identity
		&types.User{},

		// Taxonomy (shared reference data)
		&types.Category{},
		&types.Skill{},

		// Per-user skill log
		&types.UserSkill{},
		&types.SkillSequence{},
		&types.SequenceDetail{},
	); err != nil {
		return err
	}
	return createPartialIndexes(db)
}

// createPartialIndexes installs the uniqueness rules GORM tags cannot
// express. These constraints are what turn concurrent find-or-create
// races into unique violations instead of duplicate rows:
//   - predefined category names are globally unique
//   - personal category names are unique per owner
//   - a skill name resolves to one live row inside its category
func createPartialIndexes(db *gorm.DB) error {
	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_category_predefined_name
			ON category (name) WHERE owner_id IS NULL;`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_category_owner_name
			ON category (owner_id, name) WHERE owner_id IS NOT NULL;`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_skill_category_name
			ON skill (category_id, name);`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}
