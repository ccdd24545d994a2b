package taxonomy

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Skill is the canonical technique definition inside one category, either
// public (shared) or privately created by one user. `(category_id, name)`
// is unique across live rows (partial index in migrate.go); concurrent
// find-or-create races surface as unique violations and are resolved by
// the resolver re-reading.
type Skill struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name       string     `gorm:"column:name;not null" json:"name"`
	CategoryID uuid.UUID  `gorm:"type:uuid;column:category_id;not null;index" json:"category_id"`
	Category   *Category  `gorm:"foreignKey:CategoryID;references:ID" json:"category,omitempty"`
	IsPublic   bool       `gorm:"column:is_public;not null;default:false" json:"is_public"`
	CreatorID  *uuid.UUID `gorm:"type:uuid;column:creator_id;index" json:"creator_id,omitempty"`

	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb" json:"metadata,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Skill) TableName() string { return "skill" }
