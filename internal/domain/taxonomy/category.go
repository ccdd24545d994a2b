package taxonomy

import (
	"time"

	"github.com/google/uuid"
)

// Category groups skills, either system-predefined (owner_id NULL) or
// personal to one user. Name uniqueness is enforced by two partial unique
// indexes created in migrate.go: globally for predefined rows, per owner
// for personal rows. Reference data; rows are never deleted by this core.
type Category struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name         string     `gorm:"column:name;not null;index" json:"name"`
	IsPredefined bool       `gorm:"column:is_predefined;not null;default:false" json:"is_predefined"`
	OwnerID      *uuid.UUID `gorm:"type:uuid;column:owner_id;index" json:"owner_id,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Category) TableName() string { return "category" }
