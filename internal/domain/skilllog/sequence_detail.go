package skilllog

import (
	"time"

	"github.com/google/uuid"
)

// SequenceDetail is a single free-text note on one step. Position records
// insertion order so re-reads display details as submitted; it carries no
// semantic ranking.
type SequenceDetail struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SequenceID uuid.UUID `gorm:"type:uuid;column:sequence_id;not null;index" json:"sequence_id"`
	Position   int       `gorm:"column:position;not null;default:0" json:"position"`
	Detail     string    `gorm:"column:detail;type:text;not null" json:"detail"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (SequenceDetail) TableName() string { return "sequence_detail" }
