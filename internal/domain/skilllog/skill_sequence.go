package skilllog

import (
	"time"

	"github.com/google/uuid"
)

// SkillSequence is one ordered stage of executing a technique. StepNumber
// values are contiguous from 1 within a UserSkill and mirror the order the
// caller submitted; unique (user_skill_id, step_number).
type SkillSequence struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserSkillID uuid.UUID `gorm:"type:uuid;column:user_skill_id;not null;index:idx_sequence_step,unique,priority:1" json:"user_skill_id"`
	StepNumber  int       `gorm:"column:step_number;not null;index:idx_sequence_step,unique,priority:2" json:"step_number"`
	Intention   string    `gorm:"column:intention;type:text" json:"intention"`

	Details []*SequenceDetail `gorm:"foreignKey:SequenceID;references:ID" json:"details,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (SkillSequence) TableName() string { return "skill_sequence" }
