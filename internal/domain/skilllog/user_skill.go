package skilllog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Where a logged skill came from.
const (
	SourceTraining    = "TRAINING"
	SourceCompetition = "COMPETITION"
	SourceIndependent = "INDEPENDENT"
)

// UserSkill is one user's logged instance of practicing a Skill. A user
// may log the same skill any number of times; each call produces its own
// row with its own note, video and step breakdown, so there is
// deliberately no unique constraint on (user_id, skill_id).
type UserSkill struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;column:user_id;not null;index" json:"user_id"`
	SkillID    uuid.UUID `gorm:"type:uuid;column:skill_id;not null;index" json:"skill_id"`
	Note       string    `gorm:"column:note;type:text" json:"note,omitempty"`
	VideoURL   string    `gorm:"column:video_url" json:"video_url,omitempty"`
	Source     string    `gorm:"column:source;not null;default:'TRAINING'" json:"source"`
	IsFavorite bool      `gorm:"column:is_favorite;not null;default:false" json:"is_favorite"`

	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb" json:"metadata,omitempty"`

	Sequences []*SkillSequence `gorm:"foreignKey:UserSkillID;references:ID" json:"sequences,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (UserSkill) TableName() string { return "user_skill" }

// ValidSource reports whether s is one of the known source values.
func ValidSource(s string) bool {
	switch s {
	case SourceTraining, SourceCompetition, SourceIndependent:
		return true
	default:
		return false
	}
}
