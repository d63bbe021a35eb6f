package models

import (
	"time"

	"github.com/google/uuid"
)

// SkillTemplateDB represents an admin-curated taxonomy entry users pick from
// when submitting skills.
type SkillTemplateDB struct {
	TemplateID  uuid.UUID `json:"template_id" db:"template_id"`
	Name        string    `json:"name" db:"name"`
	Category    string    `json:"category" db:"category"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// SkillTargetDB represents an organisational staffing target: the number of
// people wanted at a given level of a skill. Skill-gap analytics compare
// targets against the current skill counts.
type SkillTargetDB struct {
	TargetID    uuid.UUID `json:"target_id" db:"target_id"`
	Name        string    `json:"name" db:"name"`
	Category    string    `json:"category" db:"category"`
	TargetLevel string    `json:"target_level" db:"target_level"`
	Headcount   int       `json:"headcount" db:"headcount"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
