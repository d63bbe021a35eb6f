package models

import (
	"time"

	"github.com/google/uuid"
)

// Supported proficiency levels
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelExpert       = "expert"
)

// ValidLevel reports whether level is one of the supported proficiency levels.
func ValidLevel(level string) bool {
	switch level {
	case LevelBeginner, LevelIntermediate, LevelExpert:
		return true
	}
	return false
}

// SkillDB represents a skill row in the database
type SkillDB struct {
	SkillID           uuid.UUID  `json:"skill_id" db:"skill_id"`                               // Unique skill identifier
	UserID            uuid.UUID  `json:"user_id" db:"user_id"`                                 // Identifier of the skill's owner
	Name              string     `json:"name" db:"name"`                                       // Skill name, e.g. "Kubernetes"
	Category          string     `json:"category" db:"category"`                               // Skill category, e.g. "DevOps"
	Level             string     `json:"level" db:"level"`                                     // Proficiency level (beginner, intermediate, expert)
	Certification     *string    `json:"certification,omitempty" db:"certification"`           // Optional certification name
	CertificationDate *time.Time `json:"certification_date,omitempty" db:"certification_date"` // Optional certification date
	EndorsementCount  int        `json:"endorsement_count" db:"endorsement_count"`             // Number of endorsements received
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`                           // Creation timestamp
	UpdatedAt         time.Time  `json:"updated_at" db:"updated_at"`                           // Timestamp of the last update
}
