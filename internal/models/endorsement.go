package models

import (
	"time"

	"github.com/google/uuid"
)

// EndorsementDB represents a peer attestation of another user's skill.
// A skill holds at most one endorsement per distinct endorser.
type EndorsementDB struct {
	EndorsementID uuid.UUID `json:"endorsement_id" db:"endorsement_id"`
	SkillID       uuid.UUID `json:"skill_id" db:"skill_id"`
	EndorserID    uuid.UUID `json:"endorser_id" db:"endorser_id"`
	Comment       string    `json:"comment" db:"comment"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
