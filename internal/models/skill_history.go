package models

import (
	"time"

	"github.com/google/uuid"
)

// SkillHistoryDB is an immutable audit row recording a skill level change.
// PreviousLevel is nil for the row written when the skill is first created.
type SkillHistoryDB struct {
	HistoryID     uuid.UUID `json:"history_id" db:"history_id"`
	SkillID       uuid.UUID `json:"skill_id" db:"skill_id"`
	PreviousLevel *string   `json:"previous_level" db:"previous_level"`
	NewLevel      string    `json:"new_level" db:"new_level"`
	ChangeNote    string    `json:"change_note" db:"change_note"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
