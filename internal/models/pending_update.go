package models

import (
	"time"

	"github.com/google/uuid"
)

// Pending skill update statuses
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// PendingSkillUpdateDB represents a proposed skill creation or edit awaiting review.
// The row holds a copy of all target field values; the skills table is untouched
// until an administrator approves.
type PendingSkillUpdateDB struct {
	PendingID     uuid.UUID  `json:"pending_id" db:"pending_id"`                 // Unique identifier of the proposal
	UserID        uuid.UUID  `json:"user_id" db:"user_id"`                       // Submitter
	SkillID       *uuid.UUID `json:"skill_id,omitempty" db:"skill_id"`           // Target skill when is_update is true
	Name          string     `json:"name" db:"name"`                             // Proposed skill name
	Category      string     `json:"category" db:"category"`                     // Proposed category
	Level         string     `json:"level" db:"level"`                           // Proposed proficiency level
	Certification *string    `json:"certification,omitempty" db:"certification"` // Proposed certification name
	IsUpdate      bool       `json:"is_update" db:"is_update"`                   // False means "new skill"
	Status        string     `json:"status" db:"status"`                         // pending, approved or rejected
	SubmittedAt   time.Time  `json:"submitted_at" db:"submitted_at"`             // Submission timestamp
	ReviewedAt    *time.Time `json:"reviewed_at,omitempty" db:"reviewed_at"`     // Review timestamp, nil while pending
	ReviewedBy    *uuid.UUID `json:"reviewed_by,omitempty" db:"reviewed_by"`     // Reviewing administrator
	ReviewNotes   *string    `json:"review_notes,omitempty" db:"review_notes"`   // Optional reviewer notes
}
