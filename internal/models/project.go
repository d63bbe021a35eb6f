package models

import (
	"time"

	"github.com/google/uuid"
)

// Project statuses
const (
	ProjectActive    = "active"
	ProjectOnHold    = "on_hold"
	ProjectCompleted = "completed"
)

// ProjectDB represents a client project row in the database
type ProjectDB struct {
	ProjectID      uuid.UUID  `json:"project_id" db:"project_id"`                       // Primary key
	ClientID       uuid.UUID  `json:"client_id" db:"client_id"`                         // Owning client
	Name           string     `json:"name" db:"name"`                                   // Project name
	Description    string     `json:"description" db:"description"`                     // Free-text description
	Status         string     `json:"status" db:"status"`                               // active, on_hold or completed
	StartDate      time.Time  `json:"start_date" db:"start_date"`                       // Engagement start
	EndDate        *time.Time `json:"end_date,omitempty" db:"end_date"`                 // Engagement end, nil while open-ended
	LeadID         *uuid.UUID `json:"lead_id,omitempty" db:"lead_id"`                   // Optional project lead
	DeliveryLeadID *uuid.UUID `json:"delivery_lead_id,omitempty" db:"delivery_lead_id"` // Optional delivery lead
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`                       // Creation timestamp
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`                       // Last update timestamp
}

// ProjectSkillDB represents a skill a project requires. The set is replaced
// as a whole; rows vanish with the project.
type ProjectSkillDB struct {
	ProjectID uuid.UUID `json:"project_id" db:"project_id"` // Owning project
	Name      string    `json:"name" db:"name"`             // Required skill name
	Category  string    `json:"category" db:"category"`     // Required skill category
}
