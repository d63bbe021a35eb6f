package models

import (
	"time"

	"github.com/google/uuid"
)

// Resource history actions
const (
	ResourceAdded             = "added"
	ResourceRemoved           = "removed"
	ResourceRoleChanged       = "role_changed"
	ResourceAllocationChanged = "allocation_changed"
)

// ProjectResourceDB represents a user staffed onto a project with a role
// and a time allocation percentage.
type ProjectResourceDB struct {
	ResourceID uuid.UUID  `json:"resource_id" db:"resource_id"`
	ProjectID  uuid.UUID  `json:"project_id" db:"project_id"`
	UserID     uuid.UUID  `json:"user_id" db:"user_id"`
	Role       string     `json:"role" db:"role"`
	Allocation int        `json:"allocation" db:"allocation"` // Percentage of working time, 0-100
	StartDate  time.Time  `json:"start_date" db:"start_date"`
	EndDate    *time.Time `json:"end_date,omitempty" db:"end_date"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

// ProjectResourceHistoryDB is an immutable audit row written for every staffing
// change on a project. Previous values are captured before the mutating write.
type ProjectResourceHistoryDB struct {
	HistoryID          uuid.UUID `json:"history_id" db:"history_id"`
	ProjectID          uuid.UUID `json:"project_id" db:"project_id"`
	UserID             uuid.UUID `json:"user_id" db:"user_id"`
	Action             string    `json:"action" db:"action"` // added, removed, role_changed or allocation_changed
	PreviousRole       *string   `json:"previous_role,omitempty" db:"previous_role"`
	NewRole            *string   `json:"new_role,omitempty" db:"new_role"`
	PreviousAllocation *int      `json:"previous_allocation,omitempty" db:"previous_allocation"`
	NewAllocation      *int      `json:"new_allocation,omitempty" db:"new_allocation"`
	ChangedBy          uuid.UUID `json:"changed_by" db:"changed_by"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}
