package models

import (
	"time"

	"github.com/google/uuid"
)

// ClientDB represents a client company row in the database
type ClientDB struct {
	ClientID     uuid.UUID `json:"client_id" db:"client_id"`
	Name         string    `json:"name" db:"name"`
	Industry     string    `json:"industry" db:"industry"`
	ContactEmail string    `json:"contact_email" db:"contact_email"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
