package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification type tags
const (
	NotificationEndorsement = "endorsement"
	NotificationLevelUp     = "level_up"
	NotificationAchievement = "achievement"
)

// NotificationDB represents a per-user inbox entry
type NotificationDB struct {
	NotificationID uuid.UUID  `json:"notification_id" db:"notification_id"`           // Primary key
	UserID         uuid.UUID  `json:"user_id" db:"user_id"`                           // Inbox owner
	Type           string     `json:"type" db:"type"`                                 // endorsement, level_up or achievement
	Message        string     `json:"message" db:"message"`                           // Rendered message text
	SkillID        *uuid.UUID `json:"skill_id,omitempty" db:"skill_id"`               // Optional related skill
	RelatedUserID  *uuid.UUID `json:"related_user_id,omitempty" db:"related_user_id"` // Optional related user, e.g. the endorser
	IsRead         bool       `json:"is_read" db:"is_read"`                           // Read/unread flag
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`                     // Creation timestamp
}
