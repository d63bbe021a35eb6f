package models

// Event kinds published to the events topic after a state change commits.
const (
	EventSkillApproved = "skill_approved"
	EventSkillRejected = "skill_rejected"
	EventEndorsement   = "endorsement"
)

// Event represents a notification/email fan-out message published to Kafka
// after the triggering transaction commits. A mailer service consumes the
// topic; publishing is best-effort.
type Event struct {
	EventID   string `json:"event_id" bson:"event_id"`           // EventID is a unique identifier for the event.
	Kind      string `json:"kind" bson:"kind"`                   // Kind is the event type, e.g. "skill_approved".
	Timestamp int64  `json:"timestamp" bson:"timestamp"`         // Timestamp is the Unix timestamp (in seconds) when the event occurred.
	UserID    string `json:"user_id" bson:"user_id"`             // UserID is the identifier of the affected user.
	SkillID   string `json:"skill_id,omitempty" bson:"skill_id"` // SkillID is the identifier of the related skill, if any.
	Message   string `json:"message" bson:"message"`             // Message is the human-readable text for the mailer.
}
