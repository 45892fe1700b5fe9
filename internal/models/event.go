package models

// Event types published to the message broker.
const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"
	EventRoleCreated = "role.created"
	EventPostCreated = "post.created"
	EventPostUpdated = "post.updated"
	EventPostDeleted = "post.deleted"
)

// Event represents a lifecycle change of a user, role or post.
type Event struct {
	EventID   string `json:"event_id"`  // Unique event identifier
	Type      string `json:"type"`      // One of the Event* constants
	EntityID  int64  `json:"entity_id"` // Primary key of the changed record
	ActorID   int64  `json:"actor_id,omitempty"`
	Timestamp int64  `json:"timestamp"` // Unix seconds
}
