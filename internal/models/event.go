package models

// EventType classifies an audit-log entry.
type EventType string

const (
	EventCreated       EventType = "created"
	EventPersonAdded   EventType = "person_added"
	EventImageUploaded EventType = "image_uploaded"
	EventDataAdded     EventType = "data_added"
	EventEdited        EventType = "edited"
	EventDeleted       EventType = "deleted"
)

// ProjectEvent is one entry in a project's append-only activity log.
// The log is metadata about activity, not project content: appending an
// event does not refresh the project's UpdatedAt.
type ProjectEvent struct {
	ID string `json:"id"`

	Type EventType `json:"type"`

	// User is the email of the identity that performed the action.
	User string `json:"user"`

	// Timestamp is when the event was recorded (Unix milliseconds).
	// Insertion order is not guaranteed to follow timestamp order;
	// readers sort newest-first.
	Timestamp int64 `json:"timestamp"`

	// Description is a short human-readable summary, e.g. "Added Jane Smith".
	Description string `json:"description"`
}
