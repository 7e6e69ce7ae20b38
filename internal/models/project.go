package models

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	StatusActive    ProjectStatus = "active"
	StatusCompleted ProjectStatus = "completed"
	StatusOnHold    ProjectStatus = "on-hold"
)

// Project aggregates photographed persons, uploaded images, free-form
// metadata entries and an activity log under a single unit of work.
//
// All four child slices are owned exclusively by the project: records are
// created and removed only through the project store, which assigns every
// ID and timestamp itself.
type Project struct {
	// ID is the unique identifier, assigned at creation and immutable.
	ID string `json:"id"`

	// Name is the human-readable project name.
	Name string `json:"name"`

	// Description is optional free text.
	Description string `json:"description,omitempty"`

	// Owner is the email of the identity that created the project.
	Owner string `json:"owner"`

	// EstimatedImageCount is the expected number of images, used as the
	// denominator of the progress computation. Never negative.
	EstimatedImageCount int `json:"estimatedImageCount"`

	// Status is one of active, completed or on-hold.
	Status ProjectStatus `json:"status"`

	Images      []ImageRecord  `json:"images"`
	Persons     []Person       `json:"persons"`
	DataEntries []DataEntry    `json:"dataEntries"`
	Events      []ProjectEvent `json:"events"`

	// CreatedAt is set once at creation (Unix milliseconds).
	CreatedAt int64 `json:"createdAt"`

	// UpdatedAt is refreshed on every content mutation of the project or
	// its child collections. Event-log changes do not touch it.
	UpdatedAt int64 `json:"updatedAt"`
}

// Person is a data subject tracked for consent purposes.
type Person struct {
	ID string `json:"id"`

	// Name is the person's display name.
	Name string `json:"name"`

	// PID is an optional external person identifier (e.g. "PID-001").
	PID string `json:"pid,omitempty"`

	// ConsentFiles holds the names of uploaded consent documents.
	// File names only; content is never stored.
	ConsentFiles []string `json:"consentFiles"`

	// Notes is optional free text.
	Notes string `json:"notes,omitempty"`

	// AddedBy is the email of the identity that added this person.
	AddedBy string `json:"addedBy"`

	// Timestamp is when the person was added (Unix milliseconds).
	Timestamp int64 `json:"timestamp"`
}

// ImageRecord describes an uploaded image by name and size.
// The image bytes themselves are never persisted.
type ImageRecord struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Size       int64  `json:"size"`
	UploadedBy string `json:"uploadedBy"`
	Timestamp  int64  `json:"timestamp"`
}

// DataEntry is a free-form key/value metadata record.
// Keys are not required to be unique within a project.
type DataEntry struct {
	ID        string `json:"id"`
	Key       string `json:"key"`
	Value     string `json:"value"`
	AddedBy   string `json:"addedBy"`
	Timestamp int64  `json:"timestamp"`
}
