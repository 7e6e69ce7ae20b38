package projects

import (
	"time"

	"github.com/consentmap/consentmap/internal/models"
)

// DemoSeed returns the three demonstration projects used to bootstrap a
// fresh installation. Timestamps are expressed relative to now so the
// activity timeline always looks recent.
//
// Tests substitute their own SeedFunc (usually nil for an empty store);
// nothing in the store depends on this particular dataset.
func DemoSeed(now time.Time) []models.Project {
	at := func(ago time.Duration) int64 { return now.Add(-ago).UnixMilli() }

	return []models.Project{
		{
			ID:                  "proj-1",
			Name:                "Marketing Campaign 2024",
			Description:         "Consent collection for Q1 marketing materials",
			Owner:               "admin@example.com",
			EstimatedImageCount: 50,
			Status:              models.StatusActive,
			Images: []models.ImageRecord{
				{ID: "img-1", Name: "hero-banner.jpg", Size: 245000, UploadedBy: "admin@example.com", Timestamp: at(24 * time.Hour)},
				{ID: "img-2", Name: "product-shot.png", Size: 180000, UploadedBy: "user@example.com", Timestamp: at(12 * time.Hour)},
			},
			Persons: []models.Person{
				{ID: "per-1", Name: "John Doe", PID: "PID-001", ConsentFiles: []string{"consent-john.pdf"}, Notes: "Full consent granted", AddedBy: "admin@example.com", Timestamp: at(24 * time.Hour)},
				{ID: "per-2", Name: "Jane Smith", PID: "PID-002", ConsentFiles: []string{"consent-jane.pdf"}, AddedBy: "user@example.com", Timestamp: at(12 * time.Hour)},
			},
			DataEntries: []models.DataEntry{
				{ID: "data-1", Key: "Campaign Type", Value: "Digital", AddedBy: "admin@example.com", Timestamp: at(24 * time.Hour)},
			},
			Events: []models.ProjectEvent{
				{ID: "evt-1", Type: models.EventCreated, User: "admin@example.com", Timestamp: at(48 * time.Hour), Description: "Project created"},
				{ID: "evt-2", Type: models.EventPersonAdded, User: "admin@example.com", Timestamp: at(24 * time.Hour), Description: "Added John Doe"},
				{ID: "evt-3", Type: models.EventImageUploaded, User: "admin@example.com", Timestamp: at(24 * time.Hour), Description: "Uploaded hero-banner.jpg"},
				{ID: "evt-4", Type: models.EventPersonAdded, User: "user@example.com", Timestamp: at(12 * time.Hour), Description: "Added Jane Smith"},
			},
			CreatedAt: at(48 * time.Hour),
			UpdatedAt: at(12 * time.Hour),
		},
		{
			ID:                  "proj-2",
			Name:                "Product Launch Event",
			Description:         "Photo consent for annual product launch",
			Owner:               "user@example.com",
			EstimatedImageCount: 100,
			Status:              models.StatusActive,
			Images:              []models.ImageRecord{},
			Persons: []models.Person{
				{ID: "per-3", Name: "Bob Wilson", ConsentFiles: []string{}, AddedBy: "user@example.com", Timestamp: at(time.Hour)},
			},
			DataEntries: []models.DataEntry{},
			Events: []models.ProjectEvent{
				{ID: "evt-5", Type: models.EventCreated, User: "user@example.com", Timestamp: at(24 * time.Hour), Description: "Project created"},
				{ID: "evt-6", Type: models.EventPersonAdded, User: "user@example.com", Timestamp: at(time.Hour), Description: "Added Bob Wilson"},
			},
			CreatedAt: at(24 * time.Hour),
			UpdatedAt: at(time.Hour),
		},
		{
			ID:                  "proj-3",
			Name:                "Annual Report 2023",
			Description:         "Employee photo consents for annual report",
			Owner:               "admin@example.com",
			EstimatedImageCount: 30,
			Status:              models.StatusCompleted,
			Images: []models.ImageRecord{
				{ID: "img-3", Name: "team-photo.jpg", Size: 520000, UploadedBy: "admin@example.com", Timestamp: at(7 * 24 * time.Hour)},
			},
			Persons: []models.Person{
				{ID: "per-4", Name: "Alice Brown", PID: "EMP-101", ConsentFiles: []string{"consent-alice.pdf"}, AddedBy: "admin@example.com", Timestamp: at(7 * 24 * time.Hour)},
			},
			DataEntries: []models.DataEntry{
				{ID: "data-2", Key: "Department", Value: "Engineering", AddedBy: "admin@example.com", Timestamp: at(7 * 24 * time.Hour)},
			},
			Events: []models.ProjectEvent{
				{ID: "evt-7", Type: models.EventCreated, User: "admin@example.com", Timestamp: at(14 * 24 * time.Hour), Description: "Project created"},
			},
			CreatedAt: at(14 * 24 * time.Hour),
			UpdatedAt: at(7 * 24 * time.Hour),
		},
	}
}
