// Package projects owns the project collection: every create, update and
// delete of projects and their child records goes through the Store, which
// assigns identities and timestamps, appends audit events and keeps durable
// storage in sync.
package projects

import (
	"encoding/json"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/consentmap/consentmap/internal/metrics"
	"github.com/consentmap/consentmap/internal/models"
	"github.com/consentmap/consentmap/internal/persistence"
)

// SeedFunc supplies the initial project collection when durable storage
// holds no prior data. The bootstrap runs once; afterwards the persisted
// collection is restored instead.
type SeedFunc func(now time.Time) []models.Project

// Store holds the in-memory project collection.
//
// Every mutation replaces the whole collection (and the touched project)
// rather than editing in place, so any previously obtained snapshot stays
// valid and unchanged while a caller is still reading it. The store is
// owned by a single caller at a time; it does no locking because there is
// no concurrent writer.
type Store struct {
	kv       persistence.KV
	projects []models.Project
}

// New creates a project store backed by kv. It restores the persisted
// collection if one exists; otherwise (including on read or parse failure)
// it falls back to the seed and persists the seeded collection once.
// A nil seed starts the store empty.
func New(kv persistence.KV, seed SeedFunc) *Store {
	s := &Store{kv: kv, projects: []models.Project{}}

	data, ok, err := kv.Read(persistence.ProjectsKey)
	switch {
	case err != nil:
		slog.Warn("Failed to read stored projects, reseeding", "error", err)
	case ok:
		var restored []models.Project
		if err := json.Unmarshal(data, &restored); err != nil {
			slog.Warn("Failed to parse stored projects, reseeding", "error", err)
			break
		}
		s.projects = restored
		slog.Info("Projects restored", "count", len(restored))
		return s
	}

	if seed != nil {
		s.projects = seed(time.Now())
	}
	s.sync()
	slog.Info("Projects seeded", "count", len(s.projects))
	return s
}

// Projects returns the current collection snapshot. The returned slice is
// never mutated by later store operations; treat it as read-only.
func (s *Store) Projects() []models.Project {
	return s.projects
}

// GetProject looks up a project by id. Absence is an expected outcome, not
// an error: callers must branch on ok.
func (s *Store) GetProject(id string) (models.Project, bool) {
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}

// Draft carries the caller-supplied fields for a new project. Everything
// else (id, timestamps, child collections, the seeded audit event) is
// assigned by the store.
type Draft struct {
	Name                string
	Description         string
	Owner               string
	EstimatedImageCount int
	Status              models.ProjectStatus
}

// CreateProject creates a project from the draft and returns it. Blank
// name, owner and status fall back to defaults; the event log starts with
// a single "created" entry authored by the owner.
func (s *Store) CreateProject(d Draft) models.Project {
	now := time.Now().UnixMilli()

	if d.Name == "" {
		d.Name = "Untitled Project"
	}
	if d.Owner == "" {
		d.Owner = "unknown"
	}
	if d.Status == "" {
		d.Status = models.StatusActive
	}

	project := models.Project{
		ID:                  uuid.New().String(),
		Name:                d.Name,
		Description:         d.Description,
		Owner:               d.Owner,
		EstimatedImageCount: d.EstimatedImageCount,
		Status:              d.Status,
		Images:              []models.ImageRecord{},
		Persons:             []models.Person{},
		DataEntries:         []models.DataEntry{},
		Events: []models.ProjectEvent{{
			ID:          uuid.New().String(),
			Type:        models.EventCreated,
			User:        d.Owner,
			Timestamp:   now,
			Description: "Project created",
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.projects = append(slices.Clone(s.projects), project)
	s.sync()
	metrics.StoreMutations.WithLabelValues("create_project").Inc()
	slog.Info("Project created", "project_id", project.ID, "name", project.Name, "owner", project.Owner)
	return project
}

// Update carries a partial project edit; nil fields are left untouched.
type Update struct {
	Name                *string
	Description         *string
	Owner               *string
	EstimatedImageCount *int
	Status              *models.ProjectStatus
}

// UpdateProject merges the update into the matching project and refreshes
// UpdatedAt. Silently a no-op if the id is unknown.
func (s *Store) UpdateProject(id string, u Update) {
	ok := s.apply(id, func(p models.Project) models.Project {
		if u.Name != nil {
			p.Name = *u.Name
		}
		if u.Description != nil {
			p.Description = *u.Description
		}
		if u.Owner != nil {
			p.Owner = *u.Owner
		}
		if u.EstimatedImageCount != nil {
			p.EstimatedImageCount = *u.EstimatedImageCount
		}
		if u.Status != nil {
			p.Status = *u.Status
		}
		p.UpdatedAt = time.Now().UnixMilli()
		return p
	})
	if ok {
		metrics.StoreMutations.WithLabelValues("update_project").Inc()
		slog.Info("Project updated", "project_id", id)
	}
}

// DeleteProject removes the project and, with it, every child record it
// owns. No-op if the id is unknown.
func (s *Store) DeleteProject(id string) {
	next := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		if p.ID != id {
			next = append(next, p)
		}
	}
	if len(next) == len(s.projects) {
		return
	}
	s.projects = next
	s.sync()
	metrics.StoreMutations.WithLabelValues("delete_project").Inc()
	slog.Info("Project deleted", "project_id", id)
}

// AddPerson appends a person to the project. The caller supplies everything
// except ID and Timestamp, which the store assigns. No-op if the project is
// unknown.
func (s *Store) AddPerson(projectID string, person models.Person) {
	person.ID = uuid.New().String()
	person.Timestamp = time.Now().UnixMilli()
	ok := s.apply(projectID, func(p models.Project) models.Project {
		p.Persons = append(slices.Clone(p.Persons), person)
		p.UpdatedAt = person.Timestamp
		return p
	})
	if ok {
		metrics.StoreMutations.WithLabelValues("add_person").Inc()
		slog.Debug("Person added", "project_id", projectID, "person_id", person.ID)
	}
}

// AddImage appends an image record to the project. ID and Timestamp are
// assigned by the store. No-op if the project is unknown.
func (s *Store) AddImage(projectID string, image models.ImageRecord) {
	image.ID = uuid.New().String()
	image.Timestamp = time.Now().UnixMilli()
	ok := s.apply(projectID, func(p models.Project) models.Project {
		p.Images = append(slices.Clone(p.Images), image)
		p.UpdatedAt = image.Timestamp
		return p
	})
	if ok {
		metrics.StoreMutations.WithLabelValues("add_image").Inc()
		slog.Debug("Image added", "project_id", projectID, "image_id", image.ID)
	}
}

// AddDataEntry appends a key/value entry to the project. ID and Timestamp
// are assigned by the store. No-op if the project is unknown.
func (s *Store) AddDataEntry(projectID string, entry models.DataEntry) {
	entry.ID = uuid.New().String()
	entry.Timestamp = time.Now().UnixMilli()
	ok := s.apply(projectID, func(p models.Project) models.Project {
		p.DataEntries = append(slices.Clone(p.DataEntries), entry)
		p.UpdatedAt = entry.Timestamp
		return p
	})
	if ok {
		metrics.StoreMutations.WithLabelValues("add_data_entry").Inc()
		slog.Debug("Data entry added", "project_id", projectID, "entry_id", entry.ID)
	}
}

// AddEvent appends an audit-log entry. Events record activity rather than
// content, so UpdatedAt is deliberately left alone. No-op if the project
// is unknown.
func (s *Store) AddEvent(projectID string, event models.ProjectEvent) {
	event.ID = uuid.New().String()
	event.Timestamp = time.Now().UnixMilli()
	ok := s.apply(projectID, func(p models.Project) models.Project {
		p.Events = append(slices.Clone(p.Events), event)
		return p
	})
	if ok {
		metrics.StoreMutations.WithLabelValues("add_event").Inc()
		slog.Debug("Event recorded", "project_id", projectID, "type", event.Type)
	}
}

// ClearEvents empties the project's audit log. UpdatedAt is untouched, as
// with AddEvent. No-op if the project is unknown.
func (s *Store) ClearEvents(projectID string) {
	ok := s.apply(projectID, func(p models.Project) models.Project {
		p.Events = []models.ProjectEvent{}
		return p
	})
	if ok {
		metrics.StoreMutations.WithLabelValues("clear_events").Inc()
		slog.Info("Event history cleared", "project_id", projectID)
	}
}

// DeletePerson removes a person by id and refreshes UpdatedAt. No-op if
// the project or the person is unknown.
func (s *Store) DeletePerson(projectID, personID string) {
	s.deleteChild(projectID, "delete_person", func(p *models.Project) bool {
		persons, removed := withoutPerson(p.Persons, personID)
		p.Persons = persons
		return removed
	})
}

// DeleteImage removes an image record by id and refreshes UpdatedAt. No-op
// if the project or the image is unknown.
func (s *Store) DeleteImage(projectID, imageID string) {
	s.deleteChild(projectID, "delete_image", func(p *models.Project) bool {
		images, removed := withoutImage(p.Images, imageID)
		p.Images = images
		return removed
	})
}

// DeleteDataEntry removes a data entry by id and refreshes UpdatedAt.
// No-op if the project or the entry is unknown.
func (s *Store) DeleteDataEntry(projectID, entryID string) {
	s.deleteChild(projectID, "delete_data_entry", func(p *models.Project) bool {
		entries, removed := withoutEntry(p.DataEntries, entryID)
		p.DataEntries = entries
		return removed
	})
}

// apply replaces the matching project with transform(project) using
// whole-collection copy-and-replace, then syncs. Reports whether a project
// matched.
func (s *Store) apply(projectID string, transform func(p models.Project) models.Project) bool {
	for i, p := range s.projects {
		if p.ID == projectID {
			next := slices.Clone(s.projects)
			next[i] = transform(p)
			s.projects = next
			s.sync()
			return true
		}
	}
	return false
}

// deleteChild runs remove against a copy of the project and commits it only
// if a record was actually removed, refreshing UpdatedAt.
func (s *Store) deleteChild(projectID, operation string, remove func(p *models.Project) bool) {
	for i, p := range s.projects {
		if p.ID != projectID {
			continue
		}
		if !remove(&p) {
			return
		}
		p.UpdatedAt = time.Now().UnixMilli()
		next := slices.Clone(s.projects)
		next[i] = p
		s.projects = next
		s.sync()
		metrics.StoreMutations.WithLabelValues(operation).Inc()
		slog.Debug("Record deleted", "project_id", projectID, "operation", operation)
		return
	}
}

// sync writes the full collection to durable storage. Failures are logged
// and counted, never propagated: the in-memory mutation stands even when
// durability is lost.
func (s *Store) sync() {
	data, err := json.Marshal(s.projects)
	if err != nil {
		slog.Error("Failed to encode projects", "error", err)
		metrics.SyncFailures.Inc()
		return
	}
	if err := s.kv.Write(persistence.ProjectsKey, data); err != nil {
		slog.Error("Failed to persist projects", "error", err)
		metrics.SyncFailures.Inc()
	}
}

func withoutPerson(persons []models.Person, id string) ([]models.Person, bool) {
	next := make([]models.Person, 0, len(persons))
	for _, per := range persons {
		if per.ID != id {
			next = append(next, per)
		}
	}
	return next, len(next) != len(persons)
}

func withoutImage(images []models.ImageRecord, id string) ([]models.ImageRecord, bool) {
	next := make([]models.ImageRecord, 0, len(images))
	for _, img := range images {
		if img.ID != id {
			next = append(next, img)
		}
	}
	return next, len(next) != len(images)
}

func withoutEntry(entries []models.DataEntry, id string) ([]models.DataEntry, bool) {
	next := make([]models.DataEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID != id {
			next = append(next, e)
		}
	}
	return next, len(next) != len(entries)
}
