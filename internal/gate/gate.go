// Package gate wraps the gated store operations behind the permission
// resolver, so the rule "unauthorized calls never reach the store" is
// enforced in one place instead of at every call site.
//
// The raw stores stay deliberately unenforced; callers that want the
// original caller-checked behavior can keep using them directly.
package gate

import (
	"errors"

	"github.com/consentmap/consentmap/internal/models"
	"github.com/consentmap/consentmap/internal/permissions"
	"github.com/consentmap/consentmap/internal/projects"
	"github.com/consentmap/consentmap/internal/session"
)

// ErrNotAllowed is returned when the current identity lacks the capability
// an operation requires.
var ErrNotAllowed = errors.New("operation not permitted for current role")

// Gate is an authorization-checking facade over the project store. It
// consults the permission resolver against the live session before every
// delegation, so capability changes take effect immediately.
type Gate struct {
	session  *session.Store
	projects *projects.Store
}

// New creates a gate over the given stores.
func New(sess *session.Store, store *projects.Store) *Gate {
	return &Gate{session: sess, projects: store}
}

func (g *Gate) caps() permissions.Capabilities {
	return permissions.Resolve(g.session.Current())
}

// Projects returns the current collection snapshot. Reads are never gated.
func (g *Gate) Projects() []models.Project {
	return g.projects.Projects()
}

// GetProject looks up a project by id. Reads are never gated.
func (g *Gate) GetProject(id string) (models.Project, bool) {
	return g.projects.GetProject(id)
}

// CreateProject creates a project; requires CanAdd.
func (g *Gate) CreateProject(d projects.Draft) (models.Project, error) {
	if !g.caps().CanAdd {
		return models.Project{}, ErrNotAllowed
	}
	return g.projects.CreateProject(d), nil
}

// UpdateProject edits a project; requires CanEdit.
func (g *Gate) UpdateProject(id string, u projects.Update) error {
	if !g.caps().CanEdit {
		return ErrNotAllowed
	}
	g.projects.UpdateProject(id, u)
	return nil
}

// DeleteProject removes a project and its children; requires CanDelete.
func (g *Gate) DeleteProject(id string) error {
	if !g.caps().CanDelete {
		return ErrNotAllowed
	}
	g.projects.DeleteProject(id)
	return nil
}

// AddPerson appends a person; requires CanAdd.
func (g *Gate) AddPerson(projectID string, person models.Person) error {
	if !g.caps().CanAdd {
		return ErrNotAllowed
	}
	g.projects.AddPerson(projectID, person)
	return nil
}

// AddImage appends an image record; requires CanUpload.
func (g *Gate) AddImage(projectID string, image models.ImageRecord) error {
	if !g.caps().CanUpload {
		return ErrNotAllowed
	}
	g.projects.AddImage(projectID, image)
	return nil
}

// AddDataEntry appends a data entry; requires CanAdd.
func (g *Gate) AddDataEntry(projectID string, entry models.DataEntry) error {
	if !g.caps().CanAdd {
		return ErrNotAllowed
	}
	g.projects.AddDataEntry(projectID, entry)
	return nil
}

// AddEvent appends an audit-log entry. Events accompany actions that were
// already authorized, so the append itself is not gated.
func (g *Gate) AddEvent(projectID string, event models.ProjectEvent) {
	g.projects.AddEvent(projectID, event)
}

// ClearEvents empties a project's audit log; requires CanClearHistory.
func (g *Gate) ClearEvents(projectID string) error {
	if !g.caps().CanClearHistory {
		return ErrNotAllowed
	}
	g.projects.ClearEvents(projectID)
	return nil
}

// DeletePerson removes a person; requires CanDelete.
func (g *Gate) DeletePerson(projectID, personID string) error {
	if !g.caps().CanDelete {
		return ErrNotAllowed
	}
	g.projects.DeletePerson(projectID, personID)
	return nil
}

// DeleteImage removes an image record; requires CanDelete.
func (g *Gate) DeleteImage(projectID, imageID string) error {
	if !g.caps().CanDelete {
		return ErrNotAllowed
	}
	g.projects.DeleteImage(projectID, imageID)
	return nil
}

// DeleteDataEntry removes a data entry; requires CanDelete.
func (g *Gate) DeleteDataEntry(projectID, entryID string) error {
	if !g.caps().CanDelete {
		return ErrNotAllowed
	}
	g.projects.DeleteDataEntry(projectID, entryID)
	return nil
}
