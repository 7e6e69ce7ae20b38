package gate

import (
	"errors"
	"testing"

	"github.com/consentmap/consentmap/internal/models"
	"github.com/consentmap/consentmap/internal/persistence"
	"github.com/consentmap/consentmap/internal/projects"
	"github.com/consentmap/consentmap/internal/session"
)

func fixture(t *testing.T) (*Gate, *session.Store, *projects.Store) {
	t.Helper()
	kv := persistence.NewMemory()
	sess := session.New(kv)
	store := projects.New(kv, nil)
	return New(sess, store), sess, store
}

func TestGateAsUser(t *testing.T) {
	g, sess, store := fixture(t)
	sess.Login("user@example.com", models.RoleUser, "")
	p := store.CreateProject(projects.Draft{Name: "P", Owner: "user@example.com"})
	store.AddPerson(p.ID, models.Person{Name: "Victim"})

	t.Run("add and upload pass through", func(t *testing.T) {
		if err := g.AddPerson(p.ID, models.Person{Name: "New"}); err != nil {
			t.Errorf("AddPerson: %v", err)
		}
		if err := g.AddImage(p.ID, models.ImageRecord{Name: "i.jpg"}); err != nil {
			t.Errorf("AddImage: %v", err)
		}
		if err := g.AddDataEntry(p.ID, models.DataEntry{Key: "k", Value: "v"}); err != nil {
			t.Errorf("AddDataEntry: %v", err)
		}
		if _, err := g.CreateProject(projects.Draft{Name: "Another"}); err != nil {
			t.Errorf("CreateProject: %v", err)
		}
	})

	t.Run("edit, delete and clear are refused", func(t *testing.T) {
		name := "Hacked"
		if err := g.UpdateProject(p.ID, projects.Update{Name: &name}); !errors.Is(err, ErrNotAllowed) {
			t.Errorf("UpdateProject err = %v, want ErrNotAllowed", err)
		}
		if err := g.DeleteProject(p.ID); !errors.Is(err, ErrNotAllowed) {
			t.Errorf("DeleteProject err = %v, want ErrNotAllowed", err)
		}
		if err := g.ClearEvents(p.ID); !errors.Is(err, ErrNotAllowed) {
			t.Errorf("ClearEvents err = %v, want ErrNotAllowed", err)
		}
		if err := g.DeletePerson(p.ID, "any"); !errors.Is(err, ErrNotAllowed) {
			t.Errorf("DeletePerson err = %v, want ErrNotAllowed", err)
		}

		got, _ := store.GetProject(p.ID)
		if got.Name != "P" {
			t.Error("refused edit still reached the store")
		}
	})
}

func TestGateAsAdmin(t *testing.T) {
	g, sess, store := fixture(t)
	sess.Login("admin@example.com", models.RoleUser, "") // demo mapping promotes to admin
	p := store.CreateProject(projects.Draft{Name: "P", Owner: "admin@example.com"})

	name := "Renamed"
	if err := g.UpdateProject(p.ID, projects.Update{Name: &name}); err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}
	if err := g.ClearEvents(p.ID); err != nil {
		t.Fatalf("ClearEvents: %v", err)
	}
	if err := g.DeleteProject(p.ID); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	if _, ok := g.GetProject(p.ID); ok {
		t.Error("project still present after gated delete")
	}
}

func TestGateFollowsSessionChanges(t *testing.T) {
	g, sess, store := fixture(t)
	p := store.CreateProject(projects.Draft{Name: "P", Owner: "admin@example.com"})

	// Unauthenticated: reads and adds work, deletes do not.
	if _, ok := g.GetProject(p.ID); !ok {
		t.Fatal("read failed while unauthenticated")
	}
	if err := g.DeleteProject(p.ID); !errors.Is(err, ErrNotAllowed) {
		t.Errorf("unauthenticated delete err = %v, want ErrNotAllowed", err)
	}

	sess.Login("admin@example.com", models.RoleAdmin, "")
	if err := g.DeleteProject(p.ID); err != nil {
		t.Errorf("admin delete failed: %v", err)
	}

	sess.Logout()
	if _, err := g.CreateProject(projects.Draft{Name: "Open"}); err != nil {
		t.Errorf("unauthenticated create failed: %v", err)
	}
}
