package session

import (
	"testing"

	"github.com/consentmap/consentmap/internal/models"
	"github.com/consentmap/consentmap/internal/persistence"
)

func TestLogin(t *testing.T) {
	t.Run("demo account overrides requested role and name", func(t *testing.T) {
		s := New(persistence.NewMemory())

		user := s.Login("admin@example.com", models.RoleUser, "Somebody Else")
		if user.Role != models.RoleAdmin {
			t.Errorf("role = %s, want admin", user.Role)
		}
		if user.Name != "Admin User" {
			t.Errorf("name = %q, want %q", user.Name, "Admin User")
		}
	})

	t.Run("email normalized to lowercase", func(t *testing.T) {
		s := New(persistence.NewMemory())

		user := s.Login("User@Example.COM", models.RoleAdmin, "")
		if user.Email != "user@example.com" {
			t.Errorf("email = %q, want user@example.com", user.Email)
		}
		// user@example.com is a demo account, its fixed role wins
		if user.Role != models.RoleUser {
			t.Errorf("role = %s, want user", user.Role)
		}
	})

	t.Run("unknown email keeps requested role and falls back to local part", func(t *testing.T) {
		s := New(persistence.NewMemory())

		user := s.Login("carol@company.org", models.RoleUser, "")
		if user.Role != models.RoleUser {
			t.Errorf("role = %s, want user", user.Role)
		}
		if user.Name != "carol" {
			t.Errorf("name = %q, want carol", user.Name)
		}
	})

	t.Run("caller-supplied name used for unknown email", func(t *testing.T) {
		s := New(persistence.NewMemory())

		user := s.Login("carol@company.org", models.RoleUser, "Carol Jones")
		if user.Name != "Carol Jones" {
			t.Errorf("name = %q, want Carol Jones", user.Name)
		}
	})

	t.Run("relogin replaces identity wholesale", func(t *testing.T) {
		s := New(persistence.NewMemory())

		s.Login("carol@company.org", models.RoleUser, "Carol")
		s.Login("dave@company.org", models.RoleAdmin, "Dave")

		current := s.Current()
		if current == nil {
			t.Fatal("expected a current identity")
		}
		if current.Email != "dave@company.org" || current.Role != models.RoleAdmin {
			t.Errorf("current = %+v, want dave@company.org/admin", current)
		}
	})
}

func TestLogout(t *testing.T) {
	kv := persistence.NewMemory()
	s := New(kv)

	s.Login("carol@company.org", models.RoleUser, "")
	s.Logout()

	if s.Current() != nil {
		t.Error("expected unauthenticated state after logout")
	}
	if _, ok, _ := kv.Read(persistence.SessionKey); ok {
		t.Error("expected persisted session to be removed")
	}
}

func TestRestore(t *testing.T) {
	t.Run("restores persisted identity", func(t *testing.T) {
		kv := persistence.NewMemory()
		New(kv).Login("carol@company.org", models.RoleUser, "Carol")

		restored := New(kv).Current()
		if restored == nil {
			t.Fatal("expected identity after restore")
		}
		if restored.Email != "carol@company.org" || restored.Name != "Carol" {
			t.Errorf("restored = %+v", restored)
		}
	})

	t.Run("no prior identity starts unauthenticated", func(t *testing.T) {
		if New(persistence.NewMemory()).Current() != nil {
			t.Error("expected unauthenticated state")
		}
	})

	t.Run("corrupt stored value starts unauthenticated", func(t *testing.T) {
		kv := persistence.NewMemory()
		if err := kv.Write(persistence.SessionKey, []byte("not json")); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		if New(kv).Current() != nil {
			t.Error("expected unauthenticated state on parse failure")
		}
	})
}

func TestCurrentReturnsCopy(t *testing.T) {
	s := New(persistence.NewMemory())
	s.Login("carol@company.org", models.RoleUser, "Carol")

	first := s.Current()
	first.Role = models.RoleAdmin

	if s.Current().Role != models.RoleUser {
		t.Error("mutating the returned identity leaked into the store")
	}
}
