// Package session holds the current signed-in identity and keeps it in sync
// with durable storage.
package session

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/consentmap/consentmap/internal/metrics"
	"github.com/consentmap/consentmap/internal/models"
	"github.com/consentmap/consentmap/internal/persistence"
)

// demoAccounts maps pre-registered demo emails to their fixed identities.
// A demo identity's name and role always win over caller-supplied values.
var demoAccounts = map[string]models.User{
	"admin@example.com": {Name: "Admin User", Role: models.RoleAdmin},
	"user@example.com":  {Name: "Demo User", Role: models.RoleUser},
}

// Store owns the current identity. It is not safe for concurrent use; like
// the project store it is owned by a single caller at a time.
type Store struct {
	kv   persistence.KV
	user *models.User
}

// New creates a session store and attempts to restore a previously
// persisted identity. If nothing was stored, or the stored value cannot be
// read or parsed, the store starts unauthenticated.
func New(kv persistence.KV) *Store {
	s := &Store{kv: kv}

	data, ok, err := kv.Read(persistence.SessionKey)
	if err != nil {
		slog.Warn("Failed to restore session, starting unauthenticated", "error", err)
		return s
	}
	if !ok {
		return s
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		slog.Warn("Failed to parse stored session, starting unauthenticated", "error", err)
		return s
	}

	s.user = &user
	slog.Info("Session restored", "email", user.Email, "role", user.Role)
	return s
}

// Current returns a copy of the signed-in identity, or nil when
// unauthenticated. Callers must treat nil as the default state.
func (s *Store) Current() *models.User {
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// Login signs in as the given email, replacing any prior identity. It never
// fails: there is no credential check by design.
//
// The email is normalized to lowercase. If it matches a demo account, that
// account's fixed name and role override the caller-supplied values;
// otherwise requestedRole is used and the display name falls back to the
// local part of the email when displayName is blank.
func (s *Store) Login(email string, requestedRole models.Role, displayName string) models.User {
	email = strings.ToLower(strings.TrimSpace(email))

	user := models.User{Email: email, Name: displayName, Role: requestedRole}
	if demo, ok := demoAccounts[email]; ok {
		user.Name = demo.Name
		user.Role = demo.Role
	} else if user.Name == "" {
		user.Name = localPart(email)
	}

	s.user = &user
	s.sync()
	metrics.SessionChanges.WithLabelValues("login").Inc()
	slog.Info("Logged in", "email", user.Email, "role", user.Role)
	return user
}

// Logout clears the current identity and removes it from durable storage.
func (s *Store) Logout() {
	s.user = nil
	if err := s.kv.Delete(persistence.SessionKey); err != nil {
		slog.Error("Failed to clear persisted session", "error", err)
		metrics.SyncFailures.Inc()
	}
	metrics.SessionChanges.WithLabelValues("logout").Inc()
	slog.Info("Logged out")
}

// sync writes the current identity to durable storage. Failures are logged
// and counted but never surfaced: the in-memory identity stands regardless.
func (s *Store) sync() {
	data, err := json.Marshal(s.user)
	if err != nil {
		slog.Error("Failed to encode session", "error", err)
		metrics.SyncFailures.Inc()
		return
	}
	if err := s.kv.Write(persistence.SessionKey, data); err != nil {
		slog.Error("Failed to persist session", "error", err)
		metrics.SyncFailures.Inc()
	}
}

func localPart(email string) string {
	if i := strings.IndexByte(email, '@'); i >= 0 {
		return email[:i]
	}
	return email
}
