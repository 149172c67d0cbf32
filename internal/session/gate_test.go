package session

import (
	"strings"
	"testing"

	"github.com/interiorpro/adminconsole/config"
	"github.com/interiorpro/adminconsole/internal/domain"
)

// memStore is an in-memory Store for gate tests.
type memStore struct {
	token   string
	profile domain.Profile
	saved   bool
}

func (m *memStore) Save(token string, profile domain.Profile) error {
	m.token, m.profile, m.saved = token, profile, true
	return nil
}

func (m *memStore) Load() (string, domain.Profile, bool, error) {
	return m.token, m.profile, m.saved, nil
}

func (m *memStore) Clear() error {
	m.token, m.profile, m.saved = "", domain.Profile{}, false
	return nil
}

func testGateConfig() config.SessionConfig {
	return config.SessionConfig{
		Username: "admin",
		Password: "admin@123",
		Secret:   "test-secret",
	}
}

func TestLoginPersistsSessionAndProfile(t *testing.T) {
	store := &memStore{}
	gate, err := NewGate(testGateConfig(), store)
	if err != nil {
		t.Fatal(err)
	}

	sess, err := gate.Login("admin", "admin@123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.Token == "" {
		t.Error("session token empty")
	}
	if sess.Profile.Name != "Admin" ||
		sess.Profile.Email != "admin@interiordesign.com" ||
		sess.Profile.Role != "administrator" {
		t.Errorf("profile: %+v", sess.Profile)
	}
	if !store.saved || store.token != sess.Token {
		t.Error("session not persisted")
	}
}

func TestWrongCredentialsPersistNothing(t *testing.T) {
	store := &memStore{}
	gate, err := NewGate(testGateConfig(), store)
	if err != nil {
		t.Fatal(err)
	}

	for _, tc := range []struct{ username, password string }{
		{"admin", "wrong"},
		{"root", "admin@123"},
		{"", ""},
	} {
		_, err := gate.Login(tc.username, tc.password)
		if !domain.IsKind(err, domain.KindInvalidCredentials) {
			t.Errorf("%s/%s: got %v, want InvalidCredentials", tc.username, tc.password, err)
		}
		if err != nil && err.Error() != "Invalid username or password" {
			t.Errorf("message: got %q", err.Error())
		}
	}
	if store.saved {
		t.Error("failed login must not persist a session")
	}
}

func TestResumeRestoresPersistedSession(t *testing.T) {
	store := &memStore{}
	gate, err := NewGate(testGateConfig(), store)
	if err != nil {
		t.Fatal(err)
	}
	sess, err := gate.Login("admin", "admin@123")
	if err != nil {
		t.Fatal(err)
	}

	resumed, ok := gate.Resume()
	if !ok {
		t.Fatal("persisted session did not resume")
	}
	if resumed.Token != sess.Token || resumed.Profile != sess.Profile {
		t.Errorf("resumed session differs: %+v", resumed)
	}
}

func TestResumeRejectsTamperedToken(t *testing.T) {
	store := &memStore{}
	gate, err := NewGate(testGateConfig(), store)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := gate.Login("admin", "admin@123"); err != nil {
		t.Fatal(err)
	}

	// Flip the signature portion of the stored token.
	parts := strings.Split(store.token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", store.token)
	}
	store.token = parts[0] + "." + parts[1] + ".tampered"

	if _, ok := gate.Resume(); ok {
		t.Fatal("tampered token should not resume")
	}
	if store.saved {
		t.Error("tampered session should be cleared")
	}
}

func TestResumeWithDifferentSecretFails(t *testing.T) {
	store := &memStore{}
	gate, err := NewGate(testGateConfig(), store)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := gate.Login("admin", "admin@123"); err != nil {
		t.Fatal(err)
	}

	cfg := testGateConfig()
	cfg.Secret = "rotated-secret"
	other, err := NewGate(cfg, store)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := other.Resume(); ok {
		t.Error("token signed with the old secret should not resume")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	store := &memStore{}
	gate, err := NewGate(testGateConfig(), store)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := gate.Login("admin", "admin@123"); err != nil {
		t.Fatal(err)
	}

	gate.Logout()
	if store.saved {
		t.Error("logout left session state behind")
	}
	if _, ok := gate.Resume(); ok {
		t.Error("session resumed after logout")
	}
}
