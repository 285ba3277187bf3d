package session

import (
	"crypto/sha256"
	"encoding/gob"
	"fmt"
	"net/http"

	"github.com/Oklavaci/3dwebmarket/internal/github"
	"github.com/gorilla/sessions"
)

const (
	adminSessionName = "3dprint_admin"
	prefsSessionName = "3dprint_prefs"

	githubSettingsKey = "github_settings"
	themeKey          = "theme"

	prefsMaxAge = 86400 * 365
)

// Manager keeps per-browser state in cookies. Admin settings live in a
// browser-session cookie; preferences persist for a year.
type Manager struct {
	store *sessions.CookieStore
}

// NewManager creates a manager whose cookies are signed and encrypted with
// keys derived from secret.
func NewManager(secret string, secure bool) *Manager {
	gob.Register(&github.Settings{})

	hashKey := sha256.Sum256([]byte("hash:" + secret))
	blockKey := sha256.Sum256([]byte("block:" + secret))
	store := sessions.NewCookieStore(hashKey[:], blockKey[:])

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		store: store,
	}
}

func (m *Manager) get(r *http.Request, name string) *sessions.Session {
	s, err := m.store.Get(r, name)
	if err != nil {
		// A cookie from an older secret fails to decode; start over with a
		// fresh session instead of failing the request.
		s, _ = m.store.New(r, name)
	}
	return s
}

// GetCredentials returns the GitHub settings saved in this browser session.
func (m *Manager) GetCredentials(r *http.Request) (github.Settings, bool) {
	s := m.get(r, adminSessionName)
	settings, ok := s.Values[githubSettingsKey].(*github.Settings)
	if !ok || settings == nil {
		return github.Settings{}, false
	}
	return *settings, true
}

// SetCredentials saves GitHub settings for the rest of the browser session.
func (m *Manager) SetCredentials(w http.ResponseWriter, r *http.Request, settings github.Settings) error {
	s := m.get(r, adminSessionName)
	s.Values[githubSettingsKey] = &settings

	if err := s.Save(r, w); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// ClearCredentials drops the saved GitHub settings.
func (m *Manager) ClearCredentials(w http.ResponseWriter, r *http.Request) error {
	s := m.get(r, adminSessionName)
	s.Options.MaxAge = -1
	delete(s.Values, githubSettingsKey)

	if err := s.Save(r, w); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

// Theme returns the stored theme, dark when nothing valid is stored.
func (m *Manager) Theme(r *http.Request) Theme {
	s := m.get(r, prefsSessionName)
	raw, _ := s.Values[themeKey].(string)
	return ParseTheme(raw)
}

// SetTheme persists t for a year.
func (m *Manager) SetTheme(w http.ResponseWriter, r *http.Request, t Theme) error {
	s := m.get(r, prefsSessionName)
	s.Options.MaxAge = prefsMaxAge
	s.Values[themeKey] = string(t)

	if err := s.Save(r, w); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

var _ github.CredentialStore = (*Manager)(nil)
