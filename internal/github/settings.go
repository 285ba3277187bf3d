package github

import (
	"errors"
	"net/http"
	"strings"
)

var ErrSettingsIncomplete = errors.New("github settings incomplete")

const defaultBranch = "main"

// Settings locate the repository holding the site and authorize writes to it.
type Settings struct {
	Owner  string
	Repo   string
	Branch string
	Token  string
}

// DefaultSettings prefill the admin form before anything was saved.
func DefaultSettings() Settings {
	return Settings{
		Owner:  "mevlut-celik",
		Repo:   "3dprint-site",
		Branch: defaultBranch,
	}
}

// Normalize trims every field and defaults the branch.
func (s Settings) Normalize() Settings {
	s.Owner = strings.TrimSpace(s.Owner)
	s.Repo = strings.TrimSpace(s.Repo)
	s.Branch = strings.TrimSpace(s.Branch)
	s.Token = strings.TrimSpace(s.Token)
	if s.Branch == "" {
		s.Branch = defaultBranch
	}
	return s
}

// Validate requires owner, repo and token.
func (s Settings) Validate() error {
	var missing []string
	if strings.TrimSpace(s.Owner) == "" {
		missing = append(missing, "owner")
	}
	if strings.TrimSpace(s.Repo) == "" {
		missing = append(missing, "repo")
	}
	if strings.TrimSpace(s.Token) == "" {
		missing = append(missing, "token")
	}
	if len(missing) > 0 {
		return &incompleteError{missing: missing}
	}
	return nil
}

// HasToken reports whether a token is stored, without exposing it.
func (s Settings) HasToken() bool {
	return s.Token != ""
}

type incompleteError struct {
	missing []string
}

func (e *incompleteError) Error() string {
	return ErrSettingsIncomplete.Error() + ": missing " + strings.Join(e.missing, ", ")
}

func (e *incompleteError) Unwrap() error {
	return ErrSettingsIncomplete
}

// CredentialStore holds the admin's settings between requests.
type CredentialStore interface {
	GetCredentials(r *http.Request) (Settings, bool)
	SetCredentials(w http.ResponseWriter, r *http.Request, s Settings) error
	ClearCredentials(w http.ResponseWriter, r *http.Request) error
}
