package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/LeHPhuc/SecondHandMarketApp/models"
)

// Session is the single authority for who is signed in. It starts anonymous
// and moves between states only through Login and Logout; everything else
// reads through accessors.
type Session struct {
	mu      sync.RWMutex
	user    *models.User
	idToken string

	path string
	log  *zap.Logger
}

// cookie is the on-disk shape, the stand-in for the browser cookies the
// web storefront kept the signed-in user in.
type cookie struct {
	User    *models.User `json:"user"`
	IDToken string       `json:"id_token"`
}

// New returns an anonymous session persisted at path. Pass an empty path
// for a memory-only session (tests).
func New(path string, log *zap.Logger) *Session {
	return &Session{path: path, log: log}
}

// Load restores a previously persisted session. A missing file keeps the
// session anonymous; a corrupt one is discarded.
func (s *Session) Load() error {
	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	var c cookie
	if err := json.Unmarshal(data, &c); err != nil || c.User == nil || c.IDToken == "" {
		s.log.Warn("discarding unreadable session file", zap.String("path", s.path))
		_ = os.Remove(s.path)
		return nil
	}

	s.mu.Lock()
	s.user, s.idToken = c.User, c.IDToken
	s.mu.Unlock()
	return nil
}

// Login stores the signed-in user and credential, replacing any previous
// identity, and persists them.
func (s *Session) Login(user models.User, idToken string) error {
	s.mu.Lock()
	u := user
	s.user, s.idToken = &u, idToken
	s.mu.Unlock()
	return s.persist(&cookie{User: &u, IDToken: idToken})
}

// Logout returns the session to anonymous and removes the persisted copy.
func (s *Session) Logout() error {
	s.mu.Lock()
	s.user, s.idToken = nil, ""
	s.mu.Unlock()
	if s.path == "" {
		return nil
	}
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (s *Session) persist(c *cookie) error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Current returns a copy of the signed-in user, nil when anonymous.
func (s *Session) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token implements api.TokenSource.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idToken
}

func (s *Session) Authenticated() bool {
	return s.Current() != nil
}

// Update replaces the stored user record after a profile change while
// keeping the credential.
func (s *Session) Update(user models.User) error {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return errors.New("session: not signed in")
	}
	u := user
	s.user = &u
	token := s.idToken
	s.mu.Unlock()
	return s.persist(&cookie{User: &u, IDToken: token})
}

// Expired inspects the stored ID token's exp claim without verifying the
// signature. Verification belongs to the backend; this only spares the user
// a request that is known to bounce with a 401.
func (s *Session) Expired(now time.Time) bool {
	token := s.Token()
	if token == "" {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.Before(now)
}
