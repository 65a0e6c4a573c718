package client

import (
	"context"
	"errors"
	"net/http"
	"sync"
)

type State int

const (
	StateChecking State = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// MaxProjects is how many projects a user may hold. The API does not
// enforce it.
const MaxProjects = 4

var (
	ErrNotAuthenticated = errors.New("not logged in")
	ErrProjectLimit     = errors.New("project limit reached")
)

// Session tracks who is logged in on this client. It starts in
// StateChecking until Initialize asks the server.
type Session struct {
	api *APIClient

	mu       sync.RWMutex
	state    State
	username string
	userID   string
	token    string
}

func NewSession(api *APIClient) *Session {
	return &Session{
		api:   api,
		state: StateChecking,
	}
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// Initialize resolves the checking state from the server's view of the
// current token. A rejected token leaves the session unauthenticated
// without an error.
func (s *Session) Initialize(ctx context.Context) error {
	profile, err := s.api.GetProfile(ctx)
	if err != nil {
		s.set(StateUnauthenticated, "", "")
		if IsStatus(err, http.StatusUnauthorized) {
			return nil
		}
		return err
	}

	s.set(StateAuthenticated, profile.Username, profile.UserID)
	return nil
}

func (s *Session) Login(ctx context.Context, identifier, password string) error {
	resp, err := s.api.Login(ctx, identifier, password)
	if err != nil {
		s.set(StateUnauthenticated, "", "")
		return err
	}

	// The cookie jar drops Secure cookies on plain http, so the token
	// from the body is the one kept.
	s.api.SetToken(resp.Token)
	s.set(StateAuthenticated, resp.Username, resp.UserID)

	s.mu.Lock()
	s.token = resp.Token
	s.mu.Unlock()
	return nil
}

// Token returns the token issued by the last successful Login.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Signup registers an account after checking the form locally. It does
// not log the new user in.
func (s *Session) Signup(ctx context.Context, form SignupForm) (*SignupResponse, error) {
	err := form.Validate()
	if err != nil {
		return nil, err
	}

	return s.api.Signup(ctx, SignupRequest{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
		Country:  form.Country,
	})
}

// Logout clears the local session even when the request fails.
func (s *Session) Logout(ctx context.Context) error {
	err := s.api.Logout(ctx)
	s.set(StateUnauthenticated, "", "")
	return err
}

func (s *Session) ListProjects(ctx context.Context) ([]ProjectSummary, error) {
	userID, err := s.requireUser()
	if err != nil {
		return nil, err
	}
	return s.api.ListProjects(ctx, userID)
}

// CreateProject refuses once the user holds MaxProjects projects.
func (s *Session) CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	userID, err := s.requireUser()
	if err != nil {
		return nil, err
	}

	existing, err := s.api.ListProjects(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(existing) >= MaxProjects {
		return nil, ErrProjectLimit
	}

	req.UserID = userID
	return s.api.CreateProject(ctx, req)
}

func (s *Session) API() *APIClient {
	return s.api
}

func (s *Session) requireUser() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateAuthenticated {
		return "", ErrNotAuthenticated
	}
	return s.userID, nil
}

func (s *Session) set(state State, username, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.username = username
	s.userID = userID
	if state != StateAuthenticated {
		s.token = ""
	}
}
