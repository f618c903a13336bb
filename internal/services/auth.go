package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"art-marketplace-platform/internal/models"
	"art-marketplace-platform/internal/utils"
)

// Session lifetime. Sessions and users live in memory only; nothing survives
// a restart.
const sessionDuration = 24 * time.Hour

type session struct {
	userID    int
	expiresAt time.Time
}

// AuthService is the session/role gate. Login accepts any credentials as long
// as email, password, and role are present — there is no account database to
// check against. Passwords are still hashed before being retained so the
// plaintext never sits in process memory.
type AuthService struct {
	mu       sync.Mutex
	users    map[string]*models.User // keyed by email
	sessions map[string]*session
	nextID   int
}

// NewAuthService creates a new session service
func NewAuthService() *AuthService {
	return &AuthService{
		users:    make(map[string]*models.User),
		sessions: make(map[string]*session),
		nextID:   1,
	}
}

// Login validates the request fields, registers the user on first sight, and
// opens a new session. It never rejects credentials for an existing email.
func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := models.ValidateRole(req.Role); err != nil {
		return nil, err
	}

	if err := models.ValidateEmail(req.Email); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Password) == "" {
		return nil, models.NewValidationError("password", "please enter email and password")
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, ok := s.users[email]
	if !ok {
		user = &models.User{
			ID:           s.nextID,
			Email:        email,
			PasswordHash: passwordHash,
			CreatedAt:    time.Now(),
		}
		s.nextID++
		s.users[email] = user
	}

	// The role is whatever the caller picked at the login screen; a returning
	// email may switch between buyer and seller views.
	user.Role = req.Role

	sessionID, err := generateSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session id: %w", err)
	}

	expiresAt := time.Now().Add(sessionDuration)
	s.sessions[sessionID] = &session{userID: user.ID, expiresAt: expiresAt}

	return &AuthResponse{
		User:      user,
		SessionID: sessionID,
		ExpiresAt: expiresAt,
	}, nil
}

// ValidateSession resolves a session id to its user
func (s *AuthService) ValidateSession(sessionID string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, models.ErrSessionNotFound
	}

	if time.Now().After(sess.expiresAt) {
		delete(s.sessions, sessionID)
		return nil, models.ErrSessionNotFound
	}

	for _, user := range s.users {
		if user.ID == sess.userID {
			return user, nil
		}
	}

	return nil, models.ErrUserNotFound
}

// Logout destroys the session. Unknown session ids are not an error.
func (s *AuthService) Logout(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// generateSessionID generates a cryptographically random session identifier
func generateSessionID() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
