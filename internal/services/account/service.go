package account

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tourmate/tourmate/internal/dependencies/clock"
	"github.com/tourmate/tourmate/internal/model"
	"github.com/tourmate/tourmate/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
)

// Session represents an authenticated session
type Session struct {
	Token     string
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Service handles account registration, authentication and sessions
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	// storeMu serializes check-then-save sequences against the persisted
	// account document. Shared with the ledger service.
	storeMu *sync.Mutex

	mu       sync.RWMutex
	sessions map[string]*Session

	sessionDuration time.Duration
}

// Config holds configuration for the account service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default account service configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// New creates a new account Service. storeMu must be the same mutex the
// ledger service writes under.
func New(storage storage.Storage, clock clock.Clock, cfg Config, storeMu *sync.Mutex, logger *slog.Logger) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		storage:         storage,
		clock:           clock,
		logger:          logger,
		storeMu:         storeMu,
		sessions:        make(map[string]*Session),
		sessionDuration: cfg.SessionDuration,
	}
}

// Register creates a new account with zero XP and an empty visit ledger,
// and opens a session for it. Username comparison is case-sensitive
// exact match.
func (s *Service) Register(ctx context.Context, username, password string) (*Session, error) {
	// Hash before taking the lock; bcrypt is the expensive part
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s.storeMu.Lock()
	defer s.storeMu.Unlock()

	_, err = s.storage.GetAccount(ctx, username)
	if err == nil {
		return nil, model.ErrUsernameExists
	}
	if !errors.Is(err, model.ErrUnknownUser) {
		return nil, err
	}

	acct := &model.Account{
		Username:     username,
		PasswordHash: string(hash),
		CumulativeXP: 0,
		Visits:       []model.Visit{},
	}

	if err := s.storage.SaveAccount(ctx, acct); err != nil {
		return nil, fmt.Errorf("saving new account: %w", err)
	}

	s.logger.Info("account registered", slog.String("username", username))
	return s.createSession(username), nil
}

// Login authenticates an account and creates a session
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	acct, err := s.storage.GetAccount(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUnknownUser) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.createSession(username), nil
}

// Authenticate reports whether the username exists and the password
// matches its stored credential
func (s *Service) Authenticate(ctx context.Context, username, password string) bool {
	acct, err := s.storage.GetAccount(ctx, username)
	if err != nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) == nil
}

// Seed ensures an account with the given credentials exists. Used for
// the administrative account at first initialization; an existing
// account is left untouched.
func (s *Service) Seed(ctx context.Context, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	s.storeMu.Lock()
	defer s.storeMu.Unlock()

	_, err = s.storage.GetAccount(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, model.ErrUnknownUser) {
		return err
	}

	acct := &model.Account{
		Username:     username,
		PasswordHash: string(hash),
		Visits:       []model.Visit{},
	}
	if err := s.storage.SaveAccount(ctx, acct); err != nil {
		return fmt.Errorf("seeding account: %w", err)
	}

	s.logger.Info("seed account created", slog.String("username", username))
	return nil
}

// ValidateSession checks if a session token is valid and returns the session
func (s *Service) ValidateSession(token string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidSession
	}

	if s.clock.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, ErrInvalidSession
	}

	return session, nil
}

// InvalidateSession removes a session
func (s *Service) InvalidateSession(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// GetAccount returns the account for a username
func (s *Service) GetAccount(ctx context.Context, username string) (*model.Account, error) {
	return s.storage.GetAccount(ctx, username)
}

// createSession creates a new session for a username
func (s *Service) createSession(username string) *Session {
	token := generateToken()
	now := s.clock.Now()

	session := &Session{
		Token:     token,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	s.mu.Lock()
	s.sessions[token] = session
	s.mu.Unlock()

	return session
}

// generateToken generates a random session token
func generateToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return "sess_" + base64.RawURLEncoding.EncodeToString(b)
}

// CleanExpiredSessions removes expired sessions (call periodically)
func (s *Service) CleanExpiredSessions() {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}
