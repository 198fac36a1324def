// Package file implements storage backed by a single JSON session
// document on disk. The whole document is rewritten after every mutation,
// so write volume scales with visit count; acceptable at this system's
// scale.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/tourmate/tourmate/internal/model"
	"github.com/tourmate/tourmate/internal/storage"
)

// Config holds file storage settings
type Config struct {
	// Path is the location of the JSON session document
	Path string
}

// DefaultConfig returns default file storage configuration
func DefaultConfig() Config {
	return Config{
		Path: "data/session_data.json",
	}
}

// Storage keeps all accounts in memory and mirrors every mutation to the
// session document
type Storage struct {
	cfg    Config
	logger *slog.Logger

	mu       sync.RWMutex
	accounts map[string]*model.Account
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// New creates a file storage instance, loading the session document if it
// exists. A missing or malformed document yields an empty state so the
// system can always start cold.
func New(cfg Config, logger *slog.Logger) (*Storage, error) {
	s := &Storage{
		cfg:      cfg,
		logger:   logger,
		accounts: make(map[string]*model.Account),
	}

	if err := s.load(); err != nil {
		logger.Warn("could not load session document, starting empty",
			slog.String("path", cfg.Path),
			slog.String("error", err.Error()))
		s.accounts = make(map[string]*model.Account)
	}

	return s, nil
}

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.Username] = account
	if err := s.persist(); err != nil {
		return fmt.Errorf("persisting session document: %w", err)
	}
	return nil
}

func (s *Storage) GetAccount(ctx context.Context, username string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[username]
	if !ok {
		return nil, model.ErrUnknownUser
	}
	return account, nil
}

func (s *Storage) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	accounts := make([]*model.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Username < accounts[j].Username
	})
	return accounts, nil
}

// load reads the session document from disk
func (s *Storage) load() error {
	data, err := os.ReadFile(s.cfg.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	accounts, err := decodeDocument(doc)
	if err != nil {
		return err
	}

	s.accounts = accounts
	return nil
}

// persist writes the session document to a temp file and renames it into
// place, so a crash mid-write never leaves a half-written document
// visible to the next load. Caller must hold the lock.
func (s *Storage) persist() error {
	doc := encodeDocument(s.accounts)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.cfg.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".session_data-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, s.cfg.Path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
