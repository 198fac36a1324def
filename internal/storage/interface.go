package storage

import (
	"context"

	"github.com/tourmate/tourmate/internal/model"
)

// Storage defines the interface for account and visit-ledger persistence.
// Visits are embedded in their account, so every mutation saves the full
// account record.
type Storage interface {
	// SaveAccount persists an account and its visit ledger
	SaveAccount(ctx context.Context, account *model.Account) error
	// GetAccount returns the account for a username, or model.ErrUnknownUser
	GetAccount(ctx context.Context, username string) (*model.Account, error)
	// ListAccounts returns all accounts
	ListAccounts(ctx context.Context) ([]*model.Account, error)
}
