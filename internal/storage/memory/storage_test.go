package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/tourmate/tourmate/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestSaveAndGetAccount() {
	account := &model.Account{
		Username:     "alice",
		PasswordHash: "hash123",
		CumulativeXP: 80,
		Visits: []model.Visit{
			{
				PlaceName: "경복궁",
				Latitude:  37.5796,
				Longitude: 126.9770,
				Timestamp: time.Date(2025, 3, 1, 14, 30, 0, 0, time.UTC),
				Date:      "2025-03-01",
				XPGained:  80,
			},
		},
	}

	err := s.storage.SaveAccount(s.ctx, account)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetAccount(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("alice", retrieved.Username)
	s.Equal(80, retrieved.CumulativeXP)
	s.Len(retrieved.Visits, 1)
	s.Equal("경복궁", retrieved.Visits[0].PlaceName)
}

func (s *StorageSuite) TestGetAccountUnknownUser() {
	_, err := s.storage.GetAccount(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUnknownUser)
}

func (s *StorageSuite) TestSaveOverwritesExistingAccount() {
	_ = s.storage.SaveAccount(s.ctx, &model.Account{Username: "alice", CumulativeXP: 10})
	_ = s.storage.SaveAccount(s.ctx, &model.Account{Username: "alice", CumulativeXP: 90})

	retrieved, err := s.storage.GetAccount(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(90, retrieved.CumulativeXP)
}

func (s *StorageSuite) TestListAccountsSortedByUsername() {
	_ = s.storage.SaveAccount(s.ctx, &model.Account{Username: "carol"})
	_ = s.storage.SaveAccount(s.ctx, &model.Account{Username: "alice"})
	_ = s.storage.SaveAccount(s.ctx, &model.Account{Username: "bob"})

	accounts, err := s.storage.ListAccounts(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(accounts, 3)
	s.Equal("alice", accounts[0].Username)
	s.Equal("bob", accounts[1].Username)
	s.Equal("carol", accounts[2].Username)
}

func (s *StorageSuite) TestListAccountsEmpty() {
	accounts, err := s.storage.ListAccounts(s.ctx)
	s.Require().NoError(err)
	s.Empty(accounts)
}
