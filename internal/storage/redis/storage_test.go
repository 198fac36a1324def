package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/tourmate/tourmate/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestSaveAndGetAccount() {
	rating := 5
	account := &model.Account{
		Username:     "alice",
		PasswordHash: "hash123",
		CumulativeXP: 145,
		Visits: []model.Visit{
			{
				PlaceName: "경복궁",
				Latitude:  37.5796,
				Longitude: 126.9770,
				Timestamp: time.Date(2025, 3, 1, 14, 30, 0, 0, time.UTC),
				Date:      "2025-03-01",
				XPGained:  80,
				Rating:    &rating,
			},
			{
				PlaceName: "남산서울타워",
				Latitude:  37.5512,
				Longitude: 126.9882,
				Timestamp: time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC),
				Date:      "2025-03-02",
				XPGained:  65,
			},
		},
	}

	err := s.storage.SaveAccount(s.ctx, account)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetAccount(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("alice", retrieved.Username)
	s.Equal(145, retrieved.CumulativeXP)
	s.Require().Len(retrieved.Visits, 2)
	s.Equal("경복궁", retrieved.Visits[0].PlaceName)
	s.Require().NotNil(retrieved.Visits[0].Rating)
	s.Equal(5, *retrieved.Visits[0].Rating)
	s.Nil(retrieved.Visits[1].Rating)
}

func (s *StorageSuite) TestGetAccountUnknownUser() {
	_, err := s.storage.GetAccount(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUnknownUser)
}

func (s *StorageSuite) TestListAccountsSortedByUsername() {
	_ = s.storage.SaveAccount(s.ctx, &model.Account{Username: "bob"})
	_ = s.storage.SaveAccount(s.ctx, &model.Account{Username: "alice"})

	accounts, err := s.storage.ListAccounts(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(accounts, 2)
	s.Equal("alice", accounts[0].Username)
	s.Equal("bob", accounts[1].Username)
}

func (s *StorageSuite) TestSaveOverwritesExistingAccount() {
	_ = s.storage.SaveAccount(s.ctx, &model.Account{Username: "alice", CumulativeXP: 10})
	_ = s.storage.SaveAccount(s.ctx, &model.Account{Username: "alice", CumulativeXP: 35})

	retrieved, err := s.storage.GetAccount(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(35, retrieved.CumulativeXP)

	// The index must not duplicate the username
	accounts, err := s.storage.ListAccounts(s.ctx)
	s.Require().NoError(err)
	s.Len(accounts, 1)
}
