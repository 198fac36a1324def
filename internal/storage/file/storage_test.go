package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/tourmate/tourmate/internal/model"
	"github.com/tourmate/tourmate/internal/testutil"
)

type StorageSuite struct {
	suite.Suite
	dir  string
	path string
	ctx  context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.path = filepath.Join(s.dir, "session_data.json")
	s.ctx = context.Background()
}

func (s *StorageSuite) newStorage() *Storage {
	logger := testutil.NopLogger()
	st, err := New(Config{Path: s.path}, logger)
	s.Require().NoError(err)
	return st
}

func (s *StorageSuite) sampleAccount() *model.Account {
	rating := 4
	return &model.Account{
		Username:     "alice",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		CumulativeXP: 145,
		Visits: []model.Visit{
			{
				PlaceName: "경복궁",
				Latitude:  37.5796,
				Longitude: 126.9770,
				Timestamp: time.Date(2025, 3, 1, 14, 30, 0, 0, time.Local),
				Date:      "2025-03-01",
				XPGained:  80,
				Rating:    &rating,
			},
			{
				PlaceName: "남산서울타워",
				Latitude:  37.5512,
				Longitude: 126.9882,
				Timestamp: time.Date(2025, 3, 2, 10, 0, 0, 0, time.Local),
				Date:      "2025-03-02",
				XPGained:  65,
			},
		},
	}
}

func (s *StorageSuite) TestStartsEmptyWithoutDocument() {
	st := s.newStorage()

	accounts, err := st.ListAccounts(s.ctx)
	s.Require().NoError(err)
	s.Empty(accounts)
}

func (s *StorageSuite) TestStartsEmptyWithMalformedDocument() {
	s.Require().NoError(os.WriteFile(s.path, []byte("{not json"), 0o644))

	st := s.newStorage()

	accounts, err := st.ListAccounts(s.ctx)
	s.Require().NoError(err)
	s.Empty(accounts)
}

func (s *StorageSuite) TestSavePersistsAcrossRestart() {
	st := s.newStorage()
	s.Require().NoError(st.SaveAccount(s.ctx, s.sampleAccount()))

	// Simulate a process restart
	reloaded := s.newStorage()

	account, err := reloaded.GetAccount(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(145, account.CumulativeXP)
	s.Require().Len(account.Visits, 2)
	s.Equal("경복궁", account.Visits[0].PlaceName)
	s.Equal("2025-03-01", account.Visits[0].Date)
	s.Require().NotNil(account.Visits[0].Rating)
	s.Equal(4, *account.Visits[0].Rating)
	s.Equal(s.sampleAccount().Visits[0].Timestamp, account.Visits[0].Timestamp)
}

func (s *StorageSuite) TestDocumentUsesLegacyShape() {
	st := s.newStorage()
	s.Require().NoError(st.SaveAccount(s.ctx, s.sampleAccount()))

	data, err := os.ReadFile(s.path)
	s.Require().NoError(err)

	var doc map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(data, &doc))
	s.Contains(doc, "users")
	s.Contains(doc, "user_visits")
	s.Contains(doc, "user_xp")

	var users map[string]string
	s.Require().NoError(json.Unmarshal(doc["users"], &users))
	s.Equal("$2a$10$abcdefghijklmnopqrstuv", users["alice"])

	var xp map[string]int
	s.Require().NoError(json.Unmarshal(doc["user_xp"], &xp))
	s.Equal(145, xp["alice"])

	var visits map[string][]map[string]any
	s.Require().NoError(json.Unmarshal(doc["user_visits"], &visits))
	s.Require().Len(visits["alice"], 2)
	s.Equal("경복궁", visits["alice"][0]["place_name"])
	s.Equal("2025-03-01 14:30:00", visits["alice"][0]["timestamp"])
	s.Equal(float64(80), visits["alice"][0]["xp_gained"])
	s.Nil(visits["alice"][1]["rating"])
}

func (s *StorageSuite) TestSaveLoadRoundTripIsStable() {
	st := s.newStorage()
	s.Require().NoError(st.SaveAccount(s.ctx, s.sampleAccount()))
	s.Require().NoError(st.SaveAccount(s.ctx, &model.Account{Username: "bob", PasswordHash: "h"}))

	first, err := os.ReadFile(s.path)
	s.Require().NoError(err)

	// Reload and rewrite without any mutation in between
	reloaded := s.newStorage()
	account, err := reloaded.GetAccount(s.ctx, "bob")
	s.Require().NoError(err)
	s.Require().NoError(reloaded.SaveAccount(s.ctx, account))

	second, err := os.ReadFile(s.path)
	s.Require().NoError(err)
	s.JSONEq(string(first), string(second))
}

func (s *StorageSuite) TestGetAccountUnknownUser() {
	st := s.newStorage()
	_, err := st.GetAccount(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUnknownUser)
}

func (s *StorageSuite) TestNoTempFilesLeftBehind() {
	st := s.newStorage()
	s.Require().NoError(st.SaveAccount(s.ctx, s.sampleAccount()))

	entries, err := os.ReadDir(s.dir)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal("session_data.json", entries[0].Name())
}
