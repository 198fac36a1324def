package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/tourmate/tourmate/internal/model"
)

// IntegrationTestSuite exercises the full visit flow end to end:
// registration, visit recording with same-day dedup, XP crediting,
// level progression and history queries, over a shared storage backend.
type IntegrationTestSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func (s *IntegrationTestSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *IntegrationTestSuite) register(username string) {
	_, err := s.app.AccountService.Register(s.ctx, username, "password123")
	s.Require().NoError(err)
}

func (s *IntegrationTestSuite) TestFullVisitFlow() {
	s.register("traveler")

	// First visit credits the place's XP
	res, err := s.app.LedgerService.RecordVisit(s.ctx, "traveler", "경복궁", 37.5796, 126.9770)
	s.Require().NoError(err)
	s.True(res.Accepted)
	s.Equal(80, res.XPGained)

	// Same place, same day: no-op
	res, err = s.app.LedgerService.RecordVisit(s.ctx, "traveler", "경복궁", 37.5796, 126.9770)
	s.Require().NoError(err)
	s.False(res.Accepted)
	s.Equal(0, res.XPGained)

	// A different place the same day is credited
	res, err = s.app.LedgerService.RecordVisit(s.ctx, "traveler", "남산서울타워", 37.5512, 126.9882)
	s.Require().NoError(err)
	s.True(res.Accepted)
	s.Equal(65, res.XPGained)

	// The next day the first place is creditable again
	s.app.Clock.Advance(24 * time.Hour)
	res, err = s.app.LedgerService.RecordVisit(s.ctx, "traveler", "경복궁", 37.5796, 126.9770)
	s.Require().NoError(err)
	s.True(res.Accepted)
	s.Equal(80, res.XPGained)

	stats, err := s.app.LedgerService.GetStats(s.ctx, "traveler")
	s.Require().NoError(err)
	s.Equal(3, stats.TotalVisits)
	s.Equal(2, stats.UniquePlaces)
	s.Equal(225, stats.TotalXP)

	xp, err := s.app.LedgerService.CumulativeXP(s.ctx, "traveler")
	s.Require().NoError(err)
	s.Equal(225, xp)

	// 225 XP at 200 XP per level puts the user at level 2
	summary := s.app.LevelingService.Summarize(xp)
	s.Equal(2, summary.Level)
	s.Equal(12, summary.ProgressPercent)
	s.Equal(175, summary.XPToNextLevel)
}

func (s *IntegrationTestSuite) TestVisitRejectedForUnknownUser() {
	_, err := s.app.LedgerService.RecordVisit(s.ctx, "ghost", "경복궁", 37.5796, 126.9770)
	s.ErrorIs(err, model.ErrUnknownUser)
}

func (s *IntegrationTestSuite) TestUnlistedPlaceGetsDefaultXP() {
	s.register("traveler")

	res, err := s.app.LedgerService.RecordVisit(s.ctx, "traveler", "어딘가 새로운 곳", 37.50, 127.00)
	s.Require().NoError(err)
	s.True(res.Accepted)
	s.Equal(10, res.XPGained)
}

func (s *IntegrationTestSuite) TestRatingFlow() {
	s.register("traveler")

	_, err := s.app.LedgerService.RecordVisit(s.ctx, "traveler", "인사동", 37.5744, 126.9849)
	s.Require().NoError(err)

	s.Require().NoError(s.app.LedgerService.RateVisit(s.ctx, "traveler", 0, 5))

	// A visit can be rated exactly once
	err = s.app.LedgerService.RateVisit(s.ctx, "traveler", 0, 3)
	s.ErrorIs(err, model.ErrAlreadyRated)

	visits, err := s.app.LedgerService.Visits(s.ctx, "traveler")
	s.Require().NoError(err)
	s.Require().Len(visits, 1)
	s.Require().NotNil(visits[0].Rating)
	s.Equal(5, *visits[0].Rating)
}

func (s *IntegrationTestSuite) TestVisitOrderings() {
	s.register("traveler")

	places := []struct {
		name string
		xp   int
	}{
		{"광장시장", 30},
		{"창덕궁", 70},
		{"서울숲", 20},
	}
	for _, p := range places {
		res, err := s.app.LedgerService.RecordVisit(s.ctx, "traveler", p.name, 37.57, 126.99)
		s.Require().NoError(err)
		s.Equal(p.xp, res.XPGained)
		s.app.Clock.Advance(time.Hour)
	}

	recent, err := s.app.LedgerService.VisitsByRecency(s.ctx, "traveler")
	s.Require().NoError(err)
	s.Require().Len(recent, 3)
	s.Equal("서울숲", recent[0].PlaceName)
	s.Equal("광장시장", recent[2].PlaceName)

	byXP, err := s.app.LedgerService.VisitsByXP(s.ctx, "traveler")
	s.Require().NoError(err)
	s.Require().Len(byXP, 3)
	s.Equal("창덕궁", byXP[0].PlaceName)
	s.Equal("서울숲", byXP[2].PlaceName)
}

func (s *IntegrationTestSuite) TestSeparateLedgersPerUser() {
	s.register("alice")
	s.register("bob")

	_, err := s.app.LedgerService.RecordVisit(s.ctx, "alice", "명동", 37.5637, 126.9838)
	s.Require().NoError(err)

	// bob's same-day visit to the same place is not a duplicate
	res, err := s.app.LedgerService.RecordVisit(s.ctx, "bob", "명동", 37.5637, 126.9838)
	s.Require().NoError(err)
	s.True(res.Accepted)

	stats, err := s.app.LedgerService.GetStats(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(1, stats.TotalVisits)
}

func (s *IntegrationTestSuite) TestSeededAdminCanLogin() {
	s.Require().NoError(s.app.AccountService.Seed(s.ctx, "admin", "admin"))

	sess, err := s.app.AccountService.Login(s.ctx, "admin", "admin")
	s.Require().NoError(err)

	got, err := s.app.AccountService.ValidateSession(sess.Token)
	s.Require().NoError(err)
	s.Equal("admin", got.Username)

	// Seeding again must not reset the existing account
	_, err = s.app.LedgerService.RecordVisit(s.ctx, "admin", "북촌한옥마을", 37.5826, 126.9831)
	s.Require().NoError(err)
	s.Require().NoError(s.app.AccountService.Seed(s.ctx, "admin", "admin"))

	visits, err := s.app.LedgerService.Visits(s.ctx, "admin")
	s.Require().NoError(err)
	s.Len(visits, 1)
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}
