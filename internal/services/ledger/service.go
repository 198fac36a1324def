// Package ledger owns the visit/XP ledger: it records visits, enforces
// the one-credit-per-place-per-day rule, credits XP, and answers the
// history queries.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"sync"

	"github.com/tourmate/tourmate/internal/dependencies/clock"
	"github.com/tourmate/tourmate/internal/model"
	"github.com/tourmate/tourmate/internal/services/catalog"
	"github.com/tourmate/tourmate/internal/storage"
)

// Service manages the visit ledger for all accounts
type Service struct {
	storage storage.Storage
	catalog *catalog.Service
	clock   clock.Clock
	logger  *slog.Logger

	// storeMu serializes every read-check-save round trip against the
	// persisted account document. It is shared with the account service,
	// which mutates the same document.
	storeMu *sync.Mutex
}

// New creates a new ledger Service. storeMu must be the same mutex the
// account service writes under.
func New(storage storage.Storage, catalog *catalog.Service, clock clock.Clock, storeMu *sync.Mutex, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		catalog: catalog,
		clock:   clock,
		logger:  logger,
		storeMu: storeMu,
	}
}

// RecordResult is the outcome of a visit request
type RecordResult struct {
	// Accepted is false when the visit was a same-day duplicate
	Accepted bool `json:"accepted"`
	// XPGained is the XP credited for this visit; 0 when not accepted
	XPGained int `json:"xp_gained"`
}

// RecordVisit records a visit for a user and credits XP. At most one
// visit per place per calendar day is credited; a duplicate is a normal
// no-op outcome, not an error. The updated ledger is persisted before
// the result is returned, so an unconfirmed write surfaces as an error.
func (s *Service) RecordVisit(ctx context.Context, username, placeName string, lat, lng float64) (*RecordResult, error) {
	s.storeMu.Lock()
	defer s.storeMu.Unlock()

	acct, err := s.storage.GetAccount(ctx, username)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	date := now.Format(model.DateLayout)

	if acct.HasVisitOn(placeName, date) {
		return &RecordResult{Accepted: false, XPGained: 0}, nil
	}

	xp := s.catalog.XPFor(placeName)
	visit := model.Visit{
		PlaceName: placeName,
		Latitude:  lat,
		Longitude: lng,
		Timestamp: now,
		Date:      date,
		XPGained:  xp,
	}

	// Mutate a copy so a failed persist leaves no partial state visible
	updated := *acct
	updated.Visits = append(slices.Clone(acct.Visits), visit)
	updated.CumulativeXP += xp

	if err := s.storage.SaveAccount(ctx, &updated); err != nil {
		return nil, fmt.Errorf("persisting visit: %w", err)
	}

	s.logger.Info("visit recorded",
		slog.String("username", username),
		slog.String("place", placeName),
		slog.Int("xp_gained", xp),
	)

	return &RecordResult{Accepted: true, XPGained: xp}, nil
}

// RateVisit sets the 1-5 rating on a visit, identified by its position
// in the user's visit list. A visit can be rated exactly once.
func (s *Service) RateVisit(ctx context.Context, username string, index, rating int) error {
	if rating < 1 || rating > 5 {
		return model.ErrInvalidRating
	}

	s.storeMu.Lock()
	defer s.storeMu.Unlock()

	acct, err := s.storage.GetAccount(ctx, username)
	if err != nil {
		return err
	}

	if index < 0 || index >= len(acct.Visits) {
		return model.ErrVisitNotFound
	}
	if acct.Visits[index].Rating != nil {
		return model.ErrAlreadyRated
	}

	updated := *acct
	updated.Visits = slices.Clone(acct.Visits)
	updated.Visits[index].Rating = &rating

	if err := s.storage.SaveAccount(ctx, &updated); err != nil {
		return fmt.Errorf("persisting rating: %w", err)
	}
	return nil
}

// Stats aggregates the history-page counters for a user
type Stats struct {
	TotalVisits  int `json:"total_visits"`
	UniquePlaces int `json:"unique_places"`
	TotalXP      int `json:"total_xp"`
}

// GetStats returns visit statistics for a user. Unknown users have
// empty stats.
func (s *Service) GetStats(ctx context.Context, username string) (*Stats, error) {
	acct, err := s.getAccountOrEmpty(ctx, username)
	if err != nil {
		return nil, err
	}

	unique := make(map[string]struct{})
	for _, v := range acct.Visits {
		unique[v.PlaceName] = struct{}{}
	}

	return &Stats{
		TotalVisits:  len(acct.Visits),
		UniquePlaces: len(unique),
		TotalXP:      acct.VisitXPTotal(),
	}, nil
}

// TotalVisits returns the number of recorded visits for a user
func (s *Service) TotalVisits(ctx context.Context, username string) (int, error) {
	stats, err := s.GetStats(ctx, username)
	if err != nil {
		return 0, err
	}
	return stats.TotalVisits, nil
}

// UniquePlacesVisited returns the number of distinct places visited
func (s *Service) UniquePlacesVisited(ctx context.Context, username string) (int, error) {
	stats, err := s.GetStats(ctx, username)
	if err != nil {
		return 0, err
	}
	return stats.UniquePlaces, nil
}

// TotalXPFromVisits returns the XP total over the user's visits
func (s *Service) TotalXPFromVisits(ctx context.Context, username string) (int, error) {
	stats, err := s.GetStats(ctx, username)
	if err != nil {
		return 0, err
	}
	return stats.TotalXP, nil
}

// VisitsByRecency returns the user's visits, most recent first
func (s *Service) VisitsByRecency(ctx context.Context, username string) ([]model.Visit, error) {
	acct, err := s.getAccountOrEmpty(ctx, username)
	if err != nil {
		return nil, err
	}

	visits := slices.Clone(acct.Visits)
	sort.SliceStable(visits, func(i, j int) bool {
		return visits[i].Timestamp.After(visits[j].Timestamp)
	})
	return visits, nil
}

// VisitsByXP returns the user's visits, highest XP first
func (s *Service) VisitsByXP(ctx context.Context, username string) ([]model.Visit, error) {
	acct, err := s.getAccountOrEmpty(ctx, username)
	if err != nil {
		return nil, err
	}

	visits := slices.Clone(acct.Visits)
	sort.SliceStable(visits, func(i, j int) bool {
		return visits[i].XPGained > visits[j].XPGained
	})
	return visits, nil
}

// Visits returns the user's visits in insertion (chronological) order
func (s *Service) Visits(ctx context.Context, username string) ([]model.Visit, error) {
	acct, err := s.getAccountOrEmpty(ctx, username)
	if err != nil {
		return nil, err
	}
	return slices.Clone(acct.Visits), nil
}

// CumulativeXP returns the user's cumulative XP total
func (s *Service) CumulativeXP(ctx context.Context, username string) (int, error) {
	acct, err := s.getAccountOrEmpty(ctx, username)
	if err != nil {
		return 0, err
	}
	return acct.CumulativeXP, nil
}

// getAccountOrEmpty treats unknown users as empty for the read-only
// query operations
func (s *Service) getAccountOrEmpty(ctx context.Context, username string) (*model.Account, error) {
	acct, err := s.storage.GetAccount(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUnknownUser) {
			return &model.Account{Username: username}, nil
		}
		return nil, err
	}
	return acct, nil
}
