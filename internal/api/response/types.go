package response

import (
	"github.com/tourmate/tourmate/internal/model"
	"github.com/tourmate/tourmate/internal/services/account"
	"github.com/tourmate/tourmate/internal/services/ledger"
	"github.com/tourmate/tourmate/internal/services/leveling"
)

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Username     string `json:"username"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *account.Session) AuthResponse {
	return AuthResponse{
		Username:     s.Username,
		SessionToken: s.Token,
	}
}

// Visit represents a visit in API responses
type Visit struct {
	PlaceName string  `json:"place_name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp string  `json:"timestamp"`
	Date      string  `json:"date"`
	XPGained  int     `json:"xp_gained"`
	Rating    *int    `json:"rating"`
}

// VisitFromModel converts a model.Visit to a response Visit
func VisitFromModel(v model.Visit) Visit {
	return Visit{
		PlaceName: v.PlaceName,
		Latitude:  v.Latitude,
		Longitude: v.Longitude,
		Timestamp: v.Timestamp.Format(model.TimestampLayout),
		Date:      v.Date,
		XPGained:  v.XPGained,
		Rating:    v.Rating,
	}
}

// VisitsFromModel converts a visit slice
func VisitsFromModel(visits []model.Visit) []Visit {
	out := make([]Visit, len(visits))
	for i, v := range visits {
		out[i] = VisitFromModel(v)
	}
	return out
}

// RecordVisitResponse is the response after a visit request
type RecordVisitResponse struct {
	Accepted bool            `json:"accepted"`
	XPGained int             `json:"xp_gained"`
	Level    leveling.Summary `json:"level"`
}

// Profile is the response for the authenticated account endpoint
type Profile struct {
	Username string           `json:"username"`
	Level    leveling.Summary `json:"level"`
}

// StatsResponse combines visit statistics with the level summary
type StatsResponse struct {
	Stats ledger.Stats     `json:"stats"`
	Level leveling.Summary `json:"level"`
}
