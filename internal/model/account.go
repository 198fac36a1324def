package model

import "time"

// DateLayout is the calendar-date format used for visit deduplication
// and for the persisted session document.
const DateLayout = "2006-01-02"

// TimestampLayout is the full date-time format used in the persisted
// session document.
const TimestampLayout = "2006-01-02 15:04:05"

// Account represents a registered user of the tourism app
type Account struct {
	Username     string  `json:"username"`
	PasswordHash string  `json:"password_hash"` // bcrypt hash
	CumulativeXP int     `json:"cumulative_xp"`
	Visits       []Visit `json:"visits"`
}

// Visit is a recorded, deduplicated instance of a user reaching a named
// place on a calendar day
type Visit struct {
	PlaceName string    `json:"place_name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
	Date      string    `json:"date"` // Timestamp formatted with DateLayout
	XPGained  int       `json:"xp_gained"`
	Rating    *int      `json:"rating"` // 1-5, nil until the user rates the visit
}

// HasVisitOn reports whether the account already has a visit to the
// given place on the given calendar date.
func (a *Account) HasVisitOn(placeName, date string) bool {
	for _, v := range a.Visits {
		if v.PlaceName == placeName && v.Date == date {
			return true
		}
	}
	return false
}

// VisitXPTotal returns the sum of XP gained over the account's visits.
// It equals CumulativeXP for any account mutated only through the ledger.
func (a *Account) VisitXPTotal() int {
	total := 0
	for _, v := range a.Visits {
		total += v.XPGained
	}
	return total
}
