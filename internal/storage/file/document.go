package file

import (
	"sort"
	"time"

	"github.com/tourmate/tourmate/internal/model"
)

// document is the on-disk session document. The shape is shared with the
// legacy app, so it must round-trip exactly: users maps username to
// credential, user_visits and user_xp are keyed by username.
type document struct {
	Users      map[string]string        `json:"users"`
	UserVisits map[string][]visitRecord `json:"user_visits"`
	UserXP     map[string]int           `json:"user_xp"`
}

// visitRecord is the on-disk form of a visit
type visitRecord struct {
	PlaceName string  `json:"place_name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp string  `json:"timestamp"`
	Date      string  `json:"date"`
	XPGained  int     `json:"xp_gained"`
	Rating    *int    `json:"rating"`
}

func newDocument() document {
	return document{
		Users:      make(map[string]string),
		UserVisits: make(map[string][]visitRecord),
		UserXP:     make(map[string]int),
	}
}

// encodeDocument builds the on-disk document from the account map
func encodeDocument(accounts map[string]*model.Account) document {
	doc := newDocument()
	for username, account := range accounts {
		doc.Users[username] = account.PasswordHash
		doc.UserXP[username] = account.CumulativeXP

		records := make([]visitRecord, len(account.Visits))
		for i, v := range account.Visits {
			records[i] = visitRecord{
				PlaceName: v.PlaceName,
				Latitude:  v.Latitude,
				Longitude: v.Longitude,
				Timestamp: v.Timestamp.Format(model.TimestampLayout),
				Date:      v.Date,
				XPGained:  v.XPGained,
				Rating:    v.Rating,
			}
		}
		doc.UserVisits[username] = records
	}
	return doc
}

// decodeDocument rebuilds the account map from the on-disk document
func decodeDocument(doc document) (map[string]*model.Account, error) {
	accounts := make(map[string]*model.Account, len(doc.Users))

	usernames := make([]string, 0, len(doc.Users))
	for username := range doc.Users {
		usernames = append(usernames, username)
	}
	sort.Strings(usernames)

	for _, username := range usernames {
		records := doc.UserVisits[username]
		visits := make([]model.Visit, len(records))
		for i, r := range records {
			ts, err := time.ParseInLocation(model.TimestampLayout, r.Timestamp, time.Local)
			if err != nil {
				return nil, err
			}
			visits[i] = model.Visit{
				PlaceName: r.PlaceName,
				Latitude:  r.Latitude,
				Longitude: r.Longitude,
				Timestamp: ts,
				Date:      r.Date,
				XPGained:  r.XPGained,
				Rating:    r.Rating,
			}
		}
		accounts[username] = &model.Account{
			Username:     username,
			PasswordHash: doc.Users[username],
			CumulativeXP: doc.UserXP[username],
			Visits:       visits,
		}
	}
	return accounts, nil
}
