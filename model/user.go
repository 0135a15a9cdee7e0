package model

import "time"

// YahooUser is one authenticated Yahoo account tracked by the sync service.
// RefreshToken is stored encrypted in the database and only ever decrypted
// in memory for the duration of a sync pass.
type YahooUser struct {
	GUID         string
	LogtoSub     *string
	RefreshToken string
	LastSync     *time.Time
	Created      time.Time
}

// Membership links a user to a league and records which team in the league
// the user owns, when that can be determined.
type Membership struct {
	GUID      string  `json:"guid"`
	LeagueKey string  `json:"league_key"`
	TeamKey   *string `json:"team_key"`
	TeamName  *string `json:"team_name"`
}
