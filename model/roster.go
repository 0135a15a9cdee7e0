package model

// Roster is the full player set for one team at sync time, replaced as a
// unit on every pass.
type Roster struct {
	TeamKey  string   `json:"team_key"`
	TeamName string   `json:"team_name"`
	Players  []Player `json:"players"`
}

type PlayerName struct {
	Full  string `json:"full"`
	First string `json:"first"`
	Last  string `json:"last"`
}

// Player is one rostered player. The injury fields and point total are
// pointers because Yahoo omits them entirely for healthy or unplayed
// players.
type Player struct {
	PlayerKey             string     `json:"player_key"`
	PlayerID              int        `json:"player_id"`
	Name                  PlayerName `json:"name"`
	EditorialTeamAbbr     string     `json:"editorial_team_abbr"`
	EditorialTeamFullName string     `json:"editorial_team_full_name"`
	DisplayPosition       string     `json:"display_position"`
	SelectedPosition      string     `json:"selected_position"`
	EligiblePositions     []string   `json:"eligible_positions"`
	ImageURL              string     `json:"image_url"`
	PositionType          string     `json:"position_type"`
	Status                *string    `json:"status"`
	StatusFull            *string    `json:"status_full"`
	InjuryNote            *string    `json:"injury_note"`
	PlayerPoints          *float64   `json:"player_points"`
}
