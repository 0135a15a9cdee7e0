package model

// GameCodes are the Yahoo fantasy games the sync engine covers.
var GameCodes = []string{"nfl", "nba", "nhl", "mlb"}

// League is the flat record stored in yahoo_leagues.data. Week numbers are
// pointers because a league that hasn't started has no weeks yet.
type League struct {
	LeagueKey   string `json:"league_key"`
	LeagueID    int    `json:"league_id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	LogoURL     string `json:"logo_url"`
	DraftStatus string `json:"draft_status"`
	NumTeams    int    `json:"num_teams"`
	ScoringType string `json:"scoring_type"`
	LeagueType  string `json:"league_type"`
	CurrentWeek *int   `json:"current_week"`
	StartWeek   *int   `json:"start_week"`
	EndWeek     *int   `json:"end_week"`
	IsFinished  bool   `json:"is_finished"`
	Season      int    `json:"season"`
	GameCode    string `json:"game_code"`
}

// Standing is one team's row in a league's standings. The full set is
// replaced on every sync. Points are kept as strings because Yahoo returns
// fixed-point text and we don't want float rounding to differ between
// consumers.
type Standing struct {
	TeamKey          string `json:"team_key"`
	TeamID           int    `json:"team_id"`
	Name             string `json:"name"`
	URL              string `json:"url"`
	TeamLogo         string `json:"team_logo"`
	ManagerName      string `json:"manager_name"`
	Rank             *int   `json:"rank"`
	Wins             int    `json:"wins"`
	Losses           int    `json:"losses"`
	Ties             int    `json:"ties"`
	Percentage       string `json:"percentage"`
	GamesBack        string `json:"games_back"`
	PointsFor        string `json:"points_for"`
	PointsAgainst    string `json:"points_against"`
	StreakType       string `json:"streak_type"`
	StreakValue      int    `json:"streak_value"`
	PlayoffSeed      *int   `json:"playoff_seed"`
	ClinchedPlayoffs bool   `json:"clinched_playoffs"`
	WaiverPriority   *int   `json:"waiver_priority"`
}

// Matchup is one head-to-head pairing for a week. All of a league's
// matchups for a week are stored together under (league_key, week).
type Matchup struct {
	Week          int           `json:"week"`
	WeekStart     string        `json:"week_start"`
	WeekEnd       string        `json:"week_end"`
	Status        string        `json:"status"`
	IsPlayoffs    bool          `json:"is_playoffs"`
	IsConsolation bool          `json:"is_consolation"`
	IsTied        bool          `json:"is_tied"`
	WinnerTeamKey *string       `json:"winner_team_key"`
	Teams         []MatchupTeam `json:"teams"`
}

// MatchupTeam is one side of a matchup. Points are nil, not zero, when the
// matchup hasn't been played.
type MatchupTeam struct {
	TeamKey         string   `json:"team_key"`
	TeamID          int      `json:"team_id"`
	Name            string   `json:"name"`
	TeamLogo        string   `json:"team_logo"`
	ManagerName     string   `json:"manager_name"`
	Points          *float64 `json:"points"`
	ProjectedPoints *float64 `json:"projected_points"`
}
