package serialize

import "github.com/mww/yahoo_sync/model"

// Standings converts a list of team objects from a league standings
// response into the ranked snapshot stored per league. The whole set
// replaces the prior one.
func Standings(teams []any) []model.Standing {
	result := make([]model.Standing, 0, len(teams))

	for _, team := range teams {
		ts := Get(team, "team_standings")
		ot := Get(ts, "outcome_totals")
		streak := Get(ts, "streak")

		// clinched_playoffs is only present once a team has clinched, and
		// Yahoo's true sentinel is the string "1".
		clinched := false
		if raw := OptionalStr(team, "clinched_playoffs"); raw != nil {
			clinched = *raw == "1"
		}

		result = append(result, model.Standing{
			TeamKey:          Str(team, "team_key", ""),
			TeamID:           Int(team, "team_id", 0),
			Name:             Str(team, "name", ""),
			URL:              Str(team, "url", ""),
			TeamLogo:         teamLogo(team),
			ManagerName:      managerName(team),
			Rank:             OptionalInt(ts, "rank"),
			Wins:             Int(ot, "wins", 0),
			Losses:           Int(ot, "losses", 0),
			Ties:             Int(ot, "ties", 0),
			Percentage:       Str(ot, "percentage", "0.0"),
			GamesBack:        Str(ts, "games_back", "0.0"),
			PointsFor:        Str(ts, "points_for", "0"),
			PointsAgainst:    Str(ts, "points_against", "0"),
			StreakType:       Str(streak, "type", ""),
			StreakValue:      Int(streak, "value", 0),
			PlayoffSeed:      OptionalInt(ts, "playoff_seed"),
			ClinchedPlayoffs: clinched,
			WaiverPriority:   OptionalInt(team, "waiver_priority"),
		})
	}

	return result
}
