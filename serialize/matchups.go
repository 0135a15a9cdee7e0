package serialize

import "github.com/mww/yahoo_sync/model"

// Matchups converts a scoreboard object into the matchup records for a
// single week. week filters when > 0; pass 0 to take every matchup in the
// scoreboard (used when Yahoo returned exactly the week asked for).
func Matchups(scoreboard any, week int) []model.Matchup {
	raw := Dig(scoreboard, "matchups", "matchup")
	if raw == nil {
		raw = Get(scoreboard, "matchups")
	}

	result := make([]model.Matchup, 0, 8)
	for _, m := range AsList(raw) {
		w := Int(m, "week", 0)
		if week > 0 && w != week {
			continue
		}

		teams := AsList(Dig(m, "teams", "team"))
		if len(teams) == 0 {
			// Some responses skip the "team" wrapper entirely.
			teams = AsList(Get(m, "teams"))
		}

		serialized := make([]model.MatchupTeam, 0, len(teams))
		for _, t := range teams {
			serialized = append(serialized, matchupTeam(t))
		}

		result = append(result, model.Matchup{
			Week:          w,
			WeekStart:     Str(m, "week_start", ""),
			WeekEnd:       Str(m, "week_end", ""),
			Status:        Str(m, "status", ""),
			IsPlayoffs:    Str(m, "is_playoffs", "0") == "1",
			IsConsolation: Str(m, "is_consolation", "0") == "1",
			IsTied:        Str(m, "is_tied", "0") == "1",
			WinnerTeamKey: OptionalStr(m, "winner_team_key"),
			Teams:         serialized,
		})
	}

	return result
}

// matchupTeam serializes one side of a matchup. The points blocks are
// entirely absent for unplayed matchups, which must yield nil, never 0.
func matchupTeam(team any) model.MatchupTeam {
	return model.MatchupTeam{
		TeamKey:         Str(team, "team_key", ""),
		TeamID:          Int(team, "team_id", 0),
		Name:            Str(team, "name", ""),
		TeamLogo:        teamLogo(team),
		ManagerName:     managerName(team),
		Points:          OptionalFloat(Get(team, "team_points"), "total"),
		ProjectedPoints: OptionalFloat(Get(team, "team_projected_points"), "total"),
	}
}
