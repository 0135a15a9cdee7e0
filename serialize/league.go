package serialize

import "github.com/mww/yahoo_sync/model"

// League builds the flat league record from a Yahoo league object.
// currentYear feeds the is_finished fallback and comes from the caller's
// clock.
func League(obj any, gameCode string, currentYear int) model.League {
	season := Int(obj, "season", 0)

	return model.League{
		LeagueKey:   Str(obj, "league_key", ""),
		LeagueID:    Int(obj, "league_id", 0),
		Name:        Str(obj, "name", ""),
		URL:         Str(obj, "url", ""),
		LogoURL:     Str(obj, "logo_url", ""),
		DraftStatus: Str(obj, "draft_status", ""),
		NumTeams:    Int(obj, "num_teams", 0),
		ScoringType: Str(obj, "scoring_type", ""),
		LeagueType:  Str(obj, "league_type", ""),
		CurrentWeek: OptionalInt(obj, "current_week"),
		StartWeek:   OptionalInt(obj, "start_week"),
		EndWeek:     OptionalInt(obj, "end_week"),
		IsFinished:  isFinished(obj, season, currentYear),
		Season:      season,
		GameCode:    gameCode,
	}
}

// isFinished prefers the explicit flag when Yahoo supplies one. Predraft
// and unplayed leagues often omit it, and a season that spans a year
// boundary (an NBA season starting in October) must not be marked finished
// by a naive year comparison, so the fallback only fires for seasons older
// than last year.
func isFinished(obj any, season, currentYear int) bool {
	if flag, ok := coerceInt(Get(obj, "is_finished")); ok {
		return flag == 1
	}
	return season < currentYear-1
}
