package serialize

import (
	"testing"
)

const currentYear = 2025

func TestLeague(t *testing.T) {
	obj := map[string]any{
		"league_key":   "423.l.12345",
		"league_id":    "12345",
		"name":         "Work League",
		"url":          "https://football.fantasysports.yahoo.com/f1/12345",
		"logo_url":     "https://img/league.png",
		"draft_status": "postdraft",
		"num_teams":    float64(12),
		"scoring_type": "head",
		"league_type":  "private",
		"current_week": float64(14),
		"start_week":   "1",
		"end_week":     float64(17),
		"is_finished":  "0",
		"season":       "2025",
	}

	l := League(obj, "nfl", currentYear)

	if l.LeagueKey != "423.l.12345" || l.LeagueID != 12345 {
		t.Errorf("league identity not as expected: %+v", l)
	}
	if l.Name != "Work League" || l.NumTeams != 12 || l.ScoringType != "head" {
		t.Errorf("league attributes not as expected: %+v", l)
	}
	if l.CurrentWeek == nil || *l.CurrentWeek != 14 {
		t.Errorf("current_week not as expected: %v", l.CurrentWeek)
	}
	if l.StartWeek == nil || *l.StartWeek != 1 || l.EndWeek == nil || *l.EndWeek != 17 {
		t.Errorf("week bounds not as expected: %+v", l)
	}
	if l.IsFinished {
		t.Error("league should not be finished")
	}
	if l.Season != 2025 || l.GameCode != "nfl" {
		t.Errorf("season/game_code not as expected: %+v", l)
	}
}

func TestLeague_emptyObject(t *testing.T) {
	l := League(map[string]any{}, "nba", currentYear)

	if l.LeagueKey != "" || l.LeagueID != 0 || l.NumTeams != 0 {
		t.Errorf("defaults not as expected: %+v", l)
	}
	if l.CurrentWeek != nil || l.StartWeek != nil || l.EndWeek != nil {
		t.Errorf("week numbers should be nil: %+v", l)
	}
	// season 0 is well before currentYear-1, so the fallback marks it done
	if !l.IsFinished {
		t.Error("zero-season league should fall back to finished")
	}
}

// is_finished truth table: explicit flag wins when it coerces to an int,
// otherwise the season-age fallback decides.
func TestLeague_isFinished(t *testing.T) {
	tests := map[string]struct {
		flag   any // nil means absent
		season any
		want   bool
	}{
		"explicit finished":          {flag: "1", season: "2025", want: true},
		"explicit not finished":      {flag: "0", season: "2020", want: false},
		"explicit numeric":           {flag: float64(1), season: "2024", want: true},
		"uncoercible flag, old":      {flag: "maybe", season: "2020", want: true},
		"absent, current season":     {season: "2025", want: false},
		"absent, prior season":       {season: "2024", want: false},
		"absent, two seasons ago":    {season: "2023", want: true},
		"absent, ancient":            {season: "2001", want: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			obj := map[string]any{"season": tc.season}
			if tc.flag != nil {
				obj["is_finished"] = tc.flag
			}

			l := League(obj, "nhl", currentYear)
			if l.IsFinished != tc.want {
				t.Errorf("is_finished got: %v, want: %v", l.IsFinished, tc.want)
			}
		})
	}
}
