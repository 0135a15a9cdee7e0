package yahoo

import (
	"net/http"
	"testing"

	"github.com/mww/yahoo_sync/serialize"
	"github.com/mww/yahoo_sync/testutils"
)

func TestGetLeagues(t *testing.T) {
	fakeYahoo := testutils.NewFakeYahooServer()
	defer fakeYahoo.Close()

	c := NewForTest(fakeYahoo.URL())

	leagues, err := c.GetLeagues(http.DefaultClient, testutils.YahooGameCode, testutils.YahooSeason)
	if err != nil {
		t.Fatalf("unexpected error getting leagues: %v", err)
	}
	if len(leagues) != 3 {
		t.Fatalf("expected 3 leagues, got %d", len(leagues))
	}

	active := serialize.League(leagues[0], "nfl", 2025)
	if active.LeagueKey != testutils.YahooLeagueKey {
		t.Errorf("league key was %s", active.LeagueKey)
	}
	if active.Name != "Gridiron Friends" {
		t.Errorf("league name was %s", active.Name)
	}
	if active.CurrentWeek == nil || *active.CurrentWeek != 5 {
		t.Errorf("current week was %v", active.CurrentWeek)
	}
	if active.IsFinished {
		t.Error("active league marked finished")
	}

	old := serialize.League(leagues[1], "nfl", 2025)
	if old.LeagueKey != testutils.YahooOldLeague {
		t.Errorf("league key was %s", old.LeagueKey)
	}
	if !old.IsFinished {
		t.Error("old league not marked finished")
	}
}

func TestGetLeagues_noneForSeason(t *testing.T) {
	fakeYahoo := testutils.NewFakeYahooServer()
	defer fakeYahoo.Close()

	c := NewForTest(fakeYahoo.URL())

	leagues, err := c.GetLeagues(http.DefaultClient, "nba", 2025)
	if err != nil {
		t.Fatalf("unexpected error getting leagues: %v", err)
	}
	if len(leagues) != 0 {
		t.Errorf("expected no leagues, got %d", len(leagues))
	}
}

func TestGetStandings(t *testing.T) {
	fakeYahoo := testutils.NewFakeYahooServer()
	defer fakeYahoo.Close()

	c := NewForTest(fakeYahoo.URL())

	teams, err := c.GetStandings(http.DefaultClient, testutils.YahooLeagueKey)
	if err != nil {
		t.Fatalf("unexpected error getting standings: %v", err)
	}

	standings := serialize.Standings(anySlice(teams))
	if len(standings) != 2 {
		t.Fatalf("expected 2 standings rows, got %d", len(standings))
	}

	first := standings[0]
	if first.TeamKey != testutils.YahooTeam1Key {
		t.Errorf("team key was %s", first.TeamKey)
	}
	if first.Rank == nil || *first.Rank != 1 {
		t.Errorf("rank was %v", first.Rank)
	}
	if first.Wins != 4 || first.Losses != 0 {
		t.Errorf("record was %d-%d", first.Wins, first.Losses)
	}
	if first.ManagerName != "Morgan" {
		t.Errorf("manager name was %s", first.ManagerName)
	}
	if !first.ClinchedPlayoffs {
		t.Error("clinched team not marked clinched")
	}
	if first.TeamLogo != "https://yimg.com/team1.png" {
		t.Errorf("team logo was %s", first.TeamLogo)
	}

	second := standings[1]
	if second.TeamKey != testutils.YahooTeam2Key {
		t.Errorf("team key was %s", second.TeamKey)
	}
	if second.ClinchedPlayoffs {
		t.Error("unclinched team marked clinched")
	}
	if second.GamesBack != "2" {
		t.Errorf("games back was %s", second.GamesBack)
	}
}

func TestGetStandings_badLeague(t *testing.T) {
	fakeYahoo := testutils.NewFakeYahooServer()
	defer fakeYahoo.Close()

	c := NewForTest(fakeYahoo.URL())

	if _, err := c.GetStandings(http.DefaultClient, "999.l.1"); err == nil {
		t.Fatal("expected an error, but got none")
	}
}

func TestGetScoreboard(t *testing.T) {
	fakeYahoo := testutils.NewFakeYahooServer()
	defer fakeYahoo.Close()

	c := NewForTest(fakeYahoo.URL())

	sb, err := c.GetScoreboard(http.DefaultClient, testutils.YahooLeagueKey, 4)
	if err != nil {
		t.Fatalf("unexpected error getting scoreboard: %v", err)
	}

	matchups := serialize.Matchups(sb, 4)
	if len(matchups) != 1 {
		t.Fatalf("expected 1 matchup, got %d", len(matchups))
	}

	m := matchups[0]
	if m.Week != 4 || m.Status != "postevent" {
		t.Errorf("matchup was week %d status %s", m.Week, m.Status)
	}
	if m.WinnerTeamKey == nil || *m.WinnerTeamKey != testutils.YahooTeam1Key {
		t.Errorf("winner was %v", m.WinnerTeamKey)
	}
	if len(m.Teams) != 2 {
		t.Fatalf("expected 2 teams in matchup, got %d", len(m.Teams))
	}
	if m.Teams[0].Points == nil || *m.Teams[0].Points != 142.78 {
		t.Errorf("team 1 points were %v", m.Teams[0].Points)
	}
	if m.Teams[1].Points == nil || *m.Teams[1].Points != 98.02 {
		t.Errorf("team 2 points were %v", m.Teams[1].Points)
	}
}

func TestGetScoreboard_currentWeek(t *testing.T) {
	fakeYahoo := testutils.NewFakeYahooServer()
	defer fakeYahoo.Close()

	c := NewForTest(fakeYahoo.URL())

	// Week 0 omits the week argument and yahoo answers with the current
	// scoring period.
	sb, err := c.GetScoreboard(http.DefaultClient, testutils.YahooLeagueKey, 0)
	if err != nil {
		t.Fatalf("unexpected error getting scoreboard: %v", err)
	}

	matchups := serialize.Matchups(sb, 0)
	if len(matchups) != 1 {
		t.Fatalf("expected 1 matchup, got %d", len(matchups))
	}
	if matchups[0].Week != 5 {
		t.Errorf("expected current week 5, got %d", matchups[0].Week)
	}
	if matchups[0].WinnerTeamKey != nil {
		t.Errorf("midevent matchup has winner %v", *matchups[0].WinnerTeamKey)
	}
}

func TestGetTeams(t *testing.T) {
	fakeYahoo := testutils.NewFakeYahooServer()
	defer fakeYahoo.Close()

	c := NewForTest(fakeYahoo.URL())

	teams, err := c.GetTeams(http.DefaultClient, testutils.YahooLeagueKey)
	if err != nil {
		t.Fatalf("unexpected error getting teams: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(teams))
	}

	if key := serialize.Str(teams[0], "team_key", ""); key != testutils.YahooTeam1Key {
		t.Errorf("team key was %s", key)
	}
	if !serialize.TeamOwnedBy(teams[0], testutils.YahooGUID) {
		t.Error("team 1 not owned by its manager guid")
	}
	if serialize.TeamOwnedBy(teams[1], testutils.YahooGUID) {
		t.Error("team 2 incorrectly owned by team 1 manager")
	}
}

func TestGetRoster(t *testing.T) {
	fakeYahoo := testutils.NewFakeYahooServer()
	defer fakeYahoo.Close()

	c := NewForTest(fakeYahoo.URL())

	obj, err := c.GetRoster(http.DefaultClient, testutils.YahooTeam1Key)
	if err != nil {
		t.Fatalf("unexpected error getting roster: %v", err)
	}

	roster := serialize.Roster(obj, testutils.YahooTeam1Key, "Sea Otters")
	if len(roster.Players) != 3 {
		t.Fatalf("expected 3 players, got %d", len(roster.Players))
	}

	qb := roster.Players[0]
	if qb.Name.Full != "Dax Hollifield" {
		t.Errorf("player name was %s", qb.Name.Full)
	}
	if qb.SelectedPosition != "QB" {
		t.Errorf("selected position was %s", qb.SelectedPosition)
	}
	if qb.Status != nil {
		t.Errorf("healthy player has status %v", *qb.Status)
	}

	wr := roster.Players[1]
	if wr.Status == nil || *wr.Status != "Q" {
		t.Errorf("injured player status was %v", wr.Status)
	}
	if len(wr.EligiblePositions) != 2 || wr.EligiblePositions[0] != "WR" {
		t.Errorf("eligible positions were %v", wr.EligiblePositions)
	}

	bench := roster.Players[2]
	if bench.SelectedPosition != "BN" {
		t.Errorf("bench player selected position was %s", bench.SelectedPosition)
	}
}

func TestGetRoster_badTeam(t *testing.T) {
	fakeYahoo := testutils.NewFakeYahooServer()
	defer fakeYahoo.Close()

	c := NewForTest(fakeYahoo.URL())

	if _, err := c.GetRoster(http.DefaultClient, "999.l.1.t.9"); err == nil {
		t.Fatal("expected an error, but got none")
	}
}

func anySlice(objs []Object) []any {
	res := make([]any, len(objs))
	for i, o := range objs {
		res[i] = o
	}
	return res
}
