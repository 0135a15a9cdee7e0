package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Fixture identifiers shared by every test that talks to the fake server.
const (
	YahooGUID      = "USERGUIDAAA111"
	YahooGUID2     = "USERGUIDBBB222"
	YahooLeagueKey = "423.l.12345"
	YahooOldLeague = "390.l.8888"
	YahooTeam1Key  = "423.l.12345.t.1"
	YahooTeam2Key  = "423.l.12345.t.2"
	YahooErrLeague = "423.l.66666"
	YahooGameCode  = "nfl"
	YahooSeason    = 2025
)

//go:embed yahoodata
var yahoodata embed.FS

type FakeYahooServer struct {
	s *httptest.Server
}

func NewFakeYahooServer() *FakeYahooServer {
	r := chi.NewRouter()
	// https://fantasysports.yahooapis.com/fantasy/v2/league/423.l.12345/standings?format=json
	r.Route("/fantasy/v2", func(r chi.Router) {
		r.Get("/users;use_login=1/{gamesSpec}/leagues", userLeaguesHandler)
		r.Route("/league/{leagueKey}", func(r chi.Router) {
			r.Get("/standings", leagueStandingsHandler)
			r.Get("/teams", leagueTeamsHandler)
			// The week rides in the path segment, e.g. "scoreboard;week=4".
			r.Get("/{resource}", leagueResourceHandler)
		})
		r.Get("/team/{teamKey}/roster", teamRosterHandler)
	})

	return &FakeYahooServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeYahooServer) Close() {
	f.s.Close()
}

func (f *FakeYahooServer) URL() string {
	return f.s.URL
}

func userLeaguesHandler(w http.ResponseWriter, r *http.Request) {
	spec := chi.URLParam(r, "gamesSpec")
	if strings.Contains(spec, "game_codes=nfl") && strings.Contains(spec, "seasons=2025") {
		serveYahooFile(w, "leagues_nfl_2025.json")
		return
	}
	serveYahooFile(w, "leagues_empty.json")
}

func leagueStandingsHandler(w http.ResponseWriter, r *http.Request) {
	leagueKey := chi.URLParam(r, "leagueKey")
	if leagueKey == YahooErrLeague {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if leagueKey == YahooLeagueKey {
		serveYahooFile(w, "standings.json")
		return
	}

	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(notFoundMessage))
}

func leagueTeamsHandler(w http.ResponseWriter, r *http.Request) {
	leagueKey := chi.URLParam(r, "leagueKey")
	if leagueKey == YahooLeagueKey {
		serveYahooFile(w, "teams.json")
		return
	}

	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(notFoundMessage))
}

func leagueResourceHandler(w http.ResponseWriter, r *http.Request) {
	leagueKey := chi.URLParam(r, "leagueKey")
	resource := chi.URLParam(r, "resource")
	if !strings.HasPrefix(resource, "scoreboard") {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(notFoundMessage))
		return
	}

	// The cursed league rejects single week queries but still answers the
	// no-week form, which covers only the current scoring period.
	if leagueKey == YahooErrLeague {
		if strings.Contains(resource, "week=") {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		serveYahooFile(w, "scoreboard_week5.json")
		return
	}

	if leagueKey != YahooLeagueKey {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(notFoundMessage))
		return
	}

	switch {
	case strings.Contains(resource, "week=4"):
		serveYahooFile(w, "scoreboard_week4.json")
	default:
		// No week argument means the league's current scoring period.
		serveYahooFile(w, "scoreboard_week5.json")
	}
}

func teamRosterHandler(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "teamKey") {
	case YahooTeam1Key:
		serveYahooFile(w, "roster_team1.json")
	case YahooTeam2Key:
		serveYahooFile(w, "roster_team2.json")
	default:
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(notFoundMessage))
	}
}

func serveYahooFile(w http.ResponseWriter, name string) {
	b, err := yahoodata.ReadFile(fmt.Sprintf("yahoodata/%s", name))
	if err != nil {
		log.Printf("error reading yahoodata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

const notFoundMessage = `{"error": {"description": "You are not allowed to view this page because you are not in this league."}}`
