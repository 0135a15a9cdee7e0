package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/mww/yahoo_sync/controller"
	"github.com/mww/yahoo_sync/db"
	"github.com/mww/yahoo_sync/model"
	"github.com/unrolled/render"
)

func healthHandler(health *model.Health, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, health.Snapshot())
	}
}

func discoverHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guid := chi.URLParam(r, "guid")

		leagues, err := ctrl.DiscoverLeagues(r.Context(), guid)
		if err != nil {
			if errors.Is(err, db.ErrUserNotFound) {
				renderError(render, w, http.StatusNotFound, "user not found")
			} else {
				renderError(render, w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		render.JSON(w, http.StatusOK, map[string]any{"leagues": leagues})
	}
}

type importLeagueRequest struct {
	GUID      string `json:"guid"`
	LeagueKey string `json:"league_key"`
}

func importLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req importLeagueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderError(render, w, http.StatusBadRequest, "invalid request body")
			return
		}

		req.GUID = strings.TrimSpace(req.GUID)
		req.LeagueKey = strings.TrimSpace(req.LeagueKey)
		if req.GUID == "" || req.LeagueKey == "" {
			renderError(render, w, http.StatusBadRequest, "guid and league_key must be provided")
			return
		}

		l, err := ctrl.ImportLeague(r.Context(), req.GUID, req.LeagueKey)
		if err != nil {
			switch {
			case errors.Is(err, db.ErrUserNotFound):
				renderError(render, w, http.StatusNotFound, "user not found")
			case errors.Is(err, controller.ErrLeagueNotFound):
				renderError(render, w, http.StatusNotFound, "league not found")
			default:
				renderError(render, w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		render.JSON(w, http.StatusOK, l)
	}
}

// leagueData is one league with its most recently synced standings. The
// standings are null for leagues that haven't had a sync pass yet.
type leagueData struct {
	League    model.League     `json:"league"`
	Standings []model.Standing `json:"standings"`
}

func userLeaguesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guid := chi.URLParam(r, "guid")

		leagues, err := ctrl.ListUserLeagues(r.Context(), guid)
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err.Error())
			return
		}

		res := make([]leagueData, 0, len(leagues))
		for _, l := range leagues {
			d := leagueData{League: l}

			standings, err := ctrl.GetStandings(r.Context(), l.LeagueKey)
			if err != nil && !errors.Is(err, db.ErrLeagueNotFound) {
				log.Printf("error loading standings for league %s: %v", l.LeagueKey, err)
			}
			d.Standings = standings

			res = append(res, d)
		}

		render.JSON(w, http.StatusOK, map[string]any{"leagues": res})
	}
}

func matchupsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueKey := chi.URLParam(r, "leagueKey")
		week, err := strconv.Atoi(chi.URLParam(r, "week"))
		if err != nil {
			renderError(render, w, http.StatusBadRequest, "week must be a number")
			return
		}

		matchups, err := ctrl.GetMatchups(r.Context(), leagueKey, week)
		if err != nil {
			if errors.Is(err, db.ErrLeagueNotFound) {
				renderError(render, w, http.StatusNotFound, "no matchups for league and week")
			} else {
				renderError(render, w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		render.JSON(w, http.StatusOK, map[string]any{"matchups": matchups})
	}
}

func renderError(render *render.Render, w http.ResponseWriter, status int, msg string) {
	render.JSON(w, status, map[string]string{"error": msg})
}
