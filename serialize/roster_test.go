package serialize

import (
	"reflect"
	"testing"
)

func rosterFixture() map[string]any {
	return map[string]any{
		"players": map[string]any{
			"player": []any{
				map[string]any{
					"player_key": "423.p.12345",
					"player_id":  "12345",
					"name": map[string]any{
						"full":  "Patrick Mahomes",
						"first": "Patrick",
						"last":  "Mahomes",
					},
					"editorial_team_abbr":      "KC",
					"editorial_team_full_name": "Kansas City Chiefs",
					"display_position":         "QB",
					"selected_position":        map[string]any{"position": "QB"},
					"eligible_positions":       map[string]any{"position": []any{"QB"}},
					"image_url":                "https://img/p12345.png",
					"position_type":            "O",
					"status":                   "Q",
					"status_full":              "Questionable",
					"injury_note":              "Knee",
					"player_points":            map[string]any{"total": "25.5"},
				},
				map[string]any{
					"player_key":         "423.p.678",
					"player_id":          "678",
					"name":               "Bare Name",
					"selected_position":  "WR",
					"eligible_positions": map[string]any{"position": "WR"},
				},
			},
		},
	}
}

func TestRoster(t *testing.T) {
	r := Roster(rosterFixture(), "423.l.12345.t.1", "The Juggernauts")

	if r.TeamKey != "423.l.12345.t.1" || r.TeamName != "The Juggernauts" {
		t.Errorf("team identity not as expected: %+v", r)
	}
	if len(r.Players) != 2 {
		t.Fatalf("expected 2 players, got: %d", len(r.Players))
	}

	p := r.Players[0]
	if p.PlayerKey != "423.p.12345" || p.PlayerID != 12345 {
		t.Errorf("player identity not as expected: %+v", p)
	}
	if p.Name.Full != "Patrick Mahomes" || p.Name.First != "Patrick" || p.Name.Last != "Mahomes" {
		t.Errorf("name not as expected: %+v", p.Name)
	}
	if p.SelectedPosition != "QB" {
		t.Errorf("selected position should flatten to a string, got: %q", p.SelectedPosition)
	}
	if !reflect.DeepEqual(p.EligiblePositions, []string{"QB"}) {
		t.Errorf("eligible positions not as expected: %v", p.EligiblePositions)
	}
	if p.Status == nil || *p.Status != "Q" || p.StatusFull == nil || *p.StatusFull != "Questionable" {
		t.Errorf("injury status not as expected: %+v", p)
	}
	if p.InjuryNote == nil || *p.InjuryNote != "Knee" {
		t.Errorf("injury note not as expected: %v", p.InjuryNote)
	}
	if p.PlayerPoints == nil || *p.PlayerPoints != 25.5 {
		t.Errorf("player points not as expected: %v", p.PlayerPoints)
	}
}

// A player with flattened or bare fields still serializes: the name falls
// back to the bare string, a bare selected position passes through, and a
// single eligible position normalizes to a one-element list.
func TestRoster_bareShapes(t *testing.T) {
	r := Roster(rosterFixture(), "423.l.12345.t.1", "")

	p := r.Players[1]
	if p.Name.Full != "Bare Name" || p.Name.First != "" || p.Name.Last != "" {
		t.Errorf("bare name not as expected: %+v", p.Name)
	}
	if p.SelectedPosition != "WR" {
		t.Errorf("bare selected position not as expected: %q", p.SelectedPosition)
	}
	if !reflect.DeepEqual(p.EligiblePositions, []string{"WR"}) {
		t.Errorf("single eligible position not as expected: %v", p.EligiblePositions)
	}
	if p.Status != nil || p.StatusFull != nil || p.InjuryNote != nil {
		t.Errorf("healthy player should have nil injury fields: %+v", p)
	}
	if p.PlayerPoints != nil {
		t.Errorf("missing points should be nil, got: %v", *p.PlayerPoints)
	}
}

func TestRoster_emptyAndNil(t *testing.T) {
	r := Roster(nil, "423.l.1.t.2", "Empty")
	if r.TeamKey != "423.l.1.t.2" || len(r.Players) != 0 {
		t.Errorf("nil roster not as expected: %+v", r)
	}

	r = Roster(map[string]any{"players": []any{}}, "423.l.1.t.2", "Empty")
	if len(r.Players) != 0 {
		t.Errorf("expected no players, got: %d", len(r.Players))
	}
}
