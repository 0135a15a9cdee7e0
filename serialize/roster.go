package serialize

import "github.com/mww/yahoo_sync/model"

// Roster converts a roster object into the flat player list stored per
// team. teamKey and teamName come from the team listing, since the roster
// response doesn't always repeat them.
func Roster(obj any, teamKey, teamName string) model.Roster {
	players := playerList(obj)

	result := model.Roster{
		TeamKey:  teamKey,
		TeamName: teamName,
		Players:  make([]model.Player, 0, len(players)),
	}

	for _, p := range players {
		result.Players = append(result.Players, player(p))
	}
	return result
}

func player(p any) model.Player {
	// The name may be a structured object or a bare string.
	name := model.PlayerName{Full: Str(p, "name", "")}
	if n := Get(p, "name"); n != nil {
		if full := Str(n, "full", ""); full != "" {
			name.Full = full
		}
		name.First = Str(n, "first", "")
		name.Last = Str(n, "last", "")
	}

	// selected_position flattens to a single string.
	selected := Str(Get(p, "selected_position"), "position", "")
	if selected == "" {
		selected = Str(p, "selected_position", "")
	}

	// eligible_positions flattens to a list of strings. The entries are
	// either bare strings or {"position": "QB"} objects.
	raw := Dig(p, "eligible_positions", "position")
	if raw == nil {
		raw = Get(p, "eligible_positions")
	}
	eligible := make([]string, 0, 4)
	for _, pos := range AsList(raw) {
		s := stringify(pos)
		if s == "" {
			s = Str(pos, "position", "")
		}
		if s != "" {
			eligible = append(eligible, s)
		}
	}

	return model.Player{
		PlayerKey:             Str(p, "player_key", ""),
		PlayerID:              Int(p, "player_id", 0),
		Name:                  name,
		EditorialTeamAbbr:     Str(p, "editorial_team_abbr", ""),
		EditorialTeamFullName: Str(p, "editorial_team_full_name", ""),
		DisplayPosition:       Str(p, "display_position", ""),
		SelectedPosition:      selected,
		EligiblePositions:     eligible,
		ImageURL:              Str(p, "image_url", ""),
		PositionType:          Str(p, "position_type", ""),
		Status:                OptionalStr(p, "status"),
		StatusFull:            OptionalStr(p, "status_full"),
		InjuryNote:            OptionalStr(p, "injury_note"),
		PlayerPoints:          OptionalFloat(Get(p, "player_points"), "total"),
	}
}

func playerList(roster any) []any {
	players := Get(roster, "players")
	if players == nil {
		return []any{}
	}
	if l, ok := players.([]any); ok {
		return l
	}
	return AsList(Get(players, "player"))
}
