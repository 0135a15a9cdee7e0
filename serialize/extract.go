// Package serialize converts the loosely-shaped objects returned by the
// Yahoo client into the canonical records stored in the database.
//
// Yahoo's object graph gives no static guarantees: any attribute may be
// absent, null, a string where a number is expected, or a bare object where
// a list is expected. Every lookup in this package goes through the
// extractor primitives below, which never panic and always produce a
// defined default or nil.
package serialize

import "strconv"

// Get looks up a single attribute on an external object. It is the only
// place in the codebase that performs this lookup; everything else builds
// on it. Returns nil for non-map objects and missing attributes.
func Get(obj any, attr string) any {
	m, ok := obj.(map[string]any)
	if !ok {
		return nil
	}
	return m[attr]
}

// Dig follows a chain of attributes, returning nil as soon as any hop is
// missing.
func Dig(obj any, attrs ...string) any {
	for _, attr := range attrs {
		obj = Get(obj, attr)
		if obj == nil {
			return nil
		}
	}
	return obj
}

// AsList normalizes Yahoo's ambiguous single-vs-list nesting: a child that
// holds one element may arrive as a bare object instead of a list. nil
// becomes an empty list, lists pass through, anything else is wrapped.
func AsList(v any) []any {
	if v == nil {
		return []any{}
	}
	if l, ok := v.([]any); ok {
		return l
	}
	return []any{v}
}

func Str(obj any, attr, def string) string {
	v := Get(obj, attr)
	if v == nil {
		return def
	}
	return stringify(v)
}

func OptionalStr(obj any, attr string) *string {
	v := Get(obj, attr)
	if v == nil {
		return nil
	}
	s := stringify(v)
	return &s
}

func Int(obj any, attr string, def int) int {
	if n, ok := coerceInt(Get(obj, attr)); ok {
		return n
	}
	return def
}

func OptionalInt(obj any, attr string) *int {
	if n, ok := coerceInt(Get(obj, attr)); ok {
		return &n
	}
	return nil
}

func Float(obj any, attr string, def float64) float64 {
	if f, ok := coerceFloat(Get(obj, attr)); ok {
		return f
	}
	return def
}

func OptionalFloat(obj any, attr string) *float64 {
	if f, ok := coerceFloat(Get(obj, attr)); ok {
		return &f
	}
	return nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		// JSON numbers decode as float64; render whole values without a
		// trailing ".0" so keys like league_id stay stable.
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "1"
		}
		return "0"
	default:
		return ""
	}
}

func coerceInt(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case int:
		return t, true
	case string:
		n, err := strconv.Atoi(t)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func coerceFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// teamLogo resolves a logo URL from a team-like object. Yahoo nests it as
// team_logos.team_logo which may be a list of logo objects, a single logo
// object, or the team may carry a bare team_logo string. Each shape is
// tried in that order.
func teamLogo(team any) string {
	logo := Dig(team, "team_logos", "team_logo")
	if logo == nil {
		logo = Get(team, "team_logos")
	}
	if logos := AsList(logo); len(logos) > 0 {
		if url := Str(logos[0], "url", ""); url != "" {
			return url
		}
	}
	return Str(team, "team_logo", "")
}

// managerEntries collects the team's manager objects, which arrive either
// as a managers.manager child or as a bare managers list.
func managerEntries(team any) []any {
	entries := AsList(Dig(team, "managers", "manager"))
	if len(entries) == 0 {
		entries = AsList(Get(team, "managers"))
	}
	return entries
}

// managerName resolves the primary manager's display name. The manager
// shortcut attribute wins when present; otherwise the first managers
// entry is used.
func managerName(team any) string {
	if mgr := Get(team, "manager"); mgr != nil {
		if nick := Str(mgr, "nickname", ""); nick != "" {
			return nick
		}
	}

	if entries := managerEntries(team); len(entries) > 0 {
		return Str(entries[0], "nickname", "")
	}
	return ""
}

// managerGUIDs returns the GUIDs of every manager entry on the team, used
// to match a team to the syncing user.
func managerGUIDs(team any) []string {
	var guids []string
	if mgr := Get(team, "manager"); mgr != nil {
		if g := Str(mgr, "guid", ""); g != "" {
			guids = append(guids, g)
		}
	}
	for _, mgr := range managerEntries(team) {
		if g := Str(mgr, "guid", ""); g != "" {
			guids = append(guids, g)
		}
	}
	return guids
}

// TeamOwnedBy reports whether any of the team's managers has the given
// GUID.
func TeamOwnedBy(team any, guid string) bool {
	for _, g := range managerGUIDs(team) {
		if g == guid {
			return true
		}
	}
	return false
}
