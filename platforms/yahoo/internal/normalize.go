// Package internal flattens the JSON encoding used by the Yahoo fantasy
// API into plain maps and lists. Yahoo encodes collections as objects with
// numeric string keys plus a "count" entry, wraps each collection element
// in a single-key object named after the entity, and splits entity
// attributes across arrays of small objects. Normalize undoes all of that
// so callers can address the data like ordinary decoded JSON.
package internal

import (
	"sort"
	"strconv"
)

// Normalize rewrites a decoded Yahoo response in place-independent form:
//
//   - {"0": {"team": X}, "1": {"team": Y}, "count": 2} becomes [X', Y']
//   - [{"team_key": ...}, {"name": ...}] with disjoint keys becomes one
//     merged object
//   - [{"position": "QB"}, {"position": "WR"}] becomes ["QB", "WR"]
//
// Values that match none of the patterns are returned with only their
// children normalized.
func Normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		if isCollection(t) {
			return collectionItems(t)
		}
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = Normalize(val)
		}
		return m
	case []any:
		return normalizeList(t)
	default:
		return v
	}
}

// isCollection reports whether m uses yahoo's numeric-keyed collection
// encoding. The "count" entry is required so that entities which happen
// to have numeric attribute names are left alone.
func isCollection(m map[string]any) bool {
	if _, ok := m["count"]; !ok {
		return false
	}
	for k := range m {
		if k == "count" {
			continue
		}
		if _, err := strconv.Atoi(k); err != nil {
			return false
		}
	}
	return len(m) > 1
}

func collectionItems(m map[string]any) []any {
	keys := make([]int, 0, len(m)-1)
	for k := range m {
		if k == "count" {
			continue
		}
		i, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		keys = append(keys, i)
	}
	sort.Ints(keys)

	items := make([]any, 0, len(keys))
	for _, k := range keys {
		e := Normalize(m[strconv.Itoa(k)])
		// Collection elements are wrapped in a single-key object named
		// after the entity, e.g. {"team": {...}}. Strip the wrapper.
		if em, ok := e.(map[string]any); ok && len(em) == 1 {
			for _, inner := range em {
				e = inner
			}
		}
		items = append(items, e)
	}
	return items
}

func normalizeList(t []any) any {
	items := make([]any, len(t))
	allMaps := len(t) > 0
	for i, e := range t {
		items[i] = Normalize(e)
		if _, ok := items[i].(map[string]any); !ok {
			allMaps = false
		}
	}
	if !allMaps {
		return items
	}

	// Attribute fragments: every element is an object and no key repeats,
	// so the pieces describe one entity and can be merged.
	if disjointKeys(items) {
		merged := make(map[string]any)
		for _, e := range items {
			for k, v := range e.(map[string]any) {
				merged[k] = v
			}
		}
		return merged
	}

	// Repeated single-key wrappers, e.g. [{"position": "QB"},
	// {"position": "WR"}]. Unwrap to the bare values.
	if k, ok := commonSingleKey(items); ok {
		vals := make([]any, 0, len(items))
		for _, e := range items {
			vals = append(vals, e.(map[string]any)[k])
		}
		return vals
	}

	return items
}

func disjointKeys(items []any) bool {
	seen := make(map[string]bool)
	for _, e := range items {
		for k := range e.(map[string]any) {
			if seen[k] {
				return false
			}
			seen[k] = true
		}
	}
	return true
}

func commonSingleKey(items []any) (string, bool) {
	var key string
	for i, e := range items {
		m := e.(map[string]any)
		if len(m) != 1 {
			return "", false
		}
		for k := range m {
			if i == 0 {
				key = k
			} else if k != key {
				return "", false
			}
		}
	}
	return key, key != ""
}
