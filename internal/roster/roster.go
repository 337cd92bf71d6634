// Package roster exposes a Building's ghosts and rooms as read-only tables
// for the CLI, with key=value filtering and JSON records.
package roster

import (
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/haunt/pkg/types"
)

// Roster hands out tables over one building.
type Roster struct {
	building *types.Building
}

// New returns a Roster over b.
func New(b *types.Building) *Roster {
	return &Roster{building: b}
}

// GetTable returns the Table for the given name.
// Returns ErrTableNotFound if the name is not a standard table.
func (r *Roster) GetTable(name string) (types.Table, error) {
	switch name {
	case types.GhostsTable, types.RoomsTable:
		return &table{name: name, building: r.building}, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, types.ErrTableNotFound)
	}
}

// table implements types.Table for one entity type.
type table struct {
	name     string
	building *types.Building
}

// Get retrieves an entity by its numeric ID.
// Returns ErrInvalidID if id does not parse, ErrNotFound if not found.
func (t *table) Get(id string) (any, error) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", id, types.ErrInvalidID)
	}

	switch t.name {
	case types.GhostsTable:
		if g := t.building.Ghost(n); g != nil {
			return g, nil
		}
	case types.RoomsTable:
		if r := t.building.Room(n); r != nil {
			return r, nil
		}
	default:
		return nil, types.ErrTableNotFound
	}
	return nil, fmt.Errorf("%s %d: %w", t.name, n, types.ErrNotFound)
}

// Fetch returns entities matching the filter. Empty filter matches all.
func (t *table) Fetch(filter types.Filter) ([]any, error) {
	switch t.name {
	case types.GhostsTable:
		return t.fetchGhosts(filter)
	case types.RoomsTable:
		return t.fetchRooms(filter)
	default:
		return nil, types.ErrTableNotFound
	}
}

// Ghost filters: id, type, room (name, "Unknown" for unattached), room_id,
// min_likelihood, limit. Results keep master list order.
func (t *table) fetchGhosts(filter types.Filter) ([]any, error) {
	var preds []func(*types.Ghost) bool
	limit := 0

	for key, value := range filter {
		switch key {
		case "id":
			id, ok := toInt(value)
			if !ok {
				return nil, invalidFilter(key, value)
			}
			preds = append(preds, func(g *types.Ghost) bool { return g.ID() == id })
		case "type":
			s, ok := value.(string)
			if !ok {
				return nil, invalidFilter(key, value)
			}
			preds = append(preds, func(g *types.Ghost) bool { return g.Type() == s })
		case "room":
			s, ok := value.(string)
			if !ok {
				return nil, invalidFilter(key, value)
			}
			preds = append(preds, func(g *types.Ghost) bool { return g.RoomName() == s })
		case "room_id":
			id, ok := toInt(value)
			if !ok {
				return nil, invalidFilter(key, value)
			}
			preds = append(preds, func(g *types.Ghost) bool { return g.Room() != nil && g.Room().ID() == id })
		case "min_likelihood":
			floor, ok := toFloat(value)
			if !ok {
				return nil, invalidFilter(key, value)
			}
			preds = append(preds, func(g *types.Ghost) bool { return g.Likelihood() >= floor })
		case "limit":
			l, ok := toInt(value)
			if !ok {
				return nil, invalidFilter(key, value)
			}
			limit = l
		default:
			return nil, fmt.Errorf("unknown ghost field %q: %w", key, types.ErrInvalidFilter)
		}
	}

	results := []any{}
	t.building.Ghosts().Each(func(g *types.Ghost) bool {
		for _, p := range preds {
			if !p(g) {
				return true
			}
		}
		results = append(results, g)
		return limit <= 0 || len(results) < limit
	})
	return results, nil
}

// Room filters: id, name, limit. Results keep array order.
func (t *table) fetchRooms(filter types.Filter) ([]any, error) {
	var preds []func(*types.Room) bool
	limit := 0

	for key, value := range filter {
		switch key {
		case "id":
			id, ok := toInt(value)
			if !ok {
				return nil, invalidFilter(key, value)
			}
			preds = append(preds, func(r *types.Room) bool { return r.ID() == id })
		case "name":
			s, ok := value.(string)
			if !ok {
				return nil, invalidFilter(key, value)
			}
			preds = append(preds, func(r *types.Room) bool { return r.Name() == s })
		case "limit":
			l, ok := toInt(value)
			if !ok {
				return nil, invalidFilter(key, value)
			}
			limit = l
		default:
			return nil, fmt.Errorf("unknown room field %q: %w", key, types.ErrInvalidFilter)
		}
	}

	results := []any{}
rooms:
	for _, r := range t.building.Rooms().Rooms() {
		for _, p := range preds {
			if !p(r) {
				continue rooms
			}
		}
		results = append(results, r)
		if limit > 0 && len(results) >= limit {
			break
		}
	}
	return results, nil
}

func invalidFilter(key string, value any) error {
	return fmt.Errorf("%s=%v: %w", key, value, types.ErrInvalidFilter)
}

// toInt converts various numeric types to int. Fractional floats are
// rejected.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case string:
		i, err := strconv.Atoi(n)
		return i, err == nil
	default:
		return 0, false
	}
}

// toFloat converts various numeric types to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
