package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mesh-intelligence/haunt/internal/roster"
	"github.com/mesh-intelligence/haunt/pkg/types"
)

// validTableNamesStr is a comma-separated list of valid table names for error output.
var validTableNamesStr = strings.Join(types.StandardTableNames, ", ")

// parseFilter turns key=value arguments into a Filter. Values that parse as
// JSON (numbers, booleans) keep their JSON type; anything else is a string.
func parseFilter(args []string) (types.Filter, error) {
	filter := make(types.Filter, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid filter %q (expected key=value): %w", arg, types.ErrInvalidFilter)
		}

		var parsed any
		if err := json.Unmarshal([]byte(value), &parsed); err != nil {
			parsed = value
		}
		switch parsed.(type) {
		case float64, bool, string:
		default:
			// Objects, arrays, and null are matched as raw text.
			parsed = value
		}
		filter[key] = parsed
	}
	return filter, nil
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &sysError{fmt.Errorf("marshal JSON: %w", err)}
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// renderGhostLines writes one "  - {...}" line per ghost entity.
func renderGhostLines(w io.Writer, entities []any) {
	for _, e := range entities {
		if g, ok := e.(*types.Ghost); ok {
			fmt.Fprintf(w, "  - %s\n", g)
		}
	}
}

// renderRooms writes every room entity with its roster.
func renderRooms(w io.Writer, entities []any) {
	for _, e := range entities {
		if r, ok := e.(*types.Room); ok {
			fmt.Fprint(w, r.Render())
		}
	}
}

// ghostRecords converts the master list in order.
func (a *app) ghostRecords() []roster.GhostRecord {
	out := make([]roster.GhostRecord, 0, a.building.Ghosts().Len())
	a.building.Ghosts().Each(func(g *types.Ghost) bool {
		out = append(out, roster.NewGhostRecord(g))
		return true
	})
	return out
}

// roomRecords converts every room in array order.
func (a *app) roomRecords() []roster.RoomRecord {
	rooms := a.building.Rooms().Rooms()
	out := make([]roster.RoomRecord, len(rooms))
	for i, r := range rooms {
		out[i] = roster.NewRoomRecord(r)
	}
	return out
}
