package roster

import (
	"math"

	"github.com/mesh-intelligence/haunt/pkg/types"
)

// GhostRecord is the JSON form of a ghost. Likelihood is rounded to two
// decimals, matching the text rendering.
type GhostRecord struct {
	ID         int     `json:"id"`
	Type       string  `json:"type"`
	Likelihood float64 `json:"likelihood"`
	Room       string  `json:"room"`
}

// RoomRecord is the JSON form of a room with its sorted roster.
type RoomRecord struct {
	ID     int           `json:"id"`
	Name   string        `json:"name"`
	Ghosts []GhostRecord `json:"ghosts"`
}

// NewGhostRecord converts g.
func NewGhostRecord(g *types.Ghost) GhostRecord {
	return GhostRecord{
		ID:         g.ID(),
		Type:       g.Type(),
		Likelihood: math.Round(g.Likelihood()*100) / 100,
		Room:       g.RoomName(),
	}
}

// NewRoomRecord converts r and its roster.
func NewRoomRecord(r *types.Room) RoomRecord {
	rec := RoomRecord{ID: r.ID(), Name: r.Name(), Ghosts: []GhostRecord{}}
	r.Ghosts().Each(func(g *types.Ghost) bool {
		rec.Ghosts = append(rec.Ghosts, NewGhostRecord(g))
		return true
	})
	return rec
}

// Records converts entities returned by a Table into their JSON records.
// Values of other types are skipped.
func Records(entities []any) []any {
	out := make([]any, 0, len(entities))
	for _, e := range entities {
		switch v := e.(type) {
		case *types.Ghost:
			out = append(out, NewGhostRecord(v))
		case *types.Room:
			out = append(out, NewRoomRecord(v))
		}
	}
	return out
}
