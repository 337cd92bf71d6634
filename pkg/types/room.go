package types

import (
	"fmt"
	"strings"
)

// Room is a named room with a roster of ghosts sorted by descending
// likelihood. The roster never owns its ghosts.
type Room struct {
	id     int
	name   string
	ghosts GhostView
}

// NewRoom creates an empty room. Returns ErrInvalidName for an empty name
// and ErrNameTooLong when the name exceeds MaxLabelLen bytes.
func NewRoom(id int, name string) (*Room, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if len(name) > MaxLabelLen {
		return nil, fmt.Errorf("%q: %w", name, ErrNameTooLong)
	}
	return &Room{id: id, name: name}, nil
}

// ID returns the room id given at creation.
func (r *Room) ID() int { return r.id }

// Name returns the room name.
func (r *Room) Name() string { return r.name }

// Ghosts returns the room's roster.
func (r *Room) Ghosts() *GhostView { return &r.ghosts }

// AttachGhost sets the ghost's likelihood and room, then inserts it into
// the roster in likelihood order. A ghost attached to another room is
// moved; a ghost already in this room is re-sorted. A nil room or ghost is
// a no-op.
func (r *Room) AttachGhost(g *Ghost, likelihood float64) {
	if r == nil || g == nil {
		return
	}
	if prev := g.room; prev != nil {
		prev.ghosts.Remove(g)
	}
	g.likelihood = likelihood
	g.room = r
	r.ghosts.InsertSorted(g)
}

// DetachGhost removes g from the roster and clears its room when it points
// here. It reports whether g was in the roster.
func (r *Room) DetachGhost(g *Ghost) bool {
	if r == nil || g == nil {
		return false
	}
	removed := r.ghosts.Remove(g)
	if g.room == r {
		g.room = nil
	}
	return removed
}

// String renders the room header as {id: N, name: S}.
func (r *Room) String() string {
	if r == nil {
		return ""
	}
	return fmt.Sprintf("{id: %d, name: %s}", r.id, r.name)
}

// Render returns the header line followed by the roster.
func (r *Room) Render() string {
	if r == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(r.String())
	b.WriteString("\n  Ghosts:\n")
	b.WriteString(r.ghosts.Render())
	return b.String()
}

// Teardown empties the roster. Ghosts that pointed at this room are left
// unattached; their data is untouched.
func (r *Room) Teardown() {
	if r == nil {
		return
	}
	r.ghosts.Each(func(g *Ghost) bool {
		if g.room == r {
			g.room = nil
		}
		return true
	})
	r.ghosts.Clear()
}
