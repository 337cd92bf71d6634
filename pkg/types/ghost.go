package types

import "fmt"

// Bounds on text labels. Ghost types and room names longer than this are
// rejected rather than truncated.
const MaxLabelLen = 31

// GhostInitialID is the first id a fresh IDAllocator hands out.
const GhostInitialID = 1031

// unknownRoom is printed for a ghost that is not attached to any room.
const unknownRoom = "Unknown"

// IDAllocator hands out monotonically increasing ghost ids. A Building
// holds one; there is no process-wide counter.
type IDAllocator struct {
	next int
}

// NewIDAllocator returns an allocator whose first id is base.
func NewIDAllocator(base int) *IDAllocator {
	return &IDAllocator{next: base}
}

// Next returns the next id and advances the allocator.
func (a *IDAllocator) Next() int {
	id := a.next
	a.next++
	return id
}

// Peek returns the id the next call to Next will return.
func (a *IDAllocator) Peek() int {
	return a.next
}

// Ghost is a single ghost. It starts with zero likelihood and no room;
// Room.AttachGhost sets both. A ghost is owned by exactly one GhostList
// (the building's master list) and released only through it.
type Ghost struct {
	id         int
	ghostType  string
	likelihood float64
	room       *Room
	released   bool
}

// NewGhost creates a ghost of the given type, stamped with the next id from
// ids. Returns ErrInvalidLabel for an empty type, ErrLabelTooLong when the
// type exceeds MaxLabelLen bytes, and ErrNilAllocator when ids is nil. The
// allocator only advances on success.
func NewGhost(ids *IDAllocator, ghostType string) (*Ghost, error) {
	if ids == nil {
		return nil, ErrNilAllocator
	}
	if ghostType == "" {
		return nil, ErrInvalidLabel
	}
	if len(ghostType) > MaxLabelLen {
		return nil, fmt.Errorf("%q: %w", ghostType, ErrLabelTooLong)
	}
	return &Ghost{
		id:        ids.Next(),
		ghostType: ghostType,
	}, nil
}

// ID returns the ghost's unique id.
func (g *Ghost) ID() int { return g.id }

// Type returns the ghost's type label.
func (g *Ghost) Type() string { return g.ghostType }

// Likelihood returns the percentage likelihood set by the last attach.
func (g *Ghost) Likelihood() float64 { return g.likelihood }

// Room returns the room currently holding the ghost, or nil. The reference
// is non-owning.
func (g *Ghost) Room() *Room { return g.room }

// RoomName returns the name of the ghost's room, or "Unknown".
func (g *Ghost) RoomName() string {
	if g.room == nil {
		return unknownRoom
	}
	return g.room.name
}

// Released reports whether the owning list has released the ghost.
func (g *Ghost) Released() bool { return g.released }

// String renders the ghost as {id: N, type: T, likelihood: L%, room: R}
// with the likelihood to two decimals.
func (g *Ghost) String() string {
	if g == nil {
		return ""
	}
	return fmt.Sprintf("{id: %d, type: %s, likelihood: %.2f%%, room: %s}",
		g.id, g.ghostType, g.likelihood, g.RoomName())
}

// release marks the ghost as destroyed and drops its room reference.
// Only GhostList.Teardown calls it.
func (g *Ghost) release() error {
	if g.released {
		return fmt.Errorf("ghost %d: %w", g.id, ErrGhostReleased)
	}
	g.released = true
	g.room = nil
	return nil
}
