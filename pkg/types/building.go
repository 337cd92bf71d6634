package types

import (
	"errors"
	"fmt"
)

// Building owns every room (through its RoomArray) and every ghost
// (through its master GhostList). Ghosts are released only when the master
// list is torn down.
type Building struct {
	rooms  RoomArray
	ghosts GhostList
	ids    *IDAllocator
}

// NewBuilding returns an empty building whose ghost ids start at
// GhostInitialID.
func NewBuilding() *Building {
	return NewBuildingWithAllocator(NewIDAllocator(GhostInitialID))
}

// NewBuildingWithAllocator returns an empty building that stamps ghost ids
// from ids. A nil allocator is replaced by a fresh one.
func NewBuildingWithAllocator(ids *IDAllocator) *Building {
	if ids == nil {
		ids = NewIDAllocator(GhostInitialID)
	}
	return &Building{ids: ids}
}

// IDs returns the building's id allocator.
func (b *Building) IDs() *IDAllocator { return b.ids }

// Rooms returns the building's room array.
func (b *Building) Rooms() *RoomArray { return &b.rooms }

// Ghosts returns the master list.
func (b *Building) Ghosts() *GhostList { return &b.ghosts }

// NewGhost creates a ghost from the building's allocator and registers it.
func (b *Building) NewGhost(ghostType string) (*Ghost, error) {
	g, err := NewGhost(b.ids, ghostType)
	if err != nil {
		return nil, err
	}
	if err := b.RegisterGhost(g); err != nil {
		return nil, err
	}
	return g, nil
}

// RegisterGhost appends g to the master list, transferring ownership to the
// building. Returns ErrGhostRegistered if g is already registered and
// ErrGhostReleased if g was released. A nil ghost is a no-op.
func (b *Building) RegisterGhost(g *Ghost) error {
	if b == nil || g == nil {
		return nil
	}
	if g.released {
		return fmt.Errorf("ghost %d: %w", g.id, ErrGhostReleased)
	}
	if b.ghosts.Contains(g) {
		return fmt.Errorf("ghost %d: %w", g.id, ErrGhostRegistered)
	}
	b.ghosts.Append(g)
	return nil
}

// AddRoom adds room to the room array. See RoomArray.Add.
func (b *Building) AddRoom(room *Room) error {
	if b == nil {
		return nil
	}
	return b.rooms.Add(room)
}

// Ghost returns the registered ghost with the given id, or nil.
func (b *Building) Ghost(id int) *Ghost {
	var found *Ghost
	b.ghosts.Each(func(g *Ghost) bool {
		if g.id == id {
			found = g
			return false
		}
		return true
	})
	return found
}

// Room returns the first room with the given id, or nil.
func (b *Building) Room(id int) *Room { return b.rooms.Find(id) }

// Teardown tears down the room array (roster nodes only), then the master
// list, which releases every ghost exactly once.
func (b *Building) Teardown() error {
	if b == nil {
		return nil
	}
	b.rooms.Teardown()
	return b.ghosts.Teardown()
}

// Check verifies the building's invariants and returns every violation
// joined, each wrapping ErrInvariant. It returns nil for a consistent
// building.
func (b *Building) Check() error {
	var errs []error
	violation := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvariant}, args...)...))
	}

	registered := make(map[*Ghost]bool, b.ghosts.Len())
	b.ghosts.Each(func(g *Ghost) bool {
		if registered[g] {
			violation("ghost %d registered more than once", g.id)
		}
		registered[g] = true
		if g.released {
			violation("ghost %d in master list is released", g.id)
		}
		return true
	})

	if b.rooms.Len() > MaxRooms {
		violation("%d rooms exceed capacity %d", b.rooms.Len(), MaxRooms)
	}

	seen := make(map[*Ghost]*Room)
	checked := make(map[*Room]bool, b.rooms.Len())
	for _, room := range b.rooms.Rooms() {
		if checked[room] {
			continue
		}
		checked[room] = true

		prev, first := 0.0, true
		room.ghosts.Each(func(g *Ghost) bool {
			if !registered[g] {
				violation("ghost %d in room %d is not registered", g.id, room.id)
			}
			if g.room != room {
				violation("ghost %d in room %d points at %s", g.id, room.id, g.RoomName())
			}
			if other, ok := seen[g]; ok && other != room {
				violation("ghost %d is in rooms %d and %d", g.id, other.id, room.id)
			}
			seen[g] = room
			if !first && g.likelihood > prev {
				violation("room %d out of order at ghost %d (%.2f after %.2f)", room.id, g.id, g.likelihood, prev)
			}
			prev, first = g.likelihood, false
			return true
		})
	}

	b.ghosts.Each(func(g *Ghost) bool {
		switch {
		case g.room == nil:
		case !checked[g.room]:
			violation("ghost %d is attached to room %d outside the building", g.id, g.room.id)
		case seen[g] != g.room:
			violation("ghost %d points at room %d but is not in its roster", g.id, g.room.id)
		}
		return true
	})

	return errors.Join(errs...)
}
