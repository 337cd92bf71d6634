package types

import (
	"fmt"
	"strings"
)

// MaxRooms is the fixed capacity of a RoomArray.
const MaxRooms = 16

// RoomArray is an ordered, fixed-capacity collection of rooms. Each room it
// holds is owned by the array.
type RoomArray struct {
	elements [MaxRooms]*Room
	size     int
}

// NewRoomArray returns an empty array.
func NewRoomArray() *RoomArray {
	return &RoomArray{}
}

// Add appends room at the next free slot. When the array is full it returns
// ErrCapacityExceeded and leaves the array unchanged; the caller keeps the
// room. A nil room is a no-op.
func (a *RoomArray) Add(room *Room) error {
	if a == nil || room == nil {
		return nil
	}
	if a.size >= MaxRooms {
		return fmt.Errorf("room %d %q: %w", room.id, room.name, ErrCapacityExceeded)
	}
	a.elements[a.size] = room
	a.size++
	return nil
}

// Len returns the number of rooms held.
func (a *RoomArray) Len() int { return a.size }

// Cap returns the fixed capacity.
func (a *RoomArray) Cap() int { return MaxRooms }

// At returns the room at index i, or nil when i is out of range.
func (a *RoomArray) At(i int) *Room {
	if i < 0 || i >= a.size {
		return nil
	}
	return a.elements[i]
}

// Rooms returns the occupied slots in index order.
func (a *RoomArray) Rooms() []*Room {
	out := make([]*Room, a.size)
	copy(out, a.elements[:a.size])
	return out
}

// Find returns the first room with the given id, or nil.
func (a *RoomArray) Find(id int) *Room {
	for i := 0; i < a.size; i++ {
		if a.elements[i].id == id {
			return a.elements[i]
		}
	}
	return nil
}

// Contains reports whether room occupies a slot.
func (a *RoomArray) Contains(room *Room) bool {
	for i := 0; i < a.size; i++ {
		if a.elements[i] == room {
			return true
		}
	}
	return false
}

// Render concatenates the rendering of every room in index order.
func (a *RoomArray) Render() string {
	var b strings.Builder
	for i := 0; i < a.size; i++ {
		b.WriteString(a.elements[i].Render())
	}
	return b.String()
}

// Teardown tears down every room (roster nodes only) and empties the array.
func (a *RoomArray) Teardown() {
	if a == nil {
		return
	}
	for i := 0; i < a.size; i++ {
		a.elements[i].Teardown()
		a.elements[i] = nil
	}
	a.size = 0
}
