package types

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildingRoundTrip(t *testing.T) {
	b := NewBuilding()
	room, err := NewRoom(1, "Bedroom")
	require.NoError(t, err)
	require.NoError(t, b.AddRoom(room))

	g, err := NewGhost(b.IDs(), "Wraith")
	require.NoError(t, err)
	require.NoError(t, b.RegisterGhost(g))
	room.AttachGhost(g, 88.78)

	roster := room.Ghosts().Ghosts()
	require.Len(t, roster, 1)
	assert.Same(t, g, roster[0])
	assert.Equal(t, 88.78, roster[0].Likelihood())
	assert.Same(t, room, g.Room())

	count := 0
	b.Ghosts().Each(func(x *Ghost) bool {
		if x == g {
			count++
		}
		return true
	})
	assert.Equal(t, 1, count, "master list holds the ghost exactly once")
	assert.NoError(t, b.Check())
}

func TestBuildingNewGhost(t *testing.T) {
	b := NewBuilding()
	g1, err := b.NewGhost("Banshee")
	require.NoError(t, err)
	g2, err := b.NewGhost("Banshee")
	require.NoError(t, err)

	assert.Equal(t, GhostInitialID, g1.ID())
	assert.Equal(t, g1.ID()+1, g2.ID())
	assert.Equal(t, 2, b.Ghosts().Len())
	assert.Same(t, g2, b.Ghost(g2.ID()))
	assert.Nil(t, b.Ghost(1))

	_, err = b.NewGhost("")
	assert.ErrorIs(t, err, ErrInvalidLabel)
	assert.Equal(t, 2, b.Ghosts().Len())
}

func TestBuildingsHaveIndependentIDs(t *testing.T) {
	b1 := NewBuilding()
	b2 := NewBuildingWithAllocator(NewIDAllocator(500))
	g1, err := b1.NewGhost("Wraith")
	require.NoError(t, err)
	g2, err := b2.NewGhost("Wraith")
	require.NoError(t, err)
	assert.Equal(t, GhostInitialID, g1.ID())
	assert.Equal(t, 500, g2.ID())

	b3 := NewBuildingWithAllocator(nil)
	assert.Equal(t, GhostInitialID, b3.IDs().Peek())
}

func TestBuildingRegisterGhost(t *testing.T) {
	b := NewBuilding()
	g, err := NewGhost(b.IDs(), "Danny")
	require.NoError(t, err)

	require.NoError(t, b.RegisterGhost(g))
	err = b.RegisterGhost(g)
	assert.ErrorIs(t, err, ErrGhostRegistered)
	assert.Equal(t, 1, b.Ghosts().Len())

	require.NoError(t, b.RegisterGhost(nil))
	assert.Equal(t, 1, b.Ghosts().Len(), "nil ghost is a no-op")

	require.NoError(t, b.Teardown())
	other := NewBuilding()
	assert.ErrorIs(t, other.RegisterGhost(g), ErrGhostReleased)
}

func TestBuildingAddRoomCapacity(t *testing.T) {
	b := NewBuilding()
	for i := 1; i <= MaxRooms; i++ {
		r, err := NewRoom(i, fmt.Sprintf("Room %d", i))
		require.NoError(t, err)
		require.NoError(t, b.AddRoom(r))
	}

	extra, err := NewRoom(MaxRooms+1, "Attic")
	require.NoError(t, err)
	assert.ErrorIs(t, b.AddRoom(extra), ErrCapacityExceeded)
	assert.Equal(t, MaxRooms, b.Rooms().Len())
	assert.Nil(t, b.Room(MaxRooms+1))
	assert.Same(t, b.Rooms().At(0), b.Room(1))
}

func TestBuildingTeardownOwnership(t *testing.T) {
	b := NewBuilding()
	kitchen, err := NewRoom(4, "Kitchen")
	require.NoError(t, err)
	bathroom, err := NewRoom(2, "Bathroom")
	require.NoError(t, err)
	require.NoError(t, b.AddRoom(kitchen))
	require.NoError(t, b.AddRoom(bathroom))

	banshee, err := b.NewGhost("Banshee")
	require.NoError(t, err)
	kitchen.AttachGhost(banshee, 82.51)
	bullies, err := b.NewGhost("Bullies")
	require.NoError(t, err)
	bathroom.AttachGhost(bullies, 27.75)
	loose, err := b.NewGhost("Poltergeist")
	require.NoError(t, err)

	t.Run("room array teardown leaves ghosts valid", func(t *testing.T) {
		b.Rooms().Teardown()
		assert.Zero(t, b.Rooms().Len())
		assert.Equal(t, 3, b.Ghosts().Len())
		for _, g := range b.Ghosts().Ghosts() {
			assert.False(t, g.Released())
		}
		assert.Equal(t, "Banshee", banshee.Type())
		assert.Equal(t, 82.51, banshee.Likelihood())
		assert.Equal(t, GhostInitialID, banshee.ID())
		assert.Equal(t, 27.75, bullies.Likelihood())
		assert.NoError(t, b.Check())
	})

	t.Run("building teardown releases each ghost once", func(t *testing.T) {
		require.NoError(t, b.Teardown())
		assert.Zero(t, b.Ghosts().Len())
		for _, g := range []*Ghost{banshee, bullies, loose} {
			assert.True(t, g.Released())
		}
	})

	t.Run("teardown twice is harmless", func(t *testing.T) {
		assert.NoError(t, b.Teardown())
	})
}

func TestBuildingTeardownWithRooms(t *testing.T) {
	b := NewBuilding()
	room, err := NewRoom(3, "Living Room")
	require.NoError(t, err)
	require.NoError(t, b.AddRoom(room))
	g, err := b.NewGhost("Phantom")
	require.NoError(t, err)
	room.AttachGhost(g, 20.04)

	require.NoError(t, b.Teardown())
	assert.True(t, g.Released())
	assert.Zero(t, room.Ghosts().Len())
	assert.Zero(t, b.Rooms().Len())
}

func TestBuildingCheck(t *testing.T) {
	build := func(t *testing.T) (*Building, *Room, []*Ghost) {
		t.Helper()
		b := NewBuilding()
		room, err := NewRoom(5, "Basement")
		require.NoError(t, err)
		require.NoError(t, b.AddRoom(room))
		var gs []*Ghost
		for i, l := range []float64{72.21, 18.71, 10.62} {
			g, err := b.NewGhost(fmt.Sprintf("G%d", i))
			require.NoError(t, err)
			room.AttachGhost(g, l)
			gs = append(gs, g)
		}
		return b, room, gs
	}

	t.Run("consistent building passes", func(t *testing.T) {
		b, _, _ := build(t)
		assert.NoError(t, b.Check())
	})

	t.Run("out of order roster is reported", func(t *testing.T) {
		b, _, gs := build(t)
		gs[2].likelihood = 99
		err := b.Check()
		assert.ErrorIs(t, err, ErrInvariant)
		assert.Contains(t, err.Error(), "out of order")
	})

	t.Run("unregistered ghost in roster is reported", func(t *testing.T) {
		b, room, _ := build(t)
		stray, err := NewGhost(NewIDAllocator(9000), "Stray")
		require.NoError(t, err)
		room.AttachGhost(stray, 1)
		err = b.Check()
		assert.ErrorIs(t, err, ErrInvariant)
		assert.Contains(t, err.Error(), "not registered")
	})

	t.Run("ghost attached outside the building is reported", func(t *testing.T) {
		b, _, gs := build(t)
		outside, err := NewRoom(99, "Shed")
		require.NoError(t, err)
		outside.AttachGhost(gs[0], 50)
		err = b.Check()
		assert.ErrorIs(t, err, ErrInvariant)
		assert.Contains(t, err.Error(), "outside the building")
	})

	t.Run("ghost in two rosters is reported", func(t *testing.T) {
		b, _, gs := build(t)
		other, err := NewRoom(6, "Garage")
		require.NoError(t, err)
		require.NoError(t, b.AddRoom(other))
		other.Ghosts().InsertSorted(gs[1])
		err = b.Check()
		assert.ErrorIs(t, err, ErrInvariant)
		assert.Contains(t, err.Error(), "is in rooms 5 and 6")
	})

	t.Run("duplicate registration is reported", func(t *testing.T) {
		b, _, gs := build(t)
		b.Ghosts().Append(gs[0])
		err := b.Check()
		assert.ErrorIs(t, err, ErrInvariant)
		assert.Contains(t, err.Error(), "registered more than once")
	})
}
