// Package sample populates a Building with the demonstration rooms and
// ghosts.
package sample

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/haunt/internal/observability"
	"github.com/mesh-intelligence/haunt/pkg/types"
)

// sampleRoom describes a room to create.
type sampleRoom struct {
	id   int
	name string
}

// sampleGhost describes a ghost to create and the room it haunts.
type sampleGhost struct {
	ghostType  string
	roomID     int
	likelihood float64
}

// Room ids of the sample building.
const (
	bedroom    = 1
	bathroom   = 2
	livingRoom = 3
	kitchen    = 4
	basement   = 5
	garage     = 6
	hallway    = 7
	staircase  = 8
)

var sampleRooms = []sampleRoom{
	{bedroom, "Bedroom"},
	{bathroom, "Bathroom"},
	{livingRoom, "Living Room"},
	{kitchen, "Kitchen"},
	{basement, "Basement"},
	{garage, "Garage"},
	{hallway, "Hallway"},
	{staircase, "Staircase"},
}

// sampleGhosts are created in this order, so ids follow it.
var sampleGhosts = []sampleGhost{
	{"Banshee", kitchen, 82.51},
	{"Banshee", bathroom, 19.99},

	{"Wraith", basement, 72.21},
	{"Wraith", garage, 6.01},
	{"Wraith", hallway, 97.99},
	{"Wraith", staircase, 47.03},
	{"Wraith", bedroom, 88.78},

	{"Phantom", livingRoom, 20.04},
	{"Phantom", basement, 18.71},
	{"Phantom", hallway, 65.04},

	{"Danny", livingRoom, 20.07},
	{"Danny", basement, 18.72},
	{"Danny", hallway, 65.05},

	{"Bullies", basement, 10.62},
	{"Bullies", kitchen, 98.74},
	{"Bullies", staircase, 55.43},
	{"Bullies", bathroom, 27.75},
	{"Bullies", garage, 98.85},

	{"Yokai", bathroom, 87.67},

	{"Poltergeist", livingRoom, 87.67},
	{"Poltergeist", bedroom, 19.82},
}

// RoomCount and GhostCount describe one full load.
var (
	RoomCount  = len(sampleRooms)
	GhostCount = len(sampleGhosts)
)

// Result summarizes one Load.
type Result struct {
	RoomsAdded    int `json:"rooms_added"`
	RoomsRejected int `json:"rooms_rejected"`
	GhostsCreated int `json:"ghosts_created"`
	GhostsSkipped int `json:"ghosts_skipped"`
}

// Loader adds the sample data to a building, logging and counting what it
// does.
type Loader struct {
	log     zerolog.Logger
	metrics *observability.Metrics
}

// NewLoader returns a Loader. metrics may be nil.
func NewLoader(log zerolog.Logger, metrics *observability.Metrics) *Loader {
	return &Loader{log: log, metrics: metrics}
}

// Load creates the sample rooms and ghosts in b. It can run more than once;
// each run adds a fresh set. Rooms the building cannot hold are logged at
// warn level and dropped along with the ghosts that would haunt them, so
// every created ghost ends up registered and attached inside the building.
func (l *Loader) Load(b *types.Building) (Result, error) {
	var res Result
	if b == nil {
		return res, nil
	}

	rooms := make(map[int]*types.Room, len(sampleRooms))
	for _, sr := range sampleRooms {
		room, err := types.NewRoom(sr.id, sr.name)
		if err != nil {
			return res, fmt.Errorf("creating room %s: %w", sr.name, err)
		}
		if err := b.AddRoom(room); err != nil {
			if errors.Is(err, types.ErrCapacityExceeded) {
				l.log.Warn().Int("room_id", sr.id).Str("room", sr.name).
					Int("capacity", b.Rooms().Cap()).Msg("room array is full, room not added")
				l.metrics.RecordRoomRejected()
				room.Teardown()
				res.RoomsRejected++
				continue
			}
			return res, fmt.Errorf("adding room %s: %w", sr.name, err)
		}
		l.metrics.RecordRoomAdded()
		rooms[sr.id] = room
		res.RoomsAdded++
	}

	for _, sg := range sampleGhosts {
		room, ok := rooms[sg.roomID]
		if !ok {
			res.GhostsSkipped++
			continue
		}
		g, err := b.NewGhost(sg.ghostType)
		if err != nil {
			return res, fmt.Errorf("creating ghost %s: %w", sg.ghostType, err)
		}
		l.metrics.RecordGhostRegistered()
		room.AttachGhost(g, sg.likelihood)
		l.metrics.RecordAttachment(room.Name())
		res.GhostsCreated++
	}

	l.log.Debug().
		Int("rooms_added", res.RoomsAdded).
		Int("rooms_rejected", res.RoomsRejected).
		Int("ghosts_created", res.GhostsCreated).
		Int("ghosts_skipped", res.GhostsSkipped).
		Msg("sample data loaded")
	return res, nil
}
