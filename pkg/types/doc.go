// Package types defines the in-memory model for a haunted building: ghosts,
// the owning ghost list and the non-owning ghost view, rooms, the
// fixed-capacity room array, and the building that ties them together.
//
// Ownership is expressed by type. The building's master GhostList is the
// only owner of ghost data and the only place a ghost is released. A room
// holds its roster in a GhostView, which references ghosts but cannot
// release them. None of the types are safe for concurrent use.
package types
