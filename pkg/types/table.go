package types

import "errors"

// Table provides read access to a single entity type held by a Building.
// Get and Fetch return any; callers type-assert to *Ghost or *Room.
type Table interface {
	// Get retrieves the entity with the given ID.
	// Returns ErrNotFound if no entity exists with that ID and ErrInvalidID
	// if the ID does not parse.
	Get(id string) (any, error)

	// Fetch returns all entities matching the filter in table order. An
	// empty filter returns every entity in the table.
	Fetch(filter Filter) ([]any, error)
}

// Filter maps a field name to the value an entity must carry. All entries
// must match (AND).
type Filter map[string]any

// Table operation errors.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrInvalidID     = errors.New("invalid entity ID")
	ErrInvalidFilter = errors.New("invalid filter")
	ErrTableNotFound = errors.New("table not found")
)

// Entity errors.
var (
	ErrInvalidLabel     = errors.New("ghost type must not be empty")
	ErrLabelTooLong     = errors.New("ghost type is too long")
	ErrInvalidName      = errors.New("room name must not be empty")
	ErrNameTooLong      = errors.New("room name is too long")
	ErrNilAllocator     = errors.New("id allocator is nil")
	ErrGhostRegistered  = errors.New("ghost is already registered")
	ErrGhostReleased    = errors.New("ghost has been released")
	ErrCapacityExceeded = errors.New("room array is full")
	ErrInvariant        = errors.New("invariant violated")
)
