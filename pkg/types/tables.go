package types

// Standard table names.
const (
	GhostsTable = "ghosts"
	RoomsTable  = "rooms"
)

// StandardTableNames lists all standard table names for enumeration.
var StandardTableNames = []string{
	GhostsTable,
	RoomsTable,
}
