package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/haunt/internal/roster"
	"github.com/mesh-intelligence/haunt/pkg/types"
)

func newGhostsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ghosts [filter...]",
		Short: "List every ghost in the sample building",
		Long: `List prints the building's master ghost list in creation order.

Filters are key=value pairs; multiple filters are ANDed together.
Fields: id, type, room, room_id, min_likelihood, limit.

Example:
  haunt ghosts
  haunt ghosts type=Wraith
  haunt ghosts room=Kitchen min_likelihood=50`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd, types.GhostsTable, args)
		},
	}
}

func newRoomsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rooms [filter...]",
		Short: "List every room in the sample building with its ghosts",
		Long: `Rooms prints each room followed by its ghosts, most likely first.

Filters are key=value pairs; multiple filters are ANDed together.
Fields: id, name, limit.

Example:
  haunt rooms
  haunt rooms name=Basement`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd, types.RoomsTable, args)
		},
	}
}

// runList loads the sample building and prints the filtered table.
func (a *app) runList(cmd *cobra.Command, tableName string, args []string) error {
	filter, err := parseFilter(args)
	if err != nil {
		return err
	}
	if _, err := a.loadSample(); err != nil {
		return err
	}

	table, err := roster.New(a.building).GetTable(tableName)
	if err != nil {
		return fmt.Errorf("get table (valid: %s): %w", validTableNamesStr, err)
	}
	entities, err := table.Fetch(filter)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", tableName, err)
	}

	out := cmd.OutOrStdout()
	if a.cfg.JSON {
		return writeJSON(out, roster.Records(entities))
	}
	if tableName == types.RoomsTable {
		renderRooms(out, entities)
	} else {
		renderGhostLines(out, entities)
	}
	return nil
}
