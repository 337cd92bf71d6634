package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/haunt/internal/roster"
	"github.com/mesh-intelligence/haunt/pkg/types"
)

// showKinds maps the singular argument to its table.
var showKinds = map[string]string{
	"ghost": types.GhostsTable,
	"room":  types.RoomsTable,
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <ghost|room> <id>",
		Short: "Display one ghost or room from the sample building",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tableName, ok := showKinds[args[0]]
			if !ok {
				return fmt.Errorf("unknown kind %q (valid: ghost, room): %w", args[0], types.ErrTableNotFound)
			}
			if _, err := a.loadSample(); err != nil {
				return err
			}

			table, err := roster.New(a.building).GetTable(tableName)
			if err != nil {
				return err
			}
			entity, err := table.Get(args[1])
			if err != nil {
				return fmt.Errorf("show %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			if a.cfg.JSON {
				records := roster.Records([]any{entity})
				return writeJSON(out, records[0])
			}
			switch e := entity.(type) {
			case *types.Ghost:
				fmt.Fprintf(out, "ID:         %d\n", e.ID())
				fmt.Fprintf(out, "Type:       %s\n", e.Type())
				fmt.Fprintf(out, "Likelihood: %.2f%%\n", e.Likelihood())
				fmt.Fprintf(out, "Room:       %s\n", e.RoomName())
			case *types.Room:
				fmt.Fprint(out, e.Render())
			}
			return nil
		},
	}
}
