package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load the sample building and verify its invariants",
		Long: `Check loads the sample building and verifies that every ghost is
registered once, each room roster is sorted by descending likelihood,
each ghost sits in at most one room, and the room array is within capacity.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.loadSample(); err != nil {
				return err
			}
			return a.runCheck(cmd.OutOrStdout())
		},
	}
}

// runCheck reports the building's invariant check to w. A violation is
// returned as an error after it is printed.
func (a *app) runCheck(w io.Writer) error {
	err := a.building.Check()
	if a.cfg.JSON {
		report := map[string]any{
			"ok":     err == nil,
			"rooms":  a.building.Rooms().Len(),
			"ghosts": a.building.Ghosts().Len(),
		}
		if err != nil {
			report["error"] = err.Error()
		}
		if werr := writeJSON(w, report); werr != nil {
			return werr
		}
	} else if err == nil {
		fmt.Fprintf(w, "OK: %d rooms, %d ghosts, all invariants hold\n",
			a.building.Rooms().Len(), a.building.Ghosts().Len())
	}
	if err != nil {
		return fmt.Errorf("check building: %w", err)
	}
	return nil
}
