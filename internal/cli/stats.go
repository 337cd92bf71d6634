package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	var loads int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Load the sample building and print mutation counters",
		Long: `Stats loads the sample data --loads times into one building and prints
the counters recorded along the way. Loads past the room capacity show up
as rejected rooms.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if loads < 1 {
				return fmt.Errorf("--loads must be at least 1, got %d", loads)
			}
			for i := 0; i < loads; i++ {
				if _, err := a.loadSample(); err != nil {
					return err
				}
			}

			samples, err := a.metrics.Snapshot()
			if err != nil {
				return &sysError{err}
			}
			out := cmd.OutOrStdout()
			if a.cfg.JSON {
				return writeJSON(out, samples)
			}
			for _, s := range samples {
				fmt.Fprintf(out, "%s %g\n", s.Key(), s.Value)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&loads, "loads", 1, "number of times to load the sample data")
	return cmd
}
