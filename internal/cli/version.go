package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/haunt/pkg/haunt"
)

const modulePath = "github.com/mesh-intelligence/haunt"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the haunt version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "haunt v%s\nmodule: %s\n", haunt.Version, modulePath)
			return nil
		},
	}
}
