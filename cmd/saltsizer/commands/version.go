package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped at build time:
// -ldflags "-X saltsizer/cmd/saltsizer/commands.version=v1.0.0"
var version = "dev"

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the saltsizer version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "saltsizer "+version)
		},
	}
}
