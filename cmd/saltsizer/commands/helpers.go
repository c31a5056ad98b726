package commands

import "github.com/spf13/cobra"

// changedParams returns, with their leading dashes, the flags from names the
// user set explicitly on cmd.
func changedParams(cmd *cobra.Command, names ...string) []string {
	var changed []string
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			changed = append(changed, "--"+name)
		}
	}
	return changed
}
