// cmd/gollamadock/version.go
package gollamadock

import (
	"github.com/spf13/cobra"
)

// versionCmd represents the 'version' command group for querying the
// versions of the managed services.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Group commands for querying service versions",
	Long:  `The 'version' command groups subcommands that query the version of a managed service from inside its running container.`,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
