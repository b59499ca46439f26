// cmd/gollamadock/update.go
package gollamadock

import (
	"github.com/spf13/cobra"
)

// updateCmd represents the 'update' command group for recreating the
// managed containers from their latest images.
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Group commands for updating the managed containers",
	Long:  `The 'update' command groups subcommands that pull the latest image for a managed container and recreate it with its fixed run options.`,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
