// cmd/gollamadock/create.go
package gollamadock

import (
	"github.com/spf13/cobra"
)

// createCmd represents the 'create' command group for registering
// resources inside the managed containers.
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Group commands for creating resources",
	Long:  `The 'create' command groups subcommands that register new resources, such as models, inside the managed containers.`,
}

func init() {
	rootCmd.AddCommand(createCmd)
}
