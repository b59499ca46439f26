// cmd/gollamadock/list_containers.go
package gollamadock

import (
	"github.com/spf13/cobra"
)

// listContainersCmd lists all containers, running and stopped.
var listContainersCmd = &cobra.Command{
	Use:   "containers",
	Short: "List all containers, running and stopped",
	Long:  `The 'list containers' command prints the full container listing from the runtime, including stopped containers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		m, err := newManager()
		if err != nil {
			return err
		}
		return m.List(cmd.Context())
	},
}

func init() {
	listCmd.AddCommand(listContainersCmd)
}
