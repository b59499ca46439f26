// cmd/gollamadock/update_all.go
package gollamadock

import (
	"github.com/spf13/cobra"
)

// updateAllCmd updates every configured container. Each update runs
// regardless of the others' outcomes; the command exits non-zero if any
// of them failed.
var updateAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Update every managed container",
	Long:  `The 'update all' command runs the update cycle for every configured container profile, ollama first. A failure in one container's update does not skip the others.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		m, err := newManager()
		if err != nil {
			return err
		}
		return m.UpdateAll(cmd.Context())
	},
}

func init() {
	updateCmd.AddCommand(updateAllCmd)
}
