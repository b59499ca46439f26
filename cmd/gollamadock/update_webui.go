// cmd/gollamadock/update_webui.go
package gollamadock

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/gollamadock/containers"
)

// updateWebUICmd pulls the latest open-webui image and recreates its
// container.
var updateWebUICmd = &cobra.Command{
	Use:   "webui",
	Short: "Update the open-webui container",
	Long:  `The 'update webui' command pulls the latest CUDA-enabled open-webui image, stops and removes the existing container if present, and starts a fresh one with GPU access, the host-gateway alias, the persistent data volume, the UI port mapping, and an always-restart policy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		m, err := newManager()
		if err != nil {
			return err
		}
		return m.UpdateByName(cmd.Context(), containers.WebUIName)
	},
}

func init() {
	updateCmd.AddCommand(updateWebUICmd)
}
