// cmd/gollamadock/version_webui.go
package gollamadock

import (
	"github.com/spf13/cobra"
)

// versionWebUICmd prints the open-webui version from its container.
var versionWebUICmd = &cobra.Command{
	Use:   "webui",
	Short: "Show the open-webui version",
	Long:  `The 'version webui' command reads the web UI's package metadata from inside its running container and prints the version field.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		m, err := newManager()
		if err != nil {
			return err
		}
		_, err = m.WebUIVersion(cmd.Context())
		return err
	},
}

func init() {
	versionCmd.AddCommand(versionWebUICmd)
}
