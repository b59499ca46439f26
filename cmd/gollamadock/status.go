// cmd/gollamadock/status.go
package gollamadock

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/gollamadock/cli"
)

var startGUI = cli.StartGUI

// statusCmd launches the interactive container status dashboard.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Open the interactive container status dashboard",
	Long:  `The 'status' command opens a terminal dashboard listing all containers. Selecting one shows its inspect summary and, for the managed services, the service's own version.`,
	Run: func(cmd *cobra.Command, args []string) {
		startGUI(viper.GetString("config"))
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
