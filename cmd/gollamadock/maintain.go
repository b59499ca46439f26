// cmd/gollamadock/maintain.go
package gollamadock

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/gollamadock/containers"
)

var maintainOpts containers.MaintainOptions

// maintainCmd is the combined inspect/update entry point. With no flags
// it only lists all containers. With flags, the selected actions run in
// a fixed order (version checks before updates, ollama before the web
// UI), each independently of the others' outcomes; the command exits
// non-zero if any selected action failed.
var maintainCmd = &cobra.Command{
	Use:   "maintain",
	Short: "Inspect or update the managed containers in one invocation",
	Long: `The 'maintain' command combines the version checks and container updates behind independent flags.
Without flags it lists all containers (running and stopped) and performs no other action.
Any combination of flags may be given; each selected action runs exactly once regardless of the others' outcomes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		m, err := newManager()
		if err != nil {
			return err
		}
		return m.Maintain(cmd.Context(), maintainOpts)
	},
}

func init() {
	rootCmd.AddCommand(maintainCmd)

	maintainCmd.Flags().BoolVar(&maintainOpts.ShowOllamaVersion, "ollama-version", false, "show the ollama engine version from its container")
	maintainCmd.Flags().BoolVar(&maintainOpts.ShowWebUIVersion, "webui-version", false, "show the open-webui version from its container")
	maintainCmd.Flags().BoolVar(&maintainOpts.UpdateOllama, "update-ollama", false, "pull the latest ollama image and recreate its container")
	maintainCmd.Flags().BoolVar(&maintainOpts.UpdateWebUI, "update-webui", false, "pull the latest open-webui image and recreate its container")
}
