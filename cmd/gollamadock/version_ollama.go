// cmd/gollamadock/version_ollama.go
package gollamadock

import (
	"github.com/spf13/cobra"
)

// versionOllamaCmd prints the ollama engine version from its container.
var versionOllamaCmd = &cobra.Command{
	Use:   "ollama",
	Short: "Show the ollama engine version",
	Long:  `The 'version ollama' command runs the engine's own version subcommand inside the running ollama container and prints the result.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		m, err := newManager()
		if err != nil {
			return err
		}
		_, err = m.OllamaVersion(cmd.Context())
		return err
	},
}

func init() {
	versionCmd.AddCommand(versionOllamaCmd)
}
