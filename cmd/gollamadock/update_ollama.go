// cmd/gollamadock/update_ollama.go
package gollamadock

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/gollamadock/containers"
)

// updateOllamaCmd pulls the latest ollama image and recreates its
// container.
var updateOllamaCmd = &cobra.Command{
	Use:   "ollama",
	Short: "Update the ollama container",
	Long:  `The 'update ollama' command pulls the latest ollama image, stops and removes the existing container if present, and starts a fresh one with GPU access, the persistent model volume, and the engine port mapping.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		m, err := newManager()
		if err != nil {
			return err
		}
		return m.UpdateByName(cmd.Context(), containers.OllamaName)
	},
}

func init() {
	updateCmd.AddCommand(updateOllamaCmd)
}
