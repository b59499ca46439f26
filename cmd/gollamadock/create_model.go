// cmd/gollamadock/create_model.go
package gollamadock

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/gollamadock/containers"
)

// createModelCmd registers a new model in the ollama container from a
// local Modelfile. The argument count is validated by cobra (usage is
// printed on a mismatch); the file's existence is validated before any
// external command runs.
var createModelCmd = &cobra.Command{
	Use:   "model NAME MODELFILE",
	Short: "Register a model in the ollama container from a local Modelfile",
	Long:  `The 'create model' command copies the given Modelfile into the ollama container's temporary directory and runs the engine's model-creation subcommand against it, registering the model under NAME.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		m, err := newManager()
		if err != nil {
			return err
		}
		return m.RegisterModel(cmd.Context(), containers.ModelRequest{
			ModelName:     args[0],
			ModelFilePath: args[1],
		})
	},
}

func init() {
	createCmd.AddCommand(createModelCmd)
}
