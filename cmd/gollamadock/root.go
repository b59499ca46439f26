// cmd/gollamadock/root.go
package gollamadock

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/gollamadock/containers"
	"github.com/mwiater/gollamadock/internal/execrunner"
)

// rootCmd is the base Cobra command for the gollamadock application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:   "gollamadock",
	Short: "Manage the local ollama and open-webui containers",
	Long:  `gollamadock inspects, updates, and recreates the Docker containers serving a local LLM stack (the ollama engine and its open-webui frontend), and registers new models from local Modelfiles.`,
}

// cfgFile stores the config file path bound to the persistent --config flag.
var cfgFile string

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newManager loads the configuration named by the --config flag and
// builds the container Manager all commands operate through.
func newManager() (*containers.Manager, error) {
	cfg, err := containers.LoadConfig(viper.GetString("config"))
	if err != nil {
		return nil, err
	}
	return containers.NewManager(cfg, execrunner.NewExecRunner(cfg.Bridge)), nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.json", "config file (optional; built-in defaults apply when absent)")
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}
