// cmd/gollamadock/doctor.go
package gollamadock

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/gollamadock/containers"
	"github.com/mwiater/gollamadock/internal/execrunner"
)

var doctorVerbose bool

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// doctorCmd probes the whole serving stack and prints a per-check
// report. It exits non-zero if any check failed.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the health of the container runtime and managed services",
	Long:  `The 'doctor' command probes the docker runtime, the run state of each managed container, and the HTTP endpoints of the ollama engine and the open-webui frontend, then prints a pass/fail report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		cfg, err := containers.LoadConfig(viper.GetString("config"))
		if err != nil {
			return err
		}
		if doctorVerbose || cfg.Debug {
			pp.Println(cfg)
		}

		m := containers.NewManager(cfg, execrunner.NewExecRunner(cfg.Bridge))
		results := m.Doctor(cmd.Context())

		failed := 0
		for _, res := range results {
			if res.OK {
				fmt.Printf("%s %s: %s\n", passStyle.Render("PASS"), res.Name, res.Detail)
			} else {
				failed++
				fmt.Printf("%s %s: %s\n", failStyle.Render("FAIL"), res.Name, res.Detail)
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d checks failed", failed, len(results))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVarP(&doctorVerbose, "verbose", "v", false, "dump the effective configuration before running checks")
}
