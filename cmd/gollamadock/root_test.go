package gollamadock

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiater/gollamadock/containers"
)

func TestRoot_SubcommandsPresent(t *testing.T) {
	have := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		have[c.Name()] = true
		sub := map[string]bool{}
		for _, sc := range c.Commands() {
			sub[sc.Name()] = true
		}
		switch c.Name() {
		case "list":
			if !sub["containers"] {
				t.Fatalf("list subcommands missing: %v", sub)
			}
		case "version":
			if !sub["ollama"] || !sub["webui"] {
				t.Fatalf("version subcommands missing: %v", sub)
			}
		case "update":
			if !sub["ollama"] || !sub["webui"] || !sub["all"] {
				t.Fatalf("update subcommands missing: %v", sub)
			}
		case "create":
			if !sub["model"] {
				t.Fatalf("create subcommands missing: %v", sub)
			}
		}
	}
	for _, want := range []string{"maintain", "list", "version", "update", "create", "status", "doctor"} {
		if !have[want] {
			t.Fatalf("missing subcommand %s", want)
		}
	}
}

func TestCommands_HaveDescriptions(t *testing.T) {
	var check func(*cobra.Command)
	check = func(cmd *cobra.Command) {
		if cmd.Short == "" || cmd.Long == "" {
			t.Fatalf("command %s missing Short/Long", cmd.Name())
		}
		for _, sc := range cmd.Commands() {
			check(sc)
		}
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == "help" || c.Name() == "completion" {
			continue
		}
		check(c)
	}
}

func TestMaintain_HasIndependentFlags(t *testing.T) {
	for _, name := range []string{"ollama-version", "webui-version", "update-ollama", "update-webui"} {
		require.NotNil(t, maintainCmd.Flags().Lookup(name), "missing flag --%s", name)
	}
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	return rootCmd.Execute()
}

func TestCreateModel_RejectsWrongArgumentCount(t *testing.T) {
	err := execute(t, "create", "model", "just-a-name")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 arg")

	err = execute(t, "create", "model", "name", "file", "extra")
	require.Error(t, err)
}

func TestCreateModel_ReportsMissingModelFile(t *testing.T) {
	err := execute(t, "create", "model", "llama-custom", "/definitely/missing/Modelfile")
	require.Error(t, err)
	assert.ErrorIs(t, err, containers.ErrModelFileNotFound)
	assert.Contains(t, err.Error(), "/definitely/missing/Modelfile")
}
