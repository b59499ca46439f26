package execrunner

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner_Success(t *testing.T) {
	r := NewExecRunner(nil)
	res, err := r.Run(context.Background(), "sh", "-c", "echo out; echo err >&2")
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "out\n", res.Stdout)
	assert.Equal(t, "err\n", res.Stderr)
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	r := NewExecRunner(nil)
	res, err := r.Run(context.Background(), "sh", "-c", "echo boom >&2; exit 3")
	require.Error(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.Contains(t, err.Error(), "status 3")
	assert.Contains(t, err.Error(), "boom")
}

func TestExecRunner_MissingBinary(t *testing.T) {
	r := NewExecRunner(nil)
	res, err := r.Run(context.Background(), "definitely-not-a-real-binary")
	require.Error(t, err)
	assert.Equal(t, -1, res.ExitCode)
	assert.True(t, strings.Contains(err.Error(), "could not run"))
}

func TestExecRunner_PrefixBridgesCommand(t *testing.T) {
	// "env" as a prefix is a stand-in for a shell bridge like "wsl": the
	// real command becomes an argument of the bridge binary.
	r := NewExecRunner([]string{"env"})
	res, err := r.Run(context.Background(), "echo", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", res.Stdout)
}
