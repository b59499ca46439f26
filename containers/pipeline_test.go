package containers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPipeline_StopsAtFirstFailure(t *testing.T) {
	var ran []string
	step := func(name string, err error) Step {
		return Step{Name: name, Run: func(ctx context.Context) error {
			ran = append(ran, name)
			return err
		}}
	}

	err := runPipeline(context.Background(), "update ollama", []Step{
		step("pull image", nil),
		step("stop container", errors.New("daemon unreachable")),
		step("run container", nil),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `update ollama: step "stop container" failed`)
	assert.Equal(t, []string{"pull image", "stop container"}, ran)
}

func TestRunPipeline_AllStepsRunOnSuccess(t *testing.T) {
	count := 0
	steps := []Step{
		{Name: "a", Run: func(ctx context.Context) error { count++; return nil }},
		{Name: "b", Run: func(ctx context.Context) error { count++; return nil }},
	}
	require.NoError(t, runPipeline(context.Background(), "noop", steps))
	assert.Equal(t, 2, count)
}
