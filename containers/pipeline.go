// containers/pipeline.go
package containers

import (
	"context"
	"fmt"
)

// Step is one fallible stage of a multi-command action, named so a
// failure can be attributed to the exact external command that caused
// it.
type Step struct {
	// Name identifies the step in error messages, e.g. "pull image".
	Name string
	// Run performs the step.
	Run func(ctx context.Context) error
}

// runPipeline executes the steps in order and stops at the first
// failure. The returned error names the action and the failing step.
//
// The shell scripts this tool replaces kept going after failed stop/rm
// commands; that was a latent bug, so a failed step now aborts the rest
// of its action.
func runPipeline(ctx context.Context, action string, steps []Step) error {
	for _, step := range steps {
		if err := step.Run(ctx); err != nil {
			return fmt.Errorf("%s: step %q failed: %w", action, step.Name, err)
		}
	}
	return nil
}
