// Package testutil provides testing utilities for strasak.
package testutil

import (
	"context"
	"fmt"
	"os/exec"
)

// MockHostFunc creates a command factory that replays the given text as the
// automation host's stdout and exits successfully.
// Usage: host.CommandContext = testutil.MockHostFunc(eventLines)
func MockHostFunc(output string) func(ctx context.Context, name string, args ...string) *exec.Cmd {
	return func(ctx context.Context, name string, args ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "echo", "-n", output)
	}
}

// MockHostFailureFunc creates a command factory whose process prints the
// given stderr text and exits non-zero, like a crashed automation host.
func MockHostFailureFunc(stderr string) func(ctx context.Context, name string, args ...string) *exec.Cmd {
	return func(ctx context.Context, name string, args ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "sh", "-c", fmt.Sprintf("printf '%%s' %q >&2; exit 1", stderr))
	}
}
