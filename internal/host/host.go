// Package host drives the vendor project-automation SDK through its
// automation host executable. One host process is spawned per SDK
// operation; the request travels as a JSON document on stdin and the host
// streams JSON-lines events (progress, messages, then a single result) on
// stdout. The packaging engine itself is entirely on the other side of
// that boundary.
package host

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/sergei-lamce/STraSAK/internal/project"
)

const defaultBinary = "sdlhost"

// EnvBinary is the environment variable that overrides the automation host
// location. It is the only environment variable strasak reads.
const EnvBinary = "STRASAK_HOST"

// CommandContext is the function used to create exec.Cmd instances.
// It can be replaced in tests to mock the automation host.
var CommandContext = exec.CommandContext

// Binary returns the automation host executable to invoke.
func Binary() string {
	if v := os.Getenv(EnvBinary); v != "" {
		return v
	}
	return defaultBinary
}

// Available checks if the automation host can be found on PATH (or at the
// location named by STRASAK_HOST).
func Available() bool {
	_, err := exec.LookPath(Binary())
	return err == nil
}

// Resolver resolves projects through the automation host.
type Resolver struct{}

// NewResolver creates a Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve opens the project at path. The path must exist and the host must
// accept it as a project; the returned handle caches the project info the
// host reports so later Info calls need no round trip.
func (r *Resolver) Resolve(ctx context.Context, path string) (project.Project, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("project not found: %s", path)
		}
		return nil, fmt.Errorf("failed to access project %s: %w", path, err)
	}

	var res resultPayload
	if err := run(ctx, request{Op: opResolve, Project: path}, nil, &res); err != nil {
		return nil, fmt.Errorf("failed to open project %s: %w", path, err)
	}

	return &hostProject{
		path: path,
		info: project.Info{
			Name:            res.Name,
			TargetLanguages: res.TargetLanguages,
		},
	}, nil
}
