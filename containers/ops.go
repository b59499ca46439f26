// containers/ops.go
package containers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/gollamadock/internal/execrunner"
)

// ErrModelFileNotFound is returned when a model registration names a
// Modelfile path that does not exist or is not a regular file.
var ErrModelFileNotFound = errors.New("model file not found")

// containerTmpDir is where Modelfiles are copied inside the engine
// container before running the create command.
const containerTmpDir = "/tmp"

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	stepStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
)

// Manager performs all container operations through an injected Runner,
// so every composed docker command can be asserted in tests.
type Manager struct {
	cfg    *Config
	runner execrunner.Runner
	out    io.Writer
}

// NewManager returns a Manager using the given configuration and
// command runner. Output defaults to stdout.
func NewManager(cfg *Config, runner execrunner.Runner) *Manager {
	return &Manager{cfg: cfg, runner: runner, out: os.Stdout}
}

// SetOutput redirects the Manager's user-facing output, used in tests.
func (m *Manager) SetOutput(w io.Writer) {
	m.out = w
}

// MaintainOptions selects which maintenance actions to perform. The
// options are independent: any combination may be set in one call.
type MaintainOptions struct {
	// ShowOllamaVersion prints the engine version from its container.
	ShowOllamaVersion bool
	// ShowWebUIVersion prints the web UI version from its container.
	ShowWebUIVersion bool
	// UpdateOllama pulls the latest engine image and recreates its container.
	UpdateOllama bool
	// UpdateWebUI pulls the latest web UI image and recreates its container.
	UpdateWebUI bool
}

// none reports whether no action was selected.
func (o MaintainOptions) none() bool {
	return !o.ShowOllamaVersion && !o.ShowWebUIVersion && !o.UpdateOllama && !o.UpdateWebUI
}

// Maintain runs the selected actions in a fixed order: version checks
// before updates, Ollama before the web UI. Each selected action runs
// regardless of earlier failures; their errors are joined, so the call
// fails if any action failed. With no actions selected it only lists
// the containers and does nothing else.
func (m *Manager) Maintain(ctx context.Context, opts MaintainOptions) error {
	if opts.none() {
		return m.List(ctx)
	}

	var errs []error
	if opts.ShowOllamaVersion {
		if _, err := m.OllamaVersion(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if opts.ShowWebUIVersion {
		if _, err := m.WebUIVersion(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if opts.UpdateOllama {
		if err := m.UpdateByName(ctx, OllamaName); err != nil {
			errs = append(errs, err)
		}
	}
	if opts.UpdateWebUI {
		if err := m.UpdateByName(ctx, WebUIName); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// List prints all containers, running and stopped.
func (m *Manager) List(ctx context.Context) error {
	res, err := m.runner.Run(ctx, "docker", "ps", "-a")
	if err != nil {
		return fmt.Errorf("could not list containers: %w", err)
	}
	fmt.Fprintln(m.out, headerStyle.Render("Containers:"))
	fmt.Fprint(m.out, res.Stdout)
	return nil
}

// OllamaVersion queries and prints the engine version from inside the
// running ollama container.
func (m *Manager) OllamaVersion(ctx context.Context) (string, error) {
	res, err := m.runner.Run(ctx, "docker", "exec", OllamaName, "ollama", "-v")
	if err != nil {
		return "", fmt.Errorf("could not read ollama version: %w", err)
	}
	version := strings.TrimSpace(res.Stdout)
	fmt.Fprintf(m.out, "%s %s\n", headerStyle.Render("Ollama:"), valueStyle.Render(version))
	return version, nil
}

// WebUIVersion reads the web UI's package metadata from inside its
// container and prints the version field.
func (m *Manager) WebUIVersion(ctx context.Context) (string, error) {
	res, err := m.runner.Run(ctx, "docker", "exec", WebUIName, "cat", "/app/package.json")
	if err != nil {
		return "", fmt.Errorf("could not read web UI package metadata: %w", err)
	}
	var pkg struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal([]byte(res.Stdout), &pkg); err != nil {
		return "", fmt.Errorf("could not parse web UI package metadata: %w", err)
	}
	fmt.Fprintf(m.out, "%s %s\n", headerStyle.Render("Open WebUI:"), valueStyle.Render(pkg.Version))
	return pkg.Version, nil
}

// UpdateByName updates the named managed container using its configured
// profile.
func (m *Manager) UpdateByName(ctx context.Context, name string) error {
	spec, ok := m.cfg.Spec(name)
	if !ok {
		return fmt.Errorf("no container profile named %q", name)
	}
	return m.Update(ctx, spec)
}

// Update pulls the latest image for the spec, then stops and removes
// the existing container if present, then starts a fresh one with the
// spec's fixed run options. A failed step aborts the remaining steps.
func (m *Manager) Update(ctx context.Context, spec ContainerSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	fmt.Fprintln(m.out, headerStyle.Render(fmt.Sprintf("Updating %s...", spec.Name)))
	steps := []Step{
		{Name: "pull image", Run: func(ctx context.Context) error {
			fmt.Fprintln(m.out, stepStyle.Render("  -> Pulling "+spec.Image))
			_, err := m.runner.Run(ctx, "docker", "pull", spec.Image)
			return err
		}},
		{Name: "stop container", Run: func(ctx context.Context) error {
			return m.stopIfExists(ctx, spec.Name)
		}},
		{Name: "remove container", Run: func(ctx context.Context) error {
			return m.removeIfExists(ctx, spec.Name)
		}},
		{Name: "run container", Run: func(ctx context.Context) error {
			fmt.Fprintln(m.out, stepStyle.Render("  -> Starting "+spec.Name))
			_, err := m.runner.Run(ctx, "docker", spec.RunArgs()...)
			return err
		}},
	}
	if err := runPipeline(ctx, "update "+spec.Name, steps); err != nil {
		return err
	}
	fmt.Fprintln(m.out, valueStyle.Render(fmt.Sprintf("  -> %s is up to date", spec.Name)))
	return nil
}

// UpdateAll updates every configured container profile. Each update
// runs regardless of the others' outcomes; errors are joined.
func (m *Manager) UpdateAll(ctx context.Context) error {
	var errs []error
	for _, spec := range m.cfg.Containers {
		if err := m.Update(ctx, spec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RegisterModel copies the Modelfile into the engine container's
// temporary directory and creates a model from it under the requested
// name. The file must exist at validation time; if the copy fails the
// create command is not attempted.
func (m *Manager) RegisterModel(ctx context.Context, req ModelRequest) error {
	info, err := os.Stat(req.ModelFilePath)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrModelFileNotFound, req.ModelFilePath)
	}

	dest := containerTmpDir + "/" + filepath.Base(req.ModelFilePath)
	steps := []Step{
		{Name: "copy model file", Run: func(ctx context.Context) error {
			fmt.Fprintln(m.out, stepStyle.Render(fmt.Sprintf("  -> Copying %s into %s", req.ModelFilePath, OllamaName)))
			_, err := m.runner.Run(ctx, "docker", "cp", req.ModelFilePath, OllamaName+":"+dest)
			return err
		}},
		{Name: "create model", Run: func(ctx context.Context) error {
			fmt.Fprintln(m.out, stepStyle.Render("  -> Creating model "+req.ModelName))
			_, err := m.runner.Run(ctx, "docker", "exec", OllamaName, "ollama", "create", req.ModelName, "-f", dest)
			return err
		}},
	}
	if err := runPipeline(ctx, "register model "+req.ModelName, steps); err != nil {
		return err
	}
	fmt.Fprintln(m.out, valueStyle.Render(fmt.Sprintf("  -> Model %s registered", req.ModelName)))
	return nil
}

// stopIfExists stops the named container. A container that does not
// exist is not an error; the step is skipped.
func (m *Manager) stopIfExists(ctx context.Context, name string) error {
	exists, err := m.containerExists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	fmt.Fprintln(m.out, stepStyle.Render("  -> Stopping "+name))
	_, err = m.runner.Run(ctx, "docker", "stop", name)
	return err
}

// removeIfExists removes the named container, skipping when absent.
func (m *Manager) removeIfExists(ctx context.Context, name string) error {
	exists, err := m.containerExists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	fmt.Fprintln(m.out, stepStyle.Render("  -> Removing "+name))
	_, err = m.runner.Run(ctx, "docker", "rm", name)
	return err
}

// containerExists checks for a container (running or stopped) with the
// exact given name. The name filter matches substrings, so the output
// lines are compared for an exact match.
func (m *Manager) containerExists(ctx context.Context, name string) (bool, error) {
	res, err := m.runner.Run(ctx, "docker", "ps", "-a", "--filter", "name="+name, "--format", "{{.Names}}")
	if err != nil {
		return false, fmt.Errorf("could not check container status: %w", err)
	}
	for _, line := range strings.Split(res.Stdout, "\n") {
		if strings.TrimSpace(line) == name {
			return true, nil
		}
	}
	return false, nil
}
