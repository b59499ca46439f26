// containers/doctor.go
package containers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// CheckResult is the outcome of one doctor check.
type CheckResult struct {
	// Name identifies the check, e.g. "engine endpoint".
	Name string
	// OK is true when the check passed.
	OK bool
	// Detail carries the version/status found, or the failure reason.
	Detail string
}

// doctorHTTPTimeout guards the endpoint probes so a wedged service
// cannot hang the whole suite.
const doctorHTTPTimeout = 10 * time.Second

// Doctor probes the whole serving stack: the docker CLI itself, the run
// state of every configured container, and the HTTP endpoints of the
// engine and the web UI. All checks always run; a failing check is
// recorded, not fatal, so the report is complete.
func (m *Manager) Doctor(ctx context.Context) []CheckResult {
	var results []CheckResult

	results = append(results, m.checkDocker(ctx))
	for _, spec := range m.cfg.Containers {
		results = append(results, m.checkContainerRunning(ctx, spec.Name))
	}
	results = append(results, m.checkEndpoint(ctx, "engine endpoint", m.cfg.OllamaURL+"/api/version"))
	results = append(results, m.checkEndpoint(ctx, "web UI endpoint", m.cfg.WebUIURL+"/health"))

	return results
}

// checkDocker verifies the docker CLI answers at all.
func (m *Manager) checkDocker(ctx context.Context) CheckResult {
	res, err := m.runner.Run(ctx, "docker", "version", "--format", "{{.Server.Version}}")
	if err != nil {
		return CheckResult{Name: "docker runtime", Detail: err.Error()}
	}
	return CheckResult{Name: "docker runtime", OK: true, Detail: "server " + strings.TrimSpace(res.Stdout)}
}

// checkContainerRunning verifies the named container is currently up.
func (m *Manager) checkContainerRunning(ctx context.Context, name string) CheckResult {
	check := CheckResult{Name: "container " + name}
	res, err := m.runner.Run(ctx, "docker", "ps", "--filter", "name="+name, "--format", "{{.Names}}")
	if err != nil {
		check.Detail = err.Error()
		return check
	}
	for _, line := range strings.Split(res.Stdout, "\n") {
		if strings.TrimSpace(line) == name {
			check.OK = true
			check.Detail = "running"
			return check
		}
	}
	check.Detail = "not running"
	return check
}

// checkEndpoint probes an HTTP endpoint and records its status line.
func (m *Manager) checkEndpoint(ctx context.Context, name, url string) CheckResult {
	check := CheckResult{Name: name}

	reqCtx, cancel := context.WithTimeout(ctx, doctorHTTPTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		check.Detail = err.Error()
		return check
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		check.Detail = fmt.Sprintf("%s is not reachable: %v", url, err)
		return check
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		check.Detail = fmt.Sprintf("%s returned %s", url, resp.Status)
		return check
	}
	check.OK = true
	check.Detail = url + " is healthy"
	return check
}
