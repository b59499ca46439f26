// containers/config.go
package containers

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config contains application settings loaded from config.json. Every
// field has a built-in default, so the file is optional and usually only
// present when the host needs a shell bridge or non-standard ports.
type Config struct {
	// Bridge is prepended to every external command, e.g. ["wsl"] when
	// docker lives inside WSL on a Windows host.
	Bridge []string `json:"bridge,omitempty"`
	// Containers overrides the built-in profiles by name. Unknown names
	// are appended as additional managed containers.
	Containers []ContainerSpec `json:"containers,omitempty"`
	// OllamaURL is the engine HTTP endpoint probed by the doctor.
	OllamaURL string `json:"ollama_url,omitempty"`
	// WebUIURL is the web UI HTTP endpoint probed by the doctor.
	WebUIURL string `json:"webui_url,omitempty"`
	// Debug enables verbose diagnostics output.
	Debug bool `json:"debug"`
}

// DefaultConfig returns the configuration used when no config file is
// present: the two built-in container profiles and their local service
// endpoints.
func DefaultConfig() *Config {
	return &Config{
		Containers: []ContainerSpec{OllamaSpec(), WebUISpec()},
		OllamaURL:  "http://localhost:11434",
		WebUIURL:   "http://localhost:3000",
	}
}

// LoadConfig reads and parses the configuration file from the given
// path, merging it over the defaults. A missing file is not an error;
// the defaults are returned unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	var overlay Config
	if err := json.Unmarshal(b, &overlay); err != nil {
		return nil, fmt.Errorf("could not parse config JSON: %w", err)
	}

	cfg.Bridge = overlay.Bridge
	cfg.Debug = overlay.Debug
	if overlay.OllamaURL != "" {
		cfg.OllamaURL = overlay.OllamaURL
	}
	if overlay.WebUIURL != "" {
		cfg.WebUIURL = overlay.WebUIURL
	}

	for _, spec := range overlay.Containers {
		if err := spec.Validate(); err != nil {
			return nil, err
		}
		cfg.setSpec(spec)
	}

	return cfg, nil
}

// Spec returns the profile for the named container, if configured.
func (c *Config) Spec(name string) (ContainerSpec, bool) {
	for _, s := range c.Containers {
		if s.Name == name {
			return s, true
		}
	}
	return ContainerSpec{}, false
}

// setSpec replaces the profile with the same name, or appends it.
func (c *Config) setSpec(spec ContainerSpec) {
	for i, s := range c.Containers {
		if s.Name == spec.Name {
			c.Containers[i] = spec
			return
		}
	}
	c.Containers = append(c.Containers, spec)
}
