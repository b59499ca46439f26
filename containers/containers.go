// containers/containers.go
// Package containers manages the lifecycle of the local LLM-serving
// containers (the Ollama engine and its Open WebUI frontend) through the
// docker CLI. Container profiles are plain data, so the run command for
// each service is assembled from its spec rather than hard-coded.
package containers

import "fmt"

// Names of the two managed containers. They double as the docker
// container names, the volume names, and the config override keys.
const (
	OllamaName = "ollama"
	WebUIName  = "open-webui"
)

// ContainerSpec describes everything needed to recreate one managed
// container: the image to pull and the fixed set of run options.
type ContainerSpec struct {
	// Name is the container name passed to --name.
	Name string `json:"name"`
	// Image is the full image reference, e.g. "ollama/ollama".
	Image string `json:"image"`
	// Ports holds host:container port mappings, e.g. "11434:11434".
	Ports []string `json:"ports,omitempty"`
	// Volumes holds volume:path mounts, e.g. "ollama:/root/.ollama".
	Volumes []string `json:"volumes,omitempty"`
	// Env holds KEY=VALUE environment entries for the container.
	Env []string `json:"env,omitempty"`
	// GPU requests GPU passthrough (--gpus=all) when true.
	GPU bool `json:"gpu"`
	// RestartPolicy is the docker restart policy, empty for none.
	RestartPolicy string `json:"restart_policy,omitempty"`
	// HostAliases holds --add-host entries, e.g.
	// "host.docker.internal:host-gateway".
	HostAliases []string `json:"host_aliases,omitempty"`
}

// OllamaSpec is the built-in profile for the Ollama engine container.
func OllamaSpec() ContainerSpec {
	return ContainerSpec{
		Name:    OllamaName,
		Image:   "ollama/ollama",
		Ports:   []string{"11434:11434"},
		Volumes: []string{"ollama:/root/.ollama"},
		GPU:     true,
	}
}

// WebUISpec is the built-in profile for the Open WebUI container. The
// CUDA image variant is used so the UI can run GPU-accelerated tasks.
func WebUISpec() ContainerSpec {
	return ContainerSpec{
		Name:          WebUIName,
		Image:         "ghcr.io/open-webui/open-webui:cuda",
		Ports:         []string{"3000:8080"},
		Volumes:       []string{"open-webui:/app/backend/data"},
		GPU:           true,
		RestartPolicy: "always",
		HostAliases:   []string{"host.docker.internal:host-gateway"},
	}
}

// RunArgs builds the argv for "docker run" from the spec. The flag order
// is fixed (gpu, ports, host aliases, env, volumes, restart policy,
// name, image) so the composed command is deterministic for a given
// spec.
func (s ContainerSpec) RunArgs() []string {
	args := []string{"run", "-d"}
	if s.GPU {
		args = append(args, "--gpus=all")
	}
	for _, p := range s.Ports {
		args = append(args, "-p", p)
	}
	for _, a := range s.HostAliases {
		args = append(args, "--add-host="+a)
	}
	for _, e := range s.Env {
		args = append(args, "-e", e)
	}
	for _, v := range s.Volumes {
		args = append(args, "-v", v)
	}
	if s.RestartPolicy != "" {
		args = append(args, "--restart", s.RestartPolicy)
	}
	args = append(args, "--name", s.Name, s.Image)
	return args
}

// Validate reports whether the spec can produce a usable run command.
func (s ContainerSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("container spec is missing a name")
	}
	if s.Image == "" {
		return fmt.Errorf("container spec %q is missing an image", s.Name)
	}
	return nil
}

// ModelRequest is a single model registration: copy a local Modelfile
// into the engine container and create a model from it. It is only
// valid for the duration of one invocation.
type ModelRequest struct {
	// ModelName is the identifier for the new model, passed through to
	// the engine uninterpreted.
	ModelName string
	// ModelFilePath is the local path of the model definition file.
	ModelFilePath string
}
