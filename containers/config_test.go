package containers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nonexistent.json"))
	require.NoError(t, err)

	require.Len(t, cfg.Containers, 2)
	assert.Equal(t, "ollama/ollama", cfg.Containers[0].Image)
	assert.Equal(t, "ghcr.io/open-webui/open-webui:cuda", cfg.Containers[1].Image)
	assert.Equal(t, "http://localhost:11434", cfg.OllamaURL)
	assert.Empty(t, cfg.Bridge)
}

func TestLoadConfig_OverlayMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"bridge": ["wsl"],
		"debug": true,
		"ollama_url": "http://127.0.0.1:11434",
		"containers": [
			{"name": "ollama", "image": "ollama/ollama:rocm", "ports": ["11434:11434"], "gpu": true}
		]
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"wsl"}, cfg.Bridge)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "http://127.0.0.1:11434", cfg.OllamaURL)
	// Web UI URL keeps its default.
	assert.Equal(t, "http://localhost:3000", cfg.WebUIURL)

	spec, ok := cfg.Spec(OllamaName)
	require.True(t, ok)
	assert.Equal(t, "ollama/ollama:rocm", spec.Image)
	// The untouched web UI profile keeps its built-in settings.
	webui, ok := cfg.Spec(WebUIName)
	require.True(t, ok)
	assert.Equal(t, "ghcr.io/open-webui/open-webui:cuda", webui.Image)
}

func TestLoadConfig_ExtraContainerAppended(t *testing.T) {
	path := writeConfig(t, `{
		"containers": [{"name": "pipelines", "image": "ghcr.io/open-webui/pipelines:main"}]
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Containers, 3)
	spec, ok := cfg.Spec("pipelines")
	require.True(t, ok)
	assert.Equal(t, "ghcr.io/open-webui/pipelines:main", spec.Image)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{"containers": [`)
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLoadConfig_RejectsSpecWithoutImage(t *testing.T) {
	path := writeConfig(t, `{"containers": [{"name": "ollama"}]}`)
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing an image")
}
