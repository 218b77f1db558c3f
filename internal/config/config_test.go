package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(content), 0644)
	assert.NoError(t, err)
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
prompt: "Summarize the following log lines"
system: "You are a log analyst"
provider: ollama
model: mistral
max_tokens: 500
temperature: 0.2
`)

	cfg, err := Load(&CLIArgs{File: "app.log", ConfigFile: path, Lines: 10})
	assert.NoError(t, err)
	assert.Equal(t, "Summarize the following log lines", cfg.Prompt)
	assert.Equal(t, "You are a log analyst", cfg.System)
	assert.Equal(t, "ollama", cfg.Provider)
	assert.Equal(t, "mistral", cfg.Model)
	assert.Equal(t, int64(500), cfg.MaxTokens)
	assert.Equal(t, 0.2, cfg.Temperature)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
	assert.Equal(t, "app.log", cfg.File)
	assert.Equal(t, 10, cfg.Lines)
}

func TestLoadConfigDefaultModel(t *testing.T) {
	path := writeConfig(t, `prompt: "Explain these errors"`)

	cfg, err := Load(&CLIArgs{File: "app.log", ConfigFile: path})
	assert.NoError(t, err)
	assert.Equal(t, DefaultModel, cfg.Model)
}

func TestLoadConfigMissingPrompt(t *testing.T) {
	path := writeConfig(t, `model: mistral`)

	_, err := Load(&CLIArgs{File: "app.log", ConfigFile: path})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "prompt is required")
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := writeConfig(t, "prompt: [unclosed")

	_, err := Load(&CLIArgs{File: "app.log", ConfigFile: path})
	assert.Error(t, err)
}

func TestLoadConfigMissingConfigFile(t *testing.T) {
	_, err := Load(&CLIArgs{File: "app.log", ConfigFile: filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, err)
}

func TestLoadConfigRequiredFlags(t *testing.T) {
	_, err := Load(&CLIArgs{ConfigFile: "config.yaml"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "-f is required")

	_, err = Load(&CLIArgs{File: "app.log"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "-c is required")
}

func TestLoadConfigUnknownProvider(t *testing.T) {
	path := writeConfig(t, `
prompt: "Summarize"
provider: anthropic
`)

	_, err := Load(&CLIArgs{File: "app.log", ConfigFile: path})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestLoadConfigPrecedence(t *testing.T) {
	path := writeConfig(t, `
prompt: "Summarize"
model: from-file
`)
	t.Setenv("LOGLENS_MODEL", "from-env")
	t.Setenv("LOGLENS_PORT", "8081")

	// env beats the config file
	cfg, err := Load(&CLIArgs{File: "app.log", ConfigFile: path})
	assert.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Model)
	assert.Equal(t, "8081", cfg.Port)

	// flags beat env
	cfg, err = Load(&CLIArgs{File: "app.log", ConfigFile: path, Model: "from-flag", Port: "9090"})
	assert.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.Model)
	assert.Equal(t, "9090", cfg.Port)
}

func TestBaseURL(t *testing.T) {
	cfg := &Config{Host: "localhost", Port: "11434"}
	assert.Equal(t, "http://localhost:11434", cfg.BaseURL())
}
