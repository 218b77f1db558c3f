package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

// DefaultPort is the default Ollama server port.
const DefaultPort = "11434"

// DefaultModel is used when neither the flags, the environment, nor the
// config file name a model.
const DefaultModel = "llama3.2"

// Config is the fully resolved configuration for one analysis run.
// Precedence: flags > environment > config file > defaults.
type Config struct {
	// Prompt is the analysis prompt template; the file tail is appended to it.
	Prompt string

	// System is an optional system prompt sent alongside the user prompt.
	System string

	// Provider selects the inference backend: "ollama" (default) or "openai"
	// for any OpenAI-compatible local server.
	Provider string

	Model       string
	MaxTokens   int64
	Temperature float64

	Host    string
	Port    string
	APIKey  string
	Timeout time.Duration

	File  string
	Lines int
}

type fileConfig struct {
	Prompt      string  `mapstructure:"prompt"`
	System      string  `mapstructure:"system"`
	Provider    string  `mapstructure:"provider"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int64   `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

type envConfig struct {
	Host    string        `envconfig:"LOGLENS_HOST" default:"localhost"`
	Port    string        `envconfig:"LOGLENS_PORT"`
	Model   string        `envconfig:"LOGLENS_MODEL"`
	APIKey  string        `envconfig:"LOGLENS_API_KEY" default:"loglens"`
	Timeout time.Duration `envconfig:"LOGLENS_TIMEOUT" default:"60s"`
}

// Load reads the YAML config file named by args, applies environment
// overrides, and layers the CLI flags on top.
func Load(args *CLIArgs) (*Config, error) {
	if args.File == "" {
		return nil, fmt.Errorf("-f is required: path to the file to analyze")
	}
	if args.ConfigFile == "" {
		return nil, fmt.Errorf("-c is required: path to the YAML config file")
	}

	v := viper.New()
	v.SetConfigFile(args.ConfigFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if fc.Prompt == "" {
		return nil, fmt.Errorf("config %s: prompt is required", args.ConfigFile)
	}

	var env envConfig
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}

	cfg := &Config{
		Prompt:      fc.Prompt,
		System:      fc.System,
		Provider:    fc.Provider,
		Model:       firstNonEmpty(args.Model, env.Model, fc.Model, DefaultModel),
		MaxTokens:   fc.MaxTokens,
		Temperature: fc.Temperature,
		Host:        env.Host,
		Port:        firstNonEmpty(args.Port, env.Port, DefaultPort),
		APIKey:      env.APIKey,
		Timeout:     env.Timeout,
		File:        args.File,
		Lines:       args.Lines,
	}

	switch cfg.Provider {
	case "", "ollama", "openai":
	default:
		return nil, fmt.Errorf("config %s: unknown provider %q", args.ConfigFile, cfg.Provider)
	}

	slog.Info("configuration loaded", "config", args.ConfigFile, "provider", cfg.Provider, "model", cfg.Model)
	return cfg, nil
}

// BaseURL returns the inference server base URL, e.g. http://localhost:11434.
func (c *Config) BaseURL() string {
	return fmt.Sprintf("http://%s:%s", c.Host, c.Port)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
