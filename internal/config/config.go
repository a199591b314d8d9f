package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// APIKeyEnvVars are checked in order when translation.api_key is not set.
var APIKeyEnvVars = []string{"GOOGLE_GENAI_API_KEY", "GOOGLE_API_KEY", "NEXT_PUBLIC_GOOGLE_API_KEY"}

// Config holds the top-level application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Upload      UploadConfig      `yaml:"upload"`
	Translation TranslationConfig `yaml:"translation"`
	Support     SupportConfig     `yaml:"support"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	StaticDir   string `yaml:"static_dir"`  // built frontend; empty disables static hosting
	Environment string `yaml:"environment"` // "development" adds debug details to errors
}

// UploadConfig limits document uploads.
type UploadConfig struct {
	MaxBytes int64 `yaml:"max_bytes"`
}

// TranslationConfig selects the translation provider.
type TranslationConfig struct {
	Provider      string `yaml:"provider"` // e.g. "gemini"
	Model         string `yaml:"model"`
	APIKey        string `yaml:"api_key"`
	MaxTextLength int    `yaml:"max_text_length"`
}

// SupportConfig is surfaced in error responses.
type SupportConfig struct {
	Email string `yaml:"email"`
}

// defaults returns a Config populated with sensible default values.
func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8080,
			Environment: "production",
		},
		Upload: UploadConfig{
			MaxBytes: 50 << 20,
		},
		Translation: TranslationConfig{
			Provider:      "gemini",
			Model:         "gemini-2.5-flash",
			MaxTextLength: 50000,
		},
		Support: SupportConfig{
			Email: "support@lexbridge.com",
		},
	}
}

// Load reads a YAML configuration file at path and returns a Config.
// Environment variables are applied on top of the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	applyEnv(cfg)
	return cfg, nil
}

// LoadDefault loads ".env" (if present) into the process environment, then
// "config.yaml" from the current directory. A missing config file yields
// defaults. Any other error (e.g. permission denied, malformed YAML) is
// returned.
func LoadDefault() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg, err := Load("config.yaml")
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg = defaults()
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if strings.TrimSpace(cfg.Translation.APIKey) == "" {
		for _, name := range APIKeyEnvVars {
			if v := os.Getenv(name); strings.TrimSpace(v) != "" {
				cfg.Translation.APIKey = v
				break
			}
		}
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		cfg.Server.Environment = env
	}
}

// HasAPIKey reports whether a non-blank provider key is configured.
func (c TranslationConfig) HasAPIKey() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// KeyStatus describes which provider keys are present without exposing them.
type KeyStatus struct {
	HasGoogleGenAIKey    bool   `json:"hasGoogleGenAIKey"`
	HasGoogleAPIKey      bool   `json:"hasGoogleAPIKey"`
	HasConfiguredKey     bool   `json:"hasConfiguredKey"`
	GoogleGenAIKeyLength int    `json:"googleGenAIKeyLength"`
	GoogleAPIKeyLength   int    `json:"googleAPIKeyLength"`
	Environment          string `json:"environment"`
}

// Configured reports whether any usable key is available.
func (s KeyStatus) Configured() bool {
	return s.HasGoogleGenAIKey || s.HasGoogleAPIKey || s.HasConfiguredKey
}

// Keys inspects the environment and cfg for provider keys.
func (c *Config) Keys() KeyStatus {
	genai := os.Getenv("GOOGLE_GENAI_API_KEY")
	google := os.Getenv("GOOGLE_API_KEY")
	return KeyStatus{
		HasGoogleGenAIKey:    strings.TrimSpace(genai) != "",
		HasGoogleAPIKey:      strings.TrimSpace(google) != "",
		HasConfiguredKey:     c.Translation.HasAPIKey(),
		GoogleGenAIKeyLength: len(genai),
		GoogleAPIKeyLength:   len(google),
		Environment:          c.Server.Environment,
	}
}
