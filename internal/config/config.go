// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Default values applied when neither the config file, the environment,
// nor a CLI flag supplies one.
const (
	DefaultListenAddr   = ":5001"
	DefaultFetchTimeout = 30 * time.Second
	DefaultUploadLimit  = 16 << 20 // 16 MiB, matches the upload route cap
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume string `json:"resume,omitempty"` // Path to résumé PDF
	Output string `json:"output,omitempty"` // Directory for written artifacts

	// Targets
	EmployerURL string `json:"employer_url,omitempty"` // Career-fair employer page URL

	// Behavior
	APIKey       string   `json:"api_key,omitempty"`       // Gemini API key
	Models       []string `json:"models,omitempty"`        // Model fallback list, first wins
	UseBrowser   bool     `json:"use_browser,omitempty"`   // Use headless browser for JS-rendered pages
	UseNLP       bool     `json:"use_nlp,omitempty"`       // Enable the optional model-backed extraction pass
	Verbose      bool     `json:"verbose,omitempty"`       // Print detailed debug information
	FetchTimeout int      `json:"fetch_timeout,omitempty"` // Fetch timeout in seconds

	// Server / storage
	ListenAddr  string `json:"listen_addr,omitempty"`  // Address for the local server
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills unset fields from the environment. A .env file, when
// present, has already been loaded by the CLI entrypoint.
func (c *Config) FromEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.ListenAddr == "" {
		if port := os.Getenv("PORT"); port != "" {
			c.ListenAddr = ":" + port
		}
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.FetchTimeout < 0 {
		return fmt.Errorf("config error: 'fetch_timeout' must be non-negative")
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.EmployerURL == "" {
		result.EmployerURL = defaults.EmployerURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if len(result.Models) == 0 {
		result.Models = defaults.Models
	}
	if result.FetchTimeout == 0 {
		result.FetchTimeout = defaults.FetchTimeout
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// FetchTimeoutOrDefault returns the configured fetch timeout as a
// duration, falling back to DefaultFetchTimeout.
func (c *Config) FetchTimeoutOrDefault() time.Duration {
	if c.FetchTimeout > 0 {
		return time.Duration(c.FetchTimeout) * time.Second
	}
	return DefaultFetchTimeout
}

// ListenAddrOrDefault returns the configured listen address, falling
// back to DefaultListenAddr.
func (c *Config) ListenAddrOrDefault() string {
	if c.ListenAddr != "" {
		return c.ListenAddr
	}
	return DefaultListenAddr
}
