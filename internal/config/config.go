package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for the web client.
type Config struct {
	ListenAddr string // address the local server binds to
	APIBaseURL string // base URL of the remote job-match API
	CookieName string // name of the credential cookie read by the request gate
	TokenFile  string // path of the page-scoped token file
	LogLevel   string // zerolog level name
	Env        string // "DEV" or "PROD"
}

// rawConfig is used for YAML unmarshaling.
type rawConfig struct {
	ListenAddr string `yaml:"listen_addr"`
	APIBaseURL string `yaml:"api_base_url"`
	CookieName string `yaml:"cookie_name"`
	TokenFile  string `yaml:"token_file"`
	LogLevel   string `yaml:"log_level"`
}

// Load reads the YAML config file at path if it exists, expands environment
// variables inside it, and fills the gaps from environment variables and
// defaults. A missing file is not an error; everything has a default.
func Load(path string) (*Config, error) {
	var raw rawConfig

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			expanded := os.ExpandEnv(string(data))
			if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	cfg := &Config{
		ListenAddr: firstOf(raw.ListenAddr, GetEnv("LISTEN_ADDR", ":3000")),
		APIBaseURL: firstOf(raw.APIBaseURL, GetEnv("API_URL", "http://localhost:8000")),
		CookieName: firstOf(raw.CookieName, GetEnv("AUTH_COOKIE_NAME", "auth_token")),
		TokenFile:  firstOf(raw.TokenFile, GetEnv("TOKEN_FILE", defaultTokenFile())),
		LogLevel:   firstOf(raw.LogLevel, GetEnv("LOG_LEVEL", "info")),
		Env:        GetEnv("ENV", "DEV"),
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("api_base_url must not be empty")
	}
	return cfg, nil
}

// GetEnv returns the value of envVar, or defaultValue when it is unset or empty.
func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".jobmatch", "token")
	}
	return filepath.Join(home, ".jobmatch", "token")
}
