package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPort       = "3001"
	DefaultRPCURL     = "https://api.mainnet-beta.solana.com"
	DefaultCommitment = "confirmed"
)

// Config holds environment-driven configuration. Values from an optional
// YAML file (CONFIG_FILE) are applied first, environment variables win.
type Config struct {
	Port          string `yaml:"port"`
	RPCURL        string `yaml:"rpc_url"`
	SolCommitment string `yaml:"commitment"`
	LogLevel      string `yaml:"log_level"`
	AllowedOrigin string `yaml:"allowed_origin"`
	UIEnabled     bool   `yaml:"ui_enabled"`
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "yes":
		return true
	case "0", "false", "FALSE", "no":
		return false
	}
	return def
}

func defaults() Config {
	return Config{
		Port:          DefaultPort,
		RPCURL:        DefaultRPCURL,
		SolCommitment: DefaultCommitment,
		LogLevel:      "info",
		AllowedOrigin: "*",
		UIEnabled:     true,
	}
}

// LoadFile reads a YAML config file on top of the defaults.
func LoadFile(path string) (Config, error) {
	c := defaults()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("parse yaml: %w", err)
	}
	return c, nil
}

// Load loads configuration from environment variables with sane defaults.
// A broken CONFIG_FILE is reported, the defaults are used in its place.
func Load() (Config, error) {
	base := defaults()
	var err error
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		var fc Config
		if fc, err = LoadFile(path); err == nil {
			base = fc
		}
	}
	return Config{
		Port:          getenv("PORT", base.Port),
		RPCURL:        getenv("SOLANA_RPC_URL", base.RPCURL),
		SolCommitment: getenv("SOL_COMMITMENT", base.SolCommitment),
		LogLevel:      getenv("LOG_LEVEL", base.LogLevel),
		AllowedOrigin: getenv("CORS_ALLOWED_ORIGIN", base.AllowedOrigin),
		UIEnabled:     getbool("UI_ENABLED", base.UIEnabled),
	}, err
}
