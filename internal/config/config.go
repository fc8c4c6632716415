package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/alexanderramin/enjaz/internal/llm"
)

// Provider backends.
const (
	ProviderLocal = "local"
	ProviderHTTP  = "http"
)

// Config is the resolved application configuration: defaults, then an
// optional config.yaml, then ENJAZ_* environment overrides, strongest last.
type Config struct {
	Provider   string
	APIBaseURL string
	DataDir    string
	LogLevel   string

	LLM llm.LLMConfig
}

// DefaultDataDir returns the per-user data directory.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".enjaz"
	}
	return filepath.Join(home, ".enjaz")
}

// Load resolves configuration. configPath may be empty; then only the data
// dir is searched for config.yaml.
func Load(configPath string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(DefaultDataDir())

	v.SetEnvPrefix("ENJAZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("provider", ProviderLocal)
	v.SetDefault("api.base_url", "http://localhost:5000/api/v1")
	v.SetDefault("data.dir", DefaultDataDir())
	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := Config{
		Provider:   v.GetString("provider"),
		APIBaseURL: v.GetString("api.base_url"),
		DataDir:    v.GetString("data.dir"),
		LogLevel:   v.GetString("log.level"),
		LLM:        llm.LoadConfig(),
	}

	if cfg.Provider != ProviderLocal && cfg.Provider != ProviderHTTP {
		return Config{}, fmt.Errorf("unknown provider %q (want %q or %q)", cfg.Provider, ProviderLocal, ProviderHTTP)
	}
	return cfg, nil
}
