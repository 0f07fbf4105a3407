package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/lr-explorer-server/internal/domain"
)

// Manager loads and serves application configuration using Viper
type Manager struct {
	config *domain.Config
}

// NewManager creates a new configuration manager
func NewManager() (*Manager, error) {
	m := &Manager{}
	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

// loadConfig loads configuration from various sources
func (m *Manager) loadConfig() error {
	// Set configuration file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/lr-explorer-server/")

	// Set environment variable prefix and enable automatic env binding
	viper.SetEnvPrefix("LREXPLORER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set default values
	m.setDefaults()

	// Read configuration file (optional - will use defaults and env vars if not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using defaults and environment variables
	}

	// Unmarshal configuration into struct
	config := &domain.Config{}
	if err := viper.Unmarshal(config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.config = config
	return nil
}

// setDefaults sets default configuration values
func (m *Manager) setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")
	viper.SetDefault("server.rate_limit", 20.0)
	viper.SetDefault("server.rate_burst", 40)

	// Explorer defaults
	viper.SetDefault("explorer.cohort_size", 100)
	viper.SetDefault("explorer.default_prevalence_pct", 10.0)
	viper.SetDefault("explorer.min_prevalence_pct", 1.0)
	viper.SetDefault("explorer.max_prevalence_pct", 90.0)
	viper.SetDefault("explorer.session_ttl", "2h")

	// Cache defaults
	viper.SetDefault("cache.view_cache_size", 256)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
}

// GetConfig returns the complete configuration
func (m *Manager) GetConfig() *domain.Config {
	return m.config
}

// GetServerConfig returns server configuration
func (m *Manager) GetServerConfig() *domain.ServerConfig {
	return &m.config.Server
}

// GetExplorerConfig returns explorer configuration
func (m *Manager) GetExplorerConfig() *domain.ExplorerConfig {
	return &m.config.Explorer
}

// Reload reloads the configuration
func (m *Manager) Reload() error {
	return m.loadConfig()
}

// Validate validates the configuration
func (m *Manager) Validate() error {
	config := m.config

	// Validate server configuration
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}
	if config.Server.RateLimit <= 0 {
		return fmt.Errorf("invalid server rate limit: %f", config.Server.RateLimit)
	}

	// Validate explorer configuration
	if config.Explorer.CohortSize <= 0 {
		return fmt.Errorf("invalid cohort size: %d", config.Explorer.CohortSize)
	}
	if config.Explorer.MinPrevalencePct <= 0 || config.Explorer.MinPrevalencePct >= config.Explorer.MaxPrevalencePct {
		return fmt.Errorf("invalid prevalence bounds: [%f, %f]",
			config.Explorer.MinPrevalencePct, config.Explorer.MaxPrevalencePct)
	}
	if config.Explorer.MaxPrevalencePct > 100 {
		return fmt.Errorf("max prevalence exceeds 100%%: %f", config.Explorer.MaxPrevalencePct)
	}
	if config.Explorer.DefaultPrevalencePct < config.Explorer.MinPrevalencePct ||
		config.Explorer.DefaultPrevalencePct > config.Explorer.MaxPrevalencePct {
		return fmt.Errorf("default prevalence outside bounds: %f", config.Explorer.DefaultPrevalencePct)
	}

	// Validate cache configuration
	if config.Cache.ViewCacheSize <= 0 {
		return fmt.Errorf("invalid view cache size: %d", config.Cache.ViewCacheSize)
	}

	// Validate logging configuration
	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(config.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	return nil
}
