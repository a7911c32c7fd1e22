package config

import "fmt"

// Config is the aggregate application configuration.
type Config struct {
	// Server holds HTTP server settings.
	Server ServerConfig
	// Logger holds logging settings.
	Logger LoggerConfig
	// GinMode selects the Gin framework mode (debug, release, test).
	GinMode string
}

// LoadFromEnv assembles the full configuration from environment variables.
func LoadFromEnv() Config {
	return Config{
		Server:  LoadServerConfigFromEnv(),
		Logger:  LoadLoggerConfigFromEnv(),
		GinMode: GetEnv("GIN_MODE", "release"),
	}
}

// Validate checks every configuration section.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger config validation failed: %w", err)
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid GIN_MODE: %s (must be: debug, release, test)", c.GinMode)
	}

	return nil
}
