package config

import (
	"fmt"

	"github.com/mazs/luach/internal/hebcal"
	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Display  DisplayConfig  `mapstructure:"display"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
}

// CalendarConfig represents calendar engine configuration
type CalendarConfig struct {
	// CurrentYear is the year assumed when none is given or the given one
	// is out of range. The engine never reads the system clock.
	CurrentYear int `mapstructure:"current_year"`
}

// DisplayConfig represents console output configuration
type DisplayConfig struct {
	Banner     bool `mapstructure:"banner"`
	GridHeader bool `mapstructure:"grid_header"`
	ShowMolad  bool `mapstructure:"show_molad"`
}

// ServerConfig represents the HTTP API configuration
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file. A missing file when no explicit path
// was given is not an error; defaults cover every key.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.luach")
		v.AddConfigPath("/etc/luach")
	}

	v.SetDefault("calendar.current_year", 5786)
	v.SetDefault("display.banner", true)
	v.SetDefault("display.grid_header", true)
	v.SetDefault("display.show_molad", true)
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("luach")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if configPath != "" {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Calendar.CurrentYear < hebcal.MinYear || c.Calendar.CurrentYear > hebcal.MaxYear {
		return fmt.Errorf("calendar.current_year must be between %d and %d, got %d",
			hebcal.MinYear, hebcal.MaxYear, c.Calendar.CurrentYear)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	return nil
}
