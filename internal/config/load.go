package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from defaults, the optional YAML file at
// path, and UCRTOS_ environment variables, in rising precedence. The
// pin list only comes from the file; everything else may also arrive
// through the environment.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("board.tick_ms", 1)
	v.SetDefault("board.verbose", false)
	v.SetDefault("serial.port", 0)
	v.SetDefault("serial.rx_delay", 5)
	v.SetDefault("serial.tx_queue", 4)
	v.SetDefault("serial.priority", 1)
	v.SetDefault("watch.mode", "rising")

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Configure environment variables
	v.SetEnvPrefix("UCRTOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range []string{
		"board.tick_ms",
		"board.verbose",
		"serial.port",
		"serial.rx_delay",
		"serial.tx_queue",
		"serial.priority",
		"watch.mode",
		"scenario",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("error binding environment variable %s: %w", key, err)
		}
	}

	// Unmarshal and validate
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
