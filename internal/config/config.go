// internal/config/config.go
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/UChicago-Robotics/roboclaw/pkg/serialstream"
)

// Config holds the full application configuration.
type Config struct {
	Serial     serialstream.Config `mapstructure:"serial"`
	Controller ControllerConfig    `mapstructure:"controller"`
	Logging    LoggingConfig       `mapstructure:"logging"`
}

// ControllerConfig holds motor controller settings.
type ControllerConfig struct {
	Address      uint8 `mapstructure:"address"`
	Retries      int   `mapstructure:"retries"`
	PacketSerial bool  `mapstructure:"packet_serial"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// Load reads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("roboclaw")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/roboclaw")
	}

	v.SetEnvPrefix("ROBOCLAW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine, defaults and env vars apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("serial.port", "/dev/ttyACM0")
	v.SetDefault("serial.baud_rate", 38400)
	v.SetDefault("serial.data_bits", 8)
	v.SetDefault("serial.stop_bits", 1)
	v.SetDefault("serial.parity", "none")
	v.SetDefault("serial.read_timeout", 100*time.Millisecond)

	v.SetDefault("controller.address", 0x80)
	v.SetDefault("controller.retries", 3)
	v.SetDefault("controller.packet_serial", true)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.max_size_mb", 100)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age_days", 28)
	v.SetDefault("logging.compress", true)
}

func validate(cfg *Config) error {
	if cfg.Controller.Address < 0x80 {
		return fmt.Errorf("controller address 0x%02X out of range [0x80, 0x87]", cfg.Controller.Address)
	}
	if cfg.Controller.Address > 0x87 {
		return fmt.Errorf("controller address 0x%02X out of range [0x80, 0x87]", cfg.Controller.Address)
	}
	if cfg.Controller.Retries < 1 {
		return fmt.Errorf("controller retries must be at least 1, got %d", cfg.Controller.Retries)
	}
	return nil
}
