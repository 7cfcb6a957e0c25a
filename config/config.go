package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/Temutjin2k/fitness-tracker/pkg/configparser"
	"github.com/Temutjin2k/fitness-tracker/pkg/logger"
)

// Flags
var (
	packagesFlag = flag.String("packages", "", "path to the sensor packages yaml file")
	logLevelFlag = flag.String("log-level", "", "log level: DEBUG, INFO, WARN, ERROR")
)

// Errors
var (
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Config contains all configuration variables of the application
type (
	Config struct {
		ServiceName string `env:"SERVICE_NAME" default:"fitness-tracker"`

		Log      LogConfig
		Packages PackagesConfig
		Metrics  MetricsConfig
	}

	LogConfig struct {
		Level string `env:"LOG_LEVEL" default:"INFO"`
	}

	PackagesConfig struct {
		File string `env:"PACKAGES_FILE"` // пусто - встроенные пакеты
	}

	MetricsConfig struct {
		TextFile string `env:"METRICS_TEXTFILE"` // пусто - метрики не пишутся
	}
)

func NewConfig(filepath string) (*Config, error) {
	cfg := &Config{}

	// Loading yaml file and enviromental variables to config struct.
	if err := configparser.LoadAndParseYaml(filepath, cfg); err != nil {
		return nil, fmt.Errorf("failed to load and parse config: %w", err)
	}

	// Flags override both file and env
	parseFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	c.Log.Level = strings.ToUpper(c.Log.Level)
	if !logger.ValidateLogLevel(c.Log.Level) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	return nil
}

func parseFlags(cfg *Config) {
	if packagesFlag != nil && *packagesFlag != "" {
		cfg.Packages.File = *packagesFlag
	}
	if logLevelFlag != nil && *logLevelFlag != "" {
		cfg.Log.Level = *logLevelFlag
	}
}
