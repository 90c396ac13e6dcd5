package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"WavePull/pkg/util"
)

type Config struct {
	Environment string `yaml:"environment" default:"development"`
	Server      struct {
		Port            int           `yaml:"port" default:"8080" validate:"gt=0,lte=65535"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"30s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`
	Logging struct {
		Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn error fatal panic"`
		Format string `yaml:"format" default:"console" validate:"oneof=json console"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"logging"`
	Archive struct {
		// Roots are the local waveform archive directories, searched in order.
		Roots []string `yaml:"roots"`
		Dtype string   `yaml:"dtype" default:"SAC" validate:"oneof=SAC MSEED"`
		// MissingValue is written over format sentinel samples: "nan" or "zero".
		MissingValue string `yaml:"missing_value" default:"nan" validate:"oneof=nan zero"`
	} `yaml:"archive"`
	Remote struct {
		BaseURL string        `yaml:"base_url"`
		Timeout time.Duration `yaml:"timeout" default:"30s"`
	} `yaml:"remote"`
	Pool struct {
		Workers   int `yaml:"workers" default:"4" validate:"gt=0"`
		QueueSize int `yaml:"queue_size" default:"64" validate:"gt=0"`
	} `yaml:"pool"`
}

var validate = validator.New()

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}

	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("WAVEPULL_ENV"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("WAVEPULL_SERVER_PORT"); v != "" {
		c.Server.Port = util.ParseIntDefault(v, c.Server.Port)
	}
	if v := os.Getenv("WAVEPULL_METRICS_ENABLED"); v != "" {
		c.Metrics.Enabled = util.ParseBoolDefault(v, c.Metrics.Enabled)
	}
	if v := os.Getenv("WAVEPULL_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("WAVEPULL_ARCHIVE_ROOTS"); v != "" {
		c.Archive.Roots = splitAndTrim(v)
	}
	if v := os.Getenv("WAVEPULL_REMOTE_URL"); v != "" {
		c.Remote.BaseURL = v
	}

	return c, nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
