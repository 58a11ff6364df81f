// SPDX-License-Identifier: MIT

// Package config loads the safepath configuration: a YAML file, optional .env
// files and SAFEPATH_* environment overrides, validated before use.
//
// Precedence (highest first): environment, YAML file, DefaultConfig.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/safepath/builder"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Environment variables understood by Load.
const (
	EnvSource      = "SAFEPATH_SOURCE"
	EnvDestination = "SAFEPATH_DESTINATION"
	EnvLogLevel    = "SAFEPATH_LOG_LEVEL"
	EnvLogFormat   = "SAFEPATH_LOG_FORMAT"
	EnvListenAddr  = "SAFEPATH_LISTEN_ADDR"
	EnvWorkers     = "SAFEPATH_WORKERS"
	EnvTimeout     = "SAFEPATH_QUERY_TIMEOUT"
)

// Config is the full runtime configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Query   QueryConfig   `yaml:"query"`
	Server  ServerConfig  `yaml:"server"`
	Network NetworkConfig `yaml:"network"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// QueryConfig holds search defaults.
type QueryConfig struct {
	Source      string        `yaml:"source" validate:"required"`
	Destination string        `yaml:"destination" validate:"required"`
	MaxDistance float64       `yaml:"max_distance" validate:"gte=0"`
	Timeout     time.Duration `yaml:"timeout" validate:"gte=0"`
	Workers     int           `yaml:"workers" validate:"gte=0,lte=1024"`
}

// ServerConfig configures the HTTP service.
type ServerConfig struct {
	Addr         string        `yaml:"addr" validate:"required,hostname_port"`
	ReadTimeout  time.Duration `yaml:"read_timeout" validate:"gte=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" validate:"gte=0"`
	MaxBatch     int           `yaml:"max_batch" validate:"gte=1,lte=10000"`
}

// NetworkConfig describes the road network. An empty edge list selects the
// bundled campus network; Labels then rename campus vertices.
type NetworkConfig struct {
	Edges  []EdgeConfig      `yaml:"edges" validate:"dive"`
	Labels map[string]string `yaml:"labels"`
}

// EdgeConfig is one directed segment.
type EdgeConfig struct {
	From        string  `yaml:"from" validate:"required"`
	To          string  `yaml:"to" validate:"required"`
	Distance    float64 `yaml:"distance" validate:"gte=0"`
	SafetyScore float64 `yaml:"safety_score" validate:"gte=0"`
}

// DefaultConfig returns the configuration used when no file is given:
// the campus network, Mall → K12, text logs at info.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Query: QueryConfig{
			Source:      builder.CampusMall,
			Destination: builder.CampusK12,
			Timeout:     5 * time.Second,
			Workers:     4,
		},
		Server: ServerConfig{
			Addr:         "127.0.0.1:8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			MaxBatch:     256,
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load builds a Config from defaults, the YAML file at path (skipped when path
// is empty), the given .env files and the process environment.
// Missing .env files are ignored; a missing YAML file is an error.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	}

	if err := loadEnvFiles(envFiles...); err != nil {
		return nil, err
	}
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadEnvFiles feeds .env files into the process environment without
// overriding variables that are already set.
func loadEnvFiles(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: failed to load %s: %w", f, err)
		}
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	setString(EnvSource, &cfg.Query.Source)
	setString(EnvDestination, &cfg.Query.Destination)
	setString(EnvLogLevel, &cfg.Log.Level)
	setString(EnvLogFormat, &cfg.Log.Format)
	setString(EnvListenAddr, &cfg.Server.Addr)

	if v, ok := os.LookupEnv(EnvWorkers); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvWorkers, v, err)
		}
		cfg.Query.Workers = n
	}
	if v, ok := os.LookupEnv(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvTimeout, v, err)
		}
		cfg.Query.Timeout = d
	}
	return nil
}

// Validate checks field constraints and that labels refer to network vertices.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	known := make(map[string]struct{}, 2*len(c.Network.Edges))
	for _, e := range c.edgeSpecs() {
		known[e.From] = struct{}{}
		known[e.To] = struct{}{}
	}
	for id := range c.Network.Labels {
		if _, ok := known[id]; !ok {
			return fmt.Errorf("%w: label for unknown vertex %q", ErrInvalid, id)
		}
	}
	return nil
}

// edgeSpecs returns the configured edges, or the campus edges when none are set.
func (c *Config) edgeSpecs() []builder.EdgeSpec {
	if len(c.Network.Edges) == 0 {
		return builder.CampusEdges()
	}
	specs := make([]builder.EdgeSpec, len(c.Network.Edges))
	for i, e := range c.Network.Edges {
		specs[i] = builder.EdgeSpec{From: e.From, To: e.To, Distance: e.Distance, SafetyScore: e.SafetyScore}
	}
	return specs
}

// Constructors returns the builder constructors for the configured network.
// Configured labels are applied last, so they override the campus names.
func (c *Config) Constructors() []builder.Constructor {
	cons := []builder.Constructor{builder.Campus()}
	if len(c.Network.Edges) > 0 {
		cons = []builder.Constructor{builder.EdgeList(c.edgeSpecs())}
	}
	if len(c.Network.Labels) > 0 {
		cons = append(cons, builder.Labels(c.Network.Labels))
	}
	return cons
}
