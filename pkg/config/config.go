// Package config loads service configuration from TOML or YAML.
//
// The format is chosen by file extension (.toml, .yaml, .yml). Values absent
// from the file keep their [Default] value; command-line flags override both.
//
//	[server]
//	addr = ":10000"
//	cors_origins = ["*"]
//
//	[cache]
//	backend = "redis"
//	ttl = "12h"
//	redis.addr = "localhost:6379"
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/vennsets/pkg/errors"
)

// Backend names.
const (
	BackendNone   = "none"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
	BackendMongo  = "mongo"
)

// Config is the complete service configuration.
type Config struct {
	Server  ServerConfig  `toml:"server" yaml:"server"`
	Render  RenderConfig  `toml:"render" yaml:"render"`
	Cache   CacheConfig   `toml:"cache" yaml:"cache"`
	History HistoryConfig `toml:"history" yaml:"history"`
	Log     LogConfig     `toml:"log" yaml:"log"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr         string   `toml:"addr" yaml:"addr"`
	CORSOrigins  []string `toml:"cors_origins" yaml:"cors_origins"`
	ReadTimeout  Duration `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout" yaml:"write_timeout"`
	MaxBodyBytes int64    `toml:"max_body_bytes" yaml:"max_body_bytes"`
}

// RenderConfig configures image output.
type RenderConfig struct {
	Scale float64 `toml:"scale" yaml:"scale"`
}

// CacheConfig selects and configures the render cache.
type CacheConfig struct {
	Backend string      `toml:"backend" yaml:"backend"` // none, file, redis
	Dir     string      `toml:"dir" yaml:"dir"`         // file backend; empty uses the user cache dir
	TTL     Duration    `toml:"ttl" yaml:"ttl"`
	Prefix  string      `toml:"prefix" yaml:"prefix"`
	Redis   RedisConfig `toml:"redis" yaml:"redis"`
}

// RedisConfig configures the Redis cache backend.
type RedisConfig struct {
	Addr     string `toml:"addr" yaml:"addr"`
	Password string `toml:"password" yaml:"password"`
	DB       int    `toml:"db" yaml:"db"`
}

// HistoryConfig selects and configures the render history.
type HistoryConfig struct {
	Backend  string      `toml:"backend" yaml:"backend"` // none, memory, mongo
	Capacity int         `toml:"capacity" yaml:"capacity"`
	Mongo    MongoConfig `toml:"mongo" yaml:"mongo"`
}

// MongoConfig configures the MongoDB history backend.
type MongoConfig struct {
	URI        string `toml:"uri" yaml:"uri"`
	Database   string `toml:"database" yaml:"database"`
	Collection string `toml:"collection" yaml:"collection"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"` // debug, info, warn, error
}

// Duration is a time.Duration written as a Go duration string ("30s").
type Duration time.Duration

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         ":10000",
			CORSOrigins:  []string{"*"},
			ReadTimeout:  Duration(30 * time.Second),
			WriteTimeout: Duration(60 * time.Second),
			MaxBodyBytes: 1 << 20,
		},
		Render: RenderConfig{Scale: 1},
		Cache: CacheConfig{
			Backend: BackendFile,
			TTL:     Duration(24 * time.Hour),
			Redis:   RedisConfig{Addr: "localhost:6379"},
		},
		History: HistoryConfig{
			Backend:  BackendMemory,
			Capacity: 100,
			Mongo:    MongoConfig{Database: "vennsets", Collection: "renders"},
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config")
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		meta, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %s", path, undecoded[0])
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unsupported config format %q (want .toml, .yaml or .yml)", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks backend names, required connection settings and ranges.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return invalid("server.addr is required")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return invalid("server.max_body_bytes must be positive")
	}
	if c.Render.Scale <= 0 || c.Render.Scale > 4 {
		return invalid("render.scale must be in (0, 4], got %v", c.Render.Scale)
	}

	if !slices.Contains([]string{BackendNone, BackendFile, BackendRedis}, c.Cache.Backend) {
		return invalid("cache.backend %q must be one of none, file, redis", c.Cache.Backend)
	}
	if c.Cache.Backend == BackendRedis && c.Cache.Redis.Addr == "" {
		return invalid("cache.redis.addr is required for the redis backend")
	}
	if c.Cache.TTL < 0 {
		return invalid("cache.ttl must not be negative")
	}

	if !slices.Contains([]string{BackendNone, BackendMemory, BackendMongo}, c.History.Backend) {
		return invalid("history.backend %q must be one of none, memory, mongo", c.History.Backend)
	}
	if c.History.Backend == BackendMongo && c.History.Mongo.URI == "" {
		return invalid("history.mongo.uri is required for the mongo backend")
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level: %v", err)
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

func invalid(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidConfig, "%s", fmt.Sprintf(format, args...))
}
