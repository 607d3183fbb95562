// Package config loads the burrow configuration file.
//
// The file is YAML; it is decoded into a generic map first and then into the
// typed Config with mapstructure, so durations may be written as "24h" and
// numbers as strings. Every section is optional:
//
//	layout:
//	  hallway: 11
//	  rooms:
//	    - {kind: A, column: 2, cost: 1}
//	solver: {max_energy: 0, return_path: false}
//	cache:  {redis_addr: "", prefix: "burrow:solve:", ttl: 24h}
//	log:    {level: info}
//	server: {addr: ":8080"}
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/burrow/board"
	"github.com/katalvlaran/burrow/internal/logging"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration file that parses but makes no sense.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full application configuration.
type Config struct {
	Layout LayoutConfig `mapstructure:"layout"`
	Solver SolverConfig `mapstructure:"solver"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Log    LogConfig    `mapstructure:"log"`
	Server ServerConfig `mapstructure:"server"`
}

// LayoutConfig describes the board geometry. No rooms means the standard board.
type LayoutConfig struct {
	Hallway int          `mapstructure:"hallway"`
	Rooms   []RoomConfig `mapstructure:"rooms"`
}

// RoomConfig places one room.
type RoomConfig struct {
	Kind   string `mapstructure:"kind"`
	Column int    `mapstructure:"column"`
	Cost   int64  `mapstructure:"cost"`
}

// SolverConfig tunes dijkstra.Solve. MaxEnergy 0 means no cap.
type SolverConfig struct {
	MaxEnergy  int64 `mapstructure:"max_energy"`
	ReturnPath bool  `mapstructure:"return_path"`
}

// CacheConfig selects the result cache. An empty RedisAddr keeps results in memory.
type CacheConfig struct {
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	Prefix        string        `mapstructure:"prefix"`
	TTL           time.Duration `mapstructure:"ttl"`
	Disabled      bool          `mapstructure:"disabled"`
}

// LogConfig sets the log level (debug, info, warn, error).
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// ServerConfig configures `burrow serve`.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Layout: LayoutConfig{Hallway: board.Standard().HallwayLen},
		Cache:  CacheConfig{Prefix: "burrow:solve:", TTL: 24 * time.Hour},
		Log:    LogConfig{Level: "info"},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// Load reads path over the defaults. An empty path or a missing file yields
// Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML data over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the values that decoding cannot.
func (c Config) Validate() error {
	if _, err := c.BoardLayout(); err != nil {
		return err
	}
	if c.Solver.MaxEnergy < 0 {
		return fmt.Errorf("%w: solver.max_energy must be >= 0", ErrInvalidConfig)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("%w: cache.ttl must be >= 0", ErrInvalidConfig)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// BoardLayout converts the layout section into a validated board.Layout.
func (c Config) BoardLayout() (board.Layout, error) {
	if len(c.Layout.Rooms) == 0 {
		return board.Standard(), nil
	}
	l := board.Layout{HallwayLen: c.Layout.Hallway}
	for _, r := range c.Layout.Rooms {
		if len(r.Kind) != 1 {
			return board.Layout{}, fmt.Errorf("%w: room kind %q must be a single character", ErrInvalidConfig, r.Kind)
		}
		l.Rooms = append(l.Rooms, board.RoomSpec{Kind: r.Kind[0], Column: r.Column, StepCost: r.Cost})
	}
	if err := l.Validate(); err != nil {
		return board.Layout{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return l, nil
}
