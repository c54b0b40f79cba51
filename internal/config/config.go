package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/tabletop/internal/core/observability/log"
	"github.com/zeusync/tabletop/internal/core/player"
	"github.com/zeusync/tabletop/internal/core/record"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config describes how a table runs. It reads from JSON or YAML.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level" yaml:"log_level"`
	// Masters are the player IDs that see everything on the table.
	Masters []int `json:"masters" yaml:"masters"`
	// SnapshotFormat is json or yaml.
	SnapshotFormat string `json:"snapshot_format" yaml:"snapshot_format"`
}

func Default() *Config {
	return &Config{
		LogLevel:       log.LevelInfo.String(),
		Masters:        []int{int(player.Master)},
		SnapshotFormat: string(record.FormatJSON),
	}
}

// LoadJSON loads config from JSON reader. Missing keys keep their defaults.
func LoadJSON(r io.Reader) (*Config, error) {
	c := Default()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return nil, err
	}
	return c, c.Validate()
}

// LoadYAML loads config from YAML reader. Missing keys keep their defaults.
func LoadYAML(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return c, c.Validate()
}

// Load reads path, choosing the decoder from its extension.
func Load(path string) (*Config, error) {
	format, err := record.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if format == record.FormatYAML {
		return LoadYAML(f)
	}
	return LoadJSON(f)
}

func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := record.ParseFormat(c.SnapshotFormat); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if len(c.Masters) == 0 {
		return fmt.Errorf("%w: at least one master is required", ErrInvalidConfig)
	}
	return nil
}

func (c *Config) Level() log.Level {
	level, _ := log.ParseLevel(c.LogLevel)
	return level
}

func (c *Config) Format() record.Format {
	format, _ := record.ParseFormat(c.SnapshotFormat)
	return format
}

func (c *Config) MasterIDs() []player.ID {
	ids := make([]player.ID, len(c.Masters))
	for i, id := range c.Masters {
		ids[i] = player.ID(id)
	}
	return ids
}
