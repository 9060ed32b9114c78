package world

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the fixed parameters of a map. A map never changes its config
// after creation, since every cached tile depends on it.
type Config struct {
	// Number of raw seed points sampled in each tile
	PointsPerTile int `yaml:"points_per_tile"`
	// Number of Lloyd relaxation rounds applied to the seeds
	Relaxations int `yaml:"relaxations"`
	// Radius, in tiles, of the neighborhood triangulated around a tile. Cells
	// near the outside of the neighborhood are distorted, so this must be large
	// enough that none of those cells can reach the center tile.
	Padding int `yaml:"padding"`
}

func DefaultConfig() Config {
	return Config{
		PointsPerTile: 5,
		Relaxations:   2,
		Padding:       2,
	}
}

func (c Config) Validate() error {
	if c.PointsPerTile < 1 {
		return errors.Errorf("points per tile must be positive, got %d", c.PointsPerTile)
	}
	if c.Relaxations < 0 {
		return errors.Errorf("relaxations must not be negative, got %d", c.Relaxations)
	}
	if c.Padding < 1 {
		return errors.Errorf("padding must be at least 1, got %d", c.Padding)
	}
	return nil
}

// Read a YAML config. Missing keys keep their default value, and unknown keys
// are an error.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}
