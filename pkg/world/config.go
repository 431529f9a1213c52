package world

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every parameter a World derives its fields from. It is a
// plain value: adopt it with New or SetConfig, after which the World keeps
// its own copy.
type Config struct {
	Seed       int64   `yaml:"seed"`
	WorldScale float64 `yaml:"world_scale"`
	DayOfYear  int     `yaml:"day_of_year"` // 0-364

	EquatorTemperature   float64 `yaml:"equator_temperature"`    // °C at sea level
	PoleTemperature      float64 `yaml:"pole_temperature"`       // °C at sea level
	TemperatureLapseRate float64 `yaml:"temperature_lapse_rate"` // °C per 1000 m

	SeaLevel         float64 `yaml:"sea_level"`          // meters
	MaxTerrainHeight float64 `yaml:"max_terrain_height"` // meters

	TerrainFrequency  float64 `yaml:"terrain_frequency"`
	TerrainOctaves    int     `yaml:"terrain_octaves"`
	TerrainLacunarity float64 `yaml:"terrain_lacunarity"`
	TerrainGain       float64 `yaml:"terrain_gain"`
	MoistureFrequency float64 `yaml:"moisture_frequency"`
	MoistureOctaves   int     `yaml:"moisture_octaves"`
}

// DefaultConfig returns an Earth-like configuration.
func DefaultConfig() Config {
	return Config{
		Seed:                 12345,
		WorldScale:           1.0,
		DayOfYear:            80,
		EquatorTemperature:   30.0,
		PoleTemperature:      -40.0,
		TemperatureLapseRate: 6.5,
		SeaLevel:             0.0,
		MaxTerrainHeight:     8848.0,
		TerrainFrequency:     0.001,
		TerrainOctaves:       6,
		TerrainLacunarity:    2.0,
		TerrainGain:          0.5,
		MoistureFrequency:    0.002,
		MoistureOctaves:      4,
	}
}

// Validate reports the first problem that would make the configuration
// unusable for field generation.
func (c Config) Validate() error {
	if c.WorldScale <= 0 {
		return fmt.Errorf("world_scale must be positive, got %g", c.WorldScale)
	}
	if c.DayOfYear < 0 || c.DayOfYear > 364 {
		return fmt.Errorf("day_of_year must be in 0..364, got %d", c.DayOfYear)
	}
	if c.MaxTerrainHeight <= 0 {
		return fmt.Errorf("max_terrain_height must be positive, got %g", c.MaxTerrainHeight)
	}
	if c.EquatorTemperature <= c.PoleTemperature {
		return fmt.Errorf("equator_temperature (%g) must exceed pole_temperature (%g)",
			c.EquatorTemperature, c.PoleTemperature)
	}
	if c.TerrainFrequency <= 0 || c.MoistureFrequency <= 0 {
		return fmt.Errorf("noise frequencies must be positive")
	}
	if c.TerrainOctaves < 1 || c.MoistureOctaves < 1 {
		return fmt.Errorf("octave counts must be at least 1")
	}
	if c.TerrainLacunarity <= 1 {
		return fmt.Errorf("terrain_lacunarity must exceed 1, got %g", c.TerrainLacunarity)
	}
	if c.TerrainGain <= 0 || c.TerrainGain >= 1 {
		return fmt.Errorf("terrain_gain must be in (0, 1), got %g", c.TerrainGain)
	}
	return nil
}

// LoadConfig reads a YAML configuration file. Absent fields keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("world config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("world config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("world config: %s: %w", path, err)
	}
	return cfg, nil
}
