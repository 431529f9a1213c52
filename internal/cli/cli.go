// Package cli binds world configuration to command-line flags for the
// rworld binaries and reconciles flags with configuration files.
package cli

import (
	"flag"

	"github.com/daver64/rworld/pkg/world"
)

// BindConfigFlags registers a flag for every tunable world parameter,
// defaulting to the values already in cfg. Call before flag.Parse.
func BindConfigFlags(cfg *world.Config) {
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world seed")
	flag.Float64Var(&cfg.WorldScale, "scale", cfg.WorldScale, "global noise frequency multiplier")
	flag.IntVar(&cfg.DayOfYear, "day", cfg.DayOfYear, "day of year, 0-364")
	flag.Float64Var(&cfg.EquatorTemperature, "equator-temp", cfg.EquatorTemperature, "sea-level temperature at the equator in C")
	flag.Float64Var(&cfg.PoleTemperature, "pole-temp", cfg.PoleTemperature, "sea-level temperature at the poles in C")
	flag.Float64Var(&cfg.TemperatureLapseRate, "lapse-rate", cfg.TemperatureLapseRate, "temperature drop in C per 1000 m of altitude")
	flag.Float64Var(&cfg.SeaLevel, "sea-level", cfg.SeaLevel, "sea level in meters")
	flag.Float64Var(&cfg.MaxTerrainHeight, "max-height", cfg.MaxTerrainHeight, "maximum terrain height in meters")
}

// ExplicitFlags returns the names of the flags given on the command line.
// Call after flag.Parse.
func ExplicitFlags() map[string]bool {
	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	return explicit
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were not explicitly set via CLI flags. Fields without a flag always
// come from the file.
func Merge(cfg *world.Config, fromFile world.Config, explicitFlags map[string]bool) {
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["scale"] {
		cfg.WorldScale = fromFile.WorldScale
	}
	if !explicitFlags["day"] {
		cfg.DayOfYear = fromFile.DayOfYear
	}
	if !explicitFlags["equator-temp"] {
		cfg.EquatorTemperature = fromFile.EquatorTemperature
	}
	if !explicitFlags["pole-temp"] {
		cfg.PoleTemperature = fromFile.PoleTemperature
	}
	if !explicitFlags["lapse-rate"] {
		cfg.TemperatureLapseRate = fromFile.TemperatureLapseRate
	}
	if !explicitFlags["sea-level"] {
		cfg.SeaLevel = fromFile.SeaLevel
	}
	if !explicitFlags["max-height"] {
		cfg.MaxTerrainHeight = fromFile.MaxTerrainHeight
	}

	cfg.TerrainFrequency = fromFile.TerrainFrequency
	cfg.TerrainOctaves = fromFile.TerrainOctaves
	cfg.TerrainLacunarity = fromFile.TerrainLacunarity
	cfg.TerrainGain = fromFile.TerrainGain
	cfg.MoistureFrequency = fromFile.MoistureFrequency
	cfg.MoistureOctaves = fromFile.MoistureOctaves
}
