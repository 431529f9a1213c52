// Package world answers deterministic environmental point queries for a
// procedurally generated planet: terrain elevation, climate, weather,
// hydrology, geology, soil, vegetation and biome classification, all derived
// from one seed. A World holds no mutable state besides its configuration,
// so identical inputs always produce identical outputs.
//
// Input handling is uniform across all queries: longitude is wrapped into
// [-180, 180), latitude clamped to [-90, 90], time-of-day wrapped into
// [0, 24) and detail clamped to >= 1.
package world

import (
	"math"

	"github.com/daver64/rworld/pkg/noise"
)

// Per-field seed offsets. Every field seeds from the world seed plus a fixed
// offset so no two fields correlate for a given seed.
const (
	seedOffsetTerrain  = 0
	seedOffsetMoisture = 1000
	seedOffsetTempVar  = 2000
	seedOffsetWind     = 3000
	seedOffsetRiver    = 4000
	seedOffsetCloud    = 5000
	seedOffsetVolcano  = 6000
	seedOffsetCoal     = 7000
	seedOffsetIron     = 8000
	seedOffsetOil      = 9000
	seedOffsetWeather  = 10000
	seedOffsetPressure = 11000
)

// fieldBank holds the per-field noise samplers. Reinitialized wholesale on
// every configuration change.
type fieldBank struct {
	terrain       *noise.FBM
	terrainDetail *noise.FBM
	moisture      *noise.FBM
	tempVar       *noise.FBM
	wind          *noise.Perlin
	river         *noise.Perlin
	cloud         *noise.Perlin
	volcano       *noise.Cellular
	coal          *noise.FBM
	iron          *noise.FBM
	oil           *noise.FBM
	weather       *noise.FBM
	pressure      *noise.FBM
}

func newFieldBank(cfg Config) fieldBank {
	s := cfg.Seed
	k := cfg.WorldScale
	return fieldBank{
		terrain: noise.NewFBM(s+seedOffsetTerrain, cfg.TerrainFrequency*k,
			cfg.TerrainOctaves, cfg.TerrainLacunarity, cfg.TerrainGain),
		// Same seed as terrain: the detail octaves continue the terrain
		// fractal past its configured octave count.
		terrainDetail: noise.NewFBM(s+seedOffsetTerrain,
			cfg.TerrainFrequency*k*terrainDetailFreqScale, 3,
			cfg.TerrainLacunarity, cfg.TerrainGain),
		moisture: noise.NewFBM(s+seedOffsetMoisture, cfg.MoistureFrequency*k,
			cfg.MoistureOctaves, 2.0, 0.5),
		tempVar:  noise.NewFBM(s+seedOffsetTempVar, 0.003*k, 1, 2.0, 0.5),
		wind:     noise.NewPerlin(s+seedOffsetWind, 0.004*k, 2, 2, 3),
		river:    noise.NewPerlin(s+seedOffsetRiver, 0.03*k, 2, 2, 2),
		cloud:    noise.NewPerlin(s+seedOffsetCloud, 0.008*k, 2, 2, 3),
		volcano:  noise.NewCellular(s+seedOffsetVolcano, 0.004*k),
		coal:     noise.NewFBM(s+seedOffsetCoal, 0.015*k, 3, 2.0, 0.5),
		iron:     noise.NewFBM(s+seedOffsetIron, 0.02*k, 3, 2.0, 0.5),
		oil:      noise.NewFBM(s+seedOffsetOil, 0.012*k, 2, 2.0, 0.5),
		weather:  noise.NewFBM(s+seedOffsetWeather, 0.01*k, 2, 2.0, 0.5),
		pressure: noise.NewFBM(s+seedOffsetPressure, 0.003*k, 2, 2.0, 0.5),
	}
}

// World answers environmental point queries for one generated planet. Use it
// through a pointer; the noise bank is not meaningfully copyable.
//
// Concurrent read queries against one World are safe: queries never mutate
// state. SetConfig is the sole mutating operation and must be serialized
// against in-flight queries by the caller.
type World struct {
	cfg  Config
	bank fieldBank
}

// New creates a World from a configuration. The configuration is not
// validated here; use Config.Validate or LoadConfig when inputs are
// untrusted.
func New(cfg Config) *World {
	return &World{cfg: cfg, bank: newFieldBank(cfg)}
}

// SetConfig atomically replaces the configuration and rebuilds every noise
// field from the new seed. Not safe to call concurrently with queries.
func (w *World) SetConfig(cfg Config) {
	w.cfg = cfg
	w.bank = newFieldBank(cfg)
}

// Config returns a copy of the current configuration.
func (w *World) Config() Config {
	return w.cfg
}

// sphereRadius is the radius of the sphere the planet surface is projected
// onto in noise space. Arbitrary but fixed: all field frequencies are tuned
// against it.
const sphereRadius = 1000.0

// project maps geographic coordinates onto the noise-space sphere. Sampling
// noise at the projected point keeps fields continuous across the ±180°
// meridian and at both poles.
func project(lon, lat float64) (x, y, z float64) {
	lonRad := lon * math.Pi / 180
	latRad := lat * math.Pi / 180
	x = sphereRadius * math.Cos(latRad) * math.Cos(lonRad)
	y = sphereRadius * math.Cos(latRad) * math.Sin(lonRad)
	z = sphereRadius * math.Sin(latRad)
	return x, y, z
}

// normalizeLonLat wraps longitude into [-180, 180) and clamps latitude to
// [-90, 90]. Applied by every public query before sampling.
func normalizeLonLat(lon, lat float64) (float64, float64) {
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	lon -= 180

	if lat < -90 {
		lat = -90
	} else if lat > 90 {
		lat = 90
	}
	return lon, lat
}

// normalizeHour wraps an hour of day into [0, 24).
func normalizeHour(hour float64) float64 {
	hour = math.Mod(hour, 24)
	if hour < 0 {
		hour += 24
	}
	return hour
}

// normalizeDegrees wraps an angle into [0, 360).
func normalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
