package world

import "math"

const (
	// oceanDepthScale maps shaped ocean noise into [-4000, 0] meters.
	oceanDepthScale = 4000.0

	// landShapeExponent flattens lowlands while keeping occasional peaks.
	landShapeExponent = 0.7

	// terrainDetailFreqScale is where the detail octaves pick up relative to
	// the base terrain frequency.
	terrainDetailFreqScale = 64.0

	// terrainDetailAmplitude bounds how far full-strength detail octaves can
	// push the raw terrain noise.
	terrainDetailAmplitude = 0.12
)

// TerrainHeight returns the terrain height in meters at the given
// coordinates, negative below sea level. Classification-grade: identical to
// TerrainHeightDetail at detail 1.
func (w *World) TerrainHeight(lon, lat float64) float64 {
	lon, lat = normalizeLonLat(lon, lat)
	return w.terrainHeight(lon, lat, 1)
}

// TerrainHeightDetail returns terrain height with extra fine relief blended
// in as detail grows past 1, reaching full strength at detail 5. Climate and
// biome queries always use detail 1 so elevation-dependent classification is
// zoom-invariant.
func (w *World) TerrainHeightDetail(lon, lat, detail float64) float64 {
	lon, lat = normalizeLonLat(lon, lat)
	if detail < 1 {
		detail = 1
	}
	return w.terrainHeight(lon, lat, detail)
}

// terrainHeight computes terrain height at already-normalized coordinates.
func (w *World) terrainHeight(lon, lat, detail float64) float64 {
	x, y, z := project(lon, lat)
	n := w.bank.terrain.Sample(x, y, z)

	if detail > 1 {
		weight := clamp((detail-1)/4, 0, 1)
		n += w.bank.terrainDetail.Sample(x, y, z) * terrainDetailAmplitude * weight
		n = clamp(n, -1, 1)
	}

	// Asymmetric hypsometry: a quartic falloff below zero carves broad
	// shallow shelves and deep basins, a gentler power curve above zero
	// spreads lowlands with occasional peaks.
	var h float64
	if n < 0 {
		n = -(n * n)
		n = -(n * n)
		h = n * oceanDepthScale
	} else {
		h = math.Pow(n, landShapeExponent) * w.cfg.MaxTerrainHeight
	}

	// Volcanic cones rise only from land and ignore detail so they stay put
	// at every zoom level.
	if h > w.cfg.SeaLevel {
		if p := w.volcanoProximity(x, y, z); p > 0 {
			h += volcanoCone(p, h)
			if h > w.cfg.MaxTerrainHeight {
				h = w.cfg.MaxTerrainHeight
			}
		}
	}
	return h
}
