package world

import "math"

// Soil classifies ground composition.
type Soil uint8

const (
	SoilNone Soil = iota // underwater
	SoilPermafrost
	SoilPeat
	SoilRocky
	SoilSand
	SoilLoam
	SoilClay
	SoilSilt
)

// String returns the human-readable soil name.
func (s Soil) String() string {
	switch s {
	case SoilNone:
		return "None"
	case SoilPermafrost:
		return "Permafrost"
	case SoilPeat:
		return "Peat"
	case SoilRocky:
		return "Rocky"
	case SoilSand:
		return "Sand"
	case SoilLoam:
		return "Loam"
	case SoilClay:
		return "Clay"
	case SoilSilt:
		return "Silt"
	default:
		return "Unknown"
	}
}

// Per-soil baselines for fertility, pH and organic matter.
var soilBase = [...]struct {
	fertility float64
	ph        float64
	organic   float64
}{
	SoilNone:       {0, 7.0, 0},
	SoilPermafrost: {0.1, 6.0, 0.15},
	SoilPeat:       {0.55, 4.8, 0.9},
	SoilRocky:      {0.15, 6.8, 0.05},
	SoilSand:       {0.25, 7.5, 0.05},
	SoilLoam:       {0.85, 6.8, 0.5},
	SoilClay:       {0.6, 6.2, 0.4},
	SoilSilt:       {0.7, 6.5, 0.45},
}

// SoilType classifies the soil at the given coordinates and altitude:
// permafrost where frozen, peat in drenched lowlands, rock on high slopes,
// sand under deserts and beaches, then loam/clay/silt by climate.
func (w *World) SoilType(lon, lat, altitude float64) Soil {
	lon, lat = normalizeLonLat(lon, lat)
	return w.soilType(lon, lat, altitude, w.terrainHeight(lon, lat, 1))
}

func (w *World) soilType(lon, lat, altitude, height float64) Soil {
	if height < w.cfg.SeaLevel {
		return SoilNone
	}

	temp := w.temperature(lon, lat, altitude)
	precip := w.precipitation(lon, lat, altitude, height)
	biome := w.biomeAt(lon, lat, altitude, height)

	switch {
	case temp < -5 || biome == BiomeIce || biome == BiomeSnow || biome == BiomeMountainPeak:
		return SoilPermafrost
	case precip > 2200 && height < 500:
		return SoilPeat
	case altitude > 2500 || biome == BiomeMountainTundra:
		return SoilRocky
	case biome == BiomeDesert || biome == BiomeColdDesert || biome == BiomeBeach:
		return SoilSand
	case (biome == BiomeGrassland || biome == BiomeSavanna) && precip >= 400:
		return SoilLoam
	case precip > 1400 && temp < 20:
		return SoilClay
	case precip >= 600:
		return SoilSilt
	default:
		return SoilSand
	}
}

// SoilFertility scores how well the soil supports growth, in [0, 1]. The
// soil-type baseline is fed by vegetation, scaled by a decomposition-rate
// factor, and worn down by leaching and slope erosion.
func (w *World) SoilFertility(lon, lat, altitude float64) float64 {
	lon, lat = normalizeLonLat(lon, lat)
	return w.soilFertility(lon, lat, altitude, w.terrainHeight(lon, lat, 1))
}

func (w *World) soilFertility(lon, lat, altitude, height float64) float64 {
	soil := w.soilType(lon, lat, altitude, height)
	if soil == SoilNone {
		return 0
	}
	f := soilBase[soil].fertility

	f += w.vegetationDensity(lon, lat, altitude, height) * 0.2

	// Decomposition runs fastest in warm, not hot, climates.
	temp := w.temperature(lon, lat, altitude)
	decomposition := clamp(1-math.Abs(temp-18)/35, 0.3, 1)
	f *= 0.6 + decomposition*0.4

	precip := w.precipitation(lon, lat, altitude, height)
	if precip > 2000 {
		f *= clamp(1-(precip-2000)/4000, 0.6, 1) // heavy rain leaches nutrients
	}
	if altitude > 1500 {
		f *= clamp(1-(altitude-1500)/6000, 0.5, 1) // slope erosion
	}
	return clamp(f, 0, 1)
}

// SoilPH returns the soil pH in [4, 9]. Forest litter acidifies, desert
// evaporites alkalize, and precipitation leaches pH downward.
func (w *World) SoilPH(lon, lat, altitude float64) float64 {
	lon, lat = normalizeLonLat(lon, lat)
	return w.soilPH(lon, lat, altitude, w.terrainHeight(lon, lat, 1))
}

func (w *World) soilPH(lon, lat, altitude, height float64) float64 {
	soil := w.soilType(lon, lat, altitude, height)
	if soil == SoilNone {
		return 7
	}
	ph := soilBase[soil].ph

	switch w.biomeAt(lon, lat, altitude, height) {
	case BiomeTaiga, BiomeTemperateDeciduousForest, BiomeTemperateRainforest,
		BiomeTropicalSeasonalForest, BiomeTropicalRainforest, BiomeMountainForest:
		ph -= 0.5
	case BiomeDesert, BiomeColdDesert:
		ph += 0.6
	}

	precip := w.precipitation(lon, lat, altitude, height)
	ph -= precip / 4000 * 0.8

	return clamp(ph, 4, 9)
}

// SoilOrganicMatter returns the organic fraction of the soil in [0, 1],
// blending the soil-type baseline with local vegetation; heat burns
// organics off.
func (w *World) SoilOrganicMatter(lon, lat, altitude float64) float64 {
	lon, lat = normalizeLonLat(lon, lat)
	return w.soilOrganicMatter(lon, lat, altitude, w.terrainHeight(lon, lat, 1))
}

func (w *World) soilOrganicMatter(lon, lat, altitude, height float64) float64 {
	soil := w.soilType(lon, lat, altitude, height)
	if soil == SoilNone {
		return 0
	}

	organic := soilBase[soil].organic*0.6 + w.vegetationDensity(lon, lat, altitude, height)*0.4

	temp := w.temperature(lon, lat, altitude)
	if temp > 25 {
		organic *= clamp(1-(temp-25)/40, 0.4, 1)
	}
	return clamp(organic, 0, 1)
}
