package world

// vegetationBase is the per-biome baseline density before climate
// modulation.
var vegetationBase = [biomeCount]float64{
	BiomeTundra:                   0.15,
	BiomeTaiga:                    0.6,
	BiomeGrassland:                0.5,
	BiomeTemperateDeciduousForest: 0.8,
	BiomeTemperateRainforest:      0.95,
	BiomeSavanna:                  0.4,
	BiomeTropicalSeasonalForest:   0.75,
	BiomeTropicalRainforest:       1.0,
	BiomeColdDesert:               0.08,
	BiomeDesert:                   0.05,
	BiomeOcean:                    0,
	BiomeDeepOcean:                0,
	BiomeBeach:                    0.1,
	BiomeSnow:                     0.02,
	BiomeIce:                      0,
	BiomeMountainTundra:           0.12,
	BiomeMountainForest:           0.55,
	BiomeMountainPeak:             0,
}

// VegetationDensity returns plant cover in [0, 1]: the biome baseline
// scaled by water availability, temperature suitability, an altitude
// penalty above 2000 m, and ±15% noise patchiness.
func (w *World) VegetationDensity(lon, lat, altitude float64) float64 {
	lon, lat = normalizeLonLat(lon, lat)
	return w.vegetationDensity(lon, lat, altitude, w.terrainHeight(lon, lat, 1))
}

func (w *World) vegetationDensity(lon, lat, altitude, height float64) float64 {
	base := vegetationBase[w.biomeAt(lon, lat, altitude, height)]
	if base == 0 {
		return 0
	}

	precip := w.precipitation(lon, lat, altitude, height)
	waterFactor := clamp(precip/1000, 0.3, 1.2)

	temp := w.temperature(lon, lat, altitude)
	tempFactor := 1.0
	switch {
	case temp < 0:
		tempFactor = clamp(1+temp/30, 0.2, 1)
	case temp > 30:
		tempFactor = clamp(1-(temp-30)/25, 0.3, 1)
	}

	altFactor := 1.0
	if altitude > 2000 {
		altFactor = clamp(1-(altitude-2000)/3000, 0, 1)
	}

	x, y, z := project(lon, lat)
	patchiness := 1 + w.bank.moisture.Sample(x+fieldOffset, y+fieldOffset, z+fieldOffset)*0.15

	return clamp(base*waterFactor*tempFactor*altFactor*patchiness, 0, 1)
}
