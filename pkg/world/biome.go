package world

// Biome identifies one of the planet's biome classes.
type Biome uint8

const (
	BiomeTundra Biome = iota
	BiomeTaiga
	BiomeGrassland
	BiomeTemperateDeciduousForest
	BiomeTemperateRainforest
	BiomeSavanna
	BiomeTropicalSeasonalForest
	BiomeTropicalRainforest
	BiomeColdDesert
	BiomeDesert
	BiomeOcean
	BiomeDeepOcean
	BiomeBeach
	BiomeSnow
	BiomeIce
	BiomeMountainTundra
	BiomeMountainForest
	BiomeMountainPeak

	biomeCount // keep last
)

// String returns the human-readable biome name.
func (b Biome) String() string {
	switch b {
	case BiomeTundra:
		return "Tundra"
	case BiomeTaiga:
		return "Taiga"
	case BiomeGrassland:
		return "Grassland"
	case BiomeTemperateDeciduousForest:
		return "Temperate Deciduous Forest"
	case BiomeTemperateRainforest:
		return "Temperate Rainforest"
	case BiomeSavanna:
		return "Savanna"
	case BiomeTropicalSeasonalForest:
		return "Tropical Seasonal Forest"
	case BiomeTropicalRainforest:
		return "Tropical Rainforest"
	case BiomeColdDesert:
		return "Cold Desert"
	case BiomeDesert:
		return "Desert"
	case BiomeOcean:
		return "Ocean"
	case BiomeDeepOcean:
		return "Deep Ocean"
	case BiomeBeach:
		return "Beach"
	case BiomeSnow:
		return "Snow"
	case BiomeIce:
		return "Ice"
	case BiomeMountainTundra:
		return "Mountain Tundra"
	case BiomeMountainForest:
		return "Mountain Forest"
	case BiomeMountainPeak:
		return "Mountain Peak"
	default:
		return "Unknown"
	}
}

// IsWater reports whether the biome is ocean or deep ocean.
func (b Biome) IsWater() bool {
	return b == BiomeOcean || b == BiomeDeepOcean
}

// BiomeAt classifies the biome at the given coordinates and altitude. The
// decision order is fixed: ocean depth, beach, ice/snow, altitude overrides,
// then the Whittaker temperature/moisture lookup.
func (w *World) BiomeAt(lon, lat, altitude float64) Biome {
	lon, lat = normalizeLonLat(lon, lat)
	return w.biomeAt(lon, lat, altitude, w.terrainHeight(lon, lat, 1))
}

func (w *World) biomeAt(lon, lat, altitude, height float64) Biome {
	if height < w.cfg.SeaLevel {
		if height < -1000 {
			return BiomeDeepOcean
		}
		return BiomeOcean
	}

	if height < 5 {
		return BiomeBeach
	}

	temp := w.temperature(lon, lat, altitude)

	if temp < -15 {
		if height < 100 {
			return BiomeIce
		}
		return BiomeSnow
	}

	if altitude > 4000 {
		return BiomeMountainPeak
	}
	if altitude > 2500 {
		if temp < 0 {
			return BiomeMountainTundra
		}
		return BiomeMountainForest
	}

	return whittakerBiome(temp, w.moisture(lon, lat))
}

// whittakerBiome maps temperature and moisture onto the Whittaker diagram.
//
//	Temp\Moist  | Dry (<0.3)    | Medium (0.3-0.6)  | Wet (>0.6)
//	< 0 °C      | Cold Desert   | Tundra            | Tundra
//	0-10 °C     | Cold Desert   | Grassland         | Taiga
//	10-20 °C    | Grassland     | Deciduous Forest  | Temp. Rainforest
//	> 20 °C     | Desert (<0.2) | Savanna (<0.5)    | Seasonal (<0.7) / Trop. Rainforest
func whittakerBiome(temp, moisture float64) Biome {
	switch {
	case temp < 0:
		if moisture < 0.3 {
			return BiomeColdDesert
		}
		return BiomeTundra
	case temp < 10:
		switch {
		case moisture < 0.3:
			return BiomeColdDesert
		case moisture < 0.6:
			return BiomeGrassland
		default:
			return BiomeTaiga
		}
	case temp < 20:
		switch {
		case moisture < 0.3:
			return BiomeGrassland
		case moisture < 0.6:
			return BiomeTemperateDeciduousForest
		default:
			return BiomeTemperateRainforest
		}
	default:
		switch {
		case moisture < 0.2:
			return BiomeDesert
		case moisture < 0.5:
			return BiomeSavanna
		case moisture < 0.7:
			return BiomeTropicalSeasonalForest
		default:
			return BiomeTropicalRainforest
		}
	}
}
