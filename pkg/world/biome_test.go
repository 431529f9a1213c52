package world

import (
	"math"
	"testing"
)

func TestBiomeStrings(t *testing.T) {
	tests := []struct {
		biome Biome
		want  string
	}{
		{BiomeTundra, "Tundra"},
		{BiomeTaiga, "Taiga"},
		{BiomeGrassland, "Grassland"},
		{BiomeTemperateDeciduousForest, "Temperate Deciduous Forest"},
		{BiomeTemperateRainforest, "Temperate Rainforest"},
		{BiomeSavanna, "Savanna"},
		{BiomeTropicalSeasonalForest, "Tropical Seasonal Forest"},
		{BiomeTropicalRainforest, "Tropical Rainforest"},
		{BiomeColdDesert, "Cold Desert"},
		{BiomeDesert, "Desert"},
		{BiomeOcean, "Ocean"},
		{BiomeDeepOcean, "Deep Ocean"},
		{BiomeBeach, "Beach"},
		{BiomeSnow, "Snow"},
		{BiomeIce, "Ice"},
		{BiomeMountainTundra, "Mountain Tundra"},
		{BiomeMountainForest, "Mountain Forest"},
		{BiomeMountainPeak, "Mountain Peak"},
		{biomeCount, "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.biome.String(); got != tt.want {
			t.Errorf("Biome(%d).String() = %q, want %q", tt.biome, got, tt.want)
		}
	}
}

func TestIsWater(t *testing.T) {
	for b := Biome(0); b < biomeCount; b++ {
		want := b == BiomeOcean || b == BiomeDeepOcean
		if got := b.IsWater(); got != want {
			t.Errorf("%v.IsWater() = %v, want %v", b, got, want)
		}
	}
}

func TestWaterBiomePartition(t *testing.T) {
	w := New(DefaultConfig())

	// Below sea level is always a water biome, at or above never.
	for _, p := range gridPoints() {
		h := w.TerrainHeight(p.Lon, p.Lat)
		biome := w.BiomeAt(p.Lon, p.Lat, math.Max(h, 0))
		if water := h < w.Config().SeaLevel; biome.IsWater() != water {
			t.Errorf("BiomeAt(%g,%g) = %v with height %g", p.Lon, p.Lat, biome, h)
		}
	}
}

func TestOceanDepthSplit(t *testing.T) {
	w := New(DefaultConfig())

	for _, p := range gridPoints() {
		h := w.TerrainHeight(p.Lon, p.Lat)
		if h >= w.Config().SeaLevel {
			continue
		}
		biome := w.BiomeAt(p.Lon, p.Lat, 0)
		if h < -1000 && biome != BiomeDeepOcean {
			t.Errorf("BiomeAt(%g,%g) = %v at depth %g, want Deep Ocean", p.Lon, p.Lat, biome, h)
		}
		if h >= -1000 && biome != BiomeOcean {
			t.Errorf("BiomeAt(%g,%g) = %v at depth %g, want Ocean", p.Lon, p.Lat, biome, h)
		}
	}
}

func TestBiomeDecisionOrder(t *testing.T) {
	w := New(DefaultConfig())

	// Synthetic heights and altitudes exercise each branch ahead of the
	// Whittaker lookup, at latitudes where the local temperature variation
	// cannot flip the outcome.
	tests := []struct {
		name     string
		lon, lat float64
		altitude float64
		height   float64
		want     Biome
	}{
		{"deep ocean", 0, 0, 0, -1500, BiomeDeepOcean},
		{"shelf ocean", 0, 0, 0, -400, BiomeOcean},
		{"beach", 0, 0, 3, 3, BiomeBeach},
		{"polar ice sheet", 0, 90, 40, 40, BiomeIce},
		{"polar snow pack", 0, 90, 600, 600, BiomeSnow},
		{"equatorial peak", 0, 0, 4500, 4500, BiomeMountainPeak},
		{"equatorial mountain forest", 0, 0, 2800, 2800, BiomeMountainForest},
		{"subtropical mountain tundra", 0, 25, 3000, 3000, BiomeMountainTundra},
	}
	for _, tt := range tests {
		if got := w.biomeAt(tt.lon, tt.lat, tt.altitude, tt.height); got != tt.want {
			t.Errorf("%s: biomeAt = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestWhittakerLookup(t *testing.T) {
	tests := []struct {
		temp, moisture float64
		want           Biome
	}{
		{-5, 0.2, BiomeColdDesert},
		{-5, 0.5, BiomeTundra},
		{5, 0.2, BiomeColdDesert},
		{5, 0.45, BiomeGrassland},
		{5, 0.8, BiomeTaiga},
		{15, 0.2, BiomeGrassland},
		{15, 0.45, BiomeTemperateDeciduousForest},
		{15, 0.8, BiomeTemperateRainforest},
		{25, 0.1, BiomeDesert},
		{25, 0.35, BiomeSavanna},
		{25, 0.6, BiomeTropicalSeasonalForest},
		{25, 0.9, BiomeTropicalRainforest},
	}
	for _, tt := range tests {
		if got := whittakerBiome(tt.temp, tt.moisture); got != tt.want {
			t.Errorf("whittakerBiome(%g, %g) = %v, want %v", tt.temp, tt.moisture, got, tt.want)
		}
	}
}
