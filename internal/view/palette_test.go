package view

import (
	"image/color"
	"testing"

	"github.com/daver64/rworld/pkg/world"
)

func TestBiomePaletteCoversAllBiomes(t *testing.T) {
	biomes := []world.Biome{
		world.BiomeTundra, world.BiomeTaiga, world.BiomeGrassland,
		world.BiomeTemperateDeciduousForest, world.BiomeTemperateRainforest,
		world.BiomeSavanna, world.BiomeTropicalSeasonalForest,
		world.BiomeTropicalRainforest, world.BiomeColdDesert, world.BiomeDesert,
		world.BiomeOcean, world.BiomeDeepOcean, world.BiomeBeach,
		world.BiomeSnow, world.BiomeIce, world.BiomeMountainTundra,
		world.BiomeMountainForest, world.BiomeMountainPeak,
	}
	for _, b := range biomes {
		if _, ok := biomePalette[b]; !ok {
			t.Errorf("no palette entry for %v", b)
		}
	}
}

func TestBiomeColorFallback(t *testing.T) {
	want := color.RGBA{128, 128, 128, 255}
	if got := biomeColor(world.Biome(200)); got != want {
		t.Errorf("biomeColor(unknown) = %v, want %v", got, want)
	}
}

func TestHeightColorBands(t *testing.T) {
	tests := []struct {
		h    float64
		want color.RGBA
	}{
		{-3000, color.RGBA{0, 0, 80, 255}},
		{-2000, color.RGBA{0, 50, 120, 255}},
		{-100, color.RGBA{0, 100, 160, 255}},
		{0, color.RGBA{100, 180, 100, 255}},
		{300, color.RGBA{130, 190, 80, 255}},
		{800, color.RGBA{160, 160, 100, 255}},
		{1500, color.RGBA{140, 130, 100, 255}},
		{3000, color.RGBA{180, 170, 150, 255}},
		{5000, color.RGBA{240, 240, 240, 255}},
	}
	for _, tt := range tests {
		if got := heightColor(tt.h); got != tt.want {
			t.Errorf("heightColor(%v) = %v, want %v", tt.h, got, tt.want)
		}
	}
}

func TestTemperatureColorBands(t *testing.T) {
	tests := []struct {
		temp float64
		want color.RGBA
	}{
		{-40, color.RGBA{0, 0, 139, 255}},
		{-20, color.RGBA{100, 150, 255, 255}},
		{-5, color.RGBA{150, 200, 255, 255}},
		{5, color.RGBA{180, 220, 180, 255}},
		{15, color.RGBA{150, 200, 100, 255}},
		{25, color.RGBA{255, 200, 100, 255}},
		{35, color.RGBA{255, 100, 50, 255}},
	}
	for _, tt := range tests {
		if got := temperatureColor(tt.temp); got != tt.want {
			t.Errorf("temperatureColor(%v) = %v, want %v", tt.temp, got, tt.want)
		}
	}
}

func TestLerpRGB(t *testing.T) {
	a := color.RGBA{0, 100, 200, 255}
	b := color.RGBA{100, 200, 100, 255}

	if got := lerpRGB(a, b, 0); got != a {
		t.Errorf("t=0: got %v, want %v", got, a)
	}
	if got := lerpRGB(a, b, 1); got != b {
		t.Errorf("t=1: got %v, want %v", got, b)
	}
	if got := lerpRGB(a, b, -1); got != a {
		t.Errorf("t<0 should clamp to a, got %v", got)
	}
	if got := lerpRGB(a, b, 2); got != b {
		t.Errorf("t>1 should clamp to b, got %v", got)
	}

	mid := lerpRGB(a, b, 0.5)
	want := color.RGBA{50, 150, 150, 255}
	if mid != want {
		t.Errorf("t=0.5: got %v, want %v", mid, want)
	}
}

func TestPressureAnomalyColorEndpoints(t *testing.T) {
	if got := pressureAnomalyColor(-28); got != (color.RGBA{60, 80, 200, 255}) {
		t.Errorf("low anomaly = %v", got)
	}
	if got := pressureAnomalyColor(28); got != (color.RGBA{200, 60, 50, 255}) {
		t.Errorf("high anomaly = %v", got)
	}
	if got := pressureAnomalyColor(0); got != (color.RGBA{235, 235, 235, 255}) {
		t.Errorf("neutral anomaly = %v", got)
	}
}

func TestRiverColor(t *testing.T) {
	if got := riverColor(-50, 0, 0); got != oceanColor {
		t.Errorf("underwater = %v, want ocean", got)
	}

	channel := riverColor(100, 0.8, 200)
	if channel.B <= channel.R {
		t.Errorf("river channel should be blue, got %v", channel)
	}

	dry := riverColor(100, 0.5, 0)
	if dry.R != dry.G || dry.G != dry.B {
		t.Errorf("dry land should be gray, got %v", dry)
	}
}

func TestRampsStayOpaque(t *testing.T) {
	samples := []color.RGBA{
		cloudColor(0.5),
		insolationColor(700),
		vegetationColor(0.3),
		fertilityColor(0.9),
		coalColor(0.2),
		ironColor(0.7),
		oilColor(1),
	}
	for i, c := range samples {
		if c.A != 255 {
			t.Errorf("sample %d not opaque: %v", i, c)
		}
	}
}
