package view

import (
	"image/color"

	"github.com/daver64/rworld/pkg/world"
)

var biomePalette = map[world.Biome]color.RGBA{
	world.BiomeDeepOcean:                {0, 0, 139, 255},
	world.BiomeOcean:                    {0, 105, 148, 255},
	world.BiomeBeach:                    {238, 214, 175, 255},
	world.BiomeIce:                      {240, 248, 255, 255},
	world.BiomeSnow:                     {255, 250, 250, 255},
	world.BiomeTundra:                   {150, 180, 150, 255},
	world.BiomeTaiga:                    {89, 115, 90, 255},
	world.BiomeMountainPeak:             {200, 200, 210, 255},
	world.BiomeMountainTundra:           {170, 180, 170, 255},
	world.BiomeMountainForest:           {100, 130, 100, 255},
	world.BiomeColdDesert:               {200, 180, 160, 255},
	world.BiomeGrassland:                {144, 188, 70, 255},
	world.BiomeTemperateDeciduousForest: {80, 150, 80, 255},
	world.BiomeTemperateRainforest:      {50, 130, 80, 255},
	world.BiomeDesert:                   {230, 200, 120, 255},
	world.BiomeSavanna:                  {200, 180, 100, 255},
	world.BiomeTropicalSeasonalForest:   {100, 160, 80, 255},
	world.BiomeTropicalRainforest:       {40, 120, 60, 255},
}

func biomeColor(b world.Biome) color.RGBA {
	if c, ok := biomePalette[b]; ok {
		return c
	}
	return color.RGBA{128, 128, 128, 255}
}

func heightColor(h float64) color.RGBA {
	switch {
	case h < -2000:
		return color.RGBA{0, 0, 80, 255}
	case h < -500:
		return color.RGBA{0, 50, 120, 255}
	case h < 0:
		return color.RGBA{0, 100, 160, 255}
	case h < 100:
		return color.RGBA{100, 180, 100, 255}
	case h < 500:
		return color.RGBA{130, 190, 80, 255}
	case h < 1000:
		return color.RGBA{160, 160, 100, 255}
	case h < 2000:
		return color.RGBA{140, 130, 100, 255}
	case h < 4000:
		return color.RGBA{180, 170, 150, 255}
	default:
		return color.RGBA{240, 240, 240, 255}
	}
}

func temperatureColor(t float64) color.RGBA {
	switch {
	case t < -30:
		return color.RGBA{0, 0, 139, 255}
	case t < -10:
		return color.RGBA{100, 150, 255, 255}
	case t < 0:
		return color.RGBA{150, 200, 255, 255}
	case t < 10:
		return color.RGBA{180, 220, 180, 255}
	case t < 20:
		return color.RGBA{150, 200, 100, 255}
	case t < 30:
		return color.RGBA{255, 200, 100, 255}
	default:
		return color.RGBA{255, 100, 50, 255}
	}
}

func precipitationColor(mm float64) color.RGBA {
	switch {
	case mm < 100:
		return color.RGBA{230, 200, 120, 255}
	case mm < 500:
		return color.RGBA{200, 180, 100, 255}
	case mm < 1000:
		return color.RGBA{150, 200, 100, 255}
	case mm < 2000:
		return color.RGBA{100, 180, 150, 255}
	default:
		return color.RGBA{50, 150, 180, 255}
	}
}

func cloudColor(density float64) color.RGBA {
	return lerpRGB(color.RGBA{20, 40, 80, 255}, color.RGBA{255, 255, 255, 255}, density)
}

// insolationColor ramps from night black to noon yellow-white over the
// 0..1400 W/m^2 range.
func insolationColor(w float64) color.RGBA {
	t := w / 1400
	return lerpRGB(color.RGBA{0, 0, 10, 255}, color.RGBA{255, 240, 180, 255}, t)
}

func vegetationColor(v float64) color.RGBA {
	return lerpRGB(color.RGBA{110, 90, 60, 255}, color.RGBA{30, 140, 40, 255}, v)
}

func fertilityColor(f float64) color.RGBA {
	return lerpRGB(color.RGBA{200, 190, 170, 255}, color.RGBA{60, 120, 40, 255}, f)
}

func coalColor(v float64) color.RGBA {
	return lerpRGB(color.RGBA{230, 225, 215, 255}, color.RGBA{30, 30, 30, 255}, v)
}

func ironColor(v float64) color.RGBA {
	return lerpRGB(color.RGBA{230, 225, 215, 255}, color.RGBA{150, 60, 30, 255}, v)
}

func oilColor(v float64) color.RGBA {
	return lerpRGB(color.RGBA{230, 225, 215, 255}, color.RGBA{40, 50, 30, 255}, v)
}

// pressureAnomalyColor maps the deviation from the barometric baseline onto
// a blue-white-red ramp. Synoptic systems stay within roughly +-28 hPa.
func pressureAnomalyColor(hPa float64) color.RGBA {
	t := (hPa + 28) / 56
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	low := color.RGBA{60, 80, 200, 255}
	mid := color.RGBA{235, 235, 235, 255}
	high := color.RGBA{200, 60, 50, 255}
	if t < 0.5 {
		return lerpRGB(low, mid, t*2)
	}
	return lerpRGB(mid, high, (t-0.5)*2)
}

// riverColor shades land by flow accumulation and paints channels blue,
// wider rivers darker.
func riverColor(height, flow, width float64) color.RGBA {
	if height < 0 {
		return color.RGBA{0, 105, 148, 255}
	}
	if width > 0 {
		return lerpRGB(color.RGBA{80, 130, 230, 255}, color.RGBA{20, 60, 200, 255}, width/500)
	}
	return lerpRGB(color.RGBA{40, 40, 40, 255}, color.RGBA{220, 220, 220, 255}, flow)
}

func lerpRGB(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return color.RGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: 255,
	}
}
