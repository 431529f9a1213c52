package world

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// gridPoints sweeps the globe at a coarse step, shared by the range and
// consistency tests in this package.
func gridPoints() []Point {
	var pts []Point
	for lat := -90.0; lat <= 90; lat += 15 {
		for lon := -180.0; lon < 180; lon += 15 {
			pts = append(pts, Point{Lon: lon, Lat: lat})
		}
	}
	return pts
}

// findLandPoint scans for a point above sea level.
func findLandPoint(t *testing.T, w *World) (lon, lat float64) {
	t.Helper()
	for lat := -88.0; lat <= 88; lat += 2 {
		for lon := -180.0; lon < 180; lon += 2 {
			if w.TerrainHeight(lon, lat) > w.Config().SeaLevel {
				return lon, lat
			}
		}
	}
	t.Fatal("no land found anywhere on the globe")
	return 0, 0
}

// findOceanPoint scans for a point below sea level.
func findOceanPoint(t *testing.T, w *World) (lon, lat float64) {
	t.Helper()
	for lat := -88.0; lat <= 88; lat += 2 {
		for lon := -180.0; lon < 180; lon += 2 {
			if w.TerrainHeight(lon, lat) < w.Config().SeaLevel {
				return lon, lat
			}
		}
	}
	t.Fatal("no ocean found anywhere on the globe")
	return 0, 0
}

func TestWorldDeterministic(t *testing.T) {
	w1 := New(DefaultConfig())
	w2 := New(DefaultConfig())

	for _, p := range gridPoints() {
		h1 := w1.TerrainHeight(p.Lon, p.Lat)
		h2 := w2.TerrainHeight(p.Lon, p.Lat)
		if h1 != h2 {
			t.Fatalf("TerrainHeight(%g,%g) = %g vs %g", p.Lon, p.Lat, h1, h2)
		}
		alt := math.Max(h1, 0)
		if t1, t2 := w1.Temperature(p.Lon, p.Lat, alt), w2.Temperature(p.Lon, p.Lat, alt); t1 != t2 {
			t.Fatalf("Temperature(%g,%g) = %g vs %g", p.Lon, p.Lat, t1, t2)
		}
		if b1, b2 := w1.BiomeAt(p.Lon, p.Lat, alt), w2.BiomeAt(p.Lon, p.Lat, alt); b1 != b2 {
			t.Fatalf("BiomeAt(%g,%g) = %v vs %v", p.Lon, p.Lat, b1, b2)
		}
		if r1, r2 := w1.Precipitation(p.Lon, p.Lat, alt), w2.Precipitation(p.Lon, p.Lat, alt); r1 != r2 {
			t.Fatalf("Precipitation(%g,%g) = %g vs %g", p.Lon, p.Lat, r1, r2)
		}
	}
}

func TestWorldDifferentSeeds(t *testing.T) {
	cfg1 := DefaultConfig()
	cfg2 := DefaultConfig()
	cfg2.Seed = cfg1.Seed + 1

	w1 := New(cfg1)
	w2 := New(cfg2)

	different := false
	for _, p := range gridPoints() {
		if w1.TerrainHeight(p.Lon, p.Lat) != w2.TerrainHeight(p.Lon, p.Lat) {
			different = true
			break
		}
	}
	if !different {
		t.Error("different seeds should produce different terrain")
	}
}

func TestSetConfigRebuildsFields(t *testing.T) {
	cfg := DefaultConfig()
	w := New(cfg)
	before := w.TerrainHeight(10, 20)

	reseeded := cfg
	reseeded.Seed = cfg.Seed + 7
	w.SetConfig(reseeded)

	orig := New(cfg)
	changed := false
	for _, p := range gridPoints() {
		if w.TerrainHeight(p.Lon, p.Lat) != orig.TerrainHeight(p.Lon, p.Lat) {
			changed = true
			break
		}
	}
	if !changed {
		t.Error("SetConfig with a new seed should change the terrain")
	}

	// A fresh World with the reseeded config answers identically.
	if got, want := w.TerrainHeight(10, 20), New(reseeded).TerrainHeight(10, 20); got != want {
		t.Errorf("reseeded TerrainHeight(10,20) = %g, want %g", got, want)
	}

	// Restoring the original config restores the original answers.
	w.SetConfig(cfg)
	if got := w.TerrainHeight(10, 20); got != before {
		t.Errorf("restored TerrainHeight(10,20) = %g, want %g", got, before)
	}
}

func TestConfigReturnsCopy(t *testing.T) {
	w := New(DefaultConfig())
	cfg := w.Config()
	cfg.Seed = 777

	if w.Config().Seed == 777 {
		t.Error("mutating the returned config should not affect the world")
	}
}

func TestLongitudeWraps(t *testing.T) {
	w := New(DefaultConfig())

	if got, want := w.TerrainHeight(190, 10), w.TerrainHeight(-170, 10); got != want {
		t.Errorf("TerrainHeight(190,10) = %g, want %g (lon 190 wraps to -170)", got, want)
	}
	if got, want := w.Temperature(-540, 45, 0), w.Temperature(180, 45, 0); got != want {
		t.Errorf("Temperature(-540,45) = %g, want %g (lon -540 wraps to 180)", got, want)
	}
}

func TestLatitudeClamps(t *testing.T) {
	w := New(DefaultConfig())

	if got, want := w.TerrainHeight(10, 95), w.TerrainHeight(10, 90); got != want {
		t.Errorf("TerrainHeight(10,95) = %g, want %g (lat clamps to 90)", got, want)
	}
	if got, want := w.TerrainHeight(10, -91), w.TerrainHeight(10, -90); got != want {
		t.Errorf("TerrainHeight(10,-91) = %g, want %g (lat clamps to -90)", got, want)
	}
}

func TestHourWraps(t *testing.T) {
	w := New(DefaultConfig())

	if got, want := w.Insolation(0, 0, 36.5), w.Insolation(0, 0, 12.5); got != want {
		t.Errorf("Insolation at hour 36.5 = %g, want %g (hour wraps to 12.5)", got, want)
	}
	if got, want := w.PressureAt(0, 0, 0, -6), w.PressureAt(0, 0, 0, 18); got != want {
		t.Errorf("PressureAt at hour -6 = %g, want %g (hour wraps to 18)", got, want)
	}
}

func TestPolesAreSingular(t *testing.T) {
	w := New(DefaultConfig())

	// Every longitude converges on the same pole point.
	ref := w.TerrainHeight(0, 90)
	for _, lon := range []float64{-180, -45, 90, 135} {
		if got := w.TerrainHeight(lon, 90); math.Abs(got-ref) > 1e-6 {
			t.Errorf("TerrainHeight(%g,90) = %g, want %g", lon, got, ref)
		}
	}
	ref = w.TerrainHeight(0, -90)
	for _, lon := range []float64{-180, -45, 90, 135} {
		if got := w.TerrainHeight(lon, -90); math.Abs(got-ref) > 1e-6 {
			t.Errorf("TerrainHeight(%g,-90) = %g, want %g", lon, got, ref)
		}
	}
}
