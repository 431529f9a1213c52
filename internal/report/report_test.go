package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/daver64/rworld/pkg/world"
)

func TestSummaryShowsConfig(t *testing.T) {
	w := world.New(world.DefaultConfig())
	var buf bytes.Buffer

	Summary(&buf, w)

	got := buf.String()
	for _, want := range []string{"Seed:", "12345", "Equator:", "30.0 C", "8848 m", "Winter"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestLocationShowsProfile(t *testing.T) {
	w := world.New(world.DefaultConfig())
	var buf bytes.Buffer

	Location(&buf, w, 0, 90, "North Pole")

	got := buf.String()
	if !strings.Contains(got, "North Pole") {
		t.Errorf("location output missing label:\n%s", got)
	}
	height := w.TerrainHeight(0, 90)
	if biome := w.BiomeAt(0, 90, max(height, 0)); !strings.Contains(got, biome.String()) {
		t.Errorf("location output missing biome %q:\n%s", biome, got)
	}
	for _, want := range []string{"Height:", "Temperature:", "Precipitation:", "Pressure:", "Humidity:"} {
		if !strings.Contains(got, want) {
			t.Errorf("location output missing %q:\n%s", want, got)
		}
	}
}

func TestWorldMapShape(t *testing.T) {
	w := world.New(world.DefaultConfig())
	var buf bytes.Buffer

	WorldMap(&buf, w, 40, 20)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// Header, 20 map rows, legend.
	if len(lines) != 22 {
		t.Fatalf("map output has %d lines, want 22", len(lines))
	}
	for i := 1; i <= 20; i++ {
		if len(lines[i]) != 40 {
			t.Errorf("map row %d has %d chars, want 40", i, len(lines[i]))
		}
	}
}

func TestWorldMapDeterministic(t *testing.T) {
	w := world.New(world.DefaultConfig())

	var a, b bytes.Buffer
	WorldMap(&a, w, 40, 20)
	WorldMap(&b, w, 40, 20)
	if a.String() != b.String() {
		t.Error("two renders of the same world differ")
	}
}

func TestHeightChar(t *testing.T) {
	tests := []struct {
		h    float64
		want byte
	}{
		{-3000, '#'},
		{-2000, '~'},
		{-500, '~'},
		{-100, '-'},
		{0, '.'},
		{50, '.'},
		{300, ':'},
		{700, '='},
		{1500, '+'},
		{3000, '*'},
		{5000, '^'},
	}
	for _, tt := range tests {
		if got := heightChar(tt.h); got != tt.want {
			t.Errorf("heightChar(%g) = %q, want %q", tt.h, got, tt.want)
		}
	}
}

func TestTransectRows(t *testing.T) {
	w := world.New(world.DefaultConfig())
	var buf bytes.Buffer

	Transect(&buf, w, 0)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// Header, column row, then -180..180 in 20° steps.
	if want := 2 + 19; len(lines) != want {
		t.Fatalf("transect has %d lines, want %d", len(lines), want)
	}
}

func TestAltitudeProfileRows(t *testing.T) {
	w := world.New(world.DefaultConfig())
	var buf bytes.Buffer

	AltitudeProfile(&buf, w, 0, 0)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// Header, column row, then 0..8000 in 1000 m steps.
	if want := 2 + 9; len(lines) != want {
		t.Fatalf("altitude profile has %d lines, want %d", len(lines), want)
	}
}

func TestFullIncludesAllSections(t *testing.T) {
	w := world.New(world.DefaultConfig())
	var buf bytes.Buffer

	Full(&buf, w)

	got := buf.String()
	for _, want := range []string{
		"=== World Configuration ===",
		"Equator, Prime Meridian",
		"South Pole",
		"=== World Map (80x40) ===",
		"=== Transect at latitude 0.0 ===",
		"=== Altitude Effects at (0.0, 0.0) ===",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("full report missing %q", want)
		}
	}
}
