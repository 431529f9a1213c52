// Package report renders plain-text summaries of a generated world:
// point lookups, an ASCII elevation map, climate transects and altitude
// profiles.
package report

import (
	"fmt"
	"io"
	"math"

	"github.com/daver64/rworld/pkg/world"
)

// NamedPoint is a labeled geographic location.
type NamedPoint struct {
	Lon   float64
	Lat   float64
	Label string
}

// DefaultLocations samples a spread of latitudes and hemispheres.
var DefaultLocations = []NamedPoint{
	{0, 0, "Equator, Prime Meridian"},
	{-74, 40.7, "New York latitude"},
	{139.7, 35.7, "Tokyo latitude"},
	{0, 90, "North Pole"},
	{0, -90, "South Pole"},
	{30, -30, "Southern Hemisphere Mid-latitude"},
	{-120, 45, "Northern Hemisphere Mid-latitude"},
}

// Full writes every report section: configuration, the default locations,
// a world map, an equatorial transect and an altitude profile.
func Full(out io.Writer, w *world.World) {
	Summary(out, w)
	fmt.Fprintln(out)

	for _, loc := range DefaultLocations {
		Location(out, w, loc.Lon, loc.Lat, loc.Label)
		fmt.Fprintln(out)
	}

	WorldMap(out, w, 80, 40)
	fmt.Fprintln(out)
	Transect(out, w, 0)
	fmt.Fprintln(out)
	AltitudeProfile(out, w, 0, 0)
}

// Summary writes the configuration the world was generated from.
func Summary(out io.Writer, w *world.World) {
	cfg := w.Config()
	fmt.Fprintln(out, "=== World Configuration ===")
	fmt.Fprintf(out, "Seed:         %d\n", cfg.Seed)
	fmt.Fprintf(out, "World scale:  %.2f\n", cfg.WorldScale)
	fmt.Fprintf(out, "Equator:      %.1f C\n", cfg.EquatorTemperature)
	fmt.Fprintf(out, "Poles:        %.1f C\n", cfg.PoleTemperature)
	fmt.Fprintf(out, "Max height:   %.0f m\n", cfg.MaxTerrainHeight)
	fmt.Fprintf(out, "Day of year:  %d (%s)\n", cfg.DayOfYear, world.SeasonForDay(cfg.DayOfYear))
}

// Location writes the environmental profile of one point.
func Location(out io.Writer, w *world.World, lon, lat float64, label string) {
	height := w.TerrainHeight(lon, lat)
	alt := math.Max(height, 0)

	fmt.Fprintf(out, "--- %s (%.1f, %.1f) ---\n", label, lon, lat)
	fmt.Fprintf(out, "Height:        %.1f m\n", height)
	fmt.Fprintf(out, "Biome:         %s\n", w.BiomeAt(lon, lat, alt))
	fmt.Fprintf(out, "Temperature:   %.1f C\n", w.Temperature(lon, lat, alt))
	fmt.Fprintf(out, "Precipitation: %.0f mm/year (%s)\n",
		w.Precipitation(lon, lat, alt), w.PrecipitationKind(lon, lat, alt))
	fmt.Fprintf(out, "Pressure:      %.1f mb\n", w.AirPressure(alt))
	fmt.Fprintf(out, "Humidity:      %.0f%%\n", w.Humidity(lon, lat, alt)*100)
}

// WorldMap writes an ASCII elevation map covering the whole globe, one
// character per cell.
func WorldMap(out io.Writer, w *world.World, width, height int) {
	fmt.Fprintf(out, "=== World Map (%dx%d) ===\n", width, height)

	points := make([]world.Point, 0, width*height)
	for row := 0; row < height; row++ {
		lat := 90 - (float64(row)+0.5)*180/float64(height)
		for col := 0; col < width; col++ {
			lon := -180 + (float64(col)+0.5)*360/float64(width)
			points = append(points, world.Point{Lon: lon, Lat: lat})
		}
	}
	res := w.Batch(points, 12, world.FieldHeight)

	line := make([]byte, width)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			line[col] = heightChar(res.Heights[row*width+col])
		}
		fmt.Fprintf(out, "%s\n", line)
	}
	fmt.Fprintln(out, "Legend: # deep ocean  ~ ocean  - shallows  . lowland  : hills  = upland  + highland  * mountains  ^ peaks")
}

// heightChar maps terrain height in meters onto the map character ramp.
func heightChar(h float64) byte {
	switch {
	case h < -2000:
		return '#'
	case h < -200:
		return '~'
	case h < 0:
		return '-'
	case h < 100:
		return '.'
	case h < 500:
		return ':'
	case h < 1000:
		return '='
	case h < 2000:
		return '+'
	case h < 4000:
		return '*'
	default:
		return '^'
	}
}

// Transect writes height, temperature and biome along a line of latitude in
// 20° longitude steps.
func Transect(out io.Writer, w *world.World, lat float64) {
	fmt.Fprintf(out, "=== Transect at latitude %.1f ===\n", lat)
	fmt.Fprintf(out, "%-8s %-10s %-8s %s\n", "Lon", "Height(m)", "Temp(C)", "Biome")

	for lon := -180.0; lon <= 180; lon += 20 {
		height := w.TerrainHeight(lon, lat)
		alt := math.Max(height, 0)
		fmt.Fprintf(out, "%-8.0f %-10.0f %-8.1f %s\n",
			lon, height, w.Temperature(lon, lat, alt), w.BiomeAt(lon, lat, alt))
	}
}

// AltitudeProfile writes how temperature, pressure and humidity change with
// altitude above one location, in 1000 m steps up to 8000 m.
func AltitudeProfile(out io.Writer, w *world.World, lon, lat float64) {
	fmt.Fprintf(out, "=== Altitude Effects at (%.1f, %.1f) ===\n", lon, lat)
	fmt.Fprintf(out, "%-8s %-8s %-13s %s\n", "Alt(m)", "Temp(C)", "Pressure(mb)", "Humidity(%)")

	for alt := 0.0; alt <= 8000; alt += 1000 {
		fmt.Fprintf(out, "%-8.0f %-8.1f %-13.1f %.0f\n",
			alt, w.Temperature(lon, lat, alt), w.AirPressure(alt), w.Humidity(lon, lat, alt)*100)
	}
}
