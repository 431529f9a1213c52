package world

import "math"

const (
	// seaLevelPressure and scaleHeight parameterize the standard-atmosphere
	// barometric model.
	seaLevelPressure = 1013.25 // mb
	scaleHeight      = 8500.0  // m

	// synopticAmplitude is the swing of traveling pressure systems.
	synopticAmplitude = 25.0 // mb

	// pressureTimeScale advects the synoptic field along the third noise
	// axis: noise-space units per hour.
	pressureTimeScale = 5.0

	// weatherTimeScale advects the short-lived weather field. Faster than
	// pressure systems: showers come and go within hours.
	weatherTimeScale = 10.0

	// stormFrontThreshold is the pressure-gradient magnitude that counts as
	// a front, in mb per degree.
	stormFrontThreshold = 5.0

	// gradientRefAltitude is where pressure gradients are measured, above
	// surface drag.
	gradientRefAltitude = 1000.0 // m
)

// AirPressure returns the standard-atmosphere pressure in millibars at an
// altitude, strictly decreasing from 1013.25 mb at sea level.
func (w *World) AirPressure(altitude float64) float64 {
	return seaLevelPressure * math.Exp(-altitude/scaleHeight)
}

// PressureAt returns the air pressure in millibars at a location and hour:
// the altitude term plus a ±25 mb traveling synoptic system and a
// subtropical-ridge bias peaking near ±30° latitude.
func (w *World) PressureAt(lon, lat, altitude, hour float64) float64 {
	lon, lat = normalizeLonLat(lon, lat)
	hour = normalizeHour(hour)
	return w.pressureAt(lon, lat, altitude, hour)
}

func (w *World) pressureAt(lon, lat, altitude, hour float64) float64 {
	p := w.AirPressure(altitude)

	x, y, z := project(lon, lat)
	synoptic := w.bank.pressure.Sample(x, y, z+hour*pressureTimeScale) * synopticAmplitude

	// Subtropical highs ridge near ±30°; equatorial and subpolar latitudes
	// trend toward lows.
	d := (math.Abs(lat) - 30) / 15
	ridge := 6*math.Exp(-d*d) - 3

	return p + synoptic + ridge
}

// PressureGradient returns the horizontal pressure-gradient magnitude in mb
// per degree at the given hour, from central differences of PressureAt
// sampled ±1° away at a 1000 m reference altitude.
func (w *World) PressureGradient(lon, lat, hour float64) float64 {
	lon, lat = normalizeLonLat(lon, lat)
	hour = normalizeHour(hour)
	return w.pressureGradient(lon, lat, hour)
}

func (w *World) pressureGradient(lon, lat, hour float64) float64 {
	const step = 1.0 // degrees

	pe := w.pressureNeighbor(lon+step, lat, hour)
	pw := w.pressureNeighbor(lon-step, lat, hour)
	pn := w.pressureNeighbor(lon, lat+step, hour)
	ps := w.pressureNeighbor(lon, lat-step, hour)

	dLon := (pe - pw) / (2 * step)
	dLat := (pn - ps) / (2 * step)
	return math.Sqrt(dLon*dLon + dLat*dLat)
}

// pressureNeighbor re-normalizes coordinates that may have stepped over the
// date line or a pole.
func (w *World) pressureNeighbor(lon, lat, hour float64) float64 {
	lon, lat = normalizeLonLat(lon, lat)
	return w.pressureAt(lon, lat, gradientRefAltitude, hour)
}

// IsStormFront reports whether the pressure gradient at the location exceeds
// the 5 mb/degree front threshold.
func (w *World) IsStormFront(lon, lat, hour float64) bool {
	lon, lat = normalizeLonLat(lon, lat)
	hour = normalizeHour(hour)
	return w.pressureGradient(lon, lat, hour) > stormFrontThreshold
}

// CloudDensity returns cloud cover in [0, 1]. Humidity dominates, annual
// precipitation and weather systems modulate, and a squared noise texture
// breaks the cover into patchy masses. Mild temperatures (10-25 °C) favor
// cloud formation; extremes suppress it.
func (w *World) CloudDensity(lon, lat, altitude float64) float64 {
	lon, lat = normalizeLonLat(lon, lat)
	return w.cloudDensity(lon, lat, altitude, w.terrainHeight(lon, lat, 1))
}

func (w *World) cloudDensity(lon, lat, altitude, height float64) float64 {
	x, y, z := project(lon, lat)

	texture := (w.bank.cloud.Sample(x, y, z) + 1) * 0.5
	texture *= texture // squared for patchiness

	system := (w.bank.weather.Sample(x, y, z) + 1) * 0.5
	system *= system // emphasize distinct highs and lows

	humidity := w.humidity(lon, lat, altitude)
	precip := w.precipitation(lon, lat, altitude, height)

	base := humidity*0.6 + precip/2500*0.4
	base *= 1.5 - system*0.5 // lows pile clouds up, highs clear the sky

	density := base * (0.6 + texture*0.4)

	temp := w.temperature(lon, lat, altitude)
	switch {
	case temp < -10:
		density *= 0.6
	case temp > 35:
		density *= 0.7
	case temp >= 10 && temp <= 25:
		density *= 1.3
	}

	// Sharpen edges into distinct cloud masses.
	if density > 0.4 {
		density = 0.4 + (density-0.4)*1.5
	} else {
		density *= 0.7
	}
	return clamp(density, 0, 1)
}
