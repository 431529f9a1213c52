package world

import "math"

// PrecipKind classifies what falls from the sky when anything does.
type PrecipKind uint8

const (
	PrecipNone PrecipKind = iota
	PrecipRain
	PrecipSnow
	PrecipSleet
)

// String returns the human-readable precipitation kind.
func (k PrecipKind) String() string {
	switch k {
	case PrecipNone:
		return "None"
	case PrecipRain:
		return "Rain"
	case PrecipSnow:
		return "Snow"
	case PrecipSleet:
		return "Sleet"
	default:
		return "Unknown"
	}
}

// Moisture returns ground-level moisture availability in [0, 1]. Noise is
// blended 70/30 with a latitude factor so the equator trends wetter than the
// poles.
func (w *World) Moisture(lon, lat float64) float64 {
	lon, lat = normalizeLonLat(lon, lat)
	return w.moisture(lon, lat)
}

func (w *World) moisture(lon, lat float64) float64 {
	x, y, z := project(lon, lat)
	m := (w.bank.moisture.Sample(x, y, z) + 1) * 0.5

	latFactor := 1 - math.Abs(lat)/90
	return clamp(m*0.7+latFactor*0.3, 0, 1)
}

// baseTemperature interpolates between the configured equator and pole
// temperatures by latitude, then applies the lapse-rate drop with altitude.
func (w *World) baseTemperature(lat, altitude float64) float64 {
	latFactor := math.Abs(lat) / 90
	base := w.cfg.EquatorTemperature - (w.cfg.EquatorTemperature-w.cfg.PoleTemperature)*latFactor
	return base - altitude/1000*w.cfg.TemperatureLapseRate
}

// Temperature returns the long-run mean air temperature in °C at the given
// coordinates and altitude.
func (w *World) Temperature(lon, lat, altitude float64) float64 {
	lon, lat = normalizeLonLat(lon, lat)
	return w.temperature(lon, lat, altitude)
}

func (w *World) temperature(lon, lat, altitude float64) float64 {
	x, y, z := project(lon, lat)
	variation := w.bank.tempVar.Sample(x, y, z) * 5 // ±5 °C local variation
	return w.baseTemperature(lat, altitude) + variation
}

// TemperatureAtTime returns the instantaneous air temperature in °C at the
// given hour of day: mean temperature plus solar heating by day, radiative
// cooling by night. Cloud cover shades days and insulates nights, and humid
// climates swing less than dry ones.
func (w *World) TemperatureAtTime(lon, lat, altitude, hour float64) float64 {
	lon, lat = normalizeLonLat(lon, lat)
	hour = normalizeHour(hour)
	return w.temperatureAtTime(lon, lat, altitude, hour, w.terrainHeight(lon, lat, 1))
}

func (w *World) temperatureAtTime(lon, lat, altitude, hour, height float64) float64 {
	mean := w.temperature(lon, lat, altitude)
	cloud := w.cloudDensity(lon, lat, altitude, height)
	humidity := w.humidity(lon, lat, altitude)

	// Dry climates swing harder between day and night.
	swing := 1 - humidity*0.5

	angle := w.solarAngle(lon, lat, hour)
	if angle > 0 {
		heating := w.insolationFromAngle(angle, cloud) / solarConstant * 12
		shading := cloud * 3
		return mean + (heating-shading)*swing
	}

	cooling := 5 + 10*(1-cloud) // clear nights radiate heat away
	return mean - cooling*swing
}

// Precipitation returns mean annual precipitation in mm/year, in [0, 4000].
// Warm air carries more moisture, mid-elevation slopes catch orographic
// rain, and very high terrain is dry.
func (w *World) Precipitation(lon, lat, altitude float64) float64 {
	lon, lat = normalizeLonLat(lon, lat)
	return w.precipitation(lon, lat, altitude, w.terrainHeight(lon, lat, 1))
}

// precipitation takes the already-computed terrain height so batch and
// layered callers never resample it.
func (w *World) precipitation(lon, lat, altitude, height float64) float64 {
	precip := w.moisture(lon, lat) * 2000

	tempFactor := clamp((w.temperature(lon, lat, altitude)+10)/40, 0.1, 1.5)
	precip *= tempFactor

	if height > 500 && height < 3000 {
		precip *= 1.3 // orographic lift on windward slopes
	} else if altitude > 4000 {
		precip *= 0.5
	}
	return clamp(precip, 0, 4000)
}

// PrecipitationKind returns what form precipitation takes at the given
// location: none below 100 mm/year, snow below -2 °C, sleet below 2 °C,
// otherwise rain.
func (w *World) PrecipitationKind(lon, lat, altitude float64) PrecipKind {
	lon, lat = normalizeLonLat(lon, lat)
	return w.precipitationKind(lon, lat, altitude, w.terrainHeight(lon, lat, 1))
}

func (w *World) precipitationKind(lon, lat, altitude, height float64) PrecipKind {
	if w.precipitation(lon, lat, altitude, height) < 100 {
		return PrecipNone
	}
	temp := w.temperature(lon, lat, altitude)
	switch {
	case temp < -2:
		return PrecipSnow
	case temp < 2:
		return PrecipSleet
	default:
		return PrecipRain
	}
}

// CurrentPrecipitation returns instantaneous precipitation intensity in
// [0, 1] at the given hour. The annual total sets the odds of rain; a
// time-advected weather sample decides whether it falls right now and how
// hard, squared to bias toward light rain.
func (w *World) CurrentPrecipitation(lon, lat, altitude, hour float64) float64 {
	lon, lat = normalizeLonLat(lon, lat)
	hour = normalizeHour(hour)
	return w.currentPrecipitation(lon, lat, altitude, hour, w.terrainHeight(lon, lat, 1))
}

func (w *World) currentPrecipitation(lon, lat, altitude, hour, height float64) float64 {
	annual := w.precipitation(lon, lat, altitude, height)
	probability := annual / 4000
	if probability <= 0 {
		return 0
	}

	x, y, z := project(lon, lat)
	sample := (w.bank.weather.Sample(x, y, z+hour*weatherTimeScale) + 1) * 0.5
	if sample >= probability {
		return 0
	}
	return clamp(sample*sample, 0, 1)
}

// Humidity returns relative humidity in [0, 1]. Cold air reads more humid
// for the same moisture; high altitudes dry out.
func (w *World) Humidity(lon, lat, altitude float64) float64 {
	lon, lat = normalizeLonLat(lon, lat)
	return w.humidity(lon, lat, altitude)
}

func (w *World) humidity(lon, lat, altitude float64) float64 {
	moisture := w.moisture(lon, lat)
	temp := w.temperature(lon, lat, altitude)

	tempFactor := 1 - clamp((temp-10)/40, 0, 0.5)
	humidity := moisture * (0.5 + tempFactor)

	if altitude > 3000 {
		humidity *= clamp(1-(altitude-3000)/5000, 0.2, 1)
	}
	return clamp(humidity, 0, 1)
}
