package world

import "math"

// fieldOffset decorrelates two samples drawn from the same noise field, the
// way a second generator with a shifted domain would.
const fieldOffset = 250.0

// windBand returns the climatological band parameters for a latitude: base
// speed in m/s, the noise-driven spread around it, and the direction the
// wind blows from in degrees clockwise from north.
func windBand(lat float64) (baseSpeed, speedSpread, baseDir float64) {
	abs := math.Abs(lat)
	switch {
	case abs < 30: // trade winds
		if lat >= 0 {
			return 6, 3, 45 // from the northeast
		}
		return 6, 3, 135 // from the southeast
	case abs < 60: // westerlies
		return 9, 4, 270
	default: // polar easterlies
		return 5, 3, 90
	}
}

// WindSpeed returns the climatological mean wind speed in m/s. Rough terrain
// slows surface wind; speed picks up with altitude.
func (w *World) WindSpeed(lon, lat, altitude float64) float64 {
	lon, lat = normalizeLonLat(lon, lat)
	return w.windSpeed(lon, lat, altitude, w.terrainHeight(lon, lat, 1))
}

func (w *World) windSpeed(lon, lat, altitude, height float64) float64 {
	x, y, z := project(lon, lat)
	baseSpeed, spread, _ := windBand(lat)

	speed := baseSpeed + w.bank.wind.Sample(x, y, z)*spread

	// Surface roughness: hills and mountains slow the wind down.
	if height > 500 {
		speed *= clamp(1-(height-500)/10000, 0.5, 1)
	}

	// Winds strengthen aloft.
	speed *= 1 + altitude/1000*0.08

	if speed < 0 {
		speed = 0
	}
	return speed
}

// WindDirection returns the climatological mean wind direction in degrees
// clockwise from north (the direction the wind blows from), set by the
// latitude band and turned up to ±30° by noise.
func (w *World) WindDirection(lon, lat, altitude float64) float64 {
	lon, lat = normalizeLonLat(lon, lat)
	return w.windDirection(lon, lat, altitude)
}

func (w *World) windDirection(lon, lat, altitude float64) float64 {
	x, y, z := project(lon, lat)
	_, _, baseDir := windBand(lat)

	turn := w.bank.wind.Sample(x+fieldOffset, y+fieldOffset, z+fieldOffset) * 30
	return normalizeDegrees(baseDir + turn)
}

// CurrentWindSpeed returns the instantaneous wind speed in m/s at the given
// hour: the climatological speed gusted or stilled up to ±50% by the
// time-advected weather field.
func (w *World) CurrentWindSpeed(lon, lat, altitude, hour float64) float64 {
	lon, lat = normalizeLonLat(lon, lat)
	hour = normalizeHour(hour)
	return w.currentWindSpeed(lon, lat, altitude, hour, w.terrainHeight(lon, lat, 1))
}

func (w *World) currentWindSpeed(lon, lat, altitude, hour, height float64) float64 {
	base := w.windSpeed(lon, lat, altitude, height)

	x, y, z := project(lon, lat)
	gust := w.bank.weather.Sample(x, y, z+hour*weatherTimeScale)

	speed := base * (1 + gust*0.5)
	if speed < 0 {
		speed = 0
	}
	return speed
}

// CurrentWindDirection returns the instantaneous wind direction in degrees
// at the given hour, veered up to ±45° from the climatological direction by
// the time-advected weather field.
func (w *World) CurrentWindDirection(lon, lat, altitude, hour float64) float64 {
	lon, lat = normalizeLonLat(lon, lat)
	hour = normalizeHour(hour)
	return w.currentWindDirection(lon, lat, altitude, hour)
}

func (w *World) currentWindDirection(lon, lat, altitude, hour float64) float64 {
	base := w.windDirection(lon, lat, altitude)

	x, y, z := project(lon, lat)
	veer := w.bank.weather.Sample(x+fieldOffset, y+fieldOffset, z+fieldOffset+hour*weatherTimeScale)
	return normalizeDegrees(base + veer*45)
}
