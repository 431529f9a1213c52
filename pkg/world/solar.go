package world

import "math"

// solarConstant is the top-of-atmosphere solar irradiance in W/m².
const solarConstant = 1361.0

// axialTilt is the planet's obliquity in degrees, driving the seasons.
const axialTilt = 23.44

// Season is a quarter of the year, named from the northern hemisphere.
type Season uint8

const (
	Winter Season = iota
	Spring
	Summer
	Fall
)

// String returns the season name.
func (s Season) String() string {
	switch s {
	case Winter:
		return "Winter"
	case Spring:
		return "Spring"
	case Summer:
		return "Summer"
	case Fall:
		return "Fall"
	default:
		return "Unknown"
	}
}

// SeasonForDay maps a day of year to its northern-hemisphere season. Days
// outside 0..364 wrap.
func SeasonForDay(day int) Season {
	day = ((day % 365) + 365) % 365
	return Season(((day + 10) / 91) % 4)
}

// declination returns the solar declination in degrees for the configured
// day of year, a cosine approximation of axial tilt through the year.
func (w *World) declination() float64 {
	return -axialTilt * math.Cos(2*math.Pi*(float64(w.cfg.DayOfYear)+10)/365)
}

// SolarAngle returns the sun's elevation above the horizon in degrees at the
// given hour of day, negative at night. Longitude shifts local solar time;
// the configured day of year sets the declination.
func (w *World) SolarAngle(lon, lat, hour float64) float64 {
	lon, lat = normalizeLonLat(lon, lat)
	hour = normalizeHour(hour)
	return w.solarAngle(lon, lat, hour)
}

func (w *World) solarAngle(lon, lat, hour float64) float64 {
	// Hour angle: zero at local solar noon, 15° per hour either side.
	solarTime := hour + lon/15
	hourAngle := (solarTime - 12) * 15

	latR := lat * math.Pi / 180
	declR := w.declination() * math.Pi / 180
	haR := hourAngle * math.Pi / 180

	sinElev := math.Sin(latR)*math.Sin(declR) + math.Cos(latR)*math.Cos(declR)*math.Cos(haR)
	return math.Asin(clamp(sinElev, -1, 1)) * 180 / math.Pi
}

// IsDaylight reports whether the sun is above the horizon.
func (w *World) IsDaylight(lon, lat, hour float64) bool {
	lon, lat = normalizeLonLat(lon, lat)
	hour = normalizeHour(hour)
	return w.solarAngle(lon, lat, hour) > 0
}

// Insolation returns surface solar irradiance in W/m², in [0, 1400]. Zero
// when the sun is down; otherwise the solar constant scaled by elevation,
// an air-mass transmission term, and cloud attenuation of up to 70%.
func (w *World) Insolation(lon, lat, hour float64) float64 {
	lon, lat = normalizeLonLat(lon, lat)
	hour = normalizeHour(hour)
	return w.insolation(lon, lat, hour, w.terrainHeight(lon, lat, 1))
}

func (w *World) insolation(lon, lat, hour, height float64) float64 {
	angle := w.solarAngle(lon, lat, hour)
	if angle <= 0 {
		return 0
	}
	altitude := math.Max(height, 0)
	cloud := w.cloudDensity(lon, lat, altitude, height)
	return w.insolationFromAngle(angle, cloud)
}

// insolationFromAngle finishes the insolation computation once the solar
// elevation and cloud cover are known.
func (w *World) insolationFromAngle(angle, cloud float64) float64 {
	sinElev := math.Sin(angle * math.Pi / 180)

	// Light through more atmosphere near the horizon: air mass is the
	// secant of the zenith angle, capped where the flat-atmosphere
	// approximation gives out.
	airMass := clamp(1/sinElev, 1, 10)
	transmission := math.Pow(0.7, airMass)

	return clamp(solarConstant*sinElev*transmission*(1-cloud*0.7), 0, 1400)
}
