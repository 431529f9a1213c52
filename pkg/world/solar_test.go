package world

import (
	"math"
	"testing"
)

func TestSeasonForDay(t *testing.T) {
	tests := []struct {
		day  int
		want Season
	}{
		{0, Winter},
		{45, Winter},
		{80, Winter},
		{81, Spring},
		{171, Spring},
		{172, Summer},
		{262, Summer},
		{263, Fall},
		{353, Fall},
		{354, Winter},
		{364, Winter},
		{-1, Winter},  // wraps to day 364
		{365, Winter}, // wraps to day 0
	}
	for _, tt := range tests {
		if got := SeasonForDay(tt.day); got != tt.want {
			t.Errorf("SeasonForDay(%d) = %v, want %v", tt.day, got, tt.want)
		}
	}
}

func TestSeasonStrings(t *testing.T) {
	tests := []struct {
		s    Season
		want string
	}{
		{Winter, "Winter"},
		{Spring, "Spring"},
		{Summer, "Summer"},
		{Fall, "Fall"},
		{Season(9), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Season(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestSolarAngleRange(t *testing.T) {
	w := New(DefaultConfig())

	for _, p := range gridPoints() {
		for _, hour := range []float64{0, 5, 12, 19} {
			a := w.SolarAngle(p.Lon, p.Lat, hour)
			if a < -90 || a > 90 {
				t.Errorf("SolarAngle(%g,%g,%g) = %g, want -90..90", p.Lon, p.Lat, hour, a)
			}
		}
	}
}

func TestSolarNoonHighAtEquator(t *testing.T) {
	w := New(DefaultConfig())

	// Near an equinox the equatorial noon sun stands almost overhead.
	if got := w.SolarAngle(0, 0, 12); got < 80 {
		t.Errorf("SolarAngle(0,0,12) = %g, want > 80", got)
	}
}

func TestSolarTimeFollowsLongitude(t *testing.T) {
	w := New(DefaultConfig())

	if !w.IsDaylight(0, 0, 12) {
		t.Error("noon at the prime meridian should be daylight")
	}
	// Hour 12 on the far side of the globe is local midnight.
	if w.IsDaylight(180, 0, 12) {
		t.Error("hour 12 at longitude 180 should be night")
	}
}

func TestNightInsolationZero(t *testing.T) {
	w := New(DefaultConfig())

	for _, p := range gridPoints() {
		for _, hour := range []float64{0, 3.5, 12, 21} {
			if w.IsDaylight(p.Lon, p.Lat, hour) {
				continue
			}
			if got := w.Insolation(p.Lon, p.Lat, hour); got != 0 {
				t.Errorf("Insolation(%g,%g,%g) = %g at night, want 0", p.Lon, p.Lat, hour, got)
			}
		}
	}
}

func TestInsolationRange(t *testing.T) {
	w := New(DefaultConfig())

	for _, p := range gridPoints() {
		for _, hour := range []float64{0, 6, 12, 18} {
			got := w.Insolation(p.Lon, p.Lat, hour)
			if got < 0 || got > 1400 {
				t.Errorf("Insolation(%g,%g,%g) = %g, want 0..1400", p.Lon, p.Lat, hour, got)
			}
		}
	}
}

func TestMidnightSunAndPolarNight(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DayOfYear = 172 // near the June solstice
	w := New(cfg)

	if !w.IsDaylight(0, 85, 0) {
		t.Error("midnight sun expected at 85°N near the June solstice")
	}
	if w.IsDaylight(0, -85, 12) {
		t.Error("polar night expected at 85°S near the June solstice")
	}
}

func TestDeclinationFollowsSeason(t *testing.T) {
	summer := DefaultConfig()
	summer.DayOfYear = 172
	winter := DefaultConfig()
	winter.DayOfYear = 355

	// The noon sun at 45°N stands much higher in June than in December.
	junNoon := New(summer).SolarAngle(0, 45, 12)
	decNoon := New(winter).SolarAngle(0, 45, 12)
	if junNoon-decNoon < 30 {
		t.Errorf("June noon %g vs December noon %g at 45°N: seasonal swing too small",
			junNoon, decNoon)
	}
}

func TestInsolationCloudAttenuation(t *testing.T) {
	w := New(DefaultConfig())

	// Clear-sky insolation from the same solar angle always beats overcast.
	clear := w.insolationFromAngle(60, 0)
	overcast := w.insolationFromAngle(60, 1)
	if clear <= overcast {
		t.Errorf("clear sky %g should exceed overcast %g", clear, overcast)
	}
	if want := clear * 0.3; math.Abs(overcast-want) > 1e-9 {
		t.Errorf("full overcast = %g, want 30%% of clear sky %g", overcast, want)
	}
}
