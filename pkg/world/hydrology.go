package world

import "math"

const (
	// hydroStep is how far apart neighbor terrain samples sit when
	// estimating local gradients, in degrees.
	hydroStep = 0.1

	// riverThreshold is the flow accumulation above which a river exists.
	riverThreshold = 0.4

	// maxRiverWidth caps river width in meters.
	maxRiverWidth = 500.0
)

// FlowAccumulation estimates relative upstream drainage in [0, 1]. Zero for
// underwater points. Valley position, annual precipitation and channel noise
// combine (weights 0.4/0.25/0.35), scaled by the local terrain gradient;
// lowlands gather water, high mountains shed it before it accumulates.
func (w *World) FlowAccumulation(lon, lat float64) float64 {
	lon, lat = normalizeLonLat(lon, lat)
	return w.flowAccumulation(lon, lat, w.terrainHeight(lon, lat, 1))
}

func (w *World) flowAccumulation(lon, lat, height float64) float64 {
	if height <= w.cfg.SeaLevel {
		return 0
	}

	hN := w.neighborHeight(lon, lat+hydroStep)
	hS := w.neighborHeight(lon, lat-hydroStep)
	hE := w.neighborHeight(lon+hydroStep, lat)
	hW := w.neighborHeight(lon-hydroStep, lat)

	// Valley factor: how far this point sits below its surroundings.
	avg := (hN + hS + hE + hW) / 4
	valley := clamp((avg-height)/200, 0, 1)

	dLat := (hN - hS) / 2
	dLon := (hE - hW) / 2
	grad := math.Sqrt(dLat*dLat + dLon*dLon)
	gradFactor := clamp(grad/250, 0.15, 1)

	altitude := math.Max(height, 0)
	precipFactor := clamp(w.precipitation(lon, lat, altitude, height)/2000, 0, 1)

	x, y, z := project(lon, lat)
	channel := (w.bank.river.Sample(x, y, z) + 1) * 0.5
	channel *= channel // squared: narrow channels, wide dry gaps

	flow := (valley*0.4 + precipFactor*0.25 + channel*0.35) * gradFactor

	// Deltas and floodplains gather water near sea level; alpine terrain
	// drains before anything accumulates.
	if height < 200 {
		flow *= 1.4
	} else if height > 3000 {
		flow *= 0.6
	}
	return clamp(flow, 0, 1)
}

// neighborHeight samples terrain height after re-normalizing coordinates
// that may have stepped over the date line or a pole.
func (w *World) neighborHeight(lon, lat float64) float64 {
	lon, lat = normalizeLonLat(lon, lat)
	return w.terrainHeight(lon, lat, 1)
}

// IsRiver reports whether flow accumulation at the point exceeds the river
// threshold.
func (w *World) IsRiver(lon, lat float64) bool {
	lon, lat = normalizeLonLat(lon, lat)
	return w.flowAccumulation(lon, lat, w.terrainHeight(lon, lat, 1)) > riverThreshold
}

// RiverWidth returns the river width in meters, in [0, 500]: zero wherever
// IsRiver is false, otherwise growing with the square of the flow excess,
// widening toward sea level and with wetter climates.
func (w *World) RiverWidth(lon, lat float64) float64 {
	lon, lat = normalizeLonLat(lon, lat)
	return w.riverWidth(lon, lat, w.terrainHeight(lon, lat, 1))
}

func (w *World) riverWidth(lon, lat, height float64) float64 {
	flow := w.flowAccumulation(lon, lat, height)
	if flow <= riverThreshold {
		return 0
	}

	excess := flow - riverThreshold
	width := excess * excess * 2000

	// Rivers broaden as they approach the sea.
	elevFactor := clamp(1.5-height/2000, 0.5, 1.5)

	altitude := math.Max(height, 0)
	precipFactor := clamp(w.precipitation(lon, lat, altitude, height)/1500, 0.3, 1.5)

	return clamp(width*elevFactor*precipFactor, 0, maxRiverWidth)
}
