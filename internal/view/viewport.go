package view

// viewport maps screen pixels onto geographic coordinates. Zoom 1 shows the
// whole globe; larger values magnify around the center.
type viewport struct {
	centerLon float64
	centerLat float64
	zoom      float64
}

const (
	minZoom = 0.5
	maxZoom = 50.0
)

// screenToWorld returns the geographic coordinates under a pixel. Longitude
// may leave [-180, 180) and latitude [-90, 90]; world queries normalize.
func (v viewport) screenToWorld(px, py, width, height int) (lon, lat float64) {
	nx := (float64(px) + 0.5) / float64(width)
	ny := (float64(py) + 0.5) / float64(height)

	lon = v.centerLon + (nx-0.5)*360/v.zoom
	lat = v.centerLat - (ny-0.5)*180/v.zoom
	return lon, lat
}

// zoomAt scales the zoom by factor while keeping the world point under the
// given pixel stationary on screen.
func (v viewport) zoomAt(px, py, width, height int, factor float64) viewport {
	lon, lat := v.screenToWorld(px, py, width, height)

	next := v
	next.zoom *= factor
	if next.zoom < minZoom {
		next.zoom = minZoom
	}
	if next.zoom > maxZoom {
		next.zoom = maxZoom
	}

	// Solve the screen mapping backwards so (px, py) lands on (lon, lat).
	nx := (float64(px) + 0.5) / float64(width)
	ny := (float64(py) + 0.5) / float64(height)
	next.centerLon = lon - (nx-0.5)*360/next.zoom
	next.centerLat = lat + (ny-0.5)*180/next.zoom
	return next.clampCenter()
}

// pan shifts the view center by screen-relative degrees.
func (v viewport) pan(dLon, dLat float64) viewport {
	v.centerLon += dLon
	v.centerLat += dLat
	return v.clampCenter()
}

// clampCenter wraps the center longitude and keeps the latitude on the
// globe. Latitude clamps to the poles; per-pixel sampling clamps the rest.
func (v viewport) clampCenter() viewport {
	for v.centerLon >= 180 {
		v.centerLon -= 360
	}
	for v.centerLon < -180 {
		v.centerLon += 360
	}
	if v.centerLat > 90 {
		v.centerLat = 90
	}
	if v.centerLat < -90 {
		v.centerLat = -90
	}
	return v
}
