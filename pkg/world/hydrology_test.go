package world

import "testing"

func TestFlowAccumulationRange(t *testing.T) {
	w := New(DefaultConfig())

	for _, p := range gridPoints() {
		f := w.FlowAccumulation(p.Lon, p.Lat)
		if f < 0 || f > 1 {
			t.Errorf("FlowAccumulation(%g,%g) = %g, want 0..1", p.Lon, p.Lat, f)
		}
	}
}

func TestFlowAccumulationZeroOverWater(t *testing.T) {
	w := New(DefaultConfig())

	for _, p := range gridPoints() {
		if w.TerrainHeight(p.Lon, p.Lat) > w.Config().SeaLevel {
			continue
		}
		if f := w.FlowAccumulation(p.Lon, p.Lat); f != 0 {
			t.Errorf("FlowAccumulation(%g,%g) = %g over water, want 0", p.Lon, p.Lat, f)
		}
	}
}

func TestIsRiverMatchesFlow(t *testing.T) {
	w := New(DefaultConfig())

	for _, p := range gridPoints() {
		river := w.IsRiver(p.Lon, p.Lat)
		flow := w.FlowAccumulation(p.Lon, p.Lat)
		if river != (flow > 0.4) {
			t.Errorf("IsRiver(%g,%g) = %v with flow %g", p.Lon, p.Lat, river, flow)
		}
	}
}

func TestRiverWidthConsistent(t *testing.T) {
	w := New(DefaultConfig())

	for _, p := range gridPoints() {
		width := w.RiverWidth(p.Lon, p.Lat)
		river := w.IsRiver(p.Lon, p.Lat)

		if river && width <= 0 {
			t.Errorf("RiverWidth(%g,%g) = %g on a river, want > 0", p.Lon, p.Lat, width)
		}
		if !river && width != 0 {
			t.Errorf("RiverWidth(%g,%g) = %g off river, want 0", p.Lon, p.Lat, width)
		}
		if width < 0 || width > 500 {
			t.Errorf("RiverWidth(%g,%g) = %g, want 0..500", p.Lon, p.Lat, width)
		}
	}
}
