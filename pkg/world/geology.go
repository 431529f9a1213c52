package world

import "math"

const (
	// volcanoThreshold marks volcanic centers: cellular values below it are
	// inside a cone region.
	volcanoThreshold = -0.7

	// volcanoConeHeight is the maximum cone rise in meters before the
	// elevation preference and crater dip apply.
	volcanoConeHeight = 2600.0
)

// volcanoProximity returns how close the projected point is to a volcanic
// center, in (0, 1] with 1 at the center, or 0 outside any cone region.
func (w *World) volcanoProximity(x, y, z float64) float64 {
	v := w.bank.volcano.Sample(x, y, z)
	if v >= volcanoThreshold {
		return 0
	}
	return (volcanoThreshold - v) / (1 + volcanoThreshold)
}

// volcanoCone returns the extra height a cone contributes at proximity p
// over terrain of the given base height. Cones favor foothill elevations and
// dip into a crater at the summit.
func volcanoCone(p, baseHeight float64) float64 {
	preference := clamp(1-math.Abs(baseHeight-1200)/3000, 0.2, 1)
	cone := p * p * p * volcanoConeHeight * preference

	if p > 0.9 {
		cone -= (p - 0.9) / 0.1 * 400 // crater dip
	}
	if cone < 0 {
		cone = 0
	}
	return cone
}

// IsVolcano reports whether the point sits inside a volcanic cone region on
// land. Placement is independent of the terrain detail level.
func (w *World) IsVolcano(lon, lat float64) bool {
	lon, lat = normalizeLonLat(lon, lat)
	return w.isVolcano(lon, lat, w.terrainHeight(lon, lat, 1))
}

func (w *World) isVolcano(lon, lat, height float64) bool {
	if height <= w.cfg.SeaLevel {
		return false
	}
	x, y, z := project(lon, lat)
	return w.volcanoProximity(x, y, z) > 0
}

// CoalDeposit scores coal richness in [0, 1]. Zero underwater; on land the
// coal field is shaped by an ancient-swamp elevation band (below ~1500 m), a
// precipitation-derived moisture factor and a temperate-latitude factor,
// then sharpened into concentrated seams.
func (w *World) CoalDeposit(lon, lat float64) float64 {
	lon, lat = normalizeLonLat(lon, lat)
	return w.coalDeposit(lon, lat, w.terrainHeight(lon, lat, 1))
}

func (w *World) coalDeposit(lon, lat, height float64) float64 {
	if height <= w.cfg.SeaLevel {
		return 0
	}
	x, y, z := project(lon, lat)
	n := (w.bank.coal.Sample(x, y, z) + 1) * 0.5

	// Coal forms from buried lowland swamps.
	elev := 1.0
	if height > 1500 {
		elev = clamp(1-(height-1500)/1500, 0, 1)
	}

	altitude := math.Max(height, 0)
	moistureFactor := clamp(w.precipitation(lon, lat, altitude, height)/1500, 0, 1)

	latFactor := coalLatitudeFactor(math.Abs(lat))

	score := n * elev * moistureFactor * latFactor
	return clamp(math.Pow(score, 1.5), 0, 1)
}

// coalLatitudeFactor peaks across the temperate and subtropical belt
// (20-60°) where ancient swamp forests concentrated.
func coalLatitudeFactor(absLat float64) float64 {
	switch {
	case absLat < 20:
		return 0.3 + absLat/20*0.7
	case absLat <= 60:
		return 1
	default:
		return clamp(1-(absLat-60)/30, 0.1, 1)
	}
}

// IronDeposit scores iron richness in [0, 1]. Zero underwater; squared noise
// concentrates veins, low-to-mid elevation ancient seabeds score best, and
// volcanic ground earns a hydrothermal bonus.
func (w *World) IronDeposit(lon, lat float64) float64 {
	lon, lat = normalizeLonLat(lon, lat)
	return w.ironDeposit(lon, lat, w.terrainHeight(lon, lat, 1))
}

func (w *World) ironDeposit(lon, lat, height float64) float64 {
	if height <= w.cfg.SeaLevel {
		return 0
	}
	x, y, z := project(lon, lat)
	n := (w.bank.iron.Sample(x, y, z) + 1) * 0.5
	n *= n

	elev := 1.0
	if height > 2000 {
		elev = clamp(1-(height-2000)/2000, 0.2, 1)
	}

	score := n * elev
	if w.volcanoProximity(x, y, z) > 0 {
		score += 0.2 // hydrothermal enrichment
	}
	return clamp(score, 0, 1)
}

// OilDeposit scores oil richness in [0, 1]. Zero underwater; mildly
// concentrated noise weighted by a sedimentary-basin elevation band that
// peaks at 100-800 m and dies out by 1500 m.
func (w *World) OilDeposit(lon, lat float64) float64 {
	lon, lat = normalizeLonLat(lon, lat)
	return w.oilDeposit(lon, lat, w.terrainHeight(lon, lat, 1))
}

func (w *World) oilDeposit(lon, lat, height float64) float64 {
	if height <= w.cfg.SeaLevel {
		return 0
	}
	x, y, z := project(lon, lat)
	n := (w.bank.oil.Sample(x, y, z) + 1) * 0.5
	n = math.Pow(n, 1.3)

	var basin float64
	switch {
	case height < 100:
		basin = 0.5 + height/100*0.5
	case height <= 800:
		basin = 1
	case height <= 1500:
		basin = 1 - (height-800)/700
	default:
		basin = 0
	}
	return clamp(n*basin, 0, 1)
}
