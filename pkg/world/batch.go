package world

import "math"

// Field identifies one environmental attribute a batch query can request.
type Field uint8

const (
	FieldHeight Field = iota
	FieldBiome
	FieldTemperature
	FieldPrecipitation
	FieldHumidity
	FieldPressure
	FieldWindSpeed
	FieldWindDirection
	FieldCloudDensity
	FieldInsolation
	FieldFlowAccumulation
	FieldRiverWidth
	FieldVegetation
	FieldSoilType
	FieldSoilFertility
	FieldSoilPH
	FieldCoal
	FieldIron
	FieldOil
)

// Point is one geographic batch query point. Altitude defaults to the
// terrain height (or 0 over water), the same default the single-point
// queries use when callers pass max(TerrainHeight, 0).
type Point struct {
	Lon float64
	Lat float64
}

// BatchResult holds parallel result slices, one per requested Field, each
// with the same length and order as the input points. Slices for fields
// that were not requested stay nil.
type BatchResult struct {
	Heights             []float64
	Biomes              []Biome
	Temperatures        []float64
	Precipitations      []float64
	Humidities          []float64
	Pressures           []float64
	WindSpeeds          []float64
	WindDirections      []float64
	CloudDensities      []float64
	Insolations         []float64
	FlowAccumulations   []float64
	RiverWidths         []float64
	VegetationDensities []float64
	SoilTypes           []Soil
	SoilFertilities     []float64
	SoilPHs             []float64
	CoalDeposits        []float64
	IronDeposits        []float64
	OilDeposits         []float64
}

// Batch evaluates the requested fields at every point, preserving input
// order. Terrain height and the default altitude derived from it are
// computed once per point no matter how many fields need them, and every
// value is identical to the corresponding single-point query. Unknown field
// identifiers are ignored. Time-dependent fields (pressure, insolation) use
// the given hour of day.
func (w *World) Batch(points []Point, hour float64, fields ...Field) BatchResult {
	hour = normalizeHour(hour)

	var res BatchResult
	n := len(points)
	for _, f := range fields {
		switch f {
		case FieldHeight:
			if res.Heights == nil {
				res.Heights = make([]float64, n)
			}
		case FieldBiome:
			if res.Biomes == nil {
				res.Biomes = make([]Biome, n)
			}
		case FieldTemperature:
			if res.Temperatures == nil {
				res.Temperatures = make([]float64, n)
			}
		case FieldPrecipitation:
			if res.Precipitations == nil {
				res.Precipitations = make([]float64, n)
			}
		case FieldHumidity:
			if res.Humidities == nil {
				res.Humidities = make([]float64, n)
			}
		case FieldPressure:
			if res.Pressures == nil {
				res.Pressures = make([]float64, n)
			}
		case FieldWindSpeed:
			if res.WindSpeeds == nil {
				res.WindSpeeds = make([]float64, n)
			}
		case FieldWindDirection:
			if res.WindDirections == nil {
				res.WindDirections = make([]float64, n)
			}
		case FieldCloudDensity:
			if res.CloudDensities == nil {
				res.CloudDensities = make([]float64, n)
			}
		case FieldInsolation:
			if res.Insolations == nil {
				res.Insolations = make([]float64, n)
			}
		case FieldFlowAccumulation:
			if res.FlowAccumulations == nil {
				res.FlowAccumulations = make([]float64, n)
			}
		case FieldRiverWidth:
			if res.RiverWidths == nil {
				res.RiverWidths = make([]float64, n)
			}
		case FieldVegetation:
			if res.VegetationDensities == nil {
				res.VegetationDensities = make([]float64, n)
			}
		case FieldSoilType:
			if res.SoilTypes == nil {
				res.SoilTypes = make([]Soil, n)
			}
		case FieldSoilFertility:
			if res.SoilFertilities == nil {
				res.SoilFertilities = make([]float64, n)
			}
		case FieldSoilPH:
			if res.SoilPHs == nil {
				res.SoilPHs = make([]float64, n)
			}
		case FieldCoal:
			if res.CoalDeposits == nil {
				res.CoalDeposits = make([]float64, n)
			}
		case FieldIron:
			if res.IronDeposits == nil {
				res.IronDeposits = make([]float64, n)
			}
		case FieldOil:
			if res.OilDeposits == nil {
				res.OilDeposits = make([]float64, n)
			}
		}
	}

	for i, pt := range points {
		lon, lat := normalizeLonLat(pt.Lon, pt.Lat)
		height := w.terrainHeight(lon, lat, 1)
		altitude := math.Max(height, 0)

		if res.Heights != nil {
			res.Heights[i] = height
		}
		if res.Biomes != nil {
			res.Biomes[i] = w.biomeAt(lon, lat, altitude, height)
		}
		if res.Temperatures != nil {
			res.Temperatures[i] = w.temperature(lon, lat, altitude)
		}
		if res.Precipitations != nil {
			res.Precipitations[i] = w.precipitation(lon, lat, altitude, height)
		}
		if res.Humidities != nil {
			res.Humidities[i] = w.humidity(lon, lat, altitude)
		}
		if res.Pressures != nil {
			res.Pressures[i] = w.pressureAt(lon, lat, altitude, hour)
		}
		if res.WindSpeeds != nil {
			res.WindSpeeds[i] = w.windSpeed(lon, lat, altitude, height)
		}
		if res.WindDirections != nil {
			res.WindDirections[i] = w.windDirection(lon, lat, altitude)
		}
		if res.CloudDensities != nil {
			res.CloudDensities[i] = w.cloudDensity(lon, lat, altitude, height)
		}
		if res.Insolations != nil {
			res.Insolations[i] = w.insolation(lon, lat, hour, height)
		}
		if res.FlowAccumulations != nil {
			res.FlowAccumulations[i] = w.flowAccumulation(lon, lat, height)
		}
		if res.RiverWidths != nil {
			res.RiverWidths[i] = w.riverWidth(lon, lat, height)
		}
		if res.VegetationDensities != nil {
			res.VegetationDensities[i] = w.vegetationDensity(lon, lat, altitude, height)
		}
		if res.SoilTypes != nil {
			res.SoilTypes[i] = w.soilType(lon, lat, altitude, height)
		}
		if res.SoilFertilities != nil {
			res.SoilFertilities[i] = w.soilFertility(lon, lat, altitude, height)
		}
		if res.SoilPHs != nil {
			res.SoilPHs[i] = w.soilPH(lon, lat, altitude, height)
		}
		if res.CoalDeposits != nil {
			res.CoalDeposits[i] = w.coalDeposit(lon, lat, height)
		}
		if res.IronDeposits != nil {
			res.IronDeposits[i] = w.ironDeposit(lon, lat, height)
		}
		if res.OilDeposits != nil {
			res.OilDeposits[i] = w.oilDeposit(lon, lat, height)
		}
	}
	return res
}
