// Package noise provides the seeded coherent-noise primitives the planet
// fields are built from: fractal (fBm) gradient noise, classic Perlin noise,
// and cellular distance-to-feature noise. Every sampler is pure and fully
// determined by its seed; outputs are in [-1, 1].
package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Sampler is a 3-D coherent-noise field. Sample must be pure and return a
// value in [-1, 1] for any input.
type Sampler interface {
	Sample(x, y, z float64) float64
}

// FBM sums octaves of OpenSimplex gradient noise into fractal Brownian
// motion. Frequency scales the input coordinates; each octave the frequency
// grows by lacunarity and the amplitude shrinks by gain. The weighted sum is
// renormalized so output stays in [-1, 1].
type FBM struct {
	base       opensimplex.Noise
	frequency  float64
	octaves    int
	lacunarity float64
	gain       float64
}

// NewFBM creates a fractal noise field from a seed and tuning parameters.
// Octave counts below 1 are treated as 1.
func NewFBM(seed int64, frequency float64, octaves int, lacunarity, gain float64) *FBM {
	if octaves < 1 {
		octaves = 1
	}
	return &FBM{
		base:       opensimplex.New(seed),
		frequency:  frequency,
		octaves:    octaves,
		lacunarity: lacunarity,
		gain:       gain,
	}
}

// Sample returns fractal noise at (x, y, z) in [-1, 1].
func (f *FBM) Sample(x, y, z float64) float64 {
	var total, norm float64
	amplitude := 1.0
	freq := f.frequency
	for o := 0; o < f.octaves; o++ {
		total += f.base.Eval3(x*freq, y*freq, z*freq) * amplitude
		norm += amplitude
		amplitude *= f.gain
		freq *= f.lacunarity
	}
	return total / norm
}

// Perlin wraps go-perlin as a Sampler. Alpha is the weight falloff between
// successive octaves (larger = smoother), beta the frequency step, n the
// octave count; frequency scales the input coordinates.
type Perlin struct {
	p         *perlin.Perlin
	frequency float64
}

// NewPerlin creates a Perlin field from a seed.
func NewPerlin(seed int64, frequency, alpha, beta float64, n int32) *Perlin {
	return &Perlin{
		p:         perlin.NewPerlin(alpha, beta, n, seed),
		frequency: frequency,
	}
}

// Sample returns Perlin noise at (x, y, z) in [-1, 1]. go-perlin can
// overshoot the unit range slightly near octave boundaries, so the result
// is clamped.
func (p *Perlin) Sample(x, y, z float64) float64 {
	v := p.p.Noise3D(x*p.frequency, y*p.frequency, z*p.frequency)
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// Cellular is distance-to-nearest-feature noise. Space is cut into unit
// cells at the configured frequency, each cell holding one feature point
// jittered by a hash of (seed, cell). Sample returns the euclidean distance
// to the closest feature point over the 3x3x3 neighborhood, mapped to
// [-1, 1] where -1 means "exactly on a feature point".
type Cellular struct {
	seed      int64
	frequency float64
}

// NewCellular creates a cellular field from a seed.
func NewCellular(seed int64, frequency float64) *Cellular {
	return &Cellular{seed: seed, frequency: frequency}
}

// Sample returns cellular noise at (x, y, z) in [-1, 1].
func (c *Cellular) Sample(x, y, z float64) float64 {
	x *= c.frequency
	y *= c.frequency
	z *= c.frequency

	xi := int64(math.Floor(x))
	yi := int64(math.Floor(y))
	zi := int64(math.Floor(z))

	minDist := math.MaxFloat64
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				cx, cy, cz := xi+dx, yi+dy, zi+dz
				fx := float64(cx) + c.featureOffset(cx, cy, cz, 0)
				fy := float64(cy) + c.featureOffset(cx, cy, cz, 1)
				fz := float64(cz) + c.featureOffset(cx, cy, cz, 2)
				ddx := x - fx
				ddy := y - fy
				ddz := z - fz
				d := ddx*ddx + ddy*ddy + ddz*ddz
				if d < minDist {
					minDist = d
				}
			}
		}
	}

	// The nearest feature point is almost always within one cell width;
	// cap the normalized distance at 1 before remapping.
	d := math.Sqrt(minDist)
	if d > 1 {
		d = 1
	}
	return d*2 - 1
}

// featureOffset returns the jitter of one axis of a cell's feature point,
// in [0, 1). SplitMix64-style finalizer keyed on seed and cell coordinates.
func (c *Cellular) featureOffset(cx, cy, cz int64, axis uint64) float64 {
	h := uint64(c.seed)
	h ^= uint64(cx) * 0x9E3779B97F4A7C15
	h ^= uint64(cy) * 0xC2B2AE3D27D4EB4F
	h ^= uint64(cz) * 0x165667B19E3779F9
	h ^= (axis + 1) * 0x27D4EB2F165667C5
	h ^= h >> 30
	h *= 0xBF58476D1CE4E5B9
	h ^= h >> 27
	h *= 0x94D049BB133111EB
	h ^= h >> 31
	return float64(h>>11) / (1 << 53)
}
