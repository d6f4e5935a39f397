package spheregrid

import (
	"math"
	"math/rand/v2"
	"time"
)

// SphericalPosition is an item's fixed place on the sphere. Angles are in
// degrees: Inclination from the top pole, Azimuth around the vertical axis.
type SphericalPosition struct {
	Inclination float64
	Azimuth     float64
	Radius      float64
}

const (
	poleBonusExponent = 0.6
	poleBonusMax      = 35.0 // degrees
	poleClampMin      = 5.0
	poleClampMax      = 175.0
	bandMin           = 15.0 // inclination band after rescale
	bandSpan          = 150.0
	azimuthJitter     = 20.0 // full width, degrees
	inclinationJitter = 10.0 // full width, degrees
)

var goldenRatio = (1 + math.Sqrt(5)) / 2

// LayoutGenerator places items on a sphere using a Fibonacci lattice with
// pole thinning and bounded jitter.
type LayoutGenerator struct {
	Radius float64

	// Rand supplies jitter. Nil uses a time-seeded source.
	Rand *rand.Rand

	// NoJitter skips the random offsets but keeps the pole adjustment.
	NoJitter bool
}

// NewRand returns a PCG-backed source for reproducible layouts.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// fibonacciPoint returns the raw lattice angles for index i of n, in degrees,
// before pole adjustment or jitter.
func fibonacciPoint(i, n int) (inclination, azimuth float64) {
	t := float64(i) / float64(n)
	inclination = math.Acos(1-2*t) * 180 / math.Pi
	azimuth = math.Mod(float64(i)*360/goldenRatio, 360)
	return inclination, azimuth
}

// thinPoles pushes an inclination toward its nearer pole in proportion to its
// distance from the equator, then rescales it into the [15, 165] band.
func thinPoles(incl float64) float64 {
	bonus := math.Pow(math.Abs(incl-90)/90, poleBonusExponent) * poleBonusMax
	if incl < 90 {
		incl = math.Max(poleClampMin, incl-bonus)
	} else {
		incl = math.Min(poleClampMax, incl+bonus)
	}
	return bandMin + (incl/180)*bandSpan
}

// Generate returns n positions, index-aligned with the items they belong to.
// n <= 0 returns an empty slice.
func (g LayoutGenerator) Generate(n int) []SphericalPosition {
	if n <= 0 {
		return []SphericalPosition{}
	}
	rng := g.Rand
	if rng == nil && !g.NoJitter {
		rng = NewRand(uint64(time.Now().UnixNano()))
	}

	positions := make([]SphericalPosition, n)
	for i := range positions {
		incl, az := fibonacciPoint(i, n)
		incl = thinPoles(incl)

		if !g.NoJitter {
			az += (rng.Float64() - 0.5) * azimuthJitter
			incl += (rng.Float64() - 0.5) * inclinationJitter
		}

		positions[i] = SphericalPosition{
			Inclination: clamp(incl, 0, 180),
			Azimuth:     wrap360(az),
			Radius:      g.Radius,
		}
	}
	return positions
}

// wrap360 maps an angle into [0, 360).
func wrap360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
