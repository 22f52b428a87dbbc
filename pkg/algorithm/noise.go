package algorithm

import (
	"math"

	"github.com/dshills/dungeoneer/pkg/genstatus"
	"github.com/dshills/dungeoneer/pkg/request"
	"github.com/dshills/dungeoneer/pkg/rng"
	"github.com/dshills/dungeoneer/pkg/tilemap"
)

// No library in the reference corpus implements value noise or simplex
// noise (the pack's noise-adjacent code is all cellular-automata or
// walker based), so both samplers below are hand-written against the
// standard library's math package alone; see DESIGN.md.

// generateValueNoise carves floor wherever fractal value noise exceeds
// FloorThresholdPercent.
func generateValueNoise(m *tilemap.Map, r *rng.RNG, params interface{}, traversal request.TraversalConstraints) ([]tilemap.Room, []tilemap.Corridor, error) {
	p := params.(*request.NoiseParams)
	lattice := newValueLattice(r, m.Width/p.FeatureSize+2, m.Height/p.FeatureSize+2)
	sample := func(x, y float64) float64 { return lattice.sample(x, y) }
	return carveFractalNoise(m, sample, p, traversal)
}

// generateSimplexNoise carves floor wherever fractal simplex noise
// exceeds FloorThresholdPercent.
func generateSimplexNoise(m *tilemap.Map, r *rng.RNG, params interface{}, traversal request.TraversalConstraints) ([]tilemap.Room, []tilemap.Corridor, error) {
	p := params.(*request.NoiseParams)
	perm := newSimplexPermutation(r)
	sample := func(x, y float64) float64 { return perm.noise2D(x, y) }
	return carveFractalNoise(m, sample, p, traversal)
}

// carveFractalNoise sums octaves of sample (expected to return values in
// [-1,1]) into a [0,1]-normalized field and carves Floor where the field
// exceeds FloorThresholdPercent.
func carveFractalNoise(m *tilemap.Map, sample func(x, y float64) float64, p *request.NoiseParams, traversal request.TraversalConstraints) ([]tilemap.Room, []tilemap.Corridor, error) {
	persistence := float64(p.PersistencePercent) / 100
	threshold := float64(p.FloorThresholdPercent) / 100
	featureSize := float64(p.FeatureSize)

	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			var sum, amplitude, maxAmplitude float64
			amplitude = 1
			frequency := 1.0
			for o := 0; o < p.Octaves; o++ {
				sum += sample(float64(x)/featureSize*frequency, float64(y)/featureSize*frequency) * amplitude
				maxAmplitude += amplitude
				amplitude *= persistence
				frequency *= 2
			}
			normalized := (sum/maxAmplitude + 1) / 2
			if normalized >= threshold {
				m.Set(x, y, tilemap.Floor)
			}
		}
	}

	if p.EnsureConnected && traversal.RequireConnected {
		keepLargestComponent(m)
	}
	if floorCount(m) == 0 {
		return nil, nil, genstatus.Failed("noise: field produced zero floor tiles at threshold %d%%", p.FloorThresholdPercent)
	}
	return nil, nil, nil
}

// valueLattice is a grid of independently drawn random values in [-1,1],
// bilinearly interpolated with a smoothstep easing curve.
type valueLattice struct {
	w, h   int
	values []float64
}

func newValueLattice(r *rng.RNG, w, h int) *valueLattice {
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}
	values := make([]float64, w*h)
	for i := range values {
		values[i] = r.Float64()*2 - 1
	}
	return &valueLattice{w: w, h: h, values: values}
}

func (l *valueLattice) at(x, y int) float64 {
	x = clampInt(x, 0, l.w-1)
	y = clampInt(y, 0, l.h-1)
	return l.values[y*l.w+x]
}

func (l *valueLattice) sample(x, y float64) float64 {
	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	fx, fy := x-float64(x0), y-float64(y0)
	sx, sy := smoothstep(fx), smoothstep(fy)

	v00, v10 := l.at(x0, y0), l.at(x0+1, y0)
	v01, v11 := l.at(x0, y0+1), l.at(x0+1, y0+1)

	top := lerp(v00, v10, sx)
	bottom := lerp(v01, v11, sx)
	return lerp(top, bottom, sy)
}

func smoothstep(t float64) float64 { return t * t * (3 - 2*t) }
func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// simplexPermutation holds a seeded permutation table for classic 2D
// simplex noise (Gustavson's formulation).
type simplexPermutation struct {
	perm [512]int
}

var simplexGradients = [8][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

func newSimplexPermutation(r *rng.RNG) *simplexPermutation {
	base := make([]int, 256)
	for i := range base {
		base[i] = i
	}
	r.Shuffle(len(base), func(i, j int) { base[i], base[j] = base[j], base[i] })

	sp := &simplexPermutation{}
	for i := 0; i < 512; i++ {
		sp.perm[i] = base[i&255]
	}
	return sp
}

const (
	simplexF2 = 0.5 * (1.7320508075688772 - 1) // 0.5*(sqrt(3)-1)
	simplexG2 = (3 - 1.7320508075688772) / 6    // (3-sqrt(3))/6
)

// noise2D returns classic 2D simplex noise in approximately [-1,1].
func (sp *simplexPermutation) noise2D(xin, yin float64) float64 {
	s := (xin + yin) * simplexF2
	i := int(math.Floor(xin + s))
	j := int(math.Floor(yin + s))
	t := float64(i+j) * simplexG2
	x0 := xin - (float64(i) - t)
	y0 := yin - (float64(j) - t)

	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + simplexG2
	y1 := y0 - float64(j1) + simplexG2
	x2 := x0 - 1 + 2*simplexG2
	y2 := y0 - 1 + 2*simplexG2

	ii, jj := i&255, j&255
	gi0 := sp.perm[ii+sp.perm[jj]] & 7
	gi1 := sp.perm[ii+i1+sp.perm[jj+j1]] & 7
	gi2 := sp.perm[ii+1+sp.perm[jj+1]] & 7

	n0 := simplexCorner(x0, y0, gi0)
	n1 := simplexCorner(x1, y1, gi1)
	n2 := simplexCorner(x2, y2, gi2)

	return 70 * (n0 + n1 + n2)
}

func simplexCorner(x, y float64, gi int) float64 {
	t := 0.5 - x*x - y*y
	if t < 0 {
		return 0
	}
	t *= t
	g := simplexGradients[gi]
	return t * t * (g[0]*x + g[1]*y)
}
