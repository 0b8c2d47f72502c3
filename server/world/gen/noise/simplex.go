// Package noise implements the octave simplex noise sampled by the terrain
// stage of world generation. The permutation table is shuffled from the
// deterministic generation random source, so noise output is a pure function
// of the world seed.
package noise

import (
	"math"

	"github.com/cubeworks/genesis/server/world/gen/rand"
)

var grad3 = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

const (
	f2 = 0.5 * (sqrt3 - 1)
	g2 = (3 - sqrt3) / 6
	f3 = 1.0 / 3
	g3 = 1.0 / 6

	sqrt3 = 1.7320508075688772
)

// Simplex is an octave simplex noise generator. It is safe for concurrent
// use once created: sampling does not mutate the generator.
type Simplex struct {
	perm [512]int

	octaves     int
	persistence float64
	expansion   float64
}

// NewSimplex creates a Simplex noise generator with the octave count,
// amplitude persistence and frequency expansion passed, consuming the random
// source to shuffle the permutation table.
func NewSimplex(r *rand.Random, octaves int, persistence, expansion float64) *Simplex {
	s := &Simplex{octaves: octaves, persistence: persistence, expansion: expansion}
	for i := 0; i < 256; i++ {
		s.perm[i] = i
	}
	for i := 255; i > 0; i-- {
		j := int(r.Int31n(int32(i + 1)))
		s.perm[i], s.perm[j] = s.perm[j], s.perm[i]
	}
	for i := 0; i < 256; i++ {
		s.perm[i+256] = s.perm[i]
	}
	return s
}

// Noise3D returns octave noise at the position passed, in roughly [-1, 1].
func (s *Simplex) Noise3D(x, y, z float64) float64 {
	var result, amp, freq, maxAmp float64
	amp, freq = 1, 1
	for i := 0; i < s.octaves; i++ {
		result += s.raw3D(x*freq, y*freq, z*freq) * amp
		maxAmp += amp
		amp *= s.persistence
		freq *= s.expansion
	}
	return result / maxAmp
}

// Noise2D returns octave noise at the column position passed, in roughly
// [-1, 1].
func (s *Simplex) Noise2D(x, z float64) float64 {
	var result, amp, freq, maxAmp float64
	amp, freq = 1, 1
	for i := 0; i < s.octaves; i++ {
		result += s.raw2D(x*freq, z*freq) * amp
		maxAmp += amp
		amp *= s.persistence
		freq *= s.expansion
	}
	return result / maxAmp
}

// FastNoise3D samples a grid of xSize by ySize by zSize noise values starting
// at the world offset passed, computing true noise only every xStep, yStep
// and zStep cells and filling the rest by trilinear interpolation. xSize,
// ySize and zSize must be multiples of their step. The result is indexed
// [x][z][y], matching the terrain stage's iteration order.
func (s *Simplex) FastNoise3D(xSize, ySize, zSize, xStep, yStep, zStep int, xOff, yOff, zOff int64) [][][]float64 {
	out := make([][][]float64, xSize)
	for x := range out {
		out[x] = make([][]float64, zSize)
		for z := range out[x] {
			out[x][z] = make([]float64, ySize)
		}
	}

	for x := 0; x < xSize; x += xStep {
		for z := 0; z < zSize; z += zStep {
			for y := 0; y < ySize; y += yStep {
				out[x][z][y] = s.Noise3D(float64(xOff+int64(x)), float64(yOff+int64(y)), float64(zOff+int64(z)))
			}
		}
	}

	for x := 0; x < xSize; x++ {
		x0 := x / xStep * xStep
		x1 := x0 + xStep
		dx := float64(x-x0) / float64(xStep)
		for z := 0; z < zSize; z++ {
			z0 := z / zStep * zStep
			z1 := z0 + zStep
			dz := float64(z-z0) / float64(zStep)
			for y := 0; y < ySize; y++ {
				y0 := y / yStep * yStep
				y1 := y0 + yStep
				dy := float64(y-y0) / float64(yStep)
				if x == x0 && y == y0 && z == z0 {
					continue
				}

				c000 := out[x0][z0][y0]
				c100 := sample(out, x1, z0, y0, xSize, zSize, ySize)
				c010 := sample(out, x0, z0, y1, xSize, zSize, ySize)
				c110 := sample(out, x1, z0, y1, xSize, zSize, ySize)
				c001 := sample(out, x0, z1, y0, xSize, zSize, ySize)
				c101 := sample(out, x1, z1, y0, xSize, zSize, ySize)
				c011 := sample(out, x0, z1, y1, xSize, zSize, ySize)
				c111 := sample(out, x1, z1, y1, xSize, zSize, ySize)

				out[x][z][y] = lerp(dz,
					lerp(dy, lerp(dx, c000, c100), lerp(dx, c010, c110)),
					lerp(dy, lerp(dx, c001, c101), lerp(dx, c011, c111)),
				)
			}
		}
	}
	return out
}

// sample reads a lattice value, clamping indices that fall one step past the
// grid edge back onto the last computed lattice point.
func sample(out [][][]float64, x, z, y, xSize, zSize, ySize int) float64 {
	if x >= xSize {
		x = xSize - 1
	}
	if z >= zSize {
		z = zSize - 1
	}
	if y >= ySize {
		y = ySize - 1
	}
	return out[x][z][y]
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func (s *Simplex) raw2D(x, y float64) float64 {
	skew := (x + y) * f2
	i, j := int(math.Floor(x+skew)), int(math.Floor(y+skew))

	t := float64(i+j) * g2
	x0, y0 := x-(float64(i)-t), y-(float64(j)-t)

	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1, y1 := x0-float64(i1)+g2, y0-float64(j1)+g2
	x2, y2 := x0-1+2*g2, y0-1+2*g2

	ii, jj := i&255, j&255
	gi0 := s.perm[ii+s.perm[jj]] % 12
	gi1 := s.perm[ii+i1+s.perm[jj+j1]] % 12
	gi2 := s.perm[ii+1+s.perm[jj+1]] % 12

	var n0, n1, n2 float64
	if t0 := 0.5 - x0*x0 - y0*y0; t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * (grad3[gi0][0]*x0 + grad3[gi0][1]*y0)
	}
	if t1 := 0.5 - x1*x1 - y1*y1; t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * (grad3[gi1][0]*x1 + grad3[gi1][1]*y1)
	}
	if t2 := 0.5 - x2*x2 - y2*y2; t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * (grad3[gi2][0]*x2 + grad3[gi2][1]*y2)
	}
	return 70 * (n0 + n1 + n2)
}

func (s *Simplex) raw3D(x, y, z float64) float64 {
	skew := (x + y + z) * f3
	i, j, k := int(math.Floor(x+skew)), int(math.Floor(y+skew)), int(math.Floor(z+skew))

	t := float64(i+j+k) * g3
	x0, y0, z0 := x-(float64(i)-t), y-(float64(j)-t), z-(float64(k)-t)

	var i1, j1, k1, i2, j2, k2 int
	if x0 >= y0 {
		switch {
		case y0 >= z0:
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 1, 0
		case x0 >= z0:
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 0, 1
		default:
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 1, 0, 1
		}
	} else {
		switch {
		case y0 < z0:
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 0, 1, 1
		case x0 < z0:
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 0, 1, 1
		default:
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 1, 1, 0
		}
	}

	x1, y1, z1 := x0-float64(i1)+g3, y0-float64(j1)+g3, z0-float64(k1)+g3
	x2, y2, z2 := x0-float64(i2)+2*g3, y0-float64(j2)+2*g3, z0-float64(k2)+2*g3
	x3, y3, z3 := x0-1+3*g3, y0-1+3*g3, z0-1+3*g3

	ii, jj, kk := i&255, j&255, k&255
	gi0 := s.perm[ii+s.perm[jj+s.perm[kk]]] % 12
	gi1 := s.perm[ii+i1+s.perm[jj+j1+s.perm[kk+k1]]] % 12
	gi2 := s.perm[ii+i2+s.perm[jj+j2+s.perm[kk+k2]]] % 12
	gi3 := s.perm[ii+1+s.perm[jj+1+s.perm[kk+1]]] % 12

	var n0, n1, n2, n3 float64
	if t0 := 0.6 - x0*x0 - y0*y0 - z0*z0; t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * (grad3[gi0][0]*x0 + grad3[gi0][1]*y0 + grad3[gi0][2]*z0)
	}
	if t1 := 0.6 - x1*x1 - y1*y1 - z1*z1; t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * (grad3[gi1][0]*x1 + grad3[gi1][1]*y1 + grad3[gi1][2]*z1)
	}
	if t2 := 0.6 - x2*x2 - y2*y2 - z2*z2; t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * (grad3[gi2][0]*x2 + grad3[gi2][1]*y2 + grad3[gi2][2]*z2)
	}
	if t3 := 0.6 - x3*x3 - y3*y3 - z3*z3; t3 > 0 {
		t3 *= t3
		n3 = t3 * t3 * (grad3[gi3][0]*x3 + grad3[gi3][1]*y3 + grad3[gi3][2]*z3)
	}
	return 32 * (n0 + n1 + n2 + n3)
}
