package cube

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Pos holds the position of a block. The position is represented of an array
// with an x, y and z value, where the y value is vertical.
type Pos [3]int

// X returns the X coordinate of the block position.
func (p Pos) X() int {
	return p[0]
}

// Y returns the Y coordinate of the block position.
func (p Pos) Y() int {
	return p[1]
}

// Z returns the Z coordinate of the block position.
func (p Pos) Z() int {
	return p[2]
}

// Add adds two block positions together and returns a new one with the sum of
// the two positions.
func (p Pos) Add(pos Pos) Pos {
	return Pos{p[0] + pos[0], p[1] + pos[1], p[2] + pos[2]}
}

// Sub subtracts a block position from another and returns a new one with the
// difference of the two positions.
func (p Pos) Sub(pos Pos) Pos {
	return Pos{p[0] - pos[0], p[1] - pos[1], p[2] - pos[2]}
}

// Vec3 returns a vec3 holding the same coordinates as the block position.
func (p Pos) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{float64(p[0]), float64(p[1]), float64(p[2])}
}

// String converts the Pos to a readable string.
func (p Pos) String() string {
	return fmt.Sprintf("(%v, %v, %v)", p[0], p[1], p[2])
}

// Range represents the height range of a Dimension in blocks: The minimum and
// maximum altitude at which blocks may exist within it.
type Range [2]int

// Min returns the minimum altitude of the Range.
func (r Range) Min() int {
	return r[0]
}

// Max returns the maximum altitude of the Range.
func (r Range) Max() int {
	return r[1]
}

// Height returns the total height of the Range, being r.Max() - r.Min().
func (r Range) Height() int {
	return r[1] - r[0]
}
