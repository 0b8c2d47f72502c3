package cube

import "fmt"

// Box is an axis aligned bounding box over block positions. Both corners are
// inclusive: a Box{Min: Pos{0, 0, 0}, Max: Pos{0, 0, 0}} contains exactly one
// position. Min must not exceed Max on any axis.
type Box struct {
	Min, Max Pos
}

// BoxAt returns a Box spanning the two positions passed. The corners may be
// passed in any order; they are sorted per axis.
func BoxAt(a, b Pos) Box {
	for i := 0; i < 3; i++ {
		if a[i] > b[i] {
			a[i], b[i] = b[i], a[i]
		}
	}
	return Box{Min: a, Max: b}
}

// Span returns the distance between Min and Max per axis. A box containing a
// single position has a zero span on every axis.
func (b Box) Span() Pos {
	return b.Max.Sub(b.Min)
}

// Inside checks if a position is contained within the Box. Positions on the
// corners of the Box are considered inside.
func (b Box) Inside(p Pos) bool {
	return p[0] >= b.Min[0] && p[0] <= b.Max[0] &&
		p[1] >= b.Min[1] && p[1] <= b.Max[1] &&
		p[2] >= b.Min[2] && p[2] <= b.Max[2]
}

// Volume returns the amount of positions contained in the Box.
func (b Box) Volume() int {
	s := b.Span()
	return (s[0] + 1) * (s[1] + 1) * (s[2] + 1)
}

// Contains checks if the Box passed lies fully within b.
func (b Box) Contains(other Box) bool {
	return b.Inside(other.Min) && b.Inside(other.Max)
}

// String converts the Box to a readable string.
func (b Box) String() string {
	return fmt.Sprintf("%v..%v", b.Min, b.Max)
}
