package detector

import "math"

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Envelope is an axis-aligned integer bounding rectangle, closed on both
// ends: a pixel at (maxX, maxY) is considered inside.
type Envelope struct {
	MinX, MinY int
	MaxX, MaxY int
}

// emptyEnvelope returns the sentinel envelope that contains no point. Per
// convention MinX/MinY sit at +infinity and MaxX/MaxY at zero, so that the
// first Expand call establishes real bounds for non-negative coordinates
// (a negative x or y leaves MaxX or MaxY at zero).
func emptyEnvelope() Envelope {
	return Envelope{MinX: math.MaxInt32, MinY: math.MaxInt32, MaxX: 0, MaxY: 0}
}

// Expand grows the envelope to include (x, y).
func (e Envelope) Expand(x, y int) Envelope {
	if x < e.MinX {
		e.MinX = x
	}
	if y < e.MinY {
		e.MinY = y
	}
	if x > e.MaxX {
		e.MaxX = x
	}
	if y > e.MaxY {
		e.MaxY = y
	}
	return e
}

// Contains reports whether (x, y) lies within the closed rectangle.
func (e Envelope) Contains(x, y int) bool {
	return x >= e.MinX && x <= e.MaxX && y >= e.MinY && y <= e.MaxY
}

// Width returns the envelope's pixel width. Meaningless on an empty envelope.
func (e Envelope) Width() int { return e.MaxX - e.MinX + 1 }

// Height returns the envelope's pixel height. Meaningless on an empty envelope.
func (e Envelope) Height() int { return e.MaxY - e.MinY + 1 }

// CenterX returns the integer midpoint of the horizontal extent.
func (e Envelope) CenterX() int { return (e.MinX + e.MaxX) / 2 }

// CenterY returns the integer midpoint of the vertical extent.
func (e Envelope) CenterY() int { return (e.MinY + e.MaxY) / 2 }

// Quadrilateral holds the four named extreme corners of a ring-shaped
// component, as located by FindQuadrilateral.
type Quadrilateral struct {
	NW, NE, SW, SE Point
}
