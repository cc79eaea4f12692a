package detector

import (
	aztecvision "github.com/aztecvision/aztecvision"
	"github.com/aztecvision/aztecvision/transform"
)

// rot is the 4x4 permutation that remaps the default N,E,S,W corner
// indexing to the rotated indexing implied by a given topLineIndex
// orientation.
var rot = [4][4]int{
	{0, 1, 3, 2},
	{1, 2, 0, 3},
	{2, 3, 1, 0},
	{3, 0, 2, 1},
}

// vec2 is a direction or offset in canonical (rectified) space.
type vec2 struct{ x, y float64 }

func (v vec2) perp() vec2 { return vec2{-v.y, v.x} }

// optimizeTransform refines the inverse transform against full-range codes'
// reference grid lines, one distance d = 16, 32, ... at a time. Compact
// codes have no reference lines and this is a no-op.
func (st *state) optimizeTransform() error {
	if st.numReferenceLines == 0 {
		return nil
	}

	directions := []vec2{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} // N, E, S, W

	for ring := 1; ring <= st.numReferenceLines; ring++ {
		d := 16 * ring

		imagePts := make([]vec2, 4)
		for i, v := range directions {
			p, err := st.findReferencePoint(v, d)
			if err != nil {
				return err
			}
			imagePts[i] = p
		}

		q := float64(d) * moduleSize
		// Ideal positions, in the same N, E, S, W order as directions above.
		idealDefault := [4]vec2{{0, -q}, {q, 0}, {0, q}, {-q, 0}} // N, E, S, W

		perm := rot[st.topLineIndex]
		rotatedIdeal := make([]vec2, 4)
		for i := 0; i < 4; i++ {
			rotatedIdeal[i] = idealDefault[perm[i]]
		}

		st.inverse = transform.QuadrilateralToQuadrilateral(
			rotatedIdeal[0].x, rotatedIdeal[0].y,
			rotatedIdeal[1].x, rotatedIdeal[1].y,
			rotatedIdeal[2].x, rotatedIdeal[2].y,
			rotatedIdeal[3].x, rotatedIdeal[3].y,
			imagePts[0].x, imagePts[0].y,
			imagePts[1].x, imagePts[1].y,
			imagePts[2].x, imagePts[2].y,
			imagePts[3].x, imagePts[3].y,
		)
		// Orientation is now baked into the transform; later, larger-radius
		// refinements must not re-apply it.
		st.topLineIndex = 0
	}
	return nil
}

// findReferencePoint locates the pixel-space module center at distance d
// (in modules) from the symbol center along direction v, by finding the
// d-th and (d+1)-th color transition along v and then centering
// perpendicular to it.
func (st *state) findReferencePoint(v vec2, d int) (vec2, error) {
	maxT := float64(st.matrixSize) * (moduleSize/2 + 1)

	var changes []float64
	prev, err := st.sampleBit(st.inverse, 0, 0)
	if err != nil {
		return vec2{}, err
	}
	for t := 1.0; t <= maxT; t++ {
		bit, err := st.sampleBit(st.inverse, t*v.x, t*v.y)
		if err != nil {
			return vec2{}, err
		}
		if bit != prev {
			changes = append(changes, t)
			prev = bit
		}
	}
	if len(changes) < d+1 {
		return vec2{}, aztecvision.ErrNotFound
	}

	t1 := changes[d-1]
	t2 := changes[d]
	tStar := (t1 + t2) / 2
	p := vec2{tStar * v.x, tStar * v.y}

	vPerp := v.perp()
	u1, err := st.walkToWhite(p, vPerp)
	if err != nil {
		return vec2{}, err
	}
	u2, err := st.walkToWhite(p, vec2{-vPerp.x, -vPerp.y})
	if err != nil {
		return vec2{}, err
	}
	centerOffset := (u1 - u2) / 2
	center := vec2{p.x + centerOffset*vPerp.x, p.y + centerOffset*vPerp.y}

	pts := []float64{center.x, center.y}
	st.inverse.TransformPoints(pts)
	return vec2{pts[0], pts[1]}, nil
}

// walkToWhite steps away from p along dir (one pixel-equivalent unit at a
// time, in canonical space) until it first finds a white module, returning
// the distance traveled along dir (never negative).
func (st *state) walkToWhite(p, dir vec2) (float64, error) {
	for u := 0.0; u < moduleSize*4; u++ {
		x := p.x + u*dir.x
		y := p.y + u*dir.y
		bit, err := st.sampleBit(st.inverse, x, y)
		if err != nil {
			return 0, aztecvision.ErrNotFound
		}
		if !bit {
			return u, nil
		}
	}
	return 0, aztecvision.ErrNotFound
}
