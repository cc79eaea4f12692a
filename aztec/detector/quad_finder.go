package detector

// FindQuadrilateral locates the four extreme corners of a labeled ring-shaped
// component by sweeping diagonals outward from each corner of the
// component's envelope. labels is the dense width*height label grid produced
// by the component finder.
func FindQuadrilateral(labels []int, width int, env Envelope, label int) Quadrilateral {
	height := len(labels) / width

	// D spans from minX/minY to the opposite edge of the envelope: using
	// the pixel extent (count - 1) rather than the pixel count itself keeps
	// minX+D (and minY+D) landing exactly on maxX (and maxY).
	d := env.Width() - 1
	if env.Height()-1 > d {
		d = env.Height() - 1
	}

	inBounds := func(x, y int) bool {
		return x >= 0 && x < width && y >= 0 && y < height
	}
	matches := func(x, y int) bool {
		return inBounds(x, y) && labels[y*width+x] == label
	}

	// walk follows the diagonal (stepX, stepY) from (startX, startY),
	// stopping as soon as it leaves the envelope, and returns the first
	// pixel carrying label.
	walk := func(startX, startY, stepX, stepY int) (Point, bool) {
		x, y := startX, startY
		for env.Contains(x, y) {
			if matches(x, y) {
				return Point{X: x, Y: y}, true
			}
			x += stepX
			y += stepY
		}
		return Point{}, false
	}

	return Quadrilateral{
		NW: sweepCorner(env.MinY, env.MinY+d, 1, func(j int) (Point, bool) {
			return walk(env.MinX, j, 1, -1)
		}),
		NE: sweepCorner(env.MinY, env.MinY+d, 1, func(j int) (Point, bool) {
			return walk(env.MinX+d, j, -1, -1)
		}),
		SW: sweepCorner(env.MinY+d, env.MinY, -1, func(j int) (Point, bool) {
			return walk(env.MinX, j, 1, 1)
		}),
		SE: sweepCorner(env.MinY+d, env.MinY, -1, func(j int) (Point, bool) {
			return walk(env.MinX+d, j, -1, 1)
		}),
	}
}

// sweepCorner iterates j from start to end (stepping by stride, which must
// be +1 or -1) and returns the first point produced by try, or the zero
// Point if no j yields a hit.
func sweepCorner(start, end, stride int, try func(j int) (Point, bool)) Point {
	if stride > 0 {
		for j := start; j <= end; j++ {
			if p, ok := try(j); ok {
				return p
			}
		}
	} else {
		for j := start; j >= end; j-- {
			if p, ok := try(j); ok {
				return p
			}
		}
	}
	return Point{}
}
