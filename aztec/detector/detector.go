// Package detector implements Aztec barcode detection in binarized images.
//
// Unlike a finder-pattern search keyed off a single white-rectangle probe,
// this detector starts from a full 4-connected labeling of the image (see
// components.go) and walks outward from candidate black blobs to recognize
// the bull's-eye by the sequence of ring labels its rays cross. Once a
// bull's-eye is confirmed, the outer white ring's corners (quad_finder.go)
// seed a perspective transform; the mode message sampled through that
// transform is Reed-Solomon corrected to recover layer/data-word counts and
// orientation; full-range codes then refine the transform against the
// reference grid lines before the final canonical matrix is resampled.
package detector

import (
	"math"

	aztecvision "github.com/aztecvision/aztecvision"
	"github.com/aztecvision/aztecvision/bitutil"
	"github.com/aztecvision/aztecvision/transform"
)

// moduleSize is the canonical pixel size of one module in the rectified
// coordinate space used throughout detection (M in the design notes).
const moduleSize = 6.0

// DetectorResult is the output of Detect: the sampled bit matrix, its four
// outer corner points in image space, and the structural parameters read
// from the mode message.
type DetectorResult struct {
	Bits         *bitutil.BitMatrix
	Points       []aztecvision.ResultPoint
	Compact      bool
	NbDataBlocks int
	NbLayers     int
}

// state carries the fields populated left-to-right as detection proceeds;
// see the data model's AztecDetectorState.
type state struct {
	image  *bitutil.BitMatrix
	labels *Labeling

	whiteSquareLabel int
	compact          bool
	q                Quadrilateral

	numLayers         int
	numDataWords      int
	matrixSize        int
	numReferenceLines int
	topLineIndex      int

	inverse *transform.PerspectiveTransform
}

// Detect locates an Aztec barcode in image and returns the rectified module
// matrix plus its structural parameters, or aztecvision.ErrNotFound if no
// bull's-eye could be located and fully decoded.
func Detect(image *bitutil.BitMatrix) (*DetectorResult, error) {
	st := &state{image: image}
	st.labels = Label(image)

	if err := st.findBullsEye(); err != nil {
		return nil, err
	}

	st.q = FindQuadrilateral(st.labels.Labels, st.labels.Width, st.labels.Components[st.whiteSquareLabel].Envelope, st.whiteSquareLabel)

	st.computeInitialTransform()

	if err := st.decodeModeMessage(); err != nil {
		return nil, err
	}

	if err := st.optimizeTransform(); err != nil {
		return nil, err
	}

	bits, corners := st.normalizeMatrix()

	return &DetectorResult{
		Bits:         bits,
		Points:       corners,
		Compact:      st.compact,
		NbDataBlocks: st.numDataWords,
		NbLayers:     st.numLayers,
	}, nil
}

// ---------------------------------------------------------------------------
// Bull's-eye detection
// ---------------------------------------------------------------------------

// findBullsEye enumerates black components in ascending pixel-count order and
// returns the first whose centroid rays exhibit concentric-ring topology
// (see spec 4.3.1). First match wins; candidates are never re-examined.
func (st *state) findBullsEye() error {
	candidates := make([]*Component, 0, len(st.labels.Components))
	for _, c := range st.labels.Components {
		if c.Black {
			candidates = append(candidates, c)
		}
	}
	// Min-heap-equivalent: a pixel-count sort gives the same non-decreasing
	// iteration order a priority queue would, without the bookkeeping.
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0 && candidates[j].NumPixels < candidates[j-1].NumPixels; j-- {
			candidates[j], candidates[j-1] = candidates[j-1], candidates[j]
		}
	}

	for _, c := range candidates {
		cx, cy := c.Envelope.CenterX(), c.Envelope.CenterY()
		east := st.traceRay(cx, cy, 1, 0)
		west := st.traceRay(cx, cy, -1, 0)
		south := st.traceRay(cx, cy, 0, 1)
		north := st.traceRay(cx, cy, 0, -1)

		k := commonPrefixLen(east, west)
		if k < 4 {
			continue
		}
		if k > 6 {
			k = 6
		}
		if !pairwiseDistinct(east[:k]) {
			continue
		}
		if p := commonPrefixLen(east, south); p < k {
			k = p
		}
		if k < 4 {
			continue
		}
		if p := commonPrefixLen(east, north); p < k {
			k = p
		}
		if k < 4 {
			continue
		}

		compact := k < 6
		offset := 4
		if compact {
			offset = 2
		}
		if offset >= len(east) {
			continue
		}
		whiteLabel := east[offset]

		st.whiteSquareLabel = whiteLabel
		st.compact = compact
		return nil
	}
	return aztecvision.ErrNotFound
}

// traceRay walks from (x, y) in direction (dx, dy), recording the label at
// every step where it differs from the previous step, until it leaves the
// image. The component containing (x, y) itself is not recorded, so the
// first entry is the ring immediately around it.
func (st *state) traceRay(x, y, dx, dy int) []int {
	var seq []int
	w, h := st.labels.Width, st.labels.Height
	last := st.labels.At(x, y)
	for x >= 0 && x < w && y >= 0 && y < h {
		l := st.labels.At(x, y)
		if l != last {
			seq = append(seq, l)
			last = l
		}
		x += dx
		y += dy
	}
	return seq
}

func commonPrefixLen(a, b []int) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

func pairwiseDistinct(labels []int) bool {
	for i := 0; i < len(labels); i++ {
		for j := i + 1; j < len(labels); j++ {
			if labels[i] == labels[j] {
				return false
			}
		}
	}
	return true
}

// ---------------------------------------------------------------------------
// Initial transform
// ---------------------------------------------------------------------------

// computeInitialTransform builds the inverse transform mapping the ideal
// outer-finder-square corners in canonical space to the outer corners of the
// corner pixels found by the quadrilateral finder. Pixel (x, y) covers
// [x-0.5, x+0.5] x [y-0.5, y+0.5] here, so rounding a transformed point
// yields the pixel that contains it.
func (st *state) computeInitialTransform() {
	s := 3.5 * moduleSize
	if !st.compact {
		s = 5.5 * moduleSize
	}
	st.inverse = transform.QuadrilateralToQuadrilateral(
		-s, -s, s, -s, -s, s, s, s,
		float64(st.q.NW.X)-0.5, float64(st.q.NW.Y)-0.5,
		float64(st.q.NE.X)+0.5, float64(st.q.NE.Y)-0.5,
		float64(st.q.SW.X)-0.5, float64(st.q.SW.Y)+0.5,
		float64(st.q.SE.X)+0.5, float64(st.q.SE.Y)+0.5,
	)
}

// ---------------------------------------------------------------------------
// Sampling helpers
// ---------------------------------------------------------------------------

// roundHalfEven applies banker's rounding, as required for sample-point
// coordinates.
func roundHalfEven(f float64) int {
	return int(math.RoundToEven(f))
}

// sampleBit transforms a canonical-space point through inv, rounds it, and
// reads the corresponding image pixel. It fails if the point lands outside
// the bit matrix.
func (st *state) sampleBit(inv *transform.PerspectiveTransform, cx, cy float64) (bool, error) {
	pts := []float64{cx, cy}
	inv.TransformPoints(pts)
	x, y := roundHalfEven(pts[0]), roundHalfEven(pts[1])
	if x < 0 || x >= st.image.Width() || y < 0 || y >= st.image.Height() {
		return false, aztecvision.ErrNotFound
	}
	return st.image.Get(x, y), nil
}
