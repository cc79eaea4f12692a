package detector

import (
	aztecvision "github.com/aztecvision/aztecvision"
	"github.com/aztecvision/aztecvision/bitutil"
)

// normalizeMatrix resamples the symbol into a canonical one-bit-per-module
// matrix (cellWidth=1, no border), returning it along with the symbol's four
// outer corners in image space.
func (st *state) normalizeMatrix() (*bitutil.BitMatrix, []aztecvision.ResultPoint) {
	bits, corners := st.rectify(1, 0)
	return bits, corners
}

// rectify is the general form of normalizeMatrix: it supports magnifying
// each module into a c x c block with an additional border of b pixels, as
// used by callers that want a larger, more legible rectified image.
func (st *state) rectify(cellWidth, borderWidth int) (*bitutil.BitMatrix, []aztecvision.ResultPoint) {
	size := st.matrixSize
	dim := size*cellWidth + 2*borderWidth
	out := bitutil.NewBitMatrixWithSize(dim, dim)

	half := size / 2
	for j := -half; j <= half; j++ {
		for i := -half; i <= half; i++ {
			cx := float64(i) * moduleSize
			cy := float64(j) * moduleSize
			pts := []float64{cx, cy}
			st.inverse.TransformPoints(pts)
			tx, ty := roundHalfEven(pts[0]), roundHalfEven(pts[1])
			if tx < 0 || tx >= st.image.Width() || ty < 0 || ty >= st.image.Height() {
				continue
			}
			if !st.image.Get(tx, ty) {
				continue
			}
			ox := borderWidth + (i+half)*cellWidth
			oy := borderWidth + (j+half)*cellWidth
			out.SetRegion(ox, oy, cellWidth, cellWidth)
		}
	}

	half2 := 0.5 * moduleSize * float64(size)
	corners := make([]aztecvision.ResultPoint, 4)
	cornerOffsets := [4][2]float64{
		{-half2, -half2}, // NW
		{half2, -half2},  // NE
		{-half2, half2},  // SW
		{half2, half2},   // SE
	}
	for i, c := range cornerOffsets {
		pts := []float64{c[0], c[1]}
		st.inverse.TransformPoints(pts)
		corners[i] = aztecvision.ResultPoint{X: pts[0], Y: pts[1]}
	}
	return out, corners
}
