package detector

import (
	"testing"

	"github.com/aztecvision/aztecvision/bitutil"
)

// TestFindQuadrilateralLocatesSquareRingCorners builds a hollow black square
// ring on a white background and checks that the quadrilateral finder
// returns its four extreme corners.
func TestFindQuadrilateralLocatesSquareRingCorners(t *testing.T) {
	img := bitutil.NewBitMatrixWithSize(20, 20)
	// Hollow ring from (4,4) to (15,15): paint the full square, then clear
	// the interior to leave only the 1px-thick border black.
	img.SetRegion(4, 4, 12, 12)
	for y := 5; y < 15; y++ {
		for x := 5; x < 15; x++ {
			img.Unset(x, y)
		}
	}

	labeling := Label(img)
	ringLabel := labeling.At(4, 4)
	comp := labeling.Components[ringLabel]
	if !comp.Black {
		t.Fatalf("expected ring component to be black")
	}

	q := FindQuadrilateral(labeling.Labels, labeling.Width, comp.Envelope, ringLabel)

	if q.NW.X != 4 || q.NW.Y != 4 {
		t.Errorf("NW corner: got %+v, want (4,4)", q.NW)
	}
	if q.NE.X != 15 || q.NE.Y != 4 {
		t.Errorf("NE corner: got %+v, want (15,4)", q.NE)
	}
	if q.SW.X != 4 || q.SW.Y != 15 {
		t.Errorf("SW corner: got %+v, want (4,15)", q.SW)
	}
	if q.SE.X != 15 || q.SE.Y != 15 {
		t.Errorf("SE corner: got %+v, want (15,15)", q.SE)
	}
}
