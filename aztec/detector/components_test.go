package detector

import (
	"testing"

	"github.com/aztecvision/aztecvision/bitutil"
)

func TestLabelAllWhiteImageIsOneComponent(t *testing.T) {
	img := bitutil.NewBitMatrixWithSize(6, 4)
	labeling := Label(img)

	if len(labeling.Components) != 1 {
		t.Fatalf("expected exactly one component, got %d", len(labeling.Components))
	}
	for _, c := range labeling.Components {
		if c.Black {
			t.Error("the sole component of an all-white image should be white")
		}
		if c.NumPixels != 6*4 {
			t.Errorf("expected %d pixels, got %d", 6*4, c.NumPixels)
		}
	}
}

func TestLabelSingleBlackPixelGivesTwoComponents(t *testing.T) {
	img := bitutil.NewBitMatrixWithSize(5, 5)
	img.Set(2, 2)
	labeling := Label(img)

	if len(labeling.Components) != 2 {
		t.Fatalf("expected exactly two components, got %d", len(labeling.Components))
	}

	var blackPixels, whitePixels int
	for _, c := range labeling.Components {
		if c.Black {
			blackPixels = c.NumPixels
		} else {
			whitePixels = c.NumPixels
		}
	}
	if blackPixels != 1 {
		t.Errorf("expected 1 black pixel, got %d", blackPixels)
	}
	if whitePixels != 5*5-1 {
		t.Errorf("expected %d white pixels, got %d", 5*5-1, whitePixels)
	}
}

func TestLabelEnvelopesAreTight(t *testing.T) {
	img := bitutil.NewBitMatrixWithSize(8, 8)
	img.SetRegion(2, 3, 3, 2) // a 3x2 black block at (2,3)-(4,4)
	labeling := Label(img)

	for label, c := range labeling.Components {
		tight := emptyEnvelope()
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				if labeling.At(x, y) != label {
					continue
				}
				if !c.Envelope.Contains(x, y) {
					t.Errorf("component %d envelope %+v does not contain pixel (%d,%d)", label, c.Envelope, x, y)
				}
				tight = tight.Expand(x, y)
			}
		}
		if c.Envelope != tight {
			t.Errorf("component %d envelope %+v is not the bounding box %+v of its pixels", label, c.Envelope, tight)
		}
	}
}

func TestLabelPixelCountsSumToImageArea(t *testing.T) {
	img := bitutil.NewBitMatrixWithSize(10, 7)
	img.SetRegion(1, 1, 4, 3)
	img.Set(8, 5)
	labeling := Label(img)

	total := 0
	for _, c := range labeling.Components {
		total += c.NumPixels
	}
	if total != 10*7 {
		t.Errorf("expected total pixel count %d, got %d", 10*7, total)
	}
}

func TestLabelEveryPixelLabelMatchesItsComponentRoot(t *testing.T) {
	img := bitutil.NewBitMatrixWithSize(6, 6)
	img.SetRegion(0, 0, 3, 3)
	labeling := Label(img)

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			l := labeling.At(x, y)
			if l <= 0 {
				t.Fatalf("pixel (%d,%d) has non-positive label %d", x, y, l)
			}
			if _, ok := labeling.Components[l]; !ok {
				t.Fatalf("pixel (%d,%d) label %d has no component record", x, y, l)
			}
		}
	}
}

// bullsEye builds a synthetic concentric ring pattern: one black center, an
// alternating sequence of white/black square rings, and an outer white
// field -- six components in total, matching the spec's bullsEye.txt fixture
// expectation.
func bullsEye() *bitutil.BitMatrix {
	// n=11 gives a max Chebyshev distance of 5 from the center, producing
	// exactly six distinct rings: center (d=0, black) through the outer
	// border (d=5, white).
	const n = 11
	img := bitutil.NewBitMatrixWithSize(n, n)
	center := n / 2
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			d := x - center
			if y-center > d {
				d = y - center
			}
			if center-y > d {
				d = center - y
			}
			if center-x > d {
				d = center - x
			}
			// d = Chebyshev distance from center
			black := d%2 == 0
			if black {
				img.Set(x, y)
			} else {
				img.Unset(x, y)
			}
		}
	}
	return img
}

func TestLabelBullsEyeHasSixComponents(t *testing.T) {
	labeling := Label(bullsEye())
	if len(labeling.Components) != 6 {
		t.Errorf("expected 6 concentric components in the bulls-eye fixture, got %d", len(labeling.Components))
	}
}
