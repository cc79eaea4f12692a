package aztecvision_test

import (
	"testing"

	aztecvision "github.com/aztecvision/aztecvision"

	// Register the Aztec format reader.
	_ "github.com/aztecvision/aztecvision/aztec"
)

func TestBlackBoxAztec1(t *testing.T) {
	runBlackBoxTest(t, blackboxTestCase{
		dir:    "aztec-1",
		format: aztecvision.FormatAztec,
		tests: []blackboxTestRotation{
			rot(0, 15, 15),
			rot(90, 15, 15),
			rot(180, 15, 15),
			rot(270, 15, 15),
		},
	})
}

func TestBlackBoxAztec2(t *testing.T) {
	runBlackBoxTest(t, blackboxTestCase{
		dir:    "aztec-2",
		format: aztecvision.FormatAztec,
		tests: []blackboxTestRotation{
			rot(0, 5, 5),
			rot(90, 4, 4),
			rot(180, 6, 6),
			rot(270, 3, 3),
		},
	})
}
