package detector

import "testing"

func TestEmptyEnvelopeContainsNothing(t *testing.T) {
	e := emptyEnvelope()
	if e.Contains(0, 0) {
		t.Error("empty envelope should contain no point")
	}
	if e.Contains(-5, 5) {
		t.Error("empty envelope should contain no point, including negative coordinates")
	}
}

func TestEnvelopeExpandContainsExactlyOnePoint(t *testing.T) {
	e := emptyEnvelope().Expand(3, 7)
	if !e.Contains(3, 7) {
		t.Error("envelope should contain the point it was expanded with")
	}
	if e.Contains(3, 8) || e.Contains(4, 7) {
		t.Error("envelope should contain exactly one point after a single expand")
	}
	if e.Width() != 1 || e.Height() != 1 {
		t.Errorf("single-point envelope should be 1x1, got %dx%d", e.Width(), e.Height())
	}
}

func TestEnvelopeGrowsToCoverAllExpandedPoints(t *testing.T) {
	e := emptyEnvelope().Expand(2, 2).Expand(5, 9).Expand(0, 4)
	if !e.Contains(2, 2) || !e.Contains(5, 9) || !e.Contains(0, 4) {
		t.Error("envelope should contain every expanded point")
	}
	if e.MinX != 0 || e.MaxX != 5 || e.MinY != 2 || e.MaxY != 9 {
		t.Errorf("unexpected bounds: %+v", e)
	}
}
