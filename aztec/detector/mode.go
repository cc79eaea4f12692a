package detector

import (
	aztecvision "github.com/aztecvision/aztecvision"
	"github.com/aztecvision/aztecvision/reedsolomon"
)

// modeSide names the four sides walked while sampling the mode message, in
// their natural corner-to-corner order.
type modeSide int

const (
	sideNWtoNE modeSide = iota
	sideNEtoSE
	sideSEtoSW
	sideSWtoNW
)

// decodeModeMessage samples the ring of modules just outside the bull's-eye,
// determines orientation, and Reed-Solomon corrects the parameter word to
// recover numLayers, numDataWords, matrixSize and numReferenceLines.
func (st *state) decodeModeMessage() error {
	r := 5
	if !st.compact {
		r = 7
	}
	half := float64(r) * moduleSize

	// Four axis-aligned corners of the sampling square, named the way the
	// sides below are: the side "NW->NE" runs along the top, etc.
	nw := [2]float64{-half, -half}
	ne := [2]float64{half, -half}
	se := [2]float64{half, half}
	sw := [2]float64{-half, half}

	walk := func(from, to [2]float64) (int, error) {
		word := 0
		dx := (to[0] - from[0]) / float64(2*r)
		dy := (to[1] - from[1]) / float64(2*r)
		for i := 0; i < 2*r; i++ {
			x := from[0] + float64(i)*dx
			y := from[1] + float64(i)*dy
			bit, err := st.sampleBit(st.inverse, x, y)
			if err != nil {
				return 0, err
			}
			word <<= 1
			if bit {
				word |= 1
			}
		}
		return word, nil
	}

	sides := make([]int, 4)
	var err error
	if sides[sideNWtoNE], err = walk(nw, ne); err != nil {
		return err
	}
	if sides[sideNEtoSE], err = walk(ne, se); err != nil {
		return err
	}
	if sides[sideSEtoSW], err = walk(se, sw); err != nil {
		return err
	}
	if sides[sideSWtoNW], err = walk(sw, nw); err != nil {
		return err
	}

	// Orientation: the side whose top-2/bottom-1 bits form 111 sits
	// immediately after the intended top side.
	found := -1
	for i, w := range sides {
		bits := (((w >> uint(2*r-2)) & 3) << 1) | (w & 1)
		if bits == 7 {
			found = i
			break
		}
	}
	if found < 0 {
		return aztecvision.ErrNotFound
	}
	st.topLineIndex = (found + 3) % 4

	// Walk the sides starting at topLineIndex, extracting payload bits from
	// each and concatenating them MSB-first into the parameter word.
	var param uint64
	bodyBits := 2*r - 3
	for i := 0; i < 4; i++ {
		side := sides[(st.topLineIndex+i)%4]
		body := uint64(side>>1) & ((1 << uint(bodyBits)) - 1)
		payload := body
		if !st.compact {
			// Full-range codes carry one extra orientation bit in the dead
			// center of the body; drop it to land on the documented 10-bit
			// payload width.
			mid := uint(bodyBits) / 2
			low := body & ((1 << mid) - 1)
			high := body >> (mid + 1)
			payload = (high << mid) | low
		}
		payloadBits := bodyBits
		if !st.compact {
			payloadBits--
		}
		param = (param << uint(payloadBits)) | payload
	}

	numCodewords, numDataCodewords := 7, 2
	if !st.compact {
		numCodewords, numDataCodewords = 10, 4
	}
	codewords := make([]int, numCodewords)
	for i := numCodewords - 1; i >= 0; i-- {
		codewords[i] = int(param) & 0xF
		param >>= 4
	}
	ecCodewords := numCodewords - numDataCodewords
	dec := reedsolomon.NewDecoder(reedsolomon.AztecParam)
	if _, err := dec.Decode(codewords, ecCodewords); err != nil {
		return aztecvision.ErrNotFound
	}

	data := 0
	for i := 0; i < numDataCodewords; i++ {
		data = (data << 4) | codewords[i]
	}

	if st.compact {
		st.numLayers = (data >> 6) + 1
		st.numDataWords = (data & 0x3F) + 1
		st.matrixSize = 11 + 4*st.numLayers
		st.numReferenceLines = 0
	} else {
		st.numLayers = (data >> 11) + 1
		st.numDataWords = (data & 0x7FF) + 1
		baseMatrixSize := 14 + 4*st.numLayers
		st.numReferenceLines = (baseMatrixSize/2 - 1) / 15
		st.matrixSize = baseMatrixSize + 1 + 2*st.numReferenceLines
	}
	return nil
}
