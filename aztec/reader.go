// Package aztec provides Aztec barcode reading and writing.
package aztec

import (
	aztecvision "github.com/aztecvision/aztecvision"
	"github.com/aztecvision/aztecvision/aztec/decoder"
	"github.com/aztecvision/aztecvision/aztec/detector"
)

// Reader decodes Aztec barcodes from binary images.
type Reader struct{}

// NewReader creates a new Aztec Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Decode locates and decodes an Aztec barcode in the given image.
func (r *Reader) Decode(image *aztecvision.BinaryBitmap, opts *aztecvision.DecodeOptions) (*aztecvision.Result, error) {
	matrix, err := image.BlackMatrix()
	if err != nil {
		return nil, err
	}

	detResult, err := detector.Detect(matrix)
	if err != nil {
		return nil, err
	}

	// Convert detector result to decoder input.
	ddata := &decoder.AztecDetectorResult{
		Bits:         detResult.Bits,
		Points:       detResult.Points,
		Compact:      detResult.Compact,
		NbDataBlocks: detResult.NbDataBlocks,
		NbLayers:     detResult.NbLayers,
	}

	dr, err := decoder.Decode(ddata)
	if err != nil {
		return nil, err
	}

	result := aztecvision.NewResult(dr.Text, dr.RawBytes, detResult.Points, aztecvision.FormatAztec)
	result.PutMetadata(aztecvision.MetadataSymbologyIdentifier, "]z0")
	return result, nil
}

// Reset resets internal state.
func (r *Reader) Reset() {}

// Compile-time check.
var _ aztecvision.Reader = (*Reader)(nil)
