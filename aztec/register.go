package aztec

import aztecvision "github.com/aztecvision/aztecvision"

func init() {
	aztecvision.RegisterReader(aztecvision.FormatAztec, func(opts *aztecvision.DecodeOptions) aztecvision.Reader {
		return NewReader()
	})
	aztecvision.RegisterWriter(aztecvision.FormatAztec, func() aztecvision.Writer {
		return NewWriter()
	})
}
