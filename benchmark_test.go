package aztecvision_test

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"testing"

	aztecvision "github.com/aztecvision/aztecvision"
	"github.com/aztecvision/aztecvision/binarizer"

	_ "github.com/aztecvision/aztecvision/aztec"
)

func loadTestImage(path string) image.Image {
	f, err := os.Open(path)
	if err != nil {
		panic("failed to open image: " + err.Error())
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		panic("failed to decode image: " + err.Error())
	}
	return img
}

var decodeTests = []struct {
	name   string
	path   string
	format aztecvision.Format
}{
	{"Aztec", "testdata/blackbox/aztec-1/abc-37x37.png", aztecvision.FormatAztec},
}

var encodeTests = []struct {
	name    string
	content string
	format  aztecvision.Format
	width   int
	height  int
}{
	{"Aztec", "Hello Aztec Code", aztecvision.FormatAztec, 0, 0},
}

func BenchmarkDecode(b *testing.B) {
	for _, tc := range decodeTests {
		b.Run(tc.name, func(b *testing.B) {
			img := loadTestImage(tc.path)
			opts := &aztecvision.DecodeOptions{
				PossibleFormats: []aztecvision.Format{tc.format},
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				// Create fresh binarizer/bitmap each iteration since HybridBinarizer caches
				source := aztecvision.NewImageLuminanceSource(img)
				bitmap := aztecvision.NewBinaryBitmap(binarizer.NewHybrid(source))
				_, err := aztecvision.Decode(bitmap, opts)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEncode(b *testing.B) {
	for _, tc := range encodeTests {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, err := aztecvision.Encode(tc.content, tc.format, tc.width, tc.height, nil)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
