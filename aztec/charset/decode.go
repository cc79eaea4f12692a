package charset

import (
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// Decode converts a run of binary-shift payload bytes to UTF-8 text under
// the given ECI. ISO-8859-1 and UTF-8 need no conversion: the Unicode code
// points 0-255 are defined to match Latin-1 byte values exactly, and UTF-8
// bytes are already valid Go string bytes. Shift_JIS and GB18030 go through
// golang.org/x/text; a failed conversion falls back to the raw bytes
// reinterpreted as Latin-1 rather than dropping the segment.
func Decode(data []byte, eci *ECI) string {
	switch eci.GoName {
	case "UTF-8":
		return string(data)
	case "Shift_JIS":
		decoded, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), data)
		if err == nil {
			return string(decoded)
		}
	case "GB18030":
		decoded, _, err := transform.Bytes(simplifiedchinese.GB18030.NewDecoder(), data)
		if err == nil {
			return string(decoded)
		}
	}
	return latin1ToUTF8(data)
}

// latin1ToUTF8 reinterprets each byte as its own Unicode code point, which
// is exactly the ISO-8859-1 decoding rule.
func latin1ToUTF8(data []byte) string {
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}
