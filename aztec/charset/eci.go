// Package charset resolves Aztec ECI (Extended Channel Interpretation)
// designator values to the character encoding they select, and decodes
// binary-shift payload bytes accordingly.
package charset

// ECI names one Extended Channel Interpretation value, as carried by an
// Aztec FLG(n) control sequence.
type ECI struct {
	Value  int
	Name   string
	GoName string
}

// Values the Aztec format is actually expected to emit: Latin-1 is the
// default when no FLG(n) ECI designator is present, and Shift_JIS/GB18030
// are the two non-Latin encodings the source corpus's charset guesser
// supports via golang.org/x/text.
var (
	ECIISO8859_1 = &ECI{1, "ISO8859_1", "ISO8859_1"}
	ECISJIS      = &ECI{20, "SJIS", "Shift_JIS"}
	ECIUTF8      = &ECI{26, "UTF8", "UTF-8"}
	ECIGB18030   = &ECI{29, "GB18030", "GB18030"}
)

var byValue = map[int]*ECI{
	0:  ECIISO8859_1, // Cp437 aliases to Latin-1 fallback; no code-page table carried here
	1:  ECIISO8859_1,
	2:  ECIISO8859_1,
	3:  ECIISO8859_1,
	20: ECISJIS,
	26: ECIUTF8,
	27: ECIUTF8,
	29: ECIGB18030,
}

// Lookup resolves an ECI designator value to its ECI record. Unknown values
// fall back to ISO8859_1, matching the format's default channel.
func Lookup(value int) *ECI {
	if eci, ok := byValue[value]; ok {
		return eci
	}
	return ECIISO8859_1
}
