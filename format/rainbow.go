package format

import (
	"strings"
	"unicode"
)

// RainbowColors is the fixed rainbow cycle
var RainbowColors = [...]Color{Yellow, Gold, Red, Green, Blue, LightPurple}

// Rainbow colors each character of `text` with the next color of the cycle.
// Whitespace is emitted with the current color but does not advance the
// cycle. Markup in `text` takes no color: color codes are dropped, and format
// codes are kept with `f` after every color code until a reset.
func Rainbow(text string, f Format) string {
	var b strings.Builder
	decoration := None
	count := 0

	rs := []rune(text)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if r == Marker && i+1 < len(rs) {
			code := toLower(rs[i+1])
			switch {
			case isFormatCode(code):
				decoration |= formatByCode(byte(code))
			case code == resetCode:
				decoration = None
			}
			i++
			continue
		}

		b.WriteString(RainbowColors[count%len(RainbowColors)].Markup())
		b.WriteString((f | decoration).Markup())
		b.WriteRune(r)
		if !unicode.IsSpace(r) {
			count++
		}
	}

	return b.String()
}
