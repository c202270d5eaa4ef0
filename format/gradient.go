package format

import (
	"strings"
)

// Gradient colors each visible character of `text` by interpolating between
// `from` and `to`. Format codes in `text` are not colored themselves; the last
// one seen is repeated after every color code so it survives the color change.
// Text is returned unchanged when either stop has no RGB value.
func Gradient(text string, from, to Color) string {
	start, ok := from.RGB()
	if !ok {
		return text
	}
	end, ok := to.RGB()
	if !ok {
		return text
	}

	rs := []rune(text)
	visible := 0
	for i := 0; i < len(rs); i++ {
		if rs[i] == Marker && i+1 < len(rs) {
			i++
			continue
		}
		visible++
	}

	var b strings.Builder
	decoration := None
	n := 0
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

		t := 0.0
		if visible > 1 {
			t = float64(n) / float64(visible-1)
		}
		step := start.BlendRgb(end, t).Clamped()
		b.WriteString(hexMarkup(step.Hex()))
		b.WriteString(decoration.Markup())
		b.WriteRune(r)
		n++
	}

	return b.String()
}
