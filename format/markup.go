package format

import (
	"strings"
)

const resetCode = 'r'

// FormatMarkup returns the escape sequence of a format, or "" when `f` is None
func FormatMarkup(f Format) string {
	return f.Markup()
}

// ColorMarkup returns the escape sequence of a color. Colors that already hold
// markup (rendered gradients or rainbows) are returned unchanged so they
// compose the same way solid colors do.
func ColorMarkup(c Color) string {
	if c.IsMarkup() {
		return string(c)
	}
	if code, ok := c.Code(); ok {
		return marker + string(code)
	}
	if c.IsHex() {
		return hexMarkup(string(c))
	}
	return ""
}

// hexMarkup renders "#rrggbb" as §x§r§r§g§g§b§b
func hexMarkup(hex string) string {
	var b strings.Builder
	b.Grow(14 * 2)
	b.WriteRune(Marker)
	b.WriteByte('x')
	for _, r := range strings.ToLower(hex[1:]) {
		b.WriteRune(Marker)
		b.WriteRune(r)
	}
	return b.String()
}

// ResetMarkup returns the reset escape sequence
func ResetMarkup() string {
	return marker + string(resetCode)
}

// TranslateAlternate replaces `alt` followed by a valid code with the markup marker,
// e.g. "&cBob" becomes "§cBob".
func TranslateAlternate(alt rune, s string) string {
	rs := []rune(s)
	for i := 0; i < len(rs)-1; i++ {
		if rs[i] == alt && isCode(rs[i+1]) {
			rs[i] = Marker
			rs[i+1] = toLower(rs[i+1])
		}
	}
	return string(rs)
}

// Strip removes every markup code from `s`
func Strip(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	skip := false
	for _, r := range s {
		if skip {
			skip = false
			continue
		}
		if r == Marker {
			skip = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Parse parses markup into a FormattedString. A color code resets the format,
// as it does on the game client.
func Parse(s string) FormattedString {
	spans := []Span{}
	current := Span{}
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			current.Text = text.String()
			spans = append(spans, current)
			text.Reset()
		}
	}

	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if r != Marker || i+1 >= len(rs) {
			text.WriteRune(r)
			continue
		}

		code := toLower(rs[i+1])
		switch {
		case code == 'x':
			hex, n := parseHexMarkup(rs[i+2:])
			if n == 0 {
				text.WriteRune(r)
				continue
			}
			flush()
			current.Color = Color(hex)
			current.Format = None
			i += 1 + n
		case code == resetCode:
			flush()
			current.Color = NoColor
			current.Format = None
			i++
		case isFormatCode(code):
			flush()
			current.Format |= formatByCode(byte(code))
			i++
		case isColorCode(code):
			flush()
			current.Color, _ = ColorByCode(byte(code))
			current.Format = None
			i++
		default:
			text.WriteRune(r)
		}
	}
	flush()

	return FormattedString(spans)
}

// Markup renders the FormattedString back into markup
func (fs FormattedString) Markup() string {
	var b strings.Builder
	var last Span
	for i, span := range fs {
		switch {
		case i > 0 && span.Color == last.Color && span.Format&last.Format == last.Format:
			b.WriteString((span.Format &^ last.Format).Markup())
		case span.IsZeroFormat():
			if i > 0 {
				b.WriteString(ResetMarkup())
			}
		default:
			if span.Color == NoColor && i > 0 {
				b.WriteString(ResetMarkup())
			}
			b.WriteString(ColorMarkup(span.Color))
			b.WriteString(span.Format.Markup())
		}
		b.WriteString(span.Text)
		last = span
	}
	return b.String()
}

// parseHexMarkup reads the six §h pairs following §x
func parseHexMarkup(rs []rune) (string, int) {
	if len(rs) < 12 {
		return "", 0
	}
	hex := []rune{'#'}
	for j := 0; j < 12; j += 2 {
		if rs[j] != Marker || !isHexDigit(rs[j+1]) {
			return "", 0
		}
		hex = append(hex, toLower(rs[j+1]))
	}
	return string(hex), 12
}

func formatByCode(code byte) Format {
	for f, c := range formatCodes {
		if c == code {
			return f
		}
	}
	return None
}

func isCode(r rune) bool {
	r = toLower(r)
	return isColorCode(r) || isFormatCode(r) || r == resetCode || r == 'x'
}

func isColorCode(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f')
}

func isFormatCode(r rune) bool {
	return 'k' <= r && r <= 'o'
}

func isHexDigit(r rune) bool {
	r = toLower(r)
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f')
}

func toLower(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
