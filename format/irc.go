package format

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	ircColor = "\x03"

	ircReset         = "\x0f"
	ircBold          = "\x02"
	ircUnderline     = "\x1f"
	ircItalic        = "\x1d"
	ircStrikethrough = "\x1e"
)

var ircFormatChars = map[byte]Format{
	'\x02': Bold,
	'\x1f': Underline,
	'\x1d': Italic,
	'\x1e': Strikethrough,
}

// ircColors maps IRC color numbers 00-15 to legacy colors
var ircColors = [16]Color{
	White,       // 00 white
	Black,       // 01 black
	DarkBlue,    // 02 blue
	DarkGreen,   // 03 green
	Red,         // 04 red
	DarkRed,     // 05 brown
	DarkPurple,  // 06 magenta
	Gold,        // 07 orange
	Yellow,      // 08 yellow
	Green,       // 09 light green
	DarkAqua,    // 10 cyan
	Aqua,        // 11 light cyan
	Blue,        // 12 light blue
	LightPurple, // 13 pink
	DarkGray,    // 14 grey
	Gray,        // 15 light grey
}

// ParseIRC parses an IRC message into a FormattedString. Background colors are
// read and discarded.
func ParseIRC(s string) FormattedString {
	spans := []Span{}

	currentSpan := Span{}
	var text []byte

	flush := func() {
		if len(text) > 0 {
			currentSpan.Text = string(text)
			spans = append(spans, currentSpan)
			text = text[:0]
		}
	}

	data := []byte(s)

	for i := 0; i < len(data); i++ {
		c := data[i]

		if _, ok := ircFormatChars[c]; !ok && c != '\x03' && c != '\x0f' {
			text = append(text, c)
			continue
		}

		flush()

		if formatCode, ok := ircFormatChars[c]; ok {
			currentSpan.Format ^= formatCode
		} else if c == '\x0f' {
			currentSpan.Format = None
			currentSpan.Color = NoColor
		} else {
			i += parseIRCColorCode(data[i+1:], &currentSpan)
		}
	}

	flush()

	return FormattedString(spans)
}

var ircColorCode = regexp.MustCompile("^([0-9]{0,2})(,([0-9]{0,2}))?")

func parseIRCColorCode(data []byte, currentSpan *Span) (length int) {
	colorCode := ircColorCode.FindSubmatch(data)

	if len(colorCode[1]) == 0 {
		currentSpan.Color = NoColor
		return len(colorCode[0])
	}

	fg, _ := strconv.Atoi(string(colorCode[1]))
	currentSpan.Color = NoColor
	if fg < len(ircColors) {
		currentSpan.Color = ircColors[fg]
	}

	return len(colorCode[0])
}

// RenderIRC renders a FormattedString into an IRC message. Hex colors are
// sent as the nearest legacy color; obfuscated text has no IRC equivalent.
func (fs FormattedString) RenderIRC() string { // nolint: gocyclo
	output := ""

	var lastSpan Span
	for _, span := range fs {
		span.Format &^= Obfuscated
		span.Color, _ = span.Color.Nearest()

		if span.IsZeroFormat() && !lastSpan.IsZeroFormat() {
			output += ircReset + span.Text
			lastSpan = span
			continue
		}

		formatChanges := span.Format ^ lastSpan.Format
		if (formatChanges & Bold) != 0 {
			output += ircBold
		}
		if (formatChanges & Italic) != 0 {
			output += ircItalic
		}
		if (formatChanges & Underline) != 0 {
			output += ircUnderline
		}
		if (formatChanges & Strikethrough) != 0 {
			output += ircStrikethrough
		}

		if span.IsZeroColor() && !lastSpan.IsZeroColor() {
			output += ircColor

			if span.Text != "" && !isByteSafeAfterIncompleteColor(span.Text[0]) {
				output += ircBold + ircBold
			}
		} else if span.Color != lastSpan.Color {
			output += ircColor + colorToSpecifier(span.Color)

			if span.Text != "" && span.Text[0] == ',' {
				output += ircBold + ircBold
			}
		}

		output += span.Text
		lastSpan = span
	}

	return output
}

func colorToSpecifier(c Color) string {
	for i, ic := range ircColors {
		if ic == c {
			return fmt.Sprintf("%02d", i)
		}
	}
	return ""
}

func isByteSafeAfterIncompleteColor(c byte) bool {
	return !(('0' <= c && c <= '9') || c == ',')
}
