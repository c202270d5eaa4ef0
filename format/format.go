package format

import (
	"strings"
)

// Marker is the escape character that starts every markup code
const Marker = '§'

const marker = string(Marker)

// Format is a bitfield of text decorations
type Format int

// None represents no format
const None Format = 0

// Format codes
const (
	Obfuscated Format = 1 << iota
	Bold
	Strikethrough
	Underline
	Italic
)

// formats lists every single-bit format in code order (k, l, m, n, o)
var formats = []Format{Obfuscated, Bold, Strikethrough, Underline, Italic}

var formatCodes = map[Format]byte{
	Obfuscated:    'k',
	Bold:          'l',
	Strikethrough: 'm',
	Underline:     'n',
	Italic:        'o',
}

var formatNames = map[Format]string{
	Obfuscated:    "obfuscated",
	Bold:          "bold",
	Strikethrough: "strikethrough",
	Underline:     "underline",
	Italic:        "italic",
}

var formatAliases = map[string]Format{
	"magic":      Obfuscated,
	"obfuscate":  Obfuscated,
	"underlined": Underline,
}

// Formats returns every single format in code order
func Formats() []Format {
	return append([]Format(nil), formats...)
}

// Code returns the markup code of a single format
func (f Format) Code() (byte, bool) {
	c, ok := formatCodes[f]
	return c, ok
}

// Name returns the lower-case name of a single format, or "none"
func (f Format) Name() string {
	if f == None {
		return "none"
	}
	if n, ok := formatNames[f]; ok {
		return n
	}
	var names []string
	for _, s := range formats {
		if f&s != 0 {
			names = append(names, formatNames[s])
		}
	}
	return strings.Join(names, "+")
}

// String implements fmt.Stringer
func (f Format) String() string { return f.Name() }

// Readable returns the display name of the format, e.g. "Strikethrough"
func (f Format) Readable() string {
	return readable(f.Name())
}

// Markup returns the escape sequence for every bit set in `f`
func (f Format) Markup() string {
	if f == None {
		return ""
	}
	var b strings.Builder
	for _, s := range formats {
		if f&s != 0 {
			b.WriteRune(Marker)
			b.WriteByte(formatCodes[s])
		}
	}
	return b.String()
}

// FormatByName looks up a single format by name, ignoring case
func FormatByName(name string) (Format, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range formatNames {
		if n == name {
			return f, true
		}
	}
	if f, ok := formatAliases[name]; ok {
		return f, true
	}
	return None, false
}

// Span represents a piece of text with a single color and format
type Span struct {
	Text   string
	Format Format
	Color  Color
}

// IsZeroFormat returns whether `s` has no formatting
func (s Span) IsZeroFormat() bool {
	return s.Format == None && s.Color == NoColor
}

// IsZeroColor returns whether `s` has no color
func (s Span) IsZeroColor() bool {
	return s.Color == NoColor
}

// FormattedString represents a string made up of `Span`s
type FormattedString []Span

// String returns the plain text of every span
func (fs FormattedString) String() string {
	var b strings.Builder
	for _, s := range fs {
		b.WriteString(s.Text)
	}
	return b.String()
}
