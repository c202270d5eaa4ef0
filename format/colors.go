package format

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Color identifies a chat color. It holds one of the sixteen legacy color
// names, a "#rrggbb" hex color, or already-rendered markup (a gradient or
// rainbow string) that is passed through untouched.
type Color string

// NoColor is the zero Color
const NoColor Color = ""

// Legacy colors
const (
	Black       Color = "black"
	DarkBlue    Color = "dark_blue"
	DarkGreen   Color = "dark_green"
	DarkAqua    Color = "dark_aqua"
	DarkRed     Color = "dark_red"
	DarkPurple  Color = "dark_purple"
	Gold        Color = "gold"
	Gray        Color = "gray"
	DarkGray    Color = "dark_gray"
	Blue        Color = "blue"
	Green       Color = "green"
	Aqua        Color = "aqua"
	Red         Color = "red"
	LightPurple Color = "light_purple"
	Yellow      Color = "yellow"
	White       Color = "white"

	Grey     = Gray
	DarkGrey = DarkGray
)

type legacyColor struct {
	code byte
	hex  string
}

// legacyColors are in code order 0-f
var legacyColors = []Color{
	Black, DarkBlue, DarkGreen, DarkAqua, DarkRed, DarkPurple, Gold, Gray,
	DarkGray, Blue, Green, Aqua, Red, LightPurple, Yellow, White,
}

var legacyTable = map[Color]legacyColor{
	Black:       {'0', "#000000"},
	DarkBlue:    {'1', "#0000aa"},
	DarkGreen:   {'2', "#00aa00"},
	DarkAqua:    {'3', "#00aaaa"},
	DarkRed:     {'4', "#aa0000"},
	DarkPurple:  {'5', "#aa00aa"},
	Gold:        {'6', "#ffaa00"},
	Gray:        {'7', "#aaaaaa"},
	DarkGray:    {'8', "#555555"},
	Blue:        {'9', "#5555ff"},
	Green:       {'a', "#55ff55"},
	Aqua:        {'b', "#55ffff"},
	Red:         {'c', "#ff5555"},
	LightPurple: {'d', "#ff55ff"},
	Yellow:      {'e', "#ffff55"},
	White:       {'f', "#ffffff"},
}

var colorAliases = map[string]Color{
	"orange":    Gold,
	"grey":      Gray,
	"dark_grey": DarkGray,
	"purple":    DarkPurple,
	"pink":      LightPurple,
}

// LegacyColors returns the sixteen legacy colors in code order
func LegacyColors() []Color {
	return append([]Color(nil), legacyColors...)
}

// ColorByName looks up a legacy color by name (ignoring case, spaces and
// dashes) or accepts a valid "#rrggbb" hex string.
func ColorByName(name string) (Color, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if IsHexValid(key) {
		if _, err := colorful.Hex(key); err == nil {
			return Color(key), true
		}
		return NoColor, false
	}
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	if _, ok := legacyTable[Color(key)]; ok {
		return Color(key), true
	}
	if c, ok := colorAliases[key]; ok {
		return c, true
	}
	return NoColor, false
}

// ColorByCode returns the legacy color for a code character (0-9, a-f)
func ColorByCode(code byte) (Color, bool) {
	if code >= 'A' && code <= 'F' {
		code += 'a' - 'A'
	}
	for _, c := range legacyColors {
		if legacyTable[c].code == code {
			return c, true
		}
	}
	return NoColor, false
}

// IsLegacy reports whether `c` is one of the sixteen legacy colors
func (c Color) IsLegacy() bool {
	_, ok := legacyTable[c]
	return ok
}

// IsHex reports whether `c` is a hex color
func (c Color) IsHex() bool {
	if !IsHexValid(string(c)) {
		return false
	}
	_, err := colorful.Hex(string(c))
	return err == nil
}

// IsMarkup reports whether `c` already carries rendered markup
func (c Color) IsMarkup() bool {
	return strings.ContainsRune(string(c), Marker)
}

// Code returns the legacy code character
func (c Color) Code() (byte, bool) {
	l, ok := legacyTable[c]
	return l.code, ok
}

// RGB returns the color value of a legacy or hex color
func (c Color) RGB() (colorful.Color, bool) {
	hex := string(c)
	if l, ok := legacyTable[c]; ok {
		hex = l.hex
	}
	if !IsHexValid(hex) {
		return colorful.Color{}, false
	}
	rgb, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, false
	}
	return rgb, true
}

// Hex returns the "#rrggbb" form of a legacy or hex color, or ""
func (c Color) Hex() string {
	rgb, ok := c.RGB()
	if !ok {
		return ""
	}
	return rgb.Hex()
}

// Nearest returns the legacy color closest to `c`
func (c Color) Nearest() (Color, bool) {
	if c.IsLegacy() {
		return c, true
	}
	rgb, ok := c.RGB()
	if !ok {
		return NoColor, false
	}
	best := NoColor
	bestDist := 0.0
	for _, l := range legacyColors {
		lrgb, _ := l.RGB()
		d := rgb.DistanceLab(lrgb)
		if best == NoColor || d < bestDist {
			best, bestDist = l, d
		}
	}
	return best, true
}

// Markup returns the escape sequence for the color
func (c Color) Markup() string {
	return ColorMarkup(c)
}

// Name returns the identifier, or "none" for NoColor
func (c Color) Name() string {
	if c == NoColor {
		return "none"
	}
	return string(c)
}

// String implements fmt.Stringer
func (c Color) String() string { return c.Name() }

// Readable returns a display name such as "Light Purple" or "#1a2b3c"
func (c Color) Readable() string {
	if c.IsLegacy() || c == NoColor {
		return readable(c.Name())
	}
	if c.IsMarkup() {
		return Strip(string(c))
	}
	return string(c)
}

var titleCaser = cases.Title(language.English)

func readable(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "_", " "))
}
