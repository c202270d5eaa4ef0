package gate

import (
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/GinjaNinja32/ultracolor/format"
	"github.com/GinjaNinja32/ultracolor/prefs"
	"github.com/GinjaNinja32/ultracolor/settings"
)

// Permissions answers permission checks for a player
type Permissions interface {
	HasPermission(id uuid.UUID, perm string) bool
}

// Settings answers server-wide enable flags
type Settings interface {
	GetBool(key string) bool
}

// Kind is the kind of value being selected
type Kind int

// Value kinds
const (
	ColorValue Kind = iota
	FormatValue
)

// Rainbow is the color value that selects rainbow mode
const Rainbow = "rainbow"

// otherSuffix is the permission suffix of values with no code of their own
const otherSuffix = "r"

var colorSuffixes = map[format.Color]string{
	format.Black:       "0",
	format.DarkBlue:    "1",
	format.DarkGreen:   "2",
	format.DarkAqua:    "3",
	format.DarkRed:     "4",
	format.DarkPurple:  "5",
	format.Gold:        "6",
	format.Gray:        "7",
	format.DarkGray:    "8",
	format.Blue:        "9",
	format.Green:       "a",
	format.Aqua:        "b",
	format.Red:         "c",
	format.LightPurple: "d",
	format.Yellow:      "e",
	format.White:       "f",
}

var formatSuffixes = map[format.Format]string{
	format.Obfuscated:    "k",
	format.Bold:          "l",
	format.Strikethrough: "m",
	format.Underline:     "n",
	format.Italic:        "o",
}

var namespaces = map[prefs.Context]map[Kind]string{
	prefs.Name: {ColorValue: NameColor, FormatValue: NameFormat},
	prefs.Chat: {ColorValue: ChatColor, FormatValue: ChatFormat},
}

// rule is the enable flag and permission suffix guarding one value
type rule struct {
	setting string
	suffix  string
}

// Gate decides which colors and formats a player may select
type Gate struct {
	perms    Permissions
	settings Settings
}

// New returns a Gate
func New(perms Permissions, settings Settings) *Gate {
	return &Gate{perms: perms, settings: settings}
}

// Selectable reports whether `player` may select `value` in `ctx`. A
// wildcard grant on the namespace, or the value "none", always passes;
// otherwise the value's enable flag must be on and the player must hold the
// value's own permission.
func (g *Gate) Selectable(ctx prefs.Context, kind Kind, value string, player uuid.UUID) bool {
	namespace := namespaces[ctx][kind]

	if strings.EqualFold(strings.TrimSpace(value), "none") || g.perms.HasPermission(player, Wildcard(namespace)) {
		return true
	}

	var (
		r  rule
		ok bool
	)
	if kind == FormatValue {
		r, ok = formatRule(ctx, value)
	} else {
		r, ok = colorRule(ctx, value)
	}
	if !ok {
		log.Debugf("Unknown %s value %q", namespace, value)
		return false
	}
	if !g.settings.GetBool(r.setting) {
		log.Debugf("%s is disabled", r.setting)
		return false
	}

	return g.perms.HasPermission(player, namespace+"."+r.suffix)
}

// ColorSelectable reports whether `player` may select the color (or
// "rainbow") named `value`
func (g *Gate) ColorSelectable(ctx prefs.Context, value string, player uuid.UUID) bool {
	return g.Selectable(ctx, ColorValue, value, player)
}

// FormatSelectable reports whether `player` may select the format named `value`
func (g *Gate) FormatSelectable(ctx prefs.Context, value string, player uuid.UUID) bool {
	return g.Selectable(ctx, FormatValue, value, player)
}

// GradientSelectable reports whether `player` may pick a custom gradient
func (g *Gate) GradientSelectable(ctx prefs.Context, player uuid.UUID) bool {
	return g.settings.GetBool(settings.GradientKey(ctx)) && g.perms.HasPermission(player, GradientPermission(ctx))
}

// SelectableColors lists the legacy colors `player` may select in `ctx`
func (g *Gate) SelectableColors(ctx prefs.Context, player uuid.UUID) []format.Color {
	var out []format.Color
	for _, c := range format.LegacyColors() {
		if g.ColorSelectable(ctx, string(c), player) {
			out = append(out, c)
		}
	}
	return out
}

// SelectableFormats lists the formats `player` may select in `ctx`
func (g *Gate) SelectableFormats(ctx prefs.Context, player uuid.UUID) []format.Format {
	var out []format.Format
	for _, f := range format.Formats() {
		if g.FormatSelectable(ctx, f.Name(), player) {
			out = append(out, f)
		}
	}
	return out
}

func colorRule(ctx prefs.Context, value string) (rule, bool) {
	if strings.EqualFold(strings.TrimSpace(value), Rainbow) {
		return rule{settings.RainbowKey(ctx), otherSuffix}, true
	}

	c, ok := format.ColorByName(value)
	if !ok {
		return rule{}, false
	}
	if suffix, ok := colorSuffixes[c]; ok {
		return rule{settings.ColorKey(ctx, c), suffix}, true
	}
	return rule{settings.HexKey(ctx), otherSuffix}, true
}

func formatRule(ctx prefs.Context, value string) (rule, bool) {
	f, ok := format.FormatByName(value)
	if !ok {
		return rule{}, false
	}
	suffix, ok := formatSuffixes[f]
	if !ok {
		suffix = otherSuffix
	}
	return rule{settings.FormatKey(ctx, f), suffix}, true
}
