package settings

import (
	"github.com/GinjaNinja32/ultracolor/format"
	"github.com/GinjaNinja32/ultracolor/prefs"
)

// ColorKey returns the key that enables a legacy color in a context, e.g.
// "name_colors.dark_blue"
func ColorKey(ctx prefs.Context, c format.Color) string {
	return ctx.String() + "_colors." + string(c)
}

// RainbowKey returns the key that enables rainbow colors in a context
func RainbowKey(ctx prefs.Context) string {
	return ctx.String() + "_colors.rainbow"
}

// HexKey returns the key that enables custom hex colors in a context
func HexKey(ctx prefs.Context) string {
	return ctx.String() + "_colors.hex"
}

// FormatKey returns the key that enables a format in a context, e.g.
// "chat_formats.bold"
func FormatKey(ctx prefs.Context, f format.Format) string {
	return ctx.String() + "_formats." + f.Name()
}

// GradientKey returns the key that enables custom gradients in a context
func GradientKey(ctx prefs.Context) string {
	return "gradients." + ctx.String()
}

// Keys returns every enable flag
func Keys() []string {
	var keys []string
	for _, ctx := range []prefs.Context{prefs.Name, prefs.Chat} {
		for _, c := range format.LegacyColors() {
			keys = append(keys, ColorKey(ctx, c))
		}
		keys = append(keys, RainbowKey(ctx), HexKey(ctx))
		for _, f := range format.Formats() {
			keys = append(keys, FormatKey(ctx, f))
		}
		keys = append(keys, GradientKey(ctx))
	}
	return keys
}
