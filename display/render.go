package display

import (
	"github.com/GinjaNinja32/ultracolor/format"
	"github.com/GinjaNinja32/ultracolor/prefs"
)

// GradientFunc renders `text` as a gradient between two stops
type GradientFunc func(text string, from, to format.Color) string

// Renderer turns preference records into markup
type Renderer struct {
	Gradient GradientFunc
}

// NewRenderer returns a Renderer using format.Gradient
func NewRenderer() *Renderer {
	return &Renderer{Gradient: format.Gradient}
}

// Name returns the display name of a player. The cached colored nickname is
// used when present; otherwise the nickname (or `playerName` when there is
// none) is rendered with the player's name style.
func (r *Renderer) Name(rec *prefs.Record, playerName string) string {
	if rec.ColoredNickname != "" {
		return rec.ColoredNickname
	}
	if rec.HasNickname() {
		return r.render(rec.Name.Mode(true), rec.Nickname)
	}
	return r.render(rec.Name.Mode(false), playerName)
}

// Chat returns `message` rendered with the player's chat style
func (r *Renderer) Chat(rec *prefs.Record, message string) string {
	return r.render(rec.Chat.Mode(false), message)
}

// nickname renders the nickname of `rec` ignoring the cache, or "" when the
// record has no nickname
func (r *Renderer) nickname(rec *prefs.Record) string {
	if !rec.HasNickname() {
		return ""
	}
	return r.render(rec.Name.Mode(true), rec.Nickname)
}

func (r *Renderer) render(m prefs.Mode, base string) string {
	switch m.Kind {
	case prefs.ModeGradient:
		return r.Gradient(format.FormatMarkup(m.Format)+base, m.Gradient.From, m.Gradient.To)
	case prefs.ModeRainbow:
		return format.Rainbow(base, m.Format)
	case prefs.ModeSolid:
		return format.ColorMarkup(m.Color) + format.FormatMarkup(m.Format) + base
	default:
		return format.FormatMarkup(m.Format) + base
	}
}
