// Package preview renders previews of colors and player styles for menus,
// Discord and the console.
package preview

import (
	"fmt"
	"strings"

	discord "github.com/bwmarrin/discordgo"

	"github.com/GinjaNinja32/ultracolor/display"
	"github.com/GinjaNinja32/ultracolor/format"
	"github.com/GinjaNinja32/ultracolor/prefs"
)

// Lore placeholders
const (
	ColorPreview = "{color_preview}"
	ColorName    = "{color_name}"
)

// Special values accepted by Lore in place of a color
const (
	Rainbow  = "rainbow"
	Gradient = "gradient"
)

const sampleText = "this"

// Lore fills the placeholders of menu lore lines for one color choice.
// `color` is a color name, rendered markup, Rainbow or Gradient; `gradient`
// holds the two hex stops used for Gradient.
func Lore(lines []string, color string, gradient []string) []string {
	placeholders := strings.NewReplacer(
		ColorPreview, sample(color, gradient),
		ColorName, readableName(color),
	)

	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = placeholders.Replace(line)
	}
	return out
}

func sample(color string, gradient []string) string {
	switch {
	case strings.EqualFold(color, Rainbow):
		return format.Rainbow(sampleText, format.None)
	case strings.EqualFold(color, Gradient):
		if len(gradient) < 2 || !format.AreHexesValid(gradient[:2]) {
			return sampleText
		}
		return format.Gradient(sampleText, format.Color(gradient[0]), format.Color(gradient[1]))
	}

	if c, ok := format.ColorByName(color); ok {
		return format.ColorMarkup(c) + sampleText
	}
	return format.ColorMarkup(format.Color(color)) + sampleText
}

func readableName(color string) string {
	switch {
	case strings.EqualFold(color, Rainbow):
		return "Rainbow"
	case strings.EqualFold(color, Gradient):
		return "Gradient"
	}
	if c, ok := format.ColorByName(color); ok {
		return c.Readable()
	}
	return format.Color(color).Readable()
}

// Embed returns a Discord profile card for a player
func Embed(r *display.Renderer, rec *prefs.Record, playerName string) *discord.MessageEmbed {
	name := r.Name(rec, playerName)

	embed := &discord.MessageEmbed{
		Title:       format.Strip(name),
		Description: format.Parse(name).RenderDiscord(),
		Color:       embedColor(rec.Name),
		Fields: []*discord.MessageEmbedField{
			{Name: "Name", Value: describe(rec.Name), Inline: true},
			{Name: "Chat", Value: describe(rec.Chat), Inline: true},
		},
	}
	if rec.HasNickname() {
		embed.Footer = &discord.MessageEmbedFooter{Text: "Player: " + playerName}
	}
	return embed
}

// embedColor picks the sidebar color of the embed, 0 for none
func embedColor(s prefs.Style) int {
	c := s.Color
	switch {
	case s.Rainbow:
		c = format.RainbowColors[0]
	case s.Gradient != nil:
		c = s.Gradient.From
	}

	rgb, ok := c.RGB()
	if !ok {
		return 0
	}
	r, g, b := rgb.RGB255()
	return int(r)<<16 | int(g)<<8 | int(b)
}

// describe summarises a style, e.g. "Gradient #ff0000 - Blue, Bold"
func describe(s prefs.Style) string {
	m := s.Mode(false)

	var desc string
	switch m.Kind {
	case prefs.ModeSolid:
		desc = m.Color.Readable()
	case prefs.ModeRainbow:
		desc = "Rainbow"
	case prefs.ModeGradient:
		desc = fmt.Sprintf("Gradient %s - %s", m.Gradient.From.Readable(), m.Gradient.To.Readable())
	default:
		desc = "Default"
	}

	if m.Format != format.None {
		desc += ", " + m.Format.Readable()
	}
	return desc
}

// Terminal renders markup for the console
func Terminal(markup string) string {
	return format.Parse(markup).RenderANSI()
}

// IRC renders markup as IRC control codes, e.g. for relaying a player's chat
// line to an IRC channel
func IRC(markup string) string {
	return format.Parse(markup).RenderIRC()
}

// FromIRC turns an IRC message into markup
func FromIRC(message string) string {
	return format.ParseIRC(message).Markup()
}
