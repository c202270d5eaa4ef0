package format

import (
	"strings"
)

var discordEscaper = strings.NewReplacer(
	"\\", "\\\\",
	"*", "\\*",
	"_", "\\_",
	"~", "\\~",
	"`", "\\`",
	"|", "\\|",
)

// RenderDiscord renders a FormattedString into Discord markdown. Colors have
// no markdown equivalent and are dropped; obfuscated text becomes a spoiler.
func (fs FormattedString) RenderDiscord() string {
	output := ""
	for _, span := range fs {
		if span.Text == "" {
			continue
		}

		t := discordEscaper.Replace(span.Text)

		if (span.Format & Italic) != 0 {
			t = "*" + t + "*"
		}
		if (span.Format & Bold) != 0 {
			t = "**" + t + "**"
		}
		if (span.Format & Underline) != 0 {
			t = "__" + t + "__"
		}
		if (span.Format & Strikethrough) != 0 {
			t = "~~" + t + "~~"
		}
		if (span.Format & Obfuscated) != 0 {
			t = "||" + t + "||"
		}
		if span.Format != None {
			t += "\ufeff" // add a U+FEFF so adjacent spans do not run together; "*foo*\ufeff**bar**" instead of "*foo***bar**"
		}
		output += t
	}

	return output
}
