package format

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderANSI renders a FormattedString for a terminal. The output depends on
// the color profile lipgloss detects; without a terminal it is plain text.
func (fs FormattedString) RenderANSI() string {
	var b strings.Builder
	for _, span := range fs {
		style := lipgloss.NewStyle()
		if hex := span.Color.Hex(); hex != "" {
			style = style.Foreground(lipgloss.Color(hex))
		}
		style = style.
			Bold(span.Format&Bold != 0).
			Italic(span.Format&Italic != 0).
			Underline(span.Format&Underline != 0).
			Strikethrough(span.Format&Strikethrough != 0).
			Blink(span.Format&Obfuscated != 0)
		b.WriteString(style.Render(span.Text))
	}
	return b.String()
}
