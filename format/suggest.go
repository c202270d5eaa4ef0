package format

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

const maxSuggestions = 3

// SuggestColors returns the legacy colors whose names best match `input`, for
// "did you mean" replies to unknown names
func SuggestColors(input string) []Color {
	names := make([]string, len(legacyColors))
	for i, c := range legacyColors {
		names[i] = string(c)
	}

	var out []Color
	for _, name := range suggest(input, names) {
		out = append(out, Color(name))
	}
	return out
}

// SuggestFormats returns the formats whose names best match `input`
func SuggestFormats(input string) []Format {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.Name()
	}

	var out []Format
	for _, name := range suggest(input, names) {
		f, _ := FormatByName(name)
		out = append(out, f)
	}
	return out
}

func suggest(input string, names []string) []string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return nil
	}
	matches := fuzzy.Find(input, names)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	if len(out) > maxSuggestions {
		return out[:maxSuggestions]
	}
	return out
}
