package prefs

import (
	"errors"
	"strings"

	"github.com/GinjaNinja32/ultracolor/format"
)

// Context selects which half of a record an operation touches
type Context int

// Contexts
const (
	Name Context = iota
	Chat
)

func (c Context) String() string {
	if c == Chat {
		return "chat"
	}
	return "name"
}

// ErrInvalidGradient is returned for a gradient with a missing or unusable stop
var ErrInvalidGradient = errors.New("gradient needs two valid stops")

// Gradient is a two-stop custom gradient
type Gradient struct {
	From format.Color
	To   format.Color
}

// NewGradient returns a gradient between `from` and `to`. Both stops must
// have an RGB value (legacy or hex colors).
func NewGradient(from, to format.Color) (*Gradient, error) {
	if _, ok := from.RGB(); !ok {
		return nil, ErrInvalidGradient
	}
	if _, ok := to.RGB(); !ok {
		return nil, ErrInvalidGradient
	}
	return &Gradient{From: from, To: to}, nil
}

// Style holds the preferences of one context
type Style struct {
	Color    format.Color
	Format   format.Format
	Rainbow  bool
	Gradient *Gradient
}

// Record is the stored preference record of one player
type Record struct {
	// Nickname is empty when the player uses their own name
	Nickname string
	// ColoredNickname caches the rendered nickname; empty when not rendered
	ColoredNickname string

	Name Style
	Chat Style
}

// Style returns the style of the given context
func (r *Record) Style(ctx Context) *Style {
	if ctx == Chat {
		return &r.Chat
	}
	return &r.Name
}

// HasNickname reports whether a nickname is set
func (r *Record) HasNickname() bool {
	return r.Nickname != ""
}

// SetNickname sets the nickname. "none" in any case, or an empty string,
// clears it. The cached colored nickname is always dropped.
func (r *Record) SetNickname(nick string) {
	nick = strings.TrimSpace(nick)
	if strings.EqualFold(nick, "none") {
		nick = ""
	}
	r.Nickname = nick
	r.ColoredNickname = ""
}

// Clone returns a deep copy of the record
func (r *Record) Clone() *Record {
	c := *r
	if r.Name.Gradient != nil {
		g := *r.Name.Gradient
		c.Name.Gradient = &g
	}
	if r.Chat.Gradient != nil {
		g := *r.Chat.Gradient
		c.Chat.Gradient = &g
	}
	return &c
}
