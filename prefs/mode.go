package prefs

import (
	"github.com/GinjaNinja32/ultracolor/format"
)

// ModeKind is the active render strategy of a context
type ModeKind int

// Render modes
const (
	ModeNone ModeKind = iota
	ModeSolid
	ModeGradient
	ModeRainbow
)

func (k ModeKind) String() string {
	switch k {
	case ModeSolid:
		return "solid"
	case ModeGradient:
		return "gradient"
	case ModeRainbow:
		return "rainbow"
	}
	return "none"
}

// Mode is the resolved render mode of a context. Format applies to every
// kind; Color is set for ModeSolid and Gradient for ModeGradient.
type Mode struct {
	Kind     ModeKind
	Color    format.Color
	Format   format.Format
	Gradient *Gradient
}

// Mode resolves the active render mode. A gradient wins over everything when
// the text being rendered is a nickname; otherwise rainbow and solid colors
// come first and the gradient is only used when neither is set.
func (s Style) Mode(nickname bool) Mode {
	m := Mode{Format: s.Format}

	switch {
	case nickname && s.Gradient != nil:
		m.Kind = ModeGradient
		m.Gradient = s.Gradient
	case s.Rainbow:
		m.Kind = ModeRainbow
	case s.Color != format.NoColor:
		m.Kind = ModeSolid
		m.Color = s.Color
	case s.Gradient != nil:
		m.Kind = ModeGradient
		m.Gradient = s.Gradient
	}

	return m
}
