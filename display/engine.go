package display

import (
	"errors"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/GinjaNinja32/ultracolor/format"
	"github.com/GinjaNinja32/ultracolor/prefs"
)

// ErrNicknameTaken is returned when another player already uses a nickname
var ErrNicknameTaken = errors.New("nickname is taken")

// nicknameAltCode is the character players type instead of the marker
const nicknameAltCode = '&'

// Engine applies preference changes to the records of a registry. Callers
// must not mutate the same player from several goroutines at once.
type Engine struct {
	registry *prefs.Registry
	renderer *Renderer
}

// NewEngine returns an Engine over `registry`
func NewEngine(registry *prefs.Registry, renderer *Renderer) *Engine {
	if renderer == nil {
		renderer = NewRenderer()
	}
	return &Engine{registry: registry, renderer: renderer}
}

// Name returns the display name of `id`
func (e *Engine) Name(id uuid.UUID, playerName string) string {
	return e.renderer.Name(e.registry.Get(id), playerName)
}

// Chat returns `message` in the chat style of `id`
func (e *Engine) Chat(id uuid.UUID, message string) string {
	return e.renderer.Chat(e.registry.Get(id), message)
}

// ApplyNameColor sets a solid name color, turning off rainbow and clearing
// any gradient
func (e *Engine) ApplyNameColor(id uuid.UUID, c format.Color) {
	rec := e.registry.Get(id)
	applySolid(rec.Style(prefs.Name), c)
	e.logger(id, prefs.Name).Debugf("Name color set to %s", c)
	e.refresh(rec)
}

// ApplyChatColor sets a solid chat color, turning off rainbow and clearing
// any gradient
func (e *Engine) ApplyChatColor(id uuid.UUID, c format.Color) {
	rec := e.registry.Get(id)
	applySolid(rec.Style(prefs.Chat), c)
	e.logger(id, prefs.Chat).Debugf("Chat color set to %s", c)
}

// ApplyNameFormat sets the name format. With a gradient active the format is
// rendered into the gradient.
func (e *Engine) ApplyNameFormat(id uuid.UUID, f format.Format) {
	rec := e.registry.Get(id)
	rec.Name.Format = f
	if rec.Name.Gradient != nil {
		e.logger(id, prefs.Name).Debugf("Folding %s into gradient", f)
	} else {
		e.logger(id, prefs.Name).Debugf("Name format set to %s", f)
	}
	e.refresh(rec)
}

// ApplyChatFormat sets the chat format. Outside a gradient the format is
// stored by name, so only single formats are kept.
func (e *Engine) ApplyChatFormat(id uuid.UUID, f format.Format) {
	rec := e.registry.Get(id)
	if rec.Chat.Gradient != nil {
		rec.Chat.Format = f
		e.logger(id, prefs.Chat).Debugf("Folding %s into gradient", f)
		return
	}

	resolved, _ := format.FormatByName(f.Name())
	rec.Chat.Format = resolved
	e.logger(id, prefs.Chat).Debugf("Chat format set to %s", resolved)
}

// ApplyNameStyle sets a name color and format together. NoColor and None
// leave the stored color and format alone. A gradient left active is cleared
// when no format is stored, and otherwise rendered with that format.
func (e *Engine) ApplyNameStyle(id uuid.UUID, c format.Color, f format.Format) {
	rec := e.registry.Get(id)
	s := rec.Style(prefs.Name)

	if c != format.NoColor {
		applySolid(s, c)
	}
	if f != format.None {
		s.Format = f
	}
	if s.Gradient != nil && s.Format == format.None {
		s.Gradient = nil
	}

	e.logger(id, prefs.Name).Debugf("Name style set to %s/%s", s.Color, s.Format)
	e.refresh(rec)
}

// ApplyNameGradient sets a custom name gradient, clearing the solid color
// and rainbow
func (e *Engine) ApplyNameGradient(id uuid.UUID, from, to format.Color) error {
	g, err := prefs.NewGradient(from, to)
	if err != nil {
		return err
	}
	rec := e.registry.Get(id)
	applyGradient(rec.Style(prefs.Name), g)
	e.logger(id, prefs.Name).Debugf("Name gradient set to %s-%s", from, to)
	e.refresh(rec)
	return nil
}

// ApplyChatGradient sets a custom chat gradient, clearing the solid color
// and rainbow
func (e *Engine) ApplyChatGradient(id uuid.UUID, from, to format.Color) error {
	g, err := prefs.NewGradient(from, to)
	if err != nil {
		return err
	}
	rec := e.registry.Get(id)
	applyGradient(rec.Style(prefs.Chat), g)
	e.logger(id, prefs.Chat).Debugf("Chat gradient set to %s-%s", from, to)
	return nil
}

// EnableNameRainbow turns on rainbow names, clearing any gradient. A format
// other than None is stored as the name format.
func (e *Engine) EnableNameRainbow(id uuid.UUID, f format.Format) {
	rec := e.registry.Get(id)
	applyRainbow(rec.Style(prefs.Name), f)
	e.logger(id, prefs.Name).Debug("Rainbow enabled")
	e.refresh(rec)
}

// EnableChatRainbow turns on rainbow chat, clearing any gradient
func (e *Engine) EnableChatRainbow(id uuid.UUID, f format.Format) {
	rec := e.registry.Get(id)
	applyRainbow(rec.Style(prefs.Chat), f)
	e.logger(id, prefs.Chat).Debug("Rainbow enabled")
}

// DisableNameRainbow turns off rainbow names
func (e *Engine) DisableNameRainbow(id uuid.UUID) {
	rec := e.registry.Get(id)
	rec.Name.Rainbow = false
	e.refresh(rec)
}

// DisableChatRainbow turns off rainbow chat
func (e *Engine) DisableChatRainbow(id uuid.UUID) {
	e.registry.Get(id).Chat.Rainbow = false
}

// SetNickname sets the nickname of `id`. '&' codes are translated to markup;
// "none" clears the nickname. ErrNicknameTaken is returned when another
// player in the registry has the same nickname.
func (e *Engine) SetNickname(id uuid.UUID, nick string) error {
	nick = format.TranslateAlternate(nicknameAltCode, nick)

	rec := e.registry.Get(id)
	candidate := prefs.Record{}
	candidate.SetNickname(nick)
	if candidate.HasNickname() && e.registry.NicknameTaken(id, candidate.Nickname) {
		return ErrNicknameTaken
	}

	rec.SetNickname(nick)
	e.logger(id, prefs.Name).Debugf("Nickname set to %q", rec.Nickname)
	e.refresh(rec)
	return nil
}

// ResetName clears every name preference except the nickname
func (e *Engine) ResetName(id uuid.UUID) {
	rec := e.registry.Get(id)
	rec.Name = prefs.Style{}
	e.refresh(rec)
}

// ResetChat clears every chat preference
func (e *Engine) ResetChat(id uuid.UUID) {
	e.registry.Get(id).Chat = prefs.Style{}
}

// refresh recomputes the cached colored nickname
func (e *Engine) refresh(rec *prefs.Record) {
	rec.ColoredNickname = e.renderer.nickname(rec)
}

func (e *Engine) logger(id uuid.UUID, ctx prefs.Context) *log.Entry {
	return log.WithFields(log.Fields{
		"player":  id,
		"context": ctx,
	})
}

func applySolid(s *prefs.Style, c format.Color) {
	s.Color = c
	s.Rainbow = false
	s.Gradient = nil
}

func applyGradient(s *prefs.Style, g *prefs.Gradient) {
	s.Gradient = g
	s.Color = format.NoColor
	s.Rainbow = false
}

func applyRainbow(s *prefs.Style, f format.Format) {
	s.Rainbow = true
	s.Gradient = nil
	if f != format.None {
		s.Format = f
	}
}
