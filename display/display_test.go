package display

import (
	"testing"

	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/GinjaNinja32/ultracolor/format"
	"github.com/GinjaNinja32/ultracolor/prefs"
)

func TestRendererName(t *testing.T) {
	r := NewRenderer()
	g := &prefs.Gradient{From: format.Red, To: format.Blue}

	Convey("Without a nickname the player name is the base", t, func() {
		So(r.Name(&prefs.Record{}, "Steve"), ShouldEqual, "Steve")
		So(r.Name(&prefs.Record{Name: prefs.Style{Color: format.Red}}, "Steve"), ShouldEqual, "§cSteve")
		So(r.Name(&prefs.Record{Name: prefs.Style{Color: format.Red, Format: format.Bold}}, "Steve"), ShouldEqual, "§c§lSteve")
		So(r.Name(&prefs.Record{Name: prefs.Style{Format: format.Italic}}, "Steve"), ShouldEqual, "§oSteve")
		So(r.Name(&prefs.Record{Name: prefs.Style{Rainbow: true}}, "ab"), ShouldEqual, "§ea§6b")
		So(r.Name(&prefs.Record{Name: prefs.Style{Gradient: g, Format: format.Bold}}, "ab"), ShouldEqual,
			format.Gradient("§lab", format.Red, format.Blue))
	})

	Convey("Hex colors render as hex markup", t, func() {
		rec := &prefs.Record{Name: prefs.Style{Color: format.Color("#1a2b3c")}}
		So(r.Name(rec, "Steve"), ShouldEqual, "§x§1§a§2§b§3§cSteve")
	})

	Convey("The nickname replaces the player name", t, func() {
		rec := &prefs.Record{Nickname: "Bob", Name: prefs.Style{Color: format.Red}}
		So(r.Name(rec, "Steve"), ShouldEqual, "§cBob")

		Convey("and a gradient wins over rainbow", func() {
			rec.Name = prefs.Style{Rainbow: true, Gradient: g}
			So(r.Name(rec, "Steve"), ShouldEqual, format.Gradient("Bob", format.Red, format.Blue))
		})
	})

	Convey("The cached colored nickname is returned as-is", t, func() {
		rec := &prefs.Record{Nickname: "Bob", ColoredNickname: "§aBob", Name: prefs.Style{Color: format.Red}}
		So(r.Name(rec, "Steve"), ShouldEqual, "§aBob")
	})

	Convey("Rendering is repeatable", t, func() {
		rec := &prefs.Record{Name: prefs.Style{Gradient: g, Format: format.Underline}}
		So(r.Name(rec, "Steve"), ShouldEqual, r.Name(rec, "Steve"))
	})

	Convey("A custom gradient function is used", t, func() {
		custom := &Renderer{Gradient: func(text string, from, to format.Color) string {
			return string(from) + ":" + text + ":" + string(to)
		}}
		rec := &prefs.Record{Name: prefs.Style{Gradient: g}}
		So(custom.Name(rec, "Steve"), ShouldEqual, "red:Steve:blue")
	})
}

func TestRendererChat(t *testing.T) {
	r := NewRenderer()

	Convey("Chat messages use the chat style", t, func() {
		rec := &prefs.Record{
			Name: prefs.Style{Color: format.Red},
			Chat: prefs.Style{Color: format.Gray, Format: format.Italic},
		}
		So(r.Chat(rec, "hi"), ShouldEqual, "§7§ohi")
		So(r.Chat(&prefs.Record{}, "hi"), ShouldEqual, "hi")
		So(r.Chat(&prefs.Record{Chat: prefs.Style{Rainbow: true}}, "hi"), ShouldEqual, "§eh§6i")
	})
}

func TestEngine(t *testing.T) {
	Convey("Given an engine", t, func() {
		reg := prefs.NewRegistry(prefs.NewMemoryStore())
		e := NewEngine(reg, nil)
		id := uuid.New()
		rec := reg.Get(id)

		Convey("A solid color clears gradient and rainbow", func() {
			states := []prefs.Style{
				{},
				{Rainbow: true},
				{Gradient: &prefs.Gradient{From: format.Red, To: format.Blue}},
				{Gradient: &prefs.Gradient{From: format.Red, To: format.Blue}, Format: format.Bold},
				{Rainbow: true, Color: format.Aqua, Format: format.Italic},
			}
			for _, s := range states {
				rec.Name = s
				rec.Chat = s
				e.ApplyNameColor(id, format.Red)
				e.ApplyChatColor(id, format.Gold)

				So(rec.Name.Color, ShouldEqual, format.Red)
				So(rec.Name.Gradient, ShouldBeNil)
				So(rec.Name.Rainbow, ShouldBeFalse)
				So(rec.Name.Format, ShouldEqual, s.Format)
				So(rec.Chat.Color, ShouldEqual, format.Gold)
				So(rec.Chat.Gradient, ShouldBeNil)
				So(rec.Chat.Rainbow, ShouldBeFalse)
			}
		})

		Convey("A red name renders as red markup and the player name", func() {
			e.ApplyNameColor(id, format.Red)
			So(e.Name(id, "Steve"), ShouldEqual, "§cSteve")
			So(rec.ColoredNickname, ShouldEqual, "")
		})

		Convey("A gradient nickname with a format is rendered and cached", func() {
			So(e.SetNickname(id, "Bob"), ShouldBeNil)
			So(e.ApplyNameGradient(id, format.Red, format.Blue), ShouldBeNil)
			e.ApplyNameFormat(id, format.Bold)

			want := format.Gradient("§lBob", format.Red, format.Blue)
			So(e.Name(id, "Steve"), ShouldEqual, want)
			So(rec.ColoredNickname, ShouldEqual, want)
		})

		Convey("A gradient clears the solid color and rainbow", func() {
			e.ApplyNameColor(id, format.Red)
			e.EnableNameRainbow(id, format.None)
			So(e.ApplyNameGradient(id, format.Red, format.Color("#1a2b3c")), ShouldBeNil)
			So(rec.Name.Color, ShouldEqual, format.NoColor)
			So(rec.Name.Rainbow, ShouldBeFalse)
			So(rec.Name.Gradient, ShouldResemble, &prefs.Gradient{From: format.Red, To: format.Color("#1a2b3c")})
		})

		Convey("A half gradient is rejected and changes nothing", func() {
			e.ApplyNameColor(id, format.Red)
			So(e.ApplyNameGradient(id, format.Red, format.NoColor), ShouldEqual, prefs.ErrInvalidGradient)
			So(e.ApplyChatGradient(id, format.NoColor, format.Blue), ShouldEqual, prefs.ErrInvalidGradient)
			So(rec.Name.Color, ShouldEqual, format.Red)
			So(rec.Name.Gradient, ShouldBeNil)
			So(rec.Chat.Gradient, ShouldBeNil)
		})

		Convey("Rainbow clears the gradient and stores the format", func() {
			So(e.ApplyNameGradient(id, format.Red, format.Blue), ShouldBeNil)
			e.EnableNameRainbow(id, format.Bold)
			So(rec.Name.Gradient, ShouldBeNil)
			So(rec.Name.Rainbow, ShouldBeTrue)
			So(e.Name(id, "ab"), ShouldEqual, "§e§la§6§lb")

			Convey("and disabling it falls back to the solid color", func() {
				e.ApplyNameColor(id, format.Red)
				e.EnableNameRainbow(id, format.None)
				e.DisableNameRainbow(id)
				So(e.Name(id, "ab"), ShouldEqual, "§c§lab")
			})
		})

		Convey("A rainbow nickname keeps its own format codes", func() {
			So(e.SetNickname(id, "&oBob"), ShouldBeNil)
			e.EnableNameRainbow(id, format.None)

			So(rec.ColoredNickname, ShouldEqual, "§e§oB§6§oo§c§ob")
			So(e.Name(id, "Steve"), ShouldEqual, "§e§oB§6§oo§c§ob")
			So(format.Strip(rec.ColoredNickname), ShouldEqual, "Bob")
		})

		Convey("Chat rainbow and gradient follow the same rules", func() {
			So(e.ApplyChatGradient(id, format.Red, format.Blue), ShouldBeNil)
			So(rec.Chat.Gradient, ShouldNotBeNil)
			e.EnableChatRainbow(id, format.Italic)
			So(rec.Chat.Gradient, ShouldBeNil)
			So(rec.Chat.Format, ShouldEqual, format.Italic)
			So(e.Chat(id, "hi"), ShouldEqual, "§e§oh§6§oi")

			e.DisableChatRainbow(id)
			So(e.Chat(id, "hi"), ShouldEqual, "§ohi")
		})

		Convey("Chat formats are stored by name", func() {
			e.ApplyChatFormat(id, format.Underline)
			So(rec.Chat.Format, ShouldEqual, format.Underline)

			e.ApplyChatFormat(id, format.Bold|format.Italic)
			So(rec.Chat.Format, ShouldEqual, format.None)

			Convey("unless a gradient is active", func() {
				So(e.ApplyChatGradient(id, format.Red, format.Blue), ShouldBeNil)
				e.ApplyChatFormat(id, format.Bold)
				So(rec.Chat.Format, ShouldEqual, format.Bold)
				So(rec.Chat.Gradient, ShouldNotBeNil)
			})
		})

		Convey("Name style", func() {
			Convey("stores color and format", func() {
				e.ApplyNameStyle(id, format.Red, format.Bold)
				So(e.Name(id, "Steve"), ShouldEqual, "§c§lSteve")

				e.ApplyNameStyle(id, format.NoColor, format.Italic)
				So(e.Name(id, "Steve"), ShouldEqual, "§c§oSteve")
			})

			Convey("clears a gradient when no format is stored", func() {
				So(e.ApplyNameGradient(id, format.Red, format.Blue), ShouldBeNil)
				e.ApplyNameStyle(id, format.NoColor, format.None)
				So(rec.Name.Gradient, ShouldBeNil)
				So(e.Name(id, "Steve"), ShouldEqual, "Steve")
			})

			Convey("folds a format into a gradient", func() {
				So(e.SetNickname(id, "Bob"), ShouldBeNil)
				So(e.ApplyNameGradient(id, format.Red, format.Blue), ShouldBeNil)
				e.ApplyNameStyle(id, format.NoColor, format.Bold)
				So(rec.Name.Gradient, ShouldNotBeNil)
				So(rec.ColoredNickname, ShouldEqual, format.Gradient("§lBob", format.Red, format.Blue))
			})

			Convey("with a color replaces the gradient", func() {
				So(e.ApplyNameGradient(id, format.Red, format.Blue), ShouldBeNil)
				e.ApplyNameStyle(id, format.Green, format.Bold)
				So(rec.Name.Gradient, ShouldBeNil)
				So(e.Name(id, "Steve"), ShouldEqual, "§a§lSteve")
			})
		})

		Convey("Nicknames", func() {
			Convey("translate & codes and cache the render", func() {
				So(e.SetNickname(id, "&oBob"), ShouldBeNil)
				So(rec.Nickname, ShouldEqual, "§oBob")

				e.ApplyNameColor(id, format.Aqua)
				So(rec.ColoredNickname, ShouldEqual, "§b§oBob")
				So(e.Name(id, "Steve"), ShouldEqual, "§b§oBob")
			})

			Convey("are cleared by \"none\"", func() {
				So(e.SetNickname(id, "Bob"), ShouldBeNil)
				e.ApplyNameColor(id, format.Aqua)
				So(e.SetNickname(id, "None"), ShouldBeNil)
				So(rec.HasNickname(), ShouldBeFalse)
				So(rec.ColoredNickname, ShouldEqual, "")
				So(e.Name(id, "Steve"), ShouldEqual, "§bSteve")
			})

			Convey("cannot be shared", func() {
				So(e.SetNickname(id, "Bob"), ShouldBeNil)
				So(e.SetNickname(uuid.New(), "&cbob"), ShouldEqual, ErrNicknameTaken)
				So(e.SetNickname(id, "BOB"), ShouldBeNil)
			})
		})

		Convey("Reset clears one context", func() {
			e.ApplyNameColor(id, format.Red)
			e.ApplyChatColor(id, format.Blue)
			e.ResetName(id)
			So(rec.Name, ShouldResemble, prefs.Style{})
			So(rec.Chat.Color, ShouldEqual, format.Blue)

			e.ResetChat(id)
			So(rec.Chat, ShouldResemble, prefs.Style{})
		})
	})
}
