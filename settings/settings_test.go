package settings

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/GinjaNinja32/ultracolor/format"
	"github.com/GinjaNinja32/ultracolor/prefs"
)

func TestKeys(t *testing.T) {
	Convey("Keys are named by context and value", t, func() {
		So(ColorKey(prefs.Name, format.DarkBlue), ShouldEqual, "name_colors.dark_blue")
		So(FormatKey(prefs.Chat, format.Bold), ShouldEqual, "chat_formats.bold")
		So(RainbowKey(prefs.Chat), ShouldEqual, "chat_colors.rainbow")
		So(HexKey(prefs.Name), ShouldEqual, "name_colors.hex")
		So(GradientKey(prefs.Name), ShouldEqual, "gradients.name")
	})

	Convey("Every value has a key in both contexts", t, func() {
		// 16 colors, rainbow, hex, 5 formats and gradients
		So(len(Keys()), ShouldEqual, 2*(16+2+5+1))
	})
}

func TestDefaults(t *testing.T) {
	Convey("Every flag defaults to true", t, func() {
		s := New()
		for _, key := range Keys() {
			So(s.GetBool(key), ShouldBeTrue)
		}
		So(s.GetBool("not.a.flag"), ShouldBeFalse)
	})

	Convey("Flags can be overridden", t, func() {
		s := New()
		s.Set(ColorKey(prefs.Name, format.Red), false)
		So(s.GetBool(ColorKey(prefs.Name, format.Red)), ShouldBeFalse)
		So(s.GetBool(ColorKey(prefs.Chat, format.Red)), ShouldBeTrue)
	})
}

func TestLoad(t *testing.T) {
	Convey("Given no settings file", t, func() {
		path := filepath.Join(t.TempDir(), "conf", "settings.yml")

		s, err := Load(path)
		So(err, ShouldBeNil)

		Convey("The defaults are written out", func() {
			_, err := os.Stat(path)
			So(err, ShouldBeNil)
			So(s.GetBool(FormatKey(prefs.Name, format.Italic)), ShouldBeTrue)
		})
	})

	Convey("Given a settings file", t, func() {
		path := filepath.Join(t.TempDir(), "settings.yml")
		err := os.WriteFile(path, []byte("name_colors:\n  red: false\nchat_formats:\n  obfuscated: false\n"), 0o644)
		So(err, ShouldBeNil)

		s, err := Load(path)
		So(err, ShouldBeNil)

		Convey("Its values win over the defaults", func() {
			So(s.GetBool(ColorKey(prefs.Name, format.Red)), ShouldBeFalse)
			So(s.GetBool(FormatKey(prefs.Chat, format.Obfuscated)), ShouldBeFalse)
			So(s.GetBool(ColorKey(prefs.Name, format.Blue)), ShouldBeTrue)
		})

		Convey("Changes are picked up while watching", func() {
			changed := make(chan struct{}, 1)
			So(s.Watch(func() {
				select {
				case changed <- struct{}{}:
				default:
				}
			}), ShouldBeNil)
			defer s.Close()

			// replace the file in one step so the reload never sees it half-written
			tmp := path + ".tmp"
			So(os.WriteFile(tmp, []byte("name_colors:\n  red: true\n  blue: false\n"), 0o644), ShouldBeNil)
			So(os.Rename(tmp, path), ShouldBeNil)

			reloaded := false
			select {
			case <-changed:
				reloaded = true
			case <-time.After(5 * time.Second):
			}
			So(reloaded, ShouldBeTrue)
			So(s.GetBool(ColorKey(prefs.Name, format.Blue)), ShouldBeFalse)
		})

		Convey("Flags can be read and set while the file reloads", func() {
			changed := make(chan struct{}, 1)
			So(s.Watch(func() {
				select {
				case changed <- struct{}{}:
				default:
				}
			}), ShouldBeNil)
			defer s.Close()

			stop := make(chan struct{})
			var wg sync.WaitGroup
			for i := 0; i < 4; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					for {
						select {
						case <-stop:
							return
						default:
						}
						s.GetBool(ColorKey(prefs.Name, format.Blue))
						s.Set(FormatKey(prefs.Chat, format.Bold), i%2 == 0)
					}
				}(i)
			}

			for i := 0; i < 5; i++ {
				tmp := path + ".tmp"
				So(os.WriteFile(tmp, []byte("name_colors:\n  blue: false\n"), 0o644), ShouldBeNil)
				So(os.Rename(tmp, path), ShouldBeNil)
				time.Sleep(20 * time.Millisecond)
			}

			reloaded := false
			select {
			case <-changed:
				reloaded = true
			case <-time.After(5 * time.Second):
			}
			close(stop)
			wg.Wait()

			So(reloaded, ShouldBeTrue)
			So(s.GetBool(ColorKey(prefs.Name, format.Blue)), ShouldBeFalse)
			So(s.GetBool(ColorKey(prefs.Name, format.Red)), ShouldBeTrue)
		})

		Convey("Closing stops the watch", func() {
			So(s.Watch(nil), ShouldBeNil)
			So(s.Close(), ShouldBeNil)
			So(s.Close(), ShouldBeNil)
		})
	})

	Convey("Watching settings without a file does nothing", t, func() {
		s := New()
		So(s.Watch(nil), ShouldBeNil)
		So(s.Close(), ShouldBeNil)
	})

	Convey("A malformed file is an error", t, func() {
		path := filepath.Join(t.TempDir(), "settings.yml")
		So(os.WriteFile(path, []byte("name_colors: [\n"), 0o644), ShouldBeNil)

		_, err := Load(path)
		So(err, ShouldNotBeNil)
	})
}
