// Package ultracolor wires the settings, preference store, permission gate and
// display engine together for a host server.
package ultracolor

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v11"
	log "github.com/sirupsen/logrus"

	"github.com/GinjaNinja32/ultracolor/display"
	"github.com/GinjaNinja32/ultracolor/gate"
	"github.com/GinjaNinja32/ultracolor/prefs"
	"github.com/GinjaNinja32/ultracolor/settings"
)

// Options configures Open
type Options struct {
	// SettingsFile is the YAML settings file; empty keeps every flag at its default
	SettingsFile string `env:"ULTRACOLOR_SETTINGS_FILE" envDefault:"settings.yml"`
	// DatabaseFile is the SQLite preference database; empty keeps records in memory
	DatabaseFile  string `env:"ULTRACOLOR_DATABASE_FILE"`
	WatchSettings bool   `env:"ULTRACOLOR_WATCH_SETTINGS" envDefault:"true"`
	LogLevel      string `env:"ULTRACOLOR_LOG_LEVEL" envDefault:"info"`
}

// OptionsFromEnv reads Options from the environment
func OptionsFromEnv() (Options, error) {
	var opts Options
	if err := env.Parse(&opts); err != nil {
		return Options{}, fmt.Errorf("parse env: %w", err)
	}
	return opts, nil
}

// UltraColor is a running instance
type UltraColor struct {
	Settings *settings.Settings
	Registry *prefs.Registry
	Renderer *display.Renderer
	Engine   *display.Engine
	Gate     *gate.Gate

	store prefs.Store
}

// Open sets up an instance. A nil `perms` gives an empty gate.PermissionSet.
func Open(opts Options, perms gate.Permissions) (*UltraColor, error) {
	if opts.LogLevel != "" {
		level, err := log.ParseLevel(opts.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		log.SetLevel(level)
	}

	s := settings.New()
	if opts.SettingsFile != "" {
		var err error
		s, err = settings.Load(opts.SettingsFile)
		if err != nil {
			return nil, err
		}
		if opts.WatchSettings {
			err = s.Watch(func() {
				log.Debugf("Settings changed")
			})
			if err != nil {
				return nil, err
			}
		}
	}

	var store prefs.Store = prefs.NewMemoryStore()
	if opts.DatabaseFile != "" {
		sql, err := prefs.OpenSQLStore(opts.DatabaseFile)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("open preference store: %w", err)
		}
		store = sql
	}

	if perms == nil {
		perms = gate.NewPermissionSet()
	}

	registry := prefs.NewRegistry(store)
	renderer := display.NewRenderer()

	log.Infof("UltraColor ready (settings: %q, database: %q)", opts.SettingsFile, opts.DatabaseFile)

	return &UltraColor{
		Settings: s,
		Registry: registry,
		Renderer: renderer,
		Engine:   display.NewEngine(registry, renderer),
		Gate:     gate.New(perms, s),
		store:    store,
	}, nil
}

// Close stops watching the settings file, saves every record and closes the
// store
func (u *UltraColor) Close(ctx context.Context) error {
	if err := u.Settings.Close(); err != nil {
		log.Warnf("Failed to stop watching settings: %s", err)
	}

	err := u.Registry.Flush(ctx)

	if c, ok := u.store.(interface{ Close() error }); ok {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close preference store: %w", cerr)
		}
	}

	return err
}
