package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// reloadDelay coalesces the burst of events an editor produces when saving
const reloadDelay = 100 * time.Millisecond

// Settings holds the server-wide enable flags. Every flag defaults to true.
// It is safe for concurrent use, including while a watch reloads the file.
type Settings struct {
	mu sync.RWMutex
	v  *viper.Viper

	watcher *fsnotify.Watcher
}

// New returns settings with every flag at its default and no backing file
func New() *Settings {
	v := viper.New()
	setDefaults(v)
	return &Settings{v: v}
}

// Load reads the YAML settings file at `path`. A missing file is created
// with the defaults.
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create settings dir: %w", err)
		}
		if err := v.WriteConfigAs(path); err != nil {
			return nil, fmt.Errorf("write default settings: %w", err)
		}
		log.Infof("Wrote default settings to %s", path)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}

	return &Settings{v: v}, nil
}

func setDefaults(v *viper.Viper) {
	for _, key := range Keys() {
		v.SetDefault(key, true)
	}
}

// GetBool returns the value of a flag. Unknown keys are false.
func (s *Settings) GetBool(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.GetBool(key)
}

// Set overrides a flag. The override takes precedence over the file.
func (s *Settings) Set(key string, value bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Set(key, value)
}

// Watch reloads the file whenever it changes and calls `onChange` after each
// successful reload. It has no effect for settings without a file. The
// directory holding the file is watched so that editors replacing the file
// are seen too.
func (s *Settings) Watch(onChange func()) error {
	path := s.v.ConfigFileUsed()
	if path == "" {
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch settings: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return fmt.Errorf("watch settings %s: %w", path, err)
	}

	s.mu.Lock()
	if s.watcher != nil {
		s.watcher.Close()
	}
	s.watcher = w
	s.mu.Unlock()

	go s.watch(w, filepath.Clean(path), onChange)
	return nil
}

func (s *Settings) watch(w *fsnotify.Watcher, path string, onChange func()) {
	var pending <-chan time.Time

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			pending = time.After(reloadDelay)

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Errorf("Settings watcher error: %s", err)

		case <-pending:
			pending = nil
			if err := s.reload(); err != nil {
				log.Errorf("Failed to reload settings: %s", err)
				continue
			}
			log.Infof("Reloaded settings from %s", path)
			if onChange != nil {
				onChange()
			}
		}
	}
}

// reload reads the file again. The previous values are kept when it cannot
// be read.
func (s *Settings) reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.ReadInConfig()
}

// Close stops watching the file
func (s *Settings) Close() error {
	s.mu.Lock()
	w := s.watcher
	s.watcher = nil
	s.mu.Unlock()

	if w == nil {
		return nil
	}
	return w.Close()
}
