package prefs

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/GinjaNinja32/ultracolor/format"
)

// Registry holds the records of every player in the current session. Records
// are loaded on Join and written back on Save, Leave and Flush.
type Registry struct {
	store Store

	mu      sync.Mutex
	records map[uuid.UUID]*Record
	// loaded holds the players whose record came through Join
	loaded map[uuid.UUID]bool
}

// NewRegistry returns an empty registry backed by `store`
func NewRegistry(store Store) *Registry {
	return &Registry{
		store:   store,
		records: map[uuid.UUID]*Record{},
		loaded:  map[uuid.UUID]bool{},
	}
}

// Join loads the record of `id` from the store, creating an empty one when
// none exists. A player already joined keeps their current record. A record
// made by Get before the player joined is replaced by the stored one; when
// nothing is stored it is kept.
func (r *Registry) Join(ctx context.Context, id uuid.UUID) (*Record, error) {
	r.mu.Lock()
	if rec, ok := r.records[id]; ok && r.loaded[id] {
		r.mu.Unlock()
		return rec, nil
	}
	r.mu.Unlock()

	stored, found, err := r.store.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", id, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if rec, ok := r.records[id]; ok && r.loaded[id] {
		return rec, nil
	}

	rec, ok := r.records[id]
	switch {
	case found:
		rec = stored
	case !ok:
		rec = &Record{}
	}
	r.records[id] = rec
	r.loaded[id] = true

	log.WithField("player", id).Infof("Loaded preferences (stored: %t)", found)
	return rec, nil
}

// Get returns the record of `id`, creating an empty one when the player has
// not joined
func (r *Registry) Get(id uuid.UUID) *Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		rec = &Record{}
		r.records[id] = rec
	}
	return rec
}

// Save writes the record of `id` to the store
func (r *Registry) Save(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	rec, ok := r.records[id]
	r.mu.Unlock()
	if !ok {
		return nil
	}

	if err := r.store.Save(ctx, id, rec); err != nil {
		return fmt.Errorf("save %s: %w", id, err)
	}
	return nil
}

// Leave saves the record of `id` and drops it from the registry. The record
// stays in the registry when saving fails.
func (r *Registry) Leave(ctx context.Context, id uuid.UUID) error {
	if err := r.Save(ctx, id); err != nil {
		return err
	}

	r.mu.Lock()
	delete(r.records, id)
	delete(r.loaded, id)
	r.mu.Unlock()

	log.WithField("player", id).Info("Unloaded preferences")
	return nil
}

// Flush saves every record in the registry
func (r *Registry) Flush(ctx context.Context) error {
	r.mu.Lock()
	ids := make([]uuid.UUID, 0, len(r.records))
	for id := range r.records {
		ids = append(ids, id)
	}
	r.mu.Unlock()

	var errs []error
	for _, id := range ids {
		if err := r.Save(ctx, id); err != nil {
			log.WithField("player", id).Errorf("Failed to flush preferences: %s", err)
			errs = append(errs, err)
		}
	}

	log.Debugf("Flushed %d records, %d failed", len(ids), len(errs))
	return errors.Join(errs...)
}

// Len returns the number of records in the registry
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Nicknames returns every nickname in use with its markup removed, sorted
func (r *Registry) Nicknames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := map[string]bool{}
	for _, rec := range r.records {
		if rec.HasNickname() {
			seen[format.Strip(rec.Nickname)] = true
		}
	}

	nicks := make([]string, 0, len(seen))
	for n := range seen {
		nicks = append(nicks, n)
	}
	sort.Strings(nicks)
	return nicks
}

// NicknameTaken reports whether a player other than `id` uses `nick`,
// ignoring markup and case
func (r *Registry) NicknameTaken(id uuid.UUID, nick string) bool {
	want := format.Strip(strings.TrimSpace(nick))

	r.mu.Lock()
	defer r.mu.Unlock()

	for other, rec := range r.records {
		if other == id || !rec.HasNickname() {
			continue
		}
		if strings.EqualFold(format.Strip(rec.Nickname), want) {
			return true
		}
	}
	return false
}
