package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/GinjaNinja32/ultracolor/format"
)

// SQLStore stores records in a SQLite database
type SQLStore struct {
	db *sql.DB
}

// OpenSQLStore opens (or creates) the database at `path`. ":memory:" gives a
// private in-memory database.
func OpenSQLStore(path string) (*SQLStore, error) {
	dsn := path
	if path != ":memory:" {
		dsn += "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// one connection, so ":memory:" is a single database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	log.Debugf("Opened preference database %s", path)
	return &SQLStore{db: db}, nil
}

// Close closes the database
func (s *SQLStore) Close() error {
	return s.db.Close()
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS preferences (
			player_id          TEXT    PRIMARY KEY,
			nickname           TEXT    NOT NULL DEFAULT '',
			colored_nickname   TEXT    NOT NULL DEFAULT '',
			name_color         TEXT    NOT NULL DEFAULT '',
			name_format        INTEGER NOT NULL DEFAULT 0,
			name_rainbow       INTEGER NOT NULL DEFAULT 0,
			name_gradient_from TEXT    NOT NULL DEFAULT '',
			name_gradient_to   TEXT    NOT NULL DEFAULT '',
			chat_color         TEXT    NOT NULL DEFAULT '',
			chat_format        INTEGER NOT NULL DEFAULT 0,
			chat_rainbow       INTEGER NOT NULL DEFAULT 0,
			chat_gradient_from TEXT    NOT NULL DEFAULT '',
			chat_gradient_to   TEXT    NOT NULL DEFAULT '',
			updated_at         INTEGER NOT NULL DEFAULT 0
		);
	`)
	return err
}

// Load implements Store
func (s *SQLStore) Load(ctx context.Context, id uuid.UUID) (*Record, bool, error) {
	var (
		rec                    Record
		nameColor, chatColor   string
		nameFormat, chatFormat int
		nameFrom, nameTo       string
		chatFrom, chatTo       string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT nickname, colored_nickname,
			name_color, name_format, name_rainbow, name_gradient_from, name_gradient_to,
			chat_color, chat_format, chat_rainbow, chat_gradient_from, chat_gradient_to
		FROM preferences WHERE player_id = ?`,
		id.String(),
	).Scan(
		&rec.Nickname, &rec.ColoredNickname,
		&nameColor, &nameFormat, &rec.Name.Rainbow, &nameFrom, &nameTo,
		&chatColor, &chatFormat, &rec.Chat.Rainbow, &chatFrom, &chatTo,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query preferences: %w", err)
	}

	rec.Name.Color = format.Color(nameColor)
	rec.Name.Format = format.Format(nameFormat)
	rec.Name.Gradient = loadGradient(id, Name, nameFrom, nameTo)
	rec.Chat.Color = format.Color(chatColor)
	rec.Chat.Format = format.Format(chatFormat)
	rec.Chat.Gradient = loadGradient(id, Chat, chatFrom, chatTo)

	return &rec, true, nil
}

// loadGradient drops half-set or unusable gradients
func loadGradient(id uuid.UUID, ctx Context, from, to string) *Gradient {
	if from == "" && to == "" {
		return nil
	}
	g, err := NewGradient(format.Color(from), format.Color(to))
	if err != nil {
		log.WithFields(log.Fields{
			"player":  id,
			"context": ctx,
		}).Warnf("Dropping stored gradient %q-%q: %s", from, to, err)
		return nil
	}
	return g
}

// Save implements Store
func (s *SQLStore) Save(ctx context.Context, id uuid.UUID, rec *Record) error {
	nameFrom, nameTo := gradientStops(rec.Name.Gradient)
	chatFrom, chatTo := gradientStops(rec.Chat.Gradient)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (
			player_id, nickname, colored_nickname,
			name_color, name_format, name_rainbow, name_gradient_from, name_gradient_to,
			chat_color, chat_format, chat_rainbow, chat_gradient_from, chat_gradient_to,
			updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(player_id) DO UPDATE SET
			nickname = excluded.nickname,
			colored_nickname = excluded.colored_nickname,
			name_color = excluded.name_color,
			name_format = excluded.name_format,
			name_rainbow = excluded.name_rainbow,
			name_gradient_from = excluded.name_gradient_from,
			name_gradient_to = excluded.name_gradient_to,
			chat_color = excluded.chat_color,
			chat_format = excluded.chat_format,
			chat_rainbow = excluded.chat_rainbow,
			chat_gradient_from = excluded.chat_gradient_from,
			chat_gradient_to = excluded.chat_gradient_to,
			updated_at = excluded.updated_at`,
		id.String(), rec.Nickname, rec.ColoredNickname,
		string(rec.Name.Color), int(rec.Name.Format), rec.Name.Rainbow, nameFrom, nameTo,
		string(rec.Chat.Color), int(rec.Chat.Format), rec.Chat.Rainbow, chatFrom, chatTo,
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("upsert preferences: %w", err)
	}
	return nil
}

func gradientStops(g *Gradient) (string, string) {
	if g == nil {
		return "", ""
	}
	return string(g.From), string(g.To)
}
