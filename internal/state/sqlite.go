package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danieljhkim/previewsync/internal/clock"
	"github.com/danieljhkim/previewsync/internal/model"
	"github.com/danieljhkim/previewsync/internal/persist"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS projects (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	path       TEXT NOT NULL DEFAULT '',
	draft      INTEGER NOT NULL DEFAULT 0,
	document   BLOB NOT NULL,
	updated_at TEXT NOT NULL
);`

var sqlitePragmas = []string{
	"PRAGMA foreign_keys = ON",
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 10000",
	"PRAGMA synchronous = NORMAL",
}

// SQLiteRegistry stores projects in a SQLite database.
type SQLiteRegistry struct {
	db         *sql.DB
	serializer persist.Serializer
	clock      clock.Clock
	live       liveSet
}

// OpenSQLiteRegistry opens (and creates) the database at path. ":memory:"
// opens a private in-memory database.
func OpenSQLiteRegistry(path string, clk clock.Clock) (*SQLiteRegistry, error) {
	if clk == nil {
		clk = clock.Real{}
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create registry directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry: %w", err)
	}
	if path == ":memory:" {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}

	for _, p := range sqlitePragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to apply %s: %w", p, err)
		}
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create registry schema: %w", err)
	}

	return &SQLiteRegistry{db: db, serializer: &persist.JSONSerializer{}, clock: clk}, nil
}

func (r *SQLiteRegistry) Project(ctx context.Context, id string) (*model.Project, error) {
	return r.live.load(id, func() (*model.Project, error) {
		var doc []byte
		err := r.db.QueryRowContext(ctx, `SELECT document FROM projects WHERE id = ?`, id).Scan(&doc)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query project %s: %w", id, err)
		}

		p, err := r.serializer.Deserialize(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to load project %s: %w", id, err)
		}
		return p, nil
	})
}

func (r *SQLiteRegistry) AddProject(ctx context.Context, p *model.Project) error {
	doc, err := r.serializer.Serialize(p)
	if err != nil {
		return fmt.Errorf("failed to serialize project %s: %w", p.ID(), err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO projects (id, name, path, draft, document, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			path = excluded.path,
			draft = excluded.draft,
			document = excluded.document,
			updated_at = excluded.updated_at`,
		p.ID(), p.Name(), p.Path(), p.Draft(), doc, r.clock.Now().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to upsert project %s: %w", p.ID(), err)
	}

	r.live.put(p)
	return nil
}

func (r *SQLiteRegistry) Projects(ctx context.Context) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, path, draft, updated_at FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []Entry
	for rows.Next() {
		var (
			e       Entry
			updated string
		)
		if err := rows.Scan(&e.ID, &e.Name, &e.Path, &e.Draft, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		if e.UpdatedAt, err = time.Parse(time.RFC3339Nano, updated); err != nil {
			return nil, fmt.Errorf("invalid updated_at for project %s: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return entries, nil
}

func (r *SQLiteRegistry) Close() error {
	return r.db.Close()
}
