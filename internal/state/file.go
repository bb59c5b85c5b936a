package state

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/previewsync/internal/clock"
	"github.com/danieljhkim/previewsync/internal/fsops"
	"github.com/danieljhkim/previewsync/internal/model"
	"github.com/danieljhkim/previewsync/internal/persist"
)

// record is the on-disk form of one project in the file registry.
type record struct {
	Entry
	Document json.RawMessage `json:"document"`
}

// FileRegistry stores each project as <dir>/<id>.json.
type FileRegistry struct {
	fs         fsops.FS
	dir        string
	serializer *persist.JSONSerializer
	clock      clock.Clock
	live       liveSet
}

// NewFileRegistry creates a FileRegistry rooted at dir.
func NewFileRegistry(fs fsops.FS, dir string, clk clock.Clock) *FileRegistry {
	if clk == nil {
		clk = clock.Real{}
	}
	return &FileRegistry{
		fs:         fs,
		dir:        dir,
		serializer: &persist.JSONSerializer{},
		clock:      clk,
	}
}

func (r *FileRegistry) path(id string) string {
	return filepath.Join(r.dir, id+".json")
}

// Project returns the live instance for id, loading it from disk on first
// use.
func (r *FileRegistry) Project(ctx context.Context, id string) (*model.Project, error) {
	if err := r.fs.ValidateIdentifier(id); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return r.live.load(id, func() (*model.Project, error) {
		rec, err := r.load(r.path(id))
		if err != nil {
			return nil, err
		}
		p, err := r.serializer.Deserialize(rec.Document)
		if err != nil {
			return nil, fmt.Errorf("failed to load project %s: %w", id, err)
		}
		return p, nil
	})
}

func (r *FileRegistry) load(path string) (*record, error) {
	data, err := r.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, strings.TrimSuffix(filepath.Base(path), ".json"))
		}
		return nil, fmt.Errorf("failed to read project record: %w", err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project record %s: %w", path, err)
	}
	return &rec, nil
}

// AddProject writes p atomically and makes it the live instance for its id.
func (r *FileRegistry) AddProject(ctx context.Context, p *model.Project) error {
	if err := r.fs.ValidateIdentifier(p.ID()); err != nil {
		return fmt.Errorf("invalid project ID: %w", err)
	}

	doc, err := r.serializer.Serialize(p)
	if err != nil {
		return fmt.Errorf("failed to serialize project %s: %w", p.ID(), err)
	}

	rec := record{Entry: entryOf(p, r.clock.Now()), Document: doc}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal project record: %w", err)
	}

	if err := r.fs.AtomicWrite(r.path(p.ID()), data, 0644); err != nil {
		return fmt.Errorf("failed to write project record: %w", err)
	}

	r.live.put(p)
	return nil
}

// Projects lists the records on disk.
func (r *FileRegistry) Projects(ctx context.Context) ([]Entry, error) {
	names, err := r.fs.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	var entries []Entry
	for _, name := range names {
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		rec, err := r.load(filepath.Join(r.dir, name))
		if err != nil {
			return nil, err
		}
		entries = append(entries, rec.Entry)
	}
	sortEntries(entries)
	return entries, nil
}

func (r *FileRegistry) Close() error { return nil }
