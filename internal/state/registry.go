package state

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/danieljhkim/previewsync/internal/model"
)

// ErrNotFound indicates the registry has no project with the requested id.
var ErrNotFound = errors.New("project not found")

// Registry stores projects by id.
type Registry interface {
	// Project returns the project with id, or ErrNotFound.
	Project(ctx context.Context, id string) (*model.Project, error)

	// AddProject inserts p or replaces the project with the same id.
	AddProject(ctx context.Context, p *model.Project) error

	// Projects lists every stored project ordered by id.
	Projects(ctx context.Context) ([]Entry, error)

	// Close releases the backend.
	Close() error
}

// Entry describes a stored project.
type Entry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Path      string    `json:"path,omitempty"`
	Draft     bool      `json:"draft"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func entryOf(p *model.Project, at time.Time) Entry {
	return Entry{
		ID:        p.ID(),
		Name:      p.Name(),
		Path:      p.Path(),
		Draft:     p.Draft(),
		UpdatedAt: at,
	}
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
}

// liveSet holds the instances a registry has handed out.
type liveSet struct {
	mu       sync.Mutex
	projects map[string]*model.Project
}

func (l *liveSet) get(id string) (*model.Project, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	p, ok := l.projects[id]
	return p, ok
}

// load returns the instance for id, calling fetch at most once per id. The
// lock is held across the fetch so concurrent first loads share one instance.
func (l *liveSet) load(id string, fetch func() (*model.Project, error)) (*model.Project, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if p, ok := l.projects[id]; ok {
		return p, nil
	}
	p, err := fetch()
	if err != nil {
		return nil, err
	}
	if l.projects == nil {
		l.projects = make(map[string]*model.Project)
	}
	l.projects[id] = p
	return p, nil
}

func (l *liveSet) put(p *model.Project) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.projects == nil {
		l.projects = make(map[string]*model.Project)
	}
	l.projects[p.ID()] = p
}
