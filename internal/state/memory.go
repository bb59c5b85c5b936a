package state

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/danieljhkim/previewsync/internal/clock"
	"github.com/danieljhkim/previewsync/internal/model"
)

// MemoryRegistry keeps projects in memory only.
type MemoryRegistry struct {
	clock clock.Clock

	mu      sync.Mutex
	live    liveSet
	updated map[string]time.Time
}

// NewMemoryRegistry creates an empty MemoryRegistry.
func NewMemoryRegistry(clk clock.Clock) *MemoryRegistry {
	if clk == nil {
		clk = clock.Real{}
	}
	return &MemoryRegistry{clock: clk, updated: make(map[string]time.Time)}
}

func (r *MemoryRegistry) Project(ctx context.Context, id string) (*model.Project, error) {
	if p, ok := r.live.get(id); ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

func (r *MemoryRegistry) AddProject(ctx context.Context, p *model.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.live.put(p)
	r.updated[p.ID()] = r.clock.Now()
	return nil
}

func (r *MemoryRegistry) Projects(ctx context.Context) ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]Entry, 0, len(r.updated))
	for id, at := range r.updated {
		p, _ := r.live.get(id)
		entries = append(entries, entryOf(p, at))
	}
	sortEntries(entries)
	return entries, nil
}

func (r *MemoryRegistry) Close() error { return nil }
