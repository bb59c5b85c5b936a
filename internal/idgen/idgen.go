// Package idgen provides pluggable id generation.
//
// Message ids, transaction ids and generated project ids all come from a
// Generator injected at construction time, so tests can swap in a
// deterministic sequence.
package idgen

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// Generator produces unique string identifiers.
type Generator func() string

// UUID returns a Generator producing random RFC 4122 version 4 UUIDs, the id
// format hosts use for messages.
func UUID() Generator {
	return func() string {
		return uuid.NewString()
	}
}

// Prefixed wraps gen and prepends prefix to every id.
func Prefixed(prefix string, gen Generator) Generator {
	return func() string {
		return prefix + gen()
	}
}

// Sequence returns a Generator producing prefix-1, prefix-2, ...
// It is safe for concurrent use.
func Sequence(prefix string) Generator {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return prefix + "-" + strconv.Itoa(n)
	}
}

// Default is the UUID generator.
var Default Generator = UUID()

// New produces an id using Default.
func New() string {
	return Default()
}

// Parse validates a UUID string and returns its canonical form.
func Parse(s string) (string, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid UUID: %w", err)
	}
	return u.String(), nil
}
