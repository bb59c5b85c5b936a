package idgen

import (
	"strings"
	"testing"
)

func TestUUID_Format(t *testing.T) {
	id := UUID()()
	if len(id) != 36 {
		t.Fatalf("UUID: expected length 36, got %d", len(id))
	}
	if parts := strings.Split(id, "-"); len(parts) != 5 {
		t.Fatalf("UUID: expected 5 parts, got %d in %q", len(parts), id)
	}
	if _, err := Parse(id); err != nil {
		t.Fatalf("Parse(%q): %v", id, err)
	}
}

func TestUUID_Uniqueness(t *testing.T) {
	gen := UUID()
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		id := gen()
		if _, ok := seen[id]; ok {
			t.Fatalf("UUID: duplicate at iteration %d", i)
		}
		seen[id] = struct{}{}
	}
}

func TestPrefixed(t *testing.T) {
	id := Prefixed("msg_", Sequence("x"))()
	if id != "msg_x-1" {
		t.Errorf("Prefixed: got %q, want %q", id, "msg_x-1")
	}
}

func TestSequence(t *testing.T) {
	gen := Sequence("id")
	for _, want := range []string{"id-1", "id-2", "id-3"} {
		if got := gen(); got != want {
			t.Errorf("Sequence: got %q, want %q", got, want)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse("not-a-uuid"); err == nil {
		t.Error("Parse should reject malformed input")
	}
}
