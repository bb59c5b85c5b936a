package hash

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSHA256Hasher_HashBytes(t *testing.T) {
	hasher := NewSHA256Hasher()

	// sha256("hello world")
	want := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	if got := hasher.HashBytes([]byte("hello world")); got != want {
		t.Errorf("HashBytes() = %s, want %s", got, want)
	}

	if hasher.HashBytes([]byte("a")) == hasher.HashBytes([]byte("b")) {
		t.Error("different content produced the same digest")
	}
}

func TestSHA256Hasher_HashFile(t *testing.T) {
	hasher := NewSHA256Hasher()
	dir := t.TempDir()

	t.Run("matches HashBytes", func(t *testing.T) {
		content := []byte(`{"version":1}`)
		path := filepath.Join(dir, "p.alva")
		if err := os.WriteFile(path, content, 0644); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}

		got, err := hasher.HashFile(path)
		if err != nil {
			t.Fatalf("HashFile failed: %v", err)
		}
		if want := hasher.HashBytes(content); got != want {
			t.Errorf("HashFile() = %s, want %s", got, want)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := hasher.HashFile(filepath.Join(dir, "missing")); err == nil {
			t.Error("HashFile should fail for a missing file")
		}
	})
}

func TestShort(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9", "b94d27b9934d"},
		{"abc", "abc"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Short(tt.in); got != tt.want {
			t.Errorf("Short(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
