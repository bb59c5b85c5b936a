package engine

import (
	"context"
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// DiffResult compares a project's file with the registry's copy.
type DiffResult struct {
	Path string

	// Missing is true when the project file does not exist yet.
	Missing bool

	// DiskDigest and RegistryDigest are content digests of the file and of
	// the registry copy's serialization. DiskDigest is empty when Missing.
	DiskDigest     string
	RegistryDigest string

	// Diff is a unified diff from the file to the registry copy. Empty
	// when they match.
	Diff string
}

// Changed reports whether the registry copy differs from the file.
func (r *DiffResult) Changed() bool {
	return r.Diff != ""
}

// Diff shows what saving the project with id would change on disk.
func (e *Engine) Diff(ctx context.Context, id string) (*DiffResult, error) {
	p, err := e.project(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Path() == "" {
		return nil, fmt.Errorf("%w: project %q was never saved", ErrNoTargetPath, id)
	}

	current, err := e.serializer.Serialize(p)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize project: %w", err)
	}

	result := &DiffResult{Path: p.Path(), RegistryDigest: e.hasher.HashBytes(current)}

	var onDisk []byte
	exists, err := e.fileExists(p.Path())
	if err != nil {
		return nil, err
	}
	if exists {
		if onDisk, err = e.fs.ReadFile(p.Path()); err != nil {
			return nil, fmt.Errorf("failed to read project file: %w", err)
		}
		result.DiskDigest = e.hasher.HashBytes(onDisk)
		if result.DiskDigest == result.RegistryDigest {
			return result, nil
		}
	} else {
		result.Missing = true
	}

	fromFile := p.Path()
	if result.Missing {
		fromFile = "/dev/null"
	}

	result.Diff, err = difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(onDisk)),
		B:        difflib.SplitLines(string(current)),
		FromFile: fromFile,
		ToFile:   "registry:" + p.ID(),
		Context:  3,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to diff project: %w", err)
	}

	return result, nil
}
