package engine

import "errors"

var (
	// ErrMalformedRequest indicates a save message without a save payload.
	ErrMalformedRequest = errors.New("malformed save request")

	// ErrAppNotFound indicates the requesting app could not be resolved.
	ErrAppNotFound = errors.New("app not found")

	// ErrProjectNotFound indicates the target project could not be resolved.
	ErrProjectNotFound = errors.New("project not found")

	// ErrNoTargetPath indicates no destination was chosen or stored.
	ErrNoTargetPath = errors.New("no target path")
)
