// Package persist turns projects into durable bytes and back.
//
// The save pipeline only depends on the Serializer interface. JSONSerializer
// is the format previewsync writes itself: a versioned envelope around the
// project's data form.
//
//	{"version": 1, "project": {...}}
//
// Errors returned by JSONSerializer carry the stack of the call that failed,
// so a save failure reported to the host includes where it happened.
package persist

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"github.com/danieljhkim/previewsync/internal/model"
)

// Version is the envelope version JSONSerializer writes.
const Version = 1

// ErrUnsupportedVersion indicates a document written by a newer format.
var ErrUnsupportedVersion = errors.New("unsupported project version")

// Serializer converts projects to bytes and back.
type Serializer interface {
	Serialize(p *model.Project) ([]byte, error)
	Deserialize(data []byte) (*model.Project, error)
}

type envelope struct {
	Version int               `json:"version"`
	Project model.ProjectData `json:"project"`
}

// JSONSerializer writes projects as indented JSON.
type JSONSerializer struct {
	// Indent is the indentation per level. Empty writes compact JSON.
	Indent string
}

// NewJSONSerializer creates a serializer indenting with two spaces.
func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{Indent: "  "}
}

// Serialize encodes p.
func (s *JSONSerializer) Serialize(p *model.Project) ([]byte, error) {
	if p == nil {
		return nil, errors.New("cannot serialize nil project")
	}

	env := envelope{Version: Version, Project: p.ToData()}

	var (
		data []byte
		err  error
	)
	if s.Indent == "" {
		data, err = json.Marshal(env)
	} else {
		data, err = json.MarshalIndent(env, "", s.Indent)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode project %q", p.ID())
	}

	return append(data, '\n'), nil
}

// Deserialize decodes a document written by Serialize.
func (s *JSONSerializer) Deserialize(data []byte) (*model.Project, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.Wrap(err, "failed to decode project")
	}
	if env.Version == 0 || env.Version > Version {
		return nil, errors.WithStack(fmt.Errorf("%w: %d", ErrUnsupportedVersion, env.Version))
	}

	p, err := model.FromData(env.Project)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rebuild project")
	}
	return p, nil
}

// Stack renders the stack captured by a pkg/errors error, innermost first.
// Errors without a stack yield "".
func Stack(err error) string {
	type stackTracer interface {
		StackTrace() errors.StackTrace
	}

	var deepest stackTracer
	for e := err; e != nil; e = unwrap(e) {
		if st, ok := e.(stackTracer); ok {
			deepest = st
		}
	}
	if deepest == nil {
		return ""
	}
	return fmt.Sprintf("%+v", deepest.StackTrace())
}

func unwrap(err error) error {
	type causer interface{ Cause() error }
	if c, ok := err.(causer); ok {
		return c.Cause()
	}
	type wrapper interface{ Unwrap() error }
	if w, ok := err.(wrapper); ok {
		return w.Unwrap()
	}
	return nil
}
