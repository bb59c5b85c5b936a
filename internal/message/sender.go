package message

import "sync"

// Sender delivers messages to the other side of a channel. Delivery is
// fire-and-forget: callers log a returned error and move on.
type Sender interface {
	Send(m Message) error
}

// App is a host application the preview is bound to.
type App interface {
	Sender

	// ID identifies the app in outbound messages.
	ID() string
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(m Message) error

// Send calls f(m).
func (f SenderFunc) Send(m Message) error {
	return f(m)
}

// Recorder is a Sender that keeps every message it is given. It is used for
// in-process hosts and in tests.
type Recorder struct {
	mu       sync.Mutex
	appID    string
	messages []Message
}

// NewRecorder creates a Recorder. A non-empty appID makes it usable as an App.
func NewRecorder(appID string) *Recorder {
	return &Recorder{appID: appID}
}

// ID returns the app id given to NewRecorder.
func (r *Recorder) ID() string {
	return r.appID
}

// Send records m.
func (r *Recorder) Send(m Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, m)
	return nil
}

// Messages returns a copy of everything recorded so far.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}

// Last returns the most recent message.
func (r *Recorder) Last() (Message, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.messages) == 0 {
		return Message{}, false
	}
	return r.messages[len(r.messages)-1], true
}

// OfType returns the recorded messages of type t.
func (r *Recorder) OfType(t Type) []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Message
	for _, m := range r.messages {
		if m.Type == t {
			out = append(out, m)
		}
	}
	return out
}

// Reset drops all recorded messages.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = nil
}
