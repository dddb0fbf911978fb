// SPDX-License-Identifier: EPL-2.0

package session

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/ik5/waveform/audio"
	"github.com/ik5/waveform/envelope"
)

// Result is what a successful invocation hands back: the new envelope and
// the audio it was computed from. The envelope is also the session's
// carried state and must be treated as read-only.
type Result struct {
	Envelope *envelope.Envelope
	Audio    *audio.Buffer
}

// Callback receives either a non-nil err or a Result, never both.
type Callback func(err error, res Result)

// Session carries the most recent envelope between invocations so that
// range edits have something to edit. A Session is safe for concurrent
// use; invocations are serialised.
type Session struct {
	id     string
	logger *slog.Logger

	mtx  sync.Mutex
	prev *envelope.Envelope
}

type Option func(*Session)

// WithLogger sets the logger for operation traces. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithID replaces the generated session id.
func WithID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.id = id
		}
	}
}

func New(opts ...Option) *Session {
	s := &Session{
		id:     uuid.New().String(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.With("session", s.id)

	return s
}

func (s *Session) ID() string { return s.id }

// Envelope returns the carried envelope, or nil before the first success.
func (s *Session) Envelope() *envelope.Envelope {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.prev
}

// Reset drops the carried envelope.
func (s *Session) Reset() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.prev = nil
}

// Restore installs env as the carried envelope, for example one loaded
// from storage before a range edit.
func (s *Session) Restore(env *envelope.Envelope) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.prev = env
}

// Process resolves desc and applies it to the carried envelope.
func (s *Session) Process(buf *audio.Buffer, desc envelope.Descriptor) (Result, error) {
	op, err := desc.Operation()
	if err != nil {
		s.logger.Warn("rejected descriptor", "error", err)
		return Result{}, err
	}

	return s.Apply(buf, op)
}

// Apply runs op against the carried envelope and, on success, replaces
// it with the result. On failure the carried envelope is kept.
func (s *Session) Apply(buf *audio.Buffer, op envelope.Operation) (Result, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	next, err := envelope.Apply(s.prev, buf, op)
	if err != nil {
		s.logger.Warn("envelope operation failed",
			"kind", op.Kind.String(),
			"start", op.Range.Start,
			"end", op.Range.End,
			"error", err,
		)
		return Result{}, err
	}

	s.prev = next

	s.logger.Debug("envelope updated",
		"kind", op.Kind.String(),
		"entries", next.Len(),
		"bytes", len(next.Bytes()),
	)

	return Result{Envelope: next, Audio: buf}, nil
}

// Handler adapts Process to a decode-completion callback: the returned
// function is handed decoded audio and reports through cb.
func (s *Session) Handler(desc envelope.Descriptor, cb Callback) func(*audio.Buffer) {
	return func(buf *audio.Buffer) {
		res, err := s.Process(buf, desc)
		if err != nil {
			cb(err, Result{})
			return
		}
		cb(nil, res)
	}
}
