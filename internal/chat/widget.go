package chat

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/five82/missionctl/internal/fetch"
)

const (
	// DefaultTimeout bounds one backend call.
	DefaultTimeout = 10 * time.Second
	// PendingText is shown in the placeholder while a reply is computed.
	PendingText = "Computing trajectory…"
)

// Pending identifies a placeholder awaiting its reply.
type Pending struct {
	ID   string
	Text string
}

// Answer is the text chosen for a placeholder and where it came from.
type Answer struct {
	Text   string
	Remote bool
	Kind   fetch.Kind
}

// Widget holds the transcript and the panel visibility. Send, Resolve and
// Toggle belong to the UI loop; Ask only reads configuration fixed at
// construction and may run on another goroutine.
type Widget struct {
	backend Backend
	timeout time.Duration
	rules   []Rule
	logger  *zap.Logger
	newID   func() string

	transcript Transcript
	visible    bool
}

// Option customizes a Widget.
type Option func(*Widget)

// WithTimeout overrides the backend deadline.
func WithTimeout(d time.Duration) Option {
	return func(w *Widget) {
		if d > 0 {
			w.timeout = d
		}
	}
}

// WithRules replaces the fallback rule table.
func WithRules(rules []Rule) Option {
	return func(w *Widget) { w.rules = rules }
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(w *Widget) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithIDFunc overrides placeholder id generation.
func WithIDFunc(fn func() string) Option {
	return func(w *Widget) {
		if fn != nil {
			w.newID = fn
		}
	}
}

// NewWidget builds a hidden widget around backend.
func NewWidget(backend Backend, opts ...Option) *Widget {
	if backend == nil {
		backend = OfflineBackend{}
	}
	w := &Widget{
		backend: backend,
		timeout: DefaultTimeout,
		rules:   DefaultRules(),
		logger:  zap.NewNop(),
		newID:   func() string { return ulid.Make().String() },
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Toggle flips panel visibility and returns the new state.
func (w *Widget) Toggle() bool {
	w.visible = !w.visible
	return w.visible
}

// Visible reports whether the panel is shown.
func (w *Widget) Visible() bool {
	return w.visible
}

// Send appends text and a pending bot placeholder. Blank input is ignored
// and reported with ok=false.
func (w *Widget) Send(text string) (Pending, bool) {
	if strings.TrimSpace(text) == "" {
		return Pending{}, false
	}
	w.transcript.Append(Message{ID: w.newID(), Author: AuthorUser, Text: text})
	id := w.newID()
	w.transcript.Append(Message{ID: id, Author: AuthorBot, Text: PendingText, Pending: true})
	return Pending{ID: id, Text: text}, true
}

// Ask obtains the reply for text: the backend's answer when it responds in
// time, otherwise the fallback rule table's. Ask returns by the deadline even
// if the backend ignores ctx.
func (w *Widget) Ask(ctx context.Context, text string) Answer {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	type outcome struct {
		reply string
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		reply, err := w.backend.Reply(ctx, text)
		done <- outcome{reply: reply, err: err}
	}()

	var reply string
	var err error
	select {
	case o := <-done:
		reply, err = o.reply, o.err
		// A reply racing the deadline counts as late.
		if err == nil && ctx.Err() != nil {
			err = ctx.Err()
		}
	case <-ctx.Done():
		err = ctx.Err()
	}
	if err == nil {
		return Answer{Text: reply, Remote: true}
	}
	kind := fetch.Classify(err)
	w.logger.Warn("chat backend unavailable, answering from fallback",
		zap.Stringer("kind", kind),
		zap.Error(err))
	return Answer{Text: Fallback(w.rules, text), Kind: kind}
}

// Resolve writes the answer into the placeholder id.
func (w *Widget) Resolve(id string, answer Answer) bool {
	return w.transcript.Resolve(id, answer.Text)
}

// Messages returns a copy of the transcript.
func (w *Widget) Messages() []Message {
	return w.transcript.Messages()
}

// Len returns the transcript length.
func (w *Widget) Len() int {
	return w.transcript.Len()
}
