package resource

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// UpdatedMsg is emitted when a load for the current key settles.
// ID identifies the emitting instance; screens check it with Owns and read
// the typed result through State. Name is for logs.
type UpdatedMsg struct {
	Name string
	ID   uint64
}

var lastID atomic.Uint64

// Loader produces the payload for one request. It must honour ctx.
type Loader[T any] func(ctx context.Context) (T, error)

// Option configures a Resource.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Resource is a keyed async-load state container owned by a single screen.
//
// Only the most recently requested load may change the state. Every
// Request bumps a generation counter; a load that completes under an older
// generation is dropped, and its context is cancelled as soon as it is
// superseded.
type Resource[K comparable, T any] struct {
	mu         sync.Mutex
	id         uint64
	name       string
	parent     context.Context
	logger     *slog.Logger
	state      State[K, T]
	generation uint64
	cancel     context.CancelFunc
}

// New creates an Idle resource. Loads inherit ctx; cancelling it aborts
// every in-flight load.
func New[K comparable, T any](ctx context.Context, name string, opts ...Option) *Resource[K, T] {
	if ctx == nil {
		ctx = context.Background()
	}
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	return &Resource[K, T]{
		id:     lastID.Add(1),
		name:   name,
		parent: ctx,
		logger: o.logger.With("resource", name),
	}
}

// ID returns the instance identifier carried by UpdatedMsg. No two
// resources share one, even with equal names.
func (r *Resource[K, T]) ID() uint64 { return r.id }

// Owns reports whether msg was emitted by r.
func (r *Resource[K, T]) Owns(msg UpdatedMsg) bool { return msg.ID == r.id }

// State returns the current snapshot. Never blocks on a load.
func (r *Resource[K, T]) State() State[K, T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Request makes key current and returns a command that runs load.
// It returns nil when a load for the same key is already outstanding.
// Requesting a key that is Ready or Failed loads it again.
func (r *Resource[K, T]) Request(key K, load Loader[T]) tea.Cmd {
	r.mu.Lock()
	if r.state.Phase == Loading && r.state.Key == key {
		r.mu.Unlock()
		return nil
	}
	if r.cancel != nil {
		r.cancel()
		r.logger.Debug("superseded in-flight load", "key", r.state.Key)
	}
	r.generation++
	gen := r.generation
	ctx, cancel := context.WithCancel(r.parent)
	r.cancel = cancel
	r.state = State[K, T]{Phase: Loading, Key: key}
	r.mu.Unlock()

	return func() tea.Msg {
		defer cancel()
		value, failure := run(ctx, load)
		return r.settle(gen, key, value, failure)
	}
}

// Cancel abandons any in-flight load and returns to Idle.
func (r *Resource[K, T]) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.generation++
	r.state = State[K, T]{}
}

func (r *Resource[K, T]) settle(gen uint64, key K, value T, failure *Failure) tea.Msg {
	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != r.generation || key != r.state.Key {
		r.logger.Debug("dropped stale result", "key", key)
		return nil
	}
	r.cancel = nil
	if failure != nil {
		r.state = State[K, T]{Phase: Failed, Key: key, Failure: failure}
		r.logger.Info("load failed", "key", key, "kind", failure.Kind, "err", failure.Message)
	} else {
		r.state = State[K, T]{Phase: Ready, Key: key, Value: value}
		r.logger.Debug("load ready", "key", key)
	}
	return UpdatedMsg{Name: r.name, ID: r.id}
}

func run[T any](ctx context.Context, load Loader[T]) (value T, failure *Failure) {
	defer func() {
		if p := recover(); p != nil {
			var zero T
			value, failure = zero, panicFailure(p)
		}
	}()
	v, err := load(ctx)
	if err != nil {
		var zero T
		return zero, Classify(err)
	}
	return v, nil
}
