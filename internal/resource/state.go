package resource

// Phase is the lifecycle position of a resource.
type Phase int

const (
	Idle    Phase = iota // nothing requested, or cancelled
	Loading              // a load for State.Key is outstanding
	Ready                // the latest load for State.Key succeeded
	Failed               // the latest load for State.Key failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of a Resource.
// Value is only meaningful when Phase is Ready and Failure is only set when
// Phase is Failed.
type State[K comparable, T any] struct {
	Phase   Phase
	Key     K
	Value   T
	Failure *Failure
}

// IsIdle reports whether nothing has been requested since mount or Cancel.
func (s State[K, T]) IsIdle() bool { return s.Phase == Idle }

// IsLoading reports whether a load is outstanding.
func (s State[K, T]) IsLoading() bool { return s.Phase == Loading }

// IsReady reports whether Value holds a resolved payload.
func (s State[K, T]) IsReady() bool { return s.Phase == Ready }

// IsFailed reports whether the latest load failed.
func (s State[K, T]) IsFailed() bool { return s.Phase == Failed }

// Err returns the failure as an error, or nil.
func (s State[K, T]) Err() error {
	if s.Failure == nil {
		return nil
	}
	return s.Failure
}
