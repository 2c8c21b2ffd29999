package client

// State is the lifecycle of one fetched view.
type State int

const (
	Idle State = iota
	Loading
	Loaded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Result is a tagged fetch result. Value is meaningful only when Loaded,
// Err only when Failed.
type Result[T any] struct {
	State State
	Value T
	Err   string
}

func loading[T any]() Result[T]        { return Result[T]{State: Loading} }
func loaded[T any](v T) Result[T]      { return Result[T]{State: Loaded, Value: v} }
func failed[T any](err error) Result[T] { return Result[T]{State: Failed, Err: err.Error()} }

func (r Result[T]) IsLoaded() bool { return r.State == Loaded }
func (r Result[T]) IsFailed() bool { return r.State == Failed }
