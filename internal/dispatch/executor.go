// Package dispatch provides the two execution contexts an image load
// moves between: a serial main queue that owns display surfaces, and a
// background pool for network and disk work.
package dispatch

// Executor runs submitted work asynchronously. Dispatch must not block
// on the work itself and reports false when the task was dropped.
type Executor interface {
	Dispatch(task func()) bool
}
