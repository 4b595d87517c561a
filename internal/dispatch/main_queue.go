package dispatch

import "sync"

// MainQueue runs tasks one at a time, in submission order, on a single
// goroutine. Its queue is unbounded so a task may dispatch further tasks
// onto the same queue.
type MainQueue struct {
	mu      sync.Mutex
	pending []func()
	closed  bool

	wake chan struct{}
	done chan struct{}
}

func NewMainQueue() *MainQueue {
	q := &MainQueue{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go q.run()
	return q
}

// Dispatch enqueues task. Tasks submitted after Close are dropped and
// Dispatch returns false.
func (q *MainQueue) Dispatch(task func()) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.pending = append(q.pending, task)
	q.mu.Unlock()

	q.signal()
	return true
}

// Close runs whatever is already queued, then stops the queue goroutine.
// It blocks until the goroutine exits and must not be called from a task.
func (q *MainQueue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	q.signal()
	<-q.done
}

func (q *MainQueue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *MainQueue) run() {
	defer close(q.done)

	for {
		q.mu.Lock()
		for len(q.pending) == 0 && !q.closed {
			q.mu.Unlock()
			<-q.wake
			q.mu.Lock()
		}
		if len(q.pending) == 0 {
			q.mu.Unlock()
			return
		}
		batch := q.pending
		q.pending = nil
		q.mu.Unlock()

		for _, task := range batch {
			task()
		}
	}
}
