package dispatch

import "golang.org/x/sync/errgroup"

// Pool runs each task on its own goroutine. There is no concurrency
// limit; Wait only tracks completion.
type Pool struct {
	g errgroup.Group
}

func NewPool() *Pool {
	return &Pool{}
}

func (p *Pool) Dispatch(task func()) bool {
	p.g.Go(func() error {
		task()
		return nil
	})
	return true
}

// Wait blocks until every task dispatched so far has returned.
func (p *Pool) Wait() {
	_ = p.g.Wait()
}
