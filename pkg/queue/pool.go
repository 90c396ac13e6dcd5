package queue

import (
	"context"
	"errors"
	"sync"
)

// Task is one unit of work executed by the pool.
type Task func(ctx context.Context)

// Config contains the configuration for the worker pool.
type Config struct {
	Workers   int // number of workers
	QueueSize int // size of the pending-task buffer
}

// Pool runs independent tasks concurrently. Acquisitions share no mutable
// state, so the pool needs no coordination beyond the task channel itself.
type Pool struct {
	cfg    Config
	tasks  chan Task
	wg     sync.WaitGroup
	once   sync.Once
	closed chan struct{}
}

var ErrPoolClosed = errors.New("queue: pool closed")

func NewPool(cfg Config) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = cfg.Workers
	}
	return &Pool{
		cfg:    cfg,
		tasks:  make(chan Task, cfg.QueueSize),
		closed: make(chan struct{}),
	}
}

// Start launches the workers. Workers drain the queue until Stop is called
// or ctx is cancelled.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.cfg.Workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-p.tasks:
					if !ok {
						return
					}
					t(ctx)
				}
			}
		}()
	}
}

// Submit enqueues a task, blocking while the buffer is full. Returns
// ErrPoolClosed after Stop.
func (p *Pool) Submit(t Task) error {
	select {
	case <-p.closed:
		return ErrPoolClosed
	default:
	}
	p.tasks <- t
	return nil
}

// Stop closes the queue and waits for in-flight tasks to finish.
func (p *Pool) Stop() {
	p.once.Do(func() {
		close(p.closed)
		close(p.tasks)
	})
	p.wg.Wait()
}
