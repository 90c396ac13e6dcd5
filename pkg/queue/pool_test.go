package queue

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestPoolRunsAllTasks(t *testing.T) {
	p := NewPool(Config{Workers: 4, QueueSize: 8})
	p.Start(context.Background())

	var ran atomic.Int64
	for i := 0; i < 32; i++ {
		if err := p.Submit(func(ctx context.Context) { ran.Add(1) }); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	p.Stop()

	if got := ran.Load(); got != 32 {
		t.Fatalf("expected 32 tasks run, got %d", got)
	}
}

func TestPoolStopDrainsQueue(t *testing.T) {
	p := NewPool(Config{Workers: 1, QueueSize: 4})
	p.Start(context.Background())

	var ran atomic.Int64
	for i := 0; i < 4; i++ {
		if err := p.Submit(func(ctx context.Context) {
			time.Sleep(5 * time.Millisecond)
			ran.Add(1)
		}); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	p.Stop()

	if got := ran.Load(); got != 4 {
		t.Fatalf("queued tasks dropped on stop: ran %d of 4", got)
	}
}

func TestPoolSubmitAfterStop(t *testing.T) {
	p := NewPool(Config{Workers: 1})
	p.Start(context.Background())
	p.Stop()

	if err := p.Submit(func(ctx context.Context) {}); err != ErrPoolClosed {
		t.Fatalf("expected ErrPoolClosed, got %v", err)
	}
}

func TestPoolDefaultsEmptyConfig(t *testing.T) {
	p := NewPool(Config{})
	if p.cfg.Workers != 1 || p.cfg.QueueSize != 1 {
		t.Fatalf("defaults %d/%d", p.cfg.Workers, p.cfg.QueueSize)
	}
}
