package cron

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunsRegisteredJobs(t *testing.T) {
	sched := New()
	var runs int32
	sched.Register(Job{
		Name:     "ticker",
		Interval: 10 * time.Millisecond,
		Fn: func(ctx context.Context) error {
			atomic.AddInt32(&runs, 1)
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	sched.Start(ctx)

	deadline := time.After(2 * time.Second)
	for atomic.LoadInt32(&runs) < 2 {
		select {
		case <-deadline:
			t.Fatal("job never ran twice")
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()
}

func TestSchedulerStopsOnCancel(t *testing.T) {
	sched := New()
	var runs int32
	sched.Register(Job{
		Name:     "short-lived",
		Interval: 5 * time.Millisecond,
		Fn: func(ctx context.Context) error {
			atomic.AddInt32(&runs, 1)
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	sched.Start(ctx)
	time.Sleep(30 * time.Millisecond)
	cancel()
	time.Sleep(10 * time.Millisecond)

	settled := atomic.LoadInt32(&runs)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, settled, atomic.LoadInt32(&runs))
}
