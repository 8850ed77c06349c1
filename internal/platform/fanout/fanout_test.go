package fanout_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/tasks-service/internal/platform/fanout"
)

func TestRun_EmptyItems(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 4, []string{}, func(_ context.Context, _ string) (int, error) {
		t.Fatal("fn called for empty input")
		return 0, nil
	})
	if results == nil || len(results) != 0 {
		t.Fatalf("results = %v, want empty non-nil slice", results)
	}
}

func TestRun_KeepsInputOrder(t *testing.T) {
	t.Parallel()

	items := []int{5, 1, 4, 2, 3}
	results := fanout.Run(context.Background(), 2, items, func(_ context.Context, n int) (int, error) {
		// Larger items finish later so completion order differs from input order.
		time.Sleep(time.Duration(n) * time.Millisecond)
		return n * 10, nil
	})

	for i, r := range results {
		if r.Err != nil || r.Value != items[i]*10 {
			t.Errorf("results[%d] = {%d, %v}, want {%d, nil}", i, r.Value, r.Err, items[i]*10)
		}
	}
}

func TestRun_FailureDoesNotCancelOthers(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	var calls atomic.Int32

	results := fanout.Run(context.Background(), 1, []string{"t1", "t2", "t3"}, func(_ context.Context, id string) (string, error) {
		calls.Add(1)
		if id == "t1" {
			return "", errBoom
		}
		return id, nil
	})

	if got := calls.Load(); got != 3 {
		t.Errorf("fn called %d times, want 3", got)
	}
	if !errors.Is(results[0].Err, errBoom) {
		t.Errorf("results[0].Err = %v, want %v", results[0].Err, errBoom)
	}
	if results[1].Value != "t2" || results[2].Value != "t3" {
		t.Errorf("results = %+v", results)
	}
}

func TestRun_RespectsLimit(t *testing.T) {
	t.Parallel()

	const limit = 2
	var inFlight, peak atomic.Int32

	fanout.Run(context.Background(), limit, make([]int, 10), func(_ context.Context, _ int) (struct{}, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return struct{}{}, nil
	})

	if got := peak.Load(); got > limit {
		t.Errorf("peak concurrency = %d, want <= %d", got, limit)
	}
}

func TestRun_CanceledContextSkipsWork(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	results := fanout.Run(ctx, 2, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
		calls.Add(1)
		return n, nil
	})

	if calls.Load() != 0 {
		t.Errorf("fn called %d times after cancel", calls.Load())
	}
	for i, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("results[%d].Err = %v, want context.Canceled", i, r.Err)
		}
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()

	errA := errors.New("a")
	errB := errors.New("b")

	if err := fanout.Errors([]fanout.Result[int]{{Value: 1}, {Value: 2}}); err != nil {
		t.Errorf("Errors() = %v, want nil", err)
	}

	err := fanout.Errors([]fanout.Result[int]{{Err: errA}, {Value: 2}, {Err: errB}})
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("Errors() = %v, want both failures", err)
	}
}
