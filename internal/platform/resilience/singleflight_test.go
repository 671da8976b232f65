package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestSingleFlight_DeduplicatesConcurrentCalls(t *testing.T) {
	var g SingleFlight
	var executions atomic.Int32

	release := make(chan struct{})
	var wg sync.WaitGroup
	var shared atomic.Int32

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err, _ := g.Do("key", func() (any, error) {
				executions.Add(1)
				<-release
				return 42, nil
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if v, ok := out.(int); ok && v == 42 {
				shared.Add(1)
			}
		}()
	}

	close(release)
	wg.Wait()

	if got := executions.Load(); got != 1 {
		t.Fatalf("expected single execution, got %d", got)
	}
	if got := shared.Load(); got != 8 {
		t.Fatalf("expected all callers to share the result, got %d", got)
	}
}

func TestSingleFlight_SequentialCallsRunIndependently(t *testing.T) {
	var g SingleFlight
	var executions int

	for i := 0; i < 3; i++ {
		_, err, dedup := g.Do("key", func() (any, error) {
			executions++
			return nil, nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dedup {
			t.Fatal("sequential call should not be deduplicated")
		}
	}

	if executions != 3 {
		t.Fatalf("expected 3 executions, got %d", executions)
	}
}
