package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/pucktrack/pucktrack/internal/platform/logging"
	"github.com/pucktrack/pucktrack/internal/usecase"
)

type stubRefresher struct {
	calls   atomic.Int32
	outcome usecase.Outcome
	err     error
}

func (s *stubRefresher) FetchAll(ctx context.Context, season string) (usecase.Outcome, error) {
	s.calls.Add(1)
	return s.outcome, s.err
}

func TestStart_RunsInitialRefresh(t *testing.T) {
	t.Parallel()

	refresher := &stubRefresher{
		outcome: usecase.Outcome{FetchType: "all", Status: "success", Succeeded: 10},
	}
	sched := New(refresher, "0 3 * * *", logging.NewNop())

	if err := sched.Start(context.Background()); err != nil {
		t.Fatalf("start scheduler: %v", err)
	}
	defer sched.Stop()

	if got := refresher.calls.Load(); got != 1 {
		t.Fatalf("expected one initial refresh, got=%d", got)
	}
}

func TestStart_RejectsBadCronSpec(t *testing.T) {
	t.Parallel()

	refresher := &stubRefresher{}
	sched := New(refresher, "not a cron spec", logging.NewNop())

	if err := sched.Start(context.Background()); err == nil {
		t.Fatal("expected error for invalid cron spec")
	}
	if got := refresher.calls.Load(); got != 0 {
		t.Fatalf("expected no refresh on invalid spec, got=%d", got)
	}
}

func TestRunUpdate_SkipsWhenContextCancelled(t *testing.T) {
	t.Parallel()

	refresher := &stubRefresher{err: errors.New("should not be called")}
	sched := New(refresher, "0 3 * * *", logging.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sched.runUpdate(ctx)

	if got := refresher.calls.Load(); got != 0 {
		t.Fatalf("expected refresh skipped after cancellation, got=%d", got)
	}
}

func TestRunUpdate_LogsFailureWithoutPanic(t *testing.T) {
	t.Parallel()

	refresher := &stubRefresher{
		outcome: usecase.Outcome{FetchType: "all", Status: "error"},
		err:     errors.New("upstream unavailable"),
	}
	sched := New(refresher, "0 3 * * *", logging.NewNop())
	sched.runUpdate(context.Background())

	if got := refresher.calls.Load(); got != 1 {
		t.Fatalf("expected one refresh attempt, got=%d", got)
	}
}
