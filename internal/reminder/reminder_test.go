package reminder

import (
	"context"
	"testing"
	"time"
)

func TestRun_FiresAtInterval(t *testing.T) {
	fired := make(chan time.Time, 4)
	s := New(10*time.Millisecond, func(now time.Time) {
		select {
		case fired <- now:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("no notification within 2s")
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	s := New(5*time.Millisecond, func(time.Time) {})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_DisabledWithoutInterval(t *testing.T) {
	s := New(0, func(time.Time) { t.Error("disabled scheduler fired") })

	done := make(chan struct{})
	go func() {
		s.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("zero-interval Run did not return immediately")
	}
}
