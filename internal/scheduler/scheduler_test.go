package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestStartStop(t *testing.T) {
	s := New("@every 1h", func(ctx context.Context) {})

	if s.Running() {
		t.Fatal("new scheduler should be stopped")
	}

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if !s.Running() {
		t.Error("scheduler should be running after Start")
	}

	if err := s.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if s.Running() {
		t.Error("scheduler should be stopped after Stop")
	}
}

func TestDoubleStartAndStop(t *testing.T) {
	s := New("@every 1h", func(ctx context.Context) {})

	if err := s.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer s.Stop()

	if err := s.Start(context.Background()); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second start = %v, want ErrAlreadyRunning", err)
	}

	if err := s.Stop(); err != nil {
		t.Fatal(err)
	}
	if err := s.Stop(); !errors.Is(err, ErrNotRunning) {
		t.Errorf("second stop = %v, want ErrNotRunning", err)
	}
}

func TestBadSpec(t *testing.T) {
	s := New("not a cron spec", func(ctx context.Context) {})
	if err := s.Start(context.Background()); err == nil {
		t.Fatal("expected error for invalid spec")
	}
	if s.Running() {
		t.Error("scheduler must stay stopped after a failed Start")
	}
}

func TestRunFires(t *testing.T) {
	var runs atomic.Int32
	s := New("@every 100ms", func(ctx context.Context) { runs.Add(1) })

	if err := s.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer s.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for runs.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if runs.Load() == 0 {
		t.Error("run never fired")
	}
}

func TestRestartAfterStop(t *testing.T) {
	s := New("@every 1h", func(ctx context.Context) {})

	if err := s.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := s.Stop(); err != nil {
		t.Fatal(err)
	}
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("restart: %v", err)
	}
	s.Stop()
}
