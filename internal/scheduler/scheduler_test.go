package scheduler

import (
	"context"
	"testing"
	"time"
)

func TestStartWithInvalidSpec(t *testing.T) {
	s := New(time.UTC)
	s.SetReminderFunction(func(ctx context.Context) error { return nil })
	if err := s.Start("not a cron spec"); err == nil {
		t.Fatalf("expected an error for a bad spec")
	}
}

func TestStartWithoutReminderFunc(t *testing.T) {
	s := New(time.UTC)
	if err := s.Start("0 8 * * *"); err != nil {
		t.Fatalf("idle start should not fail: %v", err)
	}
	if s.IsRunning() {
		t.Fatalf("scheduler must stay idle without a reminder function")
	}
}

func TestStartAndStop(t *testing.T) {
	s := New(time.UTC)
	s.SetReminderFunction(func(ctx context.Context) error { return nil })
	if err := s.Start("0 8 * * *"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if !s.IsRunning() {
		t.Fatalf("scheduler should report running")
	}
	s.Stop()
}
