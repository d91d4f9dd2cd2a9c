package audio

import (
	"context"
	"errors"
	"testing"
	"time"
)

// The tests drive ExecPlayer with ordinary shell utilities instead of a
// real media player: the contract under test is process lifecycle, not
// decoding.

func TestPlayCompletes(t *testing.T) {
	p := NewExecPlayerWith("true")
	if err := p.Play(context.Background(), "ignored"); err != nil {
		t.Fatalf("play: %v", err)
	}
}

func TestPlayReportsFailure(t *testing.T) {
	p := NewExecPlayerWith("false")
	err := p.Play(context.Background(), "ignored")
	if err == nil {
		t.Fatal("expected error from failing player")
	}
	if errors.Is(err, context.Canceled) {
		t.Fatal("failure must not look like cancellation")
	}
}

func TestPlayCancelledReturnsCtxErr(t *testing.T) {
	p := NewExecPlayerWith("sleep")
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- p.Play(ctx, "10") }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("err = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("play did not return after cancellation")
	}
}

func TestStopTerminatesPlayback(t *testing.T) {
	p := NewExecPlayerWith("sleep")

	done := make(chan error, 1)
	go func() { done <- p.Play(context.Background(), "10") }()

	// Wait for Play to own the slot; from that point Stop must win even
	// if the process has not spawned yet.
	waitForCurrent(t, p)
	p.Stop()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("err = %v, want context.Canceled from Stop", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("play did not return after Stop")
	}
}

func TestNewPlayStopsPrevious(t *testing.T) {
	p := NewExecPlayerWith("sleep")

	first := make(chan error, 1)
	go func() { first <- p.Play(context.Background(), "10") }()
	waitForCurrent(t, p)

	if err := p.Play(context.Background(), "0.1"); err != nil {
		t.Fatalf("second play: %v", err)
	}

	select {
	case err := <-first:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("first play err = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("first play did not return after being superseded")
	}
}

func waitForCurrent(t *testing.T, p *ExecPlayer) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		p.mu.Lock()
		owned := p.current != nil
		p.mu.Unlock()
		if owned {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("play never took the slot")
}
