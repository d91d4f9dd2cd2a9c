// Package audio plays remote audio streams through an external player
// binary. Playback is cooperative: cancelling the context kills the
// player process, and starting a new playback stops the previous one so
// at most one stream is audible at a time.
package audio

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sync"
)

// Player loads and plays a single audio stream at a time.
type Player interface {
	// Play blocks until the stream finishes, fails, or ctx is cancelled.
	// Cancellation is reported as ctx.Err(), never as a playback failure.
	Play(ctx context.Context, url string) error

	// Stop terminates the current playback, if any. Effective mid-load.
	Stop()
}

// ErrNoPlayer is returned when no supported player binary is installed.
var ErrNoPlayer = errors.New("audio: no player binary found (tried mpv, ffplay, afplay)")

// candidate player binaries in preference order, with the flags that
// make each one play a URL silently and exit when done.
var candidates = []struct {
	name string
	args []string
}{
	{"mpv", []string{"--no-video", "--really-quiet"}},
	{"ffplay", []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}},
	{"afplay", nil},
}

// ExecPlayer shells out to an installed media player.
type ExecPlayer struct {
	binary string
	args   []string

	mu      sync.Mutex
	current *playback
}

// playback is one occupancy of the player slot. Killing goes through
// the cancel func rather than the process handle so a Stop that lands
// before the process has spawned still takes effect.
type playback struct {
	cancel context.CancelFunc
}

// NewExecPlayer finds an installed player binary and returns a Player
// using it. Returns ErrNoPlayer when none is available.
func NewExecPlayer() (*ExecPlayer, error) {
	for _, c := range candidates {
		if path, err := exec.LookPath(c.name); err == nil {
			return &ExecPlayer{binary: path, args: c.args}, nil
		}
	}
	return nil, ErrNoPlayer
}

// NewExecPlayerWith uses a specific binary and arguments. The binary is
// invoked as `binary args... url` and must exit when playback ends.
func NewExecPlayerWith(binary string, args ...string) *ExecPlayer {
	return &ExecPlayer{binary: binary, args: args}
}

func (p *ExecPlayer) Play(ctx context.Context, url string) error {
	playCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// One stream at a time: adopting the slot cancels whatever held it.
	pb := &playback{cancel: cancel}
	p.mu.Lock()
	if p.current != nil {
		p.current.cancel()
	}
	p.current = pb
	p.mu.Unlock()

	cmd := exec.CommandContext(playCtx, p.binary, append(append([]string{}, p.args...), url)...)
	err := cmd.Run()

	p.mu.Lock()
	if p.current == pb {
		p.current = nil
	}
	p.mu.Unlock()

	// A kill surfaces as a process error; report cancellation (caller's
	// context, Stop, or a newer Play) distinctly so callers don't treat
	// it as a playback failure.
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if playCtx.Err() != nil {
		return context.Canceled
	}
	if err != nil {
		return fmt.Errorf("play %s: %w", url, err)
	}
	return nil
}

func (p *ExecPlayer) Stop() {
	p.mu.Lock()
	pb := p.current
	p.current = nil
	p.mu.Unlock()

	if pb != nil {
		pb.cancel()
	}
}
