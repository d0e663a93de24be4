package platform

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blank/internal/core"
)

// quitAfter reports no events for n polls, then a quit request.
type quitAfter struct {
	n, polls int
}

func (q *quitAfter) PollEvent() (core.Event, bool) {
	q.polls++
	if q.polls > q.n {
		return core.Event{Type: core.EventQuit}, true
	}
	return core.Event{}, false
}

type targetRecorder struct {
	targets []float64
}

func (r *targetRecorder) Update(targetFPS float64) {
	r.targets = append(r.targets, targetFPS)
}

func TestNativeDriverPassesTargetFPS(t *testing.T) {
	for _, fps := range []float64{0, -1, 30, 60} {
		opts := Options{TargetFPS: fps, Logger: log.New(io.Discard)}
		rec := &targetRecorder{}

		if err := opts.NativeDriver(&quitAfter{n: 2}).Run(context.Background(), rec); err != nil {
			t.Fatalf("fps=%v: Run() error = %v", fps, err)
		}

		if len(rec.targets) != 2 {
			t.Fatalf("fps=%v: expected 2 updates, got %d", fps, len(rec.targets))
		}
		for _, got := range rec.targets {
			if got != fps {
				t.Errorf("fps=%v: Update(%v), the configured rate should reach the game unchanged", fps, got)
			}
		}
	}
}

func TestNativeDriverDrainEvents(t *testing.T) {
	opts := Options{DrainEvents: true, Logger: log.New(io.Discard)}
	if n := opts.NativeDriver(&quitAfter{}); !n.DrainEvents {
		t.Error("DrainEvents should be passed to the native loop")
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.TargetFPS != 60 {
		t.Errorf("TargetFPS = %v, expected 60", opts.TargetFPS)
	}
	if opts.DrainEvents {
		t.Error("DrainEvents should be off by default")
	}
}
