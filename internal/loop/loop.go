// Package loop provides the drivers that call GameState.Update: a native
// blocking loop that watches the OS event queue for quit requests, and a
// hosted loop that hands a callback to an external scheduler owning pacing.
package loop

import (
	"context"

	"github.com/vovakirdan/blank/internal/core"
)

// DefaultTargetFPS is the frame rate the native loop regulates to.
const DefaultTargetFPS = 60

// Unregulated asks Update to advance on every call.
const Unregulated = -1.0

// State is the lifecycle state of a driver.
type State int

const (
	Idle State = iota // not started
	Running
	Terminated
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case Terminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// Updater is advanced once per loop iteration.
type Updater interface {
	Update(targetFPS float64)
}

// Driver runs an Updater until the loop terminates.
type Driver interface {
	Run(ctx context.Context, u Updater) error
	State() State
}

// EventSource is a non-blocking OS event queue.
type EventSource interface {
	// PollEvent returns the next pending event, or false if the queue is empty.
	PollEvent() (core.Event, bool)
}

// Scheduler is an external run-to-completion host that calls back once per frame.
type Scheduler interface {
	// SetMainLoop registers the per-frame callback and returns when the host
	// stops. The host must stop once ctx is done.
	SetMainLoop(ctx context.Context, callback func()) error
}
