package loop

import (
	"context"

	"github.com/charmbracelet/log"
)

// Native is the blocking desktop loop. Each iteration it checks at most one
// pending event; a window close request or Escape ends the loop, otherwise
// Update is called with TargetFPS.
type Native struct {
	events EventSource
	logger *log.Logger
	state  State

	// TargetFPS is passed to Update each iteration.
	TargetFPS float64
	// DrainEvents makes every iteration consume all pending events instead of one.
	DrainEvents bool
}

// NewNative creates a native loop reading events from src.
func NewNative(src EventSource, logger *log.Logger) *Native {
	if logger == nil {
		logger = log.Default()
	}
	return &Native{
		events:    src,
		logger:    logger,
		TargetFPS: DefaultTargetFPS,
	}
}

// State returns the loop state.
func (n *Native) State() State {
	return n.state
}

// Run loops until a quit event is observed or ctx is cancelled.
func (n *Native) Run(ctx context.Context, u Updater) error {
	n.state = Running
	defer func() { n.state = Terminated }()

	for {
		if err := ctx.Err(); err != nil {
			n.logger.Debug("native loop cancelled", "err", err)
			return nil
		}
		if n.quitRequested() {
			n.logger.Debug("quit requested")
			return nil
		}
		u.Update(n.TargetFPS)
	}
}

// quitRequested polls the event queue once, or until empty with DrainEvents.
func (n *Native) quitRequested() bool {
	quit := false
	for {
		ev, ok := n.events.PollEvent()
		if !ok {
			return quit
		}
		if ev.IsQuit() {
			quit = true
		}
		if !n.DrainEvents || quit {
			return quit
		}
	}
}
