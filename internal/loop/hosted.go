package loop

import (
	"context"

	"github.com/charmbracelet/log"
)

// Hosted registers Update as the per-frame callback of a Scheduler. The host
// paces the calls, so Update runs unregulated, and the host decides when the
// loop ends.
type Hosted struct {
	host   Scheduler
	logger *log.Logger
	state  State
}

// NewHosted creates a hosted loop for the given scheduler.
func NewHosted(host Scheduler, logger *log.Logger) *Hosted {
	if logger == nil {
		logger = log.Default()
	}
	return &Hosted{host: host, logger: logger}
}

// State returns the loop state.
func (h *Hosted) State() State {
	return h.state
}

// Run hands the callback to the host and returns once the host stops, which
// it does by itself or when ctx is cancelled. Registration errors are
// discarded: there is nothing to recover to.
func (h *Hosted) Run(ctx context.Context, u Updater) error {
	h.state = Running
	defer func() { h.state = Terminated }()

	if err := h.host.SetMainLoop(ctx, func() { u.Update(Unregulated) }); err != nil {
		h.logger.Debug("main loop host returned an error", "err", err)
	}
	return nil
}
