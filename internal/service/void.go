package service

import (
	"sync"
	"time"

	"github.com/fsociety-space/fsociety-core/internal/clock"
)

const (
	companionStageDelay = 2 * time.Second
	companionDuration   = 12 * time.Second
	companionSlowFactor = 1.5
)

// CompanionOverlay is the "just sit with me" full-screen presence: a
// two-stage timed overlay that reveals its message after a short delay
// and dismisses itself. Re-activation cancels timers from a prior run
// so a stale timer never fires against fresh state.
type CompanionOverlay struct {
	clk      clock.Clock
	slowMode func() bool

	mu         sync.Mutex
	active     bool
	stage      int
	generation int
	stageTimer clock.Timer
	endTimer   clock.Timer
}

// NewCompanionOverlay creates a new companion overlay
func NewCompanionOverlay(clk clock.Clock, slowMode func() bool) *CompanionOverlay {
	return &CompanionOverlay{clk: clk, slowMode: slowMode}
}

// Activate shows the overlay and schedules its stage reveal and
// auto-dismiss
func (o *CompanionOverlay) Activate() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.stopTimersLocked()
	o.generation++
	gen := o.generation
	o.active = true
	o.stage = 0

	factor := 1.0
	if o.slowMode() {
		factor = companionSlowFactor
	}
	stageDelay := time.Duration(float64(companionStageDelay) * factor)
	endDelay := time.Duration(float64(companionDuration) * factor)

	o.stageTimer = o.clk.AfterFunc(stageDelay, func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		if gen == o.generation && o.active {
			o.stage = 1
		}
	})
	o.endTimer = o.clk.AfterFunc(endDelay, func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		if gen == o.generation {
			o.active = false
			o.stage = 0
		}
	})
}

// Deactivate dismisses the overlay and cancels pending timers
func (o *CompanionOverlay) Deactivate() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.stopTimersLocked()
	o.generation++
	o.active = false
	o.stage = 0
}

// Active reports whether the overlay is shown
func (o *CompanionOverlay) Active() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.active
}

// Stage returns 0 before the message reveal and 1 after
func (o *CompanionOverlay) Stage() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.stage
}

func (o *CompanionOverlay) stopTimersLocked() {
	if o.stageTimer != nil {
		o.stageTimer.Stop()
		o.stageTimer = nil
	}
	if o.endTimer != nil {
		o.endTimer.Stop()
		o.endTimer = nil
	}
}
