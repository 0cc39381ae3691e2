package service

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/fsociety-space/fsociety-core/internal/biz/domain"
	"github.com/fsociety-space/fsociety-core/internal/clock"
)

const (
	breathingDelay     = 4 * time.Second
	breathingDelaySlow = 6 * time.Second
)

// SilenceController is the feed-wide suspension state machine:
// idle -> breathing -> choices, with only an explicit resume returning
// to idle. The breathing -> choices step is the single timer-driven
// transition; re-entry invalidates any pending timer from a prior cycle.
type SilenceController struct {
	clk      clock.Clock
	slowMode func() bool
	log      zerolog.Logger

	mu    sync.Mutex
	phase domain.SilencePhase
	timer clock.Timer
	// generation guards against a stale timer firing after re-entry
	generation int
}

// NewSilenceController creates a new silence controller
func NewSilenceController(clk clock.Clock, slowMode func() bool, log zerolog.Logger) *SilenceController {
	return &SilenceController{
		clk:      clk,
		slowMode: slowMode,
		log:      log.With().Str("component", "silence").Logger(),
		phase:    domain.SilenceIdle,
	}
}

// Enter suspends the feed and starts the breathing phase. A no-op while
// already active.
func (c *SilenceController) Enter() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != domain.SilenceIdle {
		return
	}

	c.stopTimerLocked()
	c.generation++
	gen := c.generation
	c.phase = domain.SilenceBreathing

	delay := breathingDelay
	if c.slowMode() {
		delay = breathingDelaySlow
	}
	c.timer = c.clk.AfterFunc(delay, func() {
		c.advance(gen)
	})
	c.log.Debug().Dur("delay", delay).Msg("silence mode entered")
}

// advance moves breathing to choices unless the controller was resumed
// or re-entered since the timer was armed
func (c *SilenceController) advance(gen int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation || c.phase != domain.SilenceBreathing {
		return
	}
	c.phase = domain.SilenceChoices
}

// Resume returns to the normal feed. Only explicit user action leaves
// the choices phase.
func (c *SilenceController) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == domain.SilenceIdle {
		return
	}
	c.stopTimerLocked()
	c.generation++
	c.phase = domain.SilenceIdle
	c.log.Debug().Msg("silence mode resumed")
}

// Active reports whether feed rendering is suspended
func (c *SilenceController) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase != domain.SilenceIdle
}

// Phase returns the current display phase
func (c *SilenceController) Phase() domain.SilencePhase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

func (c *SilenceController) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
