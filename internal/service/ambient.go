package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/fsociety-space/fsociety-core/internal/biz/domain"
	"github.com/fsociety-space/fsociety-core/internal/biz/repo"
	"github.com/fsociety-space/fsociety-core/internal/clock"
	"github.com/fsociety-space/fsociety-core/internal/conf"
)

const (
	ambientInterval = 45 * time.Second
	ambientShowFor  = 8 * time.Second
	ambientChance   = 0.3

	// InitialCredits limits explicit message requests per session
	InitialCredits = 5
)

// AmbientScheduler injects short system messages into a single display
// slot. Automatic ticks are probabilistic and skip when a message is
// already shown; explicit requests spend a finite credit and go through
// the generation service with fixed fallbacks. A new message always
// replaces the current one, never queues.
type AmbientScheduler struct {
	oracle repo.OracleRepo
	clk    clock.Clock
	rnd    *rand.Rand
	log    zerolog.Logger

	mu         sync.Mutex
	running    bool
	current    string
	credits    int
	tickTimer  clock.Timer
	clearTimer clock.Timer
}

// NewAmbientScheduler creates a new ambient scheduler
func NewAmbientScheduler(oracle repo.OracleRepo, clk clock.Clock, rnd *rand.Rand, log zerolog.Logger) *AmbientScheduler {
	return &AmbientScheduler{
		oracle:  oracle,
		clk:     clk,
		rnd:     rnd,
		log:     log.With().Str("component", "ambient").Logger(),
		credits: InitialCredits,
	}
}

// Start arms the ambient interval. A no-op while already running.
func (s *AmbientScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.armTickLocked()
	s.log.Debug().Dur("interval", ambientInterval).Msg("ambient scheduler started")
}

// Stop cancels pending timers and clears the display slot
func (s *AmbientScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false
	if s.tickTimer != nil {
		s.tickTimer.Stop()
		s.tickTimer = nil
	}
	if s.clearTimer != nil {
		s.clearTimer.Stop()
		s.clearTimer = nil
	}
	s.current = ""
	s.log.Debug().Msg("ambient scheduler stopped")
}

func (s *AmbientScheduler) armTickLocked() {
	s.tickTimer = s.clk.AfterFunc(ambientInterval, s.tick)
}

func (s *AmbientScheduler) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	if s.current == "" && s.rnd.Float64() < ambientChance {
		line := conf.GentleLines[s.rnd.Intn(len(conf.GentleLines))]
		s.showLocked(line, ambientShowFor)
	}
	s.armTickLocked()
}

// Show displays a message for the default duration, replacing any
// message currently shown
func (s *AmbientScheduler) Show(message string) {
	s.ShowFor(message, ambientShowFor)
}

// ShowFor displays a message for the given duration
func (s *AmbientScheduler) ShowFor(message string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showLocked(message, d)
}

// showLocked replaces the display slot and re-arms its clear timer.
// Caller holds s.mu.
func (s *AmbientScheduler) showLocked(message string, d time.Duration) {
	if s.clearTimer != nil {
		s.clearTimer.Stop()
	}
	s.current = message
	s.clearTimer = s.clk.AfterFunc(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.current == message {
			s.current = ""
		}
	})
}

// Current returns the displayed message, empty when none
func (s *AmbientScheduler) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Credits returns the remaining explicit-request credits
func (s *AmbientScheduler) Credits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credits
}

// RequestMessage handles an explicit user request for a line in the
// given mode. Exhausted credits make the request inert; a generation
// failure falls back to the fixed per-mode list.
func (s *AmbientScheduler) RequestMessage(ctx context.Context, mode domain.OracleMode) {
	s.mu.Lock()
	if s.credits <= 0 {
		s.mu.Unlock()
		return
	}
	s.credits--
	s.mu.Unlock()

	line, err := s.oracle.GenerateLine(ctx, mode)
	if err != nil {
		s.log.Debug().Err(err).Str("mode", string(mode)).Msg("generation failed, using fallback line")
		line = s.fallbackLine(mode)
	}
	s.Show(line)
}

func (s *AmbientScheduler) fallbackLine(mode domain.OracleMode) string {
	list := conf.ChaosLines
	if mode == domain.OracleRelief {
		list = conf.ReliefLines
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return list[s.rnd.Intn(len(list))]
}
