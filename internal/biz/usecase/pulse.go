package usecase

import (
	"sync"

	"github.com/fsociety-space/fsociety-core/internal/biz/domain"
)

// PulseUsecase is the collective presence counter: one tap per session,
// latched after the first
type PulseUsecase struct {
	mu     sync.Mutex
	count  int
	pulsed bool
	moods  domain.MoodStats
}

// NewPulseUsecase creates the pulse with a seeded count and mood fixture
func NewPulseUsecase(seedCount int, moods domain.MoodStats) *PulseUsecase {
	return &PulseUsecase{count: seedCount, moods: moods}
}

// Pulse increments the counter once per session; repeat taps are inert
func (uc *PulseUsecase) Pulse() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.pulsed {
		uc.pulsed = true
		uc.count++
	}
	return uc.count
}

// Count returns the current presence count
func (uc *PulseUsecase) Count() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.count
}

// HasPulsed reports whether this session already tapped
func (uc *PulseUsecase) HasPulsed() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.pulsed
}

// Moods returns the ambient mood breakdown
func (uc *PulseUsecase) Moods() domain.MoodStats {
	return uc.moods
}
