package usecase

import (
	"testing"

	"github.com/fsociety-space/fsociety-core/internal/biz/domain"
)

func TestPulseLatchesPerSession(t *testing.T) {
	uc := NewPulseUsecase(428, domain.MoodStats{})

	if uc.HasPulsed() {
		t.Fatal("fresh session already pulsed")
	}
	if got := uc.Pulse(); got != 429 {
		t.Errorf("first pulse = %d, want 429", got)
	}
	if got := uc.Pulse(); got != 429 {
		t.Errorf("repeat pulse = %d, counter must not grow again", got)
	}
	if !uc.HasPulsed() {
		t.Error("latch not set")
	}
	if uc.Count() != 429 {
		t.Errorf("count = %d, want 429", uc.Count())
	}
}
