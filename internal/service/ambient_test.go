package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/fsociety-space/fsociety-core/internal/biz/domain"
	"github.com/fsociety-space/fsociety-core/internal/clock"
	"github.com/fsociety-space/fsociety-core/internal/conf"
)

// mockOracle returns sequential lines or a fixed error
type mockOracle struct {
	mu    sync.Mutex
	err   error
	calls int
}

func (m *mockOracle) GenerateLine(_ context.Context, _ domain.OracleMode) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return fmt.Sprintf("line %d", m.calls), nil
}

func newTestAmbient(clk clock.Clock) *AmbientScheduler {
	return NewAmbientScheduler(&mockOracle{}, clk, rand.New(rand.NewSource(1)), zerolog.Nop())
}

func TestAmbientShowAndClear(t *testing.T) {
	clk := clock.NewFake()
	s := newTestAmbient(clk)

	s.Show("the night is long")
	if s.Current() != "the night is long" {
		t.Fatalf("current = %q", s.Current())
	}

	clk.Advance(7 * time.Second)
	if s.Current() == "" {
		t.Error("message cleared early")
	}
	clk.Advance(time.Second)
	if s.Current() != "" {
		t.Errorf("current = %q after display window, want empty", s.Current())
	}
}

func TestAmbientShowReplacesNotQueues(t *testing.T) {
	clk := clock.NewFake()
	s := newTestAmbient(clk)

	s.Show("first")
	clk.Advance(5 * time.Second)
	s.Show("second")
	if s.Current() != "second" {
		t.Fatalf("current = %q, want replacement", s.Current())
	}

	// The first message's clear timer was rescheduled, not left to chop
	// the replacement short
	clk.Advance(4 * time.Second)
	if s.Current() != "second" {
		t.Error("replacement cleared by the stale timer")
	}
	clk.Advance(4 * time.Second)
	if s.Current() != "" {
		t.Error("replacement never cleared")
	}
}

func TestAmbientTickEventuallyShows(t *testing.T) {
	clk := clock.NewFake()
	s := newTestAmbient(clk)
	s.Start()

	shows := 0
	for i := 0; i < 50; i++ {
		clk.Advance(45 * time.Second)
		if s.Current() != "" {
			shows++
		}
	}
	if shows == 0 {
		t.Error("no tick ever showed a line")
	}
	if shows == 50 {
		t.Error("every tick showed a line, draws are not probabilistic")
	}
}

func TestAmbientTickSkipsOccupiedSlot(t *testing.T) {
	clk := clock.NewFake()
	s := newTestAmbient(clk)
	s.Start()

	s.ShowFor("pinned", 10*time.Minute)
	for i := 0; i < 10; i++ {
		clk.Advance(45 * time.Second)
		if s.Current() != "pinned" {
			t.Fatalf("tick %d replaced the shown message with %q", i, s.Current())
		}
	}
}

func TestAmbientStopClearsAndDisarms(t *testing.T) {
	clk := clock.NewFake()
	s := newTestAmbient(clk)
	s.Start()

	s.Show("leaving now")
	s.Stop()
	if s.Current() != "" {
		t.Error("stop left a message in the slot")
	}

	for i := 0; i < 10; i++ {
		clk.Advance(45 * time.Second)
	}
	if s.Current() != "" {
		t.Error("stopped scheduler showed a line")
	}
}

func TestRequestMessageSpendsCredits(t *testing.T) {
	clk := clock.NewFake()
	oracle := &mockOracle{}
	s := NewAmbientScheduler(oracle, clk, rand.New(rand.NewSource(1)), zerolog.Nop())

	ctx := context.Background()
	for i := 0; i < InitialCredits; i++ {
		s.RequestMessage(ctx, domain.OracleChaos)
	}
	if s.Credits() != 0 {
		t.Fatalf("credits = %d after %d requests, want 0", s.Credits(), InitialCredits)
	}
	last := s.Current()
	if last == "" {
		t.Fatal("no line shown")
	}

	s.RequestMessage(ctx, domain.OracleChaos)
	if oracle.calls != InitialCredits {
		t.Errorf("oracle called %d times, exhausted credits must not reach it", oracle.calls)
	}
	if s.Current() != last {
		t.Error("exhausted request changed the slot")
	}
}

func TestRequestMessageFallsBackOnError(t *testing.T) {
	clk := clock.NewFake()
	oracle := &mockOracle{err: errors.New("gemini: unavailable")}
	s := NewAmbientScheduler(oracle, clk, rand.New(rand.NewSource(1)), zerolog.Nop())

	s.RequestMessage(context.Background(), domain.OracleRelief)

	got := s.Current()
	if got == "" {
		t.Fatal("no fallback line shown")
	}
	found := false
	for _, line := range conf.ReliefLines {
		if line == got {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("fallback %q not from the relief list", got)
	}
}
