package usecase

import (
	"io"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/fsociety-space/fsociety-core/internal/biz/domain"
	"github.com/fsociety-space/fsociety-core/internal/clock"
)

// WinsUsecase keeps the shared list of small positive entries. New wins
// are prepended; only the newest few are shown but all are retained.
type WinsUsecase struct {
	clk     clock.Clock
	entropy io.Reader

	mu   sync.Mutex
	wins []domain.Win
}

// NewWinsUsecase creates a wins list from seed entries
func NewWinsUsecase(seeds []domain.Win, entropy io.Reader, clk clock.Clock) *WinsUsecase {
	return &WinsUsecase{
		clk:     clk,
		entropy: entropy,
		wins:    seeds,
	}
}

// Add prepends a win, trimming and capping the content. Empty input is a
// no-op.
func (uc *WinsUsecase) Add(content string) *domain.Win {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}
	if r := []rune(content); len(r) > domain.WinMaxLen {
		content = string(r[:domain.WinMaxLen])
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	win := domain.Win{
		ID:      ulid.MustNew(ulid.Timestamp(uc.clk.Now()), uc.entropy).String(),
		Content: content,
	}
	uc.wins = append([]domain.Win{win}, uc.wins...)
	return &win
}

// Visible returns the newest wins up to the display bound
func (uc *WinsUsecase) Visible() []domain.Win {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	n := len(uc.wins)
	if n > domain.WinVisibleCount {
		n = domain.WinVisibleCount
	}
	out := make([]domain.Win, n)
	copy(out, uc.wins[:n])
	return out
}

// All returns every retained win, newest first
func (uc *WinsUsecase) All() []domain.Win {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]domain.Win, len(uc.wins))
	copy(out, uc.wins)
	return out
}
