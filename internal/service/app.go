package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/fsociety-space/fsociety-core/internal/biz/domain"
	"github.com/fsociety-space/fsociety-core/internal/biz/repo"
	"github.com/fsociety-space/fsociety-core/internal/biz/usecase"
	"github.com/fsociety-space/fsociety-core/internal/clock"
	"github.com/fsociety-space/fsociety-core/internal/conf"
)

const (
	welcomeDelay   = 2 * time.Second
	welcomeShowFor = 6 * time.Second
	firstVisitFor  = 5 * time.Second
)

// AppService holds the top-level shell state: whether the user is past
// the landing screen, the picked noise level, the slow-mode toggle,
// night mode and the first-visit flag. Entering starts the ambient
// scheduler and schedules the one-shot welcome message.
type AppService struct {
	store      repo.KeyValueStore
	identityUC *usecase.IdentityUsecase
	ambient    *AmbientScheduler
	clk        clock.Clock
	log        zerolog.Logger

	mu           sync.Mutex
	entered      bool
	noise        domain.NoiseLevel
	slowMode     bool
	nightMode    bool
	firstVisit   bool
	welcomeTimer clock.Timer
	visitTimer   clock.Timer
}

// NewAppService creates the shell. The first-visit flag is read and
// burned here (write-once sentinel); night mode follows the local hour.
func NewAppService(store repo.KeyValueStore, identityUC *usecase.IdentityUsecase, ambient *AmbientScheduler, clk clock.Clock, log zerolog.Logger) *AppService {
	s := &AppService{
		store:      store,
		identityUC: identityUC,
		ambient:    ambient,
		clk:        clk,
		log:        log.With().Str("component", "app").Logger(),
		noise:      domain.NoiseQuiet,
	}

	ctx := context.Background()
	if data, err := store.Get(ctx, repo.KeyVisited); err != nil {
		s.log.Warn().Err(err).Msg("visited flag read failed")
	} else if data == nil {
		s.firstVisit = true
		if err := store.Set(ctx, repo.KeyVisited, []byte("true")); err != nil {
			s.log.Warn().Err(err).Msg("visited flag write failed")
		}
	}

	hour := clk.Now().Hour()
	s.nightMode = hour >= 0 && hour < 5

	return s
}

// Enter moves past the landing screen with the chosen noise level,
// starts the ambient scheduler and schedules the welcome message
func (s *AppService) Enter(ctx context.Context, level domain.NoiseLevel) {
	s.mu.Lock()
	if s.entered {
		s.mu.Unlock()
		return
	}
	s.entered = true
	s.noise = level

	if s.firstVisit {
		s.visitTimer = s.clk.AfterFunc(firstVisitFor, func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.firstVisit = false
		})
	}

	s.mu.Unlock()

	identity := s.identityUC.GetOrCreate(ctx)
	name := identity.DisplayName
	if name == "" {
		name = "friend"
	}

	s.ambient.Start()

	welcome := fmt.Sprintf("Welcome, %s.", name)
	s.mu.Lock()
	s.welcomeTimer = s.clk.AfterFunc(welcomeDelay, func() {
		s.ambient.ShowFor(welcome, welcomeShowFor)
	})
	s.mu.Unlock()

	s.log.Info().Str("noise", string(level)).Msg("entered")
}

// Exit tears the shell down: the ambient scheduler stops and pending
// shell timers are invalidated
func (s *AppService) Exit() {
	s.mu.Lock()
	if s.welcomeTimer != nil {
		s.welcomeTimer.Stop()
		s.welcomeTimer = nil
	}
	if s.visitTimer != nil {
		s.visitTimer.Stop()
		s.visitTimer = nil
	}
	s.entered = false
	s.mu.Unlock()

	s.ambient.Stop()
	s.log.Info().Msg("exited")
}

// Entered reports whether the user is past the landing screen
func (s *AppService) Entered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entered
}

// NoiseLevel returns the mood picked on entry
func (s *AppService) NoiseLevel() domain.NoiseLevel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.noise
}

// SetSlowMode toggles the feed-wide slow-mode flag
func (s *AppService) SetSlowMode(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slowMode = on
}

// SlowMode reports the slow-mode flag; passed as a provider into the
// pipelines and timed controllers
func (s *AppService) SlowMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slowMode
}

// NightMode reports whether the session started during night hours
func (s *AppService) NightMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nightMode
}

// NightMessage returns the banner line for night-mode sessions, empty
// otherwise. The line rotates with the calendar day.
func (s *AppService) NightMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.nightMode {
		return ""
	}
	return conf.NightMessages[s.clk.Now().Day()%len(conf.NightMessages)]
}

// FirstVisit reports whether this is the device's first session
func (s *AppService) FirstVisit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.firstVisit
}
