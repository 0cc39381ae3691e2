package usecase

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fsociety-space/fsociety-core/internal/biz/domain"
	"github.com/fsociety-space/fsociety-core/internal/biz/repo"
	"github.com/fsociety-space/fsociety-core/internal/clock"
	"github.com/fsociety-space/fsociety-core/internal/conf"
)

// IdentityUsecase derives and persists the anonymous device identity
type IdentityUsecase struct {
	store repo.KeyValueStore
	rnd   *rand.Rand
	clk   clock.Clock
	log   zerolog.Logger

	mu     sync.Mutex
	cached domain.Identity
}

// NewIdentityUsecase creates a new identity usecase
func NewIdentityUsecase(store repo.KeyValueStore, rnd *rand.Rand, clk clock.Clock, log zerolog.Logger) *IdentityUsecase {
	return &IdentityUsecase{
		store: store,
		rnd:   rnd,
		clk:   clk,
		log:   log.With().Str("component", "identity").Logger(),
	}
}

// GetOrCreate returns the persisted identity, synthesizing and storing a
// new one on the first call of a device's lifetime. Persistence failures
// degrade to an in-memory identity; this never blocks the caller.
func (uc *IdentityUsecase) GetOrCreate(ctx context.Context) domain.Identity {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.cached.IsZero() {
		return uc.cached
	}

	if data, err := uc.store.Get(ctx, repo.KeyIdentity); err != nil {
		uc.log.Warn().Err(err).Msg("identity store read failed, using in-memory identity")
	} else if data != nil {
		var stored domain.Identity
		if err := json.Unmarshal(data, &stored); err == nil && !stored.IsZero() {
			uc.cached = stored
			return uc.cached
		}
		uc.log.Warn().Msg("stored identity unreadable, regenerating")
	}

	identity := uc.generate()

	if data, err := json.Marshal(identity); err == nil {
		if err := uc.store.Set(ctx, repo.KeyIdentity, data); err != nil {
			uc.log.Warn().Err(err).Msg("identity store write failed, identity is session-only")
		}
	}

	uc.cached = identity
	return uc.cached
}

func (uc *IdentityUsecase) generate() domain.Identity {
	adj := conf.IDAdjectives[uc.rnd.Intn(len(conf.IDAdjectives))]
	noun := conf.IDNouns[uc.rnd.Intn(len(conf.IDNouns))]
	return domain.Identity{
		ID:          uuid.NewString(),
		DisplayName: adj + noun,
		CreatedAt:   uc.clk.Now(),
	}
}
