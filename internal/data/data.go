package data

import (
	"github.com/rs/zerolog"

	"github.com/fsociety-space/fsociety-core/gemini"
	"github.com/fsociety-space/fsociety-core/internal/biz/repo"
)

// Repositories contains all repositories
type Repositories struct {
	Store  repo.KeyValueStore
	Safety repo.SafetyRepo
	Oracle repo.OracleRepo
}

// NewRepositories creates all repositories. A failure to open the
// on-disk store degrades to the in-memory store so the feed always
// comes up.
func NewRepositories(geminiClient *gemini.Client, dbPath string, log zerolog.Logger) *Repositories {
	store, err := NewKVStore(dbPath)
	if err != nil {
		log.Warn().Err(err).Str("path", dbPath).Msg("kv store unavailable, state is session-only")
		store = NewMemoryStore()
	}

	return &Repositories{
		Store:  store,
		Safety: NewSafetyRepo(geminiClient),
		Oracle: NewOracleRepo(geminiClient),
	}
}
