package main

import (
	"context"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/fsociety-space/fsociety-core/gemini"
	"github.com/fsociety-space/fsociety-core/internal/biz"
	"github.com/fsociety-space/fsociety-core/internal/biz/domain"
	"github.com/fsociety-space/fsociety-core/internal/biz/usecase"
	"github.com/fsociety-space/fsociety-core/internal/clock"
	"github.com/fsociety-space/fsociety-core/internal/conf"
	"github.com/fsociety-space/fsociety-core/internal/data"
	"github.com/fsociety-space/fsociety-core/internal/service"
)

func main() {
	// A missing .env file is fine, the process environment still applies.
	_ = godotenv.Load()

	cfg := conf.LoadFromEnv()

	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	var client *gemini.Client
	if cfg.Gemini.APIKey != "" {
		client = gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model)
		log.Info().Str("model", cfg.Gemini.Model).Msg("gemini client configured")
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set, safety checks default to safe and ambient lines use local fallbacks")
	}

	repos := data.NewRepositories(client, cfg.Store.DBPath, log)
	defer repos.Store.Close()

	clk := clock.New()
	seed := time.Now().UnixNano()

	identityUC := usecase.NewIdentityUsecase(repos.Store, newRand(seed), clk, log)
	wallUC := usecase.NewWallUsecase(repos.Store, data.SeedPosts(clk), entropy(seed+1), clk, log)

	ambient := service.NewAmbientScheduler(repos.Oracle, clk, newRand(seed+5), log)
	app := service.NewAppService(repos.Store, identityUC, ambient, clk, log)
	slow := app.SlowMode

	usecases := &biz.Usecases{
		Identity:   identityUC,
		Wall:       wallUC,
		Submission: usecase.NewSubmissionPipeline(repos.Safety, wallUC, identityUC, clk, newRand(seed+2), slow, log),
		Void:       usecase.NewVoidPipeline(repos.Safety, clk, newRand(seed+3), slow, log),
		Reply:      usecase.NewReplyPipeline(wallUC, identityUC, log),
		Wins:       usecase.NewWinsUsecase(data.SeedWins(), entropy(seed+4), clk),
		Pulse:      usecase.NewPulseUsecase(data.SeedPulseCount, data.SeedMoods()),
	}

	silence := service.NewSilenceController(clk, slow, log)
	companion := service.NewCompanionOverlay(clk, slow)

	ctx := context.Background()
	app.Enter(ctx, domain.NoiseQuiet)

	log.Info().Msg("fsociety core running")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("shutting down")
	silence.Resume()
	companion.Deactivate()
	usecases.Submission.Close()
	usecases.Void.Close()
	app.Exit()
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func entropy(seed int64) io.Reader {
	return rand.New(rand.NewSource(seed))
}
