package usecase

import (
	"context"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/fsociety-space/fsociety-core/internal/biz/domain"
	"github.com/fsociety-space/fsociety-core/internal/biz/repo"
	"github.com/fsociety-space/fsociety-core/internal/clock"
	"github.com/fsociety-space/fsociety-core/internal/conf"
)

// DraftMaxLen is the submission cap for a post draft
const DraftMaxLen = 500

const (
	postedDwell     = 5 * time.Second
	postedDwellSlow = 7 * time.Second

	// The void composer keeps the spinner up briefly before discarding
	voidClearDelay     = 800 * time.Millisecond
	voidClearDelaySlow = 1500 * time.Millisecond

	followUpChance = 0.3

	localRejectReason    = "We detected harsh words. Please pause."
	remoteRejectFallback = "This content feels a bit too heavy."
)

// extremeWords is the fast local screen. A match rejects the draft before
// any remote call is made.
var extremeWords = regexp.MustCompile(`(?i)(die|kill|bomb|murder)`)

// SubmissionPipeline turns a draft into a published post or a rejection.
// Per-draft state machine: idle -> analyzing -> {unsafe|posted} -> idle.
// Each composer owns its own instance; two pipelines may analyze
// concurrently.
type SubmissionPipeline struct {
	safety     repo.SafetyRepo
	wall       *WallUsecase
	identityUC *IdentityUsecase
	clk        clock.Clock
	rnd        *rand.Rand
	slowMode   func() bool
	log        zerolog.Logger

	// discard marks the void composer variant: validated text is thrown
	// away instead of published
	discard bool

	mu           sync.Mutex
	state        domain.SubmissionState
	draft        string
	unsafeReason string
	feedback     string
	followUp     string
	dwellTimer   clock.Timer
	clearTimer   clock.Timer
	closed       bool
}

// NewSubmissionPipeline creates the normal composer pipeline, publishing
// accepted drafts to the wall
func NewSubmissionPipeline(safety repo.SafetyRepo, wall *WallUsecase, identityUC *IdentityUsecase, clk clock.Clock, rnd *rand.Rand, slowMode func() bool, log zerolog.Logger) *SubmissionPipeline {
	return &SubmissionPipeline{
		safety:     safety,
		wall:       wall,
		identityUC: identityUC,
		clk:        clk,
		rnd:        rnd,
		slowMode:   slowMode,
		log:        log.With().Str("component", "submission").Logger(),
		state:      domain.SubmissionIdle,
	}
}

// NewVoidPipeline creates the void composer variant: identical validation,
// but accepted text is discarded rather than published
func NewVoidPipeline(safety repo.SafetyRepo, clk clock.Clock, rnd *rand.Rand, slowMode func() bool, log zerolog.Logger) *SubmissionPipeline {
	return &SubmissionPipeline{
		safety:   safety,
		clk:      clk,
		rnd:      rnd,
		slowMode: slowMode,
		log:      log.With().Str("component", "void").Logger(),
		state:    domain.SubmissionIdle,
		discard:  true,
	}
}

// SetDraft updates the draft text. Edits are ignored while the draft is
// frozen in analyzing; an edit clears a standing unsafe banner.
func (uc *SubmissionPipeline) SetDraft(text string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.state == domain.SubmissionAnalyzing {
		return
	}
	if r := []rune(text); len(r) > DraftMaxLen {
		text = string(r[:DraftMaxLen])
	}
	uc.draft = text
	if uc.state == domain.SubmissionUnsafe {
		uc.state = domain.SubmissionIdle
		uc.unsafeReason = ""
	}
}

// Submit runs the draft through the pipeline and returns the resulting
// state. Empty or whitespace-only drafts never enter the pipeline. While
// a submission is in flight further submits are inert.
func (uc *SubmissionPipeline) Submit(ctx context.Context) domain.SubmissionState {
	uc.mu.Lock()
	if uc.state == domain.SubmissionAnalyzing || uc.closed {
		state := uc.state
		uc.mu.Unlock()
		return state
	}
	if uc.state == domain.SubmissionUnsafe {
		// Resubmission clears the banner and re-runs validation
		uc.state = domain.SubmissionIdle
		uc.unsafeReason = ""
	}

	text := strings.TrimSpace(uc.draft)
	if text == "" {
		state := uc.state
		uc.mu.Unlock()
		return state
	}

	uc.stopTimersLocked()
	uc.state = domain.SubmissionAnalyzing
	uc.mu.Unlock()

	// Fast local screen: extreme content short-circuits without any
	// network dependency
	if extremeWords.MatchString(text) {
		uc.mu.Lock()
		uc.state = domain.SubmissionUnsafe
		uc.unsafeReason = localRejectReason
		uc.mu.Unlock()
		return domain.SubmissionUnsafe
	}

	verdict, err := uc.safety.Check(ctx, text)
	if err != nil {
		// Availability over strict enforcement: a failed check is
		// treated as safe
		uc.log.Warn().Err(err).Msg("safety check failed, applying fail-open policy")
		verdict = domain.DefaultSafeVerdict()
	}

	if !verdict.Safe {
		reason := verdict.Reason
		if reason == "" {
			reason = remoteRejectFallback
		}
		uc.mu.Lock()
		uc.state = domain.SubmissionUnsafe
		uc.unsafeReason = reason
		uc.mu.Unlock()
		return domain.SubmissionUnsafe
	}

	return uc.accept(ctx, text)
}

func (uc *SubmissionPipeline) accept(ctx context.Context, text string) domain.SubmissionState {
	uc.mu.Lock()
	if uc.closed {
		// The composer was torn down while the check was in flight;
		// the verdict is discarded
		state := uc.state
		uc.mu.Unlock()
		return state
	}
	uc.feedback = conf.ReflectiveResponses[uc.rnd.Intn(len(conf.ReflectiveResponses))]
	if uc.rnd.Float64() < followUpChance {
		uc.followUp = conf.GentlePrompts[uc.rnd.Intn(len(conf.GentlePrompts))]
	} else {
		uc.followUp = ""
	}

	if uc.discard {
		delay := voidClearDelay
		if uc.slowMode() {
			delay = voidClearDelaySlow
		}
		uc.clearTimer = uc.clk.AfterFunc(delay, uc.finishVoid)
		uc.mu.Unlock()
		return domain.SubmissionAnalyzing
	}
	uc.mu.Unlock()

	identity := uc.identityUC.GetOrCreate(ctx)
	uc.wall.AddPost(text, identity)

	uc.mu.Lock()
	uc.draft = ""
	uc.state = domain.SubmissionPosted
	uc.armDwellLocked()
	uc.mu.Unlock()
	return domain.SubmissionPosted
}

// finishVoid discards the draft once the void clear delay elapses
func (uc *SubmissionPipeline) finishVoid() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.closed || uc.state != domain.SubmissionAnalyzing {
		return
	}
	uc.draft = ""
	uc.state = domain.SubmissionPosted
	uc.armDwellLocked()
}

// armDwellLocked schedules the posted -> idle return. Caller holds uc.mu.
func (uc *SubmissionPipeline) armDwellLocked() {
	dwell := postedDwell
	if uc.slowMode() {
		dwell = postedDwellSlow
	}
	uc.dwellTimer = uc.clk.AfterFunc(dwell, func() {
		uc.mu.Lock()
		defer uc.mu.Unlock()
		if uc.state == domain.SubmissionPosted {
			uc.state = domain.SubmissionIdle
			uc.feedback = ""
			uc.followUp = ""
		}
	})
}

// Dismiss returns from the posted acknowledgment to idle immediately
func (uc *SubmissionPipeline) Dismiss() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.state != domain.SubmissionPosted {
		return
	}
	uc.stopTimersLocked()
	uc.state = domain.SubmissionIdle
	uc.feedback = ""
	uc.followUp = ""
}

// Close invalidates pending timers. A response from an in-flight safety
// check after Close is discarded by the state guard.
func (uc *SubmissionPipeline) Close() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.closed = true
	uc.stopTimersLocked()
}

func (uc *SubmissionPipeline) stopTimersLocked() {
	if uc.dwellTimer != nil {
		uc.dwellTimer.Stop()
		uc.dwellTimer = nil
	}
	if uc.clearTimer != nil {
		uc.clearTimer.Stop()
		uc.clearTimer = nil
	}
}

// State returns the current pipeline state
func (uc *SubmissionPipeline) State() domain.SubmissionState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

// Draft returns the current draft text
func (uc *SubmissionPipeline) Draft() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.draft
}

// UnsafeReason returns the rejection explanation while state is unsafe
func (uc *SubmissionPipeline) UnsafeReason() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.unsafeReason
}

// Feedback returns the acknowledgment line while state is posted
func (uc *SubmissionPipeline) Feedback() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.feedback
}

// FollowUp returns the optional follow-up prompt, empty when none was drawn
func (uc *SubmissionPipeline) FollowUp() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.followUp
}
