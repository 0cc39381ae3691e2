package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fsociety-space/fsociety-core/internal/biz/domain"
	"github.com/fsociety-space/fsociety-core/internal/conf"
)

const gentlerWarning = "Could you say this in a gentler way?"

// harshWords is the reply screen: insults, commands and violent or
// self-harm terms. Replies are screened locally only; no remote call.
var harshWords = regexp.MustCompile(`(?i)(stupid|idiot|fake|ugly|lie|liar|dumb|hate|kill|die|shut up|wrong|bad)`)

// ReplyPipeline is the narrower, purely local submission path for replies.
// Accepted replies are appended immediately with no analyzing state.
type ReplyPipeline struct {
	wall       *WallUsecase
	identityUC *IdentityUsecase
	log        zerolog.Logger
}

// NewReplyPipeline creates a new reply pipeline
func NewReplyPipeline(wall *WallUsecase, identityUC *IdentityUsecase, log zerolog.Logger) *ReplyPipeline {
	return &ReplyPipeline{
		wall:       wall,
		identityUC: identityUC,
		log:        log.With().Str("component", "reply").Logger(),
	}
}

// Starters returns the suggested openings shown in an empty reply
// composer
func (uc *ReplyPipeline) Starters() []string {
	out := make([]string, len(conf.ReplyStarters))
	copy(out, conf.ReplyStarters)
	return out
}

// Screen checks reply text against the harsh-language list. Returns a
// gentle-rewording prompt when the text is rejected.
func (uc *ReplyPipeline) Screen(text string) (ok bool, warning string) {
	if harshWords.MatchString(text) {
		return false, gentlerWarning
	}
	return true, ""
}

// Submit screens the text and, when accepted, appends the reply to the
// target post. Returns the warning for rejected text; the parent post is
// untouched in that case.
func (uc *ReplyPipeline) Submit(ctx context.Context, postID, text string) (*domain.Reply, string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ""
	}

	if ok, warning := uc.Screen(text); !ok {
		return nil, warning
	}

	identity := uc.identityUC.GetOrCreate(ctx)
	reply, err := uc.wall.AddReply(postID, text, identity)
	if err != nil {
		// Unknown post IDs cannot occur through the UI; nothing to surface
		return nil, ""
	}
	return reply, ""
}
