package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/fsociety-space/fsociety-core/internal/biz/domain"
	"github.com/fsociety-space/fsociety-core/internal/biz/repo"
	"github.com/fsociety-space/fsociety-core/internal/clock"
)

// ReplyMaxLen is the submission cap for a reply
const ReplyMaxLen = 150

// WallUsecase owns the ordered post collection: threading, reactions,
// edit-in-place, filtering and the saved-post bookmarks. It is the single
// writer for post state; everything else reads snapshots.
type WallUsecase struct {
	store   repo.KeyValueStore
	clk     clock.Clock
	entropy io.Reader
	log     zerolog.Logger

	mu    sync.Mutex
	posts []*domain.Post
	saved domain.SavedSet
}

// NewWallUsecase creates a wall seeded with the given posts, newest first.
// The previously persisted saved set is loaded eagerly; a read failure
// starts the session with an empty set.
func NewWallUsecase(store repo.KeyValueStore, seeds []*domain.Post, entropy io.Reader, clk clock.Clock, log zerolog.Logger) *WallUsecase {
	uc := &WallUsecase{
		store:   store,
		clk:     clk,
		entropy: entropy,
		log:     log.With().Str("component", "wall").Logger(),
		posts:   seeds,
		saved:   make(domain.SavedSet),
	}

	if data, err := store.Get(context.Background(), repo.KeySavedPosts); err != nil {
		uc.log.Warn().Err(err).Msg("saved set read failed, starting empty")
	} else if data != nil {
		if err := json.Unmarshal(data, &uc.saved); err != nil {
			uc.log.Warn().Err(err).Msg("saved set unreadable, starting empty")
			uc.saved = make(domain.SavedSet)
		}
	}

	return uc
}

// AddPost constructs a post with zeroed echoes and no replies and
// prepends it to the wall
func (uc *WallUsecase) AddPost(content string, identity domain.Identity) *domain.Post {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	post := &domain.Post{
		ID:         uc.newID(),
		Content:    content,
		CreatedAt:  uc.clk.Now(),
		AuthorName: identity.DisplayName,
		AuthorID:   identity.ID,
	}
	uc.posts = append([]*domain.Post{post}, uc.posts...)
	return post
}

// AddReply appends a reply to the target post. An unknown post ID is a
// silent no-op: IDs are generated, not user-supplied, so the presentation
// layer never surfaces this.
func (uc *WallUsecase) AddReply(postID, content string, identity domain.Identity) (*domain.Reply, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	post := uc.find(postID)
	if post == nil {
		uc.log.Debug().Str("post_id", postID).Msg("reply to unknown post ignored")
		return nil, domain.ErrNotFound
	}

	if r := []rune(content); len(r) > ReplyMaxLen {
		content = string(r[:ReplyMaxLen])
	}

	reply := domain.Reply{
		ID:         uc.newID(),
		Content:    content,
		CreatedAt:  uc.clk.Now(),
		AuthorName: identity.DisplayName,
		AuthorID:   identity.ID,
	}
	post.Replies = append(post.Replies, reply)
	return &reply, nil
}

// EditPost replaces a post's content in place. Only the author may edit;
// seed posts without an author are never editable.
func (uc *WallUsecase) EditPost(postID, newContent string, caller domain.Identity) (*domain.Post, error) {
	if strings.TrimSpace(newContent) == "" {
		return nil, fmt.Errorf("edit post: empty content")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	post := uc.find(postID)
	if post == nil {
		return nil, domain.ErrNotFound
	}
	if !post.EditableBy(caller) {
		return nil, domain.ErrPermissionDenied
	}

	post.Content = newContent
	return post, nil
}

// IncrementEcho bumps a reaction counter. Unconditional and repeatable:
// there is no per-identity dedup.
func (uc *WallUsecase) IncrementEcho(postID string, kind domain.EchoKind) (*domain.Post, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("increment echo: unknown kind %q", kind)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	post := uc.find(postID)
	if post == nil {
		return nil, domain.ErrNotFound
	}
	post.Echoes.Add(kind)
	return post, nil
}

// ListPosts returns the posts in wall order (newest first), optionally
// intersected with the saved set
func (uc *WallUsecase) ListPosts(filter domain.WallFilter) []*domain.Post {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if filter != domain.FilterSavedOnly {
		out := make([]*domain.Post, len(uc.posts))
		copy(out, uc.posts)
		return out
	}

	var out []*domain.Post
	for _, p := range uc.posts {
		if uc.saved.Has(p.ID) {
			out = append(out, p)
		}
	}
	return out
}

// ToggleSaved flips bookmark membership for a post and persists the set.
// A store failure keeps the in-memory flip and is only logged.
func (uc *WallUsecase) ToggleSaved(ctx context.Context, postID string) domain.SavedSet {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.saved.Toggle(postID)

	if data, err := json.Marshal(uc.saved); err == nil {
		if err := uc.store.Set(ctx, repo.KeySavedPosts, data); err != nil {
			uc.log.Warn().Err(err).Msg("saved set write failed")
		}
	}

	out := make(domain.SavedSet, len(uc.saved))
	for id := range uc.saved {
		out[id] = struct{}{}
	}
	return out
}

// IsSaved checks bookmark membership
func (uc *WallUsecase) IsSaved(postID string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.saved.Has(postID)
}

func (uc *WallUsecase) find(postID string) *domain.Post {
	for _, p := range uc.posts {
		if p.ID == postID {
			return p
		}
	}
	return nil
}

func (uc *WallUsecase) newID() string {
	return ulid.MustNew(ulid.Timestamp(uc.clk.Now()), uc.entropy).String()
}
