package usecase

import (
	"context"
	"testing"

	"github.com/fsociety-space/fsociety-core/internal/biz/domain"
	"github.com/fsociety-space/fsociety-core/internal/clock"
)

func newTestReplyPipeline(clk clock.Clock, wall *WallUsecase) *ReplyPipeline {
	return NewReplyPipeline(wall, newTestIdentity(clk), nopLog())
}

func TestReplyScreenRejectsHarshLanguage(t *testing.T) {
	clk := clock.NewFake()
	pipe := newTestReplyPipeline(clk, newTestWall(clk))

	ok, warning := pipe.Screen("you are being stupid")
	if ok {
		t.Fatal("harsh reply passed the screen")
	}
	if warning != "Could you say this in a gentler way?" {
		t.Errorf("warning = %q", warning)
	}

	if ok, _ := pipe.Screen("that sounds really hard, I'm with you"); !ok {
		t.Error("gentle reply rejected")
	}
}

func TestReplySubmitRejectedLeavesPostUntouched(t *testing.T) {
	clk := clock.NewFake()
	wall := NewWallUsecase(newMemStore(), []*domain.Post{seedPost("a", "")}, testRand(), clk, nopLog())
	pipe := newTestReplyPipeline(clk, wall)

	reply, warning := pipe.Submit(context.Background(), "a", "what a dumb take")
	if reply != nil {
		t.Error("rejected reply was returned")
	}
	if warning == "" {
		t.Error("rejection produced no warning")
	}
	if got := len(wall.ListPosts(domain.FilterAll)[0].Replies); got != 0 {
		t.Errorf("post has %d replies after rejection, want 0", got)
	}
}

func TestReplySubmitAppendsImmediately(t *testing.T) {
	clk := clock.NewFake()
	wall := NewWallUsecase(newMemStore(), []*domain.Post{seedPost("a", "")}, testRand(), clk, nopLog())
	pipe := newTestReplyPipeline(clk, wall)

	reply, warning := pipe.Submit(context.Background(), "a", "  you're not alone in this  ")
	if warning != "" {
		t.Fatalf("warning = %q, want none", warning)
	}
	if reply == nil {
		t.Fatal("accepted reply not returned")
	}
	if reply.Content != "you're not alone in this" {
		t.Errorf("content = %q, want trimmed text", reply.Content)
	}
	if reply.AuthorName == "" {
		t.Error("reply missing author name")
	}
	if got := len(wall.ListPosts(domain.FilterAll)[0].Replies); got != 1 {
		t.Errorf("post has %d replies, want 1", got)
	}
}

func TestReplySubmitEmptyIsInert(t *testing.T) {
	clk := clock.NewFake()
	wall := NewWallUsecase(newMemStore(), []*domain.Post{seedPost("a", "")}, testRand(), clk, nopLog())
	pipe := newTestReplyPipeline(clk, wall)

	if reply, warning := pipe.Submit(context.Background(), "a", "   "); reply != nil || warning != "" {
		t.Error("blank reply produced output")
	}
}

func TestReplyStarters(t *testing.T) {
	clk := clock.NewFake()
	pipe := newTestReplyPipeline(clk, newTestWall(clk))

	starters := pipe.Starters()
	if len(starters) == 0 {
		t.Fatal("no starters")
	}
	for _, s := range starters {
		if ok, _ := pipe.Screen(s); !ok {
			t.Errorf("starter %q fails its own screen", s)
		}
	}
}
