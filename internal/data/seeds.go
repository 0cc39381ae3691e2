package data

import (
	"time"

	"github.com/fsociety-space/fsociety-core/internal/biz/domain"
	"github.com/fsociety-space/fsociety-core/internal/clock"
)

// Seed fixtures shown on a fresh session. Seed posts carry an author
// name but no author ID, so no identity can ever edit them.

// SeedPosts returns the initial wall, newest first
func SeedPosts(clk clock.Clock) []*domain.Post {
	now := clk.Now()
	return []*domain.Post{
		{
			ID:         "seed-1",
			Content:    "I'm just really tired of trying so hard.",
			CreatedAt:  now,
			AuthorName: "TiredStar",
			Echoes:     domain.Echoes{Feel: 12, Chaos: 4, Alone: 8},
			Replies: []domain.Reply{
				{ID: "seed-r1", Content: "Rest is productive too.", CreatedAt: now, AuthorName: "SoftMoon"},
			},
		},
		{
			ID:         "seed-2",
			Content:    "It feels like everyone else has the manual but me.",
			CreatedAt:  now.Add(-100 * time.Second),
			AuthorName: "BluePetal",
			Echoes:     domain.Echoes{Feel: 45, Chaos: 10, Alone: 22},
			Replies: []domain.Reply{
				{ID: "seed-r2", Content: "I feel lost often too.", CreatedAt: now, AuthorName: "QuietFox"},
				{ID: "seed-r3", Content: "There is no manual, we're all improvising.", CreatedAt: now, AuthorName: "StillRiver"},
			},
		},
		{
			ID:         "seed-3",
			Content:    "I don't know if I'm doing this right.",
			CreatedAt:  now.Add(-200 * time.Second),
			AuthorName: "FaintCloud",
			Echoes:     domain.Echoes{Feel: 5, Chaos: 2, Alone: 15},
		},
		{
			ID:         "seed-4",
			Content:    "Everything is just... heavy today.",
			CreatedAt:  now.Add(-300 * time.Second),
			AuthorName: "GrayRain",
			Echoes:     domain.Echoes{Feel: 30, Chaos: 40, Alone: 2},
			Replies: []domain.Reply{
				{ID: "seed-r4", Content: "I hear you.", CreatedAt: now, AuthorName: "GentleWind"},
				{ID: "seed-r5", Content: "Putting the weight down for a moment with you.", CreatedAt: now, AuthorName: "SoftMoon"},
			},
		},
	}
}

// SeedWins returns the initial wins list
func SeedWins() []domain.Win {
	return []domain.Win{
		{ID: "seed-w1", Content: "Got out of bed."},
		{ID: "seed-w2", Content: "Pausing to breathe."},
		{ID: "seed-w3", Content: "Being gentle with myself."},
		{ID: "seed-w4", Content: "Survived the morning."},
	}
}

// SeedMoods returns the ambient mood fixture
func SeedMoods() domain.MoodStats {
	return domain.MoodStats{
		Overthinking: 35,
		Numb:         20,
		Angry:        15,
		Calm:         10,
		Sarcastic:    20,
	}
}

// SeedPulseCount is the initial presence counter
const SeedPulseCount = 428
