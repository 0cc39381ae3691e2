package domain

import "time"

// EchoKind is one of the three fixed reaction counters on a post
type EchoKind string

const (
	EchoFeel  EchoKind = "feel"
	EchoChaos EchoKind = "chaos"
	EchoAlone EchoKind = "alone"
)

// IsValid checks if the kind is one of the known counters
func (k EchoKind) IsValid() bool {
	return k == EchoFeel || k == EchoChaos || k == EchoAlone
}

// Echoes holds the reaction counters. Counters only ever increase.
type Echoes struct {
	Feel  int `json:"feel"`
	Chaos int `json:"chaos"`
	Alone int `json:"alone"`
}

// Add increments the counter for the given kind
func (e *Echoes) Add(kind EchoKind) {
	switch kind {
	case EchoFeel:
		e.Feel++
	case EchoChaos:
		e.Chaos++
	case EchoAlone:
		e.Alone++
	}
}

// Count returns the counter for the given kind
func (e Echoes) Count(kind EchoKind) int {
	switch kind {
	case EchoFeel:
		return e.Feel
	case EchoChaos:
		return e.Chaos
	case EchoAlone:
		return e.Alone
	}
	return 0
}

// Reply represents a threaded reply entity. Immutable once created.
type Reply struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"timestamp"`
	AuthorName string    `json:"authorName,omitempty"`
	AuthorID   string    `json:"authorId,omitempty"`
}

// Post represents a published wall post
type Post struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"timestamp"`
	AuthorName string    `json:"authorName,omitempty"`
	AuthorID   string    `json:"authorId,omitempty"`
	Echoes     Echoes    `json:"echoes"`
	Replies    []Reply   `json:"replies"`
}

// DisplayTruncateAt is the display cutoff for long posts. Storage always
// keeps the full content; truncation is a presentation concern.
const DisplayTruncateAt = 200

// IsLong checks if the post content exceeds the display cutoff
func (p *Post) IsLong() bool {
	return len([]rune(p.Content)) > DisplayTruncateAt
}

// DisplayContent returns the content as it should be rendered: the full
// text when short or expanded, otherwise a truncated prefix with a
// continuation marker.
func (p *Post) DisplayContent(expanded bool) string {
	if !p.IsLong() || expanded {
		return p.Content
	}
	return string([]rune(p.Content)[:DisplayTruncateAt]) + "..."
}

// EditableBy checks if the identity may edit this post. Seed and system
// posts carry no author ID and are editable by no one.
func (p *Post) EditableBy(identity Identity) bool {
	return identity.Owns(p.AuthorID)
}

// LatestReplies returns the newest n replies in original order
func (p *Post) LatestReplies(n int) []Reply {
	if len(p.Replies) <= n {
		return p.Replies
	}
	return p.Replies[len(p.Replies)-n:]
}
