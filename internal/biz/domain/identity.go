package domain

import "time"

// Identity represents the anonymous per-device identity
type Identity struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"name"`
	CreatedAt   time.Time `json:"joinedAt"`
}

// IsZero checks if the identity has not been generated yet
func (i Identity) IsZero() bool {
	return i.ID == ""
}

// Owns checks if the identity owns a post with the given author ID.
// Posts without an author (seed content) are owned by no one.
func (i Identity) Owns(authorID string) bool {
	return authorID != "" && i.ID == authorID
}
