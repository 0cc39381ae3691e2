package domain

import (
	"encoding/json"
	"sort"
)

// SavedSet is the set of post IDs bookmarked by the current identity.
// It is persisted as a JSON array of IDs so it survives across sessions
// even though the posts themselves are ephemeral.
type SavedSet map[string]struct{}

// Has checks membership
func (s SavedSet) Has(postID string) bool {
	_, ok := s[postID]
	return ok
}

// Toggle flips membership and reports the new state
func (s SavedSet) Toggle(postID string) bool {
	if s.Has(postID) {
		delete(s, postID)
		return false
	}
	s[postID] = struct{}{}
	return true
}

// IDs returns the members in a stable order
func (s SavedSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// MarshalJSON encodes the set as a sorted JSON array
func (s SavedSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IDs())
}

// UnmarshalJSON decodes a JSON array of IDs
func (s *SavedSet) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	set := make(SavedSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	*s = set
	return nil
}
