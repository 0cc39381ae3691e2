package domain

// Win represents a small positive-affirmation entry
type Win struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// WinMaxLen is the submission cap for a win
const WinMaxLen = 40

// WinVisibleCount is how many recent wins are shown; older ones stay stored
const WinVisibleCount = 8
