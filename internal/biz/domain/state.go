package domain

// SubmissionState is the per-draft state of a submission pipeline instance
type SubmissionState string

const (
	SubmissionIdle      SubmissionState = "idle"
	SubmissionAnalyzing SubmissionState = "analyzing"
	SubmissionUnsafe    SubmissionState = "unsafe"
	SubmissionPosted    SubmissionState = "posted"
)

// SilencePhase is the display phase of the feed-wide silence mode
type SilencePhase string

const (
	SilenceIdle      SilencePhase = "idle"
	SilenceBreathing SilencePhase = "breathing"
	SilenceChoices   SilencePhase = "choices"
)

// WallFilter selects which posts a wall listing returns
type WallFilter string

const (
	FilterAll       WallFilter = "all"
	FilterSavedOnly WallFilter = "saved"
)
