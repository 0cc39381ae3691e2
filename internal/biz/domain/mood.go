package domain

// MoodStats is the ambient-mood breakdown shown on the dashboard (percentages)
type MoodStats struct {
	Overthinking int `json:"overthinking"`
	Numb         int `json:"numb"`
	Angry        int `json:"angry"`
	Calm         int `json:"calm"`
	Sarcastic    int `json:"sarcastic"`
}

// NoiseLevel is the mood picked on the landing screen
type NoiseLevel string

const (
	NoiseQuiet     NoiseLevel = "quiet"
	NoiseLoud      NoiseLevel = "loud"
	NoiseScreaming NoiseLevel = "screaming"
	NoiseNumb      NoiseLevel = "numb"
)
