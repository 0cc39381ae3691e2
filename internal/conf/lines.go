package conf

// Fixed text sets used across the feed. These are product copy, kept in
// one place the same way prompt text is.

// GentleLines are the ambient messages the scheduler picks from
var GentleLines = []string{
	"You don't need to apologize for how you feel.",
	"Take all the time you need.",
	"There is no deadline for healing.",
	"It's okay to not be okay right now.",
	"You don't have to impress anyone.",
	"Rest your eyes. I'm here.",
}

// ChaosLines are the fallbacks for generated "chaos" mode lines
var ChaosLines = []string{
	"You don't have to be productive right now.",
	"It makes sense that you're exhausted.",
	"You are allowed to take up space.",
	"Your pain is valid, even if it's quiet.",
	"You don't have to fix everything today.",
	"I hear you.",
}

// ReliefLines are the fallbacks for generated "relief" mode lines
var ReliefLines = []string{
	"Let's just sit here for a minute.",
	"The world can wait outside.",
	"You don't have to perform here.",
	"Your best is enough, whatever that looks like today.",
	"It's okay to put the heavy things down.",
	"Breathe. I'm with you.",
}

// ReflectiveResponses acknowledge a published post
var ReflectiveResponses = []string{
	"That sounds exhausting.",
	"It makes sense you feel that way.",
	"It's heavy to carry that alone.",
	"Thank you for trusting us with that.",
	"I hear how hard that is.",
	"You're not wrong for feeling this.",
}

// GentlePrompts are the optional follow-ups after an acknowledgment
var GentlePrompts = []string{
	"Do you want to let out a little more?",
	"What part of this feels heaviest?",
	"Is there a knot you want to untie?",
	"If you could say one more thing, what would it be?",
}

// ReplyStarters are suggested openings for composing a reply
var ReplyStarters = []string{
	"I hear you.",
	"That sounds really heavy.",
	"You're not alone in this.",
	"I don't have advice, but I'm here.",
	"It makes sense to feel this.",
	"Sending quiet support.",
}

// NightMessages are shown during night-mode hours
var NightMessages = []string{
	"The night is a safe place to rest.",
	"You've carried enough for today.",
	"Let the quiet hold you for a bit.",
	"It's okay to stop thinking now.",
}

// IDAdjectives and IDNouns are the identity vocabulary
var IDAdjectives = []string{
	"Quiet", "Soft", "Still", "Blue", "Tired",
	"Gentle", "Faint", "Pale", "Lost", "Calm",
	"Heavy", "Deep", "Slow", "Warm", "Cold",
}

var IDNouns = []string{
	"Fox", "Moon", "River", "Petal", "Star",
	"Cloud", "Rain", "Echo", "Ghost", "Wind",
	"Shadow", "Fern", "Moss", "Stone", "Wave",
}
