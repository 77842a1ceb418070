package domain

// Mood is the closed set of mood labels the pipeline can produce.
type Mood string

const (
	MoodHappy       Mood = "happy"
	MoodPeaceful    Mood = "peaceful"
	MoodMelancholic Mood = "melancholic"
	MoodEnergetic   Mood = "energetic"
	MoodRomantic    Mood = "romantic"
	MoodNature      Mood = "nature"
	MoodMysterious  Mood = "mysterious"
	MoodNeutral     Mood = "neutral"
)

// Moods lists every label in declaration order. Tie-breaks in the signal
// extractors depend on this order, so keep it stable.
var Moods = []Mood{
	MoodHappy,
	MoodPeaceful,
	MoodMelancholic,
	MoodEnergetic,
	MoodRomantic,
	MoodNature,
	MoodMysterious,
	MoodNeutral,
}

// ParseMood maps a caller-supplied string onto a known label.
func ParseMood(s string) (Mood, bool) {
	for _, m := range Moods {
		if string(m) == s {
			return m, true
		}
	}
	return MoodNeutral, false
}

// SignalSource identifies which extractor produced a MoodSignal.
type SignalSource string

const (
	SourceText  SignalSource = "text"
	SourceColor SignalSource = "color"
	SourceScene SignalSource = "scene"
)

// MoodSignal is a single extractor's read of the image. Signals are built
// once per request and never mutated afterwards.
type MoodSignal struct {
	Source     SignalSource       `json:"source"`
	Mood       Mood               `json:"mood"`
	Confidence float64            `json:"confidence"`
	Detail     map[string]float64 `json:"detail,omitempty"`
	Matched    []string           `json:"matched,omitempty"`
}

// FusedMood combines the three per-source signals into one classification.
type FusedMood struct {
	Mood       Mood             `json:"mood"`
	Confidence float64          `json:"confidence"`
	Candidates map[Mood]float64 `json:"candidates,omitempty"`
	Text       MoodSignal       `json:"text"`
	Color      MoodSignal       `json:"color"`
	Scene      MoodSignal       `json:"scene"`
}
