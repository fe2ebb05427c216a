package recipe

// MatchLevel is a categorical mood/occasion match label.
type MatchLevel string

const (
	MatchHigh   MatchLevel = "high"
	MatchMedium MatchLevel = "medium"
)

// Score returns the numeric value of the label used in the composite
// relevance formula.
func (m MatchLevel) Score() float64 {
	if m == MatchHigh {
		return 10
	}
	return 5
}

// SmartMetadata is derived scoring attached to a recipe. It is recomputed
// every time a recipe is scored and never persisted independently.
type SmartMetadata struct {
	DifficultyScore int        `json:"difficulty_score"`
	TimeScore       int        `json:"time_score"`
	SkillMatch      string     `json:"skill_match"`
	MoodMatch       MatchLevel `json:"mood_match"`
	OccasionMatch   MatchLevel `json:"occasion_match"`
	LearningValue   int        `json:"learning_value"`
	ConfidenceBoost int        `json:"confidence_boost"`
	EmotionalAppeal []string   `json:"emotional_appeal,omitempty"`
	Tips            []string   `json:"tips,omitempty"`
	Variations      []string   `json:"variations,omitempty"`
	Troubleshooting []string   `json:"troubleshooting,omitempty"`
	Relevance       float64    `json:"relevance"`
}

// Composite relevance weights. Lower difficulty and time scores increase
// relevance, hence the (10 - score) inversions at the call site.
const (
	WeightConfidenceBoost = 0.30
	WeightDifficulty      = 0.20
	WeightLearning        = 0.20
	WeightTime            = 0.15
	WeightMood            = 0.10
	WeightOccasion        = 0.05
)

// CompositeRelevance computes the fixed weighted sum used for ranking.
func (m *SmartMetadata) CompositeRelevance() float64 {
	return float64(m.ConfidenceBoost)*WeightConfidenceBoost +
		float64(10-m.DifficultyScore)*WeightDifficulty +
		float64(m.LearningValue)*WeightLearning +
		float64(10-m.TimeScore)*WeightTime +
		m.MoodMatch.Score()*WeightMood +
		m.OccasionMatch.Score()*WeightOccasion
}

// ClampAxis bounds a per-axis score to [1, 10].
func ClampAxis(v int) int {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}
