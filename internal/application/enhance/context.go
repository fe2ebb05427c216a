package enhance

import (
	"regexp"

	"github.com/alchemorsel/souschef/internal/domain/conversation"
	"github.com/alchemorsel/souschef/internal/domain/profile"
)

// Context is everything the scorer reads besides the recipe itself. It is
// an explicit input: scoring the same recipe with the same context always
// yields the same metadata.
type Context struct {
	Profile        *profile.UserProfile
	Memory         *conversation.Memory
	Mood           string
	Occasion       string
	EmotionalState string
	LearningGoal   bool
	Interests      []string
}

// Requested moods and occasions.
const (
	MoodComfort      = "comfort"
	MoodAdventure    = "adventure"
	MoodHealthy      = "healthy"
	MoodIndulgent    = "indulgent"
	MoodExperimental = "experimental"

	OccasionWeekday = "weekday"
	OccasionWeekend = "weekend"
	OccasionSpecial = "special"

	EmotionFrustrated = "frustrated"
)

// moodKeywords map each mood to the words that request it and that signal
// it in a recipe's title or description.
var moodKeywords = map[string][]string{
	MoodComfort:      {"comfort", "cozy", "hearty", "warming", "classic", "homestyle", "creamy", "rich"},
	MoodAdventure:    {"adventure", "adventurous", "exotic", "bold", "new", "different", "exciting", "fusion"},
	MoodHealthy:      {"healthy", "light", "fresh", "clean", "nutritious", "lean", "wholesome", "vibrant"},
	MoodIndulgent:    {"indulgent", "decadent", "treat", "luxurious", "buttery", "chocolate", "crispy"},
	MoodExperimental: {"experimental", "unusual", "creative", "innovative", "unexpected", "twist"},
}

var occasionKeywords = map[string][]string{
	OccasionWeekday: {"weeknight", "weekday", "quick", "easy", "simple", "busy", "everyday"},
	OccasionWeekend: {"weekend", "leisurely", "project", "slow", "sunday", "brunch"},
	OccasionSpecial: {"special", "celebration", "holiday", "impressive", "elegant", "festive", "dinner party"},
}

var frustrationKeywords = regexp.MustCompile(`(?i)\b(frustrat\w*|annoy\w*|give up|fail(ed|ing)?|ruined|mess(ed)? up|ugh|can'?t seem|tired of)\b`)
var learningKeywords = regexp.MustCompile(`(?i)\b(learn|teach|improve|practice|master|get better|skill)\b`)

// DeriveContext builds a scoring context from the utterance and the state
// read before the turn.
func DeriveContext(utt conversation.Utterance, prof *profile.UserProfile, mem *conversation.Memory) Context {
	text := utt.Normalized()

	ctx := Context{
		Profile:      prof,
		Memory:       mem,
		Mood:         detectByKeywords(text, moodKeywords, []string{MoodComfort, MoodAdventure, MoodHealthy, MoodIndulgent, MoodExperimental}),
		Occasion:     detectByKeywords(text, occasionKeywords, []string{OccasionWeekday, OccasionWeekend, OccasionSpecial}),
		LearningGoal: learningKeywords.MatchString(text),
	}
	if frustrationKeywords.MatchString(text) {
		ctx.EmotionalState = EmotionFrustrated
	}
	if mem != nil {
		ctx.Interests = mem.Long.FavoriteIngredients()
	}
	return ctx
}

// detectByKeywords returns the first label (in the given fixed order) whose
// keyword list matches the text, or empty.
func detectByKeywords(text string, table map[string][]string, order []string) string {
	for _, label := range order {
		for _, kw := range table[label] {
			if containsWord(text, kw) {
				return label
			}
		}
	}
	return ""
}
