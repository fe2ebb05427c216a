package nlp

import (
	"regexp"
	"strconv"

	"github.com/alchemorsel/souschef/internal/domain/conversation"
	"github.com/alchemorsel/souschef/internal/domain/profile"
)

// Recipe-count bounds. A highly specific ask deserves one precise answer;
// a vague ask deserves an exploratory spread.
const (
	MinRecipeCount = 1
	MaxRecipeCount = 7
)

// Allows a few qualifier words between the number and the noun, as in
// "3 quick pasta ideas".
var explicitCountPattern = regexp.MustCompile(`(?i)\b(\d+)\s+(?:[\p{L}-]+\s+){0,3}?(?:recipes?|options?|ideas?|variations?|suggestions?)\b`)

// Ordered so multi-word phrases never shadow shorter ones.
var quantityWords = []struct {
	pattern *regexp.Regexp
	count   int
}{
	{regexp.MustCompile(`(?i)\b(a|one|single)\s+(recipe|option|idea|dish)\b`), 1},
	{regexp.MustCompile(`(?i)\b(couple|two|pair)\b`), 2},
	{regexp.MustCompile(`(?i)\b(few|several|some)\b`), 3},
	{regexp.MustCompile(`(?i)\b(many|lots|variety)\b`), 5},
	{regexp.MustCompile(`(?i)\b(all|everything|comprehensive)\b`), 7},
}

// CountEstimator converts message specificity into a bounded recipe count.
type CountEstimator struct{}

// NewCountEstimator creates a count estimator.
func NewCountEstimator() *CountEstimator {
	return &CountEstimator{}
}

// Estimate returns how many recipe variants to produce, always in [1, 7].
// Explicit counts win, then quantity words, then a specificity score.
func (ce *CountEstimator) Estimate(utt conversation.Utterance, intent conversation.Intent, prof *profile.UserProfile) int {
	text := utt.Normalized()

	if m := explicitCountPattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return clampCount(n)
		}
	}

	for _, qw := range quantityWords {
		if qw.pattern.MatchString(text) {
			return qw.count
		}
	}

	return countFromSpecificity(ce.specificity(text, intent, prof))
}

// specificity accumulates signals about how precise the ask is, capped to [0, 1].
func (ce *CountEstimator) specificity(text string, intent conversation.Intent, prof *profile.UserProfile) float64 {
	score := 0.0
	if intent.HasEntity(conversation.EntityIngredient) {
		score += 0.3
	}
	if intent.HasEntity(conversation.EntityCuisine) {
		score += 0.2
	}
	if intent.HasEntity(conversation.EntityMealType) {
		score += 0.2
	}
	if urgencyKeywords.MatchString(text) {
		score += 0.2
	}
	if prof != nil && len(prof.ActiveRestrictions()) > 0 {
		score += 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func countFromSpecificity(s float64) int {
	switch {
	case s > 0.8:
		return 1
	case s > 0.6:
		return 2
	case s > 0.4:
		return 3
	case s > 0.2:
		return 5
	default:
		return 7
	}
}

func clampCount(n int) int {
	if n < MinRecipeCount {
		return MinRecipeCount
	}
	if n > MaxRecipeCount {
		return MaxRecipeCount
	}
	return n
}
