// Package nlp implements the entity and intent extraction stage of the
// pipeline: declarative pattern tables scored against the normalized
// utterance, plus the recipe-count estimator.
package nlp

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alchemorsel/souschef/internal/domain/conversation"
	"github.com/alchemorsel/souschef/internal/domain/profile"
	"go.uber.org/zap"
)

// Entity extraction reports a fixed confidence per match.
const entityConfidence = 0.8

// Context carries the state read before classification: session memory and
// the standing profile. Either may be nil.
type Context struct {
	Memory  *conversation.Memory
	Profile *profile.UserProfile
}

// Extractor classifies utterances into intents and extracts typed entities.
type Extractor struct {
	logger *zap.Logger
	now    func() time.Time
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithClock overrides the time source used for meal-window adjustments.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) { e.now = now }
}

// NewExtractor creates an extractor.
func NewExtractor(logger *zap.Logger, opts ...Option) *Extractor {
	e := &Extractor{
		logger: logger.Named("extractor"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Classify scores every intent's pattern table against the utterance,
// applies context adjustments and returns the winning intent with entities,
// requirements and a recipe-count preference attached. It never fails: an
// utterance matching nothing yields recipe_request at baseline confidence.
func (e *Extractor) Classify(utt conversation.Utterance, ctx Context) conversation.Intent {
	text := utt.Normalized()

	scores := make(map[conversation.IntentType]float64, len(intentPatterns))
	for intentType, patterns := range intentPatterns {
		scores[intentType] = float64(countMatches(patterns, text))
	}
	e.applyContextAdjustments(scores, text, ctx)

	winner := pickWinner(scores)
	entities := extractEntities(text)

	intent := conversation.Intent{
		Type:         winner,
		Confidence:   e.confidence(scores[winner], len(entities), utt),
		Entities:     entities,
		Requirements: buildRequirements(text, entities),
	}
	intent.RecipeCount = NewCountEstimator().Estimate(utt, intent, ctx.Profile)

	e.logger.Debug("utterance classified",
		zap.String("intent", string(intent.Type)),
		zap.Float64("confidence", intent.Confidence),
		zap.Int("entities", len(intent.Entities)))

	return intent
}

// applyContextAdjustments boosts intent scores from session and profile state.
func (e *Extractor) applyContextAdjustments(scores map[conversation.IntentType]float64, text string, ctx Context) {
	if inMealWindow(e.now()) {
		scores[conversation.IntentRecipeRequest] += 0.5
	}
	if ctx.Memory != nil && len(ctx.Memory.Short.RecentIngredients) > 0 {
		scores[conversation.IntentIngredientBased]++
	}
	if ctx.Profile != nil {
		if ctx.Profile.HasHealthGoals() && healthKeywords.MatchString(text) {
			scores[conversation.IntentNutritionalAdvice]++
		}
		if len(ctx.Profile.ActiveRestrictions()) > 0 && modificationKeywords.MatchString(text) {
			scores[conversation.IntentDietaryModification]++
		}
	}
}

// confidence grows with pattern and entity matches and shrinks for very
// short utterances, clamped to [0.1, 1.0].
func (e *Extractor) confidence(score float64, entityCount int, utt conversation.Utterance) float64 {
	c := 0.5 + 0.1*score + 0.05*float64(entityCount)
	if utt.WordCount() < 3 {
		c -= 0.2
	}
	return conversation.ClampConfidence(c)
}

// pickWinner resolves the highest-scoring intent; ties resolve to
// recipe_request, the default and most common path.
func pickWinner(scores map[conversation.IntentType]float64) conversation.IntentType {
	best := scores[conversation.IntentRecipeRequest]
	winner := conversation.IntentRecipeRequest

	// Deterministic iteration so equal scores always resolve the same way.
	ordered := make([]string, 0, len(scores))
	for intentType := range scores {
		ordered = append(ordered, string(intentType))
	}
	sort.Strings(ordered)

	for _, name := range ordered {
		intentType := conversation.IntentType(name)
		if scores[intentType] > best {
			best = scores[intentType]
			winner = intentType
		}
	}
	return winner
}

// extractEntities runs every entity-type pattern over the text and collects
// all matches with a fixed confidence. Entity types are not mutually
// exclusive.
func extractEntities(text string) []conversation.Entity {
	var entities []conversation.Entity
	for _, entityType := range []conversation.EntityType{
		conversation.EntityIngredient,
		conversation.EntityCuisine,
		conversation.EntityMealType,
		conversation.EntityCookingMethod,
		conversation.EntityDietaryRestriction,
	} {
		seen := make(map[string]bool)
		for _, pattern := range entityPatterns[entityType] {
			for _, match := range pattern.FindAllString(text, -1) {
				value := strings.ToLower(match)
				if seen[value] {
					continue
				}
				seen[value] = true
				entities = append(entities, conversation.Entity{
					Type:       entityType,
					Value:      value,
					Confidence: entityConfidence,
				})
			}
		}
	}
	return entities
}

// buildRequirements appends free-text requirements used downstream for
// prompt construction: urgency, difficulty, health and method signals plus
// one requirement per extracted entity.
func buildRequirements(text string, entities []conversation.Entity) []string {
	var reqs []string
	if urgencyKeywords.MatchString(text) {
		reqs = append(reqs, "quick preparation")
	}
	if easyKeywords.MatchString(text) {
		reqs = append(reqs, "easy preparation")
	}
	if hardKeywords.MatchString(text) {
		reqs = append(reqs, "advanced techniques welcome")
	}
	if healthKeywords.MatchString(text) {
		reqs = append(reqs, "health-conscious")
	}

	for _, e := range entities {
		switch e.Type {
		case conversation.EntityIngredient:
			reqs = append(reqs, fmt.Sprintf("include %s", e.Value))
		case conversation.EntityCuisine:
			reqs = append(reqs, fmt.Sprintf("%s cuisine", e.Value))
		case conversation.EntityMealType:
			reqs = append(reqs, fmt.Sprintf("suitable for %s", e.Value))
		case conversation.EntityCookingMethod:
			reqs = append(reqs, fmt.Sprintf("use %s method", e.Value))
		case conversation.EntityDietaryRestriction:
			reqs = append(reqs, fmt.Sprintf("%s friendly", e.Value))
		}
	}
	return reqs
}

// inMealWindow reports whether local time falls in a meal-planning window
// (11:00-13:00 or 17:00-20:00), when recipe requests dominate.
func inMealWindow(t time.Time) bool {
	h := t.Hour()
	return (h >= 11 && h < 13) || (h >= 17 && h < 20)
}
