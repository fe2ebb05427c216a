package nlp

import (
	"testing"
	"time"

	"github.com/alchemorsel/souschef/internal/domain/conversation"
	"github.com/alchemorsel/souschef/internal/domain/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// outsideMealWindow pins classification to mid-afternoon so the meal-window
// boost never fires unless a test asks for it.
func outsideMealWindow() time.Time {
	return time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
}

func insideMealWindow() time.Time {
	return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
}

func newTestExtractor(now func() time.Time) *Extractor {
	return NewExtractor(zap.NewNop(), WithClock(now))
}

func utter(text string) conversation.Utterance {
	return conversation.NewUtterance(text, "user-1", "session-1")
}

func TestClassifyRecipeRequest(t *testing.T) {
	e := newTestExtractor(outsideMealWindow)

	intent := e.Classify(utter("give me 3 quick pasta ideas"), Context{})

	assert.Equal(t, conversation.IntentRecipeRequest, intent.Type)
	assert.Equal(t, 3, intent.RecipeCount)
	assert.Contains(t, intent.Requirements, "quick preparation")
	assert.Contains(t, intent.Requirements, "include pasta")

	require.Len(t, intent.Entities, 1)
	assert.Equal(t, conversation.EntityIngredient, intent.Entities[0].Type)
	assert.Equal(t, "pasta", intent.Entities[0].Value)
	assert.InDelta(t, 0.8, intent.Entities[0].Confidence, 1e-9)
}

func TestClassifyTroubleshooting(t *testing.T) {
	e := newTestExtractor(outsideMealWindow)

	intent := e.Classify(utter("my sauce is too salty, what went wrong"), Context{})

	assert.Equal(t, conversation.IntentTroubleshooting, intent.Type)
}

func TestClassifyTechniqueHelp(t *testing.T) {
	e := newTestExtractor(outsideMealWindow)

	intent := e.Classify(utter("teach me proper knife skills"), Context{})

	assert.Equal(t, conversation.IntentTechniqueHelp, intent.Type)
}

func TestClassifyTieResolvesToRecipeRequest(t *testing.T) {
	e := newTestExtractor(outsideMealWindow)

	// "healthy dinner" scores one pattern each for recipe_request and
	// nutritional_advice.
	intent := e.Classify(utter("healthy dinner"), Context{})

	assert.Equal(t, conversation.IntentRecipeRequest, intent.Type)
}

func TestHealthGoalsBreakTheTie(t *testing.T) {
	e := newTestExtractor(outsideMealWindow)
	prof := profile.Default("user-1")
	prof.HealthGoals = []string{"lose weight"}

	intent := e.Classify(utter("healthy dinner"), Context{Profile: prof})

	assert.Equal(t, conversation.IntentNutritionalAdvice, intent.Type)
}

func TestSessionIngredientsBoostIngredientBased(t *testing.T) {
	e := newTestExtractor(outsideMealWindow)
	mem := conversation.NewMemory()
	mem.Short.RememberIngredients("chicken", "rice")

	intent := e.Classify(utter("anything else tonight"), Context{Memory: mem})

	assert.Equal(t, conversation.IntentIngredientBased, intent.Type)
}

func TestDietaryModificationWithRestrictions(t *testing.T) {
	e := newTestExtractor(outsideMealWindow)
	prof := profile.Default("user-1")
	prof.DietaryRestrictions = []string{"vegan"}

	intent := e.Classify(utter("can you replace the eggs in this cake"), Context{Profile: prof})

	assert.Equal(t, conversation.IntentDietaryModification, intent.Type)
}

func TestMealWindowBoostsRecipeRequest(t *testing.T) {
	lunch := newTestExtractor(insideMealWindow)

	// Bare nutrition mention normally wins 1 to 0; the lunchtime boost of
	// 0.5 is not enough to overtake it, but it does tip truly ambiguous text.
	intent := lunch.Classify(utter("something with protein please"), Context{})
	assert.Equal(t, conversation.IntentNutritionalAdvice, intent.Type)

	intent = lunch.Classify(utter("I am hungry"), Context{})
	assert.Equal(t, conversation.IntentRecipeRequest, intent.Type)
}

func TestConfidenceBounds(t *testing.T) {
	e := newTestExtractor(outsideMealWindow)

	short := e.Classify(utter("food"), Context{})
	assert.GreaterOrEqual(t, short.Confidence, 0.1)

	rich := e.Classify(utter("recommend a quick healthy italian chicken pasta dinner recipe I can cook and make tonight"), Context{})
	assert.LessOrEqual(t, rich.Confidence, 1.0)
	assert.Greater(t, rich.Confidence, short.Confidence)
}

func TestClassifyIsDeterministic(t *testing.T) {
	e := newTestExtractor(outsideMealWindow)
	utt := utter("what can I make with leftover rice and eggs")

	first := e.Classify(utt, Context{})
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, e.Classify(utt, Context{}))
	}
}

func TestEntityRequirements(t *testing.T) {
	e := newTestExtractor(outsideMealWindow)

	intent := e.Classify(utter("a vegan thai dinner with tofu, grilled please"), Context{})

	assert.Contains(t, intent.Requirements, "include tofu")
	assert.Contains(t, intent.Requirements, "thai cuisine")
	assert.Contains(t, intent.Requirements, "suitable for dinner")
	assert.Contains(t, intent.Requirements, "vegan friendly")
}
