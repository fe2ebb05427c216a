package nlp

import (
	"testing"

	"github.com/alchemorsel/souschef/internal/domain/conversation"
	"github.com/alchemorsel/souschef/internal/domain/profile"
	"github.com/stretchr/testify/assert"
)

func estimate(t *testing.T, text string, intent conversation.Intent, prof *profile.UserProfile) int {
	t.Helper()
	return NewCountEstimator().Estimate(utter(text), intent, prof)
}

func TestExplicitCounts(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"show me 5 recipes for chicken", 5},
		{"give me 3 quick pasta ideas", 3},
		{"I want 2 dinner options", 2},
		{"list 20 recipes", 7},
		{"0 recipes please", 1},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, estimate(t, tt.text, conversation.Intent{}, nil))
		})
	}
}

func TestQuantityWords(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"just a recipe for tonight", 1},
		{"a couple of dinner suggestions would be great", 2},
		{"a few weeknight dishes", 3},
		{"give me lots of inspiration", 5},
		{"show me everything you have got", 7},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, estimate(t, tt.text, conversation.Intent{}, nil))
		})
	}
}

func TestSpecificityFallback(t *testing.T) {
	vague := estimate(t, "what should I cook", conversation.Intent{}, nil)
	assert.Equal(t, 7, vague)

	ingredientOnly := conversation.Intent{Entities: []conversation.Entity{
		{Type: conversation.EntityIngredient, Value: "chicken", Confidence: 0.8},
	}}
	assert.Equal(t, 5, estimate(t, "something with chicken", ingredientOnly, nil))

	prof := profile.Default("user-1")
	prof.DietaryRestrictions = []string{"gluten-free"}
	precise := conversation.Intent{Entities: []conversation.Entity{
		{Type: conversation.EntityIngredient, Value: "chicken", Confidence: 0.8},
		{Type: conversation.EntityCuisine, Value: "italian", Confidence: 0.8},
		{Type: conversation.EntityMealType, Value: "dinner", Confidence: 0.8},
	}}
	assert.Equal(t, 1, estimate(t, "quick italian chicken dinner", precise, prof))
}

func TestCountAlwaysInBounds(t *testing.T) {
	texts := []string{
		"", "recipes", "give me 999 recipes", "-5 ideas",
		"a single dish", "comprehensive list of everything",
	}
	for _, text := range texts {
		got := estimate(t, text, conversation.Intent{}, nil)
		assert.GreaterOrEqual(t, got, MinRecipeCount, "text %q", text)
		assert.LessOrEqual(t, got, MaxRecipeCount, "text %q", text)
	}
}
