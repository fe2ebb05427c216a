package enhance

import (
	"testing"

	"github.com/alchemorsel/souschef/internal/domain/recipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateNutritionKnownIngredients(t *testing.T) {
	r := recipe.New("Chicken and Rice", "")
	r.Ingredients = []recipe.Ingredient{
		{Name: "chicken breast", Amount: 500, Unit: "g"},
		{Name: "rice", Amount: 200, Unit: "g"},
	}
	r.Servings = 2

	info := EstimateNutrition(r)

	require.NotNil(t, info)
	assert.Equal(t, (230+200)/2, info.Calories)
	assert.InDelta(t, (27.0+4.0)/2, info.Protein, 0.05)
}

func TestEstimateNutritionUnknownIngredientUsesDefault(t *testing.T) {
	r := recipe.New("Mystery Bowl", "")
	r.Ingredients = []recipe.Ingredient{{Name: "dragonfruit"}}
	r.Servings = 1

	info := EstimateNutrition(r)

	assert.Equal(t, 60, info.Calories)
	assert.InDelta(t, 2.0, info.Protein, 1e-9)
}

func TestEstimateNutritionZeroServings(t *testing.T) {
	r := recipe.New("Snack", "")
	r.Ingredients = []recipe.Ingredient{{Name: "avocado"}}
	r.Servings = 0

	info := EstimateNutrition(r)

	// Treated as a single serving instead of dividing by zero.
	assert.Equal(t, 160, info.Calories)
}

func TestLookupOrderIsDeterministic(t *testing.T) {
	// "cream cheese" matches two keywords; the fixed order always resolves
	// it the same way.
	first := lookupMacro("cream cheese")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, lookupMacro("cream cheese"))
	}
	assert.Equal(t, ingredientMacros["cheese"], first)
}
