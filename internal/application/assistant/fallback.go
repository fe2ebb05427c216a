package assistant

import (
	"github.com/alchemorsel/souschef/internal/domain/recipe"
	"github.com/google/uuid"
)

// fallbackRecipes returns fresh copies of the fixed degradation set served
// when the oracle is unavailable. Each copy gets its own ID so callers can
// cache and reference them independently.
func fallbackRecipes(count int) []*recipe.Recipe {
	if count < 1 {
		count = 1
	}
	if count > len(fallbackSet) {
		count = len(fallbackSet)
	}
	recipes := make([]*recipe.Recipe, 0, count)
	for i := 0; i < count; i++ {
		clone := fallbackSet[i]
		clone.ID = uuid.New()
		clone.Ingredients = append([]recipe.Ingredient{}, fallbackSet[i].Ingredients...)
		clone.Instructions = append([]string{}, fallbackSet[i].Instructions...)
		clone.Tags = append([]string{}, fallbackSet[i].Tags...)
		recipes = append(recipes, &clone)
	}
	return recipes
}

var fallbackSet = []recipe.Recipe{
	{
		Title:       "Classic Spaghetti Aglio e Olio",
		Description: "A simple weeknight pasta with garlic, olive oil and chili flakes.",
		Ingredients: []recipe.Ingredient{
			{Name: "spaghetti", Amount: 400, Unit: "g"},
			{Name: "garlic", Amount: 4, Unit: "cloves"},
			{Name: "olive oil", Amount: 60, Unit: "ml"},
			{Name: "chili flakes", Amount: 1, Unit: "tsp"},
			{Name: "parsley", Amount: 1, Unit: "handful"},
		},
		Instructions: []string{
			"Cook the spaghetti in well-salted water until al dente.",
			"Gently warm sliced garlic in olive oil until golden.",
			"Add chili flakes, then toss in the drained pasta with a splash of pasta water.",
			"Finish with chopped parsley and serve immediately.",
		},
		CookTime:   "20 minutes",
		Servings:   4,
		Difficulty: "easy",
		Tags:       []string{"italian", "pasta", "quick"},
		ImageURL:   "https://images.souschef.dev/fallback/aglio-e-olio.jpg",
	},
	{
		Title:       "Vegetable Stir-Fry with Rice",
		Description: "Fresh mixed vegetables tossed in a hot wok with a soy-ginger sauce.",
		Ingredients: []recipe.Ingredient{
			{Name: "rice", Amount: 300, Unit: "g"},
			{Name: "broccoli", Amount: 1, Unit: "head"},
			{Name: "carrot", Amount: 2, Unit: "pieces"},
			{Name: "bell pepper", Amount: 1, Unit: "piece"},
			{Name: "soy sauce", Amount: 3, Unit: "tbsp"},
			{Name: "ginger", Amount: 1, Unit: "tbsp"},
		},
		Instructions: []string{
			"Cook the rice and keep it warm.",
			"Stir fry the vegetables over high heat until crisp-tender.",
			"Add soy sauce and grated ginger, toss for one more minute.",
			"Serve the vegetables over the rice.",
		},
		CookTime:   "25 minutes",
		Servings:   3,
		Difficulty: "easy",
		Tags:       []string{"chinese", "vegetarian", "quick"},
		ImageURL:   "https://images.souschef.dev/fallback/vegetable-stir-fry.jpg",
	},
	{
		Title:       "Hearty Lentil Soup",
		Description: "A warming one-pot soup of lentils, tomato and aromatic vegetables.",
		Ingredients: []recipe.Ingredient{
			{Name: "lentils", Amount: 250, Unit: "g"},
			{Name: "onion", Amount: 1, Unit: "piece"},
			{Name: "carrot", Amount: 2, Unit: "pieces"},
			{Name: "tomato", Amount: 400, Unit: "g"},
			{Name: "vegetable stock", Amount: 1, Unit: "l"},
			{Name: "cumin", Amount: 1, Unit: "tsp"},
		},
		Instructions: []string{
			"Sauté the chopped onion and carrot until soft.",
			"Add cumin, lentils, tomato and stock.",
			"Simmer for 30 minutes until the lentils are tender.",
			"Season and serve with crusty bread.",
		},
		CookTime:   "45 minutes",
		Servings:   4,
		Difficulty: "easy",
		Tags:       []string{"vegan", "soup", "comfort"},
		ImageURL:   "https://images.souschef.dev/fallback/lentil-soup.jpg",
	},
	{
		Title:       "Sheet-Pan Roasted Chicken and Potatoes",
		Description: "Crispy-skinned chicken thighs roasted alongside herbed potatoes.",
		Ingredients: []recipe.Ingredient{
			{Name: "chicken thighs", Amount: 6, Unit: "pieces"},
			{Name: "potato", Amount: 700, Unit: "g"},
			{Name: "olive oil", Amount: 3, Unit: "tbsp"},
			{Name: "rosemary", Amount: 2, Unit: "sprigs"},
			{Name: "lemon", Amount: 1, Unit: "piece"},
		},
		Instructions: []string{
			"Toss the potatoes with oil and rosemary on a sheet pan.",
			"Nestle in the seasoned chicken thighs skin side up.",
			"Roast at 220°C for 40 minutes until the skin is crisp.",
			"Squeeze lemon over everything before serving.",
		},
		CookTime:   "50 minutes",
		Servings:   4,
		Difficulty: "medium",
		Tags:       []string{"roast", "dinner", "comfort"},
		ImageURL:   "https://images.souschef.dev/fallback/sheet-pan-chicken.jpg",
	},
	{
		Title:       "Greek Salad with Feta",
		Description: "Crisp cucumber, ripe tomato and briny olives under creamy feta.",
		Ingredients: []recipe.Ingredient{
			{Name: "tomato", Amount: 3, Unit: "pieces"},
			{Name: "cucumber", Amount: 1, Unit: "piece"},
			{Name: "red onion", Amount: 0.5, Unit: "piece"},
			{Name: "feta cheese", Amount: 150, Unit: "g"},
			{Name: "olives", Amount: 80, Unit: "g"},
			{Name: "olive oil", Amount: 3, Unit: "tbsp"},
		},
		Instructions: []string{
			"Chop the tomato, cucumber and onion into chunky pieces.",
			"Combine with olives and dress with olive oil and oregano.",
			"Top with a slab of feta and serve.",
		},
		CookTime:   "10 minutes",
		Servings:   2,
		Difficulty: "easy",
		Tags:       []string{"greek", "salad", "healthy", "quick"},
		ImageURL:   "https://images.souschef.dev/fallback/greek-salad.jpg",
	},
	{
		Title:       "Mushroom Risotto",
		Description: "Slowly stirred arborio rice with sautéed mushrooms and parmesan.",
		Ingredients: []recipe.Ingredient{
			{Name: "arborio rice", Amount: 300, Unit: "g"},
			{Name: "mushroom", Amount: 400, Unit: "g"},
			{Name: "onion", Amount: 1, Unit: "piece"},
			{Name: "white wine", Amount: 100, Unit: "ml"},
			{Name: "vegetable stock", Amount: 1, Unit: "l"},
			{Name: "parmesan", Amount: 60, Unit: "g"},
			{Name: "butter", Amount: 30, Unit: "g"},
		},
		Instructions: []string{
			"Sauté the mushrooms until browned and set aside.",
			"Soften the onion, add the rice and toast for a minute.",
			"Deglaze with wine, then add hot stock a ladle at a time, stirring.",
			"Fold in the mushrooms, parmesan and butter off the heat.",
		},
		CookTime:   "40 minutes",
		Servings:   4,
		Difficulty: "medium",
		Tags:       []string{"italian", "vegetarian", "comfort"},
		ImageURL:   "https://images.souschef.dev/fallback/mushroom-risotto.jpg",
	},
	{
		Title:       "Baked Salmon with Greens",
		Description: "Oven-baked salmon fillet over garlicky wilted spinach.",
		Ingredients: []recipe.Ingredient{
			{Name: "salmon fillet", Amount: 2, Unit: "pieces"},
			{Name: "spinach", Amount: 300, Unit: "g"},
			{Name: "garlic", Amount: 2, Unit: "cloves"},
			{Name: "lemon", Amount: 1, Unit: "piece"},
			{Name: "olive oil", Amount: 2, Unit: "tbsp"},
		},
		Instructions: []string{
			"Bake the seasoned salmon at 200°C for 12 minutes.",
			"Wilt the spinach with garlic in olive oil.",
			"Plate the salmon over the greens and finish with lemon.",
		},
		CookTime:   "20 minutes",
		Servings:   2,
		Difficulty: "easy",
		Tags:       []string{"healthy", "fish", "quick"},
		ImageURL:   "https://images.souschef.dev/fallback/baked-salmon.jpg",
	},
}
