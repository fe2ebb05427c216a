package enhance

import (
	"strings"

	"github.com/alchemorsel/souschef/internal/domain/recipe"
)

// macro is a per-typical-portion macro estimate for one ingredient.
type macro struct {
	calories int
	protein  float64
	carbs    float64
	fat      float64
	fiber    float64
}

// Per-item estimate applied when an ingredient isn't in the table.
var defaultMacro = macro{calories: 60, protein: 2, carbs: 8, fat: 2, fiber: 1}

// ingredientMacros is a small lookup table keyed by ingredient keyword.
// Matching is by substring of the ingredient name.
var ingredientMacros = map[string]macro{
	"chicken":  {calories: 230, protein: 27, carbs: 0, fat: 13},
	"beef":     {calories: 290, protein: 26, carbs: 0, fat: 20},
	"pork":     {calories: 270, protein: 25, carbs: 0, fat: 18},
	"salmon":   {calories: 210, protein: 22, carbs: 0, fat: 13},
	"fish":     {calories: 180, protein: 24, carbs: 0, fat: 8},
	"shrimp":   {calories: 100, protein: 20, carbs: 1, fat: 1.5},
	"tofu":     {calories: 90, protein: 10, carbs: 2, fat: 5},
	"egg":      {calories: 75, protein: 6, carbs: 0.5, fat: 5},
	"pasta":    {calories: 200, protein: 7, carbs: 42, fat: 1, fiber: 2},
	"rice":     {calories: 200, protein: 4, carbs: 45, fat: 0.5, fiber: 1},
	"noodle":   {calories: 190, protein: 7, carbs: 40, fat: 1, fiber: 2},
	"quinoa":   {calories: 160, protein: 6, carbs: 28, fat: 2.5, fiber: 3},
	"potato":   {calories: 160, protein: 4, carbs: 37, fat: 0, fiber: 4},
	"bread":    {calories: 80, protein: 3, carbs: 15, fat: 1, fiber: 1},
	"bean":     {calories: 120, protein: 8, carbs: 22, fat: 0.5, fiber: 7},
	"lentil":   {calories: 115, protein: 9, carbs: 20, fat: 0.4, fiber: 8},
	"chickpea": {calories: 130, protein: 7, carbs: 22, fat: 2, fiber: 6},
	"cheese":   {calories: 110, protein: 7, carbs: 1, fat: 9},
	"butter":   {calories: 100, protein: 0, carbs: 0, fat: 11},
	"cream":    {calories: 100, protein: 1, carbs: 1, fat: 10},
	"milk":     {calories: 60, protein: 3, carbs: 5, fat: 3},
	"yogurt":   {calories: 60, protein: 4, carbs: 5, fat: 3},
	"oil":      {calories: 120, protein: 0, carbs: 0, fat: 14},
	"avocado":  {calories: 160, protein: 2, carbs: 9, fat: 15, fiber: 7},
	"tomato":   {calories: 20, protein: 1, carbs: 4, fat: 0, fiber: 1.5},
	"onion":    {calories: 40, protein: 1, carbs: 9, fat: 0, fiber: 2},
	"garlic":   {calories: 5, protein: 0.2, carbs: 1, fat: 0},
	"spinach":  {calories: 10, protein: 1, carbs: 1.5, fat: 0, fiber: 1},
	"broccoli": {calories: 30, protein: 2.5, carbs: 6, fat: 0.3, fiber: 2.5},
	"mushroom": {calories: 20, protein: 3, carbs: 3, fat: 0.3, fiber: 1},
	"carrot":   {calories: 25, protein: 0.5, carbs: 6, fat: 0, fiber: 2},
	"pepper":   {calories: 25, protein: 1, carbs: 6, fat: 0.2, fiber: 2},
	"sugar":    {calories: 50, protein: 0, carbs: 13, fat: 0},
	"honey":    {calories: 60, protein: 0, carbs: 17, fat: 0},
}

// EstimateNutrition derives per-serving nutrition additively from the
// ingredient table. Unknown ingredients use a flat per-item estimate
// instead of erroring.
func EstimateNutrition(r *recipe.Recipe) *recipe.NutritionInfo {
	var total macro
	for _, ing := range r.Ingredients {
		m := lookupMacro(ing.Name)
		total.calories += m.calories
		total.protein += m.protein
		total.carbs += m.carbs
		total.fat += m.fat
		total.fiber += m.fiber
	}

	servings := r.Servings
	if servings < 1 {
		servings = 1
	}
	s := float64(servings)

	return &recipe.NutritionInfo{
		Calories: total.calories / servings,
		Protein:  round1(total.protein / s),
		Carbs:    round1(total.carbs / s),
		Fat:      round1(total.fat / s),
		Fiber:    round1(total.fiber / s),
	}
}

// macroKeywords fixes the lookup order so names matching several keywords
// ("cream cheese") always resolve the same way.
var macroKeywords = []string{
	"chicken", "beef", "pork", "salmon", "fish", "shrimp", "tofu", "egg",
	"pasta", "rice", "noodle", "quinoa", "potato", "bread", "bean", "lentil",
	"chickpea", "cheese", "butter", "cream", "milk", "yogurt", "oil",
	"avocado", "tomato", "onion", "garlic", "spinach", "broccoli",
	"mushroom", "carrot", "pepper", "sugar", "honey",
}

func lookupMacro(name string) macro {
	lower := strings.ToLower(name)
	for _, keyword := range macroKeywords {
		if strings.Contains(lower, keyword) {
			return ingredientMacros[keyword]
		}
	}
	return defaultMacro
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
