package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/alchemorsel/souschef/internal/domain/recipe"
	"github.com/alchemorsel/souschef/internal/ports/outbound"
	"github.com/brianvoe/gofakeit/v6"
)

// MockOracle fabricates plausible recipes without a model server. Used for
// local development and demos.
type MockOracle struct{}

// NewMockOracle creates a mock oracle.
func NewMockOracle() *MockOracle {
	return &MockOracle{}
}

func (m *MockOracle) GenerateRecipe(ctx context.Context, prompt string, constraints outbound.OracleConstraints) (*recipe.Recipe, error) {
	adjective := gofakeit.AdjectiveDescriptive()
	dish := gofakeit.Dinner()
	r := recipe.New(
		strings.Title(adjective)+" "+dish,
		fmt.Sprintf("A %s take on %s, ready in under an hour.", adjective, strings.ToLower(dish)),
	)

	count := gofakeit.Number(4, 9)
	for i := 0; i < count; i++ {
		r.Ingredients = append(r.Ingredients, recipe.Ingredient{
			Name:   gofakeit.Vegetable(),
			Amount: float64(gofakeit.Number(1, 500)),
			Unit:   gofakeit.RandomString([]string{"g", "ml", "tbsp", "tsp", "pieces"}),
		})
	}
	steps := gofakeit.Number(3, 6)
	for i := 0; i < steps; i++ {
		r.Instructions = append(r.Instructions, gofakeit.Sentence(8))
	}
	r.CookTime = fmt.Sprintf("%d minutes", gofakeit.Number(15, 90))
	r.Servings = gofakeit.Number(2, 6)
	r.Difficulty = gofakeit.RandomString([]string{"easy", "medium", "hard"})
	if constraints.Cuisine != "" {
		r.Tags = append(r.Tags, strings.ToLower(constraints.Cuisine))
	}
	r.Tags = append(r.Tags, "mock")
	return r, nil
}

func (m *MockOracle) GenerateDescription(ctx context.Context, r *recipe.Recipe) (string, error) {
	return fmt.Sprintf("A comforting plate of %s.", strings.ToLower(r.Title)), nil
}

func (m *MockOracle) GenerateImage(ctx context.Context, r *recipe.Recipe) (string, error) {
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(r.Title), " ", "-"))
	return "https://images.souschef.dev/mock/" + slug + ".jpg", nil
}

func (m *MockOracle) AnalyzeNutrition(ctx context.Context, ingredients []string) (*recipe.NutritionInfo, error) {
	return &recipe.NutritionInfo{
		Calories: gofakeit.Number(200, 700),
		Protein:  float64(gofakeit.Number(5, 40)),
		Carbs:    float64(gofakeit.Number(10, 80)),
		Fat:      float64(gofakeit.Number(5, 35)),
		Fiber:    float64(gofakeit.Number(1, 12)),
	}, nil
}

func (m *MockOracle) HealthCheck(ctx context.Context) error {
	return nil
}
