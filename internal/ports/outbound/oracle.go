// Package outbound defines the interfaces for outbound ports (secondary/driven
// adapters). These are the interfaces the application uses to reach external
// systems.
package outbound

import (
	"context"

	"github.com/alchemorsel/souschef/internal/domain/recipe"
)

// OracleConstraints shape a single generation oracle call.
type OracleConstraints struct {
	Dietary          []string
	Cuisine          string
	SkillLevel       string
	MaxMinutes       int
	Servings         int
	AvoidIngredients []string
	AvoidCuisines    []string
	Requirements     []string
}

// Oracle is the external text-generation service that drafts raw recipe
// content. Implementations must degrade rather than fail: malformed or
// absent output yields a fallback recipe, never an unusable error path
// for the caller.
type Oracle interface {
	// GenerateRecipe drafts one candidate recipe for the prompt.
	GenerateRecipe(ctx context.Context, prompt string, constraints OracleConstraints) (*recipe.Recipe, error)

	// GenerateDescription writes an appetizing description for a recipe.
	GenerateDescription(ctx context.Context, r *recipe.Recipe) (string, error)

	// GenerateImage returns an image reference for a recipe.
	GenerateImage(ctx context.Context, r *recipe.Recipe) (string, error)

	// AnalyzeNutrition estimates per-serving nutrition for an ingredient list.
	AnalyzeNutrition(ctx context.Context, ingredients []string) (*recipe.NutritionInfo, error)

	// HealthCheck verifies the oracle is reachable.
	HealthCheck(ctx context.Context) error
}
