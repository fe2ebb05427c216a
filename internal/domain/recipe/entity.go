// Package recipe contains the recipe entity produced by the generation
// oracle and enriched by the enhancement stage.
package recipe

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Ingredient is one ingredient line of a recipe.
type Ingredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Recipe is a candidate recipe. The oracle creates it; the enhancer
// attaches derived metadata but never replaces the original fields.
type Recipe struct {
	ID           uuid.UUID      `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Ingredients  []Ingredient   `json:"ingredients"`
	Instructions []string       `json:"instructions"`
	CookTime     string         `json:"cook_time"`
	Servings     int            `json:"servings"`
	Difficulty   string         `json:"difficulty"`
	Tags         []string       `json:"tags"`
	Calories     int            `json:"calories,omitempty"`
	ImageURL     string         `json:"image_url,omitempty"`
	Nutrition    *NutritionInfo `json:"nutrition,omitempty"`
	Metadata     *SmartMetadata `json:"metadata,omitempty"`
}

// New creates a recipe with a fresh identifier.
func New(title, description string) *Recipe {
	return &Recipe{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
	}
}

// Validate checks the minimal shape a usable candidate recipe must have.
func (r *Recipe) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrMissingTitle
	}
	if len(r.Ingredients) == 0 {
		return ErrNoIngredients
	}
	if len(r.Instructions) == 0 {
		return ErrNoInstructions
	}
	return nil
}

// PrimaryIngredient returns the first ingredient name, the anchor used for
// variety tracking across a multi-recipe generation run.
func (r *Recipe) PrimaryIngredient() string {
	if len(r.Ingredients) == 0 {
		return ""
	}
	return r.Ingredients[0].Name
}

// CuisineTag returns the first tag matching a known cuisine, if any.
func (r *Recipe) CuisineTag() string {
	for _, t := range r.Tags {
		if knownCuisines[strings.ToLower(t)] {
			return strings.ToLower(t)
		}
	}
	return ""
}

// HasTag reports whether the recipe carries the tag, case-insensitively.
func (r *Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// UniqueIngredientCount counts distinct ingredient names.
func (r *Recipe) UniqueIngredientCount() int {
	seen := make(map[string]bool, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		seen[strings.ToLower(ing.Name)] = true
	}
	return len(seen)
}

var knownCuisines = map[string]bool{
	"italian": true, "french": true, "chinese": true, "japanese": true,
	"indian": true, "mexican": true, "thai": true, "american": true,
	"mediterranean": true, "korean": true, "vietnamese": true, "greek": true,
	"spanish": true, "middle eastern": true,
}

var minutesPattern = regexp.MustCompile(`(\d+)`)

// ParseMinutes extracts a total-minute estimate from a cook-time string such
// as "45 minutes" or "1 hour". The second return is false when no numeric
// value is present.
func ParseMinutes(cookTime string) (int, bool) {
	match := minutesPattern.FindString(cookTime)
	if match == "" {
		return 0, false
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	if strings.Contains(strings.ToLower(cookTime), "hour") {
		return n * 60, true
	}
	return n, true
}

// MentionsHours reports whether the cook-time string talks in hours.
func (r *Recipe) MentionsHours() bool {
	return strings.Contains(strings.ToLower(r.CookTime), "hour")
}
