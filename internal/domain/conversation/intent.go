// Package conversation contains the core domain types for a single
// assistant conversation: utterances, classified intents, extracted
// entities and the short/long-term memory that accumulates across turns.
package conversation

// IntentType is the closed set of purposes an utterance can be classified as.
type IntentType string

const (
	IntentRecipeRequest        IntentType = "recipe_request"
	IntentIngredientBased      IntentType = "ingredient_based_cooking"
	IntentNutritionalAdvice    IntentType = "nutritional_advice"
	IntentTechniqueHelp        IntentType = "cooking_technique_help"
	IntentMealPlanning         IntentType = "meal_planning"
	IntentDietaryModification  IntentType = "dietary_modification"
	IntentTroubleshooting      IntentType = "cooking_troubleshooting"
)

// EntityType identifies the kind of a typed span extracted from an utterance.
type EntityType string

const (
	EntityIngredient         EntityType = "ingredient"
	EntityCuisine            EntityType = "cuisine"
	EntityMealType           EntityType = "meal_type"
	EntityCookingMethod      EntityType = "cooking_method"
	EntityDietaryRestriction EntityType = "dietary_restriction"
)

// Entity is a typed value extracted from an utterance. Entities are not
// mutually exclusive across types.
type Entity struct {
	Type       EntityType `json:"type"`
	Value      string     `json:"value"`
	Confidence float64    `json:"confidence"`
}

// Intent is the classified purpose of an utterance together with the
// entities and free-text requirements extracted alongside it.
type Intent struct {
	Type         IntentType `json:"type"`
	Confidence   float64    `json:"confidence"`
	Entities     []Entity   `json:"entities"`
	Requirements []string   `json:"requirements"`
	RecipeCount  int        `json:"recipe_count"`
}

// EntitiesOfType returns the values of all entities of the given type,
// preserving extraction order.
func (i Intent) EntitiesOfType(t EntityType) []string {
	var values []string
	for _, e := range i.Entities {
		if e.Type == t {
			values = append(values, e.Value)
		}
	}
	return values
}

// HasEntity reports whether at least one entity of the given type was extracted.
func (i Intent) HasEntity(t EntityType) bool {
	for _, e := range i.Entities {
		if e.Type == t {
			return true
		}
	}
	return false
}

// HasRequirement reports whether the given requirement was recorded.
func (i Intent) HasRequirement(req string) bool {
	for _, r := range i.Requirements {
		if r == req {
			return true
		}
	}
	return false
}

// ClampConfidence bounds an intent confidence to [0.1, 1.0]. Classification
// never reports zero confidence; ambiguity resolves to the default intent
// with low confidence instead.
func ClampConfidence(v float64) float64 {
	if v < 0.1 {
		return 0.1
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
