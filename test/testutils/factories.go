// Package testutils provides factories for building realistic test
// fixtures.
package testutils

import (
	"fmt"
	"strings"

	"github.com/alchemorsel/souschef/internal/domain/conversation"
	"github.com/alchemorsel/souschef/internal/domain/profile"
	"github.com/alchemorsel/souschef/internal/domain/recipe"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// RecipeFactory builds valid recipes with randomized but coherent fields.
type RecipeFactory struct {
	faker *gofakeit.Faker
}

// NewRecipeFactory creates a seeded factory so failures reproduce.
func NewRecipeFactory(seed int64) *RecipeFactory {
	return &RecipeFactory{faker: gofakeit.New(seed)}
}

// Build returns one valid random recipe.
func (f *RecipeFactory) Build() *recipe.Recipe {
	r := recipe.New(
		strings.Title(f.faker.AdjectiveDescriptive())+" "+f.faker.Dinner(),
		f.faker.Sentence(10),
	)

	for i := 0; i < f.faker.Number(3, 10); i++ {
		r.Ingredients = append(r.Ingredients, recipe.Ingredient{
			Name:   f.faker.Vegetable(),
			Amount: float64(f.faker.Number(1, 500)),
			Unit:   f.faker.RandomString([]string{"g", "ml", "tbsp", "tsp", "pieces"}),
		})
	}
	for i := 0; i < f.faker.Number(3, 7); i++ {
		r.Instructions = append(r.Instructions, f.faker.Sentence(8))
	}
	r.CookTime = fmt.Sprintf("%d minutes", f.faker.Number(10, 120))
	r.Servings = f.faker.Number(1, 8)
	r.Difficulty = f.faker.RandomString([]string{"easy", "medium", "hard"})
	return r
}

// BuildMany returns n valid random recipes.
func (f *RecipeFactory) BuildMany(n int) []*recipe.Recipe {
	recipes := make([]*recipe.Recipe, n)
	for i := range recipes {
		recipes[i] = f.Build()
	}
	return recipes
}

// ProfileFactory builds user profiles.
type ProfileFactory struct {
	faker *gofakeit.Faker
}

// NewProfileFactory creates a seeded profile factory.
func NewProfileFactory(seed int64) *ProfileFactory {
	return &ProfileFactory{faker: gofakeit.New(seed)}
}

// Build returns a random profile without restrictions.
func (f *ProfileFactory) Build(userID string) *profile.UserProfile {
	p := profile.Default(userID)
	p.Skill = profile.SkillLevel(f.faker.RandomString([]string{
		string(profile.SkillBeginner),
		string(profile.SkillIntermediate),
		string(profile.SkillAdvanced),
		string(profile.SkillExpert),
	}))
	return p
}

// Turn returns a random conversation turn for the session.
func Turn(sessionID string) conversation.Turn {
	return conversation.Turn{
		ID:        uuid.New(),
		SessionID: sessionID,
		UserText:  gofakeit.Sentence(6),
		Intent:    conversation.IntentRecipeRequest,
	}
}
