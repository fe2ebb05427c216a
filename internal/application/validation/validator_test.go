package validation

import (
	"testing"

	"github.com/alchemorsel/souschef/internal/domain/conversation"
	"github.com/alchemorsel/souschef/internal/domain/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func validate(t *testing.T, text string, prof *profile.UserProfile) Result {
	t.Helper()
	utt := conversation.NewUtterance(text, "user-1", "session-1")
	return NewValidator(zap.NewNop()).Validate(utt, prof)
}

func TestDietaryConflictBlocksGeneration(t *testing.T) {
	prof := profile.Default("user-1")
	prof.DietaryRestrictions = []string{"vegan"}

	result := validate(t, "chicken curry recipe", prof)

	assert.False(t, result.Valid)
	assert.Equal(t, ConflictDietary, result.Type)
	assert.False(t, result.ShouldGenerateRecipe)
	assert.Contains(t, result.ConflictingItems, "chicken")
	assert.Contains(t, result.Alternatives, "tofu")
	assert.NotEmpty(t, result.Suggestion)
	assert.NotEmpty(t, result.AlternativePrompt)
}

func TestDietaryAlternativesCappedAtThree(t *testing.T) {
	prof := profile.Default("user-1")
	prof.DietaryRestrictions = []string{"vegan"}

	result := validate(t, "chicken and cheese omelette with milk and cream", prof)

	require.Equal(t, ConflictDietary, result.Type)
	assert.LessOrEqual(t, len(result.Alternatives), 3)
}

func TestCuisineConflictIsAdvisory(t *testing.T) {
	prof := profile.Default("user-1")
	prof.CuisinePreferences = []string{"italian", "mexican"}

	result := validate(t, "show me a sushi recipe", prof)

	assert.False(t, result.Valid)
	assert.Equal(t, ConflictCuisine, result.Type)
	assert.True(t, result.ShouldGenerateRecipe)
	assert.Equal(t, []string{"japanese"}, result.ConflictingItems)
}

func TestPreferredCuisinePasses(t *testing.T) {
	prof := profile.Default("user-1")
	prof.CuisinePreferences = []string{"japanese"}

	result := validate(t, "show me a sushi recipe", prof)

	assert.True(t, result.Valid)
	assert.Equal(t, ConflictNone, result.Type)
}

func TestSkillConflictIsAdvisory(t *testing.T) {
	prof := profile.Default("user-1")
	prof.Skill = profile.SkillBeginner

	result := validate(t, "how do I make a cheese souffle", prof)

	assert.False(t, result.Valid)
	assert.Equal(t, ConflictIngredient, result.Type)
	assert.True(t, result.ShouldGenerateRecipe)
	assert.Contains(t, result.ConflictingItems, "souffle")
}

func TestExpertSkipsSkillCheck(t *testing.T) {
	prof := profile.Default("user-1")
	prof.Skill = profile.SkillExpert

	result := validate(t, "beef wellington with a hollandaise", prof)

	assert.True(t, result.Valid)
}

func TestDietaryOutranksCuisineAndSkill(t *testing.T) {
	prof := profile.Default("user-1")
	prof.DietaryRestrictions = []string{"vegetarian"}
	prof.CuisinePreferences = []string{"mexican"}
	prof.Skill = profile.SkillBeginner

	result := validate(t, "chicken risotto please", prof)

	assert.Equal(t, ConflictDietary, result.Type)
	assert.False(t, result.ShouldGenerateRecipe)
}

func TestNoConflicts(t *testing.T) {
	result := validate(t, "a simple vegetable soup", profile.Default("user-1"))

	assert.True(t, result.Valid)
	assert.Equal(t, ConflictNone, result.Type)
	assert.True(t, result.ShouldGenerateRecipe)
}

func TestForbiddenKeywordsMatchWholeWords(t *testing.T) {
	prof := profile.Default("user-1")
	prof.DietaryRestrictions = []string{"halal"}

	// "hamper" must not trip the "ham" keyword.
	result := validate(t, "a picnic hamper menu", prof)

	assert.True(t, result.Valid)
}

func TestNilProfile(t *testing.T) {
	result := validate(t, "chicken curry", nil)

	assert.True(t, result.Valid)
	assert.True(t, result.ShouldGenerateRecipe)
}
