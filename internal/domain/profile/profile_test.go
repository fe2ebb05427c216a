package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	p := Default("user-1")

	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, SkillIntermediate, p.Skill)
	assert.Equal(t, TimeModerate, p.TimePreference)
	assert.Empty(t, p.ActiveRestrictions())
}

func TestAddRestriction(t *testing.T) {
	p := Default("user-1")
	p.AddRestriction("Vegan")
	p.AddRestriction("vegan")
	p.AddRestriction("  ")
	p.AddRestriction("none")
	p.AddRestriction("gluten-free")

	assert.Equal(t, []string{"vegan", "gluten-free"}, p.DietaryRestrictions)
}

func TestActiveRestrictionsFiltersNone(t *testing.T) {
	p := Default("user-1")
	p.DietaryRestrictions = []string{"none", "keto", "None"}

	assert.Equal(t, []string{"keto"}, p.ActiveRestrictions())
}

func TestPrefersCuisine(t *testing.T) {
	p := Default("user-1")
	p.CuisinePreferences = []string{"Italian", "thai"}

	assert.True(t, p.PrefersCuisine("italian"))
	assert.True(t, p.PrefersCuisine("Thai"))
	assert.False(t, p.PrefersCuisine("french"))
}
