package assistant

import (
	"fmt"
	"strings"

	"github.com/alchemorsel/souschef/internal/domain/conversation"
	"github.com/alchemorsel/souschef/internal/domain/profile"
	"github.com/alchemorsel/souschef/internal/ports/outbound"
)

// varietyState is the accumulator threaded through a multi-recipe
// generation run so consecutive recipes avoid repeating the same primary
// ingredient or cuisine. It is a value, updated and passed forward, never
// shared mutable state.
type varietyState struct {
	usedIngredients []string
	usedCuisines    []string
}

// observe returns a new state that also avoids the given recipe's primary
// ingredient and cuisine tag.
func (v varietyState) observe(primaryIngredient, cuisine string) varietyState {
	next := varietyState{
		usedIngredients: append([]string{}, v.usedIngredients...),
		usedCuisines:    append([]string{}, v.usedCuisines...),
	}
	if primaryIngredient != "" {
		next.usedIngredients = append(next.usedIngredients, strings.ToLower(primaryIngredient))
	}
	if cuisine != "" {
		next.usedCuisines = append(next.usedCuisines, strings.ToLower(cuisine))
	}
	return next
}

// buildPrompt constructs the oracle prompt for one recipe, including the
// user's requirements and an explicit avoid-repeat hint built from the
// variety accumulator and this session's recent ingredients.
func buildPrompt(utt conversation.Utterance, intent conversation.Intent, prof *profile.UserProfile, variety varietyState, mem *conversation.Memory) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a recipe for: %s", strings.TrimSpace(utt.Text))

	if len(intent.Requirements) > 0 {
		fmt.Fprintf(&b, "\nRequirements: %s", strings.Join(intent.Requirements, ", "))
	}
	if prof != nil {
		if restrictions := prof.ActiveRestrictions(); len(restrictions) > 0 {
			fmt.Fprintf(&b, "\nDietary restrictions: %s", strings.Join(restrictions, ", "))
		}
		if len(prof.CuisinePreferences) > 0 {
			fmt.Fprintf(&b, "\nPreferred cuisines: %s", strings.Join(prof.CuisinePreferences, ", "))
		}
		fmt.Fprintf(&b, "\nSkill level: %s", prof.Skill)
	}

	avoid := variety.usedIngredients
	if mem != nil {
		for _, ing := range mem.Short.RecentIngredients {
			avoid = appendLowerUnique(avoid, ing)
		}
	}
	if len(avoid) > 0 {
		fmt.Fprintf(&b, "\nAvoid repeating these main ingredients: %s", strings.Join(avoid, ", "))
	}
	if len(variety.usedCuisines) > 0 {
		fmt.Fprintf(&b, "\nAvoid these cuisines this time: %s", strings.Join(variety.usedCuisines, ", "))
	}

	return b.String()
}

// buildConstraints maps intent and profile into oracle constraints.
func buildConstraints(intent conversation.Intent, prof *profile.UserProfile, variety varietyState) outbound.OracleConstraints {
	c := outbound.OracleConstraints{
		Requirements:     intent.Requirements,
		AvoidIngredients: variety.usedIngredients,
		AvoidCuisines:    variety.usedCuisines,
	}
	if cuisines := intent.EntitiesOfType(conversation.EntityCuisine); len(cuisines) > 0 {
		c.Cuisine = cuisines[0]
	}
	if prof != nil {
		c.Dietary = prof.ActiveRestrictions()
		c.SkillLevel = string(prof.Skill)
		if prof.TimePreference == profile.TimeQuick {
			c.MaxMinutes = 30
		}
	}
	return c
}

func appendLowerUnique(list []string, item string) []string {
	item = strings.ToLower(strings.TrimSpace(item))
	if item == "" {
		return list
	}
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	return append(list, item)
}
