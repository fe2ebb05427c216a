package assistant

import (
	"fmt"
	"strings"

	"github.com/alchemorsel/souschef/internal/application/validation"
	"github.com/alchemorsel/souschef/internal/domain/conversation"
	"github.com/alchemorsel/souschef/internal/domain/recipe"
	"github.com/alchemorsel/souschef/internal/ports/inbound"
)

// composer turns the pipeline's intermediate results into the final chat
// response: an intent-appropriate message, the ranked recipes, and two or
// three follow-up questions.
type composer struct{}

func (c composer) compose(intent conversation.Intent, result validation.Result, recipes []*recipe.Recipe, degraded bool) *inbound.ChatResponse {
	resp := &inbound.ChatResponse{
		Message:           c.message(intent, recipes, degraded),
		Recipes:           recipes,
		FollowUpQuestions: c.followUps(intent),
		Confidence:        intent.Confidence,
	}
	if !result.Valid && result.ShouldGenerateRecipe && result.Suggestion != "" {
		resp.Message = result.Suggestion + "\n\n" + resp.Message
	}
	return resp
}

// composeConflict builds the alternative-suggestion response for a blocking
// dietary conflict. No recipes are attached.
func (c composer) composeConflict(intent conversation.Intent, result validation.Result) *inbound.ChatResponse {
	msg := result.Suggestion
	if result.AlternativePrompt != "" {
		msg += " " + result.AlternativePrompt
	}

	followUps := []string{"Should I suggest something else entirely?"}
	if len(result.Alternatives) > 0 {
		followUps = append([]string{
			fmt.Sprintf("Want me to build a recipe around %s?", strings.Join(result.Alternatives, " or ")),
		}, followUps...)
	}

	return &inbound.ChatResponse{
		Message:           msg,
		FollowUpQuestions: followUps,
		Confidence:        intent.Confidence,
	}
}

func (c composer) message(intent conversation.Intent, recipes []*recipe.Recipe, degraded bool) string {
	if degraded {
		return "I'm having trouble reaching my recipe generator right now, so here are some reliable favorites instead."
	}
	if len(recipes) == 0 {
		return "I couldn't come up with a recipe for that. Could you tell me a bit more about what you're after?"
	}

	var b strings.Builder
	switch intent.Type {
	case conversation.IntentIngredientBased:
		b.WriteString("Here's what you can make with what you have on hand")
	case conversation.IntentNutritionalAdvice:
		b.WriteString("Here are some options chosen with your health goals in mind")
	case conversation.IntentDietaryModification:
		b.WriteString("Here's a version adapted to fit your dietary needs")
	case conversation.IntentMealPlanning:
		b.WriteString("Here's a set of recipes to build your plan around")
	case conversation.IntentTechniqueHelp:
		b.WriteString("Here's a recipe that's a great way to practice that technique")
	case conversation.IntentTroubleshooting:
		b.WriteString("Let's get that sorted. This version should be more forgiving")
	default:
		if len(recipes) == 1 {
			b.WriteString("Here's a recipe I think you'll enjoy")
		} else {
			fmt.Fprintf(&b, "Here are %d recipes I think you'll enjoy", len(recipes))
		}
	}
	b.WriteString(": ")
	titles := make([]string, 0, len(recipes))
	for _, r := range recipes {
		titles = append(titles, r.Title)
	}
	b.WriteString(strings.Join(titles, ", "))
	b.WriteString(".")

	if top := recipes[0]; top.Metadata != nil && len(top.Metadata.Tips) > 0 {
		b.WriteString(" Tip: " + top.Metadata.Tips[0])
	}
	return b.String()
}

// followUpTable keeps each intent's follow-up prompts fixed so the same
// classification always produces the same questions.
var followUpTable = map[conversation.IntentType][]string{
	conversation.IntentRecipeRequest: {
		"Would you like a side dish to go with it?",
		"Should I adjust the servings?",
	},
	conversation.IntentIngredientBased: {
		"Do you have any other ingredients I should work in?",
		"Want a version that uses fewer pans?",
	},
	conversation.IntentNutritionalAdvice: {
		"Do you want the full nutrition breakdown?",
		"Should I aim for higher protein or fewer carbs next time?",
	},
	conversation.IntentTechniqueHelp: {
		"Want a step-by-step walkthrough of the tricky part?",
		"Should I pick an easier recipe to practice on first?",
	},
	conversation.IntentMealPlanning: {
		"Should I plan the rest of the week too?",
		"Want a shopping list for these?",
	},
	conversation.IntentDietaryModification: {
		"Does this substitution work for you?",
		"Any other ingredients you need me to avoid?",
	},
	conversation.IntentTroubleshooting: {
		"Did that fix the problem?",
		"Want tips to prevent it next time?",
	},
}

func (c composer) followUps(intent conversation.Intent) []string {
	if questions, ok := followUpTable[intent.Type]; ok {
		return append([]string{}, questions...)
	}
	return []string{"What would you like to cook next?"}
}
