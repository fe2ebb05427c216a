package nlp

import (
	"regexp"

	"github.com/alchemorsel/souschef/internal/domain/conversation"
)

// Static pattern tables, compiled once at startup. Each intent carries an
// ordered list of case-insensitive surface matchers; the intent score is
// the count of matchers that hit the normalized utterance.

var intentPatterns = map[conversation.IntentType][]*regexp.Regexp{
	conversation.IntentRecipeRequest: compile(
		`\brecipes?\b`,
		`\bcook\b|\bcooking\b`,
		`\bmake\b|\bprepare\b`,
		`\bdish(es)?\b`,
		`\bwhat should i (eat|cook|make)\b`,
		`\bdinner\b|\blunch\b|\bbreakfast\b`,
		`\bideas?\b|\bsuggest\b|\brecommend\b`,
	),
	conversation.IntentIngredientBased: compile(
		`\bi have\b`,
		`\bwhat can i (do|make|cook) with\b`,
		`\busing\b.*\bingredients?\b`,
		`\bleft ?over\b`,
		`\bin my (fridge|pantry|kitchen)\b`,
	),
	conversation.IntentNutritionalAdvice: compile(
		`\bcalories?\b`,
		`\bnutriti(on|onal|ous)\b`,
		`\bprotein\b|\bcarbs?\b|\bfat\b|\bfiber\b`,
		`\bhealthy\b|\bhealthier\b`,
		`\bdiet\b|\bmacros?\b`,
		`\bweight\b|\blow[- ]cal\b`,
	),
	conversation.IntentTechniqueHelp: compile(
		`\bhow (do|to) (i )?\b.*\b(chop|dice|knead|sear|whisk|fold|julienne|blanch|temper)\b`,
		`\btechniques?\b`,
		`\bteach me\b|\blearn (to|how)\b`,
		`\bknife skills?\b`,
		`\bproperly\b.*\b(cut|cook|season)\b`,
	),
	conversation.IntentMealPlanning: compile(
		`\bmeal ?plan(ning)?\b`,
		`\bweekly\b.*\bmeals?\b`,
		`\bplan\b.*\b(week|meals?|menu)\b`,
		`\bbatch cook(ing)?\b`,
		`\bprep\b.*\bweek\b`,
	),
	conversation.IntentDietaryModification: compile(
		`\bmake (it|this) (vegan|vegetarian|gluten[- ]free|dairy[- ]free)\b`,
		`\bsubstitut(e|ion)\b|\breplace\b|\bswap\b`,
		`\bwithout\b.*\b(meat|dairy|gluten|nuts|eggs?)\b`,
		`\bconvert\b.*\b(vegan|vegetarian)\b`,
		`\balternative to\b`,
	),
	conversation.IntentTroubleshooting: compile(
		`\bwent wrong\b|\bwhat happened\b`,
		`\btoo (salty|dry|bland|soggy|tough|burnt|sweet|spicy)\b`,
		`\bfix\b|\bsave\b.*\b(dish|sauce|dough)\b`,
		`\bburn(ed|t)\b|\bovercook(ed)?\b|\bundercook(ed)?\b`,
		`\bwon'?t (rise|thicken|set)\b`,
		`\bcurdl(ed|ing)\b|\bsplit\b.*\bsauce\b`,
	),
}

var entityPatterns = map[conversation.EntityType][]*regexp.Regexp{
	conversation.EntityIngredient: compile(
		`\b(chicken|beef|pork|lamb|fish|salmon|tuna|shrimp|tofu|tempeh|eggs?)\b`,
		`\b(pasta|rice|noodles?|quinoa|bread|potato(es)?|beans?|lentils?|chickpeas?)\b`,
		`\b(tomato(es)?|onions?|garlic|mushrooms?|spinach|broccoli|carrots?|peppers?|zucchini|avocado)\b`,
		`\b(cheese|butter|cream|milk|yogurt)\b`,
	),
	conversation.EntityCuisine: compile(
		`\b(italian|french|chinese|japanese|indian|mexican|thai|korean|vietnamese|greek|spanish|mediterranean|american|middle eastern)\b`,
	),
	conversation.EntityMealType: compile(
		`\b(breakfast|brunch|lunch|dinner|supper|snack|dessert|appetizer|side dish)\b`,
	),
	conversation.EntityCookingMethod: compile(
		`\b(bak(e|ed|ing)|grill(ed|ing)?|roast(ed|ing)?|fr(y|ied|ying)|steam(ed|ing)?|brais(e|ed|ing)|saut(e|é)(ed|ing)?|poach(ed|ing)?|slow[- ]cook(ed|er)?|stir[- ]fr(y|ied))\b`,
	),
	conversation.EntityDietaryRestriction: compile(
		`\b(vegan|vegetarian|pescatarian|gluten[- ]free|dairy[- ]free|nut[- ]free|keto|paleo|low[- ]carb|halal|kosher)\b`,
	),
}

// Keyword groups feeding context adjustments and the requirements list.
var (
	healthKeywords       = regexp.MustCompile(`(?i)\b(healthy|nutriti(on|ous)|calories?|protein|low[- ](fat|carb|cal)|light|lean|wholesome)\b`)
	modificationKeywords = regexp.MustCompile(`(?i)\b(substitut\w*|replace|swap|without|instead|convert|adapt|modif\w*|alternative)\b`)
	urgencyKeywords      = regexp.MustCompile(`(?i)\b(quick|fast|hurry|asap|in a rush|minutes?|speedy|express)\b`)
	easyKeywords         = regexp.MustCompile(`(?i)\b(easy|simple|basic|beginner|straightforward)\b`)
	hardKeywords         = regexp.MustCompile(`(?i)\b(challeng\w*|advanced|gourmet|impress|fancy|elaborate)\b`)
)

func compile(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(`(?i)` + p)
	}
	return compiled
}

func countMatches(patterns []*regexp.Regexp, text string) int {
	n := 0
	for _, p := range patterns {
		if p.MatchString(text) {
			n++
		}
	}
	return n
}
