package validation

import "github.com/alchemorsel/souschef/internal/domain/profile"

// Declarative conflict tables, loaded once at startup.

// forbiddenKeywords maps a dietary restriction to the ingredient keywords
// it rules out.
var forbiddenKeywords = map[string][]string{
	"vegan": {
		"chicken", "beef", "pork", "lamb", "turkey", "duck", "bacon", "ham",
		"fish", "salmon", "tuna", "shrimp", "prawns", "anchovy",
		"egg", "eggs", "milk", "cheese", "butter", "cream", "yogurt", "honey", "gelatin",
	},
	"vegetarian": {
		"chicken", "beef", "pork", "lamb", "turkey", "duck", "bacon", "ham",
		"fish", "salmon", "tuna", "shrimp", "prawns", "anchovy", "gelatin",
	},
	"pescatarian": {
		"chicken", "beef", "pork", "lamb", "turkey", "duck", "bacon", "ham",
	},
	"gluten-free": {
		"wheat", "flour", "bread", "pasta", "noodles", "couscous", "barley",
		"rye", "soy sauce", "beer", "seitan",
	},
	"dairy-free": {
		"milk", "cheese", "butter", "cream", "yogurt", "ghee", "custard",
	},
	"nut-free": {
		"peanut", "almond", "cashew", "walnut", "pecan", "pistachio", "hazelnut", "nut butter",
	},
	"keto": {
		"sugar", "bread", "pasta", "rice", "potato", "noodles", "flour",
	},
	"halal": {
		"pork", "bacon", "ham", "lard", "wine", "beer", "alcohol",
	},
	"kosher": {
		"pork", "bacon", "ham", "shrimp", "prawns", "lobster", "crab",
	},
}

// alternatives maps restriction -> forbidden ingredient -> substitutes
// offered when that restriction blocks generation.
var alternatives = map[string]map[string][]string{
	"vegan": {
		"chicken": {"tofu", "tempeh", "seitan"},
		"beef":    {"mushrooms", "lentils", "jackfruit"},
		"pork":    {"jackfruit", "smoked tofu", "tempeh"},
		"fish":    {"hearts of palm", "banana blossom", "tofu"},
		"salmon":  {"marinated carrot lox", "tofu"},
		"shrimp":  {"king oyster mushrooms", "hearts of palm"},
		"egg":     {"flax egg", "chickpea flour", "silken tofu"},
		"eggs":    {"flax egg", "chickpea flour", "silken tofu"},
		"milk":    {"oat milk", "soy milk", "almond milk"},
		"cheese":  {"nutritional yeast", "cashew cheese"},
		"butter":  {"olive oil", "coconut oil", "vegan butter"},
		"cream":   {"coconut cream", "cashew cream"},
		"yogurt":  {"coconut yogurt", "soy yogurt"},
		"honey":   {"maple syrup", "agave nectar"},
	},
	"vegetarian": {
		"chicken": {"tofu", "paneer", "halloumi"},
		"beef":    {"mushrooms", "lentils", "black beans"},
		"pork":    {"jackfruit", "mushrooms"},
		"fish":    {"halloumi", "tofu"},
		"bacon":   {"smoked tempeh", "mushroom bacon"},
	},
	"gluten-free": {
		"pasta":   {"rice noodles", "zucchini noodles", "gluten-free pasta"},
		"flour":   {"almond flour", "rice flour", "chickpea flour"},
		"bread":   {"gluten-free bread", "corn tortillas"},
		"noodles": {"rice noodles", "glass noodles"},
		"soy sauce": {"tamari", "coconut aminos"},
	},
	"dairy-free": {
		"milk":   {"oat milk", "almond milk", "soy milk"},
		"cheese": {"nutritional yeast", "dairy-free cheese"},
		"butter": {"olive oil", "coconut oil"},
		"cream":  {"coconut cream", "cashew cream"},
		"yogurt": {"coconut yogurt"},
	},
	"nut-free": {
		"peanut": {"sunflower seed butter", "soy butter"},
		"almond": {"oats", "sunflower seeds"},
		"cashew": {"sunflower seeds", "silken tofu"},
	},
	"keto": {
		"rice":   {"cauliflower rice"},
		"pasta":  {"zucchini noodles", "shirataki noodles"},
		"potato": {"cauliflower", "turnip"},
		"sugar":  {"erythritol", "stevia"},
		"bread":  {"cloud bread", "almond flour bread"},
	},
}

// cuisineKeywords detect a cuisine mentioned in an utterance.
var cuisineKeywords = map[string][]string{
	"italian":       {"italian", "pasta", "risotto", "pizza", "carbonara", "lasagna"},
	"french":        {"french", "ratatouille", "coq au vin", "bouillabaisse", "souffle"},
	"chinese":       {"chinese", "stir fry", "stir-fry", "dumplings", "kung pao", "chow mein"},
	"japanese":      {"japanese", "sushi", "ramen", "teriyaki", "tempura", "miso"},
	"indian":        {"indian", "curry", "masala", "tikka", "biryani", "dal"},
	"mexican":       {"mexican", "tacos", "burrito", "enchilada", "quesadilla", "salsa"},
	"thai":          {"thai", "pad thai", "green curry", "tom yum"},
	"korean":        {"korean", "kimchi", "bibimbap", "bulgogi"},
	"greek":         {"greek", "moussaka", "tzatziki", "souvlaki"},
	"mediterranean": {"mediterranean", "hummus", "falafel", "tabbouleh"},
}

// complexIngredients lists ingredients and techniques too demanding for a
// skill tier. Beginners trip over everything in both lists; intermediates
// only over the advanced list.
var complexIngredients = map[profile.SkillLevel][]string{
	profile.SkillBeginner: {
		"souffle", "soufflé", "hollandaise", "tempering", "confit", "roux",
		"beef wellington", "risotto", "macarons", "croissant", "sourdough",
		"duck", "octopus", "sweetbreads",
	},
	profile.SkillIntermediate: {
		"souffle", "soufflé", "beef wellington", "macarons", "croissant",
		"sweetbreads", "molecular", "spherification",
	},
}
