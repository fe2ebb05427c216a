// Package enhance augments raw candidate recipes with derived nutrition
// estimates, per-axis scores, tips and a composite relevance score, then
// ranks them. All scoring is deterministic: same recipe, same context,
// same metadata.
package enhance

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alchemorsel/souschef/internal/domain/profile"
	"github.com/alchemorsel/souschef/internal/domain/recipe"
	"go.uber.org/zap"
)

// Every 1-10 axis starts here and moves by fixed deltas.
const axisBase = 5

// Enhancer scores and ranks recipes.
type Enhancer struct {
	logger *zap.Logger
}

// NewEnhancer creates an enhancer.
func NewEnhancer(logger *zap.Logger) *Enhancer {
	return &Enhancer{logger: logger.Named("enhancer")}
}

// Enhance attaches recomputed SmartMetadata to the recipe and fills in
// nutrition when the oracle omitted it. The original recipe fields are
// never replaced.
func (e *Enhancer) Enhance(r *recipe.Recipe, ctx Context) *recipe.Recipe {
	techniques := recipe.DetectTechniques(r.Instructions)

	meta := &recipe.SmartMetadata{
		DifficultyScore: e.scoreDifficulty(r, techniques, ctx),
		TimeScore:       e.scoreTime(r, ctx),
		MoodMatch:       matchLevel(r, moodKeywords[ctx.Mood]),
		OccasionMatch:   matchLevel(r, occasionKeywords[ctx.Occasion]),
		LearningValue:   e.scoreLearning(r, techniques, ctx),
	}
	meta.SkillMatch = skillMatchLabel(meta.DifficultyScore, ctx)
	meta.ConfidenceBoost = e.scoreConfidenceBoost(r, meta.DifficultyScore, ctx)
	meta.EmotionalAppeal = emotionalAppeal(r, ctx)
	meta.Tips = buildTips(r, techniques, ctx)
	meta.Variations = buildVariations(r, ctx)
	meta.Troubleshooting = buildTroubleshooting(techniques)
	meta.Relevance = meta.CompositeRelevance()

	enhanced := *r
	enhanced.Metadata = meta
	if enhanced.Nutrition == nil {
		enhanced.Nutrition = EstimateNutrition(&enhanced)
	}
	if enhanced.Calories == 0 && enhanced.Nutrition != nil {
		enhanced.Calories = enhanced.Nutrition.Calories
	}
	return &enhanced
}

// Rank sorts enhanced recipes by descending composite relevance. The sort
// is stable: ties keep the original order, so re-ranking is idempotent.
func (e *Enhancer) Rank(recipes []*recipe.Recipe, ctx Context) []*recipe.Recipe {
	ranked := make([]*recipe.Recipe, len(recipes))
	copy(ranked, recipes)
	sort.SliceStable(ranked, func(i, j int) bool {
		return relevance(ranked[i]) > relevance(ranked[j])
	})
	return ranked
}

func relevance(r *recipe.Recipe) float64 {
	if r.Metadata == nil {
		return 0
	}
	return r.Metadata.Relevance
}

// scoreDifficulty starts at the base and adjusts for ingredient count,
// cook time and named techniques, then clamps toward the user's skill.
func (e *Enhancer) scoreDifficulty(r *recipe.Recipe, techniques []string, ctx Context) int {
	score := axisBase

	switch n := len(r.Ingredients); {
	case n > 15:
		score += 2
	case n < 5:
		score--
	}

	if r.MentionsHours() {
		score += 2
	} else if minutes, ok := recipe.ParseMinutes(r.CookTime); ok && minutes < 30 {
		score--
	}

	score += len(techniques)

	if ctx.Profile != nil {
		switch ctx.Profile.Skill {
		case profile.SkillBeginner:
			if score > 6 {
				score = 6
			}
		case profile.SkillExpert:
			if score < 4 {
				score = 4
			}
		}
	}
	return recipe.ClampAxis(score)
}

// scoreTime buckets parsed minutes, then clamps by the user's standing
// time-constraint preference.
func (e *Enhancer) scoreTime(r *recipe.Recipe, ctx Context) int {
	score := axisBase
	if minutes, ok := recipe.ParseMinutes(r.CookTime); ok {
		switch {
		case minutes < 15:
			score = 2
		case minutes < 30:
			score = 4
		case minutes < 60:
			score = 6
		case minutes < 120:
			score = 8
		default:
			score = 10
		}
	}

	if ctx.Profile != nil {
		switch ctx.Profile.TimePreference {
		case profile.TimeQuick:
			if score > 4 {
				score = 4
			}
		case profile.TimeExtended:
			if score < 6 {
				score = 6
			}
		}
	}
	return recipe.ClampAxis(score)
}

// scoreLearning rewards learning goals, techniques the session has not
// seen yet, and ingredient diversity.
func (e *Enhancer) scoreLearning(r *recipe.Recipe, techniques []string, ctx Context) int {
	score := axisBase
	if ctx.LearningGoal {
		score += 2
	}
	for _, tech := range techniques {
		if ctx.Memory == nil || !ctx.Memory.Short.HasSeenTechnique(tech) {
			score++
		}
	}
	if r.UniqueIngredientCount() > 8 {
		score++
	}
	return recipe.ClampAxis(score)
}

// scoreConfidenceBoost rewards recipes likely to restore a struggling
// cook's confidence.
func (e *Enhancer) scoreConfidenceBoost(r *recipe.Recipe, difficulty int, ctx Context) int {
	score := axisBase
	if ctx.EmotionalState == EmotionFrustrated {
		score += 2
	}
	if ctx.Profile != nil && ctx.Profile.Skill == profile.SkillBeginner && difficulty <= 4 {
		score += 2
	}
	if matchesInterest(r, ctx.Interests) {
		score++
	}
	return recipe.ClampAxis(score)
}

// matchLevel labels mood/occasion fit from keyword co-occurrence between
// the recipe's title/description and the requested label's keyword set.
func matchLevel(r *recipe.Recipe, keywords []string) recipe.MatchLevel {
	if len(keywords) == 0 {
		return recipe.MatchMedium
	}
	text := strings.ToLower(r.Title + " " + r.Description)
	for _, kw := range keywords {
		if containsWord(text, kw) {
			return recipe.MatchHigh
		}
	}
	return recipe.MatchMedium
}

func skillMatchLabel(difficulty int, ctx Context) string {
	if ctx.Profile == nil {
		return "unknown"
	}
	ideal := map[profile.SkillLevel][2]int{
		profile.SkillBeginner:     {1, 4},
		profile.SkillIntermediate: {3, 6},
		profile.SkillAdvanced:     {5, 8},
		profile.SkillExpert:       {6, 10},
	}
	bounds, ok := ideal[ctx.Profile.Skill]
	if !ok {
		return "unknown"
	}
	switch {
	case difficulty >= bounds[0] && difficulty <= bounds[1]:
		return "good match"
	case difficulty < bounds[0]:
		return "below skill level"
	default:
		return "stretch goal"
	}
}

func matchesInterest(r *recipe.Recipe, interests []string) bool {
	if len(interests) == 0 {
		return false
	}
	text := strings.ToLower(r.Title + " " + r.Description)
	for _, interest := range interests {
		if strings.Contains(text, strings.ToLower(interest)) {
			return true
		}
	}
	for _, ing := range r.Ingredients {
		for _, interest := range interests {
			if strings.EqualFold(ing.Name, interest) {
				return true
			}
		}
	}
	return false
}

func emotionalAppeal(r *recipe.Recipe, ctx Context) []string {
	var appeal []string
	text := strings.ToLower(r.Title + " " + r.Description)
	for _, mood := range []string{MoodComfort, MoodAdventure, MoodHealthy, MoodIndulgent, MoodExperimental} {
		for _, kw := range moodKeywords[mood] {
			if containsWord(text, kw) {
				appeal = append(appeal, mood)
				break
			}
		}
	}
	return appeal
}

func buildTips(r *recipe.Recipe, techniques []string, ctx Context) []string {
	var tips []string
	if len(r.Ingredients) > 10 {
		tips = append(tips, "Measure and prep all ingredients before you start cooking.")
	}
	for _, tech := range techniques {
		if tip, ok := techniqueTips[tech]; ok {
			tips = append(tips, tip)
		}
	}
	if ctx.Profile != nil && ctx.Profile.Skill == profile.SkillBeginner {
		tips = append(tips, "Read the full instructions once through before starting.")
	}
	return tips
}

func buildVariations(r *recipe.Recipe, ctx Context) []string {
	var variations []string
	if primary := r.PrimaryIngredient(); primary != "" {
		variations = append(variations, fmt.Sprintf("Swap the %s for a seasonal alternative.", strings.ToLower(primary)))
	}
	if ctx.Mood == MoodHealthy {
		variations = append(variations, "Reduce the oil and serve over leafy greens for a lighter plate.")
	}
	return variations
}

func buildTroubleshooting(techniques []string) []string {
	var hints []string
	for _, tech := range techniques {
		if hint, ok := techniqueTroubleshooting[tech]; ok {
			hints = append(hints, hint)
		}
	}
	return hints
}

var techniqueTips = map[string]string{
	"sauté":  "Keep the pan hot and the ingredients moving when you sauté.",
	"braise": "Low and slow: keep the braise at a bare simmer, not a boil.",
	"roast":  "Let roasted meat rest before carving so the juices settle.",
	"grill":  "Oil the grates, not the food, to prevent sticking.",
	"fry":    "Fry in batches so the oil temperature doesn't crash.",
	"steam":  "Don't let the water touch the steamer basket.",
	"poach":  "Poach just below a simmer; bubbles mean it's too hot.",
}

var techniqueTroubleshooting = map[string]string{
	"sauté":  "If vegetables steam instead of browning, the pan is overcrowded.",
	"braise": "Tough meat after braising usually needs more time, not more heat.",
	"roast":  "If the outside burns before the inside cooks, lower the oven temperature.",
	"grill":  "Flare-ups mean dripping fat; move the food to indirect heat.",
	"fry":    "Greasy results mean the oil was too cold when the food went in.",
	"steam":  "Soggy results usually mean over-steaming; check a minute or two early.",
	"poach":  "Cloudy poaching liquid means the heat was too high.",
}

// containsWord matches a keyword on word boundaries so "rich" never fires
// inside "ostrich".
func containsWord(text, keyword string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], keyword)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(keyword)
		beforeOK := start == 0 || !isWordChar(text[start-1])
		afterOK := end == len(text) || !isWordChar(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
