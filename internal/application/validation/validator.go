// Package validation checks a requested recipe topic against the user's
// standing dietary, cuisine and skill profile. Dietary conflicts block
// generation; cuisine and skill conflicts are advisory only. That asymmetry
// is a product decision: dietary is safety, the others are preference.
package validation

import (
	"fmt"
	"strings"

	"github.com/alchemorsel/souschef/internal/domain/conversation"
	"github.com/alchemorsel/souschef/internal/domain/profile"
	"go.uber.org/zap"
)

// ConflictType identifies what kind of mismatch was found.
type ConflictType string

const (
	ConflictNone       ConflictType = "none"
	ConflictDietary    ConflictType = "dietary"
	ConflictCuisine    ConflictType = "cuisine"
	ConflictIngredient ConflictType = "ingredient"
)

// Maximum alternative ingredients suggested for a dietary conflict.
const maxAlternatives = 3

// Result is the outcome of validating an utterance against a profile.
type Result struct {
	Valid                bool         `json:"valid"`
	Type                 ConflictType `json:"conflict_type"`
	ConflictingItems     []string     `json:"conflicting_items,omitempty"`
	Suggestion           string       `json:"suggestion,omitempty"`
	AlternativePrompt    string       `json:"alternative_prompt,omitempty"`
	Alternatives         []string     `json:"alternatives,omitempty"`
	ShouldGenerateRecipe bool         `json:"should_generate_recipe"`
}

// Validator detects conflicts between a request and the stored profile.
type Validator struct {
	logger *zap.Logger
}

// NewValidator creates a validator.
func NewValidator(logger *zap.Logger) *Validator {
	return &Validator{logger: logger.Named("validator")}
}

// Validate runs the three checks in priority order. Dietary conflicts are
// the only hard stop; once one is found the cuisine and skill checks are
// skipped entirely.
func (v *Validator) Validate(utt conversation.Utterance, prof *profile.UserProfile) Result {
	text := utt.Normalized()

	if result, found := v.checkDietary(text, prof); found {
		v.logger.Info("dietary conflict detected",
			zap.Strings("items", result.ConflictingItems),
			zap.String("user_id", utt.UserID))
		return result
	}

	if result, found := v.checkCuisine(text, prof); found {
		return result
	}

	if result, found := v.checkSkill(text, prof); found {
		return result
	}

	return Result{Valid: true, Type: ConflictNone, ShouldGenerateRecipe: true}
}

// checkDietary scans every active restriction's forbidden-keyword table.
// The first restriction that triggers becomes the primary conflict and
// generation is blocked.
func (v *Validator) checkDietary(text string, prof *profile.UserProfile) (Result, bool) {
	if prof == nil {
		return Result{}, false
	}

	var primary string
	var conflicting []string
	for _, restriction := range prof.ActiveRestrictions() {
		restriction = strings.ToLower(restriction)
		for _, keyword := range forbiddenKeywords[restriction] {
			if containsWord(text, keyword) {
				if primary == "" {
					primary = restriction
				}
				conflicting = appendUnique(conflicting, keyword)
			}
		}
	}
	if primary == "" {
		return Result{}, false
	}

	alts := lookupAlternatives(primary, conflicting)
	return Result{
		Valid:            false,
		Type:             ConflictDietary,
		ConflictingItems: conflicting,
		Alternatives:     alts,
		Suggestion: fmt.Sprintf("That request includes %s, which conflicts with your %s diet.",
			strings.Join(conflicting, ", "), primary),
		AlternativePrompt:    alternativePrompt(primary, conflicting, alts),
		ShouldGenerateRecipe: false,
	}, true
}

// checkCuisine runs only when the profile lists preferred cuisines. A
// mentioned cuisine outside that list is flagged but generation proceeds.
func (v *Validator) checkCuisine(text string, prof *profile.UserProfile) (Result, bool) {
	if prof == nil || len(prof.CuisinePreferences) == 0 {
		return Result{}, false
	}

	detected := detectCuisine(text)
	if detected == "" || prof.PrefersCuisine(detected) {
		return Result{}, false
	}

	return Result{
		Valid:            false,
		Type:             ConflictCuisine,
		ConflictingItems: []string{detected},
		Suggestion: fmt.Sprintf("%s cuisine isn't in your usual preferences (%s), but here you go.",
			strings.Title(detected), strings.Join(prof.CuisinePreferences, ", ")),
		AlternativePrompt:    fmt.Sprintf("Want a %s take on this instead?", prof.CuisinePreferences[0]),
		ShouldGenerateRecipe: true,
	}, true
}

// checkSkill flags complex ingredients or techniques beyond the user's
// tier. Advisory only.
func (v *Validator) checkSkill(text string, prof *profile.UserProfile) (Result, bool) {
	if prof == nil {
		return Result{}, false
	}
	watchlist, ok := complexIngredients[prof.Skill]
	if !ok {
		return Result{}, false
	}

	var tripped []string
	for _, item := range watchlist {
		if strings.Contains(text, item) {
			tripped = appendUnique(tripped, item)
		}
	}
	if len(tripped) == 0 {
		return Result{}, false
	}

	return Result{
		Valid:            false,
		Type:             ConflictIngredient,
		ConflictingItems: tripped,
		Suggestion: fmt.Sprintf("Heads up: %s can be tricky at the %s level. I'll keep the steps detailed.",
			strings.Join(tripped, ", "), prof.Skill),
		AlternativePrompt:    "Would you like a simpler version to build up to it?",
		ShouldGenerateRecipe: true,
	}, true
}

// lookupAlternatives collects up to three substitutes for the conflicting
// ingredients under the primary restriction.
func lookupAlternatives(restriction string, conflicting []string) []string {
	table := alternatives[restriction]
	if table == nil {
		return nil
	}
	var alts []string
	for _, item := range conflicting {
		for _, alt := range table[item] {
			alts = appendUnique(alts, alt)
			if len(alts) >= maxAlternatives {
				return alts
			}
		}
	}
	return alts
}

func alternativePrompt(restriction string, conflicting, alts []string) string {
	if len(alts) == 0 {
		return fmt.Sprintf("Want a %s-friendly version instead?", restriction)
	}
	return fmt.Sprintf("How about swapping %s for %s? I can build a %s recipe around that.",
		strings.Join(conflicting, ", "), strings.Join(alts, " or "), restriction)
}

// detectCuisine returns the first cuisine whose keyword table matches.
func detectCuisine(text string) string {
	// Fixed scan order keeps detection deterministic.
	for _, cuisine := range []string{
		"italian", "french", "chinese", "japanese", "indian",
		"mexican", "thai", "korean", "greek", "mediterranean",
	} {
		for _, keyword := range cuisineKeywords[cuisine] {
			if strings.Contains(text, keyword) {
				return cuisine
			}
		}
	}
	return ""
}

// containsWord matches a keyword on word boundaries so "ham" does not
// trigger inside "hamper".
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

func appendUnique(list []string, item string) []string {
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	return append(list, item)
}
