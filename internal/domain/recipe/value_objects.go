package recipe

import "strings"

// NutritionInfo contains per-serving nutritional estimates.
type NutritionInfo struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein_g"`
	Carbs    float64 `json:"carbs_g"`
	Fat      float64 `json:"fat_g"`
	Fiber    float64 `json:"fiber_g"`
}

// Techniques are the named cooking techniques recognized by the difficulty
// and learning scorers. Both spellings of sauté are matched and reported
// under the accented form.
var Techniques = []string{"sauté", "saute", "braise", "roast", "grill", "fry", "steam", "poach"}

// DetectTechniques returns the named techniques mentioned in the given
// instruction steps, deduplicated, in recognition order.
func DetectTechniques(instructions []string) []string {
	joined := strings.ToLower(strings.Join(instructions, " "))

	var found []string
	seen := make(map[string]bool)
	for _, tech := range Techniques {
		canonical := tech
		if canonical == "saute" {
			canonical = "sauté"
		}
		if seen[canonical] || !strings.Contains(joined, tech) {
			continue
		}
		found = append(found, canonical)
		seen[canonical] = true
	}
	return found
}
