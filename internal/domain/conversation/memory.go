package conversation

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Turn is one completed exchange: what the user said and what the
// assistant answered.
type Turn struct {
	ID           uuid.UUID  `json:"id"`
	SessionID    string     `json:"session_id"`
	UserText     string     `json:"user_text"`
	ResponseText string     `json:"response_text"`
	Intent       IntentType `json:"intent"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ShortTermMemory is the session-scoped sliding window of recent activity.
// It is discarded when the session ends.
type ShortTermMemory struct {
	Turns             []Turn   `json:"turns"`
	RecentIngredients []string `json:"recent_ingredients"`
	RecentRecipes     []string `json:"recent_recipes"`
	UsedCuisines      []string `json:"used_cuisines"`
	SeenTechniques    []string `json:"seen_techniques"`
}

// AddTurn appends a turn, evicting the oldest once the window is full.
func (m *ShortTermMemory) AddTurn(t Turn, window int) {
	m.Turns = append(m.Turns, t)
	if window > 0 && len(m.Turns) > window {
		m.Turns = m.Turns[len(m.Turns)-window:]
	}
}

// RememberIngredients records ingredients mentioned this session, deduplicated.
func (m *ShortTermMemory) RememberIngredients(names ...string) {
	m.RecentIngredients = appendUnique(m.RecentIngredients, names...)
}

// RememberRecipes records recipe titles already shown this session.
func (m *ShortTermMemory) RememberRecipes(titles ...string) {
	m.RecentRecipes = appendUnique(m.RecentRecipes, titles...)
}

// RememberCuisines records cuisines already served this session.
func (m *ShortTermMemory) RememberCuisines(cuisines ...string) {
	m.UsedCuisines = appendUnique(m.UsedCuisines, cuisines...)
}

// RememberTechniques records techniques the user has already been shown.
func (m *ShortTermMemory) RememberTechniques(techniques ...string) {
	m.SeenTechniques = appendUnique(m.SeenTechniques, techniques...)
}

// HasSeenTechnique reports whether a technique was already shown this session.
func (m *ShortTermMemory) HasSeenTechnique(technique string) bool {
	for _, t := range m.SeenTechniques {
		if strings.EqualFold(t, technique) {
			return true
		}
	}
	return false
}

// Preference is one long-term preference entry keyed by (type, value),
// carrying a recency timestamp and a strength weight.
type Preference struct {
	Type     string    `json:"type"`
	Value    string    `json:"value"`
	Strength float64   `json:"strength"`
	LastSeen time.Time `json:"last_seen"`
}

// Preference types stored in long-term memory.
const (
	PreferenceDietary    = "dietary"
	PreferenceCuisine    = "cuisine"
	PreferenceIngredient = "ingredient"
	PreferenceSkill      = "skill"
)

// FavoriteThreshold splits ingredient preferences into favorites (above)
// and dislikes (below).
const FavoriteThreshold = 0.5

// LongTermMemory accumulates across sessions. It is read-mostly by the
// pipeline and append/merge-only in storage.
type LongTermMemory struct {
	Preferences []Preference `json:"preferences"`
	Summaries   []string     `json:"summaries"`
}

// Upsert merges a preference by (type, value), keeping the newer timestamp
// and the incoming strength.
func (m *LongTermMemory) Upsert(p Preference) {
	for i, existing := range m.Preferences {
		if existing.Type == p.Type && strings.EqualFold(existing.Value, p.Value) {
			m.Preferences[i].Strength = p.Strength
			if p.LastSeen.After(existing.LastSeen) {
				m.Preferences[i].LastSeen = p.LastSeen
			}
			return
		}
	}
	m.Preferences = append(m.Preferences, p)
}

// ByType returns the values of all preferences of the given type.
func (m *LongTermMemory) ByType(prefType string) []string {
	var values []string
	for _, p := range m.Preferences {
		if p.Type == prefType {
			values = append(values, p.Value)
		}
	}
	return values
}

// FavoriteIngredients returns ingredient preferences above the favorite threshold.
func (m *LongTermMemory) FavoriteIngredients() []string {
	return m.ingredientsAbove(true)
}

// DislikedIngredients returns ingredient preferences below the favorite threshold.
func (m *LongTermMemory) DislikedIngredients() []string {
	return m.ingredientsAbove(false)
}

func (m *LongTermMemory) ingredientsAbove(favorite bool) []string {
	var values []string
	for _, p := range m.Preferences {
		if p.Type != PreferenceIngredient {
			continue
		}
		if favorite && p.Strength > FavoriteThreshold {
			values = append(values, p.Value)
		}
		if !favorite && p.Strength < FavoriteThreshold {
			values = append(values, p.Value)
		}
	}
	return values
}

// Memory bundles the two memory horizons read before and written after
// every turn.
type Memory struct {
	Short ShortTermMemory `json:"short"`
	Long  LongTermMemory  `json:"long"`
}

// NewMemory returns an empty memory.
func NewMemory() *Memory {
	return &Memory{}
}

func appendUnique(existing []string, incoming ...string) []string {
	for _, in := range incoming {
		in = strings.TrimSpace(in)
		if in == "" {
			continue
		}
		found := false
		for _, e := range existing {
			if strings.EqualFold(e, in) {
				found = true
				break
			}
		}
		if !found {
			existing = append(existing, in)
		}
	}
	return existing
}
