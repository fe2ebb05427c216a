// Package profile contains the user's standing dietary, cuisine and skill
// profile. The pipeline reads it; only explicit preference updates mutate it.
package profile

import "strings"

// SkillLevel is the user's self-reported cooking skill.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillExpert       SkillLevel = "expert"
)

// TimePreference is the user's standing cooking-time constraint.
type TimePreference string

const (
	TimeQuick    TimePreference = "quick"
	TimeModerate TimePreference = "moderate"
	TimeExtended TimePreference = "extended"
)

// RestrictionNone is the sentinel value meaning no active restriction.
const RestrictionNone = "none"

// UserProfile is the stored profile document for one user.
type UserProfile struct {
	UserID              string         `json:"user_id"`
	DietaryRestrictions []string       `json:"dietary_restrictions"`
	CuisinePreferences  []string       `json:"cuisine_preferences"`
	Skill               SkillLevel     `json:"skill"`
	TimePreference      TimePreference `json:"time_preference"`
	HealthGoals         []string       `json:"health_goals"`
}

// Default returns the profile used when the store is unavailable or the
// user is new. Store failures degrade to this rather than failing the turn.
func Default(userID string) *UserProfile {
	return &UserProfile{
		UserID:         userID,
		Skill:          SkillIntermediate,
		TimePreference: TimeModerate,
	}
}

// AddRestriction records a dietary restriction, deduplicated case-insensitively.
func (p *UserProfile) AddRestriction(restriction string) {
	restriction = strings.ToLower(strings.TrimSpace(restriction))
	if restriction == "" || restriction == RestrictionNone {
		return
	}
	for _, r := range p.DietaryRestrictions {
		if strings.EqualFold(r, restriction) {
			return
		}
	}
	p.DietaryRestrictions = append(p.DietaryRestrictions, restriction)
}

// ActiveRestrictions returns restrictions with the "none" sentinel filtered out.
func (p *UserProfile) ActiveRestrictions() []string {
	var active []string
	for _, r := range p.DietaryRestrictions {
		if !strings.EqualFold(r, RestrictionNone) {
			active = append(active, r)
		}
	}
	return active
}

// PrefersCuisine reports whether a cuisine is in the preferred list.
func (p *UserProfile) PrefersCuisine(cuisine string) bool {
	for _, c := range p.CuisinePreferences {
		if strings.EqualFold(c, cuisine) {
			return true
		}
	}
	return false
}

// HasHealthGoals reports whether the user has any active health goals.
func (p *UserProfile) HasHealthGoals() bool {
	return len(p.HealthGoals) > 0
}
