// Package memory manages the two conversational memory horizons: the
// session-scoped short-term window and the persisted long-term preference
// list. The pipeline reads memory before every turn and writes after.
package memory

import (
	"context"
	"time"

	"github.com/alchemorsel/souschef/internal/domain/conversation"
	"github.com/alchemorsel/souschef/internal/domain/recipe"
	"github.com/alchemorsel/souschef/internal/ports/outbound"
	"go.uber.org/zap"
)

// DefaultWindow is the short-term turn window when config doesn't override it.
const DefaultWindow = 10

// Strength weights for preferences inferred from a turn. Dietary mentions
// are authoritative; ingredient mentions only nudge.
const (
	dietaryStrength     = 1.0
	cuisineStrength     = 0.8
	ingredientIncrement = 0.1
	ingredientBase      = 0.5
)

// Service coordinates the session store and the long-term preference store.
// Store failures degrade to empty memory; a turn is never failed because
// memory is unavailable.
type Service struct {
	sessions outbound.SessionStore
	prefs    outbound.PreferenceStore
	logger   *zap.Logger
	window   int
}

// NewService creates a memory service with the given short-term window size.
func NewService(sessions outbound.SessionStore, prefs outbound.PreferenceStore, window int, logger *zap.Logger) *Service {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Service{
		sessions: sessions,
		prefs:    prefs,
		logger:   logger.Named("memory"),
		window:   window,
	}
}

// Read loads both memory horizons. Unavailable stores yield empty memory
// with a warning, never an error.
func (s *Service) Read(ctx context.Context, userID, sessionID string) *conversation.Memory {
	mem := conversation.NewMemory()

	if short, err := s.sessions.LoadSession(ctx, sessionID); err != nil {
		s.logger.Warn("session store unavailable, starting with empty short-term memory",
			zap.String("session_id", sessionID), zap.Error(err))
	} else if short != nil {
		mem.Short = *short
	}

	if prefs, err := s.prefs.ListPreferences(ctx, userID); err != nil {
		s.logger.Warn("preference store unavailable, starting with empty long-term memory",
			zap.String("user_id", userID), zap.Error(err))
	} else {
		mem.Long.Preferences = prefs
	}

	return mem
}

// Write records a completed turn: updates the short-term window, infers
// long-term preference updates from the extracted entities, and persists
// both. Persistence failures are logged, not returned; the response has
// already been composed by the time memory is written.
func (s *Service) Write(ctx context.Context, userID, sessionID string, turn conversation.Turn, intent conversation.Intent, shown []*recipe.Recipe, mem *conversation.Memory) {
	mem.Short.AddTurn(turn, s.window)
	mem.Short.RememberIngredients(intent.EntitiesOfType(conversation.EntityIngredient)...)

	for _, r := range shown {
		mem.Short.RememberRecipes(r.Title)
		if cuisine := r.CuisineTag(); cuisine != "" {
			mem.Short.RememberCuisines(cuisine)
		}
		mem.Short.RememberTechniques(recipe.DetectTechniques(r.Instructions)...)
	}

	s.mergePreferences(ctx, userID, intent, mem)

	if err := s.sessions.SaveSession(ctx, sessionID, &mem.Short); err != nil {
		s.logger.Warn("failed to persist short-term memory",
			zap.String("session_id", sessionID), zap.Error(err))
	}
	if err := s.prefs.AppendTurn(ctx, userID, turn); err != nil {
		s.logger.Warn("failed to persist conversation turn",
			zap.String("user_id", userID), zap.Error(err))
	}
}

// mergePreferences upserts long-term preferences inferred from this turn's
// entities. Repeated ingredient mentions accumulate strength toward the
// favorite threshold.
func (s *Service) mergePreferences(ctx context.Context, userID string, intent conversation.Intent, mem *conversation.Memory) {
	now := time.Now()

	for _, value := range intent.EntitiesOfType(conversation.EntityDietaryRestriction) {
		s.upsert(ctx, userID, mem, conversation.Preference{
			Type: conversation.PreferenceDietary, Value: value, Strength: dietaryStrength, LastSeen: now,
		})
	}
	for _, value := range intent.EntitiesOfType(conversation.EntityCuisine) {
		s.upsert(ctx, userID, mem, conversation.Preference{
			Type: conversation.PreferenceCuisine, Value: value, Strength: cuisineStrength, LastSeen: now,
		})
	}
	for _, value := range intent.EntitiesOfType(conversation.EntityIngredient) {
		strength := ingredientBase + ingredientIncrement
		for _, existing := range mem.Long.Preferences {
			if existing.Type == conversation.PreferenceIngredient && existing.Value == value {
				strength = existing.Strength + ingredientIncrement
				if strength > 1.0 {
					strength = 1.0
				}
				break
			}
		}
		s.upsert(ctx, userID, mem, conversation.Preference{
			Type: conversation.PreferenceIngredient, Value: value, Strength: strength, LastSeen: now,
		})
	}
}

func (s *Service) upsert(ctx context.Context, userID string, mem *conversation.Memory, pref conversation.Preference) {
	mem.Long.Upsert(pref)
	if err := s.prefs.UpsertPreference(ctx, userID, pref); err != nil {
		s.logger.Warn("failed to persist preference",
			zap.String("user_id", userID),
			zap.String("type", pref.Type),
			zap.String("value", pref.Value),
			zap.Error(err))
	}
}
