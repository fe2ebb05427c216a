package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alchemorsel/souschef/internal/domain/conversation"
	"github.com/alchemorsel/souschef/internal/domain/recipe"
	memorystore "github.com/alchemorsel/souschef/internal/infrastructure/persistence/memory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(window int) (*Service, *memorystore.Store) {
	store := memorystore.NewStore()
	return NewService(store, store, window, zap.NewNop()), store
}

func makeTurn(text string) conversation.Turn {
	return conversation.Turn{
		ID:        uuid.New(),
		SessionID: "session-1",
		UserText:  text,
		Intent:    conversation.IntentRecipeRequest,
		CreatedAt: time.Now(),
	}
}

func ingredientIntent(values ...string) conversation.Intent {
	intent := conversation.Intent{Type: conversation.IntentRecipeRequest}
	for _, v := range values {
		intent.Entities = append(intent.Entities, conversation.Entity{
			Type: conversation.EntityIngredient, Value: v, Confidence: 0.8,
		})
	}
	return intent
}

func TestReadEmpty(t *testing.T) {
	svc, _ := newTestService(DefaultWindow)

	mem := svc.Read(context.Background(), "user-1", "session-1")

	require.NotNil(t, mem)
	assert.Empty(t, mem.Short.Turns)
	assert.Empty(t, mem.Long.Preferences)
}

func TestWindowEviction(t *testing.T) {
	svc, _ := newTestService(2)
	ctx := context.Background()

	mem := svc.Read(ctx, "user-1", "session-1")
	for _, text := range []string{"first", "second", "third"} {
		svc.Write(ctx, "user-1", "session-1", makeTurn(text), conversation.Intent{}, nil, mem)
	}

	reloaded := svc.Read(ctx, "user-1", "session-1")
	require.Len(t, reloaded.Short.Turns, 2)
	assert.Equal(t, "second", reloaded.Short.Turns[0].UserText)
	assert.Equal(t, "third", reloaded.Short.Turns[1].UserText)
}

func TestIngredientPreferenceAccumulates(t *testing.T) {
	svc, _ := newTestService(DefaultWindow)
	ctx := context.Background()

	mem := svc.Read(ctx, "user-1", "session-1")
	svc.Write(ctx, "user-1", "session-1", makeTurn("chicken please"), ingredientIntent("chicken"), nil, mem)

	mem = svc.Read(ctx, "user-1", "session-1")
	require.Len(t, mem.Long.Preferences, 1)
	assert.InDelta(t, 0.6, mem.Long.Preferences[0].Strength, 1e-6)
	assert.Contains(t, mem.Short.RecentIngredients, "chicken")

	svc.Write(ctx, "user-1", "session-1", makeTurn("more chicken"), ingredientIntent("chicken"), nil, mem)

	mem = svc.Read(ctx, "user-1", "session-1")
	require.Len(t, mem.Long.Preferences, 1)
	assert.InDelta(t, 0.7, mem.Long.Preferences[0].Strength, 1e-6)
	assert.Contains(t, mem.Long.FavoriteIngredients(), "chicken")
}

func TestDietaryPreferenceIsAuthoritative(t *testing.T) {
	svc, _ := newTestService(DefaultWindow)
	ctx := context.Background()

	intent := conversation.Intent{Entities: []conversation.Entity{
		{Type: conversation.EntityDietaryRestriction, Value: "vegan", Confidence: 0.8},
	}}

	mem := svc.Read(ctx, "user-1", "session-1")
	svc.Write(ctx, "user-1", "session-1", makeTurn("I'm vegan now"), intent, nil, mem)

	mem = svc.Read(ctx, "user-1", "session-1")
	require.Len(t, mem.Long.Preferences, 1)
	assert.Equal(t, conversation.PreferenceDietary, mem.Long.Preferences[0].Type)
	assert.InDelta(t, 1.0, mem.Long.Preferences[0].Strength, 1e-9)
}

func TestShownRecipesAreRemembered(t *testing.T) {
	svc, store := newTestService(DefaultWindow)
	ctx := context.Background()

	shown := recipe.New("Mushroom Risotto", "")
	shown.Tags = []string{"italian", "comfort"}
	shown.Instructions = []string{"Sauté the mushrooms.", "Stir in the stock."}

	mem := svc.Read(ctx, "user-1", "session-1")
	svc.Write(ctx, "user-1", "session-1", makeTurn("risotto please"), conversation.Intent{}, []*recipe.Recipe{shown}, mem)

	reloaded := svc.Read(ctx, "user-1", "session-1")
	assert.Contains(t, reloaded.Short.RecentRecipes, "Mushroom Risotto")
	assert.Contains(t, reloaded.Short.UsedCuisines, "italian")
	assert.True(t, reloaded.Short.HasSeenTechnique("sauté"))

	turns := store.Turns("user-1")
	require.Len(t, turns, 1)
	assert.Equal(t, "risotto please", turns[0].UserText)
}

// failingStore errors on every call.
type failingStore struct{}

func (failingStore) LoadSession(context.Context, string) (*conversation.ShortTermMemory, error) {
	return nil, errors.New("down")
}
func (failingStore) SaveSession(context.Context, string, *conversation.ShortTermMemory) error {
	return errors.New("down")
}
func (failingStore) UpsertPreference(context.Context, string, conversation.Preference) error {
	return errors.New("down")
}
func (failingStore) ListPreferences(context.Context, string) ([]conversation.Preference, error) {
	return nil, errors.New("down")
}
func (failingStore) AppendTurn(context.Context, string, conversation.Turn) error {
	return errors.New("down")
}

func TestStoreFailuresDegradeToEmptyMemory(t *testing.T) {
	svc := NewService(failingStore{}, failingStore{}, DefaultWindow, zap.NewNop())
	ctx := context.Background()

	mem := svc.Read(ctx, "user-1", "session-1")
	require.NotNil(t, mem)
	assert.Empty(t, mem.Short.Turns)

	// Writing must not panic or propagate errors either.
	svc.Write(ctx, "user-1", "session-1", makeTurn("hello"), ingredientIntent("rice"), nil, mem)
	assert.Contains(t, mem.Short.RecentIngredients, "rice")
}
