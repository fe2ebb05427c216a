package assistant

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alchemorsel/souschef/internal/application/enhance"
	"github.com/alchemorsel/souschef/internal/application/memory"
	"github.com/alchemorsel/souschef/internal/application/nlp"
	"github.com/alchemorsel/souschef/internal/application/validation"
	"github.com/alchemorsel/souschef/internal/domain/profile"
	"github.com/alchemorsel/souschef/internal/domain/recipe"
	memorystore "github.com/alchemorsel/souschef/internal/infrastructure/persistence/memory"
	"github.com/alchemorsel/souschef/internal/ports/outbound"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// scriptedOracle returns pre-built recipes in order and records every
// prompt it receives.
type scriptedOracle struct {
	mu      sync.Mutex
	recipes []*recipe.Recipe
	err     error
	prompts []string
	calls   int
}

func (o *scriptedOracle) GenerateRecipe(ctx context.Context, prompt string, constraints outbound.OracleConstraints) (*recipe.Recipe, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.prompts = append(o.prompts, prompt)
	o.calls++
	if o.err != nil {
		return nil, o.err
	}
	r := o.recipes[(o.calls-1)%len(o.recipes)]
	clone := *r
	return &clone, nil
}

func (o *scriptedOracle) GenerateDescription(ctx context.Context, r *recipe.Recipe) (string, error) {
	return "A scripted description.", nil
}

func (o *scriptedOracle) GenerateImage(ctx context.Context, r *recipe.Recipe) (string, error) {
	return "https://images.example.com/" + r.Title + ".jpg", nil
}

func (o *scriptedOracle) AnalyzeNutrition(ctx context.Context, ingredients []string) (*recipe.NutritionInfo, error) {
	return nil, errors.New("not scripted")
}

func (o *scriptedOracle) HealthCheck(ctx context.Context) error { return nil }

func scriptedRecipe(title, primary, cuisine string) *recipe.Recipe {
	r := recipe.New(title, "A scripted recipe.")
	r.Ingredients = []recipe.Ingredient{
		{Name: primary, Amount: 500, Unit: "g"},
		{Name: "onion", Amount: 1, Unit: "piece"},
	}
	r.Instructions = []string{"Cook everything gently."}
	r.CookTime = "30 minutes"
	r.Servings = 2
	r.Tags = []string{cuisine}
	return r
}

func fixedClock() time.Time {
	return time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
}

func newTestPipeline(t *testing.T, oracle outbound.Oracle, store *memorystore.Store) *Pipeline {
	t.Helper()
	log := zap.NewNop()
	return NewPipeline(
		nlp.NewExtractor(log, nlp.WithClock(fixedClock)),
		validation.NewValidator(log),
		enhance.NewEnhancer(log),
		memory.NewService(store, store, memory.DefaultWindow, log),
		oracle,
		store,
		log,
		WithInterCallDelay(0),
		WithClock(fixedClock),
	)
}

func TestProcessMessageGeneratesRequestedCount(t *testing.T) {
	oracle := &scriptedOracle{recipes: []*recipe.Recipe{
		scriptedRecipe("Pasta Primavera", "pasta", "italian"),
		scriptedRecipe("Pesto Gnocchi", "gnocchi", "italian"),
		scriptedRecipe("Cacio e Pepe", "spaghetti", "italian"),
	}}
	p := newTestPipeline(t, oracle, memorystore.NewStore())

	resp, err := p.ProcessMessage(context.Background(), "give me 3 quick pasta ideas", "user-1", "session-1")

	require.NoError(t, err)
	require.Len(t, resp.Recipes, 3)
	assert.Equal(t, 3, oracle.calls)
	assert.NotEmpty(t, resp.Message)
	assert.NotEmpty(t, resp.FollowUpQuestions)
	for _, r := range resp.Recipes {
		assert.NotNil(t, r.Metadata, r.Title)
		assert.NotNil(t, r.Nutrition, r.Title)
		assert.NotEmpty(t, r.ImageURL, r.Title)
	}
}

func TestVarietyAccumulatorThreadsThroughPrompts(t *testing.T) {
	oracle := &scriptedOracle{recipes: []*recipe.Recipe{
		scriptedRecipe("Chicken Curry", "chicken", "indian"),
		scriptedRecipe("Beef Tacos", "beef", "mexican"),
	}}
	p := newTestPipeline(t, oracle, memorystore.NewStore())

	_, err := p.ProcessMessage(context.Background(), "2 dinner ideas please", "user-1", "session-1")

	require.NoError(t, err)
	require.Len(t, oracle.prompts, 2)
	assert.NotContains(t, oracle.prompts[0], "Avoid repeating")
	assert.Contains(t, oracle.prompts[1], "chicken")
	assert.Contains(t, oracle.prompts[1], "indian")
}

func TestOracleFailureServesFallbacks(t *testing.T) {
	oracle := &scriptedOracle{err: errors.New("model server down")}
	p := newTestPipeline(t, oracle, memorystore.NewStore())

	resp, err := p.ProcessMessage(context.Background(), "give me 3 quick pasta ideas", "user-1", "session-1")

	require.NoError(t, err)
	require.Len(t, resp.Recipes, 3)
	for _, r := range resp.Recipes {
		assert.NotEmpty(t, r.ImageURL, r.Title)
		assert.NotNil(t, r.Metadata, r.Title)
		assert.Greater(t, r.Metadata.Relevance, 0.0, r.Title)
	}
	assert.Contains(t, resp.Message, "favorites")
}

func TestDietaryConflictBlocksGeneration(t *testing.T) {
	store := memorystore.NewStore()
	prof := profile.Default("user-1")
	prof.DietaryRestrictions = []string{"vegan"}
	require.NoError(t, store.SaveProfile(context.Background(), prof))

	oracle := &scriptedOracle{recipes: []*recipe.Recipe{
		scriptedRecipe("Chicken Curry", "chicken", "indian"),
	}}
	p := newTestPipeline(t, oracle, store)

	resp, err := p.ProcessMessage(context.Background(), "chicken curry recipe", "user-1", "session-1")

	require.NoError(t, err)
	assert.Empty(t, resp.Recipes)
	assert.Zero(t, oracle.calls)
	assert.Contains(t, resp.Message, "vegan")
	assert.NotEmpty(t, resp.FollowUpQuestions)
}

// failingProfiles implements outbound.ProfileStore and always errors.
type failingProfiles struct{}

func (failingProfiles) LoadProfile(context.Context, string) (*profile.UserProfile, error) {
	return nil, errors.New("store down")
}
func (failingProfiles) SaveProfile(context.Context, *profile.UserProfile) error {
	return errors.New("store down")
}

func TestProfileStoreFailureUsesDefaultProfile(t *testing.T) {
	oracle := &scriptedOracle{recipes: []*recipe.Recipe{
		scriptedRecipe("Weeknight Stir-Fry", "tofu", "chinese"),
	}}
	store := memorystore.NewStore()
	log := zap.NewNop()
	p := NewPipeline(
		nlp.NewExtractor(log, nlp.WithClock(fixedClock)),
		validation.NewValidator(log),
		enhance.NewEnhancer(log),
		memory.NewService(store, store, memory.DefaultWindow, log),
		oracle,
		failingProfiles{},
		log,
		WithInterCallDelay(0),
	)

	resp, err := p.ProcessMessage(context.Background(), "a single dish for tonight", "user-1", "session-1")

	require.NoError(t, err)
	require.Len(t, resp.Recipes, 1)
}

func TestSessionIngredientsFeedLaterPrompts(t *testing.T) {
	oracle := &scriptedOracle{recipes: []*recipe.Recipe{
		scriptedRecipe("Garlic Chicken", "chicken", "american"),
	}}
	store := memorystore.NewStore()
	p := newTestPipeline(t, oracle, store)
	ctx := context.Background()

	_, err := p.ProcessMessage(ctx, "a chicken dish please", "user-1", "session-1")
	require.NoError(t, err)

	_, err = p.ProcessMessage(ctx, "another dish for tomorrow", "user-1", "session-1")
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(oracle.prompts), 2)
	last := oracle.prompts[len(oracle.prompts)-1]
	assert.Contains(t, last, "chicken")
}

func TestTurnsAreLogged(t *testing.T) {
	oracle := &scriptedOracle{recipes: []*recipe.Recipe{
		scriptedRecipe("Miso Soup", "tofu", "japanese"),
	}}
	store := memorystore.NewStore()
	p := newTestPipeline(t, oracle, store)

	for i := 0; i < 3; i++ {
		_, err := p.ProcessMessage(context.Background(), fmt.Sprintf("a single dish number %d", i), "user-1", "session-1")
		require.NoError(t, err)
	}

	turns := store.Turns("user-1")
	require.Len(t, turns, 3)
	for _, turn := range turns {
		assert.Equal(t, "session-1", turn.SessionID)
		assert.NotEmpty(t, turn.ResponseText)
	}
}
