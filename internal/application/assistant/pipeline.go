// Package assistant orchestrates one conversation turn end to end:
// classify, validate, generate, enhance, rank, compose, remember. The
// pipeline never surfaces internal failures to the caller; every
// degradation path still produces a usable response.
package assistant

import (
	"context"
	"time"

	"github.com/alchemorsel/souschef/internal/application/enhance"
	"github.com/alchemorsel/souschef/internal/application/memory"
	"github.com/alchemorsel/souschef/internal/application/nlp"
	"github.com/alchemorsel/souschef/internal/application/validation"
	"github.com/alchemorsel/souschef/internal/domain/conversation"
	"github.com/alchemorsel/souschef/internal/domain/profile"
	"github.com/alchemorsel/souschef/internal/domain/recipe"
	"github.com/alchemorsel/souschef/internal/ports/inbound"
	"github.com/alchemorsel/souschef/internal/ports/outbound"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultInterCallDelay spaces sequential oracle calls in a multi-recipe
// run so the provider isn't hammered.
const DefaultInterCallDelay = 200 * time.Millisecond

// Metrics receives pipeline events. The monitoring package provides the
// Prometheus-backed implementation.
type Metrics interface {
	TurnProcessed(intent string)
	OracleFailure()
	FallbackServed()
	ConflictDetected(conflictType string)
}

// NopMetrics discards all events. Useful in tests and when monitoring is
// disabled.
type NopMetrics struct{}

func (NopMetrics) TurnProcessed(string)    {}
func (NopMetrics) OracleFailure()          {}
func (NopMetrics) FallbackServed()         {}
func (NopMetrics) ConflictDetected(string) {}

// Pipeline implements inbound.Assistant.
type Pipeline struct {
	extractor *nlp.Extractor
	validator *validation.Validator
	enhancer  *enhance.Enhancer
	memory    *memory.Service
	oracle    outbound.Oracle
	profiles  outbound.ProfileStore
	composer  composer
	metrics   Metrics
	logger    *zap.Logger
	delay     time.Duration
	now       func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithInterCallDelay overrides the pause between sequential oracle calls.
func WithInterCallDelay(d time.Duration) Option {
	return func(p *Pipeline) { p.delay = d }
}

// WithMetrics attaches a metrics sink.
func WithMetrics(m Metrics) Option {
	return func(p *Pipeline) { p.metrics = m }
}

// WithClock overrides the time source for tests.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// NewPipeline wires the pipeline stages together.
func NewPipeline(
	extractor *nlp.Extractor,
	validator *validation.Validator,
	enhancer *enhance.Enhancer,
	mem *memory.Service,
	oracle outbound.Oracle,
	profiles outbound.ProfileStore,
	logger *zap.Logger,
	opts ...Option,
) *Pipeline {
	p := &Pipeline{
		extractor: extractor,
		validator: validator,
		enhancer:  enhancer,
		memory:    mem,
		oracle:    oracle,
		profiles:  profiles,
		metrics:   NopMetrics{},
		logger:    logger.Named("pipeline"),
		delay:     DefaultInterCallDelay,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProcessMessage runs one conversation turn. It returns an error only when
// the context is cancelled; every internal failure degrades instead:
// unreachable profile store falls back to a default profile, an
// unreachable oracle falls back to the fixed recipe set, and blocking
// dietary conflicts produce an alternative-suggestion response.
func (p *Pipeline) ProcessMessage(ctx context.Context, text, userID, sessionID string) (*inbound.ChatResponse, error) {
	mem := p.memory.Read(ctx, userID, sessionID)
	prof := p.loadProfile(ctx, userID)
	utt := conversation.NewUtterance(text, userID, sessionID)

	intent := p.extractor.Classify(utt, nlp.Context{Memory: mem, Profile: prof})
	p.metrics.TurnProcessed(string(intent.Type))

	result := p.validator.Validate(utt, prof)
	if result.Type != validation.ConflictNone {
		p.metrics.ConflictDetected(string(result.Type))
	}

	if !result.ShouldGenerateRecipe {
		resp := p.composer.composeConflict(intent, result)
		p.remember(ctx, userID, sessionID, utt, intent, resp, nil, mem)
		return resp, nil
	}

	generated, degraded := p.generate(ctx, utt, intent, prof, mem)
	if degraded {
		p.metrics.FallbackServed()
	}

	ectx := enhance.DeriveContext(utt, prof, mem)
	enhanced := make([]*recipe.Recipe, 0, len(generated))
	for _, r := range generated {
		enhanced = append(enhanced, p.enhancer.Enhance(r, ectx))
	}
	ranked := p.enhancer.Rank(enhanced, ectx)

	resp := p.composer.compose(intent, result, ranked, degraded)
	p.remember(ctx, userID, sessionID, utt, intent, resp, ranked, mem)
	return resp, nil
}

// loadProfile degrades to a default intermediate profile when the store is
// unreachable.
func (p *Pipeline) loadProfile(ctx context.Context, userID string) *profile.UserProfile {
	prof, err := p.profiles.LoadProfile(ctx, userID)
	if err != nil || prof == nil {
		if err != nil {
			p.logger.Warn("profile store unavailable, using default profile",
				zap.String("user_id", userID), zap.Error(err))
		}
		return profile.Default(userID)
	}
	return prof
}

// generate runs the sequential oracle loop, threading the variety
// accumulator through the calls with a fixed pause between them. If every
// call fails, the fixed fallback set is served instead.
func (p *Pipeline) generate(ctx context.Context, utt conversation.Utterance, intent conversation.Intent, prof *profile.UserProfile, mem *conversation.Memory) ([]*recipe.Recipe, bool) {
	count := intent.RecipeCount
	if count < 1 {
		count = 1
	}

	var recipes []*recipe.Recipe
	variety := varietyState{}

	for i := 0; i < count; i++ {
		if i > 0 && !p.pause(ctx) {
			break
		}

		prompt := buildPrompt(utt, intent, prof, variety, mem)
		constraints := buildConstraints(intent, prof, variety)

		r, err := p.oracle.GenerateRecipe(ctx, prompt, constraints)
		if err != nil || r == nil {
			p.metrics.OracleFailure()
			p.logger.Warn("oracle call failed",
				zap.Int("attempt", i+1), zap.Error(err))
			continue
		}

		p.enrich(ctx, r)
		variety = variety.observe(r.PrimaryIngredient(), r.CuisineTag())
		recipes = append(recipes, r)
	}

	if len(recipes) == 0 {
		return fallbackRecipes(count), true
	}
	return recipes, false
}

// enrich fills in a missing description, image and nutrition analysis. All
// are best-effort; missing nutrition is estimated locally during
// enhancement instead.
func (p *Pipeline) enrich(ctx context.Context, r *recipe.Recipe) {
	if r.Description == "" {
		if desc, err := p.oracle.GenerateDescription(ctx, r); err == nil {
			r.Description = desc
		} else {
			p.logger.Debug("description generation failed", zap.String("recipe", r.Title), zap.Error(err))
		}
	}
	if r.ImageURL == "" {
		if url, err := p.oracle.GenerateImage(ctx, r); err == nil {
			r.ImageURL = url
		} else {
			p.logger.Debug("image generation failed", zap.String("recipe", r.Title), zap.Error(err))
		}
	}
	if r.Nutrition == nil {
		names := make([]string, 0, len(r.Ingredients))
		for _, ing := range r.Ingredients {
			names = append(names, ing.Name)
		}
		if info, err := p.oracle.AnalyzeNutrition(ctx, names); err == nil {
			r.Nutrition = info
		} else {
			p.logger.Debug("nutrition analysis failed", zap.String("recipe", r.Title), zap.Error(err))
		}
	}
}

// pause waits out the inter-call delay, returning false if the context is
// cancelled first.
func (p *Pipeline) pause(ctx context.Context) bool {
	if p.delay <= 0 {
		return true
	}
	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (p *Pipeline) remember(ctx context.Context, userID, sessionID string, utt conversation.Utterance, intent conversation.Intent, resp *inbound.ChatResponse, shown []*recipe.Recipe, mem *conversation.Memory) {
	turn := conversation.Turn{
		ID:           uuid.New(),
		SessionID:    sessionID,
		UserText:     utt.Text,
		ResponseText: resp.Message,
		Intent:       intent.Type,
		CreatedAt:    p.now(),
	}
	p.memory.Write(ctx, userID, sessionID, turn, intent, shown, mem)
}
