// Package ai assembles the recipe oracle from a concrete provider plus
// optional response caching.
package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/alchemorsel/souschef/internal/domain/recipe"
	"github.com/alchemorsel/souschef/internal/ports/outbound"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CachingOracle wraps a provider oracle with a byte cache. Only recipe
// generation is cached; descriptions and images are cheap relative to it.
type CachingOracle struct {
	inner  outbound.Oracle
	cache  outbound.CacheStore
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachingOracle wraps the oracle. A nil cache disables caching.
func NewCachingOracle(inner outbound.Oracle, cache outbound.CacheStore, ttl time.Duration, logger *zap.Logger) *CachingOracle {
	return &CachingOracle{
		inner:  inner,
		cache:  cache,
		ttl:    ttl,
		logger: logger.Named("ai-cache"),
	}
}

// GenerateRecipe serves a cached recipe for an identical prompt and
// constraint set, otherwise delegates and stores the result. Cached copies
// get a fresh ID so repeated hits stay distinguishable downstream.
func (o *CachingOracle) GenerateRecipe(ctx context.Context, prompt string, constraints outbound.OracleConstraints) (*recipe.Recipe, error) {
	if o.cache == nil {
		return o.inner.GenerateRecipe(ctx, prompt, constraints)
	}

	key := cacheKey(prompt, constraints)
	if data, err := o.cache.Get(ctx, key); err == nil && len(data) > 0 {
		var r recipe.Recipe
		if err := json.Unmarshal(data, &r); err == nil {
			r.ID = uuid.New()
			o.logger.Debug("recipe cache hit", zap.String("key", key))
			return &r, nil
		}
	}

	r, err := o.inner.GenerateRecipe(ctx, prompt, constraints)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(r); err == nil {
		if err := o.cache.Set(ctx, key, data, o.ttl); err != nil {
			o.logger.Debug("failed to cache recipe", zap.String("key", key), zap.Error(err))
		}
	}
	return r, nil
}

func (o *CachingOracle) GenerateDescription(ctx context.Context, r *recipe.Recipe) (string, error) {
	return o.inner.GenerateDescription(ctx, r)
}

func (o *CachingOracle) GenerateImage(ctx context.Context, r *recipe.Recipe) (string, error) {
	return o.inner.GenerateImage(ctx, r)
}

func (o *CachingOracle) AnalyzeNutrition(ctx context.Context, ingredients []string) (*recipe.NutritionInfo, error) {
	return o.inner.AnalyzeNutrition(ctx, ingredients)
}

func (o *CachingOracle) HealthCheck(ctx context.Context) error {
	return o.inner.HealthCheck(ctx)
}

func cacheKey(prompt string, constraints outbound.OracleConstraints) string {
	h := sha256.New()
	h.Write([]byte(prompt))
	if data, err := json.Marshal(constraints); err == nil {
		h.Write(data)
	}
	return "souschef:recipe:" + hex.EncodeToString(h.Sum(nil))
}
