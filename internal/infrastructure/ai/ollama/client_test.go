package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alchemorsel/souschef/internal/ports/outbound"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleRecipeJSON = `{
	"title": "Garlic Butter Shrimp",
	"description": "Quick skillet shrimp.",
	"ingredients": [
		{"name": "shrimp", "amount": 500, "unit": "g"},
		{"name": "garlic", "amount": 4, "unit": "cloves"}
	],
	"instructions": ["Melt the butter.", "Fry the shrimp."],
	"cook_time": "15 minutes",
	"servings": 2,
	"difficulty": "easy",
	"tags": ["seafood", "quick"]
}`

func TestParseRecipe(t *testing.T) {
	r, err := parseRecipe(sampleRecipeJSON)

	require.NoError(t, err)
	assert.Equal(t, "Garlic Butter Shrimp", r.Title)
	require.Len(t, r.Ingredients, 2)
	assert.Equal(t, "shrimp", r.Ingredients[0].Name)
	assert.InDelta(t, 500.0, r.Ingredients[0].Amount, 1e-9)
	assert.Equal(t, 2, r.Servings)
	assert.NoError(t, r.Validate())
}

func TestParseRecipeStripsSurroundingProse(t *testing.T) {
	wrapped := "Sure! Here is your recipe:\n```json\n" + sampleRecipeJSON + "\n```\nEnjoy!"

	r, err := parseRecipe(wrapped)

	require.NoError(t, err)
	assert.Equal(t, "Garlic Butter Shrimp", r.Title)
}

func TestParseRecipeRejectsGarbage(t *testing.T) {
	_, err := parseRecipe("I cannot help with that.")
	assert.Error(t, err)
}

func TestConstraintLines(t *testing.T) {
	got := constraintLines(outbound.OracleConstraints{
		Dietary:          []string{"vegan", "nut-free"},
		Cuisine:          "thai",
		SkillLevel:       "beginner",
		MaxMinutes:       30,
		AvoidIngredients: []string{"tofu"},
	})

	assert.Contains(t, got, "vegan and nut-free")
	assert.Contains(t, got, "thai")
	assert.Contains(t, got, "beginner")
	assert.Contains(t, got, "30 minutes")
	assert.Contains(t, got, "Do not use: tofu")
}

func TestGenerateRecipeAgainstFakeServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat", r.URL.Path)

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)

		json.NewEncoder(w).Encode(chatResponse{
			Message: chatMessage{Role: "assistant", Content: sampleRecipeJSON},
			Done:    true,
		})
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, Model: "test-model"}, zap.NewNop())

	r, err := client.GenerateRecipe(context.Background(), "shrimp dinner", outbound.OracleConstraints{})

	require.NoError(t, err)
	assert.Equal(t, "Garlic Butter Shrimp", r.Title)
}

func TestModelNotFoundFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.Model == "missing-model" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": "model 'missing-model' not found"}`))
			return
		}
		json.NewEncoder(w).Encode(chatResponse{
			Message: chatMessage{Role: "assistant", Content: sampleRecipeJSON},
			Done:    true,
		})
	}))
	defer srv.Close()

	client := NewClient(Config{
		BaseURL:       srv.URL,
		Model:         "missing-model",
		FallbackModel: "backup-model",
	}, zap.NewNop())

	r, err := client.GenerateRecipe(context.Background(), "shrimp dinner", outbound.OracleConstraints{})

	require.NoError(t, err)
	assert.Equal(t, "Garlic Butter Shrimp", r.Title)
}

func TestHealthCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/tags", r.URL.Path)
		w.Write([]byte(`{"models": []}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, Model: "m"}, zap.NewNop())
	assert.NoError(t, client.HealthCheck(context.Background()))

	srv.Close()
	assert.Error(t, client.HealthCheck(context.Background()))
}
