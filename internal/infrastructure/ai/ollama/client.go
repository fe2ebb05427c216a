// Package ollama implements the recipe oracle against a local Ollama
// server's chat API.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/alchemorsel/souschef/internal/domain/recipe"
	"github.com/alchemorsel/souschef/internal/ports/outbound"
	"github.com/alchemorsel/souschef/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client talks to an Ollama server. It retries once with the fallback
// model when the primary model is not installed.
type Client struct {
	baseURL       string
	model         string
	fallbackModel string
	httpClient    *http.Client
	logger        *zap.Logger
}

// Config holds client settings.
type Config struct {
	BaseURL       string
	Model         string
	FallbackModel string
	Timeout       time.Duration
}

// NewClient creates an Ollama-backed oracle.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:11434"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		model:         cfg.Model,
		fallbackModel: cfg.FallbackModel,
		httpClient:    &http.Client{Timeout: cfg.Timeout},
		logger:        logger.Named("ollama"),
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Format   string        `json:"format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
	Done    bool        `json:"done"`
	Error   string      `json:"error,omitempty"`
}

const recipeSystemPrompt = `You are a professional chef assistant. Respond with a single JSON object describing one recipe, using exactly these fields:
{"title": string, "description": string, "ingredients": [{"name": string, "amount": number, "unit": string}], "instructions": [string], "cook_time": string, "servings": number, "difficulty": "easy"|"medium"|"hard", "tags": [string]}
Do not include any text outside the JSON object.`

// GenerateRecipe asks the model for one recipe satisfying the prompt and
// constraints and parses the JSON reply.
func (c *Client) GenerateRecipe(ctx context.Context, prompt string, constraints outbound.OracleConstraints) (*recipe.Recipe, error) {
	user := prompt + constraintLines(constraints)

	content, err := c.chat(ctx, recipeSystemPrompt, user, "json")
	if err != nil {
		return nil, errors.NewOracleError("generate recipe", err)
	}

	r, err := parseRecipe(content)
	if err != nil {
		return nil, errors.NewOracleError("parse recipe", err)
	}
	if err := r.Validate(); err != nil {
		return nil, errors.NewOracleError("validate recipe", err)
	}
	return r, nil
}

// GenerateDescription asks for a short appetizing description.
func (c *Client) GenerateDescription(ctx context.Context, r *recipe.Recipe) (string, error) {
	prompt := fmt.Sprintf("Write a single enticing sentence describing this recipe: %s. Ingredients: %s. Reply with the sentence only.",
		r.Title, ingredientNames(r))
	content, err := c.chat(ctx, "You are a food writer.", prompt, "")
	if err != nil {
		return "", errors.NewOracleError("generate description", err)
	}
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(content), `"`)), nil
}

// GenerateImage is not supported by Ollama; it returns a deterministic
// placeholder URL derived from the recipe title.
func (c *Client) GenerateImage(ctx context.Context, r *recipe.Recipe) (string, error) {
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(r.Title), " ", "-"))
	return "https://images.souschef.dev/generated/" + slug + ".jpg", nil
}

// AnalyzeNutrition asks the model for a per-serving nutrition estimate.
func (c *Client) AnalyzeNutrition(ctx context.Context, ingredients []string) (*recipe.NutritionInfo, error) {
	prompt := fmt.Sprintf(`Estimate per-serving nutrition for a dish with these ingredients: %s. Respond with a single JSON object: {"calories": number, "protein": number, "carbs": number, "fat": number, "fiber": number}.`,
		strings.Join(ingredients, ", "))
	content, err := c.chat(ctx, "You are a nutritionist.", prompt, "json")
	if err != nil {
		return nil, errors.NewOracleError("analyze nutrition", err)
	}

	var info recipe.NutritionInfo
	if err := json.Unmarshal([]byte(extractJSON(content)), &info); err != nil {
		return nil, errors.NewOracleError("parse nutrition", err)
	}
	return &info, nil
}

// HealthCheck verifies the server is reachable.
func (c *Client) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewOracleError("health check", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.NewOracleError("health check", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
	return nil
}

// chat sends one chat completion request, retrying once with the fallback
// model if the primary model is missing.
func (c *Client) chat(ctx context.Context, system, user, format string) (string, error) {
	content, err := c.chatWithModel(ctx, c.model, system, user, format)
	if err != nil && c.fallbackModel != "" && isModelNotFound(err) {
		c.logger.Warn("model unavailable, retrying with fallback model",
			zap.String("model", c.model), zap.String("fallback", c.fallbackModel))
		return c.chatWithModel(ctx, c.fallbackModel, system, user, format)
	}
	return content, err
}

func (c *Client) chatWithModel(ctx context.Context, model, system, user, format string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Stream: false,
		Format: format,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("decoding ollama response: %w", err)
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("ollama error: %s", parsed.Error)
	}
	return parsed.Message.Content, nil
}

func isModelNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not found") || strings.Contains(msg, "no such model")
}

// recipePayload mirrors the JSON shape the system prompt requests.
type recipePayload struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Ingredients  []struct {
		Name   string  `json:"name"`
		Amount float64 `json:"amount"`
		Unit   string  `json:"unit"`
	} `json:"ingredients"`
	Instructions []string `json:"instructions"`
	CookTime     string   `json:"cook_time"`
	Servings     int      `json:"servings"`
	Difficulty   string   `json:"difficulty"`
	Tags         []string `json:"tags"`
}

func parseRecipe(content string) (*recipe.Recipe, error) {
	var payload recipePayload
	if err := json.Unmarshal([]byte(extractJSON(content)), &payload); err != nil {
		return nil, fmt.Errorf("decoding recipe JSON: %w", err)
	}

	r := recipe.New(payload.Title, payload.Description)
	r.ID = uuid.New()
	r.Instructions = payload.Instructions
	r.CookTime = payload.CookTime
	r.Servings = payload.Servings
	r.Difficulty = payload.Difficulty
	r.Tags = payload.Tags
	for _, ing := range payload.Ingredients {
		r.Ingredients = append(r.Ingredients, recipe.Ingredient{
			Name:   ing.Name,
			Amount: ing.Amount,
			Unit:   ing.Unit,
		})
	}
	return r, nil
}

// extractJSON cuts the outermost JSON object out of a reply that may be
// wrapped in prose or code fences.
func extractJSON(content string) string {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return content
	}
	return content[start : end+1]
}

func constraintLines(c outbound.OracleConstraints) string {
	var b strings.Builder
	if len(c.Dietary) > 0 {
		fmt.Fprintf(&b, "\nThe recipe must be %s.", strings.Join(c.Dietary, " and "))
	}
	if c.Cuisine != "" {
		fmt.Fprintf(&b, "\nCuisine: %s.", c.Cuisine)
	}
	if c.SkillLevel != "" {
		fmt.Fprintf(&b, "\nWrite instructions for a %s cook.", c.SkillLevel)
	}
	if c.MaxMinutes > 0 {
		fmt.Fprintf(&b, "\nTotal cook time must stay under %d minutes.", c.MaxMinutes)
	}
	if c.Servings > 0 {
		fmt.Fprintf(&b, "\nServings: %d.", c.Servings)
	}
	if len(c.AvoidIngredients) > 0 {
		fmt.Fprintf(&b, "\nDo not use: %s.", strings.Join(c.AvoidIngredients, ", "))
	}
	if len(c.AvoidCuisines) > 0 {
		fmt.Fprintf(&b, "\nAvoid these cuisines: %s.", strings.Join(c.AvoidCuisines, ", "))
	}
	return b.String()
}

func ingredientNames(r *recipe.Recipe) string {
	names := make([]string, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		names = append(names, ing.Name)
	}
	return strings.Join(names, ", ")
}
