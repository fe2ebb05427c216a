package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alchemorsel/souschef/internal/domain/recipe"
	"github.com/alchemorsel/souschef/internal/ports/inbound"
	"github.com/alchemorsel/souschef/internal/ports/outbound"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubAssistant returns a canned response.
type stubAssistant struct {
	resp *inbound.ChatResponse
	err  error
}

func (s stubAssistant) ProcessMessage(ctx context.Context, text, userID, sessionID string) (*inbound.ChatResponse, error) {
	return s.resp, s.err
}

// stubOracle only implements the health check meaningfully.
type stubOracle struct {
	healthy bool
}

func (s stubOracle) GenerateRecipe(context.Context, string, outbound.OracleConstraints) (*recipe.Recipe, error) {
	return nil, errors.New("not implemented")
}
func (s stubOracle) GenerateDescription(context.Context, *recipe.Recipe) (string, error) {
	return "", errors.New("not implemented")
}
func (s stubOracle) GenerateImage(context.Context, *recipe.Recipe) (string, error) {
	return "", errors.New("not implemented")
}
func (s stubOracle) AnalyzeNutrition(context.Context, []string) (*recipe.NutritionInfo, error) {
	return nil, errors.New("not implemented")
}
func (s stubOracle) HealthCheck(context.Context) error {
	if s.healthy {
		return nil
	}
	return errors.New("oracle down")
}

func testHandlers(assistant inbound.Assistant, oracle outbound.Oracle) *handlers {
	return newHandlers(assistant, oracle, zap.NewNop())
}

func TestChatReturnsResponseAndSessionID(t *testing.T) {
	h := testHandlers(stubAssistant{resp: &inbound.ChatResponse{
		Message:    "Here you go.",
		Confidence: 0.8,
	}}, stubOracle{healthy: true})

	body, _ := json.Marshal(map[string]string{
		"message": "pasta tonight", "user_id": "user-1",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.chat(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var parsed struct {
		Message   string `json:"message"`
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	assert.Equal(t, "Here you go.", parsed.Message)
	assert.NotEmpty(t, parsed.SessionID, "a session id must be generated when absent")
}

func TestChatKeepsProvidedSessionID(t *testing.T) {
	h := testHandlers(stubAssistant{resp: &inbound.ChatResponse{Message: "ok"}}, stubOracle{healthy: true})

	body, _ := json.Marshal(map[string]string{
		"message": "hello", "user_id": "user-1", "session_id": "session-42",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.chat(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "session-42")
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	h := testHandlers(stubAssistant{}, stubOracle{healthy: true})

	body, _ := json.Marshal(map[string]string{"message": "  ", "user_id": "user-1"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.chat(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestChatRejectsMissingUser(t *testing.T) {
	h := testHandlers(stubAssistant{}, stubOracle{healthy: true})

	body, _ := json.Marshal(map[string]string{"message": "dinner"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.chat(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatRejectsMalformedJSON(t *testing.T) {
	h := testHandlers(stubAssistant{}, stubOracle{healthy: true})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.chat(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "BAD_REQUEST")
}

func TestHealthReportsDegradedOracle(t *testing.T) {
	h := testHandlers(stubAssistant{}, stubOracle{healthy: false})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.health(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var status map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "degraded", status["oracle"])
}
