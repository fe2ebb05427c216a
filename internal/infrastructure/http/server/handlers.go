package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/alchemorsel/souschef/internal/ports/inbound"
	"github.com/alchemorsel/souschef/internal/ports/outbound"
	"github.com/alchemorsel/souschef/pkg/errors"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type handlers struct {
	assistant inbound.Assistant
	oracle    outbound.Oracle
	logger    *zap.Logger
}

func newHandlers(assistant inbound.Assistant, oracle outbound.Oracle, logger *zap.Logger) *handlers {
	return &handlers{assistant: assistant, oracle: oracle, logger: logger}
}

type chatRequest struct {
	Message   string `json:"message"`
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
}

// chat handles one conversation turn. A missing session ID starts a new
// session.
func (h *handlers) chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, errors.NewBadRequestError("invalid JSON body"))
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		h.writeError(w, r, errors.NewValidationError("message must not be empty"))
		return
	}
	if req.UserID == "" {
		h.writeError(w, r, errors.NewValidationError("user_id must not be empty"))
		return
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	resp, err := h.assistant.ProcessMessage(r.Context(), req.Message, req.UserID, req.SessionID)
	if err != nil {
		h.writeError(w, r, errors.Wrap(err, "processing message"))
		return
	}

	h.writeJSON(w, http.StatusOK, struct {
		*inbound.ChatResponse
		SessionID string `json:"session_id"`
	}{resp, req.SessionID})
}

// health reports liveness plus the oracle's reachability. The service is
// still healthy when the oracle is down; the pipeline degrades to
// fallbacks.
func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok", "oracle": "ok"}
	if err := h.oracle.HealthCheck(r.Context()); err != nil {
		status["oracle"] = "degraded"
	}
	h.writeJSON(w, http.StatusOK, status)
}

func (h *handlers) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *handlers) writeError(w http.ResponseWriter, r *http.Request, appErr *errors.AppError) {
	requestID := middleware.GetReqID(r.Context())
	h.logger.Warn("request failed",
		zap.String("request_id", requestID),
		zap.String("code", string(appErr.Code)),
		zap.Error(appErr))
	h.writeJSON(w, appErr.StatusCode(), errors.ToErrorResponse(appErr, requestID))
}
