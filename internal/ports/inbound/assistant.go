// Package inbound defines the interfaces for inbound ports (primary/driving
// adapters). This is the sole contract the surrounding UI layer depends on.
package inbound

import (
	"context"

	"github.com/alchemorsel/souschef/internal/domain/recipe"
)

// ChatResponse is the assembled result of one conversation turn.
type ChatResponse struct {
	Message           string           `json:"message"`
	Recipes           []*recipe.Recipe `json:"recipes"`
	FollowUpQuestions []string         `json:"follow_up_questions"`
	Confidence        float64          `json:"confidence"`
}

// Assistant is the pipeline entry point. ProcessMessage never propagates
// internal failures: the worst case is a generic apologetic response.
type Assistant interface {
	ProcessMessage(ctx context.Context, text, userID, sessionID string) (*ChatResponse, error)
}
