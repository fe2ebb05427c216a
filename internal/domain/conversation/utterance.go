package conversation

import (
	"strings"
	"time"
)

// Utterance is one raw user message. It is created per turn and never mutated.
type Utterance struct {
	Text       string    `json:"text"`
	UserID     string    `json:"user_id"`
	SessionID  string    `json:"session_id"`
	ReceivedAt time.Time `json:"received_at"`
}

// NewUtterance creates an utterance stamped with the current time.
func NewUtterance(text, userID, sessionID string) Utterance {
	return Utterance{
		Text:       text,
		UserID:     userID,
		SessionID:  sessionID,
		ReceivedAt: time.Now(),
	}
}

// Normalized returns the lower-cased, whitespace-trimmed text used by all
// pattern matchers.
func (u Utterance) Normalized() string {
	return strings.ToLower(strings.TrimSpace(u.Text))
}

// WordCount returns the number of whitespace-separated words.
func (u Utterance) WordCount() int {
	return len(strings.Fields(u.Text))
}
