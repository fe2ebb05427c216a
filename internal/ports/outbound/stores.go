package outbound

import (
	"context"
	"time"

	"github.com/alchemorsel/souschef/internal/domain/conversation"
	"github.com/alchemorsel/souschef/internal/domain/profile"
)

// ProfileStore reads and writes user profile documents. Documents are flat
// key/value shapes; no schema migrations are in scope.
type ProfileStore interface {
	LoadProfile(ctx context.Context, userID string) (*profile.UserProfile, error)
	SaveProfile(ctx context.Context, p *profile.UserProfile) error
}

// SessionStore persists session-scoped short-term memory. Entries expire
// with the session.
type SessionStore interface {
	LoadSession(ctx context.Context, sessionID string) (*conversation.ShortTermMemory, error)
	SaveSession(ctx context.Context, sessionID string, m *conversation.ShortTermMemory) error
}

// PreferenceStore persists long-term memory: preference entries upserted by
// (user, type, value) and the conversation turn log. Append/merge-only;
// normal operation never deletes.
type PreferenceStore interface {
	UpsertPreference(ctx context.Context, userID string, pref conversation.Preference) error
	ListPreferences(ctx context.Context, userID string) ([]conversation.Preference, error)
	AppendTurn(ctx context.Context, userID string, turn conversation.Turn) error
}

// CacheStore is a byte-level cache used for oracle response caching.
type CacheStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
