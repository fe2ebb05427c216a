// Package memory provides in-process store implementations used when Redis
// or the database is unavailable, and by tests. State is per-process and
// lost on restart.
package memory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/alchemorsel/souschef/internal/domain/conversation"
	"github.com/alchemorsel/souschef/internal/domain/profile"
)

// Store implements every outbound store interface on process-local maps.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*conversation.ShortTermMemory
	profiles map[string]*profile.UserProfile
	prefs    map[string][]conversation.Preference
	turns    map[string][]conversation.Turn
	cache    map[string]cacheEntry
}

type cacheEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewStore creates an empty in-process store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*conversation.ShortTermMemory),
		profiles: make(map[string]*profile.UserProfile),
		prefs:    make(map[string][]conversation.Preference),
		turns:    make(map[string][]conversation.Turn),
		cache:    make(map[string]cacheEntry),
	}
}

func (s *Store) LoadSession(ctx context.Context, sessionID string) (*conversation.ShortTermMemory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.sessions[sessionID]
	if !ok {
		return &conversation.ShortTermMemory{}, nil
	}
	return cloneShortTerm(stored), nil
}

func (s *Store) SaveSession(ctx context.Context, sessionID string, m *conversation.ShortTermMemory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = cloneShortTerm(m)
	return nil
}

func (s *Store) LoadProfile(ctx context.Context, userID string) (*profile.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.profiles[userID]
	if !ok {
		return nil, nil
	}
	clone := *stored
	return &clone, nil
}

func (s *Store) SaveProfile(ctx context.Context, p *profile.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *p
	s.profiles[p.UserID] = &clone
	return nil
}

func (s *Store) UpsertPreference(ctx context.Context, userID string, pref conversation.Preference) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing := s.prefs[userID]
	for i, p := range existing {
		if p.Type == pref.Type && p.Value == pref.Value {
			existing[i] = pref
			return nil
		}
	}
	s.prefs[userID] = append(existing, pref)
	return nil
}

func (s *Store) ListPreferences(ctx context.Context, userID string) ([]conversation.Preference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]conversation.Preference{}, s.prefs[userID]...), nil
}

func (s *Store) AppendTurn(ctx context.Context, userID string, turn conversation.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns[userID] = append(s.turns[userID], turn)
	return nil
}

// Turns returns the logged turns for a user. Test helper.
func (s *Store) Turns(userID string) []conversation.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]conversation.Turn{}, s.turns[userID]...)
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.cache[key]
	if !ok || (!entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt)) {
		return nil, nil
	}
	return append([]byte{}, entry.data...), nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := cacheEntry{data: append([]byte{}, value...)}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	s.cache[key] = entry
	return nil
}

// cloneShortTerm deep-copies through JSON so callers never share slices
// with the stored value.
func cloneShortTerm(m *conversation.ShortTermMemory) *conversation.ShortTermMemory {
	data, err := json.Marshal(m)
	if err != nil {
		return &conversation.ShortTermMemory{}
	}
	var clone conversation.ShortTermMemory
	if err := json.Unmarshal(data, &clone); err != nil {
		return &conversation.ShortTermMemory{}
	}
	return &clone
}
