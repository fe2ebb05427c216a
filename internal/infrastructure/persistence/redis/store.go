// Package redis backs the session, profile and cache stores with Redis.
// Everything is stored as JSON documents under namespaced keys.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alchemorsel/souschef/internal/domain/conversation"
	"github.com/alchemorsel/souschef/internal/domain/profile"
	"github.com/alchemorsel/souschef/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	sessionKeyPrefix = "souschef:session:"
	profileKeyPrefix = "souschef:profile:"
)

// Store implements the session, profile and cache stores on one Redis
// connection.
type Store struct {
	client     *redis.Client
	sessionTTL time.Duration
	logger     *zap.Logger
}

// Config holds Redis connection settings.
type Config struct {
	Addr       string
	Password   string
	DB         int
	SessionTTL time.Duration
}

// NewStore connects to Redis and verifies the connection.
func NewStore(ctx context.Context, cfg Config, logger *zap.Logger) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Addr, err)
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	return &Store{
		client:     client,
		sessionTTL: cfg.SessionTTL,
		logger:     logger.Named("redis"),
	}, nil
}

// LoadSession returns the stored short-term memory, or an empty one when
// the session has no entry yet.
func (s *Store) LoadSession(ctx context.Context, sessionID string) (*conversation.ShortTermMemory, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if err == redis.Nil {
		return &conversation.ShortTermMemory{}, nil
	}
	if err != nil {
		return nil, errors.NewSessionStoreError("load session", err)
	}

	var m conversation.ShortTermMemory
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.NewSessionStoreError("decode session", err)
	}
	return &m, nil
}

// SaveSession writes the short-term memory and refreshes the session TTL.
func (s *Store) SaveSession(ctx context.Context, sessionID string, m *conversation.ShortTermMemory) error {
	data, err := json.Marshal(m)
	if err != nil {
		return errors.NewSessionStoreError("encode session", err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+sessionID, data, s.sessionTTL).Err(); err != nil {
		return errors.NewSessionStoreError("save session", err)
	}
	return nil
}

// LoadProfile returns the stored profile, or nil when the user has none.
func (s *Store) LoadProfile(ctx context.Context, userID string) (*profile.UserProfile, error) {
	data, err := s.client.Get(ctx, profileKeyPrefix+userID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewProfileStoreError("load profile", err)
	}

	var p profile.UserProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.NewProfileStoreError("decode profile", err)
	}
	return &p, nil
}

// SaveProfile writes the profile. Profiles do not expire.
func (s *Store) SaveProfile(ctx context.Context, p *profile.UserProfile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return errors.NewProfileStoreError("encode profile", err)
	}
	if err := s.client.Set(ctx, profileKeyPrefix+p.UserID, data, 0).Err(); err != nil {
		return errors.NewProfileStoreError("save profile", err)
	}
	return nil
}

// Get implements the byte cache.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// Set implements the byte cache.
func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

// Ping reports connection health.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.client.Close()
}
