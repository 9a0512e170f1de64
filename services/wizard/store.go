// File: services/wizard/store.go
package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cyfairmaids/models"
	"cyfairmaids/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore persists wizard drafts between requests.
type SessionStore interface {
	Save(ctx context.Context, sess *models.WizardSession) error
	Get(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps drafts as JSON values with a sliding TTL.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisSessionStore returns a store on the shared wizard cache client.
func NewRedisSessionStore() *RedisSessionStore {
	return &RedisSessionStore{
		Client: utils.GetWizardCacheClient(),
		TTL:    utils.WizardSessionTTL,
	}
}

func (s *RedisSessionStore) key(sessionID string) string {
	return utils.WizardSessionPrefix + sessionID
}

func (s *RedisSessionStore) Save(ctx context.Context, sess *models.WizardSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	if err := s.Client.Set(ctx, s.key(sess.SessionID), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store wizard session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	data, err := s.Client.Get(ctx, s.key(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load wizard session: %w", err)
	}
	var sess models.WizardSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to parse wizard session: %w", err)
	}
	return &sess, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete wizard session: %w", err)
	}
	return nil
}
