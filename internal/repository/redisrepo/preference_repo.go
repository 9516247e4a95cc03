package redisrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"jtrack-backend/internal/domain"

	"github.com/redis/go-redis/v9"
)

const prefKeyPrefix = "prefs:user:"

type preferenceRepo struct {
	client *redis.Client
}

// NewPreferenceRepository stores per-user display preferences (view mode,
// font size) in Redis. Users who never saved anything get the defaults.
func NewPreferenceRepository(client *redis.Client) domain.PreferenceRepository {
	return &preferenceRepo{client: client}
}

func (r *preferenceRepo) Get(ctx context.Context, userID string) (*domain.Preferences, error) {
	val, err := r.client.Get(ctx, prefKeyPrefix+userID).Result()
	if errors.Is(err, redis.Nil) {
		prefs := domain.DefaultPreferences()
		return &prefs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	var prefs domain.Preferences
	if err := json.Unmarshal([]byte(val), &prefs); err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}
	return &prefs, nil
}

func (r *preferenceRepo) Set(ctx context.Context, userID string, prefs domain.Preferences) error {
	b, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	// No TTL: preferences live until overwritten.
	return r.client.Set(ctx, prefKeyPrefix+userID, b, 0).Err()
}

type memoryPreferenceRepo struct {
	store sync.Map
}

// NewMemoryPreferenceRepository keeps preferences in process memory. Used
// when Redis is not configured; preferences reset on restart.
func NewMemoryPreferenceRepository() domain.PreferenceRepository {
	return &memoryPreferenceRepo{}
}

func (r *memoryPreferenceRepo) Get(ctx context.Context, userID string) (*domain.Preferences, error) {
	if val, ok := r.store.Load(userID); ok {
		prefs := val.(domain.Preferences)
		return &prefs, nil
	}
	prefs := domain.DefaultPreferences()
	return &prefs, nil
}

func (r *memoryPreferenceRepo) Set(ctx context.Context, userID string, prefs domain.Preferences) error {
	r.store.Store(userID, prefs)
	return nil
}
