// internal/store/preference_cache.go
package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"support-match-workers/internal/common/logger"
	"support-match-workers/internal/common/metrics"
	"support-match-workers/internal/models"

	"github.com/redis/go-redis/v9"
)

const preferenceKeyPrefix = "notification:settings:"

// SettingsSource is what CachedPreferenceStore reads through to.
type SettingsSource interface {
	GetNotificationSettings(ctx context.Context, userID string) (*models.NotificationSettings, error)
}

// CachedPreferenceStore caches notification settings in Redis. Cache errors
// never fail a lookup; the source is authoritative.
type CachedPreferenceStore struct {
	source SettingsSource
	redis  *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedPreferenceStore(source SettingsSource, rdb *redis.Client, ttl time.Duration, log logger.Logger) *CachedPreferenceStore {
	return &CachedPreferenceStore{
		source: source,
		redis:  rdb,
		ttl:    ttl,
		logger: log,
	}
}

func preferenceKey(userID string) string {
	return preferenceKeyPrefix + userID
}

func (c *CachedPreferenceStore) GetNotificationSettings(ctx context.Context, userID string) (*models.NotificationSettings, error) {
	key := preferenceKey(userID)

	val, err := c.redis.Get(ctx, key).Result()
	switch {
	case err == nil:
		var st models.NotificationSettings
		if jsonErr := json.Unmarshal([]byte(val), &st); jsonErr == nil {
			metrics.PreferenceCacheLookups.WithLabelValues("hit").Inc()
			return &st, nil
		}
		c.logger.Warn("discarding unreadable cached settings", map[string]interface{}{"userId": userID})
	case !errors.Is(err, redis.Nil):
		metrics.PreferenceCacheLookups.WithLabelValues("error").Inc()
		c.logger.Warn("preference cache read failed", map[string]interface{}{
			"userId": userID,
			"error":  err,
		})
	}
	metrics.PreferenceCacheLookups.WithLabelValues("miss").Inc()

	st, err := c.source.GetNotificationSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(st)
	if err == nil {
		if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.logger.Warn("preference cache write failed", map[string]interface{}{
				"userId": userID,
				"error":  err,
			})
		}
	}
	return st, nil
}

// Invalidate drops the cached settings for userID, for use after they change.
func (c *CachedPreferenceStore) Invalidate(ctx context.Context, userID string) error {
	return c.redis.Del(ctx, preferenceKey(userID)).Err()
}
