package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-blog/internal/logger"
	"github.com/sbilibin2017/gw-blog/internal/models"
)

// RoleCacheRepository caches the role name of a user in Redis
type RoleCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached role names
}

// NewRoleCacheRepository creates a new repository instance
func NewRoleCacheRepository(client *redis.Client, expiration time.Duration) *RoleCacheRepository {
	return &RoleCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func roleCacheKey(userID int64) string {
	return fmt.Sprintf("user_role:%d", userID)
}

// GetRoleName returns models.ErrCacheMiss when nothing is cached for userID.
func (r *RoleCacheRepository) GetRoleName(ctx context.Context, userID int64) (string, error) {
	key := roleCacheKey(userID)

	val, err := r.client.Get(ctx, key).Result()
	logger.Log.Infow("role cache get",
		"key", key,
		"result", val,
		"error", err,
	)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", models.ErrCacheMiss
		}
		return "", err
	}
	return val, nil
}

// SetRoleName caches the role name of userID with expiration
func (r *RoleCacheRepository) SetRoleName(ctx context.Context, userID int64, roleName string) error {
	key := roleCacheKey(userID)
	err := r.client.Set(ctx, key, roleName, r.exp).Err()

	logger.Log.Infow("role cache set",
		"key", key,
		"role", roleName,
		"error", err,
	)
	return err
}

// DeleteRoleName drops the cached role name of userID
func (r *RoleCacheRepository) DeleteRoleName(ctx context.Context, userID int64) error {
	key := roleCacheKey(userID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("role cache delete",
		"key", key,
		"error", err,
	)
	return err
}
