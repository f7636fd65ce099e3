package repository

import (
	"context"
	"time"

	redisapp "galleria/internal/storage/redis"

	"github.com/redis/go-redis/v9"
)

// RedisSessionRepo registers issued admin session tokens so they can be
// revoked before their validity window ends.
type RedisSessionRepo struct {
	Client *redisapp.Client
}

func NewRedisSessionRepo(client *redisapp.Client) *RedisSessionRepo {
	return &RedisSessionRepo{Client: client}
}

func (r *RedisSessionRepo) SaveSession(ctx context.Context, email, token string, exp time.Duration) error {
	return r.Client.Set(ctx, sessionKey(email, token), "1", exp).Err()
}

func (r *RedisSessionRepo) SessionExists(ctx context.Context, email, token string) (bool, error) {
	val, err := r.Client.Get(ctx, sessionKey(email, token)).Result()
	if err == redis.Nil {
		return false, nil
	}
	return val == "1", err
}

func (r *RedisSessionRepo) DeleteSession(ctx context.Context, email, token string) error {
	return r.Client.Del(ctx, sessionKey(email, token)).Err()
}

func (r *RedisSessionRepo) DeleteAllSessions(ctx context.Context, email string) error {
	keys, err := r.Client.Keys(ctx, sessionKey(email, "*")).Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.Client.Del(ctx, keys...).Err()
}

func sessionKey(email, token string) string {
	return "admin_session:" + email + ":" + token
}
