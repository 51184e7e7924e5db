package redis

import (
	"context"
	"time"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sedtender/tender_portal/services/session"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "tender_portal:session:"

type redisSessionBackend struct {
	logger *zap.Logger
	client goredis.Cmdable
}

// NewRedisSessionBackend creates a new session.Backend that keeps tokens in redis
func NewRedisSessionBackend(logger *zap.Logger, client *goredis.Client) session.Backend {
	return &redisSessionBackend{
		logger: logger,
		client: client,
	}
}

func (b *redisSessionBackend) Load(ctx context.Context, id string) (string, error) {
	token, err := b.client.Get(ctx, sessionKeyPrefix+id).Result()
	if err == goredis.Nil {
		return "", session.ErrSessionNotFound
	} else if err != nil {
		return "", errors.Wrap(err, "could not get session from redis")
	}

	return token, nil
}

func (b *redisSessionBackend) Save(ctx context.Context, id, token string, ttl time.Duration) error {
	err := b.client.Set(ctx, sessionKeyPrefix+id, token, ttl).Err()
	if err != nil {
		return errors.Wrap(err, "could not store session in redis")
	}

	return nil
}

func (b *redisSessionBackend) Delete(ctx context.Context, id string) error {
	deleted, err := b.client.Del(ctx, sessionKeyPrefix+id).Result()
	if err != nil {
		return errors.Wrap(err, "could not delete session from redis")
	} else if deleted == 0 {
		return session.ErrSessionNotFound
	}

	return nil
}
