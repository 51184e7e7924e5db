package utils

import (
	"context"
	"time"

	"github.com/pkg/errors"
	redis "github.com/redis/go-redis/v9"
	"github.com/sedtender/tender_portal/environment"
	"go.uber.org/zap"
)

// NewRedisClient connects to the redis server at the REDIS_ADDR env var
func NewRedisClient(logger *zap.Logger, env *environment.Env) (*redis.Client, error) {
	addr := env.Get(environment.RedisAddr)
	if addr == "" {
		return nil, errors.New("REDIS_ADDR must be defined to connect to redis")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: env.Get(environment.RedisPassword),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrap(err, "could not ping redis")
	}
	logger.Info("connected to redis", zap.String("addr", addr))

	return client, nil
}
