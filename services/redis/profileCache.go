package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sedtender/tender_portal/config"
	"github.com/sedtender/tender_portal/entities"
	"github.com/sedtender/tender_portal/services/profile"
)

const profileKeyPrefix = "tender_portal:profile:"

type redisProfileCache struct {
	client goredis.Cmdable
	ttl    time.Duration
}

// NewRedisProfileCache creates a new profile.Cache that keeps profiles in redis for the session TTL
func NewRedisProfileCache(cfg *config.AppConfig, client *goredis.Client) profile.Cache {
	return &redisProfileCache{
		client: client,
		ttl:    time.Duration(cfg.Session.TTLSeconds) * time.Second,
	}
}

func (c *redisProfileCache) Get(ctx context.Context, token string) (entities.Profile, error) {
	data, err := c.client.Get(ctx, profileKeyPrefix+profile.CacheKey(token)).Bytes()
	if err == goredis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, errors.Wrap(err, "could not get profile from redis")
	}

	var p entities.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(err, "could not decode cached profile")
	}
	return p, nil
}

func (c *redisProfileCache) Set(ctx context.Context, token string, p entities.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "could not encode profile")
	}

	err = c.client.Set(ctx, profileKeyPrefix+profile.CacheKey(token), data, c.ttl).Err()
	if err != nil {
		return errors.Wrap(err, "could not store profile in redis")
	}
	return nil
}

func (c *redisProfileCache) Delete(ctx context.Context, token string) error {
	err := c.client.Del(ctx, profileKeyPrefix+profile.CacheKey(token)).Err()
	if err != nil {
		return errors.Wrap(err, "could not delete profile from redis")
	}
	return nil
}
