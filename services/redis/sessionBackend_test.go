// +build integration

package redis

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sedtender/tender_portal/services/session"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const testRedisAddr = "localhost:8004"

func connectToIntegrationTestRedis(t *testing.T) *goredis.Client {
	client := goredis.NewClient(&goredis.Options{Addr: testRedisAddr})
	err := client.Ping(context.Background()).Err()
	assert.NoError(t, err)
	return client
}

func Test_RedisSessionBackend__should_return_saved_token(t *testing.T) {
	client := connectToIntegrationTestRedis(t)
	backend := NewRedisSessionBackend(zap.NewNop(), client)
	defer client.Del(context.Background(), sessionKeyPrefix+"session-id")

	err := backend.Save(context.Background(), "session-id", "api-token", time.Minute)
	assert.NoError(t, err)

	token, err := backend.Load(context.Background(), "session-id")
	assert.NoError(t, err)
	assert.Equal(t, "api-token", token)

	ttl, err := client.TTL(context.Background(), sessionKeyPrefix+"session-id").Result()
	assert.NoError(t, err)
	assert.True(t, ttl > 0 && ttl <= time.Minute)
}

func Test_RedisSessionBackend__should_return_ErrSessionNotFound_after_delete(t *testing.T) {
	client := connectToIntegrationTestRedis(t)
	backend := NewRedisSessionBackend(zap.NewNop(), client)

	err := backend.Save(context.Background(), "session-id", "api-token", time.Minute)
	assert.NoError(t, err)

	err = backend.Delete(context.Background(), "session-id")
	assert.NoError(t, err)

	_, err = backend.Load(context.Background(), "session-id")
	assert.Equal(t, session.ErrSessionNotFound, err)

	err = backend.Delete(context.Background(), "session-id")
	assert.Equal(t, session.ErrSessionNotFound, err)
}
