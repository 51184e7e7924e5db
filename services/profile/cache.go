package profile

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/sedtender/tender_portal/config"
	"github.com/sedtender/tender_portal/entities"
	"github.com/sedtender/tender_portal/utils"
)

// Cache keeps the last known profile of each session.
// Get returns a nil profile and no error when nothing is cached for the token
type Cache interface {
	Get(ctx context.Context, token string) (entities.Profile, error)
	Set(ctx context.Context, token string, profile entities.Profile) error
	Delete(ctx context.Context, token string) error
}

// CacheKey is the key profiles are cached under, tokens are never stored as keys
func CacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

type memoryEntry struct {
	profile   entities.Profile
	expiresAt time.Time
}

type memoryCache struct {
	mu           sync.Mutex
	ttl          time.Duration
	entries      map[string]memoryEntry
	timeProvider utils.TimeProvider
}

// NewMemoryCache creates a Cache that keeps profiles in process memory for the session TTL
func NewMemoryCache(cfg *config.AppConfig, timeProvider utils.TimeProvider) Cache {
	return &memoryCache{
		ttl:          time.Duration(cfg.Session.TTLSeconds) * time.Second,
		entries:      map[string]memoryEntry{},
		timeProvider: timeProvider,
	}
}

func (c *memoryCache) Get(_ context.Context, token string) (entities.Profile, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := CacheKey(token)
	entry, ok := c.entries[key]
	if !ok {
		return nil, nil
	}
	if c.ttl > 0 && !c.timeProvider.Now().Before(entry.expiresAt) {
		delete(c.entries, key)
		return nil, nil
	}
	return entry.profile.Clone(), nil
}

func (c *memoryCache) Set(_ context.Context, token string, profile entities.Profile) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.timeProvider.Now()
	c.cleanup(now)
	c.entries[CacheKey(token)] = memoryEntry{
		profile:   profile.Clone(),
		expiresAt: now.Add(c.ttl),
	}
	return nil
}

func (c *memoryCache) Delete(_ context.Context, token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, CacheKey(token))
	return nil
}

// cleanup drops expired entries, c.mu must be held
func (c *memoryCache) cleanup(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for key, entry := range c.entries {
		if !now.Before(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
}
