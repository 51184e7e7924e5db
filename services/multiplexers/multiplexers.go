package multiplexers

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sedtender/tender_portal/config"
	"github.com/sedtender/tender_portal/environment"
	"github.com/sedtender/tender_portal/repositories"
	"github.com/sedtender/tender_portal/services"
	mongoservices "github.com/sedtender/tender_portal/services/mongo"
	"github.com/sedtender/tender_portal/services/multiplexers/types"
	"github.com/sedtender/tender_portal/services/profile"
	redisservices "github.com/sedtender/tender_portal/services/redis"
	"github.com/sedtender/tender_portal/services/session"
	"github.com/sedtender/tender_portal/utils"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Connections holds the storage clients required by the configured session provider.
// Clients the provider does not use are nil
type Connections struct {
	Redis *goredis.Client
	Mongo *mongo.Database
}

// NewConnections connects to the storage used by the configured session provider
func NewConnections(logger *zap.Logger, cfg *config.AppConfig, env *environment.Env) (*Connections, error) {
	switch cfg.Session.Provider {
	case types.Cookie:
		return &Connections{}, nil
	case types.Redis:
		client, err := utils.NewRedisClient(logger, env)
		if err != nil {
			return nil, err
		}
		return &Connections{Redis: client}, nil
	case types.Mongo:
		db, err := utils.NewDatabase(logger, env)
		if err != nil {
			return nil, err
		}
		return &Connections{Mongo: db}, nil
	default:
		return nil, invalidProvider(cfg.Session.Provider)
	}
}

// Close disconnects the clients held by c
func (c *Connections) Close(ctx context.Context) error {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			return errors.Wrap(err, "could not close redis client")
		}
	}
	if c.Mongo != nil {
		if err := c.Mongo.Client().Disconnect(ctx); err != nil {
			return errors.Wrap(err, "could not disconnect from mongo")
		}
	}
	return nil
}

// NewSessionStore creates the session store of the configured session provider
func NewSessionStore(logger *zap.Logger, cfg *config.AppConfig, env *environment.Env, connections *Connections,
	timeProvider utils.TimeProvider) (session.Store, error) {
	switch cfg.Session.Provider {
	case types.Cookie:
		return session.NewCookieStore(logger, cfg, env, timeProvider)
	case types.Redis:
		return session.NewBackendStore(logger, cfg, redisservices.NewRedisSessionBackend(logger, connections.Redis)), nil
	case types.Mongo:
		sessionRepository, err := repositories.NewSessionRepository(connections.Mongo)
		if err != nil {
			return nil, errors.Wrap(err, "could not create session repository")
		}
		return session.NewBackendStore(logger, cfg, mongoservices.NewMongoSessionBackend(logger, sessionRepository, timeProvider)), nil
	default:
		return nil, invalidProvider(cfg.Session.Provider)
	}
}

// NewProfileCache creates the profile cache matching the configured session provider.
// Only redis sessions share profiles between instances, other providers cache in memory
func NewProfileCache(cfg *config.AppConfig, connections *Connections, timeProvider utils.TimeProvider) (profile.Cache, error) {
	switch cfg.Session.Provider {
	case types.Redis:
		return redisservices.NewRedisProfileCache(cfg, connections.Redis), nil
	case types.Cookie, types.Mongo:
		return profile.NewMemoryCache(cfg, timeProvider), nil
	default:
		return nil, invalidProvider(cfg.Session.Provider)
	}
}

func invalidProvider(provider types.StorageProvider) error {
	return errors.Wrap(services.ErrUnknownProvider, fmt.Sprintf("session provider %s is invalid", provider))
}
