package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sedtender/tender_portal/environment"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// NewDatabase connects to the mongo database described by the MONGO_* env vars
func NewDatabase(logger *zap.Logger, env *environment.Env) (*mongo.Database, error) {
	for _, name := range []string{environment.MongoHost, environment.MongoDatabase, environment.MongoUser, environment.MongoPassword} {
		if env.Get(name) == "" {
			return nil, errors.New(fmt.Sprintf("%s must be defined to connect to the database", name))
		}
	}

	connectionURL := fmt.Sprintf(`mongodb://%s:%s@%s/%s`, env.Get(environment.MongoUser), env.Get(environment.MongoPassword),
		env.Get(environment.MongoHost), env.Get(environment.MongoDatabase))

	client, err := mongo.NewClient(options.Client().ApplyURI(connectionURL))
	if err != nil {
		return nil, errors.Wrap(err, "could not create database client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = client.Connect(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "could not connect to database")
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not ping database")
	}
	logger.Info("connected to database")

	return client.Database(env.Get(environment.MongoDatabase)), nil
}
