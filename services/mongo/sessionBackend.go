package mongo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sedtender/tender_portal/entities"
	"github.com/sedtender/tender_portal/repositories"
	"github.com/sedtender/tender_portal/services/session"
	"github.com/sedtender/tender_portal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type mongoSessionBackend struct {
	logger            *zap.Logger
	sessionRepository *repositories.SessionRepository
	timeProvider      utils.TimeProvider
}

// NewMongoSessionBackend creates a new session.Backend that uses MongoDB as the storage technology
func NewMongoSessionBackend(logger *zap.Logger, sessionRepository *repositories.SessionRepository, timeProvider utils.TimeProvider) session.Backend {
	return &mongoSessionBackend{
		logger:            logger,
		sessionRepository: sessionRepository,
		timeProvider:      timeProvider,
	}
}

func (b *mongoSessionBackend) Load(ctx context.Context, id string) (string, error) {
	res := b.sessionRepository.FindOne(ctx, bson.M{
		string(entities.SessionID): id,
		string(entities.SessionExpiresAt): bson.M{
			"$gt": b.timeProvider.Now(),
		},
	})

	var s entities.Session
	err := res.Decode(&s)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", session.ErrSessionNotFound
		}
		return "", errors.Wrap(err, "could not decode session")
	}

	return s.Token, nil
}

func (b *mongoSessionBackend) Save(ctx context.Context, id, token string, ttl time.Duration) error {
	_, err := b.sessionRepository.UpdateOne(ctx,
		bson.M{string(entities.SessionID): id},
		bson.M{"$set": entities.Session{
			ID:        id,
			Token:     token,
			ExpiresAt: b.timeProvider.Now().Add(ttl),
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return errors.Wrap(err, "could not save session")
	}

	return nil
}

func (b *mongoSessionBackend) Delete(ctx context.Context, id string) error {
	res, err := b.sessionRepository.DeleteOne(ctx, bson.M{
		string(entities.SessionID): id,
	})

	if err != nil {
		return errors.Wrap(err, "could not delete session")
	} else if res.DeletedCount == 0 {
		return session.ErrSessionNotFound
	}

	return nil
}
