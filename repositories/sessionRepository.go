package repositories

import (
	"context"

	"github.com/sedtender/tender_portal/entities"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/bsonx"
)

// SessionRepository is the repository for server side sessions
type SessionRepository struct {
	*mongo.Collection
}

const sessionCollection = "sessions"

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *mongo.Database) (*SessionRepository, error) {
	_, err := db.Collection(sessionCollection).Indexes().CreateMany(
		context.Background(),
		[]mongo.IndexModel{
			{
				Keys:    bsonx.Doc{{Key: string(entities.SessionID), Value: bsonx.Int32(1)}},
				Options: options.Index().SetUnique(true),
			},
			{
				// mongo removes sessions once expires_at has passed
				Keys:    bsonx.Doc{{Key: string(entities.SessionExpiresAt), Value: bsonx.Int32(1)}},
				Options: options.Index().SetExpireAfterSeconds(0),
			},
		},
	)

	if err != nil {
		return nil, err
	}

	return &SessionRepository{
		Collection: db.Collection(sessionCollection),
	}, nil
}
