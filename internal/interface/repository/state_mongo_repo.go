package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"farewatch-service/internal/domain/entity"
	"farewatch-service/internal/domain/repository"
	"farewatch-service/pkg/logger"
)

const stateDocID = "bot_state"

// StateMongoRepository persists bot state as a single MongoDB document
type StateMongoRepository struct {
	collection *mongo.Collection
	logger     logger.Logger
}

// NewStateMongoRepository creates a new MongoDB-backed state repository
func NewStateMongoRepository(db *mongo.Database, logger logger.Logger) repository.StateRepository {
	return &StateMongoRepository{
		collection: db.Collection("bot_state"),
		logger:     logger,
	}
}

type stateDoc struct {
	ID        string        `bson:"_id"`
	State     *entity.State `bson:"state"`
	UpdatedAt time.Time     `bson:"updatedAt"`
}

// Load reads the state document. No document yet means a fresh empty state.
func (r *StateMongoRepository) Load(ctx context.Context) (*entity.State, error) {
	var doc stateDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": stateDocID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		r.logger.Info("No state document yet, starting fresh")
		return entity.NewState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	state := doc.State
	if state == nil {
		state = entity.NewState()
	}
	state.Normalize()

	r.logger.Info("State loaded from mongodb", "users", len(state.Users))
	return state, nil
}

// Save replaces the state document, creating it on first save.
func (r *StateMongoRepository) Save(ctx context.Context, state *entity.State) error {
	doc := stateDoc{
		ID:        stateDocID,
		State:     state,
		UpdatedAt: time.Now(),
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": stateDocID}, doc, opts); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	r.logger.Debug("State saved to mongodb", "users", len(state.Users))
	return nil
}
