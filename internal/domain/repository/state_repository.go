package repository

import (
	"context"

	"farewatch-service/internal/domain/entity"
)

// StateRepository defines persistence for the bot state. Implementations
// load the whole state at the start of a run and save it back at the end.
type StateRepository interface {
	Load(ctx context.Context) (*entity.State, error)
	Save(ctx context.Context, state *entity.State) error
}
