package repository

import (
	"context"
	"fmt"
	"os"

	"farewatch-service/internal/domain/entity"
	"farewatch-service/internal/domain/repository"
	"farewatch-service/pkg/logger"
)

// StateFileRepository persists bot state as a JSON document on local disk
type StateFileRepository struct {
	logger      logger.Logger
	path        string
	adminChatID string
}

// NewStateFileRepository creates a new file-backed state repository
func NewStateFileRepository(path, adminChatID string, logger logger.Logger) repository.StateRepository {
	return &StateFileRepository{
		logger:      logger,
		path:        path,
		adminChatID: adminChatID,
	}
}

// Load reads the state file. A missing file yields a fresh empty state.
func (r *StateFileRepository) Load(ctx context.Context) (*entity.State, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Info("No state file yet, starting fresh", "path", r.path)
			return entity.NewState(), nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	state, err := decodeState(data, r.adminChatID)
	if err != nil {
		return nil, fmt.Errorf("failed to decode state file: %w", err)
	}

	r.logger.Info("State loaded from file", "path", r.path, "users", len(state.Users))
	return state, nil
}

// Save writes the state file, replacing whatever was there.
func (r *StateFileRepository) Save(ctx context.Context, state *entity.State) error {
	data, err := encodeState(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	r.logger.Debug("State saved to file", "path", r.path, "users", len(state.Users))
	return nil
}
