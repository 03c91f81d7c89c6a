package repository

import (
	"context"

	"farewatch-service/internal/domain/entity"
)

// MessengerRepository defines the messaging operations the bot uses.
type MessengerRepository interface {
	// SendMessage delivers text to a chat. Zero-length text is the caller's
	// problem; implementations deliver whatever they are given.
	SendMessage(ctx context.Context, chatID, text string) error

	// GetUpdates fetches updates with ids greater than offset.
	GetUpdates(ctx context.Context, offset int64) ([]entity.Update, error)
}
