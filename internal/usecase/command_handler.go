package usecase

import (
	"context"

	"farewatch-service/internal/domain/entity"
)

// CommandHandler defines the interface for bot command handlers
type CommandHandler interface {
	// CanHandle determines if this handler can process the given command
	CanHandle(command string) bool

	// Handle processes the command, mutating state and replying as needed
	Handle(ctx context.Context, cmd *entity.IncomingCommand, state *entity.State) error
}

// CommandRouter routes commands to the appropriate handler
type CommandRouter interface {
	// Register registers a handler for a specific command
	Register(handler CommandHandler)

	// GetHandler returns the appropriate handler for a given command
	GetHandler(command string) CommandHandler
}
