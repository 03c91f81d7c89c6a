package router

import (
	"farewatch-service/internal/usecase"
	"farewatch-service/pkg/logger"
)

// CommandRouter routes incoming bot commands to appropriate handlers
type CommandRouter struct {
	handlers []usecase.CommandHandler
	logger   logger.Logger
}

// NewCommandRouter creates a new command router
func NewCommandRouter(logger logger.Logger) *CommandRouter {
	return &CommandRouter{
		handlers: make([]usecase.CommandHandler, 0),
		logger:   logger,
	}
}

// Register registers a handler for a specific command
func (r *CommandRouter) Register(handler usecase.CommandHandler) {
	r.handlers = append(r.handlers, handler)
	r.logger.Debug("Registered command handler", "handler", handler)
}

// GetHandler returns the appropriate handler for a given command
func (r *CommandRouter) GetHandler(command string) usecase.CommandHandler {
	for _, handler := range r.handlers {
		if handler.CanHandle(command) {
			return handler
		}
	}
	return nil
}
