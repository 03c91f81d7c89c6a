package usecase

import (
	"context"
	"fmt"
	"strings"

	"farewatch-service/internal/domain/entity"
	"farewatch-service/internal/domain/repository"
	"farewatch-service/pkg/logger"
	"farewatch-service/templates"
)

// CommandProcessor drains queued bot updates and routes the slash commands
// they carry. The update cursor advances over every update Telegram hands
// out, command or not, so nothing is replayed on the next run.
type CommandProcessor struct {
	messenger   repository.MessengerRepository
	router      CommandRouter
	adminChatID string
	logger      logger.Logger
}

// NewCommandProcessor creates a new command processor
func NewCommandProcessor(messenger repository.MessengerRepository, router CommandRouter, adminChatID string, logger logger.Logger) *CommandProcessor {
	return &CommandProcessor{
		messenger:   messenger,
		router:      router,
		adminChatID: adminChatID,
		logger:      logger,
	}
}

// ProcessUpdates fetches updates past the persisted cursor and handles each
// command. Only the fetch itself can fail; per-command trouble is logged and
// skipped so one bad message cannot block the rest of the queue.
func (p *CommandProcessor) ProcessUpdates(ctx context.Context, state *entity.State) error {
	state.Normalize()

	updates, err := p.messenger.GetUpdates(ctx, state.LastUpdateID)
	if err != nil {
		return fmt.Errorf("failed to fetch bot updates: %w", err)
	}

	processed := 0
	for _, upd := range updates {
		state.LastUpdateID = upd.ID

		text := strings.TrimSpace(upd.Text)
		if upd.ChatID == "" || !strings.HasPrefix(text, "/") {
			continue
		}
		processed++

		command, args := splitCommand(text)
		cmd := &entity.IncomingCommand{
			ChatID:   upd.ChatID,
			Command:  command,
			Args:     args,
			FromName: upd.FromName,
			Username: upd.Username,
			IsAdmin:  p.adminChatID != "" && upd.ChatID == p.adminChatID,
			Approved: state.Users[upd.ChatID] != nil,
		}

		// Everything except /start requires an approved sender.
		if command != "/start" && !cmd.Approved {
			p.reply(ctx, cmd.ChatID, templates.NoticeUnauthorized)
			continue
		}

		handler := p.router.GetHandler(command)
		if handler == nil {
			p.reply(ctx, cmd.ChatID, templates.NoticeUnknownCommand)
			continue
		}

		if err := handler.Handle(ctx, cmd, state); err != nil {
			p.logger.Warn("Command handling failed",
				"command", command,
				"chatId", cmd.ChatID,
				"error", err)
		}
	}

	if len(updates) > 0 {
		p.logger.Info("Processed bot updates", "updates", len(updates), "commands", processed)
	}
	return nil
}

func (p *CommandProcessor) reply(ctx context.Context, chatID, text string) {
	if err := p.messenger.SendMessage(ctx, chatID, text); err != nil {
		p.logger.Warn("Failed to reply", "chatId", chatID, "error", err)
	}
}

// splitCommand separates "/cmd@botname arg rest" into a lowercase command
// and its trimmed argument remainder.
func splitCommand(text string) (string, string) {
	command := text
	var args string
	if i := strings.IndexAny(text, " \t"); i >= 0 {
		command = text[:i]
		args = strings.TrimSpace(text[i+1:])
	}
	command = strings.ToLower(command)
	if i := strings.Index(command, "@"); i >= 0 {
		command = command[:i]
	}
	return command, args
}
