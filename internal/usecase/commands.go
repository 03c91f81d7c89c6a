package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"farewatch-service/internal/domain/entity"
	"farewatch-service/internal/domain/repository"
	"farewatch-service/pkg/logger"
	"farewatch-service/templates"
)

// StartHandler processes /start: approved users get the command reference,
// everyone else enters (or is reminded of) the approval queue.
type StartHandler struct {
	messenger   repository.MessengerRepository
	adminChatID string
	logger      logger.Logger
}

// NewStartHandler creates a new start handler
func NewStartHandler(messenger repository.MessengerRepository, adminChatID string, logger logger.Logger) *StartHandler {
	return &StartHandler{
		messenger:   messenger,
		adminChatID: adminChatID,
		logger:      logger,
	}
}

// CanHandle determines if this handler can process the given command
func (h *StartHandler) CanHandle(command string) bool {
	return command == "/start"
}

// Handle processes the command
func (h *StartHandler) Handle(ctx context.Context, cmd *entity.IncomingCommand, state *entity.State) error {
	if cmd.Approved {
		return h.messenger.SendMessage(ctx, cmd.ChatID, helpFor(cmd.IsAdmin))
	}

	state.Normalize()
	if _, ok := state.Pending[cmd.ChatID]; ok {
		return h.messenger.SendMessage(ctx, cmd.ChatID, templates.NoticePendingAlready)
	}

	name := cmd.FromName
	if name == "" {
		name = "?"
	}
	pending := &entity.PendingUser{Name: name, Username: cmd.Username}
	state.Pending[cmd.ChatID] = pending
	h.logger.Info("New access request", "chatId", cmd.ChatID, "name", name)

	var errs []error
	if err := h.messenger.SendMessage(ctx, cmd.ChatID, templates.NoticeRequestSent); err != nil {
		errs = append(errs, err)
	}
	if h.adminChatID != "" {
		if err := h.messenger.SendMessage(ctx, h.adminChatID, templates.AdminApprovalRequest(pending, cmd.ChatID)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// HelpHandler processes /help
type HelpHandler struct {
	messenger repository.MessengerRepository
	logger    logger.Logger
}

// NewHelpHandler creates a new help handler
func NewHelpHandler(messenger repository.MessengerRepository, logger logger.Logger) *HelpHandler {
	return &HelpHandler{
		messenger: messenger,
		logger:    logger,
	}
}

// CanHandle determines if this handler can process the given command
func (h *HelpHandler) CanHandle(command string) bool {
	return command == "/help"
}

// Handle processes the command
func (h *HelpHandler) Handle(ctx context.Context, cmd *entity.IncomingCommand, state *entity.State) error {
	return h.messenger.SendMessage(ctx, cmd.ChatID, helpFor(cmd.IsAdmin))
}

func helpFor(isAdmin bool) string {
	if isAdmin {
		return templates.HelpText + templates.AdminHelpText
	}
	return templates.HelpText
}

// SettingsHandler processes /settings: shows the sender's effective search
// parameters and how many deals they have received.
type SettingsHandler struct {
	messenger repository.MessengerRepository
	defaults  entity.SearchSettings
	logger    logger.Logger
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(messenger repository.MessengerRepository, defaults entity.SearchSettings, logger logger.Logger) *SettingsHandler {
	return &SettingsHandler{
		messenger: messenger,
		defaults:  defaults,
		logger:    logger,
	}
}

// CanHandle determines if this handler can process the given command
func (h *SettingsHandler) CanHandle(command string) bool {
	return command == "/settings"
}

// Handle processes the command
func (h *SettingsHandler) Handle(ctx context.Context, cmd *entity.IncomingCommand, state *entity.State) error {
	user := state.Users[cmd.ChatID]
	effective := user.Settings.Apply(h.defaults)
	return h.messenger.SendMessage(ctx, cmd.ChatID, templates.SettingsText(effective, len(user.SentDeals)))
}

// SetValueHandler processes the single-value setting commands: /origin,
// /days, /price, /duration and /increment. Each stores a per-user override
// on top of the configured defaults.
type SetValueHandler struct {
	messenger repository.MessengerRepository
	logger    logger.Logger
}

// NewSetValueHandler creates a new set-value handler
func NewSetValueHandler(messenger repository.MessengerRepository, logger logger.Logger) *SetValueHandler {
	return &SetValueHandler{
		messenger: messenger,
		logger:    logger,
	}
}

var settingCommands = map[string]bool{
	"/origin":    true,
	"/days":      true,
	"/price":     true,
	"/duration":  true,
	"/increment": true,
}

// CanHandle determines if this handler can process the given command
func (h *SetValueHandler) CanHandle(command string) bool {
	return settingCommands[command]
}

// Handle processes the command
func (h *SetValueHandler) Handle(ctx context.Context, cmd *entity.IncomingCommand, state *entity.State) error {
	if cmd.Args == "" {
		return h.messenger.SendMessage(ctx, cmd.ChatID, templates.UsageReply(cmd.Command))
	}

	user := state.Users[cmd.ChatID]

	if cmd.Command == "/origin" {
		val := strings.ToUpper(cmd.Args)
		user.Settings.Origin = &val
		h.logger.Info("Setting updated", "chatId", cmd.ChatID, "key", "origin", "value", val)
		return h.messenger.SendMessage(ctx, cmd.ChatID, templates.SettingSavedReply("origin", val))
	}

	n, err := strconv.Atoi(cmd.Args)
	if err != nil {
		return h.messenger.SendMessage(ctx, cmd.ChatID, templates.InvalidValueReply(cmd.Args))
	}

	var key string
	switch cmd.Command {
	case "/days":
		key = "days_ahead"
		user.Settings.DaysAhead = &n
	case "/price":
		key = "base_price_eur"
		price := float64(n)
		user.Settings.BasePriceEUR = &price
	case "/duration":
		key = "base_duration_minutes"
		user.Settings.BaseDurationMinutes = &n
	case "/increment":
		key = "price_increment_eur"
		increment := float64(n)
		user.Settings.PriceIncrementEUR = &increment
	}

	h.logger.Info("Setting updated", "chatId", cmd.ChatID, "key", key, "value", n)
	return h.messenger.SendMessage(ctx, cmd.ChatID, templates.SettingSavedReply(key, strconv.Itoa(n)))
}

// DirectToggleHandler processes /direct, flipping the direct-only flag.
type DirectToggleHandler struct {
	messenger repository.MessengerRepository
	defaults  entity.SearchSettings
	logger    logger.Logger
}

// NewDirectToggleHandler creates a new direct toggle handler
func NewDirectToggleHandler(messenger repository.MessengerRepository, defaults entity.SearchSettings, logger logger.Logger) *DirectToggleHandler {
	return &DirectToggleHandler{
		messenger: messenger,
		defaults:  defaults,
		logger:    logger,
	}
}

// CanHandle determines if this handler can process the given command
func (h *DirectToggleHandler) CanHandle(command string) bool {
	return command == "/direct"
}

// Handle processes the command
func (h *DirectToggleHandler) Handle(ctx context.Context, cmd *entity.IncomingCommand, state *entity.State) error {
	user := state.Users[cmd.ChatID]
	next := !user.Settings.Apply(h.defaults).DirectOnly
	user.Settings.DirectOnly = &next

	reply := templates.DirectOffReply
	if next {
		reply = templates.DirectOnReply
	}
	h.logger.Info("Setting updated", "chatId", cmd.ChatID, "key", "direct_only", "value", next)
	return h.messenger.SendMessage(ctx, cmd.ChatID, reply)
}

// ResetHandler processes /reset, clearing the sender's sent-deal history so
// everything qualifies as new on the next search.
type ResetHandler struct {
	messenger repository.MessengerRepository
	logger    logger.Logger
}

// NewResetHandler creates a new reset handler
func NewResetHandler(messenger repository.MessengerRepository, logger logger.Logger) *ResetHandler {
	return &ResetHandler{
		messenger: messenger,
		logger:    logger,
	}
}

// CanHandle determines if this handler can process the given command
func (h *ResetHandler) CanHandle(command string) bool {
	return command == "/reset"
}

// Handle processes the command
func (h *ResetHandler) Handle(ctx context.Context, cmd *entity.IncomingCommand, state *entity.State) error {
	state.Users[cmd.ChatID].SentDeals = nil
	h.logger.Info("Sent-deal history cleared", "chatId", cmd.ChatID)
	return h.messenger.SendMessage(ctx, cmd.ChatID, templates.NoticeHistoryCleared)
}

// AdminHandler processes /approve, /reject and /users. Non-admin senders get
// the unknown-command hint, as if the commands did not exist.
type AdminHandler struct {
	messenger   repository.MessengerRepository
	defaults    entity.SearchSettings
	adminChatID string
	logger      logger.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(messenger repository.MessengerRepository, defaults entity.SearchSettings, adminChatID string, logger logger.Logger) *AdminHandler {
	return &AdminHandler{
		messenger:   messenger,
		defaults:    defaults,
		adminChatID: adminChatID,
		logger:      logger,
	}
}

var adminCommands = map[string]bool{
	"/approve": true,
	"/reject":  true,
	"/users":   true,
}

// CanHandle determines if this handler can process the given command
func (h *AdminHandler) CanHandle(command string) bool {
	return adminCommands[command]
}

// Handle processes the command
func (h *AdminHandler) Handle(ctx context.Context, cmd *entity.IncomingCommand, state *entity.State) error {
	if !cmd.IsAdmin {
		return h.messenger.SendMessage(ctx, cmd.ChatID, templates.NoticeUnknownCommand)
	}

	switch cmd.Command {
	case "/approve":
		if cmd.Args == "" {
			return h.messenger.SendMessage(ctx, cmd.ChatID, templates.AdminUsageReply("/approve"))
		}
		pending, ok := state.Approve(cmd.Args)
		if !ok {
			return h.messenger.SendMessage(ctx, cmd.ChatID, templates.NotPendingReply(cmd.Args))
		}
		h.logger.Info("User approved", "chatId", cmd.Args, "name", pending.Name)

		var errs []error
		if err := h.messenger.SendMessage(ctx, cmd.ChatID, templates.ApprovedReply(pending.Name)); err != nil {
			errs = append(errs, err)
		}
		if err := h.messenger.SendMessage(ctx, cmd.Args, templates.NoticeApproved); err != nil {
			errs = append(errs, err)
		}
		return errors.Join(errs...)

	case "/reject":
		if cmd.Args == "" {
			return h.messenger.SendMessage(ctx, cmd.ChatID, templates.AdminUsageReply("/reject"))
		}
		pending, ok := state.Reject(cmd.Args)
		if !ok {
			return h.messenger.SendMessage(ctx, cmd.ChatID, templates.NotPendingReply(cmd.Args))
		}
		h.logger.Info("Request rejected", "chatId", cmd.Args, "name", pending.Name)

		var errs []error
		if err := h.messenger.SendMessage(ctx, cmd.ChatID, templates.RejectedReply(pending.Name)); err != nil {
			errs = append(errs, err)
		}
		if err := h.messenger.SendMessage(ctx, cmd.Args, templates.NoticeRejected); err != nil {
			errs = append(errs, err)
		}
		return errors.Join(errs...)

	default: // /users
		return h.messenger.SendMessage(ctx, cmd.ChatID, templates.UsersText(state, h.defaults, h.adminChatID))
	}
}
