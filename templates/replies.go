package templates

import (
	"fmt"
	"sort"
	"strings"

	"farewatch-service/internal/domain/entity"
	"farewatch-service/pkg/utils"
)

// HelpText is the command reference sent on /help and /start.
const HelpText = `🤖 *Commands:*

/origin XXX — departure city (IATA)
/days N — days ahead to search
/price N — base price (€)
/duration N — max duration at base price (min)
/increment N — extra € per each 30 min
/direct — toggle direct flights only
/settings — current settings
/reset — clear sent-deal history
/help — this reference`

// AdminHelpText is appended to HelpText for the admin.
const AdminHelpText = `
👑 *Admin commands:*
/approve ID — approve a user
/reject ID — reject a request
/users — list users`

const (
	NoticeUnauthorized   = "⛔ You are not authorized. Send /start to request access."
	NoticePendingAlready = "⏳ Your request is already pending. Wait for approval."
	NoticeRequestSent    = "📨 Request sent! Wait for approval by the administrator."
	NoticeApproved       = "🎉 You are approved! Send /help for the command list."
	NoticeRejected       = "❌ Your request was rejected by the administrator."
	NoticeHistoryCleared = "🗑 Sent-deal history cleared."
	NoticeUnknownCommand = "❓ Unknown command. /help"

	DirectOnReply  = "✅ Direct flights only"
	DirectOffReply = "❌ All flights"
)

// AdminApprovalRequest is what the admin sees when someone asks for access.
func AdminApprovalRequest(pending *entity.PendingUser, chatID string) string {
	var uname string
	if pending.Username != "" {
		uname = fmt.Sprintf(" (@%s)", pending.Username)
	}
	return fmt.Sprintf("🆕 New access request from *%s*%s\nID: `%s`\n\nApprove: `/approve %s`\nReject: `/reject %s`",
		pending.Name, uname, chatID, chatID, chatID)
}

// ApprovedReply confirms an approval to the admin.
func ApprovedReply(name string) string {
	return fmt.Sprintf("✅ User %s approved.", name)
}

// RejectedReply confirms a rejection to the admin.
func RejectedReply(name string) string {
	return fmt.Sprintf("❌ Request from %s rejected.", name)
}

// NotPendingReply tells the admin the id has no open request.
func NotPendingReply(chatID string) string {
	return fmt.Sprintf("❓ ID `%s` not found among pending requests.", chatID)
}

// UsageReply hints at the argument a setting command expects.
func UsageReply(command string) string {
	return fmt.Sprintf("⚠️ `%s <value>`", command)
}

// AdminUsageReply hints at the chat id an admin command expects.
func AdminUsageReply(command string) string {
	return fmt.Sprintf("⚠️ `%s <chat_id>`", command)
}

// InvalidValueReply rejects an argument that did not parse.
func InvalidValueReply(arg string) string {
	return fmt.Sprintf("⚠️ Invalid value: %s", arg)
}

// SettingSavedReply confirms a stored setting.
func SettingSavedReply(key, value string) string {
	return fmt.Sprintf("✅ `%s` = `%s`", key, value)
}

// SettingsText renders a user's effective settings plus their sent counter.
func SettingsText(s entity.SearchSettings, sentCount int) string {
	direct := "no"
	if s.DirectOnly {
		direct = "yes"
	}
	lines := []string{
		fmt.Sprintf("🏙 Origin: `%s`", s.Origin),
		fmt.Sprintf("📅 Days ahead: `%d`", s.DaysAhead),
		fmt.Sprintf("💰 Base price: `%s€`", utils.FormatPrice(s.BasePriceEUR)),
		fmt.Sprintf("⏱ Base duration: `%d min`", s.BaseDurationMinutes),
		fmt.Sprintf("📈 Step: `+%s€ / %d min`", utils.FormatPrice(s.PriceIncrementEUR), s.IncrementMinutes),
		fmt.Sprintf("✈️ Direct only: `%s`", direct),
		fmt.Sprintf("📊 Deals sent: `%d`", sentCount),
	}
	return strings.Join(lines, "\n")
}

// UsersText renders the admin's user overview: every approved subscriber
// with their headline settings, then any pending requests. Entries come out
// in chat-id order so repeated calls read the same.
func UsersText(state *entity.State, defaults entity.SearchSettings, adminChatID string) string {
	lines := []string{"👥 *Users:*"}

	userIDs := make([]string, 0, len(state.Users))
	for id := range state.Users {
		userIDs = append(userIDs, id)
	}
	sort.Strings(userIDs)

	for _, id := range userIDs {
		user := state.Users[id]
		s := user.Settings.Apply(defaults)
		var adminTag string
		if id == adminChatID {
			adminTag = " 👑"
		}
		lines = append(lines, fmt.Sprintf("• %s%s — `%s`, %dd, %s€",
			user.Name, adminTag, s.Origin, s.DaysAhead, utils.FormatPrice(s.BasePriceEUR)))
	}

	if len(state.Pending) > 0 {
		pendingIDs := make([]string, 0, len(state.Pending))
		for id := range state.Pending {
			pendingIDs = append(pendingIDs, id)
		}
		sort.Strings(pendingIDs)

		lines = append(lines, fmt.Sprintf("\n⏳ *Pending (%d):*", len(pendingIDs)))
		for _, id := range pendingIDs {
			lines = append(lines, fmt.Sprintf("• %s — `/approve %s`", state.Pending[id].Name, id))
		}
	}

	return strings.Join(lines, "\n")
}
