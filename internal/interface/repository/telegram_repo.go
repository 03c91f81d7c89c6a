package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"farewatch-service/internal/domain/entity"
	"farewatch-service/internal/domain/repository"
	"farewatch-service/pkg/logger"
	"farewatch-service/pkg/utils"
)

const telegramMessageLimit = 4096

// TelegramRepository sends messages and polls updates via the Telegram Bot API
type TelegramRepository struct {
	logger   logger.Logger
	baseURL  string
	botToken string
	footer   string
	limiter  *rate.Limiter
	client   *http.Client
}

// NewTelegramRepository creates a new Telegram repository. sendRPS bounds
// outbound sendMessage calls to stay under Telegram's flood limits.
func NewTelegramRepository(baseURL, botToken, footer string, sendRPS float64, timeout time.Duration, logger logger.Logger) repository.MessengerRepository {
	return &TelegramRepository{
		logger:   logger,
		baseURL:  baseURL,
		botToken: botToken,
		footer:   footer,
		limiter:  rate.NewLimiter(rate.Limit(sendRPS), 1),
		client:   &http.Client{Timeout: timeout},
	}
}

// SendMessage delivers text to chatID. The configured footer is appended and
// the result clamped to Telegram's message limit before posting, so the
// final payload never exceeds what the API accepts.
func (r *TelegramRepository) SendMessage(ctx context.Context, chatID, text string) error {
	if r.footer != "" {
		text += r.footer
	}
	text = utils.ClampMessage(text, telegramMessageLimit)

	if err := r.limiter.Wait(ctx); err != nil {
		return &entity.DeliveryError{ChatID: chatID, Err: err}
	}

	payload := map[string]interface{}{
		"chat_id":                  chatID,
		"text":                     text,
		"disable_web_page_preview": true,
		"parse_mode":               "Markdown",
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return &entity.DeliveryError{ChatID: chatID, Err: fmt.Errorf("failed to marshal payload: %w", err)}
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", r.baseURL, r.botToken)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return &entity.DeliveryError{ChatID: chatID, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return &entity.DeliveryError{ChatID: chatID, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errorBody struct {
			OK          bool   `json:"ok"`
			Description string `json:"description"`
			ErrorCode   int    `json:"error_code"`
		}
		json.NewDecoder(resp.Body).Decode(&errorBody)
		return &entity.DeliveryError{
			ChatID: chatID,
			Err:    fmt.Errorf("telegram returned status %d: %s", resp.StatusCode, errorBody.Description),
		}
	}

	r.logger.Debug("Message sent", "chatId", chatID, "chars", len(text))
	return nil
}

// GetUpdates fetches updates with ids greater than offset. Updates without a
// message body come back with an empty chat id; callers still see them so
// they can advance their update cursor past every id Telegram handed out.
func (r *TelegramRepository) GetUpdates(ctx context.Context, offset int64) ([]entity.Update, error) {
	url := fmt.Sprintf("%s/bot%s/getUpdates?offset=%d&timeout=0", r.baseURL, r.botToken, offset+1)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create getUpdates request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("telegram getUpdates returned status %d", resp.StatusCode)
	}

	var response struct {
		OK     bool `json:"ok"`
		Result []struct {
			UpdateID int64 `json:"update_id"`
			Message  struct {
				Text string `json:"text"`
				Chat struct {
					ID int64 `json:"id"`
				} `json:"chat"`
				From struct {
					FirstName string `json:"first_name"`
					Username  string `json:"username"`
				} `json:"from"`
			} `json:"message"`
		} `json:"result"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode updates: %w", err)
	}

	updates := make([]entity.Update, 0, len(response.Result))
	for _, upd := range response.Result {
		var chatID string
		if upd.Message.Chat.ID != 0 {
			chatID = strconv.FormatInt(upd.Message.Chat.ID, 10)
		}
		updates = append(updates, entity.Update{
			ID:       upd.UpdateID,
			ChatID:   chatID,
			Text:     upd.Message.Text,
			FromName: upd.Message.From.FirstName,
			Username: upd.Message.From.Username,
		})
	}

	r.logger.Debug("Fetched updates", "afterId", offset, "count", len(updates))
	return updates, nil
}
