package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
)

// Prints the chat ids the bot has recently seen. Message the bot once, run
// this, and copy the printed id into TELEGRAM_CHAT_ID / admin_chat_id.
func main() {
	godotenv.Load()

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is not set")
	}

	resp, err := http.Get(fmt.Sprintf("https://api.telegram.org/bot%s/getUpdates", token))
	if err != nil {
		log.Fatalf("getUpdates failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Fatalf("getUpdates returned status %d", resp.StatusCode)
	}

	var payload struct {
		OK     bool `json:"ok"`
		Result []struct {
			Message struct {
				Chat struct {
					ID        int64  `json:"id"`
					Type      string `json:"type"`
					Title     string `json:"title"`
					Username  string `json:"username"`
					FirstName string `json:"first_name"`
				} `json:"chat"`
			} `json:"message"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Fatalf("failed to decode updates: %v", err)
	}

	if len(payload.Result) == 0 {
		fmt.Println("No updates yet. Send the bot a message and run this again.")
		return
	}

	seen := make(map[int64]bool)
	for _, upd := range payload.Result {
		chat := upd.Message.Chat
		if chat.ID == 0 || seen[chat.ID] {
			continue
		}
		seen[chat.ID] = true

		name := chat.Title
		if name == "" {
			name = chat.FirstName
		}
		if chat.Username != "" {
			name = fmt.Sprintf("%s (@%s)", name, chat.Username)
		}
		fmt.Printf("chat_id: %d\t%s [%s]\n", chat.ID, name, chat.Type)
	}
}
