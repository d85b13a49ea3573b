// Package notifier pushes alert messages to Telegram. Delivery is best
// effort: failures are logged, never retried within a cycle, and never
// escalated to the run loop.
package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Notifier delivers a formatted alert message. Returns whether the
// message went out.
type Notifier interface {
	Send(message string) bool
}

// Telegram sends HTML-formatted messages through the Bot API.
type Telegram struct {
	botToken string
	chatID   string
	client   *http.Client
}

// NewTelegram builds a notifier. With empty credentials it stays in
// log-only mode.
func NewTelegram(botToken, chatID string) *Telegram {
	return &Telegram{
		botToken: botToken,
		chatID:   chatID,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether credentials are present.
func (t *Telegram) Configured() bool {
	return t.botToken != "" && t.chatID != ""
}

// Send pushes one message. Failures are logged and reported as false.
func (t *Telegram) Send(message string) bool {
	if !t.Configured() {
		log.Printf("   [Telegram] Not configured, message dropped: %.80s", message)
		return false
	}

	payload, err := json.Marshal(map[string]string{
		"chat_id":    t.chatID,
		"text":       message,
		"parse_mode": "HTML",
	})
	if err != nil {
		log.Printf("   [Telegram] Failed to encode message: %v", err)
		return false
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", t.botToken)
	resp, err := t.client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Printf("   [Telegram] Send failed: %v", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("   [Telegram] Send failed: status %d", resp.StatusCode)
		return false
	}
	return true
}
