package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"rank_manager/config"
	"rank_manager/model"
)

// Telegram Service - kênh thông báo cho Admin
type Telegram struct {
	BotToken string
	ChatId   string
	BaseURL  string
	client   *http.Client
}

func NewTelegram(cfg model.TelegramConfig) *Telegram {
	return &Telegram{
		BotToken: cfg.BotToken,
		ChatId:   cfg.ChatId,
		BaseURL:  config.ConfigOr("TELEGRAM_API_URL", "https://api.telegram.org"),
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Send đẩy một tin nhắn HTML lên kênh Telegram của Admin
func (t *Telegram) Send(text string) error {
	if t.BotToken == "" || t.ChatId == "" {
		return errors.New("telegram bot chưa được cấu hình")
	}

	payload, err := json.Marshal(map[string]string{
		"chat_id":    t.ChatId,
		"text":       text,
		"parse_mode": "HTML",
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.BaseURL, t.BotToken)
	resp, err := t.client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram trả về HTTP %d", resp.StatusCode)
	}
	return nil
}
