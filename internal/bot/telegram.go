package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/omarshaarawi/gridiron/internal/service"
)

const (
	pollTimeout    = 60
	commandTimeout = time.Minute
)

var ErrChatNotSet = errors.New("chat ID not set")

type TelegramBot struct {
	bot     *tgbotapi.BotAPI
	handler *Handler
	chatID  int64
}

func NewTelegramBot(token string, chatID int64, fantasyService *service.FantasyService) (*TelegramBot, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}

	return &TelegramBot{
		bot:     bot,
		handler: NewHandler(fantasyService),
		chatID:  chatID,
	}, nil
}

// Start long-polls for commands until ctx is cancelled.
func (t *TelegramBot) Start(ctx context.Context) error {
	slog.Info("Telegram bot authorized", "username", t.bot.Self.UserName, "chatId", t.chatID)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout

	updates := t.bot.GetUpdatesChan(u)
	defer t.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return errors.New("telegram update channel closed")
			}
			t.handleUpdate(ctx, update)
		}
	}
}

func (t *TelegramBot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || !update.Message.IsCommand() {
		return
	}
	if !accepts(t.chatID, update.Message.Chat.ID) {
		slog.Warn("Ignoring command from unknown chat", "chatId", update.Message.Chat.ID, "command", update.Message.Command())
		return
	}

	// Simulation commands can take a few seconds.
	if _, err := t.bot.Request(tgbotapi.NewChatAction(update.Message.Chat.ID, tgbotapi.ChatTyping)); err != nil {
		slog.Debug("Failed to send typing action", "error", err)
	}

	cmdCtx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	start := time.Now()
	msg := t.handler.HandleCommand(cmdCtx, update)
	slog.Info("Handled command", "command", update.Message.Command(), "duration", time.Since(start))

	if _, err := t.bot.Send(msg); err != nil {
		slog.Error("Error sending reply", "command", update.Message.Command(), "error", err)
	}
}

// accepts reports whether a command from chat should be answered. A zero
// configured chat answers everyone.
func accepts(configured, chat int64) bool {
	return configured == 0 || configured == chat
}

// SendMessage posts a Markdown report to the configured chat.
func (t *TelegramBot) SendMessage(text string) error {
	if t.chatID == 0 {
		return ErrChatNotSet
	}

	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "Markdown"
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("sending to chat %d: %w", t.chatID, err)
	}
	return nil
}
