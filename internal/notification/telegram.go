package notification

import (
	"context"
	"fmt"

	"github.com/HaliTran/wondertix/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier pushes order activity to a staff chat. Without a token
// it degrades to a no-op so the box office runs fine offline.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyOrderCreated(ctx context.Context, order *domain.Order, contact *domain.Contact) {
	kind := "Order placed"
	if order.CheckoutSession == fmt.Sprintf("comp-%d", order.ID) {
		kind = "Comp order placed"
	}
	text := fmt.Sprintf(
		"*%s*\n\n"+"Order: #%d\n"+"Customer: %s %s (%s)\n"+"Total: $%s",
		kind, order.ID, contact.FirstName, contact.LastName, contact.Email,
		order.Total.StringFixed(2),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyOrderCancelled(ctx context.Context, order *domain.Order) {
	text := fmt.Sprintf(
		"*Order cancelled*\n\n"+"Order: #%d\n"+"Total: $%s\n"+"Seats have been released back to inventory.",
		order.ID, order.Total.StringFixed(2),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
