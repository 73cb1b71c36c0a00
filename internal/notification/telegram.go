package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/GymOps/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const timeLayout = "02.01.2006 15:04"

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyPTSessionBooked(ctx context.Context, member *domain.Member, session *domain.PTSession) {
	n.send(ctx, member.TelegramChatID, ptBookedText(session))
}

func (n *TelegramNotifier) NotifyPTSessionCancelled(ctx context.Context, member *domain.Member, session *domain.PTSession) {
	n.send(ctx, member.TelegramChatID, ptCancelledText(session))
}

func (n *TelegramNotifier) NotifyClassCancelled(ctx context.Context, member *domain.Member, class *domain.ClassSession) {
	n.send(ctx, member.TelegramChatID, classCancelledText(class))
}

func (n *TelegramNotifier) NotifyPaymentRecorded(ctx context.Context, member *domain.Member, invoice *domain.Invoice, payment *domain.Payment) {
	n.send(ctx, member.TelegramChatID, paymentRecordedText(invoice, payment))
}

func ptBookedText(s *domain.PTSession) string {
	return fmt.Sprintf(
		"*Personal training booked*\n\n"+"Type: %s\n"+"Time (UTC): %s - %s",
		sessionType(s), s.StartsAt.Format(timeLayout), s.EndsAt.Format("15:04"),
	)
}

func ptCancelledText(s *domain.PTSession) string {
	return fmt.Sprintf(
		"*Personal training cancelled*\n\n"+"Type: %s\n"+"Time (UTC): %s",
		sessionType(s), s.StartsAt.Format(timeLayout),
	)
}

func classCancelledText(c *domain.ClassSession) string {
	return fmt.Sprintf(
		"*Class cancelled*\n\n"+"Class: %s\n"+"Time (UTC): %s",
		c.Name, c.StartsAt.Format(timeLayout),
	)
}

func paymentRecordedText(inv *domain.Invoice, p *domain.Payment) string {
	return fmt.Sprintf(
		"*Payment received*\n\n"+"Amount: %s\n"+"Invoice total: %s\n"+"Remaining: %s\n"+"Status: %s",
		p.Amount, inv.TotalAmount, inv.Remaining(), inv.Status,
	)
}

func sessionType(s *domain.PTSession) string {
	if s.SessionType == "" {
		return "personal training"
	}
	return s.SessionType
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
