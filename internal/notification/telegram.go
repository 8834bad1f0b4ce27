package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/ParkSpot/internal/domain"
	"github.com/wb-go/wbf/logger"
	"gopkg.in/guregu/null.v4"
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

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, owner *domain.User, spot *domain.ParkingSpot, booking *domain.Booking) {
	n.send(ctx, owner.TelegramChatID, bookingCreatedText(spot, booking))
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, owner *domain.User, spot *domain.ParkingSpot, booking *domain.Booking) {
	n.send(ctx, owner.TelegramChatID, bookingCancelledText(spot, booking))
}

func (n *TelegramNotifier) NotifySlipsExpired(ctx context.Context, owner *domain.User, slips []*domain.ParkingSlip) {
	n.send(ctx, owner.TelegramChatID, slipsExpiredText(slips))
}

func bookingCreatedText(spot *domain.ParkingSpot, b *domain.Booking) string {
	text := fmt.Sprintf(
		"*Новое бронирование!*\n\n"+"Парковка: %s\n"+"Клиент: %s\n"+"Время (UTC): %s - %s\n"+"Сумма: %.2f",
		spot.Title,
		b.CustomerName,
		b.StartTime.UTC().Format(timeLayout),
		b.EndTime.UTC().Format(timeLayout),
		b.TotalPrice,
	)
	if b.CarNumber.Valid {
		text += "\nАвтомобиль: " + b.CarNumber.String
	}
	return text
}

func bookingCancelledText(spot *domain.ParkingSpot, b *domain.Booking) string {
	return fmt.Sprintf(
		"*Бронирование отменено*\n\n"+"Парковка: %s\n"+"Клиент: %s\n"+"Время (UTC): %s - %s\n"+"Свободных мест: %d",
		spot.Title,
		b.CustomerName,
		b.StartTime.UTC().Format(timeLayout),
		b.EndTime.UTC().Format(timeLayout),
		spot.AvailableSpots(),
	)
}

func slipsExpiredText(slips []*domain.ParkingSlip) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "*Истёк срок действия талонов: %d*\n", len(slips))
	for _, s := range slips {
		sb.WriteString("\n" + s.SlipNumber)
		if s.CarNumber.Valid {
			sb.WriteString(" (" + s.CarNumber.String + ")")
		}
	}
	return sb.String()
}

func (n *TelegramNotifier) send(ctx context.Context, chatID null.Int, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if !chatID.Valid {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", chatID.Int64),
		)
		return
	}

	msg := tgbotapi.NewMessage(chatID.Int64, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", chatID.Int64),
			logger.String("error", err.Error()),
		)
	}
}
