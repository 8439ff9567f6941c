package notify

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramSender delivers price alerts to telegram chats.
type TelegramSender struct {
	bot *tgbotapi.BotAPI
}

// NewTelegramSender creates a telegram sender for the bot token.
func NewTelegramSender(token string) (*TelegramSender, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("initializing telegram bot: %w", err)
	}
	return &TelegramSender{bot: bot}, nil
}

// Send delivers one price alert message.
func (s *TelegramSender) Send(a Alert) error {
	chatID, err := strconv.ParseInt(a.TelegramChatID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid telegram chat id %q: %w", a.TelegramChatID, err)
	}

	msg := tgbotapi.NewMessage(chatID, telegramMessage(a))
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := s.bot.Send(msg); err != nil {
		return fmt.Errorf("sending telegram alert to %d: %w", chatID, err)
	}
	return nil
}

func telegramMessage(a Alert) string {
	var b strings.Builder
	b.WriteString("✈️ *Alerta de Voo*\n\n")
	fmt.Fprintf(&b, "🛫 %s\n", a.Route())
	fmt.Fprintf(&b, "📅 %s\n", formatDate(a.DepartureDate))
	if a.ReturnDate != nil {
		fmt.Fprintf(&b, "🔄 %s\n", formatDate(*a.ReturnDate))
	}
	fmt.Fprintf(&b, "\n💰 *Preço Atual:* %s %.2f\n", a.Currency, a.CurrentPrice)
	if a.PreviousPrice != nil {
		delta, percent := a.PriceChange()
		arrow, sign := "📈", "+"
		if a.IsDecrease() {
			arrow, sign = "📉", ""
		}
		fmt.Fprintf(&b, "%s *Variação:* %s%.2f (%.1f%%)\n", arrow, sign, delta, percent)
	}
	if a.TargetReached() {
		b.WriteString("\n🎯 *Preço-alvo atingido!*\n")
	}
	fmt.Fprintf(&b, "\n👥 %d passageiro(s) | %s", a.Adults, a.TravelClass)
	return b.String()
}
