package notify

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/voalerta/flight-service/config"
)

// channel is one delivery mechanism for alerts.
type channel interface {
	Send(a Alert) error
}

// Dispatcher fans an alert out to every configured channel. Each channel is
// attempted independently; one failing does not stop the others.
type Dispatcher struct {
	email    channel
	telegram channel
	logger   zerolog.Logger
}

// NewDispatcher wires the channels that have configuration. Missing SMTP or
// telegram settings simply disable that channel.
func NewDispatcher(cfg config.NotificationsConfig) *Dispatcher {
	d := &Dispatcher{
		logger: log.With().Str("component", "notify").Logger(),
	}

	if email := NewEmailSender(cfg.SMTP); email != nil {
		d.email = email
		d.logger.Info().Str("host", cfg.SMTP.Host).Msg("email channel enabled")
	}

	if cfg.Telegram.BotToken != "" {
		telegram, err := NewTelegramSender(cfg.Telegram.BotToken)
		if err != nil {
			d.logger.Error().Err(err).Msg("telegram channel unavailable")
		} else {
			d.telegram = telegram
			d.logger.Info().Msg("telegram channel enabled")
		}
	}

	return d
}

// Dispatch sends the alert to every channel the alert addresses. Delivery
// failures are logged and swallowed.
func (d *Dispatcher) Dispatch(a Alert) {
	if a.Email != "" {
		if d.email == nil {
			d.logger.Warn().Msg("email channel not configured, skipping alert")
		} else if err := d.email.Send(a); err != nil {
			d.logger.Error().Err(err).Str("to", a.Email).Msg("email delivery failed")
		} else {
			d.logger.Info().Str("to", a.Email).Str("route", a.Route()).Msg("email alert sent")
		}
	}

	if a.TelegramChatID != "" {
		if d.telegram == nil {
			d.logger.Warn().Msg("telegram channel not configured, skipping alert")
		} else if err := d.telegram.Send(a); err != nil {
			d.logger.Error().Err(err).Str("chat_id", a.TelegramChatID).Msg("telegram delivery failed")
		} else {
			d.logger.Info().Str("chat_id", a.TelegramChatID).Str("route", a.Route()).Msg("telegram alert sent")
		}
	}
}
