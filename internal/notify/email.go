package notify

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/voalerta/flight-service/config"
)

// EmailSender delivers price alerts over SMTP.
type EmailSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailSender creates an SMTP sender. Returns nil when no host is
// configured, which disables the channel.
func NewEmailSender(cfg config.SMTPConfig) *EmailSender {
	if cfg.Host == "" {
		return nil
	}
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	return &EmailSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   from,
	}
}

// Send delivers one price alert email.
func (s *EmailSender) Send(a Alert) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, "Flight Monitor")
	m.SetHeader("To", a.Email)
	m.SetHeader("Subject", emailSubject(a))
	m.SetBody("text/html", emailBody(a))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("sending alert email to %s: %w", a.Email, err)
	}
	return nil
}

func emailSubject(a Alert) string {
	if a.IsDecrease() {
		return fmt.Sprintf("✈️ Preço caiu! %s", a.Route())
	}
	return fmt.Sprintf("✈️ Alerta de Preço - %s", a.Route())
}

func emailBody(a Alert) string {
	accent := "#ef4444"
	if a.IsDecrease() {
		accent = "#10b981"
	}

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html><body style="font-family: Arial, sans-serif; color: #333;">`)
	b.WriteString(`<div style="max-width: 600px; margin: 0 auto; padding: 20px;">`)
	b.WriteString(`<h1>🔔 Alerta de Preço de Voo</h1>`)

	b.WriteString(`<div style="background: #f7f7f7; padding: 20px; border-radius: 8px;">`)
	fmt.Fprintf(&b, `<div style="font-size: 24px; font-weight: bold;">%s</div>`, a.Route())
	fmt.Fprintf(&b, `<div><b>Data:</b> %s</div>`, formatDate(a.DepartureDate))
	if a.ReturnDate != nil {
		fmt.Fprintf(&b, `<div><b>Volta:</b> %s</div>`, formatDate(*a.ReturnDate))
	}
	fmt.Fprintf(&b, `<div><b>Passageiros:</b> %d adulto(s)</div>`, a.Adults)
	fmt.Fprintf(&b, `<div><b>Classe:</b> %s</div>`, a.TravelClass)
	b.WriteString(`</div>`)

	b.WriteString(`<div style="background: white; padding: 20px; text-align: center;">`)
	fmt.Fprintf(&b, `<div style="font-size: 48px; font-weight: bold; color: %s;">%s %.2f</div>`, accent, a.Currency, a.CurrentPrice)
	if a.PreviousPrice != nil {
		delta, percent := a.PriceChange()
		arrow, sign := "📈", "+"
		if a.IsDecrease() {
			arrow, sign = "📉", ""
		}
		fmt.Fprintf(&b, `<div style="font-size: 20px; color: %s;">%s %s%.2f (%.1f%%)</div>`, accent, arrow, sign, delta, percent)
	}
	if a.TargetReached() {
		b.WriteString(`<div style="margin-top: 15px; padding: 10px; background: #10b981; color: white;">🎯 Preço-alvo atingido!</div>`)
	}
	b.WriteString(`</div>`)

	b.WriteString(`<div style="text-align: center; color: #666;"><small>Você está recebendo este email porque configurou monitoramento para este voo.</small></div>`)
	b.WriteString(`</div></body></html>`)
	return b.String()
}
