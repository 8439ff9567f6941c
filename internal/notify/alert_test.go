package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func sampleAlert() Alert {
	ret := time.Date(2026, 10, 22, 0, 0, 0, 0, time.UTC)
	return Alert{
		Origin:        "GRU",
		Destination:   "JFK",
		DepartureDate: time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
		ReturnDate:    &ret,
		Adults:        2,
		TravelClass:   "ECONOMY",
		Currency:      "BRL",
		CurrentPrice:  2600,
		PreviousPrice: ptr(3000),
		TargetPrice:   ptr(2700),
		Email:         "user@example.com",
	}
}

func TestPriceChange(t *testing.T) {
	a := sampleAlert()
	delta, percent := a.PriceChange()
	assert.Equal(t, -400.0, delta)
	assert.InDelta(t, -13.33, percent, 0.01)
	assert.True(t, a.IsDecrease())

	a.PreviousPrice = nil
	delta, percent = a.PriceChange()
	assert.Zero(t, delta)
	assert.Zero(t, percent)
	assert.False(t, a.IsDecrease())
}

func TestTargetReached(t *testing.T) {
	a := sampleAlert()
	assert.True(t, a.TargetReached())

	a.CurrentPrice = 2800
	assert.False(t, a.TargetReached())

	a.TargetPrice = nil
	assert.False(t, a.TargetReached())
}

func TestEmailSubject(t *testing.T) {
	a := sampleAlert()
	assert.Contains(t, emailSubject(a), "Preço caiu")

	a.PreviousPrice = ptr(2000)
	assert.Contains(t, emailSubject(a), "Alerta de Preço")
}

func TestEmailBody(t *testing.T) {
	body := emailBody(sampleAlert())
	assert.Contains(t, body, "GRU → JFK")
	assert.Contains(t, body, "15/10/2026")
	assert.Contains(t, body, "22/10/2026")
	assert.Contains(t, body, "BRL 2600.00")
	assert.Contains(t, body, "-400.00")
	assert.Contains(t, body, "Preço-alvo atingido")
}

func TestEmailBodyOneWayWithoutTarget(t *testing.T) {
	a := sampleAlert()
	a.ReturnDate = nil
	a.TargetPrice = nil
	a.PreviousPrice = nil
	body := emailBody(a)
	assert.NotContains(t, body, "Volta:")
	assert.NotContains(t, body, "Preço-alvo atingido")
	assert.NotContains(t, body, "Variação")
}

func TestTelegramMessage(t *testing.T) {
	msg := telegramMessage(sampleAlert())
	assert.True(t, strings.HasPrefix(msg, "✈️ *Alerta de Voo*"))
	assert.Contains(t, msg, "🛫 GRU → JFK")
	assert.Contains(t, msg, "*Preço Atual:* BRL 2600.00")
	assert.Contains(t, msg, "📉 *Variação:* -400.00 (-13.3%)")
	assert.Contains(t, msg, "🎯 *Preço-alvo atingido!*")
	assert.Contains(t, msg, "2 passageiro(s) | ECONOMY")
}

type fakeChannel struct {
	sent []Alert
	err  error
}

func (f *fakeChannel) Send(a Alert) error {
	f.sent = append(f.sent, a)
	return f.err
}

func TestDispatchRoutesToAddressedChannels(t *testing.T) {
	email := &fakeChannel{}
	telegram := &fakeChannel{}
	d := &Dispatcher{email: email, telegram: telegram}

	a := sampleAlert()
	a.TelegramChatID = "12345"
	d.Dispatch(a)
	assert.Len(t, email.sent, 1)
	assert.Len(t, telegram.sent, 1)

	b := sampleAlert()
	b.Email = ""
	d.Dispatch(b)
	assert.Len(t, email.sent, 1)
	assert.Len(t, telegram.sent, 1)
}

func TestDispatchFailureDoesNotBlockOtherChannel(t *testing.T) {
	email := &fakeChannel{err: assert.AnError}
	telegram := &fakeChannel{}
	d := &Dispatcher{email: email, telegram: telegram}

	a := sampleAlert()
	a.TelegramChatID = "12345"
	d.Dispatch(a)
	assert.Len(t, telegram.sent, 1)
}
