// Package whatsapp отвечает за исходящие сообщения в WhatsApp.
// Реальной доставки нет: LogSender пишет сообщение и click-to-chat ссылку в лог.
package whatsapp

import (
	"context"
	"net/url"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
)

// Sender передаёт готовое сообщение во внешний мессенджер.
type Sender interface {
	Send(ctx context.Context, phoneNumber, text string) error
}

// LogSender имитирует отправку, записывая сообщение в лог.
type LogSender struct {
	log *logrus.Logger
}

// NewLogSender создаёт отправителя поверх переданного логгера.
func NewLogSender(log *logrus.Logger) *LogSender {
	return &LogSender{log: log}
}

// Send реализует Sender.
func (s *LogSender) Send(ctx context.Context, phoneNumber, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"phone_number": phoneNumber,
		"link":         ClickToChatURL(phoneNumber, text),
	}).Infof("whatsapp: сообщение отправлено:\n%s", text)

	return nil
}

// ClickToChatURL собирает ссылку wa.me. Номер сводится к цифрам, как требует WhatsApp.
func ClickToChatURL(phoneNumber, text string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phoneNumber)

	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(text)
}
