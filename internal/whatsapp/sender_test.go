package whatsapp

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClickToChatURL(t *testing.T) {
	link := ClickToChatURL("+1 (555) 123-4567", "Hello world & more")
	assert.Equal(t, "https://wa.me/15551234567?text=Hello+world+%26+more", link)
}

func TestLogSender_Send(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})

	sender := NewLogSender(log)
	require.NoError(t, sender.Send(context.Background(), "+15551234567", "Check this out"))

	out := buf.String()
	assert.Contains(t, out, `"phone_number":"+15551234567"`)
	assert.Contains(t, out, "wa.me/15551234567")
	assert.Contains(t, out, "Check this out")
}

func TestLogSender_CancelledContext(t *testing.T) {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewLogSender(log).Send(ctx, "+1", "text")
	assert.ErrorIs(t, err, context.Canceled)
}
