package mail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAccountMailer_SendVerification(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	sender := NewLogSender("no-reply@hirecoder.local", zap.New(core))
	mailer := NewAccountMailer(sender, "https://app.example.com/verify?token=", "https://app.example.com/reset?token=")

	err := mailer.SendVerification(context.Background(), "dev@example.com", "dev", "a.b+c")
	require.NoError(t, err)

	entries := recorded.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "dev@example.com", fields["to"])
	assert.Equal(t, "no-reply@hirecoder.local", fields["from"])
	assert.Contains(t, fields["body"], "https://app.example.com/verify?token=a.b%2Bc")
}

func TestAccountMailer_SendPasswordReset(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	sender := NewLogSender("no-reply@hirecoder.local", zap.New(core))
	mailer := NewAccountMailer(sender, "https://app.example.com/verify?token=", "https://app.example.com/reset?token=")

	err := mailer.SendPasswordReset(context.Background(), "dev@example.com", "dev", "x/y=")
	require.NoError(t, err)

	entries := recorded.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "dev@example.com", fields["to"])
	assert.Equal(t, "Reset your HireCoder password", fields["subject"])
	assert.Contains(t, fields["body"], "https://app.example.com/reset?token=x%2Fy%3D")
	assert.NotContains(t, fields["body"], "/verify?")
}
