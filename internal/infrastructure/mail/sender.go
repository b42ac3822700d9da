// Package mail delivers account emails.
package mail

import (
	"context"
	"net/url"

	"github.com/hirecoder/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Message is a plain-text email
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// LogSender writes outgoing mail to the log instead of delivering it.
// It backs development setups and tests; a real transport implements the same Send.
type LogSender struct {
	from   string
	logger *zap.Logger
}

// NewLogSender creates a log-backed sender
func NewLogSender(from string, l *zap.Logger) *LogSender {
	return &LogSender{from: from, logger: l.Named("mail")}
}

// Send logs the message
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	if msg.From == "" {
		msg.From = s.from
	}
	s.logger.Info("mail queued",
		zap.String("request_id", logger.GetRequestID(ctx)),
		zap.String("from", msg.From),
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.Body),
	)
	return nil
}

// AccountMailer renders and sends account links: email verification and password reset
type AccountMailer struct {
	sender    *LogSender
	verifyURL string
	resetURL  string
}

// NewAccountMailer creates a mailer that appends the escaped token to the
// verification or reset link base
func NewAccountMailer(sender *LogSender, verifyURL, resetURL string) *AccountMailer {
	return &AccountMailer{sender: sender, verifyURL: verifyURL, resetURL: resetURL}
}

// SendVerification emails the verification link for token to address
func (m *AccountMailer) SendVerification(ctx context.Context, address, username, token string) error {
	link := m.verifyURL + url.QueryEscape(token)
	return m.sender.Send(ctx, Message{
		To:      address,
		Subject: "Verify your HireCoder email address",
		Body:    "Hi " + username + ",\n\nPlease confirm your email address by opening:\n" + link + "\n",
	})
}

// SendPasswordReset emails the password reset link for token to address
func (m *AccountMailer) SendPasswordReset(ctx context.Context, address, username, token string) error {
	link := m.resetURL + url.QueryEscape(token)
	return m.sender.Send(ctx, Message{
		To:      address,
		Subject: "Reset your HireCoder password",
		Body: "Hi " + username + ",\n\nA password reset was requested for your account. Choose a new password here:\n" +
			link + "\n\nIf you did not ask for this, you can ignore this email.\n",
	})
}
