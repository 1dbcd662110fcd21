package auth

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// SMSSender delivers one time codes
type SMSSender interface {
	SendSMS(ctx context.Context, phoneNumber, text string) error
}

// Mailer delivers password reset links
type Mailer interface {
	SendPasswordReset(ctx context.Context, email, token string) error
}

// LogSender writes outgoing texts and mails to the log. It is used until a
// delivery provider is configured.
type LogSender struct{}

func (LogSender) SendSMS(ctx context.Context, phoneNumber, text string) error {
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"phone":  phoneNumber,
	}).Info(text)
	return nil
}

func (LogSender) SendPasswordReset(ctx context.Context, email, token string) error {
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"email":  email,
		"token":  token,
	}).Info("password reset requested")
	return nil
}
