package fcm

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

const (
	logPrefix = "fcm"

	// MaxTokensPerBatch is the multicast limit of the messaging api
	MaxTokensPerBatch = 500
)

// Message is one push payload for a set of device tokens
type Message struct {
	Tokens []string
	Title  string
	Body   string
	Data   map[string]string
}

// Sender delivers push messages. It returns the tokens the provider reported
// as no longer registered.
type Sender interface {
	Send(ctx context.Context, msg Message) ([]string, error)
}

type multicastClient interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type fcmSender struct {
	client multicastClient
}

// New returns a firebase backed Sender. Without a credentials file push is
// disabled and a no-op sender is returned.
func New(ctx context.Context, credentialsFile string) (Sender, error) {
	if credentialsFile == "" {
		log.WithField("prefix", logPrefix).Warn("no service account configured, push notifications disabled")
		return NopSender{}, nil
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, err
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, err
	}

	log.WithField("prefix", logPrefix).Info("push notifications enabled")
	return &fcmSender{client: client}, nil
}

func (s *fcmSender) Send(ctx context.Context, msg Message) ([]string, error) {
	unregistered := make([]string, 0)

	for start := 0; start < len(msg.Tokens); start += MaxTokensPerBatch {
		end := start + MaxTokensPerBatch
		if end > len(msg.Tokens) {
			end = len(msg.Tokens)
		}
		tokens := msg.Tokens[start:end]

		resp, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: tokens,
			Notification: &messaging.Notification{
				Title: msg.Title,
				Body:  msg.Body,
			},
			Data: msg.Data,
		})
		if err != nil {
			return unregistered, err
		}

		for i, r := range resp.Responses {
			if r.Success {
				continue
			}
			if messaging.IsUnregistered(r.Error) || messaging.IsInvalidArgument(r.Error) {
				unregistered = append(unregistered, tokens[i])
				continue
			}
			log.WithField("prefix", logPrefix).WithError(r.Error).Warn("fail to deliver push message")
		}

		log.WithFields(log.Fields{
			"prefix":  logPrefix,
			"success": resp.SuccessCount,
			"failure": resp.FailureCount,
		}).Debug("multicast sent")
	}

	return unregistered, nil
}

// NopSender drops every message
type NopSender struct{}

func (NopSender) Send(context.Context, Message) ([]string, error) {
	return nil, nil
}
