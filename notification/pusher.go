package notification

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/frilo-app/frilo-api/external/fcm"
	"github.com/frilo-app/frilo-api/schema"
)

// TokenStore resolves and prunes device tokens
type TokenStore interface {
	ListDeviceTokens(userIDs []primitive.ObjectID) ([]schema.DeviceToken, error)
	DeleteDeviceTokensByValue(tokens []string) error
}

// DevicePusher sends notifications to every registered device of the recipients
type DevicePusher struct {
	tokens TokenStore
	sender fcm.Sender
}

func NewDevicePusher(tokens TokenStore, sender fcm.Sender) *DevicePusher {
	return &DevicePusher{
		tokens: tokens,
		sender: sender,
	}
}

func (p *DevicePusher) Push(ctx context.Context, n *schema.Notification) error {
	devices, err := p.tokens.ListDeviceTokens(n.UserIDs)
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, d := range devices {
		tokens = append(tokens, d.Token)
	}

	data := map[string]string{
		"type": string(n.Type),
	}
	if !n.ID.IsZero() {
		data["notificationId"] = n.ID.Hex()
	}
	if n.Action != nil {
		data["actionType"] = n.Action.Type
		data["actionId"] = n.Action.ID
	}

	unregistered, err := p.sender.Send(ctx, fcm.Message{
		Tokens: tokens,
		Title:  n.Title,
		Body:   n.Message,
		Data:   data,
	})

	if len(unregistered) > 0 {
		if err := p.tokens.DeleteDeviceTokensByValue(unregistered); err != nil {
			log.WithField("prefix", logPrefix).WithError(err).Warn("fail to prune device tokens")
		} else {
			log.WithField("prefix", logPrefix).WithField("count", len(unregistered)).Info("pruned unregistered device tokens")
		}
	}

	return err
}
