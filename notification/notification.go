package notification

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/frilo-app/frilo-api/consts"
	"github.com/frilo-app/frilo-api/schema"
)

const (
	logPrefix   = "notification"
	pushTimeout = 10 * time.Second
)

var (
	ErrNoRecipients = errors.New("notification has no recipients")
	ErrEmptyTitle   = errors.New("notification title is empty")
)

// Store is the persistence used by the dispatcher
type Store interface {
	CreateNotification(n *schema.Notification) error
	ListNotifications(userID primitive.ObjectID, limit int64) ([]schema.Notification, error)
	MarkNotificationRead(id, userID primitive.ObjectID) error
	MarkAllNotificationsRead(userID primitive.ObjectID) (int, error)
	UpsertDeviceToken(userID primitive.ObjectID, deviceID, token, platform string) error
	DeleteDeviceToken(userID primitive.ObjectID, deviceID string) error
}

// Pusher fans a stored notification out to the recipients' devices
type Pusher interface {
	Push(ctx context.Context, n *schema.Notification) error
}

// Draft is a notification about to be sent
type Draft struct {
	UserIDs []primitive.ObjectID
	Title   string
	Message string
	Type    schema.NotificationType
	Action  *schema.NotificationAction
}

type Dispatcher struct {
	store  Store
	pusher Pusher
}

func NewDispatcher(store Store, pusher Pusher) *Dispatcher {
	return &Dispatcher{
		store:  store,
		pusher: pusher,
	}
}

// AddNotification stores a notification unread by every recipient and pushes
// it to their devices. Push failures are logged and never returned.
func (d *Dispatcher) AddNotification(draft Draft) (*schema.Notification, error) {
	if len(draft.UserIDs) == 0 {
		return nil, ErrNoRecipients
	}
	if draft.Title == "" {
		return nil, ErrEmptyTitle
	}

	n := &schema.Notification{
		UserIDs: draft.UserIDs,
		Title:   draft.Title,
		Message: draft.Message,
		Type:    draft.Type,
		Action:  draft.Action,
	}
	if n.Type == "" {
		n.Type = schema.NotificationSystem
	}

	if err := d.store.CreateNotification(n); err != nil {
		return nil, err
	}

	if d.pusher != nil {
		ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		defer cancel()

		if err := d.pusher.Push(ctx, n); err != nil {
			log.WithFields(log.Fields{
				"prefix":          logPrefix,
				"notification_id": n.ID.Hex(),
			}).WithError(err).Warn("fail to push notification")
		}
	}

	return n, nil
}

// GetNotifications returns the latest notifications of a user
func (d *Dispatcher) GetNotifications(userID primitive.ObjectID) ([]schema.Notification, error) {
	return d.store.ListNotifications(userID, consts.NotificationPageSize)
}

func (d *Dispatcher) MarkNotificationAsRead(id, userID primitive.ObjectID) error {
	return d.store.MarkNotificationRead(id, userID)
}

func (d *Dispatcher) MarkAllAsRead(userID primitive.ObjectID) (int, error) {
	return d.store.MarkAllNotificationsRead(userID)
}

func (d *Dispatcher) RegisterDeviceToken(userID primitive.ObjectID, token, deviceID, platform string) error {
	return d.store.UpsertDeviceToken(userID, deviceID, token, platform)
}

func (d *Dispatcher) RemoveDeviceToken(userID primitive.ObjectID, deviceID string) error {
	return d.store.DeleteDeviceToken(userID, deviceID)
}
