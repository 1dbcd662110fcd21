package notification_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/frilo-app/frilo-api/consts"
	"github.com/frilo-app/frilo-api/external/fcm"
	"github.com/frilo-app/frilo-api/mocks"
	"github.com/frilo-app/frilo-api/notification"
	"github.com/frilo-app/frilo-api/schema"
)

func TestAddNotification(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	p := mocks.NewMockPusher(ctl)
	d := notification.NewDispatcher(m, p)

	userID := primitive.NewObjectID()
	m.EXPECT().CreateNotification(gomock.Any()).DoAndReturn(func(n *schema.Notification) error {
		n.ID = primitive.NewObjectID()
		return nil
	}).Times(1)
	p.EXPECT().Push(gomock.Any(), gomock.Any()).Return(errors.New("fcm down")).Times(1)

	n, err := d.AddNotification(notification.Draft{
		UserIDs: []primitive.ObjectID{userID},
		Title:   "hello",
		Message: "world",
	})

	assert.NoError(t, err, "push failure should not fail the notification")
	assert.Equal(t, schema.NotificationSystem, n.Type)
	assert.Equal(t, []primitive.ObjectID{userID}, n.UserIDs)
	assert.False(t, n.ID.IsZero())
}

func TestAddNotificationValidation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := notification.NewDispatcher(mocks.NewMockMongoStore(ctl), nil)

	_, err := d.AddNotification(notification.Draft{Title: "hello"})
	assert.Equal(t, notification.ErrNoRecipients, err)

	_, err = d.AddNotification(notification.Draft{UserIDs: []primitive.ObjectID{primitive.NewObjectID()}})
	assert.Equal(t, notification.ErrEmptyTitle, err)
}

func TestAddNotificationStoreError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	p := mocks.NewMockPusher(ctl)
	d := notification.NewDispatcher(m, p)

	m.EXPECT().CreateNotification(gomock.Any()).Return(errors.New("db down")).Times(1)
	p.EXPECT().Push(gomock.Any(), gomock.Any()).Times(0)

	_, err := d.AddNotification(notification.Draft{
		UserIDs: []primitive.ObjectID{primitive.NewObjectID()},
		Title:   "hello",
	})
	assert.EqualError(t, err, "db down")
}

func TestGetNotifications(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	d := notification.NewDispatcher(m, nil)

	userID := primitive.NewObjectID()
	m.EXPECT().ListNotifications(userID, int64(consts.NotificationPageSize)).Return([]schema.Notification{{Title: "a"}}, nil).Times(1)

	list, err := d.GetNotifications(userID)
	assert.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDevicePusher(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := mocks.NewMockSender(ctl)
	p := notification.NewDevicePusher(m, s)

	n := &schema.Notification{
		ID:      primitive.NewObjectID(),
		UserIDs: []primitive.ObjectID{primitive.NewObjectID()},
		Title:   "New message",
		Message: "hi",
		Type:    schema.NotificationChatMessage,
		Action:  &schema.NotificationAction{Type: "chat", ID: "abc"},
	}

	m.EXPECT().ListDeviceTokens(n.UserIDs).Return([]schema.DeviceToken{
		{Token: "t1"},
		{Token: "t2"},
	}, nil).Times(1)
	s.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg fcm.Message) ([]string, error) {
		assert.Equal(t, []string{"t1", "t2"}, msg.Tokens)
		assert.Equal(t, "New message", msg.Title)
		assert.Equal(t, "chat", msg.Data["actionType"])
		assert.Equal(t, "abc", msg.Data["actionId"])
		assert.Equal(t, n.ID.Hex(), msg.Data["notificationId"])
		return []string{"t2"}, nil
	}).Times(1)
	m.EXPECT().DeleteDeviceTokensByValue([]string{"t2"}).Return(nil).Times(1)

	assert.NoError(t, p.Push(context.Background(), n))
}

func TestDevicePusherWithoutDevices(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := mocks.NewMockSender(ctl)
	p := notification.NewDevicePusher(m, s)

	m.EXPECT().ListDeviceTokens(gomock.Any()).Return(nil, nil).Times(1)
	s.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

	assert.NoError(t, p.Push(context.Background(), &schema.Notification{UserIDs: []primitive.ObjectID{primitive.NewObjectID()}}))
}
