package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/frilo-app/frilo-api/schema"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
)

type Notifications interface {
	CreateNotification(n *schema.Notification) error
	ListNotifications(userID primitive.ObjectID, limit int64) ([]schema.Notification, error)
	MarkNotificationRead(id, userID primitive.ObjectID) error
	MarkAllNotificationsRead(userID primitive.ObjectID) (int, error)
}

type DeviceTokens interface {
	UpsertDeviceToken(userID primitive.ObjectID, deviceID, token, platform string) error
	DeleteDeviceToken(userID primitive.ObjectID, deviceID string) error
	ListDeviceTokens(userIDs []primitive.ObjectID) ([]schema.DeviceToken, error)
	DeleteDeviceTokensByValue(tokens []string) error
}

// CreateNotification stores a notification unread by every recipient
func (m *mongoDB) CreateNotification(n *schema.Notification) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	n.ID = primitive.NewObjectID()
	n.CreatedAt = time.Now().UTC()
	n.ReadBy = make(map[string]bool, len(n.UserIDs))
	for _, id := range n.UserIDs {
		n.ReadBy[id.Hex()] = false
	}

	_, err := m.collection(schema.NotificationCollection).InsertOne(ctx, n)
	return err
}

func (m *mongoDB) ListNotifications(userID primitive.ObjectID, limit int64) ([]schema.Notification, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := m.collection(schema.NotificationCollection).Find(ctx, bson.M{"userIds": userID}, opts)
	if err != nil {
		return nil, err
	}

	notifications := make([]schema.Notification, 0)
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkNotificationRead sets the read flag of one recipient only
func (m *mongoDB) MarkNotificationRead(id, userID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.NotificationCollection).UpdateOne(ctx,
		bson.M{"_id": id, "userIds": userID},
		bson.M{"$set": bson.M{"readBy." + userID.Hex(): true}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (m *mongoDB) MarkAllNotificationsRead(userID primitive.ObjectID) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	key := "readBy." + userID.Hex()
	result, err := m.collection(schema.NotificationCollection).UpdateMany(ctx,
		bson.M{"userIds": userID, key: bson.M{"$ne": true}},
		bson.M{"$set": bson.M{key: true}},
	)
	if err != nil {
		return 0, err
	}
	return int(result.ModifiedCount), nil
}

// UpsertDeviceToken keeps one token per user and device
func (m *mongoDB) UpsertDeviceToken(userID primitive.ObjectID, deviceID, token, platform string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	_, err := m.collection(schema.DeviceTokenCollection).UpdateOne(ctx,
		bson.M{"userId": userID, "deviceId": deviceID},
		bson.M{
			"$set": bson.M{
				"token":     token,
				"platform":  platform,
				"lastUsed":  now,
				"updatedAt": now,
			},
			"$setOnInsert": bson.M{"createdAt": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

func (m *mongoDB) DeleteDeviceToken(userID primitive.ObjectID, deviceID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	_, err := m.collection(schema.DeviceTokenCollection).DeleteOne(ctx, bson.M{"userId": userID, "deviceId": deviceID})
	return err
}

func (m *mongoDB) ListDeviceTokens(userIDs []primitive.ObjectID) ([]schema.DeviceToken, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.DeviceTokenCollection).Find(ctx, bson.M{"userId": bson.M{"$in": userIDs}})
	if err != nil {
		return nil, err
	}

	tokens := make([]schema.DeviceToken, 0)
	if err := cursor.All(ctx, &tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

// DeleteDeviceTokensByValue prunes tokens the push provider no longer accepts
func (m *mongoDB) DeleteDeviceTokensByValue(tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	_, err := m.collection(schema.DeviceTokenCollection).DeleteMany(ctx, bson.M{"token": bson.M{"$in": tokens}})
	return err
}
