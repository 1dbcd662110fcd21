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
	ErrMessageNotFound  = errors.New("message not found")
	ErrReactionNotFound = errors.New("reaction not found")
)

type Messages interface {
	CreateMessage(msg *schema.Message) error
	GetMessage(id primitive.ObjectID) (*schema.Message, error)
	ListMessages(chatID primitive.ObjectID, page, limit int64) ([]schema.Message, int64, error)
	SoftDeleteMessage(id primitive.ObjectID) error
	MarkMessageRead(id, userID primitive.ObjectID) error
	CountMessagesSent(userID primitive.ObjectID) (int, error)
}

type Reactions interface {
	UpsertReaction(r *schema.Reaction) error
	DeleteReaction(messageID, userID primitive.ObjectID) error
	ListReactions(messageIDs []primitive.ObjectID) ([]schema.Reaction, error)
	CountReactionsReceived(userID primitive.ObjectID) (int, error)
}

func (m *mongoDB) CreateMessage(msg *schema.Message) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	msg.ID = primitive.NewObjectID()
	msg.CreatedAt = now
	msg.UpdatedAt = now
	if msg.MediaURLs == nil {
		msg.MediaURLs = []string{}
	}
	if msg.ReadBy == nil {
		msg.ReadBy = []primitive.ObjectID{}
	}

	_, err := m.collection(schema.MessageCollection).InsertOne(ctx, msg)
	return err
}

func (m *mongoDB) GetMessage(id primitive.ObjectID) (*schema.Message, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var msg schema.Message
	if err := m.collection(schema.MessageCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&msg); err != nil {
		if isNoDocuments(err) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &msg, nil
}

// ListMessages returns one page of a chat, newest first, and the total count
func (m *mongoDB) ListMessages(chatID primitive.ObjectID, page, limit int64) ([]schema.Message, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if page < 1 {
		page = 1
	}

	c := m.collection(schema.MessageCollection)
	query := bson.M{"chatId": chatID}

	total, err := c.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	cursor, err := c.Find(ctx, query, options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetSkip((page-1)*limit).
		SetLimit(limit))
	if err != nil {
		return nil, 0, err
	}

	messages := make([]schema.Message, 0)
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

// SoftDeleteMessage keeps the message in place with its content cleared
func (m *mongoDB) SoftDeleteMessage(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.MessageCollection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"isDeleted": true,
			"text":      "",
			"mediaUrls": []string{},
			"updatedAt": time.Now().UTC(),
		},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (m *mongoDB) MarkMessageRead(id, userID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	result, err := m.collection(schema.MessageCollection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$addToSet": bson.M{"readBy": userID},
		"$set": bson.M{
			"isRead":      true,
			"isDelivered": true,
			"readAt":      now,
			"updatedAt":   now,
		},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (m *mongoDB) CountMessagesSent(userID primitive.ObjectID) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	n, err := m.collection(schema.MessageCollection).CountDocuments(ctx, bson.M{
		"senderId":  userID,
		"isDeleted": bson.M{"$ne": true},
	})
	return int(n), err
}

// UpsertReaction keeps one reaction per user and message, replacing the emoji
func (m *mongoDB) UpsertReaction(r *schema.Reaction) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	r.CreatedAt = time.Now().UTC()
	err := m.collection(schema.ReactionCollection).FindOneAndUpdate(ctx,
		bson.M{"messageId": r.MessageID, "userId": r.UserID},
		bson.M{
			"$set": bson.M{
				"emoji":     r.Emoji,
				"chatId":    r.ChatID,
				"createdAt": r.CreatedAt,
			},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(r)
	return err
}

func (m *mongoDB) DeleteReaction(messageID, userID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.ReactionCollection).DeleteOne(ctx, bson.M{"messageId": messageID, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrReactionNotFound
	}
	return nil
}

func (m *mongoDB) ListReactions(messageIDs []primitive.ObjectID) ([]schema.Reaction, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.ReactionCollection).Find(ctx,
		bson.M{"messageId": bson.M{"$in": messageIDs}},
		options.Find().SetSort(bson.M{"createdAt": 1}))
	if err != nil {
		return nil, err
	}

	reactions := make([]schema.Reaction, 0)
	if err := cursor.All(ctx, &reactions); err != nil {
		return nil, err
	}
	return reactions, nil
}

// CountReactionsReceived counts reactions left on the messages a user sent
func (m *mongoDB) CountReactionsReceived(userID primitive.ObjectID) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.ReactionCollection).Aggregate(ctx, []bson.M{
		{"$lookup": bson.M{
			"from":         schema.MessageCollection,
			"localField":   "messageId",
			"foreignField": "_id",
			"as":           "message",
		}},
		{"$match": bson.M{"message.senderId": userID}},
		{"$count": "total"},
	})
	if err != nil {
		return 0, err
	}

	var result []struct {
		Total int `bson:"total"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		return 0, err
	}
	if len(result) == 0 {
		return 0, nil
	}
	return result[0].Total, nil
}
