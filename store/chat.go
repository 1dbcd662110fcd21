package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/frilo-app/frilo-api/schema"
)

var (
	ErrChatNotFound = errors.New("chat not found")
)

type Chats interface {
	CreateChat(c *schema.Chat) error
	GetChat(id primitive.ObjectID) (*schema.Chat, error)
	FindDirectChat(a, b primitive.ObjectID) (*schema.Chat, error)
	ListUserChats(userID primitive.ObjectID) ([]schema.Chat, error)
	RecordChatMessage(chatID, messageID primitive.ObjectID, recipients []primitive.ObjectID) error
	ResetUnreadCount(chatID, userID primitive.ObjectID) error
	SetTypingStatus(chatID, userID primitive.ObjectID, typing bool) error
	SetChatMuted(chatID, userID primitive.ObjectID, muted bool) error
	AddChatParticipants(chatID primitive.ObjectID, userIDs []primitive.ObjectID) error
	RemoveChatParticipant(chatID, userID primitive.ObjectID) error
	UpdateGroupChat(chatID primitive.ObjectID, name, avatar *string) error
	DeleteChat(chatID primitive.ObjectID) error
}

func (m *mongoDB) CreateChat(c *schema.Chat) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	c.ID = primitive.NewObjectID()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Admins == nil {
		c.Admins = []primitive.ObjectID{}
	}
	c.TypingUsers = []primitive.ObjectID{}
	c.MutedUsers = []primitive.ObjectID{}
	c.MessageIDs = []primitive.ObjectID{}
	c.UnreadCount = make(map[string]int, len(c.Participants))
	for _, p := range c.Participants {
		c.UnreadCount[p.Hex()] = 0
	}

	_, err := m.collection(schema.ChatCollection).InsertOne(ctx, c)
	return err
}

func chatLookupStages() []bson.M {
	return []bson.M{
		{"$lookup": bson.M{
			"from":         schema.MessageCollection,
			"localField":   "lastMessageId",
			"foreignField": "_id",
			"as":           "lastMessage",
		}},
		{"$unwind": bson.M{"path": "$lastMessage", "preserveNullAndEmptyArrays": true}},
	}
}

func (m *mongoDB) findChats(match bson.M) ([]schema.Chat, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	pipeline := []bson.M{
		{"$match": match},
		{"$sort": bson.M{"updatedAt": -1}},
	}
	pipeline = append(pipeline, chatLookupStages()...)

	cursor, err := m.collection(schema.ChatCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	chats := make([]schema.Chat, 0)
	if err := cursor.All(ctx, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

func (m *mongoDB) GetChat(id primitive.ObjectID) (*schema.Chat, error) {
	chats, err := m.findChats(bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	if len(chats) == 0 {
		return nil, ErrChatNotFound
	}
	return &chats[0], nil
}

// FindDirectChat returns the one-to-one chat between two users
func (m *mongoDB) FindDirectChat(a, b primitive.ObjectID) (*schema.Chat, error) {
	chats, err := m.findChats(bson.M{
		"isGroupChat":  false,
		"participants": bson.M{"$all": bson.A{a, b}, "$size": 2},
	})
	if err != nil {
		return nil, err
	}
	if len(chats) == 0 {
		return nil, ErrChatNotFound
	}
	return &chats[0], nil
}

func (m *mongoDB) ListUserChats(userID primitive.ObjectID) ([]schema.Chat, error) {
	return m.findChats(bson.M{"participants": userID})
}

func (m *mongoDB) updateChat(filter, update bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.ChatCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrChatNotFound
	}
	return nil
}

// RecordChatMessage links a new message to its chat and bumps the unread
// counters of the recipients
func (m *mongoDB) RecordChatMessage(chatID, messageID primitive.ObjectID, recipients []primitive.ObjectID) error {
	inc := bson.M{}
	for _, r := range recipients {
		inc["unreadCount."+r.Hex()] = 1
	}

	update := bson.M{
		"$set":  bson.M{"lastMessageId": messageID, "updatedAt": time.Now().UTC()},
		"$push": bson.M{"messageIds": messageID},
	}
	if len(inc) > 0 {
		update["$inc"] = inc
	}
	return m.updateChat(bson.M{"_id": chatID}, update)
}

func (m *mongoDB) ResetUnreadCount(chatID, userID primitive.ObjectID) error {
	return m.updateChat(bson.M{"_id": chatID}, bson.M{
		"$set": bson.M{"unreadCount." + userID.Hex(): 0},
	})
}

func (m *mongoDB) SetTypingStatus(chatID, userID primitive.ObjectID, typing bool) error {
	op := "$pull"
	if typing {
		op = "$addToSet"
	}
	return m.updateChat(bson.M{"_id": chatID}, bson.M{op: bson.M{"typingUsers": userID}})
}

func (m *mongoDB) SetChatMuted(chatID, userID primitive.ObjectID, muted bool) error {
	op := "$pull"
	if muted {
		op = "$addToSet"
	}
	return m.updateChat(bson.M{"_id": chatID}, bson.M{op: bson.M{"mutedUsers": userID}})
}

func (m *mongoDB) AddChatParticipants(chatID primitive.ObjectID, userIDs []primitive.ObjectID) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for _, id := range userIDs {
		set["unreadCount."+id.Hex()] = 0
	}
	return m.updateChat(bson.M{"_id": chatID}, bson.M{
		"$addToSet": bson.M{"participants": bson.M{"$each": userIDs}},
		"$set":      set,
	})
}

func (m *mongoDB) RemoveChatParticipant(chatID, userID primitive.ObjectID) error {
	return m.updateChat(bson.M{"_id": chatID}, bson.M{
		"$pull": bson.M{
			"participants": userID,
			"admins":       userID,
			"typingUsers":  userID,
			"mutedUsers":   userID,
		},
		"$unset": bson.M{"unreadCount." + userID.Hex(): ""},
		"$set":   bson.M{"updatedAt": time.Now().UTC()},
	})
}

func (m *mongoDB) UpdateGroupChat(chatID primitive.ObjectID, name, avatar *string) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if name != nil {
		set["groupName"] = *name
	}
	if avatar != nil {
		set["groupAvatar"] = *avatar
	}
	return m.updateChat(bson.M{"_id": chatID, "isGroupChat": true}, bson.M{"$set": set})
}

// DeleteChat removes a chat together with its messages and reactions
func (m *mongoDB) DeleteChat(chatID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	return m.withTransaction(ctx, func(sc context.Context) error {
		if _, err := m.collection(schema.ReactionCollection).DeleteMany(sc, bson.M{"chatId": chatID}); err != nil {
			return err
		}
		if _, err := m.collection(schema.MessageCollection).DeleteMany(sc, bson.M{"chatId": chatID}); err != nil {
			return err
		}
		result, err := m.collection(schema.ChatCollection).DeleteOne(sc, bson.M{"_id": chatID})
		if err != nil {
			return err
		}
		if result.DeletedCount == 0 {
			return ErrChatNotFound
		}
		return nil
	})
}
