package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ChatCollection     = "chats"
	MessageCollection  = "messages"
	ReactionCollection = "reactions"
)

type Chat struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Participants  []primitive.ObjectID `bson:"participants" json:"participants"`
	IsGroupChat   bool                 `bson:"isGroupChat" json:"isGroupChat"`
	GroupName     string               `bson:"groupName,omitempty" json:"groupName,omitempty"`
	GroupAvatar   string               `bson:"groupAvatar,omitempty" json:"groupAvatar,omitempty"`
	Admins        []primitive.ObjectID `bson:"admins" json:"admins"`
	TypingUsers   []primitive.ObjectID `bson:"typingUsers" json:"typingUsers"`
	MutedUsers    []primitive.ObjectID `bson:"mutedUsers" json:"mutedUsers"`
	UnreadCount   map[string]int       `bson:"unreadCount" json:"unreadCount"`
	MessageIDs    []primitive.ObjectID `bson:"messageIds" json:"-"`
	LastMessageID *primitive.ObjectID  `bson:"lastMessageId,omitempty" json:"lastMessageId,omitempty"`
	HelpPointID   *primitive.ObjectID  `bson:"helpPointId,omitempty" json:"helpPointId,omitempty"`
	CreatedAt     time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time            `bson:"updatedAt" json:"updatedAt"`

	// populated by $lookup
	LastMessage *Message `bson:"lastMessage,omitempty" json:"lastMessage,omitempty"`
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, i := range ids {
		if i == id {
			return true
		}
	}
	return false
}

func (c *Chat) HasParticipant(userID primitive.ObjectID) bool {
	return containsID(c.Participants, userID)
}

func (c *Chat) IsAdmin(userID primitive.ObjectID) bool {
	return containsID(c.Admins, userID)
}

func (c *Chat) IsMutedBy(userID primitive.ObjectID) bool {
	return containsID(c.MutedUsers, userID)
}

type MessageType string

const (
	MessageText  MessageType = "text"
	MessageImage MessageType = "image"
	MessageAudio MessageType = "audio"
	MessageVideo MessageType = "video"
	MessageFile  MessageType = "file"
)

func (t MessageType) Valid() bool {
	switch t {
	case MessageText, MessageImage, MessageAudio, MessageVideo, MessageFile:
		return true
	}
	return false
}

type Message struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	ChatID           primitive.ObjectID   `bson:"chatId" json:"chatId"`
	SenderID         primitive.ObjectID   `bson:"senderId" json:"senderId"`
	Type             MessageType          `bson:"type" json:"type"`
	Text             string               `bson:"text" json:"text"`
	MediaURLs        []string             `bson:"mediaUrls" json:"mediaUrls"`
	AudioMetering    []float64            `bson:"audioMetering,omitempty" json:"audioMetering,omitempty"`
	ReplyToMessageID *primitive.ObjectID  `bson:"replyToMessageId,omitempty" json:"replyToMessageId,omitempty"`
	IsRead           bool                 `bson:"isRead" json:"isRead"`
	IsDelivered      bool                 `bson:"isDelivered" json:"isDelivered"`
	IsEdited         bool                 `bson:"isEdited" json:"isEdited"`
	IsDeleted        bool                 `bson:"isDeleted" json:"isDeleted"`
	ReadBy           []primitive.ObjectID `bson:"readBy" json:"readBy"`
	ReadAt           *time.Time           `bson:"readAt,omitempty" json:"readAt,omitempty"`
	CreatedAt        time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time            `bson:"updatedAt" json:"updatedAt"`
}

type Reaction struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MessageID primitive.ObjectID `bson:"messageId" json:"messageId"`
	ChatID    primitive.ObjectID `bson:"chatId" json:"chatId"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Emoji     string             `bson:"emoji" json:"emoji"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
