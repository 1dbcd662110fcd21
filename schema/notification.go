package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	NotificationCollection = "notifications"
	DeviceTokenCollection  = "device_tokens"
)

type NotificationType string

const (
	NotificationHelpPointApplication  NotificationType = "marker_application"
	NotificationHelpPointStatusUpdate NotificationType = "marker_status_update"
	NotificationHelpPointCompleted    NotificationType = "marker_completed"
	NotificationChatMessage           NotificationType = "chat_message"
	NotificationAchievement           NotificationType = "achievement"
	NotificationSystem                NotificationType = "system"
)

const (
	ActionHelpPoint = "helpPoint"
	ActionChat      = "chat"
)

// NotificationAction points the client at the entity to open
type NotificationAction struct {
	Type string `bson:"type" json:"type"`
	ID   string `bson:"id" json:"id"`
}

type Notification struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserIDs   []primitive.ObjectID `bson:"userIds" json:"userIds"`
	Title     string               `bson:"title" json:"title"`
	Message   string               `bson:"message" json:"message"`
	Type      NotificationType     `bson:"type" json:"type"`
	Action    *NotificationAction  `bson:"action,omitempty" json:"action,omitempty"`
	ReadBy    map[string]bool      `bson:"readBy" json:"readBy"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
}

// IsReadBy reports the read flag of one recipient
func (n *Notification) IsReadBy(userID primitive.ObjectID) bool {
	return n.ReadBy[userID.Hex()]
}

type DeviceToken struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	DeviceID  string             `bson:"deviceId" json:"deviceId"`
	Token     string             `bson:"token" json:"token"`
	Platform  string             `bson:"platform,omitempty" json:"platform,omitempty"`
	LastUsed  time.Time          `bson:"lastUsed" json:"lastUsed"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
