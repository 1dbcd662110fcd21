package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AchievementCollection     = "achievements"
	UserAchievementCollection = "user_achievements"
	BadgeCollection           = "badges"
	UserBadgeCollection       = "user_badges"
)

type AchievementType string

const (
	AchievementMarkersCreated    AchievementType = "markers_created"
	AchievementMarkersCompleted  AchievementType = "markers_completed"
	AchievementMessagesSent      AchievementType = "messages_sent"
	AchievementReactionsReceived AchievementType = "reactions_received"
	AchievementHelpProvided      AchievementType = "help_provided"
)

func (t AchievementType) Valid() bool {
	switch t {
	case AchievementMarkersCreated, AchievementMarkersCompleted, AchievementMessagesSent,
		AchievementReactionsReceived, AchievementHelpProvided:
		return true
	}
	return false
}

type AchievementRewards struct {
	Badge         string `bson:"badge,omitempty" json:"badge,omitempty" yaml:"badge"`
	Points        int    `bson:"points,omitempty" json:"points,omitempty" yaml:"points"`
	UnlockFeature string `bson:"unlockFeature,omitempty" json:"unlockFeature,omitempty" yaml:"unlock_feature"`
}

func (r *AchievementRewards) Empty() bool {
	return r == nil || (r.Badge == "" && r.Points == 0 && r.UnlockFeature == "")
}

type Achievement struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Code        string              `bson:"code" json:"code" yaml:"code"`
	Name        string              `bson:"name" json:"name" yaml:"name"`
	Description string              `bson:"description" json:"description" yaml:"description"`
	Icon        string              `bson:"icon" json:"icon" yaml:"icon"`
	Color       string              `bson:"color" json:"color" yaml:"color"`
	Type        AchievementType     `bson:"type" json:"type" yaml:"type"`
	Total       int                 `bson:"total" json:"total" yaml:"total"`
	IsHidden    bool                `bson:"isHidden" json:"isHidden" yaml:"hidden"`
	Rewards     *AchievementRewards `bson:"rewards,omitempty" json:"rewards,omitempty" yaml:"rewards"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt" yaml:"-"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt" yaml:"-"`
}

type UserAchievement struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	AchievementID primitive.ObjectID `bson:"achievementId" json:"achievementId"`
	Progress      int                `bson:"progress" json:"progress"`
	IsCompleted   bool               `bson:"isCompleted" json:"isCompleted"`
	CompletedAt   *time.Time         `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`

	// populated by $lookup
	Achievement *Achievement `bson:"achievement,omitempty" json:"achievement,omitempty"`
}

type Badge struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code          string             `bson:"code" json:"code" yaml:"code"`
	Name          string             `bson:"name" json:"name" yaml:"name"`
	Description   string             `bson:"description" json:"description" yaml:"description"`
	Icon          string             `bson:"icon" json:"icon" yaml:"icon"`
	Color         string             `bson:"color" json:"color" yaml:"color"`
	AchievementID primitive.ObjectID `bson:"achievementId,omitempty" json:"achievementId,omitempty" yaml:"-"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt" yaml:"-"`
}

type UserBadge struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID   primitive.ObjectID `bson:"userId" json:"userId"`
	BadgeID  primitive.ObjectID `bson:"badgeId" json:"badgeId"`
	EarnedAt time.Time          `bson:"earnedAt" json:"earnedAt"`

	// populated by $lookup
	Badge *Badge `bson:"badge,omitempty" json:"badge,omitempty"`
}
