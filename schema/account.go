package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	UserCollection = "users"
)

// User is an identity keyed by phone number, email or google id
type User struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	PhoneNumber      string               `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Email            string               `bson:"email,omitempty" json:"email,omitempty"`
	GoogleID         string               `bson:"googleId,omitempty" json:"-"`
	Password         string               `bson:"password,omitempty" json:"-"`
	Name             string               `bson:"name" json:"name"`
	AvatarURL        string               `bson:"avatarUrl" json:"avatarUrl"`
	Bio              string               `bson:"bio,omitempty" json:"bio,omitempty"`
	Language         string               `bson:"language,omitempty" json:"language,omitempty"`
	IsPhoneVerified  bool                 `bson:"isPhoneVerified" json:"isPhoneVerified"`
	IsEmailVerified  bool                 `bson:"isEmailVerified" json:"isEmailVerified"`
	AgreedToTerms    bool                 `bson:"agreedToTerms" json:"agreedToTerms"`
	IsOnline         bool                 `bson:"isOnline" json:"isOnline"`
	LastSeen         *time.Time           `bson:"lastSeen,omitempty" json:"lastSeen,omitempty"`
	Points           int                  `bson:"points" json:"points"`
	BadgeIDs         []primitive.ObjectID `bson:"badgeIds" json:"badgeIds"`
	AchievementIDs   []primitive.ObjectID `bson:"achievementIds" json:"achievementIds"`
	UnlockedFeatures []string             `bson:"unlockedFeatures" json:"unlockedFeatures"`
	CreatedAt        time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// HasIdentity reports whether at least one login identifier is present
func (u *User) HasIdentity() bool {
	return u.PhoneNumber != "" || u.Email != "" || u.GoogleID != ""
}

// UserPatch holds the profile fields a user may change. Nil means unchanged.
type UserPatch struct {
	Name      *string
	Email     *string
	Bio       *string
	Language  *string
	AvatarURL *string
	Password  *string
}
