package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/frilo-app/frilo-api/schema"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("user already exists")
	ErrMissingIdentity = errors.New("user needs a phone number, email or google id")
)

type Users interface {
	CreateUser(u *schema.User) error
	GetUser(id primitive.ObjectID) (*schema.User, error)
	GetUserByPhone(phone string) (*schema.User, error)
	GetUserByEmail(email string) (*schema.User, error)
	GetUserByGoogleID(googleID string) (*schema.User, error)
	UpdateUser(id primitive.ObjectID, patch schema.UserPatch) (*schema.User, error)
	DeleteUser(id primitive.ObjectID) error
	SetUserOnline(id primitive.ObjectID, online bool) error
	LinkGoogleAccount(id primitive.ObjectID, googleID string) error

	CreditPoints(userID primitive.ObjectID, points int) error
	AddUserBadge(userID, badgeID primitive.ObjectID) error
	AddUserAchievement(userID, achievementID primitive.ObjectID) error
	UnlockFeature(userID primitive.ObjectID, feature string) error
}

// CreateUser inserts a user. Unique identifiers that are already taken yield ErrUserExists.
func (m *mongoDB) CreateUser(u *schema.User) error {
	if !u.HasIdentity() {
		return ErrMissingIdentity
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	u.ID = primitive.NewObjectID()
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.BadgeIDs == nil {
		u.BadgeIDs = []primitive.ObjectID{}
	}
	if u.AchievementIDs == nil {
		u.AchievementIDs = []primitive.ObjectID{}
	}
	if u.UnlockedFeatures == nil {
		u.UnlockedFeatures = []string{}
	}

	if _, err := m.collection(schema.UserCollection).InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrUserExists
		}
		return err
	}
	return nil
}

func (m *mongoDB) findUser(query bson.M) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var u schema.User
	if err := m.collection(schema.UserCollection).FindOne(ctx, query).Decode(&u); err != nil {
		if isNoDocuments(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (m *mongoDB) GetUser(id primitive.ObjectID) (*schema.User, error) {
	return m.findUser(bson.M{"_id": id})
}

func (m *mongoDB) GetUserByPhone(phone string) (*schema.User, error) {
	return m.findUser(bson.M{"phoneNumber": phone})
}

func (m *mongoDB) GetUserByEmail(email string) (*schema.User, error) {
	return m.findUser(bson.M{"email": email})
}

func (m *mongoDB) GetUserByGoogleID(googleID string) (*schema.User, error) {
	return m.findUser(bson.M{"googleId": googleID})
}

func (m *mongoDB) updateUser(id primitive.ObjectID, update bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.UserCollection).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrUserExists
		}
		return err
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (m *mongoDB) UpdateUser(id primitive.ObjectID, patch schema.UserPatch) (*schema.User, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Bio != nil {
		set["bio"] = *patch.Bio
	}
	if patch.Language != nil {
		set["language"] = *patch.Language
	}
	if patch.AvatarURL != nil {
		set["avatarUrl"] = *patch.AvatarURL
	}
	if patch.Password != nil {
		set["password"] = *patch.Password
	}

	if err := m.updateUser(id, bson.M{"$set": set}); err != nil {
		return nil, err
	}
	return m.GetUser(id)
}

func (m *mongoDB) DeleteUser(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.UserCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (m *mongoDB) SetUserOnline(id primitive.ObjectID, online bool) error {
	set := bson.M{"isOnline": online}
	if !online {
		set["lastSeen"] = time.Now().UTC()
	}
	return m.updateUser(id, bson.M{"$set": set})
}

func (m *mongoDB) LinkGoogleAccount(id primitive.ObjectID, googleID string) error {
	return m.updateUser(id, bson.M{"$set": bson.M{
		"googleId":        googleID,
		"isEmailVerified": true,
		"updatedAt":       time.Now().UTC(),
	}})
}

func (m *mongoDB) CreditPoints(userID primitive.ObjectID, points int) error {
	return m.updateUser(userID, bson.M{"$inc": bson.M{"points": points}})
}

func (m *mongoDB) AddUserBadge(userID, badgeID primitive.ObjectID) error {
	return m.updateUser(userID, bson.M{"$addToSet": bson.M{"badgeIds": badgeID}})
}

func (m *mongoDB) AddUserAchievement(userID, achievementID primitive.ObjectID) error {
	return m.updateUser(userID, bson.M{"$addToSet": bson.M{"achievementIds": achievementID}})
}

func (m *mongoDB) UnlockFeature(userID primitive.ObjectID, feature string) error {
	return m.updateUser(userID, bson.M{"$addToSet": bson.M{"unlockedFeatures": feature}})
}
