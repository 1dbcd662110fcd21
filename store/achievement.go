package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/frilo-app/frilo-api/schema"
)

var (
	ErrAchievementNotFound     = errors.New("achievement not found")
	ErrUserAchievementNotFound = errors.New("user achievement not found")
	ErrBadgeNotFound           = errors.New("badge not found")
)

type Achievements interface {
	ListAchievements(includeHidden bool) ([]schema.Achievement, error)
	ListAchievementsByType(t schema.AchievementType) ([]schema.Achievement, error)
	GetAchievement(id primitive.ObjectID) (*schema.Achievement, error)
	GetAchievementByCode(code string) (*schema.Achievement, error)
	UpsertAchievement(a schema.Achievement) (*schema.Achievement, error)

	GetUserAchievement(userID, achievementID primitive.ObjectID) (*schema.UserAchievement, error)
	ListUserAchievements(userID primitive.ObjectID) ([]schema.UserAchievement, error)
	CreateUserAchievement(ua *schema.UserAchievement) error
	SetUserAchievementProgress(userID, achievementID primitive.ObjectID, progress int) error
	CompleteUserAchievement(userID, achievementID primitive.ObjectID, progress int) (bool, error)

	GetBadgeByCode(code string) (*schema.Badge, error)
	UpsertBadge(b schema.Badge) (*schema.Badge, error)
	AwardBadge(userID, badgeID primitive.ObjectID) (bool, error)
	ListUserBadges(userID primitive.ObjectID, limit int64) ([]schema.UserBadge, error)
	CountUserBadges(userID primitive.ObjectID) (int, error)
}

func (m *mongoDB) findAchievements(query bson.M) ([]schema.Achievement, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.AchievementCollection).Find(ctx, query,
		options.Find().SetSort(bson.D{{Key: "type", Value: 1}, {Key: "total", Value: 1}}))
	if err != nil {
		return nil, err
	}

	achievements := make([]schema.Achievement, 0)
	if err := cursor.All(ctx, &achievements); err != nil {
		return nil, err
	}
	return achievements, nil
}

func (m *mongoDB) ListAchievements(includeHidden bool) ([]schema.Achievement, error) {
	query := bson.M{}
	if !includeHidden {
		query["isHidden"] = bson.M{"$ne": true}
	}
	return m.findAchievements(query)
}

func (m *mongoDB) ListAchievementsByType(t schema.AchievementType) ([]schema.Achievement, error) {
	return m.findAchievements(bson.M{"type": t})
}

func (m *mongoDB) findAchievement(query bson.M) (*schema.Achievement, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var a schema.Achievement
	if err := m.collection(schema.AchievementCollection).FindOne(ctx, query).Decode(&a); err != nil {
		if isNoDocuments(err) {
			return nil, ErrAchievementNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (m *mongoDB) GetAchievement(id primitive.ObjectID) (*schema.Achievement, error) {
	return m.findAchievement(bson.M{"_id": id})
}

func (m *mongoDB) GetAchievementByCode(code string) (*schema.Achievement, error) {
	return m.findAchievement(bson.M{"code": code})
}

// UpsertAchievement creates or refreshes a definition keyed by its code
func (m *mongoDB) UpsertAchievement(a schema.Achievement) (*schema.Achievement, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	var result schema.Achievement
	err := m.collection(schema.AchievementCollection).FindOneAndUpdate(ctx,
		bson.M{"code": a.Code},
		bson.M{
			"$set": bson.M{
				"name":        a.Name,
				"description": a.Description,
				"icon":        a.Icon,
				"color":       a.Color,
				"type":        a.Type,
				"total":       a.Total,
				"isHidden":    a.IsHidden,
				"rewards":     a.Rewards,
				"updatedAt":   now,
			},
			"$setOnInsert": bson.M{"createdAt": now},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (m *mongoDB) GetUserAchievement(userID, achievementID primitive.ObjectID) (*schema.UserAchievement, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var ua schema.UserAchievement
	err := m.collection(schema.UserAchievementCollection).FindOne(ctx, bson.M{
		"userId":        userID,
		"achievementId": achievementID,
	}).Decode(&ua)
	if err != nil {
		if isNoDocuments(err) {
			return nil, ErrUserAchievementNotFound
		}
		return nil, err
	}
	return &ua, nil
}

// ListUserAchievements returns the progress records of a user with their
// definitions joined
func (m *mongoDB) ListUserAchievements(userID primitive.ObjectID) ([]schema.UserAchievement, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.UserAchievementCollection).Aggregate(ctx, []bson.M{
		{"$match": bson.M{"userId": userID}},
		{"$lookup": bson.M{
			"from":         schema.AchievementCollection,
			"localField":   "achievementId",
			"foreignField": "_id",
			"as":           "achievement",
		}},
		{"$unwind": "$achievement"},
		{"$sort": bson.M{"updatedAt": -1}},
	})
	if err != nil {
		return nil, err
	}

	records := make([]schema.UserAchievement, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// CreateUserAchievement inserts a progress record. A record that already
// exists for the pair is left as is.
func (m *mongoDB) CreateUserAchievement(ua *schema.UserAchievement) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	ua.ID = primitive.NewObjectID()
	ua.CreatedAt = now
	ua.UpdatedAt = now

	if _, err := m.collection(schema.UserAchievementCollection).InsertOne(ctx, ua); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return err
	}
	return nil
}

// SetUserAchievementProgress stores progress on a record that is not completed
func (m *mongoDB) SetUserAchievementProgress(userID, achievementID primitive.ObjectID, progress int) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	_, err := m.collection(schema.UserAchievementCollection).UpdateOne(ctx, bson.M{
		"userId":        userID,
		"achievementId": achievementID,
		"isCompleted":   false,
	}, bson.M{"$set": bson.M{
		"progress":  progress,
		"updatedAt": time.Now().UTC(),
	}})
	return err
}

// CompleteUserAchievement flips isCompleted from false to true. It reports
// whether this call performed the transition, so rewards can be granted once.
func (m *mongoDB) CompleteUserAchievement(userID, achievementID primitive.ObjectID, progress int) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	result, err := m.collection(schema.UserAchievementCollection).UpdateOne(ctx, bson.M{
		"userId":        userID,
		"achievementId": achievementID,
		"isCompleted":   false,
	}, bson.M{"$set": bson.M{
		"progress":    progress,
		"isCompleted": true,
		"completedAt": now,
		"updatedAt":   now,
	}})
	if err != nil {
		return false, err
	}
	return result.ModifiedCount == 1, nil
}

func (m *mongoDB) GetBadgeByCode(code string) (*schema.Badge, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var b schema.Badge
	if err := m.collection(schema.BadgeCollection).FindOne(ctx, bson.M{"code": code}).Decode(&b); err != nil {
		if isNoDocuments(err) {
			return nil, ErrBadgeNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (m *mongoDB) UpsertBadge(b schema.Badge) (*schema.Badge, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	set := bson.M{
		"name":        b.Name,
		"description": b.Description,
		"icon":        b.Icon,
		"color":       b.Color,
	}
	if !b.AchievementID.IsZero() {
		set["achievementId"] = b.AchievementID
	}

	var result schema.Badge
	err := m.collection(schema.BadgeCollection).FindOneAndUpdate(ctx,
		bson.M{"code": b.Code},
		bson.M{
			"$set":         set,
			"$setOnInsert": bson.M{"createdAt": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// AwardBadge records a badge for a user and reports whether it is new
func (m *mongoDB) AwardBadge(userID, badgeID primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	_, err := m.collection(schema.UserBadgeCollection).InsertOne(ctx, schema.UserBadge{
		ID:       primitive.NewObjectID(),
		UserID:   userID,
		BadgeID:  badgeID,
		EarnedAt: time.Now().UTC(),
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListUserBadges returns the most recently earned badges first
func (m *mongoDB) ListUserBadges(userID primitive.ObjectID, limit int64) ([]schema.UserBadge, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{"userId": userID}},
		{"$sort": bson.M{"earnedAt": -1}},
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.M{"$limit": limit})
	}
	pipeline = append(pipeline,
		bson.M{"$lookup": bson.M{
			"from":         schema.BadgeCollection,
			"localField":   "badgeId",
			"foreignField": "_id",
			"as":           "badge",
		}},
		bson.M{"$unwind": "$badge"},
	)

	cursor, err := m.collection(schema.UserBadgeCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	badges := make([]schema.UserBadge, 0)
	if err := cursor.All(ctx, &badges); err != nil {
		return nil, err
	}
	return badges, nil
}

func (m *mongoDB) CountUserBadges(userID primitive.ObjectID) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	n, err := m.collection(schema.UserBadgeCollection).CountDocuments(ctx, bson.M{"userId": userID})
	return int(n), err
}
