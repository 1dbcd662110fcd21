package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return NewMongoDBIndexerWithClient(client, dbName)
}

// NewMongoDBIndexerWithClient reuses an existing connection
func NewMongoDBIndexerWithClient(client *mongo.Client, dbName string) *MongoDBIndexer {
	return &MongoDBIndexer{
		ctx:      context.Background(),
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func (m *MongoDBIndexer) createIndexes(collection string, indexes ...mongo.IndexModel) error {
	for _, i := range indexes {
		if err := m.createIndex(collection, i); err != nil {
			return err
		}
	}
	return nil
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexUserCollection())
	panicIfError(m.IndexHelpPointCollection())
	panicIfError(m.IndexCategoryCollection())
	panicIfError(m.IndexAchievementCollections())
	panicIfError(m.IndexNotificationCollections())
	panicIfError(m.IndexChatCollections())
}

func (m *MongoDBIndexer) IndexUserCollection() error {
	return m.createIndexes(UserCollection,
		mongo.IndexModel{
			Keys:    bson.M{"phoneNumber": 1},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
		mongo.IndexModel{
			Keys:    bson.M{"email": 1},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
		mongo.IndexModel{
			Keys:    bson.M{"googleId": 1},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	)
}

func (m *MongoDBIndexer) IndexHelpPointCollection() error {
	return m.createIndexes(HelpPointCollection,
		mongo.IndexModel{
			Keys: bson.M{"location": "2dsphere"},
		},
		mongo.IndexModel{
			Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "createdAt", Value: -1}},
		},
		mongo.IndexModel{
			Keys: bson.D{{Key: "categoryId", Value: 1}, {Key: "status", Value: 1}},
		},
		mongo.IndexModel{
			Keys: bson.M{"participants.userId": 1},
		},
	)
}

func (m *MongoDBIndexer) IndexCategoryCollection() error {
	return m.createIndex(CategoryCollection, mongo.IndexModel{
		Keys: bson.M{"type": 1},
	})
}

func (m *MongoDBIndexer) IndexAchievementCollections() error {
	if err := m.createIndexes(AchievementCollection,
		mongo.IndexModel{
			Keys:    bson.M{"code": 1},
			Options: options.Index().SetUnique(true),
		},
		mongo.IndexModel{
			Keys: bson.M{"type": 1},
		},
	); err != nil {
		return err
	}

	if err := m.createIndex(UserAchievementCollection, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "achievementId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	if err := m.createIndex(BadgeCollection, mongo.IndexModel{
		Keys:    bson.M{"code": 1},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(UserBadgeCollection, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "badgeId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexNotificationCollections() error {
	if err := m.createIndex(NotificationCollection, mongo.IndexModel{
		Keys: bson.D{{Key: "userIds", Value: 1}, {Key: "createdAt", Value: -1}},
	}); err != nil {
		return err
	}

	return m.createIndex(DeviceTokenCollection, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "deviceId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexChatCollections() error {
	if err := m.createIndex(ChatCollection, mongo.IndexModel{
		Keys: bson.D{{Key: "participants", Value: 1}, {Key: "updatedAt", Value: -1}},
	}); err != nil {
		return err
	}

	if err := m.createIndexes(MessageCollection,
		mongo.IndexModel{
			Keys: bson.D{{Key: "chatId", Value: 1}, {Key: "createdAt", Value: -1}},
		},
		mongo.IndexModel{
			Keys: bson.M{"senderId": 1},
		},
	); err != nil {
		return err
	}

	return m.createIndex(ReactionCollection, mongo.IndexModel{
		Keys:    bson.D{{Key: "messageId", Value: 1}, {Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
}
