package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
)

// MongoStore - interface for mongodb operations
type MongoStore interface {
	HelpPoints
	Categories
	Achievements
	Notifications
	DeviceTokens
	Chats
	Messages
	Reactions
	Users
	Closer
	Pinger
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

type mongoDB struct {
	client        *mongo.Client
	database      string
	transactional bool
}

// Ping - ping mongo db
func (m mongoDB) Ping() error {
	return m.client.Ping(context.Background(), nil)
}

// Close - close mongo db connections
func (m mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

func (m *mongoDB) collection(name string) *mongo.Collection {
	return m.client.Database(m.database).Collection(name)
}

// withTransaction runs fn inside a session transaction when transactions are
// enabled, and directly with ctx otherwise.
func (m *mongoDB) withTransaction(ctx context.Context, fn func(sc context.Context) error) error {
	if !m.transactional {
		return fn(ctx)
	}

	session, err := m.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

// NewMongoStore - return mongo db operations. Multi-document writes run in a
// transaction when transactional is true, which requires a replica set.
func NewMongoStore(client *mongo.Client, database string, transactional bool) MongoStore {
	return &mongoDB{
		client:        client,
		database:      database,
		transactional: transactional,
	}
}
