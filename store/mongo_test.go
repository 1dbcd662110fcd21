package store

import (
	"context"
	"os"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/frilo-app/frilo-api/schema"
)

const testDBName = "frilo-test"

// testMongoURI returns the connection string of the database used by the
// store suites. Suites are skipped when it is not configured.
func testMongoURI() string {
	return os.Getenv("FRILO_TEST_MONGO")
}

// mongoSuite holds the connection shared by the store suites
type mongoSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
	store        *mongoDB
}

func (s *mongoSuite) SetupSuite() {
	if s.connURI == "" {
		s.T().Skip("FRILO_TEST_MONGO is not set")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)
	s.store = NewMongoStore(mongoClient, s.testDBName, false).(*mongoDB)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexerWithClient(mongoClient, s.testDBName).IndexAll()
}

// CleanMongoDB drops the test database
func (s *mongoSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *mongoSuite) TearDownSuite() {
	if s.mongoClient == nil {
		return
	}
	_ = s.CleanMongoDB()
	_ = s.mongoClient.Disconnect(context.Background())
}
