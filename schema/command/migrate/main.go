package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/frilo-app/frilo-api/achievement"
	"github.com/frilo-app/frilo-api/schema"
	"github.com/frilo-app/frilo-api/store"
)

func init() {
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetEnvPrefix("frilo")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetDefault("mongo.database", "frilo")
}

func main() {
	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()

	err := migrateMongo()
	if nil != err {
		panic(err)
	}
}

func migrateMongo() error {
	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(1)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return err
	}
	defer client.Disconnect(ctx)

	s := store.NewMongoStore(client, viper.GetString("mongo.database"), false)

	if err := setupCollectionCategory(s); err != nil {
		fmt.Println("failed to set up collection `categories`: ", err)
		return err
	}

	if err := setupAchievementDefinitions(s); err != nil {
		fmt.Println("failed to set up achievement definitions: ", err)
		return err
	}

	return nil
}

func setupCollectionCategory(s store.MongoStore) error {
	fmt.Println("initialize categories collection")

	categories, err := s.InitializeCategories()
	if err != nil {
		return err
	}

	fmt.Printf("%d categories available\n", len(categories))
	return nil
}

func setupAchievementDefinitions(s store.MongoStore) error {
	fmt.Println("initialize achievements and badges")

	return achievement.NewEngine(s, s, nil).EnsureDefinitions()
}
