package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/config"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/frilo-app/frilo-api/background"
	"github.com/frilo-app/frilo-api/external/fcm"
	"github.com/frilo-app/frilo-api/notification"
	"github.com/frilo-app/frilo-api/store"
)

var (
	mongoClient *mongo.Client
	manager     *background.BackgroundManager
)

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	_ = godotenv.Load()

	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("frilo")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("background.reconcile_schedule", "@every 1h")
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Worker is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		if manager != nil {
			manager.Stop()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if mongoClient != nil {
			log.Info("Shutting down mongo store")
			_ = mongoClient.Disconnect(ctx)
		}
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	var err error

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err = mongo.Connect(initialCtx, opts)
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"), viper.GetBool("mongo.transaction"))

	sender, err := fcm.New(initialCtx, viper.GetString("fcm.credentials"))
	if err != nil {
		log.Panicf("create fcm sender with error: %s", err)
	}

	var conf = &config.Config{
		Broker:        viper.GetString("redis.conn"),
		DefaultQueue:  background.DefaultQueue,
		ResultBackend: viper.GetString("redis.conn"),
	}
	taskServer, err := machinery.NewServer(conf)
	if err != nil {
		log.Panic(err)
	}

	manager = background.New(mongoStore, notification.NewDevicePusher(mongoStore, sender), taskServer)
	panicIfError(manager.RegisterTasks())
	panicIfError(manager.Schedule(viper.GetString("background.reconcile_schedule")))

	if err := manager.Run(); err != nil {
		log.Panic(err)
	}
}
