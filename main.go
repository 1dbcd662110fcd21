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

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/RichardKnop/machinery/v1"
	machineryconf "github.com/RichardKnop/machinery/v1/config"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/frilo-app/frilo-api/achievement"
	"github.com/frilo-app/frilo-api/api"
	"github.com/frilo-app/frilo-api/auth"
	"github.com/frilo-app/frilo-api/background"
	"github.com/frilo-app/frilo-api/cache"
	"github.com/frilo-app/frilo-api/chat"
	"github.com/frilo-app/frilo-api/external/fcm"
	"github.com/frilo-app/frilo-api/external/geoinfo"
	"github.com/frilo-app/frilo-api/external/objectstore"
	"github.com/frilo-app/frilo-api/helppoint"
	"github.com/frilo-app/frilo-api/notification"
	"github.com/frilo-app/frilo-api/realtime"
	"github.com/frilo-app/frilo-api/schema"
	"github.com/frilo-app/frilo-api/store"
	"github.com/frilo-app/frilo-api/utils"
)

var (
	server      *api.Server
	mongoClient *mongo.Client
	cacheStore  cache.Store
)

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

	viper.SetDefault("server.port", "3000")
	viper.SetDefault("jwt.expire", 24*7)
	viper.SetDefault("mongo.database", "frilo")
	viper.SetDefault("i18n.language", "en")
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown mobile api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if cacheStore != nil {
			log.Info("Shutting down cache store")
			if err := cacheStore.Close(); err != nil {
				log.Error(err)
			}
		}

		if mongoClient != nil {
			log.Info("Shutting down mongo store")
			if err := mongoClient.Disconnect(ctx); err != nil {
				log.Error(err)
			}
		}

		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	if viper.GetString("server.mode") == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	utils.InitI18NBundle(viper.GetString("i18n.language"))
	log.WithField("prefix", "init").Info("Initialized i18n bundle")

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	var err error
	mongoClient, err = mongo.Connect(initialCtx, opts)
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	database := viper.GetString("mongo.database")
	schema.NewMongoDBIndexerWithClient(mongoClient, database).IndexAll()
	mongoStore := store.NewMongoStore(mongoClient, database, viper.GetBool("mongo.transaction"))
	log.WithField("prefix", "init").Info("Initialized mongo store")

	cacheStore, err = cache.NewRedisStore(viper.GetString("redis.conn"))
	if err != nil {
		log.Panicf("create cache store with error: %s", err)
	}
	if err := cacheStore.Ping(initialCtx); err != nil {
		log.Panicf("connect cache store with error: %s", err)
	}

	objects, err := objectstore.New(objectstore.Config{
		Region:   viper.GetString("aws.region"),
		Bucket:   viper.GetString("aws.bucket"),
		Endpoint: viper.GetString("aws.endpoint"),
	})
	if err != nil {
		log.Panicf("create object store with error: %s", err)
	}

	geo, err := geoinfo.New(viper.GetString("google.maps_key"))
	if err != nil {
		log.Panicf("get geo client with error: %s", err)
	}

	// Push goes through the background worker when it runs, and inline otherwise
	var (
		pusher     notification.Pusher
		taskSender background.TaskSender
	)
	if viper.GetBool("background.enabled") {
		machineryServer, err := machinery.NewServer(&machineryconf.Config{
			Broker:        viper.GetString("redis.conn"),
			DefaultQueue:  background.DefaultQueue,
			ResultBackend: viper.GetString("redis.conn"),
		})
		if err != nil {
			log.Panic(err)
		}
		taskSender = machineryServer
		pusher = background.NewEnqueuer(machineryServer)
	} else {
		sender, err := fcm.New(initialCtx, viper.GetString("fcm.credentials"))
		if err != nil {
			log.Panicf("create fcm sender with error: %s", err)
		}
		pusher = notification.NewDevicePusher(mongoStore, sender)
	}

	dispatcher := notification.NewDispatcher(mongoStore, pusher)

	engine := achievement.NewEngine(mongoStore, mongoStore, dispatcher)
	if err := engine.EnsureDefinitions(); err != nil {
		log.Panicf("ensure achievement definitions with error: %s", err)
	}

	helpPoints := helppoint.NewService(mongoStore, engine, dispatcher, objects, geo)

	chats := chat.NewService(mongoStore, engine, dispatcher, objects)
	hub := realtime.NewHub(chats, mongoStore)
	chats.SetBroadcaster(hub)

	authService := auth.NewService(
		mongoStore,
		auth.NewTokens(viper.GetString("jwt.secret"), time.Duration(viper.GetInt("jwt.expire"))*time.Hour),
		auth.NewOTP(cacheStore, auth.LogSender{}),
		auth.NewGoogleVerifier(viper.GetStringSlice("google.client_ids")),
		auth.LogSender{},
		cacheStore,
		engine,
	)

	// Init http server
	server = api.NewServer(api.Dependencies{
		Store:         mongoStore,
		Cache:         cacheStore,
		Auth:          authService,
		HelpPoints:    helpPoints,
		Achievements:  engine,
		Notifications: dispatcher,
		Chats:         chats,
		Hub:           hub,
		Objects:       objects,
		Geo:           geo,
		Background:    taskSender,
	})
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
