package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/frilo-app/frilo-api/achievement"
	"github.com/frilo-app/frilo-api/auth"
	"github.com/frilo-app/frilo-api/background"
	"github.com/frilo-app/frilo-api/cache"
	"github.com/frilo-app/frilo-api/chat"
	"github.com/frilo-app/frilo-api/external/geoinfo"
	"github.com/frilo-app/frilo-api/external/objectstore"
	"github.com/frilo-app/frilo-api/helppoint"
	"github.com/frilo-app/frilo-api/logmodule"
	"github.com/frilo-app/frilo-api/notification"
	"github.com/frilo-app/frilo-api/realtime"
	"github.com/frilo-app/frilo-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

const (
	tokenCookie = "access_token"

	requesterKey   = "requester"
	requesterIDKey = "requesterID"
)

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.MongoStore
	cache cache.Store

	// Services
	auth          *auth.Service
	helpPoints    *helppoint.Service
	achievements  *achievement.Engine
	notifications *notification.Dispatcher
	chats         *chat.Service
	hub           *realtime.Hub

	// External services
	objects objectstore.ObjectStore
	geo     geoinfo.GeoInfo

	// job queue, nil when the background worker is disabled
	background background.TaskSender

	metrics  *requestMetrics
	limiter  *ipLimiter
	upgrader websocket.Upgrader
}

// Dependencies are the collaborators of the server
type Dependencies struct {
	Store         store.MongoStore
	Cache         cache.Store
	Auth          *auth.Service
	HelpPoints    *helppoint.Service
	Achievements  *achievement.Engine
	Notifications *notification.Dispatcher
	Chats         *chat.Service
	Hub           *realtime.Hub
	Objects       objectstore.ObjectStore
	Geo           geoinfo.GeoInfo
	Background    background.TaskSender
}

// NewServer new instance of server
func NewServer(d Dependencies) *Server {
	return &Server{
		store:         d.Store,
		cache:         d.Cache,
		auth:          d.Auth,
		helpPoints:    d.HelpPoints,
		achievements:  d.Achievements,
		notifications: d.Notifications,
		chats:         d.Chats,
		hub:           d.Hub,
		objects:       d.Objects,
		geo:           d.Geo,
		background:    d.Background,
		metrics:       newRequestMetrics(),
		limiter:       newIPLimiter(viper.GetFloat64("server.auth_rate"), viper.GetInt("server.auth_burst")),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowOriginFunc:  func(origin string) bool { return true },
		MaxAge:           12 * time.Hour,
	}))
	r.Use(s.metrics.middleware())

	authRoute := r.Group("/auth")
	authRoute.Use(logmodule.Ginrus("Auth"))
	authRoute.Use(s.rateLimitMiddleware())
	{
		authRoute.POST("/send-otp", s.sendOTP)
		authRoute.POST("/verify-otp", s.verifyOTP)
		authRoute.POST("/verify-user", s.verifyOTP)
		authRoute.POST("/register", s.register)
		authRoute.POST("/login", s.phoneLogin)
		authRoute.POST("/phone/login", s.phoneLogin)
		authRoute.POST("/verified-phone/login", s.verifiedPhoneLogin)
		authRoute.POST("/email/login", s.emailLogin)
		authRoute.POST("/google/login", s.googleLogin)
		authRoute.POST("/forgot-password", s.forgotPassword)
		authRoute.POST("/reset-password", s.resetPassword)
		authRoute.POST("/check-existence", s.checkExistence)
		authRoute.POST("/refresh-token", s.refreshToken)
		authRoute.POST("/logout", s.logout)
	}

	apiRoute := r.Group("")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(s.authMiddleware())

	userRoute := apiRoute.Group("/users")
	{
		userRoute.GET("/me", s.accountDetail)
		userRoute.PUT("/me", s.accountUpdate)
		userRoute.DELETE("/me", s.accountDelete)
		userRoute.GET("/me/activity", s.accountActivity)
		userRoute.POST("/me/avatar", s.accountUploadAvatar)
		userRoute.GET("/:id", s.userDetail)
	}

	// markers is the legacy name of help points
	for _, prefix := range []string{"/helpPoints", "/markers"} {
		helpRoute := apiRoute.Group(prefix)
		{
			helpRoute.POST("", s.createHelpPoint)
			helpRoute.GET("", s.listHelpPoints)
			helpRoute.GET("/user", s.userHelpPoints)
			helpRoute.GET("/count", s.helpPointsCount)
			helpRoute.GET("/:id", s.helpPointDetail)
			helpRoute.PUT("/:id", s.updateHelpPoint)
			helpRoute.DELETE("/:id", s.deleteHelpPoint)
			helpRoute.PUT("/:id/status", s.changeHelpPointStatus)
			helpRoute.POST("/:id/apply", s.applyForHelp)
			helpRoute.DELETE("/:id/apply", s.withdrawFromHelp)
			helpRoute.PUT("/:id/participants/:participantId", s.updateParticipantStatus)
			helpRoute.POST("/:id/images", s.uploadHelpPointImage)
			helpRoute.POST("/:id/save", s.toggleSavedHelpPoint)
		}
	}

	categoryRoute := apiRoute.Group("/categories")
	{
		categoryRoute.GET("", s.listCategories)
		categoryRoute.POST("", s.createCategory)
		categoryRoute.POST("/initialize", s.initializeCategories)
		categoryRoute.GET("/:id", s.categoryDetail)
		categoryRoute.PUT("/:id", s.updateCategory)
		categoryRoute.DELETE("/:id", s.deleteCategory)
	}

	achievementRoute := apiRoute.Group("/achievements")
	{
		achievementRoute.GET("", s.listAchievements)
		achievementRoute.GET("/user", s.userAchievements)
		achievementRoute.GET("/user/summary", s.userAchievementsSummary)
		achievementRoute.POST("/check", s.checkAchievements)
		achievementRoute.POST("/:achievementId/progress", s.updateAchievementProgress)
	}

	notificationRoute := apiRoute.Group("/notifications")
	{
		notificationRoute.GET("", s.listNotifications)
		notificationRoute.GET("/user/:userId", s.listNotifications)
		notificationRoute.POST("/read-all", s.markAllNotificationsRead)
		notificationRoute.POST("/:id/read", s.markNotificationRead)
		notificationRoute.POST("/device-token", s.registerDeviceToken)
		notificationRoute.DELETE("/device-token/:deviceId", s.removeDeviceToken)
	}

	chatRoute := apiRoute.Group("/chats")
	{
		chatRoute.POST("", s.createChat)
		chatRoute.GET("", s.listChats)
		chatRoute.GET("/with-messages", s.listChatsWithMessages)
		chatRoute.GET("/:id", s.chatDetail)
		chatRoute.DELETE("/:id", s.deleteChat)
		chatRoute.GET("/:id/messages", s.listMessages)
		chatRoute.POST("/:id/messages", s.sendMessage)
		chatRoute.POST("/:id/attachments", s.uploadAttachment)
		chatRoute.PUT("/:id/typing", s.updateTypingStatus)
		chatRoute.PUT("/:id/mute", s.muteChat)
		chatRoute.POST("/:id/participants", s.addChatParticipants)
		chatRoute.DELETE("/:id/participants/:userId", s.removeChatParticipant)
		chatRoute.PUT("/:id/group", s.updateGroupChat)
	}

	messageRoute := apiRoute.Group("/messages")
	{
		messageRoute.DELETE("/:id", s.deleteMessage)
		messageRoute.POST("/:id/read", s.markMessageRead)
		messageRoute.POST("/:id/reactions", s.addReaction)
		messageRoute.DELETE("/:id/reactions", s.removeReaction)
	}

	mapsRoute := apiRoute.Group("/google-maps")
	{
		mapsRoute.GET("/autocomplete", s.placeAutocomplete)
		mapsRoute.GET("/place-details", s.placeDetails)
		mapsRoute.GET("/reverse-geocode", s.reverseGeocode)
	}

	apiRoute.GET("/app-data/initial", s.initialAppData)

	wsRoute := r.Group("/ws")
	wsRoute.Use(logmodule.Ginrus("WS"))
	wsRoute.GET("", s.websocket)

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/reconcile-categories", s.adminReconcileCategories)
	}

	metricRoute := r.Group("/metrics")
	metricRoute.Use(logmodule.Ginrus("Metric"))
	metricRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.metric")))
	{
		metricRoute.GET("", s.metrics.handler())
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	abortWithError(c, err)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj interface{}) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}

// abortWithError answers with the status and code of a service error.
// Unknown errors are reported to sentry.
func abortWithError(c *gin.Context, err error) {
	status, resp, known := errorFor(err)
	if !known {
		log.WithError(err).WithField("path", c.FullPath()).Error("unexpected error")
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
	}
	abortWithEncoding(c, status, resp, err)
}

func abortWithBindError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		abortWithEncoding(c, http.StatusRequestEntityTooLarge, errorBodyTooLarge, err)
		return
	}
	abortWithEncoding(c, http.StatusBadRequest, invalidParameters(err), err)
}

// bindJSON decodes at most limit bytes of the request body into obj
func bindJSON(c *gin.Context, obj interface{}, limit int64) error {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	return c.ShouldBindJSON(obj)
}

// Response is the envelope of every successful request
type Response struct {
	IsSuccess bool        `json:"isSuccess"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

// PageResponse is the envelope of paginated listings
type PageResponse struct {
	Response
	Total int64 `json:"total"`
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
}

func responseOK(c *gin.Context, data interface{}) {
	responseWithEncoding(c, http.StatusOK, Response{IsSuccess: true, Data: data})
}

func responseCreated(c *gin.Context, data interface{}) {
	responseWithEncoding(c, http.StatusCreated, Response{IsSuccess: true, Data: data})
}

func responseMessage(c *gin.Context, message string) {
	responseWithEncoding(c, http.StatusOK, Response{IsSuccess: true, Message: message})
}

func responsePage(c *gin.Context, data interface{}, total, page, limit int64) {
	responseWithEncoding(c, http.StatusOK, PageResponse{
		Response: Response{IsSuccess: true, Data: data},
		Total:    total,
		Page:     page,
		Limit:    limit,
	})
}

// requester returns the id of the authenticated user
func requester(c *gin.Context) primitive.ObjectID {
	return c.MustGet(requesterIDKey).(primitive.ObjectID)
}

// paramID parses an object id path parameter, aborting the request when it
// is malformed
func paramID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidID, err)
		return primitive.NilObjectID, false
	}
	return id, true
}

func parseIDs(hexes []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
