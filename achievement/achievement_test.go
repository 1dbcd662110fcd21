package achievement_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/frilo-app/frilo-api/achievement"
	"github.com/frilo-app/frilo-api/mocks"
	"github.com/frilo-app/frilo-api/notification"
	"github.com/frilo-app/frilo-api/schema"
	"github.com/frilo-app/frilo-api/store"
)

type EngineTestSuite struct {
	suite.Suite
	ctl      *gomock.Controller
	store    *mocks.MockMongoStore
	notifier *mocks.MockNotifier
	engine   *achievement.Engine
	userID   primitive.ObjectID
}

func (s *EngineTestSuite) SetupTest() {
	s.ctl = gomock.NewController(s.T())
	s.store = mocks.NewMockMongoStore(s.ctl)
	s.notifier = mocks.NewMockNotifier(s.ctl)
	s.engine = achievement.NewEngine(s.store, s.store, s.notifier)
	s.userID = primitive.NewObjectID()
}

func (s *EngineTestSuite) TearDownTest() {
	s.ctl.Finish()
}

func (s *EngineTestSuite) definition(total int, rewards *schema.AchievementRewards) schema.Achievement {
	return schema.Achievement{
		ID:      primitive.NewObjectID(),
		Code:    "helper",
		Name:    "Helper",
		Type:    schema.AchievementMarkersCreated,
		Total:   total,
		Rewards: rewards,
	}
}

// TestCheckCreatesRecord starts tracking an achievement that is not reached yet
func (s *EngineTestSuite) TestCheckCreatesRecord() {
	a := s.definition(5, nil)

	s.store.EXPECT().CountHelpPointsCreated(s.userID).Return(2, nil).Times(1)
	s.store.EXPECT().ListAchievementsByType(schema.AchievementMarkersCreated).Return([]schema.Achievement{a}, nil).Times(1)
	s.store.EXPECT().GetUserAchievement(s.userID, a.ID).Return(nil, store.ErrUserAchievementNotFound).Times(1)
	s.store.EXPECT().CreateUserAchievement(gomock.Any()).DoAndReturn(func(ua *schema.UserAchievement) error {
		s.Equal(2, ua.Progress)
		s.Equal(a.ID, ua.AchievementID)
		return nil
	}).Times(1)

	result, err := s.engine.CheckAchievementsByType(s.userID, schema.AchievementMarkersCreated)
	s.NoError(err)
	s.Len(result.New, 1)
	s.Len(result.Completed, 0)
}

// TestCheckCompletesWithRewards grants the badge, points and feature and
// announces the completion
func (s *EngineTestSuite) TestCheckCompletesWithRewards() {
	a := s.definition(3, &schema.AchievementRewards{Badge: "helper_badge", Points: 10, UnlockFeature: "group_chat"})
	badge := &schema.Badge{ID: primitive.NewObjectID(), Code: "helper_badge"}

	s.store.EXPECT().CountHelpPointsCreated(s.userID).Return(3, nil).Times(1)
	s.store.EXPECT().ListAchievementsByType(schema.AchievementMarkersCreated).Return([]schema.Achievement{a}, nil).Times(1)
	s.store.EXPECT().GetUserAchievement(s.userID, a.ID).Return(&schema.UserAchievement{Progress: 2}, nil).Times(1)
	s.store.EXPECT().CompleteUserAchievement(s.userID, a.ID, 3).Return(true, nil).Times(1)
	s.store.EXPECT().AddUserAchievement(s.userID, a.ID).Return(nil).Times(1)
	s.store.EXPECT().GetBadgeByCode("helper_badge").Return(badge, nil).Times(1)
	s.store.EXPECT().AwardBadge(s.userID, badge.ID).Return(true, nil).Times(1)
	s.store.EXPECT().AddUserBadge(s.userID, badge.ID).Return(nil).Times(1)
	s.store.EXPECT().CreditPoints(s.userID, 10).Return(nil).Times(1)
	s.store.EXPECT().UnlockFeature(s.userID, "group_chat").Return(nil).Times(1)
	s.store.EXPECT().GetUser(s.userID).Return(&schema.User{Language: "en"}, nil).Times(1)
	s.notifier.EXPECT().AddNotification(gomock.Any()).DoAndReturn(func(d notification.Draft) (*schema.Notification, error) {
		s.Equal(schema.NotificationAchievement, d.Type)
		s.Equal([]primitive.ObjectID{s.userID}, d.UserIDs)
		s.Equal(a.ID.Hex(), d.Action.ID)
		return &schema.Notification{}, nil
	}).Times(1)

	result, err := s.engine.CheckAchievementsByType(s.userID, schema.AchievementMarkersCreated)
	s.NoError(err)
	s.Len(result.Completed, 1)
	s.Len(result.New, 0)
}

// TestCheckSkipsCompleted never touches a completed record
func (s *EngineTestSuite) TestCheckSkipsCompleted() {
	a := s.definition(1, nil)

	s.store.EXPECT().CountHelpPointsCreated(s.userID).Return(9, nil).Times(1)
	s.store.EXPECT().ListAchievementsByType(schema.AchievementMarkersCreated).Return([]schema.Achievement{a}, nil).Times(1)
	s.store.EXPECT().GetUserAchievement(s.userID, a.ID).Return(&schema.UserAchievement{Progress: 1, IsCompleted: true}, nil).Times(1)
	s.store.EXPECT().CompleteUserAchievement(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	result, err := s.engine.CheckAchievementsByType(s.userID, schema.AchievementMarkersCreated)
	s.NoError(err)
	s.Empty(result.Completed)
	s.Empty(result.New)
}

// TestCheckLostCompletionRace does not reward twice
func (s *EngineTestSuite) TestCheckLostCompletionRace() {
	a := s.definition(1, &schema.AchievementRewards{Points: 5})

	s.store.EXPECT().CountHelpPointsCreated(s.userID).Return(1, nil).Times(1)
	s.store.EXPECT().ListAchievementsByType(schema.AchievementMarkersCreated).Return([]schema.Achievement{a}, nil).Times(1)
	s.store.EXPECT().GetUserAchievement(s.userID, a.ID).Return(&schema.UserAchievement{}, nil).Times(1)
	s.store.EXPECT().CompleteUserAchievement(s.userID, a.ID, 1).Return(false, nil).Times(1)
	s.store.EXPECT().CreditPoints(gomock.Any(), gomock.Any()).Times(0)

	result, err := s.engine.CheckAchievementsByType(s.userID, schema.AchievementMarkersCreated)
	s.NoError(err)
	s.Empty(result.Completed)
}

// TestCheckUpdatesProgress stores a changed progress below the total
func (s *EngineTestSuite) TestCheckUpdatesProgress() {
	a := s.definition(10, nil)

	s.store.EXPECT().CountHelpPointsCreated(s.userID).Return(4, nil).Times(1)
	s.store.EXPECT().ListAchievementsByType(schema.AchievementMarkersCreated).Return([]schema.Achievement{a}, nil).Times(1)
	s.store.EXPECT().GetUserAchievement(s.userID, a.ID).Return(&schema.UserAchievement{Progress: 3}, nil).Times(1)
	s.store.EXPECT().SetUserAchievementProgress(s.userID, a.ID, 4).Return(nil).Times(1)

	result, err := s.engine.CheckAchievementsByType(s.userID, schema.AchievementMarkersCreated)
	s.NoError(err)
	s.Empty(result.Completed)
	s.Empty(result.New)
}

func (s *EngineTestSuite) TestCheckUnknownType() {
	_, err := s.engine.CheckAchievementsByType(s.userID, schema.AchievementType("unknown"))
	s.ErrorIs(err, achievement.ErrUnknownType)
}

// TestUpdateProgressByID falls back to an object id when no code matches
func (s *EngineTestSuite) TestUpdateProgressByID() {
	a := s.definition(10, nil)

	s.store.EXPECT().GetAchievementByCode(a.ID.Hex()).Return(nil, store.ErrAchievementNotFound).Times(1)
	s.store.EXPECT().GetAchievement(a.ID).Return(&a, nil).Times(1)
	gomock.InOrder(
		s.store.EXPECT().GetUserAchievement(s.userID, a.ID).Return(&schema.UserAchievement{Progress: 1}, nil),
		s.store.EXPECT().GetUserAchievement(s.userID, a.ID).Return(&schema.UserAchievement{Progress: 6}, nil),
	)
	s.store.EXPECT().SetUserAchievementProgress(s.userID, a.ID, 6).Return(nil).Times(1)

	ua, err := s.engine.UpdateAchievementProgress(s.userID, a.ID.Hex(), 6)
	s.NoError(err)
	s.Equal(6, ua.Progress)
	s.Equal(a.ID, ua.Achievement.ID)
}

func (s *EngineTestSuite) TestUpdateProgressUnknownAchievement() {
	s.store.EXPECT().GetAchievementByCode("nope").Return(nil, store.ErrAchievementNotFound).Times(1)

	_, err := s.engine.UpdateAchievementProgress(s.userID, "nope", 1)
	s.ErrorIs(err, store.ErrAchievementNotFound)
}

func (s *EngineTestSuite) TestSummary() {
	badge := schema.Badge{Code: "b"}
	near := schema.Achievement{Name: "near", Total: 4, Description: "help points"}
	far := schema.Achievement{Name: "far", Total: 10}

	s.store.EXPECT().CountUserBadges(s.userID).Return(1, nil).Times(1)
	s.store.EXPECT().ListUserBadges(s.userID, gomock.Any()).Return([]schema.UserBadge{{Badge: &badge}}, nil).Times(1)
	s.store.EXPECT().ListUserAchievements(s.userID).Return([]schema.UserAchievement{
		{IsCompleted: true, Achievement: &far},
		{Progress: 3, Achievement: &near},
		{Progress: 5, Achievement: &far},
	}, nil).Times(1)

	summary, err := s.engine.GetUserAchievementsSummary(s.userID)
	s.NoError(err)
	s.Equal(1, summary.BadgeCount)
	s.Equal(1, summary.CompletedCount)
	s.Len(summary.RecentBadges, 1)
	s.Equal("near", summary.NextAchievement.Achievement.Name)
	s.Equal("3/4 help points", summary.NextAchievement.Description)
}

func (s *EngineTestSuite) TestEnsureDefinitions() {
	s.store.EXPECT().UpsertAchievement(gomock.Any()).DoAndReturn(func(a schema.Achievement) (*schema.Achievement, error) {
		a.ID = primitive.NewObjectID()
		return &a, nil
	}).MinTimes(1)
	s.store.EXPECT().UpsertBadge(gomock.Any()).DoAndReturn(func(b schema.Badge) (*schema.Badge, error) {
		return &b, nil
	}).AnyTimes()

	s.NoError(s.engine.EnsureDefinitions())
}

func (s *EngineTestSuite) TestInitializeUserAchievements() {
	s.store.EXPECT().GetAchievementByCode("first_help_created").Return(&schema.Achievement{ID: primitive.NewObjectID()}, nil).Times(1)
	s.store.EXPECT().GetAchievementByCode("first_help_done").Return(nil, store.ErrAchievementNotFound).Times(1)
	s.store.EXPECT().CreateUserAchievement(gomock.Any()).Return(nil).Times(1)

	s.engine.InitializeUserAchievements(s.userID)
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}
