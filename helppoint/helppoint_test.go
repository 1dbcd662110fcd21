package helppoint_test

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/frilo-app/frilo-api/achievement"
	"github.com/frilo-app/frilo-api/consts"
	"github.com/frilo-app/frilo-api/external/objectstore"
	"github.com/frilo-app/frilo-api/helppoint"
	"github.com/frilo-app/frilo-api/mocks"
	"github.com/frilo-app/frilo-api/notification"
	"github.com/frilo-app/frilo-api/schema"
	"github.com/frilo-app/frilo-api/store"
)

const (
	pngDataURI  = "data:image/png;base64,iVBORw0KGgo="
	jpegDataURI = "data:image/jpeg;base64,/9j/4A=="
)

type HelpPointTestSuite struct {
	suite.Suite
	ctl          *gomock.Controller
	store        *mocks.MockMongoStore
	achievements *mocks.MockAchievementChecker
	notifier     *mocks.MockNotifier
	objects      *mocks.MockObjectStore
	geo          *mocks.MockGeoInfo
	service      *helppoint.Service

	ownerID    primitive.ObjectID
	categoryID primitive.ObjectID
}

func (s *HelpPointTestSuite) SetupTest() {
	s.ctl = gomock.NewController(s.T())
	s.store = mocks.NewMockMongoStore(s.ctl)
	s.achievements = mocks.NewMockAchievementChecker(s.ctl)
	s.notifier = mocks.NewMockNotifier(s.ctl)
	s.objects = mocks.NewMockObjectStore(s.ctl)
	s.geo = mocks.NewMockGeoInfo(s.ctl)
	s.service = helppoint.NewService(s.store, s.achievements, s.notifier, s.objects, s.geo)

	s.ownerID = primitive.NewObjectID()
	s.categoryID = primitive.NewObjectID()
}

func (s *HelpPointTestSuite) TearDownTest() {
	s.ctl.Finish()
}

func (s *HelpPointTestSuite) draft() helppoint.Draft {
	return helppoint.Draft{
		Type:       schema.HelpPointRequest,
		Title:      "Groceries",
		Location:   schema.Location{Latitude: 25.03, Longitude: 121.56},
		CategoryID: s.categoryID,
	}
}

func (s *HelpPointTestSuite) TestCreate() {
	d := s.draft()
	d.Images = []string{pngDataURI, jpegDataURI}
	id := primitive.NewObjectID()
	completed := schema.Achievement{Code: "first_help_created"}

	s.store.EXPECT().GetCategory(s.categoryID).Return(&schema.Category{ID: s.categoryID}, nil).Times(1)
	s.geo.EXPECT().ReverseGeocode(d.Location, "").Return("Taipei", nil).Times(1)
	s.store.EXPECT().CreateHelpPoint(gomock.Any()).DoAndReturn(func(hp *schema.HelpPoint) error {
		s.Equal("Taipei", hp.Address)
		s.Equal(schema.PriorityMedium, hp.Priority)
		s.Equal(schema.HelpPointActive, hp.Status)
		s.Equal(s.ownerID, hp.OwnerID)
		s.True(hp.IsActive)
		hp.ID = id
		return nil
	}).Times(1)
	s.objects.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, key, contentType string, _ io.Reader) (string, error) {
		s.True(strings.HasPrefix(key, "helpPoints/"+id.Hex()+"/images/"))
		if contentType == "image/png" {
			return "https://cdn/new.png", nil
		}
		s.Equal("image/jpeg", contentType)
		return "https://cdn/new.jpg", nil
	}).Times(2)
	s.store.EXPECT().SetHelpPointImages(id, []string{"https://cdn/new.png", "https://cdn/new.jpg"}).Return(nil).Times(1)
	s.store.EXPECT().IncrementHelpPointsCount(s.categoryID).Return(nil).Times(1)
	s.achievements.EXPECT().CheckAchievementsByType(s.ownerID, schema.AchievementMarkersCreated).Return(&achievement.CheckResult{
		Completed: []schema.Achievement{completed},
		New:       []schema.Achievement{},
	}, nil).Times(1)
	s.store.EXPECT().GetHelpPoint(id).Return(&schema.HelpPoint{ID: id, Title: "Groceries"}, nil).Times(1)

	result, err := s.service.Create(s.ownerID, d)
	s.NoError(err)
	s.True(result.IsSuccess)
	s.Equal(id, result.HelpPoint.ID)
	s.Equal([]schema.Achievement{completed}, result.CompletedAchievements)
	s.Empty(result.NewAchievements)
}

func (s *HelpPointTestSuite) TestCreateRejectsImages() {
	cases := []struct {
		image string
		err   error
	}{
		{"data:text/html;base64,PHNjcmlwdD5hbGVydCgxKTwvc2NyaXB0Pg==", objectstore.ErrUnsupportedType},
		{"data:image/png;base64,PHNjcmlwdD5hbGVydCgxKTwvc2NyaXB0Pg==", objectstore.ErrUnsupportedType},
		{"data:image/png;base64," + base64.StdEncoding.EncodeToString(make([]byte, consts.MaxHelpPointImageSize+1)), objectstore.ErrTooLarge},
		{"https://bucket.s3.amazonaws.com/helpPoints/" + primitive.NewObjectID().Hex() + "/images/x.png", objectstore.ErrForeignObject},
	}

	for _, c := range cases {
		d := s.draft()
		d.Images = []string{pngDataURI, c.image}

		s.store.EXPECT().GetCategory(s.categoryID).Return(&schema.Category{ID: s.categoryID}, nil).Times(1)
		s.store.EXPECT().CreateHelpPoint(gomock.Any()).Times(0)
		s.objects.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := s.service.Create(s.ownerID, d)
		s.ErrorIs(err, c.err)
	}
}

func (s *HelpPointTestSuite) TestCreateUnknownCategory() {
	s.store.EXPECT().GetCategory(s.categoryID).Return(nil, store.ErrCategoryNotFound).Times(1)
	s.store.EXPECT().CreateHelpPoint(gomock.Any()).Times(0)

	_, err := s.service.Create(s.ownerID, s.draft())
	s.ErrorIs(err, helppoint.ErrCategoryNotFound)
}

func (s *HelpPointTestSuite) TestCreateInvalidStatus() {
	d := s.draft()
	d.Status = schema.HelpPointStatus("sleeping")

	s.store.EXPECT().GetCategory(s.categoryID).Return(&schema.Category{}, nil).Times(1)

	_, err := s.service.Create(s.ownerID, d)
	s.ErrorIs(err, helppoint.ErrInvalidStatus)
}

// TestCreatePersistenceFailure reports a failed result instead of an error
func (s *HelpPointTestSuite) TestCreatePersistenceFailure() {
	d := s.draft()
	d.Address = "somewhere"

	s.store.EXPECT().GetCategory(s.categoryID).Return(&schema.Category{}, nil).Times(1)
	s.store.EXPECT().CreateHelpPoint(gomock.Any()).Return(errors.New("db down")).Times(1)
	s.store.EXPECT().IncrementHelpPointsCount(gomock.Any()).Times(0)

	result, err := s.service.Create(s.ownerID, d)
	s.NoError(err)
	s.False(result.IsSuccess)
	s.NotEmpty(result.Message)
}

// TestCreatePendingSkipsCount only counts active help points
func (s *HelpPointTestSuite) TestCreatePendingSkipsCount() {
	d := s.draft()
	d.Address = "somewhere"
	d.Status = schema.HelpPointPending
	id := primitive.NewObjectID()

	s.store.EXPECT().GetCategory(s.categoryID).Return(&schema.Category{}, nil).Times(1)
	s.store.EXPECT().CreateHelpPoint(gomock.Any()).DoAndReturn(func(hp *schema.HelpPoint) error {
		hp.ID = id
		return nil
	}).Times(1)
	s.store.EXPECT().IncrementHelpPointsCount(gomock.Any()).Times(0)
	s.achievements.EXPECT().CheckAchievementsByType(s.ownerID, schema.AchievementMarkersCreated).Return(nil, errors.New("boom")).Times(1)
	s.store.EXPECT().GetHelpPoint(id).Return(nil, store.ErrHelpPointNotFound).Times(1)

	result, err := s.service.Create(s.ownerID, d)
	s.NoError(err)
	s.True(result.IsSuccess)
	s.Equal(id, result.HelpPoint.ID)
	s.Empty(result.CompletedAchievements)
}

func (s *HelpPointTestSuite) TestFindAllNearUsesDefaultRadius() {
	lat, lng := 25.0, 121.0

	s.store.EXPECT().ListHelpPoints(gomock.Any()).DoAndReturn(func(f schema.HelpPointFilter) ([]schema.HelpPoint, error) {
		s.NotNil(f.Near)
		s.Greater(f.Near.Radius, 0)
		s.Equal(lat, f.Near.Location.Latitude)
		s.Equal(lng, f.Near.Location.Longitude)
		return []schema.HelpPoint{{}}, nil
	}).Times(1)

	list, err := s.service.FindAll(helppoint.Query{Latitude: &lat, Longitude: &lng})
	s.NoError(err)
	s.Len(list, 1)
}

func (s *HelpPointTestSuite) TestFindAllWithoutCoordinates() {
	s.store.EXPECT().ListHelpPoints(gomock.Any()).DoAndReturn(func(f schema.HelpPointFilter) ([]schema.HelpPoint, error) {
		s.Nil(f.Near)
		return nil, nil
	}).Times(1)

	_, err := s.service.FindAll(helppoint.Query{})
	s.NoError(err)
}

func (s *HelpPointTestSuite) TestApplyForHelp() {
	id := primitive.NewObjectID()
	userID := primitive.NewObjectID()
	hp := &schema.HelpPoint{ID: id, OwnerID: s.ownerID, Title: "Groceries"}

	s.store.EXPECT().GetHelpPoint(id).Return(hp, nil).Times(2)
	s.store.EXPECT().AddParticipant(id, userID).Return(nil).Times(1)
	s.store.EXPECT().GetUser(userID).Return(&schema.User{Name: "Amy"}, nil).Times(1)
	s.notifier.EXPECT().AddNotification(gomock.Any()).DoAndReturn(func(d notification.Draft) (*schema.Notification, error) {
		s.Equal([]primitive.ObjectID{s.ownerID}, d.UserIDs)
		s.Equal(schema.NotificationHelpPointApplication, d.Type)
		s.Equal(id.Hex(), d.Action.ID)
		return &schema.Notification{}, nil
	}).Times(1)

	_, err := s.service.ApplyForHelp(id, userID)
	s.NoError(err)
}

func (s *HelpPointTestSuite) TestApplyOwnHelpPoint() {
	id := primitive.NewObjectID()

	s.store.EXPECT().GetHelpPoint(id).Return(&schema.HelpPoint{ID: id, OwnerID: s.ownerID}, nil).Times(1)
	s.store.EXPECT().AddParticipant(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.ApplyForHelp(id, s.ownerID)
	s.ErrorIs(err, helppoint.ErrOwnerCannotApply)
}

func (s *HelpPointTestSuite) TestApplyTwice() {
	id := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	s.store.EXPECT().GetHelpPoint(id).Return(&schema.HelpPoint{ID: id, OwnerID: s.ownerID}, nil).Times(1)
	s.store.EXPECT().AddParticipant(id, userID).Return(store.ErrAlreadyParticipant).Times(1)

	_, err := s.service.ApplyForHelp(id, userID)
	s.ErrorIs(err, helppoint.ErrAlreadyParticipant)
}

func (s *HelpPointTestSuite) TestChangeStatusComplete() {
	id := primitive.NewObjectID()
	helper := primitive.NewObjectID()
	pending := primitive.NewObjectID()
	hp := &schema.HelpPoint{
		ID:         id,
		OwnerID:    s.ownerID,
		CategoryID: s.categoryID,
		Status:     schema.HelpPointActive,
		Participants: []schema.Participant{
			{UserID: helper, Status: schema.ParticipantAccepted},
			{UserID: pending, Status: schema.ParticipantPending},
		},
	}

	s.store.EXPECT().GetHelpPoint(id).Return(hp, nil).Times(2)
	s.store.EXPECT().UpdateHelpPointStatus(id, schema.HelpPointCompleted, s.categoryID, -1).Return(nil).Times(1)
	s.store.EXPECT().GetUser(helper).Return(&schema.User{Name: "Bob"}, nil).Times(1)
	s.notifier.EXPECT().AddNotification(gomock.Any()).Return(&schema.Notification{}, nil).Times(1)
	s.achievements.EXPECT().CheckAchievementsByType(s.ownerID, schema.AchievementMarkersCompleted).Return(&achievement.CheckResult{}, nil).Times(1)
	s.achievements.EXPECT().CheckAchievementsByType(helper, schema.AchievementHelpProvided).Return(&achievement.CheckResult{}, nil).Times(1)

	_, err := s.service.ChangeStatus(id, schema.HelpPointCompleted, helper)
	s.NoError(err)
}

func (s *HelpPointTestSuite) TestChangeStatusSameIsNoop() {
	id := primitive.NewObjectID()
	hp := &schema.HelpPoint{ID: id, OwnerID: s.ownerID, Status: schema.HelpPointActive}

	s.store.EXPECT().GetHelpPoint(id).Return(hp, nil).Times(1)
	s.store.EXPECT().UpdateHelpPointStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	got, err := s.service.ChangeStatus(id, schema.HelpPointActive, s.ownerID)
	s.NoError(err)
	s.Equal(hp, got)
}

func (s *HelpPointTestSuite) TestChangeStatusByStranger() {
	id := primitive.NewObjectID()

	s.store.EXPECT().GetHelpPoint(id).Return(&schema.HelpPoint{ID: id, OwnerID: s.ownerID}, nil).Times(1)

	_, err := s.service.ChangeStatus(id, schema.HelpPointCompleted, primitive.NewObjectID())
	s.ErrorIs(err, helppoint.ErrUnauthorized)
}

func (s *HelpPointTestSuite) TestChangeStatusInvalid() {
	_, err := s.service.ChangeStatus(primitive.NewObjectID(), schema.HelpPointStatus("lost"), s.ownerID)
	s.ErrorIs(err, helppoint.ErrInvalidStatus)
}

func (s *HelpPointTestSuite) TestUpdateParticipantStatus() {
	id := primitive.NewObjectID()
	participant := primitive.NewObjectID()
	hp := &schema.HelpPoint{ID: id, OwnerID: s.ownerID, Title: "Groceries"}

	s.store.EXPECT().GetHelpPoint(id).Return(hp, nil).Times(2)
	s.store.EXPECT().SetParticipantStatus(id, participant, schema.ParticipantAccepted).Return(nil).Times(1)
	s.store.EXPECT().GetUser(participant).Return(&schema.User{Language: "en"}, nil).Times(1)
	s.notifier.EXPECT().AddNotification(gomock.Any()).DoAndReturn(func(d notification.Draft) (*schema.Notification, error) {
		s.Equal([]primitive.ObjectID{participant}, d.UserIDs)
		s.Equal(schema.NotificationHelpPointStatusUpdate, d.Type)
		return nil, errors.New("ignored")
	}).Times(1)

	_, err := s.service.UpdateParticipantStatus(id, s.ownerID, participant, schema.ParticipantAccepted)
	s.NoError(err)
}

func (s *HelpPointTestSuite) TestUpdateParticipantStatusRejectsPending() {
	_, err := s.service.UpdateParticipantStatus(primitive.NewObjectID(), s.ownerID, primitive.NewObjectID(), schema.ParticipantPending)
	s.ErrorIs(err, helppoint.ErrInvalidParticipantStatus)
}

func (s *HelpPointTestSuite) TestUpdateMovesCategoryCount() {
	id := primitive.NewObjectID()
	newCategory := primitive.NewObjectID()
	hp := &schema.HelpPoint{ID: id, OwnerID: s.ownerID, CategoryID: s.categoryID, Status: schema.HelpPointActive}
	patch := schema.HelpPointPatch{CategoryID: &newCategory}

	s.store.EXPECT().GetHelpPoint(id).Return(hp, nil).Times(2)
	s.store.EXPECT().GetCategory(newCategory).Return(&schema.Category{}, nil).Times(1)
	s.store.EXPECT().UpdateHelpPoint(id, patch).Return(nil).Times(1)
	s.store.EXPECT().DecrementHelpPointsCount(s.categoryID).Return(nil).Times(1)
	s.store.EXPECT().IncrementHelpPointsCount(newCategory).Return(nil).Times(1)

	_, err := s.service.Update(id, s.ownerID, patch, nil)
	s.NoError(err)
}

func (s *HelpPointTestSuite) TestUpdateReplacesImages() {
	id := primitive.NewObjectID()
	hp := &schema.HelpPoint{
		ID:      id,
		OwnerID: s.ownerID,
		Images:  []string{"https://cdn/a.png", "https://cdn/b.png"},
	}

	s.store.EXPECT().GetHelpPoint(id).Return(hp, nil).Times(2)
	s.store.EXPECT().UpdateHelpPoint(id, gomock.Any()).Return(nil).Times(1)
	s.objects.EXPECT().DeleteURL(gomock.Any(), "helpPoints/"+id.Hex()+"/images", "https://cdn/b.png").Return(nil).Times(1)
	s.store.EXPECT().SetHelpPointImages(id, []string{"https://cdn/a.png"}).Return(nil).Times(1)

	_, err := s.service.Update(id, s.ownerID, schema.HelpPointPatch{}, []string{"https://cdn/a.png"})
	s.NoError(err)
}

// TestUpdateRejectsForeignImage keeps only urls of the help point's own images
func (s *HelpPointTestSuite) TestUpdateRejectsForeignImage() {
	id := primitive.NewObjectID()
	hp := &schema.HelpPoint{
		ID:      id,
		OwnerID: s.ownerID,
		Images:  []string{"https://cdn/a.png"},
	}
	foreign := "https://cdn/helpPoints/" + primitive.NewObjectID().Hex() + "/images/x.png"

	s.store.EXPECT().GetHelpPoint(id).Return(hp, nil).Times(1)
	s.store.EXPECT().UpdateHelpPoint(gomock.Any(), gomock.Any()).Times(0)
	s.objects.EXPECT().DeleteURL(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.store.EXPECT().SetHelpPointImages(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.Update(id, s.ownerID, schema.HelpPointPatch{}, []string{"https://cdn/a.png", foreign})
	s.ErrorIs(err, objectstore.ErrForeignObject)
}

// TestUpdateSkipsImagesStoredElsewhere drops a stored url outside the help
// point's files without deleting anything
func (s *HelpPointTestSuite) TestUpdateSkipsImagesStoredElsewhere() {
	id := primitive.NewObjectID()
	hp := &schema.HelpPoint{
		ID:      id,
		OwnerID: s.ownerID,
		Images:  []string{"https://cdn/a.png", "https://elsewhere/b.png"},
	}

	s.store.EXPECT().GetHelpPoint(id).Return(hp, nil).Times(2)
	s.store.EXPECT().UpdateHelpPoint(id, gomock.Any()).Return(nil).Times(1)
	s.objects.EXPECT().DeleteURL(gomock.Any(), gomock.Any(), "https://elsewhere/b.png").Return(objectstore.ErrForeignObject).Times(1)
	s.store.EXPECT().SetHelpPointImages(id, []string{"https://cdn/a.png"}).Return(nil).Times(1)

	_, err := s.service.Update(id, s.ownerID, schema.HelpPointPatch{}, []string{"https://cdn/a.png"})
	s.NoError(err)
}

func (s *HelpPointTestSuite) TestUpdateByStranger() {
	id := primitive.NewObjectID()

	s.store.EXPECT().GetHelpPoint(id).Return(&schema.HelpPoint{ID: id, OwnerID: s.ownerID}, nil).Times(1)
	s.store.EXPECT().UpdateHelpPoint(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.Update(id, primitive.NewObjectID(), schema.HelpPointPatch{}, nil)
	s.ErrorIs(err, helppoint.ErrUnauthorized)
}

func (s *HelpPointTestSuite) TestRemove() {
	id := primitive.NewObjectID()
	hp := &schema.HelpPoint{ID: id, OwnerID: s.ownerID, CategoryID: s.categoryID, Status: schema.HelpPointActive}

	s.store.EXPECT().GetHelpPoint(id).Return(hp, nil).Times(1)
	s.objects.EXPECT().DeletePrefix(gomock.Any(), gomock.Any()).Return(errors.New("s3 down")).Times(1)
	s.store.EXPECT().DeleteHelpPoint(id).Return(nil).Times(1)
	s.store.EXPECT().DecrementHelpPointsCount(s.categoryID).Return(nil).Times(1)

	s.NoError(s.service.Remove(id, s.ownerID))
}

func (s *HelpPointTestSuite) TestUserActivity() {
	s.store.EXPECT().ListHelpPoints(schema.HelpPointFilter{OwnerID: &s.ownerID}).Return([]schema.HelpPoint{
		{Type: schema.HelpPointRequest},
		{Type: schema.HelpPointOffer},
		{Type: schema.HelpPointRequest},
	}, nil).Times(1)
	s.store.EXPECT().ListHelpPoints(schema.HelpPointFilter{SavedBy: &s.ownerID}).Return([]schema.HelpPoint{{}}, nil).Times(1)

	activity, err := s.service.GetUserActivity(s.ownerID)
	s.NoError(err)
	s.Len(activity.Requests, 2)
	s.Len(activity.Offers, 1)
	s.Len(activity.Saved, 1)
}

func TestHelpPointTestSuite(t *testing.T) {
	suite.Run(t, new(HelpPointTestSuite))
}
