package helppoint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/frilo-app/frilo-api/achievement"
	"github.com/frilo-app/frilo-api/consts"
	"github.com/frilo-app/frilo-api/external/geoinfo"
	"github.com/frilo-app/frilo-api/external/objectstore"
	"github.com/frilo-app/frilo-api/notification"
	"github.com/frilo-app/frilo-api/schema"
	"github.com/frilo-app/frilo-api/store"
	"github.com/frilo-app/frilo-api/utils"
)

const (
	logPrefix     = "helppoint"
	uploadTimeout = time.Minute
)

var (
	ErrNotFound                 = store.ErrHelpPointNotFound
	ErrCategoryNotFound         = store.ErrCategoryNotFound
	ErrAlreadyParticipant       = store.ErrAlreadyParticipant
	ErrNotParticipant           = store.ErrNotParticipant
	ErrUnauthorized             = errors.New("only the owner can change this help point")
	ErrOwnerCannotApply         = errors.New("owner cannot apply to their own help point")
	ErrInvalidStatus            = errors.New("invalid help point status")
	ErrInvalidParticipantStatus = errors.New("participant status must be accepted or rejected")
)

// Store is the persistence used by the service
type Store interface {
	GetCategory(id primitive.ObjectID) (*schema.Category, error)
	IncrementHelpPointsCount(id primitive.ObjectID) error
	DecrementHelpPointsCount(id primitive.ObjectID) error

	CreateHelpPoint(hp *schema.HelpPoint) error
	GetHelpPoint(id primitive.ObjectID) (*schema.HelpPoint, error)
	ListHelpPoints(filter schema.HelpPointFilter) ([]schema.HelpPoint, error)
	UpdateHelpPoint(id primitive.ObjectID, patch schema.HelpPointPatch) error
	SetHelpPointImages(id primitive.ObjectID, images []string) error
	DeleteHelpPoint(id primitive.ObjectID) error
	UpdateHelpPointStatus(id primitive.ObjectID, status schema.HelpPointStatus, categoryID primitive.ObjectID, delta int) error
	AddParticipant(id primitive.ObjectID, userID primitive.ObjectID) error
	RemoveParticipant(id primitive.ObjectID, userID primitive.ObjectID) error
	SetParticipantStatus(id primitive.ObjectID, userID primitive.ObjectID, status schema.ParticipantStatus) error
	ToggleSaved(id primitive.ObjectID, userID primitive.ObjectID) (bool, error)
	IncrementVisitCount(id primitive.ObjectID) error
	CountHelpPointsCreated(userID primitive.ObjectID) (int, error)

	GetUser(id primitive.ObjectID) (*schema.User, error)
}

// AchievementChecker re-evaluates achievements after a help point event
type AchievementChecker interface {
	CheckAchievementsByType(userID primitive.ObjectID, t schema.AchievementType) (*achievement.CheckResult, error)
}

// Notifier delivers notifications to users
type Notifier interface {
	AddNotification(draft notification.Draft) (*schema.Notification, error)
}

// Draft is a help point about to be created. Images are data uris or urls.
type Draft struct {
	Type                schema.HelpPointType
	Title               string
	Description         string
	Address             string
	LocationDescription string
	Location            schema.Location
	CategoryID          primitive.ObjectID
	Priority            schema.HelpPointPriority
	Status              schema.HelpPointStatus
	ContactPhone        string
	Images              []string
}

// CreateResult reports the outcome of Create. A persistence failure is
// reported with IsSuccess false instead of an error.
type CreateResult struct {
	IsSuccess             bool
	Message               string
	HelpPoint             *schema.HelpPoint
	CompletedAchievements []schema.Achievement
	NewAchievements       []schema.Achievement
}

// Query narrows FindAll. Without coordinates results are newest first.
type Query struct {
	Latitude   *float64
	Longitude  *float64
	Radius     int
	CategoryID *primitive.ObjectID
	Type       *schema.HelpPointType
}

// Activity groups the help points a user is involved with
type Activity struct {
	Requests []schema.HelpPoint
	Offers   []schema.HelpPoint
	Saved    []schema.HelpPoint
}

type Service struct {
	store        Store
	achievements AchievementChecker
	notifier     Notifier
	objects      objectstore.ObjectStore
	geo          geoinfo.GeoInfo
}

// NewService returns the help point service. geo may be nil, in which case
// addresses are never resolved.
func NewService(store Store, achievements AchievementChecker, notifier Notifier, objects objectstore.ObjectStore, geo geoinfo.GeoInfo) *Service {
	return &Service{
		store:        store,
		achievements: achievements,
		notifier:     notifier,
		objects:      objects,
		geo:          geo,
	}
}

// ImageRule limits the images of a help point
var ImageRule = objectstore.Rule{
	Types:    consts.HelpPointImageTypes,
	MaxBytes: consts.MaxHelpPointImageSize,
}

func storagePrefix(id primitive.ObjectID) string {
	return fmt.Sprintf("%s/%s", consts.HelpPointsEntity, id.Hex())
}

func imagesPrefix(id primitive.ObjectID) string {
	return storagePrefix(id) + "/images"
}

// Create validates the category and images, stores the help point, uploads
// its images and runs the side effects of a new help point. Images must be
// data uris.
func (s *Service) Create(ownerID primitive.ObjectID, draft Draft) (*CreateResult, error) {
	if _, err := s.store.GetCategory(draft.CategoryID); err != nil {
		return nil, err
	}

	images, err := objectstore.NewBatch(ImageRule, draft.Images, nil)
	if err != nil {
		return nil, err
	}

	if draft.Priority == "" {
		draft.Priority = schema.PriorityMedium
	}
	if draft.Status == "" {
		draft.Status = schema.HelpPointActive
	}
	if !draft.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	if draft.Address == "" && s.geo != nil {
		if address, err := s.geo.ReverseGeocode(draft.Location, ""); err == nil {
			draft.Address = address
		} else {
			log.WithField("prefix", logPrefix).WithError(err).Debug("fail to resolve address")
		}
	}

	hp := &schema.HelpPoint{
		Type:                draft.Type,
		Title:               draft.Title,
		Description:         draft.Description,
		Address:             draft.Address,
		LocationDescription: draft.LocationDescription,
		Location:            schema.NewGeoPoint(draft.Location.Longitude, draft.Location.Latitude),
		CategoryID:          draft.CategoryID,
		OwnerID:             ownerID,
		Priority:            draft.Priority,
		Status:              draft.Status,
		ContactPhone:        draft.ContactPhone,
		IsActive:            true,
	}

	if err := s.store.CreateHelpPoint(hp); err != nil {
		log.WithField("prefix", logPrefix).WithError(err).Error("fail to create help point")
		return &CreateResult{
			IsSuccess: false,
			Message:   "failed to create help point",
		}, nil
	}

	if images.Len() > 0 {
		urls, err := s.uploadImages(hp.ID, images)
		if err == nil {
			err = s.store.SetHelpPointImages(hp.ID, urls)
		}
		if err != nil {
			log.WithField("prefix", logPrefix).WithError(err).WithField("help_point_id", hp.ID.Hex()).Error("fail to store help point images")
		}
	}

	if hp.Status == schema.HelpPointActive {
		s.moveCategoryCount(hp.CategoryID, 1)
	}

	result := &CreateResult{
		IsSuccess:             true,
		HelpPoint:             hp,
		CompletedAchievements: []schema.Achievement{},
		NewAchievements:       []schema.Achievement{},
	}

	if check := s.checkAchievements(ownerID, schema.AchievementMarkersCreated); check != nil {
		result.CompletedAchievements = check.Completed
		result.NewAchievements = check.New
	}

	if created, err := s.store.GetHelpPoint(hp.ID); err == nil {
		result.HelpPoint = created
	}

	return result, nil
}

func (s *Service) uploadImages(id primitive.ObjectID, images *objectstore.Batch) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
	defer cancel()

	return images.Upload(ctx, s.objects, imagesPrefix(id))
}

func (s *Service) moveCategoryCount(categoryID primitive.ObjectID, delta int) {
	var err error
	if delta > 0 {
		err = s.store.IncrementHelpPointsCount(categoryID)
	} else {
		err = s.store.DecrementHelpPointsCount(categoryID)
	}
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":      logPrefix,
			"category_id": categoryID.Hex(),
			"delta":       delta,
		}).WithError(err).Warn("fail to update category count")
	}
}

// checkAchievements is best-effort and returns nil on failure
func (s *Service) checkAchievements(userID primitive.ObjectID, t schema.AchievementType) *achievement.CheckResult {
	if s.achievements == nil {
		return nil
	}

	result, err := s.achievements.CheckAchievementsByType(userID, t)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":  logPrefix,
			"user_id": userID.Hex(),
			"type":    t,
		}).WithError(err).Warn("fail to check achievements")
		return nil
	}
	return result
}

func (s *Service) notify(recipient primitive.ObjectID, lang, key string, data map[string]interface{}, t schema.NotificationType, hp *schema.HelpPoint) {
	if s.notifier == nil {
		return
	}

	if _, err := s.notifier.AddNotification(notification.Draft{
		UserIDs: []primitive.ObjectID{recipient},
		Title:   utils.Translate(lang, "notification."+key+".heading", data),
		Message: utils.Translate(lang, "notification."+key+".content", data),
		Type:    t,
		Action: &schema.NotificationAction{
			Type: schema.ActionHelpPoint,
			ID:   hp.ID.Hex(),
		},
	}); err != nil {
		log.WithField("prefix", logPrefix).WithError(err).Warn("fail to send notification")
	}
}

func (s *Service) userName(userID primitive.ObjectID) (string, string) {
	u, err := s.store.GetUser(userID)
	if err != nil {
		return "", ""
	}
	return u.Name, u.Language
}

func ownerLanguage(hp *schema.HelpPoint) string {
	if hp.Owner != nil {
		return hp.Owner.Language
	}
	return ""
}

// FindAll lists help points, by proximity when coordinates are given
func (s *Service) FindAll(q Query) ([]schema.HelpPoint, error) {
	filter := schema.HelpPointFilter{
		CategoryID: q.CategoryID,
		Type:       q.Type,
	}

	if q.Latitude != nil && q.Longitude != nil {
		radius := q.Radius
		if radius <= 0 {
			radius = consts.DefaultRadius
		}
		filter.Near = &schema.NearFilter{
			Location: schema.Location{Latitude: *q.Latitude, Longitude: *q.Longitude},
			Radius:   radius,
		}
	}

	return s.store.ListHelpPoints(filter)
}

func (s *Service) FindOne(id primitive.ObjectID) (*schema.HelpPoint, error) {
	return s.store.GetHelpPoint(id)
}

// RecordVisit counts a detail view of a help point
func (s *Service) RecordVisit(id primitive.ObjectID) {
	if err := s.store.IncrementVisitCount(id); err != nil {
		log.WithField("prefix", logPrefix).WithError(err).Debug("fail to count visit")
	}
}

func (s *Service) getOwned(id, callerID primitive.ObjectID) (*schema.HelpPoint, error) {
	hp, err := s.store.GetHelpPoint(id)
	if err != nil {
		return nil, err
	}
	if hp.OwnerID != callerID {
		return nil, ErrUnauthorized
	}
	return hp, nil
}

// Update applies an owner's changes. A non-nil images list replaces the
// stored images: urls of current images are kept, data uris are uploaded and
// the objects of dropped urls are removed.
func (s *Service) Update(id, callerID primitive.ObjectID, patch schema.HelpPointPatch, images []string) (*schema.HelpPoint, error) {
	hp, err := s.getOwned(id, callerID)
	if err != nil {
		return nil, err
	}

	var batch *objectstore.Batch
	if images != nil {
		if batch, err = objectstore.NewBatch(ImageRule, images, objectstore.OwnedURLs(hp.Images)); err != nil {
			return nil, err
		}
	}

	if patch.CategoryID != nil && *patch.CategoryID != hp.CategoryID {
		if _, err := s.store.GetCategory(*patch.CategoryID); err != nil {
			return nil, err
		}
	}

	if err := s.store.UpdateHelpPoint(id, patch); err != nil {
		return nil, err
	}

	if batch != nil {
		if err := s.replaceImages(hp, images, batch); err != nil {
			log.WithField("prefix", logPrefix).WithError(err).WithField("help_point_id", id.Hex()).Error("fail to replace help point images")
		}
	}

	if patch.CategoryID != nil && *patch.CategoryID != hp.CategoryID && hp.Status == schema.HelpPointActive {
		s.moveCategoryCount(hp.CategoryID, -1)
		s.moveCategoryCount(*patch.CategoryID, 1)
	}

	return s.store.GetHelpPoint(id)
}

func (s *Service) replaceImages(hp *schema.HelpPoint, images []string, batch *objectstore.Batch) error {
	kept := make(map[string]bool)
	for _, image := range images {
		if !objectstore.IsDataURI(image) {
			kept[image] = true
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
	defer cancel()

	if len(kept) == 0 {
		if err := s.objects.DeletePrefix(ctx, imagesPrefix(hp.ID)); err != nil {
			return err
		}
	} else {
		for _, old := range hp.Images {
			if kept[old] {
				continue
			}
			err := s.objects.DeleteURL(ctx, imagesPrefix(hp.ID), old)
			if errors.Is(err, objectstore.ErrForeignObject) {
				log.WithField("prefix", logPrefix).WithField("url", old).Warn("image is not stored under the help point")
				continue
			}
			if err != nil {
				return err
			}
		}
	}

	urls, err := s.uploadImages(hp.ID, batch)
	if err != nil {
		return err
	}
	return s.store.SetHelpPointImages(hp.ID, urls)
}

// AddImage stores one uploaded image of an owner's help point
func (s *Service) AddImage(id, callerID primitive.ObjectID, contentType string, body io.Reader) (*schema.HelpPoint, error) {
	hp, err := s.getOwned(id, callerID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
	defer cancel()

	url, err := s.objects.Upload(ctx, objectstore.NewKey(imagesPrefix(id), contentType), contentType, body)
	if err != nil {
		return nil, err
	}

	if err := s.store.SetHelpPointImages(id, append(hp.Images, url)); err != nil {
		return nil, err
	}
	return s.store.GetHelpPoint(id)
}

// Remove deletes an owner's help point together with its stored files
func (s *Service) Remove(id, callerID primitive.ObjectID) error {
	hp, err := s.getOwned(id, callerID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
	defer cancel()
	if err := s.objects.DeletePrefix(ctx, storagePrefix(id)); err != nil {
		log.WithField("prefix", logPrefix).WithError(err).WithField("help_point_id", id.Hex()).Warn("fail to delete help point files")
	}

	if err := s.store.DeleteHelpPoint(id); err != nil {
		return err
	}

	if hp.Status == schema.HelpPointActive {
		s.moveCategoryCount(hp.CategoryID, -1)
	}
	return nil
}

// ChangeStatus moves a help point to a new status. The owner and accepted
// participants may do so. Setting the current status again changes nothing.
func (s *Service) ChangeStatus(id primitive.ObjectID, status schema.HelpPointStatus, callerID primitive.ObjectID) (*schema.HelpPoint, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	hp, err := s.store.GetHelpPoint(id)
	if err != nil {
		return nil, err
	}

	isOwner := hp.OwnerID == callerID
	p, ok := hp.Participant(callerID)
	if !isOwner && !(ok && p.Status == schema.ParticipantAccepted) {
		return nil, ErrUnauthorized
	}

	if hp.Status == status {
		return hp, nil
	}

	if err := s.store.UpdateHelpPointStatus(id, status, hp.CategoryID, status.CategoryCountDelta(hp.Status)); err != nil {
		return nil, err
	}

	if status == schema.HelpPointCompleted {
		if !isOwner {
			name, _ := s.userName(callerID)
			s.notify(hp.OwnerID, ownerLanguage(hp), "marker_completed", map[string]interface{}{
				"Name":  name,
				"Title": hp.Title,
			}, schema.NotificationHelpPointCompleted, hp)
		}

		s.checkAchievements(hp.OwnerID, schema.AchievementMarkersCompleted)
		for _, participant := range hp.Participants {
			if participant.Status == schema.ParticipantAccepted {
				s.checkAchievements(participant.UserID, schema.AchievementHelpProvided)
			}
		}
	}

	return s.store.GetHelpPoint(id)
}

// ApplyForHelp adds the user as a pending participant and tells the owner
func (s *Service) ApplyForHelp(id, userID primitive.ObjectID) (*schema.HelpPoint, error) {
	hp, err := s.store.GetHelpPoint(id)
	if err != nil {
		return nil, err
	}
	if hp.OwnerID == userID {
		return nil, ErrOwnerCannotApply
	}

	if err := s.store.AddParticipant(id, userID); err != nil {
		return nil, err
	}

	name, _ := s.userName(userID)
	s.notify(hp.OwnerID, ownerLanguage(hp), "marker_application", map[string]interface{}{
		"Name":  name,
		"Title": hp.Title,
	}, schema.NotificationHelpPointApplication, hp)

	return s.store.GetHelpPoint(id)
}

func (s *Service) RemoveFromHelp(id, userID primitive.ObjectID) (*schema.HelpPoint, error) {
	if err := s.store.RemoveParticipant(id, userID); err != nil {
		return nil, err
	}
	return s.store.GetHelpPoint(id)
}

// UpdateParticipantStatus lets the owner accept or reject a participant
func (s *Service) UpdateParticipantStatus(id, callerID, participantID primitive.ObjectID, status schema.ParticipantStatus) (*schema.HelpPoint, error) {
	if status != schema.ParticipantAccepted && status != schema.ParticipantRejected {
		return nil, ErrInvalidParticipantStatus
	}

	hp, err := s.getOwned(id, callerID)
	if err != nil {
		return nil, err
	}

	if err := s.store.SetParticipantStatus(id, participantID, status); err != nil {
		return nil, err
	}

	_, lang := s.userName(participantID)
	s.notify(participantID, lang, "participant_"+strings.ToLower(string(status)), map[string]interface{}{
		"Title": hp.Title,
	}, schema.NotificationHelpPointStatusUpdate, hp)

	return s.store.GetHelpPoint(id)
}

func (s *Service) GetUserHelpPoints(ownerID primitive.ObjectID) ([]schema.HelpPoint, error) {
	return s.store.ListHelpPoints(schema.HelpPointFilter{OwnerID: &ownerID})
}

func (s *Service) GetHelpPointsCount(ownerID primitive.ObjectID) (int, error) {
	return s.store.CountHelpPointsCreated(ownerID)
}

// ToggleSaved bookmarks a help point for a user, or removes the bookmark
func (s *Service) ToggleSaved(id, userID primitive.ObjectID) (bool, error) {
	return s.store.ToggleSaved(id, userID)
}

// GetUserActivity returns a user's requests and offers, and what they saved
func (s *Service) GetUserActivity(userID primitive.ObjectID) (*Activity, error) {
	own, err := s.store.ListHelpPoints(schema.HelpPointFilter{OwnerID: &userID})
	if err != nil {
		return nil, err
	}

	saved, err := s.store.ListHelpPoints(schema.HelpPointFilter{SavedBy: &userID})
	if err != nil {
		return nil, err
	}

	activity := &Activity{
		Requests: []schema.HelpPoint{},
		Offers:   []schema.HelpPoint{},
		Saved:    saved,
	}
	for _, hp := range own {
		if hp.Type == schema.HelpPointOffer {
			activity.Offers = append(activity.Offers, hp)
		} else {
			activity.Requests = append(activity.Requests, hp)
		}
	}
	return activity, nil
}
