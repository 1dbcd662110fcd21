package store

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/frilo-app/frilo-api/schema"
)

var (
	ErrHelpPointNotFound  = errors.New("help point not found")
	ErrAlreadyParticipant = errors.New("user is already a participant")
	ErrNotParticipant     = errors.New("user is not a participant")
)

type HelpPoints interface {
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
	CountHelpPointsCompleted(userID primitive.ObjectID) (int, error)
	CountHelpProvided(userID primitive.ObjectID) (int, error)
}

// helpPointLookupStages joins the category and owner of each help point
func helpPointLookupStages() []bson.M {
	return []bson.M{
		{"$lookup": bson.M{
			"from":         schema.CategoryCollection,
			"localField":   "categoryId",
			"foreignField": "_id",
			"as":           "category",
		}},
		{"$unwind": bson.M{"path": "$category", "preserveNullAndEmptyArrays": true}},
		{"$lookup": bson.M{
			"from":         schema.UserCollection,
			"localField":   "ownerId",
			"foreignField": "_id",
			"as":           "owner",
		}},
		{"$unwind": bson.M{"path": "$owner", "preserveNullAndEmptyArrays": true}},
		{"$project": bson.M{"owner.password": 0}},
	}
}

// CreateHelpPoint inserts a help point and sets its generated id
func (m *mongoDB) CreateHelpPoint(hp *schema.HelpPoint) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	hp.ID = primitive.NewObjectID()
	hp.CreatedAt = now
	hp.UpdatedAt = now
	if hp.Participants == nil {
		hp.Participants = []schema.Participant{}
	}
	if hp.Images == nil {
		hp.Images = []string{}
	}
	if hp.SavedBy == nil {
		hp.SavedBy = []primitive.ObjectID{}
	}

	if _, err := m.collection(schema.HelpPointCollection).InsertOne(ctx, hp); err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("fail to insert help point")
		return err
	}
	return nil
}

// GetHelpPoint returns a help point with its category and owner joined
func (m *mongoDB) GetHelpPoint(id primitive.ObjectID) (*schema.HelpPoint, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	pipeline := append([]bson.M{{"$match": bson.M{"_id": id}}}, helpPointLookupStages()...)
	cursor, err := m.collection(schema.HelpPointCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return nil, err
		}
		return nil, ErrHelpPointNotFound
	}

	var hp schema.HelpPoint
	if err := cursor.Decode(&hp); err != nil {
		return nil, err
	}
	return &hp, nil
}

func helpPointMatch(filter schema.HelpPointFilter) bson.M {
	match := bson.M{}
	if filter.CategoryID != nil {
		match["categoryId"] = *filter.CategoryID
	}
	if filter.OwnerID != nil {
		match["ownerId"] = *filter.OwnerID
	}
	if filter.Type != nil {
		match["type"] = *filter.Type
	}
	if filter.SavedBy != nil {
		match["savedBy"] = *filter.SavedBy
	}
	return match
}

// ListHelpPoints returns help points matching the filter. With a near filter
// results come back in proximity order, otherwise newest first.
func (m *mongoDB) ListHelpPoints(filter schema.HelpPointFilter) ([]schema.HelpPoint, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	match := helpPointMatch(filter)

	var pipeline []bson.M
	if filter.Near != nil {
		pipeline = append(pipeline, bson.M{"$geoNear": bson.M{
			"near": bson.M{
				"type":        "Point",
				"coordinates": bson.A{filter.Near.Longitude, filter.Near.Latitude},
			},
			"distanceField": "distance",
			"maxDistance":   filter.Near.Radius,
			"query":         match,
			"spherical":     true,
		}})
	} else {
		pipeline = append(pipeline,
			bson.M{"$match": match},
			bson.M{"$sort": bson.M{"createdAt": -1}},
		)
	}
	pipeline = append(pipeline, helpPointLookupStages()...)

	cursor, err := m.collection(schema.HelpPointCollection).Aggregate(ctx, pipeline)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("fail to query help points")
		return nil, err
	}

	points := make([]schema.HelpPoint, 0)
	if err := cursor.All(ctx, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// UpdateHelpPoint applies the non-nil fields of a patch
func (m *mongoDB) UpdateHelpPoint(id primitive.ObjectID, patch schema.HelpPointPatch) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Type != nil {
		set["type"] = *patch.Type
	}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Address != nil {
		set["address"] = *patch.Address
	}
	if patch.LocationDescription != nil {
		set["locationDescription"] = *patch.LocationDescription
	}
	if patch.Location != nil {
		set["location"] = schema.NewGeoPoint(patch.Location.Longitude, patch.Location.Latitude)
	}
	if patch.CategoryID != nil {
		set["categoryId"] = *patch.CategoryID
	}
	if patch.Priority != nil {
		set["priority"] = *patch.Priority
	}
	if patch.ContactPhone != nil {
		set["contactPhone"] = *patch.ContactPhone
	}
	if patch.IsActive != nil {
		set["isActive"] = *patch.IsActive
	}

	return m.updateHelpPoint(ctx, id, bson.M{"$set": set})
}

func (m *mongoDB) updateHelpPoint(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	result, err := m.collection(schema.HelpPointCollection).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrHelpPointNotFound
	}
	return nil
}

func (m *mongoDB) SetHelpPointImages(id primitive.ObjectID, images []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if images == nil {
		images = []string{}
	}
	return m.updateHelpPoint(ctx, id, bson.M{"$set": bson.M{
		"images":    images,
		"updatedAt": time.Now().UTC(),
	}})
}

func (m *mongoDB) DeleteHelpPoint(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.HelpPointCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrHelpPointNotFound
	}
	return nil
}

// UpdateHelpPointStatus writes the new status and moves the category counter
// by delta. Both writes share one transaction when transactions are enabled;
// otherwise a counter failure is logged and the status write stands.
func (m *mongoDB) UpdateHelpPointStatus(id primitive.ObjectID, status schema.HelpPointStatus, categoryID primitive.ObjectID, delta int) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	return m.withTransaction(ctx, func(sc context.Context) error {
		if err := m.updateHelpPoint(sc, id, bson.M{"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now().UTC(),
		}}); err != nil {
			return err
		}

		if delta == 0 {
			return nil
		}

		err := m.moveHelpPointsCount(sc, categoryID, delta)
		if err != nil && !m.transactional {
			log.WithField("prefix", mongoLogPrefix).WithError(err).
				WithField("category_id", categoryID.Hex()).Warn("fail to update category count")
			return nil
		}
		return err
	})
}

// AddParticipant appends a pending participant. A user already in the list
// is rejected by the update filter.
func (m *mongoDB) AddParticipant(id primitive.ObjectID, userID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.collection(schema.HelpPointCollection)
	result, err := c.UpdateOne(ctx, bson.M{
		"_id":                 id,
		"participants.userId": bson.M{"$ne": userID},
	}, bson.M{
		"$push": bson.M{"participants": schema.Participant{
			UserID:   userID,
			Status:   schema.ParticipantPending,
			JoinedAt: time.Now().UTC(),
		}},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		n, err := c.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrHelpPointNotFound
		}
		return ErrAlreadyParticipant
	}
	return nil
}

func (m *mongoDB) RemoveParticipant(id primitive.ObjectID, userID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.collection(schema.HelpPointCollection)
	result, err := c.UpdateOne(ctx, bson.M{
		"_id":                 id,
		"participants.userId": userID,
	}, bson.M{
		"$pull": bson.M{"participants": bson.M{"userId": userID}},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		n, err := c.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrHelpPointNotFound
		}
		return ErrNotParticipant
	}
	return nil
}

func (m *mongoDB) SetParticipantStatus(id primitive.ObjectID, userID primitive.ObjectID, status schema.ParticipantStatus) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.HelpPointCollection).UpdateOne(ctx, bson.M{
		"_id":                 id,
		"participants.userId": userID,
	}, bson.M{
		"$set": bson.M{
			"participants.$.status": status,
			"updatedAt":             time.Now().UTC(),
		},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotParticipant
	}
	return nil
}

// ToggleSaved adds the user to savedBy, or removes them when already there.
// It returns whether the help point is saved afterwards.
func (m *mongoDB) ToggleSaved(id primitive.ObjectID, userID primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.collection(schema.HelpPointCollection)
	result, err := c.UpdateOne(ctx,
		bson.M{"_id": id, "savedBy": userID},
		bson.M{"$pull": bson.M{"savedBy": userID}},
	)
	if err != nil {
		return false, err
	}
	if result.ModifiedCount > 0 {
		return false, nil
	}

	result, err = c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$addToSet": bson.M{"savedBy": userID}},
	)
	if err != nil {
		return false, err
	}
	if result.MatchedCount == 0 {
		return false, ErrHelpPointNotFound
	}
	return true, nil
}

func (m *mongoDB) IncrementVisitCount(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	return m.updateHelpPoint(ctx, id, bson.M{"$inc": bson.M{"visitCount": 1}})
}

func (m *mongoDB) countHelpPoints(query bson.M) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	n, err := m.collection(schema.HelpPointCollection).CountDocuments(ctx, query)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// CountHelpPointsCreated counts the help points owned by a user
func (m *mongoDB) CountHelpPointsCreated(userID primitive.ObjectID) (int, error) {
	return m.countHelpPoints(bson.M{"ownerId": userID})
}

// CountHelpPointsCompleted counts a user's own help points that reached completed
func (m *mongoDB) CountHelpPointsCompleted(userID primitive.ObjectID) (int, error) {
	return m.countHelpPoints(bson.M{"ownerId": userID, "status": schema.HelpPointCompleted})
}

// CountHelpProvided counts completed help points where the user was an
// accepted participant
func (m *mongoDB) CountHelpProvided(userID primitive.ObjectID) (int, error) {
	return m.countHelpPoints(bson.M{
		"status": schema.HelpPointCompleted,
		"participants": bson.M{"$elemMatch": bson.M{
			"userId": userID,
			"status": schema.ParticipantAccepted,
		}},
	})
}

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
