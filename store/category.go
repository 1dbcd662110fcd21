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
	ErrCategoryNotFound = errors.New("category not found")
)

type Categories interface {
	CreateCategory(c *schema.Category) error
	GetCategory(id primitive.ObjectID) (*schema.Category, error)
	ListCategories() ([]schema.Category, error)
	UpdateCategory(id primitive.ObjectID, update schema.Category) (*schema.Category, error)
	DeleteCategory(id primitive.ObjectID) error
	InitializeCategories() ([]schema.Category, error)

	IncrementHelpPointsCount(id primitive.ObjectID) error
	DecrementHelpPointsCount(id primitive.ObjectID) error
	ReconcileHelpPointsCounts() (int, error)
}

func (m *mongoDB) CreateCategory(category *schema.Category) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	category.ID = primitive.NewObjectID()
	category.CreatedAt = now
	category.UpdatedAt = now

	_, err := m.collection(schema.CategoryCollection).InsertOne(ctx, category)
	return err
}

func (m *mongoDB) GetCategory(id primitive.ObjectID) (*schema.Category, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var category schema.Category
	if err := m.collection(schema.CategoryCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&category); err != nil {
		if isNoDocuments(err) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (m *mongoDB) ListCategories() ([]schema.Category, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.CategoryCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	categories := make([]schema.Category, 0)
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// UpdateCategory overwrites the descriptive fields of a category. The help
// point counter is owned by the counter operations and left untouched.
func (m *mongoDB) UpdateCategory(id primitive.ObjectID, update schema.Category) (*schema.Category, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.CategoryCollection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"name":        update.Name,
			"icon":        update.Icon,
			"color":       update.Color,
			"description": update.Description,
			"type":        update.Type,
			"isActive":    update.IsActive,
			"updatedAt":   time.Now().UTC(),
		},
	})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrCategoryNotFound
	}
	return m.GetCategory(id)
}

func (m *mongoDB) DeleteCategory(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.CategoryCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// InitializeCategories seeds the default categories into an empty collection
// and returns the resulting list
func (m *mongoDB) InitializeCategories() ([]schema.Category, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.collection(schema.CategoryCollection)
	n, err := c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	if n == 0 {
		now := time.Now().UTC()
		docs := make([]interface{}, 0, len(schema.DefaultCategories))
		for _, d := range schema.DefaultCategories {
			d.ID = primitive.NewObjectID()
			d.IsActive = true
			d.CreatedAt = now
			d.UpdatedAt = now
			docs = append(docs, d)
		}
		if _, err := c.InsertMany(ctx, docs); err != nil {
			return nil, err
		}
		log.WithField("prefix", mongoLogPrefix).WithField("count", len(docs)).Info("default categories created")
	}

	return m.ListCategories()
}

func (m *mongoDB) moveHelpPointsCount(ctx context.Context, id primitive.ObjectID, delta int) error {
	filter := bson.M{"_id": id}
	if delta < 0 {
		// never below zero
		filter["helpPointsCount"] = bson.M{"$gte": -delta}
	}

	_, err := m.collection(schema.CategoryCollection).UpdateOne(ctx, filter, bson.M{
		"$inc": bson.M{"helpPointsCount": delta},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	})
	return err
}

func (m *mongoDB) IncrementHelpPointsCount(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	return m.moveHelpPointsCount(ctx, id, 1)
}

func (m *mongoDB) DecrementHelpPointsCount(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	return m.moveHelpPointsCount(ctx, id, -1)
}

// ReconcileHelpPointsCounts recomputes every category counter from the
// active help points and returns how many categories changed
func (m *mongoDB) ReconcileHelpPointsCounts() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 4*defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.HelpPointCollection).Aggregate(ctx, []bson.M{
		{"$match": bson.M{"status": schema.HelpPointActive}},
		{"$group": bson.M{"_id": "$categoryId", "count": bson.M{"$sum": 1}}},
	})
	if err != nil {
		return 0, err
	}

	var groups []struct {
		CategoryID primitive.ObjectID `bson:"_id"`
		Count      int                `bson:"count"`
	}
	if err := cursor.All(ctx, &groups); err != nil {
		return 0, err
	}

	counts := make(map[primitive.ObjectID]int, len(groups))
	for _, g := range groups {
		counts[g.CategoryID] = g.Count
	}

	categories, err := m.ListCategories()
	if err != nil {
		return 0, err
	}

	models := make([]mongo.WriteModel, 0)
	for _, category := range categories {
		actual := counts[category.ID]
		if actual == category.HelpPointsCount {
			continue
		}
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": category.ID}).
			SetUpdate(bson.M{"$set": bson.M{"helpPointsCount": actual, "updatedAt": time.Now().UTC()}}))
	}

	if len(models) == 0 {
		return 0, nil
	}

	result, err := m.collection(schema.CategoryCollection).BulkWrite(ctx, models)
	if err != nil {
		return 0, err
	}
	return int(result.ModifiedCount), nil
}
