package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CategoryCollection = "categories"
)

type Category struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Icon            string             `bson:"icon" json:"icon"`
	Color           string             `bson:"color" json:"color"`
	Description     string             `bson:"description" json:"description"`
	Type            string             `bson:"type" json:"type"`
	HelpPointsCount int                `bson:"helpPointsCount" json:"helpPointsCount"`
	IsActive        bool               `bson:"isActive" json:"isActive"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DefaultCategories is the seed taxonomy
var DefaultCategories = []Category{
	{Name: "Moving Help", Icon: "truck", Color: "#FF5733", Type: "moving", Description: "Help with moving and transportation"},
	{Name: "Elderly Care", Icon: "heart", Color: "#33FF57", Type: "care", Description: "Assistance for elderly people"},
	{Name: "Pet Care", Icon: "paw", Color: "#3357FF", Type: "pets", Description: "Help with pets and animal care"},
	{Name: "Home Repair", Icon: "tools", Color: "#FF33F6", Type: "repair", Description: "Assistance with home repairs and maintenance"},
	{Name: "Education", Icon: "book", Color: "#33FFF6", Type: "education", Description: "Educational support and tutoring"},
}
