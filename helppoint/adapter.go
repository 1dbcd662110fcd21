package helppoint

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/frilo-app/frilo-api/schema"
)

// AppLocation is the flattened location shape the mobile app expects
type AppLocation struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
}

type CategorySummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Type  string `json:"type"`
}

type OwnerSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

type AppParticipant struct {
	UserID   string                   `json:"userId"`
	Status   schema.ParticipantStatus `json:"status"`
	JoinedAt time.Time                `json:"joinedAt"`
}

// AppHelpPoint is the view model returned by the api
type AppHelpPoint struct {
	ID           string                   `json:"id"`
	Type         schema.HelpPointType     `json:"type"`
	Title        string                   `json:"title"`
	Description  string                   `json:"description"`
	Location     AppLocation              `json:"location"`
	CategoryID   string                   `json:"categoryId"`
	Category     *CategorySummary         `json:"category,omitempty"`
	OwnerID      string                   `json:"ownerId"`
	Owner        *OwnerSummary            `json:"owner,omitempty"`
	Priority     schema.HelpPointPriority `json:"priority"`
	Status       schema.HelpPointStatus   `json:"status"`
	Participants []AppParticipant         `json:"participants"`
	Images       []string                 `json:"images"`
	Rating       float64                  `json:"rating"`
	ReviewCount  int                      `json:"reviewCount"`
	VisitCount   int                      `json:"visitCount"`
	IsFavorited  bool                     `json:"isFavorited"`
	IsSaved      bool                     `json:"isSaved"`
	IsActive     bool                     `json:"isActive"`
	Verified     bool                     `json:"verified"`
	ContactPhone string                   `json:"contactPhone,omitempty"`
	Distance     *float64                 `json:"distance,omitempty"`
	CreatedAt    time.Time                `json:"createdAt"`
	UpdatedAt    time.Time                `json:"updatedAt"`
}

// ToAppHelpPoint shapes a help point for a viewer
func ToAppHelpPoint(hp schema.HelpPoint, viewerID primitive.ObjectID) AppHelpPoint {
	app := AppHelpPoint{
		ID:          hp.ID.Hex(),
		Type:        hp.Type,
		Title:       hp.Title,
		Description: hp.Description,
		Location: AppLocation{
			Latitude:    hp.Location.Latitude(),
			Longitude:   hp.Location.Longitude(),
			Address:     hp.Address,
			Description: hp.LocationDescription,
		},
		CategoryID:   hp.CategoryID.Hex(),
		OwnerID:      hp.OwnerID.Hex(),
		Priority:     hp.Priority,
		Status:       hp.Status,
		Participants: make([]AppParticipant, 0, len(hp.Participants)),
		Images:       hp.Images,
		Rating:       hp.Rating,
		ReviewCount:  hp.ReviewCount,
		VisitCount:   hp.VisitCount,
		IsFavorited:  hp.IsFavorited,
		IsActive:     hp.IsActive,
		Verified:     hp.Verified,
		ContactPhone: hp.ContactPhone,
		Distance:     hp.Distance,
		CreatedAt:    hp.CreatedAt,
		UpdatedAt:    hp.UpdatedAt,
	}

	if app.Images == nil {
		app.Images = []string{}
	}

	for _, p := range hp.Participants {
		app.Participants = append(app.Participants, AppParticipant{
			UserID:   p.UserID.Hex(),
			Status:   p.Status,
			JoinedAt: p.JoinedAt,
		})
	}

	for _, id := range hp.SavedBy {
		if id == viewerID {
			app.IsSaved = true
			break
		}
	}

	if hp.Category != nil {
		app.Category = &CategorySummary{
			ID:    hp.Category.ID.Hex(),
			Name:  hp.Category.Name,
			Icon:  hp.Category.Icon,
			Color: hp.Category.Color,
			Type:  hp.Category.Type,
		}
	}

	if hp.Owner != nil {
		app.Owner = &OwnerSummary{
			ID:        hp.Owner.ID.Hex(),
			Name:      hp.Owner.Name,
			AvatarURL: hp.Owner.AvatarURL,
		}
	}

	return app
}

func ToAppHelpPoints(points []schema.HelpPoint, viewerID primitive.ObjectID) []AppHelpPoint {
	result := make([]AppHelpPoint, 0, len(points))
	for _, hp := range points {
		result = append(result, ToAppHelpPoint(hp, viewerID))
	}
	return result
}
