package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	HelpPointCollection = "help_points"
)

type HelpPointType string

const (
	HelpPointRequest HelpPointType = "request"
	HelpPointOffer   HelpPointType = "offer"
)

func (t HelpPointType) Valid() bool {
	return t == HelpPointRequest || t == HelpPointOffer
}

type HelpPointStatus string

const (
	HelpPointActive             HelpPointStatus = "active"
	HelpPointPending            HelpPointStatus = "pending"
	HelpPointWaitingForApproval HelpPointStatus = "waiting_for_approval"
	HelpPointInProgress         HelpPointStatus = "in_progress"
	HelpPointCompleted          HelpPointStatus = "completed"
	HelpPointCancelled          HelpPointStatus = "cancelled"
)

func (s HelpPointStatus) Valid() bool {
	switch s {
	case HelpPointActive, HelpPointPending, HelpPointWaitingForApproval,
		HelpPointInProgress, HelpPointCompleted, HelpPointCancelled:
		return true
	}
	return false
}

// CategoryCountDelta returns how a transition from `from` to `s` moves the
// category's active help point counter.
func (s HelpPointStatus) CategoryCountDelta(from HelpPointStatus) int {
	if s == from {
		return 0
	}
	switch s {
	case HelpPointActive:
		return 1
	case HelpPointCancelled, HelpPointCompleted, HelpPointPending:
		return -1
	}
	return 0
}

type HelpPointPriority string

const (
	PriorityLow    HelpPointPriority = "low"
	PriorityMedium HelpPointPriority = "medium"
	PriorityHigh   HelpPointPriority = "high"
)

func (p HelpPointPriority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

type ParticipantStatus string

const (
	ParticipantPending  ParticipantStatus = "pending"
	ParticipantAccepted ParticipantStatus = "accepted"
	ParticipantRejected ParticipantStatus = "rejected"
)

func (s ParticipantStatus) Valid() bool {
	return s == ParticipantPending || s == ParticipantAccepted || s == ParticipantRejected
}

type Participant struct {
	UserID   primitive.ObjectID `bson:"userId" json:"userId"`
	Status   ParticipantStatus  `bson:"status" json:"status"`
	JoinedAt time.Time          `bson:"joinedAt" json:"joinedAt"`
}

// HelpPoint is a request for, or an offer of, assistance at a location
type HelpPoint struct {
	ID                  primitive.ObjectID   `bson:"_id,omitempty"`
	Type                HelpPointType        `bson:"type"`
	Title               string               `bson:"title"`
	Description         string               `bson:"description"`
	Address             string               `bson:"address"`
	LocationDescription string               `bson:"locationDescription"`
	Location            *GeoJSON             `bson:"location"`
	CategoryID          primitive.ObjectID   `bson:"categoryId"`
	OwnerID             primitive.ObjectID   `bson:"ownerId"`
	Priority            HelpPointPriority    `bson:"priority"`
	Status              HelpPointStatus      `bson:"status"`
	Participants        []Participant        `bson:"participants"`
	Images              []string             `bson:"images"`
	Rating              float64              `bson:"rating"`
	ReviewCount         int                  `bson:"reviewCount"`
	VisitCount          int                  `bson:"visitCount"`
	IsFavorited         bool                 `bson:"isFavorited"`
	IsActive            bool                 `bson:"isActive"`
	Verified            bool                 `bson:"verified"`
	ContactPhone        string               `bson:"contactPhone,omitempty"`
	SavedBy             []primitive.ObjectID `bson:"savedBy"`
	CreatedAt           time.Time            `bson:"createdAt"`
	UpdatedAt           time.Time            `bson:"updatedAt"`

	// populated by $lookup, never written
	Category *Category `bson:"category,omitempty"`
	Owner    *User     `bson:"owner,omitempty"`
	Distance *float64  `bson:"distance,omitempty"`
}

// Participant returns the participant record of a user, if any
func (h *HelpPoint) Participant(userID primitive.ObjectID) (Participant, bool) {
	for _, p := range h.Participants {
		if p.UserID == userID {
			return p, true
		}
	}
	return Participant{}, false
}

// HelpPointPatch holds the owner-editable fields. Nil means unchanged.
type HelpPointPatch struct {
	Type                *HelpPointType
	Title               *string
	Description         *string
	Address             *string
	LocationDescription *string
	Location            *Location
	CategoryID          *primitive.ObjectID
	Priority            *HelpPointPriority
	ContactPhone        *string
	IsActive            *bool
}

// HelpPointFilter narrows help point listings
type HelpPointFilter struct {
	Near       *NearFilter
	CategoryID *primitive.ObjectID
	OwnerID    *primitive.ObjectID
	Type       *HelpPointType
	SavedBy    *primitive.ObjectID
}
