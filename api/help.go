package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/frilo-app/frilo-api/consts"
	"github.com/frilo-app/frilo-api/helppoint"
	"github.com/frilo-app/frilo-api/schema"
)

type locationParams struct {
	Latitude    float64 `json:"latitude" binding:"latitude"`
	Longitude   float64 `json:"longitude" binding:"longitude"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
}

type createHelpPointResponse struct {
	Response
	CompletedAchievements []schema.Achievement `json:"completedAchievements"`
	NewAchievements       []schema.Achievement `json:"newAchievements"`
}

// createHelpPoint is the API to ask for or offer help at a location
func (s *Server) createHelpPoint(c *gin.Context) {
	var params struct {
		Type                schema.HelpPointType     `json:"type" binding:"required,oneof=request offer"`
		Title               string                   `json:"title" binding:"required,max=200"`
		Description         string                   `json:"description" binding:"max=5000"`
		Address             string                   `json:"address"`
		LocationDescription string                   `json:"locationDescription"`
		Location            *locationParams          `json:"location" binding:"required"`
		CategoryID          string                   `json:"categoryId" binding:"required,len=24,hexadecimal"`
		Priority            schema.HelpPointPriority `json:"priority" binding:"omitempty,oneof=low medium high"`
		Status              schema.HelpPointStatus   `json:"status"`
		ContactPhone        string                   `json:"contactPhone"`
		Images              []string                 `json:"images" binding:"max=10"`
	}
	if err := bindJSON(c, &params, consts.MaxInlineBodySize); err != nil {
		abortWithBindError(c, err)
		return
	}

	categoryID, err := primitive.ObjectIDFromHex(params.CategoryID)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidID, err)
		return
	}

	address := params.Address
	if address == "" {
		address = params.Location.Address
	}
	locationDescription := params.LocationDescription
	if locationDescription == "" {
		locationDescription = params.Location.Description
	}

	userID := requester(c)
	result, err := s.helpPoints.Create(userID, helppoint.Draft{
		Type:                params.Type,
		Title:               params.Title,
		Description:         params.Description,
		Address:             address,
		LocationDescription: locationDescription,
		Location: schema.Location{
			Latitude:  params.Location.Latitude,
			Longitude: params.Location.Longitude,
		},
		CategoryID:   categoryID,
		Priority:     params.Priority,
		Status:       params.Status,
		ContactPhone: params.ContactPhone,
		Images:       params.Images,
	})
	if shouldInterupt(err, c) {
		return
	}

	if !result.IsSuccess {
		abortWithEncoding(c, http.StatusInternalServerError, ErrorResponse{
			Code:    errorInternalServer.Code,
			Message: result.Message,
		})
		return
	}

	responseWithEncoding(c, http.StatusCreated, createHelpPointResponse{
		Response: Response{
			IsSuccess: true,
			Data:      helppoint.ToAppHelpPoint(*result.HelpPoint, userID),
		},
		CompletedAchievements: result.CompletedAchievements,
		NewAchievements:       result.NewAchievements,
	})
}

// listHelpPoints lists help points near a point, or the newest ones
func (s *Server) listHelpPoints(c *gin.Context) {
	var params struct {
		Latitude   *float64             `form:"latitude" binding:"omitempty,latitude"`
		Longitude  *float64             `form:"longitude" binding:"omitempty,longitude"`
		Radius     int                  `form:"radius" binding:"omitempty,min=1"`
		CategoryID string               `form:"categoryId" binding:"omitempty,len=24,hexadecimal"`
		Type       schema.HelpPointType `form:"type" binding:"omitempty,oneof=request offer"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithBindError(c, err)
		return
	}

	q := helppoint.Query{
		Latitude:  params.Latitude,
		Longitude: params.Longitude,
		Radius:    params.Radius,
	}
	if params.CategoryID != "" {
		id, err := primitive.ObjectIDFromHex(params.CategoryID)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidID, err)
			return
		}
		q.CategoryID = &id
	}
	if params.Type != "" {
		q.Type = &params.Type
	}

	points, err := s.helpPoints.FindAll(q)
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, helppoint.ToAppHelpPoints(points, requester(c)))
}

func (s *Server) userHelpPoints(c *gin.Context) {
	userID := requester(c)

	points, err := s.helpPoints.GetUserHelpPoints(userID)
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, helppoint.ToAppHelpPoints(points, userID))
}

func (s *Server) helpPointsCount(c *gin.Context) {
	count, err := s.helpPoints.GetHelpPointsCount(requester(c))
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, gin.H{"count": count})
}

// helpPointDetail returns one help point and counts the visit
func (s *Server) helpPointDetail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	hp, err := s.helpPoints.FindOne(id)
	if shouldInterupt(err, c) {
		return
	}

	s.helpPoints.RecordVisit(id)

	responseOK(c, helppoint.ToAppHelpPoint(*hp, requester(c)))
}

func (s *Server) updateHelpPoint(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var params struct {
		Type                *schema.HelpPointType     `json:"type" binding:"omitempty,oneof=request offer"`
		Title               *string                   `json:"title" binding:"omitempty,min=1,max=200"`
		Description         *string                   `json:"description" binding:"omitempty,max=5000"`
		Address             *string                   `json:"address"`
		LocationDescription *string                   `json:"locationDescription"`
		Location            *locationParams           `json:"location"`
		CategoryID          *string                   `json:"categoryId" binding:"omitempty,len=24,hexadecimal"`
		Priority            *schema.HelpPointPriority `json:"priority" binding:"omitempty,oneof=low medium high"`
		ContactPhone        *string                   `json:"contactPhone"`
		IsActive            *bool                     `json:"isActive"`
		Images              *[]string                 `json:"images" binding:"omitempty,max=10"`
	}
	if err := bindJSON(c, &params, consts.MaxInlineBodySize); err != nil {
		abortWithBindError(c, err)
		return
	}

	patch := schema.HelpPointPatch{
		Type:                params.Type,
		Title:               params.Title,
		Description:         params.Description,
		Address:             params.Address,
		LocationDescription: params.LocationDescription,
		Priority:            params.Priority,
		ContactPhone:        params.ContactPhone,
		IsActive:            params.IsActive,
	}
	if params.Location != nil {
		patch.Location = &schema.Location{
			Latitude:  params.Location.Latitude,
			Longitude: params.Location.Longitude,
		}
	}
	if params.CategoryID != nil {
		categoryID, err := primitive.ObjectIDFromHex(*params.CategoryID)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidID, err)
			return
		}
		patch.CategoryID = &categoryID
	}

	var images []string
	if params.Images != nil {
		images = append([]string{}, *params.Images...)
	}

	userID := requester(c)
	hp, err := s.helpPoints.Update(id, userID, patch, images)
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, helppoint.ToAppHelpPoint(*hp, userID))
}

func (s *Server) deleteHelpPoint(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if shouldInterupt(s.helpPoints.Remove(id, requester(c)), c) {
		return
	}

	responseMessage(c, "help point deleted")
}

func (s *Server) changeHelpPointStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var params struct {
		Status schema.HelpPointStatus `json:"status" binding:"required"`
	}
	if err := bindJSON(c, &params, consts.MaxJSONBodySize); err != nil {
		abortWithBindError(c, err)
		return
	}

	userID := requester(c)
	hp, err := s.helpPoints.ChangeStatus(id, params.Status, userID)
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, helppoint.ToAppHelpPoint(*hp, userID))
}

func (s *Server) applyForHelp(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	userID := requester(c)
	hp, err := s.helpPoints.ApplyForHelp(id, userID)
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, helppoint.ToAppHelpPoint(*hp, userID))
}

func (s *Server) withdrawFromHelp(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	userID := requester(c)
	hp, err := s.helpPoints.RemoveFromHelp(id, userID)
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, helppoint.ToAppHelpPoint(*hp, userID))
}

func (s *Server) updateParticipantStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	participantID, ok := paramID(c, "participantId")
	if !ok {
		return
	}

	var params struct {
		Status schema.ParticipantStatus `json:"status" binding:"required,oneof=accepted rejected"`
	}
	if err := bindJSON(c, &params, consts.MaxJSONBodySize); err != nil {
		abortWithBindError(c, err)
		return
	}

	userID := requester(c)
	hp, err := s.helpPoints.UpdateParticipantStatus(id, userID, participantID, params.Status)
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, helppoint.ToAppHelpPoint(*hp, userID))
}

// uploadHelpPointImage adds one multipart image to a help point
func (s *Server) uploadHelpPointImage(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	f, contentType, ok := readUpload(c, "image", helppoint.ImageRule)
	if !ok {
		return
	}
	defer f.Close()

	userID := requester(c)
	hp, err := s.helpPoints.AddImage(id, userID, contentType, f)
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, helppoint.ToAppHelpPoint(*hp, userID))
}

func (s *Server) toggleSavedHelpPoint(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	saved, err := s.helpPoints.ToggleSaved(id, requester(c))
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, gin.H{"saved": saved})
}
