package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/frilo-app/frilo-api/consts"
	"github.com/frilo-app/frilo-api/external/objectstore"
	"github.com/frilo-app/frilo-api/helppoint"
	"github.com/frilo-app/frilo-api/schema"
)

func userStoragePrefix(id primitive.ObjectID) string {
	return fmt.Sprintf("%s/%s", consts.UsersEntity, id.Hex())
}

// publicUser is what other users may see of an account
type publicUser struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	AvatarURL string     `json:"avatarUrl"`
	Bio       string     `json:"bio,omitempty"`
	Points    int        `json:"points"`
	BadgeIDs  []string   `json:"badgeIds"`
	IsOnline  bool       `json:"isOnline"`
	LastSeen  *time.Time `json:"lastSeen,omitempty"`
}

func toPublicUser(u *schema.User) publicUser {
	badges := make([]string, 0, len(u.BadgeIDs))
	for _, id := range u.BadgeIDs {
		badges = append(badges, id.Hex())
	}
	return publicUser{
		ID:        u.ID.Hex(),
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		Bio:       u.Bio,
		Points:    u.Points,
		BadgeIDs:  badges,
		IsOnline:  u.IsOnline,
		LastSeen:  u.LastSeen,
	}
}

// accountDetail is the API to query the account of the requester
func (s *Server) accountDetail(c *gin.Context) {
	u, err := s.store.GetUser(requester(c))
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, u)
}

// accountUpdate changes the profile of the requester
func (s *Server) accountUpdate(c *gin.Context) {
	var params struct {
		Name     *string `json:"name" binding:"omitempty,max=100"`
		Email    *string `json:"email" binding:"omitempty,email"`
		Bio      *string `json:"bio" binding:"omitempty,max=500"`
		Language *string `json:"language" binding:"omitempty,max=10"`
	}
	if err := bindJSON(c, &params, consts.MaxJSONBodySize); err != nil {
		abortWithBindError(c, err)
		return
	}

	if params.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*params.Email))
		params.Email = &email
	}

	u, err := s.store.UpdateUser(requester(c), schema.UserPatch{
		Name:     params.Name,
		Email:    params.Email,
		Bio:      params.Bio,
		Language: params.Language,
	})
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, u)
}

// accountDelete removes the account of the requester and its stored files
func (s *Server) accountDelete(c *gin.Context) {
	userID := requester(c)

	if err := s.objects.DeletePrefix(c, userStoragePrefix(userID)); err != nil {
		log.WithError(err).WithField("user_id", userID.Hex()).Warn("fail to delete user files")
	}

	if shouldInterupt(s.store.DeleteUser(userID), c) {
		return
	}

	responseMessage(c, "account deleted")
}

func (s *Server) accountActivity(c *gin.Context) {
	userID := requester(c)

	activity, err := s.helpPoints.GetUserActivity(userID)
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, gin.H{
		"requests": helppoint.ToAppHelpPoints(activity.Requests, userID),
		"offers":   helppoint.ToAppHelpPoints(activity.Offers, userID),
		"saved":    helppoint.ToAppHelpPoints(activity.Saved, userID),
	})
}

// avatarRule limits profile pictures
var avatarRule = objectstore.Rule{Types: consts.AvatarTypes, MaxBytes: consts.MaxAvatarSize}

// accountUploadAvatar replaces the avatar of the requester
func (s *Server) accountUploadAvatar(c *gin.Context) {
	userID := requester(c)

	f, contentType, ok := readUpload(c, "avatar", avatarRule)
	if !ok {
		return
	}
	defer f.Close()

	u, err := s.store.GetUser(userID)
	if shouldInterupt(err, c) {
		return
	}

	prefix := userStoragePrefix(userID) + "/avatar"
	key := objectstore.NewKey(prefix, contentType)
	url, err := s.objects.Upload(c, key, contentType, f)
	if shouldInterupt(err, c) {
		return
	}

	if u.AvatarURL != "" {
		if err := s.objects.DeleteURL(c, prefix, u.AvatarURL); err != nil {
			log.WithError(err).WithField("user_id", userID.Hex()).Warn("fail to delete previous avatar")
		}
	}

	u, err = s.store.UpdateUser(userID, schema.UserPatch{AvatarURL: &url})
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, u)
}

// userDetail is the public profile of any user
func (s *Server) userDetail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	u, err := s.store.GetUser(id)
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, toPublicUser(u))
}
