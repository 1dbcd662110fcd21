package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frilo-app/frilo-api/consts"
	"github.com/frilo-app/frilo-api/schema"
)

type notificationView struct {
	schema.Notification
	IsRead bool `json:"isRead"`
}

func notificationViews(notifications []schema.Notification, viewer string) []notificationView {
	views := make([]notificationView, 0, len(notifications))
	for _, n := range notifications {
		views = append(views, notificationView{
			Notification: n,
			IsRead:       n.ReadBy[viewer],
		})
	}
	return views
}

// listNotifications returns the latest notifications of the requester. The
// legacy route names the user in the path, which must be the requester.
func (s *Server) listNotifications(c *gin.Context) {
	userID := requester(c)
	if other := c.Param("userId"); other != "" && other != userID.Hex() {
		abortWithEncoding(c, http.StatusForbidden, errorForbidden)
		return
	}

	notifications, err := s.notifications.GetNotifications(userID)
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, notificationViews(notifications, userID.Hex()))
}

func (s *Server) markNotificationRead(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if shouldInterupt(s.notifications.MarkNotificationAsRead(id, requester(c)), c) {
		return
	}

	responseMessage(c, "notification marked as read")
}

func (s *Server) markAllNotificationsRead(c *gin.Context) {
	count, err := s.notifications.MarkAllAsRead(requester(c))
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, gin.H{"updated": count})
}

func (s *Server) registerDeviceToken(c *gin.Context) {
	var params struct {
		Token    string `json:"token" binding:"required"`
		DeviceID string `json:"deviceId" binding:"required"`
		Platform string `json:"platform" binding:"omitempty,oneof=ios android web"`
	}
	if err := bindJSON(c, &params, consts.MaxJSONBodySize); err != nil {
		abortWithBindError(c, err)
		return
	}

	err := s.notifications.RegisterDeviceToken(requester(c), params.Token, params.DeviceID, params.Platform)
	if shouldInterupt(err, c) {
		return
	}

	responseMessage(c, "device token registered")
}

func (s *Server) removeDeviceToken(c *gin.Context) {
	if shouldInterupt(s.notifications.RemoveDeviceToken(requester(c), c.Param("deviceId")), c) {
		return
	}

	responseMessage(c, "device token removed")
}
