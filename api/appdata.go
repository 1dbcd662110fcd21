package api

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/frilo-app/frilo-api/achievement"
	"github.com/frilo-app/frilo-api/helppoint"
	"github.com/frilo-app/frilo-api/schema"
)

type achievementsData struct {
	List             []schema.Achievement     `json:"list"`
	UserAchievements []schema.UserAchievement `json:"userAchievements"`
	Summary          *achievement.Summary     `json:"summary"`
}

type helpPointsData struct {
	All  []helppoint.AppHelpPoint `json:"all"`
	User []helppoint.AppHelpPoint `json:"user"`
}

type initialData struct {
	Achievements  achievementsData   `json:"achievements"`
	Markers       helpPointsData     `json:"markers"`
	Categories    []schema.Category  `json:"categories"`
	Notifications []notificationView `json:"notifications"`
}

// initialAppData loads everything the app shows on start in one request
func (s *Server) initialAppData(c *gin.Context) {
	userID := requester(c)

	var (
		data          initialData
		all, own      []schema.HelpPoint
		notifications []schema.Notification
		g             errgroup.Group
	)

	g.Go(func() (err error) {
		data.Achievements.List, err = s.achievements.GetAchievements()
		return
	})
	g.Go(func() (err error) {
		data.Achievements.UserAchievements, err = s.achievements.GetUserAchievements(userID)
		return
	})
	g.Go(func() (err error) {
		data.Achievements.Summary, err = s.achievements.GetUserAchievementsSummary(userID)
		return
	})
	g.Go(func() (err error) {
		all, err = s.helpPoints.FindAll(helppoint.Query{})
		return
	})
	g.Go(func() (err error) {
		own, err = s.helpPoints.GetUserHelpPoints(userID)
		return
	})
	g.Go(func() (err error) {
		data.Categories, err = s.store.ListCategories()
		return
	})
	g.Go(func() (err error) {
		notifications, err = s.notifications.GetNotifications(userID)
		return
	})

	if shouldInterupt(g.Wait(), c) {
		return
	}

	data.Markers.All = helppoint.ToAppHelpPoints(all, userID)
	data.Markers.User = helppoint.ToAppHelpPoints(own, userID)
	data.Notifications = notificationViews(notifications, userID.Hex())

	responseOK(c, data)
}
