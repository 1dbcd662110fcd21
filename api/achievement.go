package api

import (
	"github.com/gin-gonic/gin"

	"github.com/frilo-app/frilo-api/consts"
)

func (s *Server) listAchievements(c *gin.Context) {
	achievements, err := s.achievements.GetAchievements()
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, achievements)
}

func (s *Server) userAchievements(c *gin.Context) {
	records, err := s.achievements.GetUserAchievements(requester(c))
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, records)
}

func (s *Server) userAchievementsSummary(c *gin.Context) {
	summary, err := s.achievements.GetUserAchievementsSummary(requester(c))
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, summary)
}

// updateAchievementProgress sets the progress of the requester. The path
// accepts an achievement code or id.
func (s *Server) updateAchievementProgress(c *gin.Context) {
	var params struct {
		Progress *int `json:"progress" binding:"required,min=0"`
	}
	if err := bindJSON(c, &params, consts.MaxJSONBodySize); err != nil {
		abortWithBindError(c, err)
		return
	}

	record, err := s.achievements.UpdateAchievementProgress(requester(c), c.Param("achievementId"), *params.Progress)
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, record)
}

func (s *Server) checkAchievements(c *gin.Context) {
	result, err := s.achievements.CheckAllAchievements(requester(c))
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, result)
}
