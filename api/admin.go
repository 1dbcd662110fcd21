package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/frilo-app/frilo-api/background"
)

// adminReconcileCategories is an internal only api to recompute the help
// point counters of every category. The work runs on the background worker
// when it is enabled, and inline otherwise.
func (s *Server) adminReconcileCategories(c *gin.Context) {
	if s.background != nil {
		if _, err := s.background.SendTaskWithContext(c, &tasks.Signature{
			Name: background.ReconcileCategoriesTask,
		}); err != nil {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}

		c.JSON(http.StatusAccepted, gin.H{"result": "queued"})
		return
	}

	changed, err := s.store.ReconcileHelpPointsCounts()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK", "changed": changed})
}
