package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/middlewares"
	"github.com/dennysmatos/mts20t1-ppp-nutrify-api/services"
)

type ProgressController struct {
	progress *services.ProgressService
}

func NewProgressController(progress *services.ProgressService) *ProgressController {
	return &ProgressController{progress: progress}
}

// GET /progress?date=YYYY-MM-DD&userId=<id>
func (ctl *ProgressController) GetDaily(c *gin.Context) {
	result, err := ctl.progress.GetDaily(
		c.GetString(middlewares.CtxUserRole),
		c.GetString(middlewares.CtxUserID),
		c.Query("userId"),
		c.Query("date"),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
