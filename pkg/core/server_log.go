package core

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/iyouport-org/noticeboard/pkg/model"
	"github.com/iyouport-org/noticeboard/pkg/webapi"
	log "github.com/sirupsen/logrus"
)

const defaultLogLimit = 100

// GetLogs returns the newest persisted log records, newest first.
func (server *Server) GetLogs(c *gin.Context) {
	limit := defaultLogLimit
	if s, ok := c.GetQuery("limit"); ok {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			abort(c, http.StatusBadRequest, strconv.ErrSyntax)
			return
		}
		limit = n
	}
	var logs []model.Log
	err := server.DB.DB.WithContext(c.Request.Context()).Order("id desc").Limit(limit).Find(&logs).Error
	if err != nil {
		log.Error(err)
		abort(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, webapi.GetLogs(logs))
}
