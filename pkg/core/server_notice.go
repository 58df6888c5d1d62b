package core

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/iyouport-org/noticeboard/pkg/model"
	"github.com/iyouport-org/noticeboard/pkg/webapi"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func noticeID(c *gin.Context) (uint, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		log.WithField("id", idStr).Debug(err)
		abort(c, http.StatusBadRequest, err)
		return 0, false
	}
	return uint(id), true
}

func (server *Server) bindNotice(c *gin.Context) (*webapi.NoticeRequest, bool) {
	request := &webapi.NoticeRequest{}
	if err := c.ShouldBindJSON(request); err != nil {
		abort(c, http.StatusBadRequest, err)
		return nil, false
	}
	if err := server.validate.Struct(request); err != nil {
		abort(c, http.StatusBadRequest, err)
		return nil, false
	}
	return request, true
}

// findNotice loads the notice or answers 404/500 itself.
func (server *Server) findNotice(c *gin.Context, id uint) (*model.Notice, bool) {
	notice := &model.Notice{}
	err := server.DB.DB.WithContext(c.Request.Context()).First(notice, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		abort(c, http.StatusNotFound, err)
		return nil, false
	}
	if err != nil {
		log.WithField("notice.id", id).Error(err)
		abort(c, http.StatusInternalServerError, err)
		return nil, false
	}
	return notice, true
}

func (server *Server) GetNotices(c *gin.Context) {
	var notices []model.Notice
	err := server.DB.DB.WithContext(c.Request.Context()).Order("id").Find(&notices).Error
	if err != nil {
		log.Error(err)
		abort(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, webapi.GetNotices(notices))
}

func (server *Server) GetNoticeOne(c *gin.Context) {
	id, ok := noticeID(c)
	if !ok {
		return
	}
	notice, ok := server.findNotice(c, id)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, webapi.GetNotice(*notice))
}

func (server *Server) PostNotice(c *gin.Context) {
	request, ok := server.bindNotice(c)
	if !ok {
		return
	}
	notice := model.Notice{
		Title:       request.Title,
		Description: request.Description,
	}
	if err := server.DB.DB.WithContext(c.Request.Context()).Create(&notice).Error; err != nil {
		log.Error(err)
		abort(c, http.StatusInternalServerError, err)
		return
	}
	log.WithField("notice.id", notice.ID).Info("notice created")
	c.JSON(http.StatusCreated, webapi.GetNotice(notice))
}

func (server *Server) PutNotice(c *gin.Context) {
	id, ok := noticeID(c)
	if !ok {
		return
	}
	request, ok := server.bindNotice(c)
	if !ok {
		return
	}
	notice, ok := server.findNotice(c, id)
	if !ok {
		return
	}
	notice.Title = request.Title
	notice.Description = request.Description
	if err := server.DB.DB.WithContext(c.Request.Context()).Save(notice).Error; err != nil {
		log.WithField("notice.id", id).Error(err)
		abort(c, http.StatusInternalServerError, err)
		return
	}
	log.WithField("notice.id", id).Info("notice updated")
	c.JSON(http.StatusOK, webapi.GetNotice(*notice))
}

func (server *Server) DeleteNotice(c *gin.Context) {
	id, ok := noticeID(c)
	if !ok {
		return
	}
	result := server.DB.DB.WithContext(c.Request.Context()).Delete(&model.Notice{}, id)
	if result.Error != nil {
		log.WithField("notice.id", id).Error(result.Error)
		abort(c, http.StatusInternalServerError, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		abort(c, http.StatusNotFound, gorm.ErrRecordNotFound)
		return
	}
	log.WithField("notice.id", id).Info("notice deleted")
	c.Status(http.StatusNoContent)
}
