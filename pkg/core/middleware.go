package core

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iyouport-org/noticeboard/pkg/util"
	"github.com/iyouport-org/noticeboard/pkg/webapi"
	log "github.com/sirupsen/logrus"
)

// Logger logs one line per handled request.
func Logger(component string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		if log.IsLevelEnabled(log.TraceLevel) {
			log.WithFields(util.HeaderFields(c.Request.Header)).WithField("path", c.Request.URL.Path).Trace("request")
		}
		c.Next()
		entry := log.WithFields(log.Fields{
			"component": component,
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"duration":  time.Since(start),
		})
		if len(c.Errors) > 0 {
			entry.WithError(c.Errors.Last()).Warn("handled")
			return
		}
		entry.Debug("handled")
	}
}

func abort(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, &webapi.ErrorResponse{Error: err.Error()})
}
