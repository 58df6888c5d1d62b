package core

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/iyouport-org/noticeboard/pkg/config"
	"github.com/iyouport-org/noticeboard/pkg/model"
	log "github.com/sirupsen/logrus"
	"go.uber.org/fx"
)

// Server serves the /notices REST resource from the configured database.
type Server struct {
	*config.ConfigGo
	validate *validator.Validate
	engine   *gin.Engine
	http     *http.Server
}

// New migrates the schema and builds the router.
func New(conf *config.ConfigGo) (*Server, error) {
	if err := conf.DB.DB.AutoMigrate(&model.Notice{}); err != nil {
		log.Error(err)
		return nil, err
	}
	gin.SetMode(conf.Server.Mode)
	server := &Server{
		ConfigGo: conf,
		validate: config.NewValidator(),
	}
	server.engine = server.router()
	server.http = &http.Server{
		Addr:    fmt.Sprintf(":%d", conf.Server.Port),
		Handler: server.engine,
	}
	return server, nil
}

// NewServer ties the server's listener to the fx lifecycle.
func NewServer(lc fx.Lifecycle, conf *config.ConfigGo) (*Server, error) {
	server, err := New(conf)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", server.http.Addr)
			if err != nil {
				log.WithField("addr", server.http.Addr).Error(err)
				return err
			}
			log.WithField("addr", ln.Addr().String()).Info("notice server start")
			go server.Serve(ln)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("notice server shutdown")
			return server.http.Shutdown(ctx)
		},
	})
	return server, nil
}

func (server *Server) router() *gin.Engine {
	r := gin.New()
	r.Use(Logger("notice server"), gin.Recovery(), gzip.Gzip(gzip.DefaultCompression))
	notices := r.Group("/notices")
	notices.GET("", server.GetNotices)
	notices.POST("", server.PostNotice)
	notices.GET("/:id", server.GetNoticeOne)
	notices.PUT("/:id", server.PutNotice)
	notices.DELETE("/:id", server.DeleteNotice)
	if server.Log.Persist {
		r.GET("/logs", server.GetLogs)
	}
	return r
}

func (server *Server) Handler() http.Handler {
	return server.engine
}

// Serve blocks serving on ln until the server is shut down.
func (server *Server) Serve(ln net.Listener) error {
	err := server.http.Serve(ln)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error(err)
		return err
	}
	return nil
}

func (server *Server) Shutdown(ctx context.Context) error {
	return server.http.Shutdown(ctx)
}
