package core

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"github.com/iyouport-org/noticeboard/pkg/board"
	"github.com/iyouport-org/noticeboard/pkg/config"
	"github.com/iyouport-org/noticeboard/pkg/view"
	log "github.com/sirupsen/logrus"
	"go.uber.org/fx"
)

const (
	sessionName    = "noticeboard"
	sessionBoardID = "boardID"
	sessionToken   = "token"
	boardTTL       = 24 * time.Hour
	sweepInterval  = 10 * time.Minute
	boardKey       = "board"
	tokenKey       = "token"
)

// BoardServer is the web front end: every browser session owns a board
// that talks to the notices API.
type BoardServer struct {
	*config.ConfigGo
	api     board.API
	boards  *BoardRegistry
	options []board.Option
	now     func() time.Time
	engine  *gin.Engine
	http    *http.Server
}

func NewBoardWeb(conf *config.ConfigGo, api board.API, options ...board.Option) *BoardServer {
	gin.SetMode(conf.Client.Mode)
	server := &BoardServer{
		ConfigGo: conf,
		api:      api,
		boards:   NewBoardRegistry(),
		options:  options,
		now:      time.Now,
	}
	server.engine = server.router()
	server.http = &http.Server{
		Addr:    fmt.Sprintf(":%d", conf.Client.Port),
		Handler: server.engine,
	}
	return server
}

// NewBoardServer ties the web front end to the fx lifecycle.
func NewBoardServer(lc fx.Lifecycle, conf *config.ConfigGo, api board.API) *BoardServer {
	server := NewBoardWeb(conf, api)
	stop := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", server.http.Addr)
			if err != nil {
				log.WithField("addr", server.http.Addr).Error(err)
				return err
			}
			log.WithFields(log.Fields{
				"addr": ln.Addr().String(),
				"api":  conf.Client.API.String(),
			}).Info("board start")
			go func() {
				if err := server.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error(err)
				}
			}()
			go server.sweep(stop)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("board shutdown")
			close(stop)
			return server.http.Shutdown(ctx)
		},
	})
	return server
}

func (server *BoardServer) sweep(stop <-chan struct{}) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if n := server.boards.Sweep(server.now(), boardTTL); n > 0 {
				log.WithField("count", n).Debug("idle boards dropped")
			}
		case <-stop:
			return
		}
	}
}

func (server *BoardServer) router() *gin.Engine {
	store := cookie.NewStore(server.Client.Secret)
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(boardTTL / time.Second),
		HttpOnly: true,
	})
	r := gin.New()
	r.Use(Logger("board"), gin.Recovery(), gzip.Gzip(gzip.DefaultCompression))
	r.Use(static.Serve(board.PathStatic, assetFileSystem()))

	pages := r.Group("/", sessions.Sessions(sessionName, store), server.attachBoard)
	pages.GET(board.PathHome, server.ServeBoard)
	pages.GET(board.PathSearch, server.Search)
	pages.GET(board.PathClearSearch, server.ClearSearch)
	pages.POST(board.PathRefresh, checkToken, server.Refresh)
	pages.POST(board.PathSubmit, checkToken, server.Submit)
	pages.POST(board.PathCancel, checkToken, server.Cancel)
	pages.POST(board.PathEdit+":id", checkToken, server.Edit)
	pages.GET(board.PathDelete+":id", server.ConfirmDelete)
	pages.POST(board.PathDelete+":id", checkToken, server.Delete)
	return r
}

func (server *BoardServer) Handler() http.Handler {
	return server.engine
}

// attachBoard finds the session's board, creating and loading a new one
// for a new session, and makes sure the session has a form token.
func (server *BoardServer) attachBoard(c *gin.Context) {
	session := sessions.Default(c)
	token, _ := session.Get(sessionToken).(string)
	id, _ := session.Get(sessionBoardID).(string)
	b, ok := server.boards.Get(id, server.now())
	if ok && token != "" {
		c.Set(boardKey, b)
		c.Set(tokenKey, token)
		return
	}
	if !ok {
		key, err := uuid.NewV4()
		if err != nil {
			log.Error(err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		id = key.String()
		b = board.New(server.api, server.options...)
		b.Dispatch(c.Request.Context(), board.Load{})
		server.boards.Put(id, b, server.now())
		session.Set(sessionBoardID, id)
		log.WithField("board", id).Debug("board created")
	}
	if token == "" {
		key, err := uuid.NewV4()
		if err != nil {
			log.Error(err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		token = key.String()
		session.Set(sessionToken, token)
	}
	if err := session.Save(); err != nil {
		log.Error(err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Set(boardKey, b)
	c.Set(tokenKey, token)
}

// checkToken rejects posts that do not carry the session's form token.
func checkToken(c *gin.Context) {
	token := c.MustGet(tokenKey).(string)
	if subtle.ConstantTimeCompare([]byte(c.PostForm(board.TokenField)), []byte(token)) != 1 {
		log.WithField("path", c.Request.URL.Path).Warn("form token mismatch")
		c.AbortWithStatus(http.StatusForbidden)
	}
}

func boardOf(c *gin.Context) *board.Board {
	return c.MustGet(boardKey).(*board.Board)
}

func render(c *gin.Context, page *view.Element) {
	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := view.Document(c.Writer, page); err != nil {
		log.Error(err)
	}
}

func back(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, board.PathHome)
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.WithField("id", c.Param("id")).Debug(err)
		c.AbortWithStatus(http.StatusBadRequest)
		return 0, false
	}
	return uint(id), true
}

func (server *BoardServer) ServeBoard(c *gin.Context) {
	b := boardOf(c)
	render(c, board.Page(b.State(), board.PageOptions{Now: b.Now(), Token: c.GetString(tokenKey)}))
}

func (server *BoardServer) Search(c *gin.Context) {
	boardOf(c).Dispatch(c.Request.Context(), board.Search{Term: c.Query("q")})
	back(c)
}

func (server *BoardServer) ClearSearch(c *gin.Context) {
	boardOf(c).Dispatch(c.Request.Context(), board.ClearSearch{})
	back(c)
}

func (server *BoardServer) Refresh(c *gin.Context) {
	boardOf(c).Dispatch(c.Request.Context(), board.Refresh{})
	back(c)
}

func (server *BoardServer) Submit(c *gin.Context) {
	boardOf(c).Dispatch(c.Request.Context(), board.Submit{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	})
	back(c)
}

func (server *BoardServer) Cancel(c *gin.Context) {
	boardOf(c).Dispatch(c.Request.Context(), board.Cancel{})
	back(c)
}

func (server *BoardServer) Edit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	boardOf(c).Dispatch(c.Request.Context(), board.Edit{ID: id})
	back(c)
}

// ConfirmDelete renders the board with the confirmation dialog open.
func (server *BoardServer) ConfirmDelete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	b := boardOf(c)
	render(c, board.Page(b.State(), board.PageOptions{
		Now:           b.Now(),
		Token:         c.GetString(tokenKey),
		ConfirmDelete: &id,
	}))
}

func (server *BoardServer) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	boardOf(c).Dispatch(c.Request.Context(), board.Delete{
		ID:      id,
		Confirm: board.Answer(c.PostForm("confirm") == "yes"),
	})
	back(c)
}
