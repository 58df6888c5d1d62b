package noticeboard

import (
	"context"

	"github.com/iyouport-org/noticeboard/internal/memsocket"
	"github.com/iyouport-org/noticeboard/pkg/board"
	"github.com/iyouport-org/noticeboard/pkg/config"
	"github.com/iyouport-org/noticeboard/pkg/core"
	"github.com/iyouport-org/noticeboard/pkg/noticeclient"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var StandaloneCmd = &cobra.Command{
	Use:   "standalone",
	Short: "Run the notice server and the web board in one process",
	RunE:  standaloneExec,
}

// newLocalServer serves notices on the in-process socket instead of a port.
func newLocalServer(lc fx.Lifecycle, conf *config.ConfigGo, ms *memsocket.MemSocket) (*core.Server, error) {
	server, err := core.New(conf)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("local notice server start")
			go server.Serve(ms.Listener())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
	return server, nil
}

func newLocalAPI(conf *config.ConfigGo, ms *memsocket.MemSocket) board.API {
	opts := []noticeclient.Option{noticeclient.WithTimeout(conf.Client.Timeout)}
	if conf.Client.API.String() == config.StandaloneAPI {
		opts = append(opts, noticeclient.WithDial(ms.DialAddr))
	}
	return noticeclient.New(conf.Client.API, opts...)
}

func standaloneExec(cmd *cobra.Command, args []string) error {
	var server *core.Server
	var web *core.BoardServer
	app := fx.New(
		fx.Provide(
			config.NewConfStandalone,
			memsocket.NewMemSocket,
			newLocalServer,
			newLocalAPI,
			core.NewBoardServer,
		),
		fx.Logger(log.StandardLogger()),
		fx.Invoke(config.InitLog),
		fx.Populate(&server, &web),
	)
	return run(app)
}
