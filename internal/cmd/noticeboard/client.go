package noticeboard

import (
	"github.com/iyouport-org/noticeboard/pkg/board"
	"github.com/iyouport-org/noticeboard/pkg/config"
	"github.com/iyouport-org/noticeboard/pkg/core"
	"github.com/iyouport-org/noticeboard/pkg/noticeclient"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Serve the web board against a remote notice server",
	RunE:  clientExec,
}

func newAPI(conf *config.ConfigGo) board.API {
	return noticeclient.New(conf.Client.API, noticeclient.WithTimeout(conf.Client.Timeout))
}

func clientExec(cmd *cobra.Command, args []string) error {
	var web *core.BoardServer
	app := fx.New(
		fx.Provide(
			core.NewBoardServer,
			config.NewConfClient,
			newAPI,
		),
		fx.Logger(log.StandardLogger()),
		fx.Invoke(config.InitLog),
		fx.Populate(&web),
	)
	return run(app)
}
