package noticeboard

import (
	"context"

	"github.com/iyouport-org/noticeboard/pkg/config"
	"github.com/iyouport-org/noticeboard/pkg/core"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var ServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Serve the /notices REST resource",
	RunE:  serverExec,
}

func serverExec(cmd *cobra.Command, args []string) error {
	var server *core.Server
	app := fx.New(
		fx.Provide(
			core.NewServer,
			config.NewConfServer,
		),
		fx.Logger(log.StandardLogger()),
		fx.Invoke(config.InitLog),
		fx.Populate(&server),
	)
	return run(app)
}

// run starts app and blocks until it is signalled to stop.
func run(app *fx.App) error {
	ctx, cancel := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer cancel()
	if err := app.Start(ctx); err != nil {
		log.Error(err)
		return err
	}
	sig := <-app.Done()
	log.WithField("signal", sig.String()).Info("stopping")
	stopCtx, stopCancel := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error(err)
		return err
	}
	return nil
}
