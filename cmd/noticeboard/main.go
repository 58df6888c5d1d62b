package main

import (
	"os"

	"github.com/iyouport-org/noticeboard/internal/cmd/noticeboard"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	if err := noticeboard.RootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// bindFlags exposes the persistent flags to viper under their own names.
func bindFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(flag *pflag.Flag) {
		if err := viper.BindPFlag(flag.Name, flag); err != nil {
			log.WithField("flag", flag.Name).Error(err)
		}
	})
}

func init() {
	bindFlags(noticeboard.RootCmd.PersistentFlags())
	log.SetReportCaller(true)
}
