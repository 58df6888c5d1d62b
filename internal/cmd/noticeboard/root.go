package noticeboard

import "github.com/spf13/cobra"

var RootCmd = &cobra.Command{
	Use:   "noticeboard",
	Short: "Notice board server and web client",
	Long:  "noticeboard serves a /notices REST resource and a web board that keeps a live view of it.",
}

func init() {
	RootCmd.PersistentFlags().String("config", "", "configuration file (default ./noticeboard.toml or /etc/noticeboard/noticeboard.toml)")
	RootCmd.AddCommand(ServerCmd)
	RootCmd.AddCommand(ClientCmd)
	RootCmd.AddCommand(StandaloneCmd)
}
