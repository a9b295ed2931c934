package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iudanet/docsync/internal/config"
)

var (
	v       = viper.New()
	cfgFile string
	initErr error
)

var rootCmd = &cobra.Command{
	Use:   "docsync",
	Short: "Replicated text documents with interactive conflict resolution",
	Long: `docsync keeps a local copy of text documents in sync with a docsync server.
When the same document was changed on two devices, the difference is shown
and you decide which version to keep, or whether to keep both.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initErr
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.config/docsync/client.yaml)")
	flags.String("server", "", "server URL")
	flags.String("db", "", "path to local database")
	flags.String("strategy", "", "conflict strategy: prompt, newer, left, right, concat, defer")
	flags.Bool("pick", false, "offer only 'use local' / 'use remote' on conflicts")
	flags.String("log-level", "", "log level: debug, info, warn, error")

	_ = v.BindPFlag("server_url", flags.Lookup("server"))
	_ = v.BindPFlag("db_path", flags.Lookup("db"))
	_ = v.BindPFlag("conflict.strategy", flags.Lookup("strategy"))
	_ = v.BindPFlag("conflict.pick_mode", flags.Lookup("pick"))
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
}

func initConfig() {
	config.SetClientDefaults(v)
	initErr = config.Init(v, cfgFile, "client")
}
