package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/next-trace/scg-failure/exit"
	"github.com/next-trace/scg-failure/internal/config"
)

func newRootCmd() *cobra.Command {
	v := viper.New()

	var cfgFile string

	root := &cobra.Command{
		Use:   "scg-demo",
		Short: "Demonstrates error context wrapping and exit reporting",
		// Errors are reported once, by exit.LogErrors in main.
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}

			mode, err := cfg.ColorMode()
			if err != nil {
				return err
			}

			exit.SetDefault(exit.New(exit.WithColor(mode)))
			logrus.SetOutput(cmd.ErrOrStderr())
			logrus.SetLevel(cfg.LogLevel())
			logrus.WithFields(logrus.Fields{
				"color": mode.String(),
				"file":  v.ConfigFileUsed(),
			}).Debug("config loaded")

			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./scg.yaml when present)")
	root.PersistentFlags().String("color", "auto", "color the error prefix: auto, always or never")
	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	_ = v.BindPFlag("color", root.PersistentFlags().Lookup("color"))
	_ = v.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))

	root.SetOut(os.Stdout)
	root.AddCommand(newCatCmd(), newPortCmd(), newEnvCmd())

	return root
}
