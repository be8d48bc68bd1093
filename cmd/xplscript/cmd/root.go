package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "xplscript",
		Short:        "xplscript",
		SilenceUsage: true,
		Long:         `CLI demo host for the xplscript embeddable command-script interpreter. See DESIGN.md.`,
	}

	logLevel string
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "logrus level: debug, info, warn, error")
	cobra.OnInitialize(func() {
		lvl, err := logrus.ParseLevel(logLevel)
		if err != nil {
			lvl = logrus.InfoLevel
		}
		logrus.SetLevel(lvl)
	})
	return rootCmd.Execute()
}
