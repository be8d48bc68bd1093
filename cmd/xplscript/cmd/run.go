package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vippsas/xplscript"
	"github.com/vippsas/xplscript/xplhost"
)

var runCmd = &cobra.Command{
	Use:   "run [script-file]",
	Short: "Run a script file to completion, logging each interface call",
	Long: `run executes a script file to completion. <script-file> may be omitted
if the "script" field of xplscript.yaml (read from the current directory, or
from the given file's directory) names one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 1 {
			_ = cmd.Help()
			return errors.New("need at most one <script-file> argument")
		}

		manifestDir := "."
		if len(args) == 1 {
			manifestDir = filepath.Dir(args[0])
		}
		manifest, err := LoadManifest(filepath.Join(manifestDir, "xplscript.yaml"))
		if err != nil {
			return err
		}

		scriptPath := manifest.Script
		if len(args) == 1 {
			scriptPath = args[0]
		}
		if scriptPath == "" {
			_ = cmd.Help()
			return errors.New("need a <script-file> argument, or a \"script\" field in xplscript.yaml")
		}

		if manifest.LogLevel != "" {
			if lvl, err := logrus.ParseLevel(manifest.LogLevel); err == nil {
				logrus.SetLevel(lvl)
			}
		}

		runID, err := uuid.NewV4()
		if err != nil {
			return err
		}
		logger := logrus.WithField("run_id", runID.String())
		if len(manifest.Tags) > 0 {
			logger = logger.WithField("tags", manifest.Tags)
		}

		text, err := os.ReadFile(scriptPath)
		if err != nil {
			return err
		}

		ctx, err := xplscript.Open(xplhost.Demo(os.Stdout))
		if err != nil {
			return err
		}
		ctx.Load(string(text))

		logger.Infof("starting run of %s", scriptPath)
		for {
			before := ctx.Cursor()
			status := ctx.Step()
			logger.WithFields(logrus.Fields{
				"cursor": before,
				"status": status.String(),
			}).Debug("step")

			switch status {
			case xplscript.StatusOk:
				if ctx.AtEnd() {
					logger.Info("run completed")
					return nil
				}
			case xplscript.StatusSuspend:
				logger.Info("run yielded; resuming immediately (demo host has no external event source)")
			default:
				err := ctx.AsError(status)
				logger.WithError(err).Error("run failed")
				return err
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
