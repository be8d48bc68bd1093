package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vippsas/xplscript"
	"github.com/vippsas/xplscript/internal/scriptfs"
	"github.com/vippsas/xplscript/xplhost"
)

var lintCmd = &cobra.Command{
	Use:   "lint <script-file-or-dir>...",
	Short: "Run each script file to completion against a discard host, reporting failures",
	Long: `lint exercises every given script file to the end, driving straight
through any yield, against the demo interface table with output discarded, the way a host would
smoke-test a batch of scripts before deploying them. Each file gets its own
*Context, run concurrently, mirroring the rule that a Context is never
shared across goroutines. A directory argument is expanded to every *.xpl
file directly inside it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			_ = cmd.Help()
			return errors.New("need at least one <script-file-or-dir> argument")
		}

		paths, err := expandLintArgs(args)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return errors.New("no *.xpl files found")
		}

		var g errgroup.Group
		results := make([]error, len(paths))
		for i, path := range paths {
			i, path := i, path
			g.Go(func() error {
				results[i] = lintOne(path)
				return nil
			})
		}
		_ = g.Wait()

		var failed int
		for i, path := range paths {
			if results[i] != nil {
				failed++
				fmt.Printf("%s: FAIL: %v\n", path, results[i])
			} else {
				fmt.Printf("%s: ok\n", path)
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d script(s) failed", failed, len(paths))
		}
		return nil
	},
}

// expandLintArgs turns a mix of file and directory arguments into a flat
// list of script paths, expanding directories via scriptfs.Discover.
func expandLintArgs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		found, err := scriptfs.Discover(arg)
		if err != nil {
			return nil, err
		}
		paths = append(paths, found.Paths()...)
	}
	return paths, nil
}

func lintOne(path string) error {
	text, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	ctx, err := xplscript.Open(xplhost.Demo(io.Discard))
	if err != nil {
		return err
	}
	ctx.Load(string(text))

	for {
		status := ctx.Run()
		if status == xplscript.StatusOk {
			return nil
		}
		if status == xplscript.StatusSuspend {
			continue // a lint pass drives straight through any yield
		}
		return ctx.AsError(status)
	}
}

func init() {
	rootCmd.AddCommand(lintCmd)
}
