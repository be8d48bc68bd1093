package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/vippsas/xplscript"
	"github.com/vippsas/xplscript/xplhost"
)

// debugSnapshot is a plain struct so repr.Repr gets something readable to
// print instead of dumping unexported *Context fields.
type debugSnapshot struct {
	InterfaceNames []string
	Cursor         int
	AtEnd          bool
	IfDepth        uint
}

var debugCmd = &cobra.Command{
	Use:   "debug <script-file>",
	Short: "Load a script and dump the registered interface table plus a context snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("need exactly one <script-file> argument")
		}

		text, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		funcs := xplhost.Demo(os.Stdout)
		var names []string
		for _, f := range funcs {
			names = append(names, f.Name)
		}

		ctx, err := xplscript.Open(funcs)
		if err != nil {
			return err
		}
		ctx.Load(string(text))

		fmt.Println("registered interfaces:")
		repr.Println(names)

		snap := debugSnapshot{
			InterfaceNames: names,
			Cursor:         ctx.Cursor(),
			AtEnd:          ctx.AtEnd(),
			IfDepth:        ctx.IfDepth(),
		}
		fmt.Println("initial context snapshot:")
		repr.Println(snap)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(debugCmd)
}
