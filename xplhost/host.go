// Package xplhost is a small demonstration host for the xplscript demo CLI
// (cmd/xplscript): a handful of named interfaces exercising the common
// parameter shapes (unquoted/quoted strings, longs, boolean conditions) a
// real embedding host would register at Open time.
package xplhost

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vippsas/xplscript"
)

// Demo returns the interface table the demo CLI registers: print/echo for
// side-effecting output, env/eq/lt as conditions usable inside if/then.
func Demo(out io.Writer) []xplscript.Interface {
	if out == nil {
		out = os.Stdout
	}
	return []xplscript.Interface{
		{Name: "print", Callback: func(ctx *xplscript.Context) xplscript.Status {
			buf := make([]byte, 256)
			n, status := ctx.PopString(buf)
			if status != xplscript.StatusOk {
				return status
			}
			fmt.Fprintln(out, string(buf[:n]))
			return xplscript.StatusOk
		}},
		{Name: "echo", Callback: func(ctx *xplscript.Context) xplscript.Status {
			var parts []string
			for {
				status := ctx.HasParam()
				if status == xplscript.StatusNoParam {
					break
				}
				if status != xplscript.StatusOk {
					return status
				}
				buf := make([]byte, 256)
				n, status := ctx.PopString(buf)
				if status != xplscript.StatusOk {
					return status
				}
				parts = append(parts, string(buf[:n]))
			}
			fmt.Fprintln(out, strings.Join(parts, " "))
			return xplscript.StatusOk
		}},
		{Name: "env", Callback: func(ctx *xplscript.Context) xplscript.Status {
			buf := make([]byte, 256)
			n, status := ctx.PopString(buf)
			if status != xplscript.StatusOk {
				return status
			}
			ctx.PushBool(os.Getenv(string(buf[:n])) != "")
			return xplscript.StatusOk
		}},
		{Name: "eq", Callback: func(ctx *xplscript.Context) xplscript.Status {
			a, status := ctx.PopLong()
			if status != xplscript.StatusOk {
				return status
			}
			b, status := ctx.PopLong()
			if status != xplscript.StatusOk {
				return status
			}
			ctx.PushBool(a == b)
			return xplscript.StatusOk
		}},
		{Name: "lt", Callback: func(ctx *xplscript.Context) xplscript.Status {
			a, status := ctx.PopLong()
			if status != xplscript.StatusOk {
				return status
			}
			b, status := ctx.PopLong()
			if status != xplscript.StatusOk {
				return status
			}
			ctx.PushBool(a < b)
			return xplscript.StatusOk
		}},
	}
}
