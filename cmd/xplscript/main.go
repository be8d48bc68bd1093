package main

import (
	"os"

	"github.com/vippsas/xplscript/cmd/xplscript/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
