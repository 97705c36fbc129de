package main

import (
	"os"

	"github.com/vfg2006/ad-spend-sync/cmd/adspend/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
