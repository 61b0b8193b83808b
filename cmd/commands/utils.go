package commands

import (
	"fmt"
	"os"

	"snapshare/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("snapshare error", "err", err.Error())
	os.Exit(1)
}

func HandleHelp(_ []string) {
	fmt.Println(`snapshare

Usage:
  snapshare run <config.yml>   start the server
  snapshare version            print the version
  snapshare help               show this message`) //nolint
}
