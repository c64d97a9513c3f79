package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/lprof/cmd/funcscan/cli"
	"github.com/ardnew/lprof/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		log.Error("run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
