package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"

	"github.com/mark3labs/homeinfo/cmd"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := fang.Execute(ctx, cmd.GetRootCommand(version), fang.WithVersion(version))
	stop()
	if err != nil {
		os.Exit(1)
	}
}
