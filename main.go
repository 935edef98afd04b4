package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/m-mizutani/ghrepo/pkg/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := cli.NewCommand()
	if err := app.Run(ctx, os.Args); err != nil {
		cli.Report(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}
