package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"circles/pkg/cli"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnf("Error loading .env: %v", err)
	}

	config, err := cli.Parse(os.Args[1:], os.Getenv)
	if err != nil {
		log.Error(err)
		log.Print(cli.Usage)
		os.Exit(cli.ExitCode(err))
	}
	log.SetLevel(config.LogLevel)

	ctx, done := signal.NotifyContext(context.Background(), os.Interrupt)
	err = cli.Run(ctx, config, os.Stdout)
	done()
	if err != nil {
		log.Error(err)
		os.Exit(cli.ExitCode(err))
	}
}
