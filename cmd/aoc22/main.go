// Command aoc22 solves the registered Advent of Code 2022 days from input
// files and renders the day 12 search as Graphviz DOT.
package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.WithError(err).Warn("ignoring .env")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp(log, os.Getenv)
	cmd := newRootCmd(a)
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)
	if err := execute(ctx, a, cmd); err != nil {
		log.WithError(err).Error("aoc22 failed")
		stop()
		os.Exit(1)
	}
}

// execute runs cmd and always closes a profile it started, including when
// the command fails.
func execute(ctx context.Context, a *app, cmd *cobra.Command) error {
	defer a.stopProfile()

	return cmd.ExecuteContext(ctx)
}
