package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/3leaps/magicprims/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch DIR...",
	Short: "Describe files as they are created or written in DIR",
	Long: `Watch directories (not recursively) and print a description for every
regular file that is created or written. Stop with Ctrl-C.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	w, err := watch.New(cfg, logger.Named("watch"))
	if err != nil {
		return err
	}
	defer w.Close()

	for _, dir := range args {
		if err := w.Add(dir); err != nil {
			return err
		}
		logger.Info("watching %s", dir)
	}

	out := cmd.OutOrStdout()
	err = w.Run(cmd.Context(), func(ev watch.Event) {
		colorYellow.Fprintf(out, "[%s] ", ev.Op)
		printLine(out, ev.Path, ev.Description, ev.Err)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
