package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/3leaps/magicprims/bindings/go/magic"
	"github.com/3leaps/magicprims/internal/batch"
)

var (
	workers int
	brief   bool
)

var fileCmd = &cobra.Command{
	Use:   "file PATH...",
	Short: "Describe the contents of files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFile,
}

var stdinCmd = &cobra.Command{
	Use:   "stdin",
	Short: "Describe data read from standard input",
	Args:  cobra.NoArgs,
	RunE:  runStdin,
}

func init() {
	fileCmd.Flags().IntVarP(&workers, "workers", "j", 0, "concurrent workers, each with its own cookie (default: number of CPUs)")
	fileCmd.Flags().BoolVarP(&brief, "brief", "b", false, "do not prepend filenames to output lines")
	stdinCmd.Flags().BoolVarP(&brief, "brief", "b", false, "do not prepend '/dev/stdin:' to the output line")
}

func runFile(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	results, err := batch.Detect(cmd.Context(), args, batch.Options{
		Config:  cfg,
		Workers: workers,
		Logger:  logger.Named("batch"),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			printLine(out, r.Path, "", r.Err)
			continue
		}
		printLine(out, r.Path, r.Description, nil)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be described", failed, len(results))
	}
	return nil
}

func runStdin(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	logger.Debug("read %d bytes from stdin", len(data))

	cookie, err := magic.OpenConfig(cfg)
	if err != nil {
		return err
	}
	defer cookie.Close()

	desc, ok := cookie.Buffer(data)
	if !ok {
		return cookie.Err()
	}
	printLine(cmd.OutOrStdout(), "/dev/stdin", desc, nil)
	return nil
}

func printLine(w io.Writer, path, desc string, err error) {
	if !brief {
		colorCyan.Fprintf(w, "%s:", path)
		fmt.Fprint(w, " ")
	}
	if err != nil {
		colorRed.Fprintln(w, err.Error())
		return
	}
	fmt.Fprintln(w, desc)
}
