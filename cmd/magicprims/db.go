package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/3leaps/magicprims/bindings/go/magic"
)

var checkCmd = &cobra.Command{
	Use:   "check [DATABASE]",
	Short: "Check the validity of magic database entries",
	Long:  "Check the validity of entries in the named magic source files, or the default database when none is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDatabase(cmd, args, "check", (*magic.Cookie).Check)
	},
}

var compileCmd = &cobra.Command{
	Use:   "compile DATABASE",
	Short: "Compile magic source files into DATABASE.mgc in the current directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDatabase(cmd, args, "compile", (*magic.Cookie).Compile)
	},
}

var listCmd = &cobra.Command{
	Use:   "list [DATABASE]",
	Short: "Print the entries of a magic database",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDatabase(cmd, args, "list", (*magic.Cookie).List)
	},
}

// runDatabase runs one of the database pass-throughs on a fresh cookie.
// The database is not loaded first; libmagic reads it itself.
func runDatabase(cmd *cobra.Command, args []string, op string, call func(*magic.Cookie, string) bool) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	db := cfg.Database
	if len(args) == 1 {
		db = args[0]
	}

	cookie, err := magic.Open(cfg.Flags...)
	if err != nil {
		return err
	}
	defer cookie.Close()

	logger.Debug("%s %q", op, db)
	if !call(cookie, db) {
		if err := cookie.Err(); err != nil {
			return err
		}
		return fmt.Errorf("%s %s failed", op, db)
	}

	if op != "list" {
		name := db
		if name == "" {
			name = "default database"
		}
		colorGreen.Fprintf(cmd.OutOrStdout(), "%s: %s ok\n", name, op)
	}
	return nil
}
