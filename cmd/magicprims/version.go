package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/3leaps/magicprims/bindings/go/magic"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the libmagic version and backend",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := magic.Available(); err != nil {
			return err
		}
		v := magic.Version()
		fmt.Fprintf(cmd.OutOrStdout(), "libmagic %d.%02d (%s backend)\n", v/100, v%100, magic.Backend())
		return nil
	},
}
