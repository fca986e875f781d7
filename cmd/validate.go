package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/zenquiz/internal/catalog"
)

var validateCmd = &cobra.Command{
	Use:   "validate <catalog.json>",
	Short: "Check a level catalog file against the schema and play rules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.LoadFile(args[0])
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (version %s, %d levels)\n", args[0], cat.Version(), cat.Len())
		return nil
	},
}
