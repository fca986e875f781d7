package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/zenquiz/internal/catalog"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels in the active catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cat, err := catalog.Load(cfg.Catalog)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Catalog %s, %d correct answers to pass\n\n", cat.Version(), cat.PassThreshold())

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tQUESTIONS\tSUBTITLE")
		for _, l := range cat.Levels() {
			qs, err := cat.QuestionsForLevel(l.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", l.ID, l.Title, len(qs), l.Subtitle)
		}
		return w.Flush()
	},
}
