package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/zenquiz/internal/config"
)

// v holds configuration for the whole command tree. Flags are bound to it
// in init so they take precedence over env vars and the config file.
var v = config.NewViper()

var rootCmd = &cobra.Command{
	Use:   "zenquiz",
	Short: "A quiet multiple-choice quiz for the terminal",
	Long: `Zen Quiz walks you through short levels of multiple-choice questions.
Pass a level to unlock the next; pass them all to reach stillness.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pflags := rootCmd.PersistentFlags()
	pflags.String("config", "", "Path to a YAML config file (default: ./zenquiz.yaml, then the user config dir)")
	pflags.String("catalog", "", "Path to a level catalog JSON file (overrides ZENQUIZ_CATALOG)")

	flags := rootCmd.Flags()
	flags.String("name", "", "Player name to prefill on the welcome screen")
	flags.Duration("auto-advance", 0, "Delay before a correct answer moves on (e.g. 1.5s)")
	flags.String("log-level", "", "Log level: debug, info, warn or error")

	cobra.CheckErr(v.BindPFlag("catalog", pflags.Lookup("catalog")))
	cobra.CheckErr(v.BindPFlag("default_name", flags.Lookup("name")))
	cobra.CheckErr(v.BindPFlag("auto_advance", flags.Lookup("auto-advance")))
	cobra.CheckErr(v.BindPFlag("log.level", flags.Lookup("log-level")))

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves configuration from defaults, the config file, env
// vars and flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(v, path)
}
