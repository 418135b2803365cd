package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jingkaihe/skillindex/pkg/config"
	"github.com/jingkaihe/skillindex/pkg/logger"
	"github.com/jingkaihe/skillindex/pkg/presenter"
)

// flagKeys maps persistent flag names to their viper keys.
var flagKeys = map[string]string{
	"root":       "root",
	"output":     "output",
	"skill-file": "skill_file",
	"exclude":    "exclude",
	"extractor":  "extractor",
	"log-level":  "log_level",
	"log-format": "log_format",
	"quiet":      "quiet",
}

func newRootCmd(v *viper.Viper, p presenter.Presenter) *cobra.Command {
	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:   "skillindex",
		Short: "Generate a JSON catalog of skill directories",
		Long: `skillindex scans the immediate subdirectories of a skills root, reads the
frontmatter header of each SKILL.md and writes one consolidated JSON catalog.

Run without arguments it indexes the skills/ directory next to the directory
holding the binary and writes skills.json alongside it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			loaded, err := config.LoadFrom(v, config.BaseDir())
			if err != nil {
				return err
			}
			if err := logger.Configure(loaded.LogLevel, loaded.LogFormat); err != nil {
				return err
			}
			p.SetQuiet(loaded.Quiet)
			*cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd.Context(), *cfg, p)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("root", "", "Skills root directory (default: <base>/skills)")
	flags.String("output", "", "Catalog output file (default: <base>/skills.json)")
	flags.String("skill-file", "", "Metadata file name inside each skill directory (default: SKILL.md)")
	flags.StringSlice("exclude", nil, "Glob patterns of skill directory names to skip")
	flags.String("extractor", "", "Header field extractor: line or yaml (default: line)")
	flags.String("log-level", "", "Log level: debug, info, warn, error (default: warn)")
	flags.String("log-format", "", "Log format: fmt or json (default: fmt)")
	flags.BoolP("quiet", "q", false, "Suppress the summary line")

	bindFlags(v, flags)

	rootCmd.AddCommand(newListCmd(cfg, p))
	rootCmd.AddCommand(newCheckCmd(cfg, p))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// bindFlags binds every flag in flagKeys so that an explicitly set flag
// takes precedence over environment and config file values.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	for name, key := range flagKeys {
		if flag := flags.Lookup(name); flag != nil {
			_ = v.BindPFlag(key, flag)
		}
	}
}

func main() {
	config.Init()

	ctx := logger.WithLogger(context.Background(), logger.L)

	if err := newRootCmd(viper.GetViper(), presenter.Default()).ExecuteContext(ctx); err != nil {
		presenter.Error(err, "")
		os.Exit(1)
	}
}
