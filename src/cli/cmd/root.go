package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sofmeright/gradle-summary/src/config"
	"github.com/sofmeright/gradle-summary/src/output"
)

var (
	cfgFile       string
	verbose       bool
	runnerTemp    string
	resultsDir    string
	cacheListener string

	cfg    *config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gradle-summary",
	Short: "Gradle build summary for CI job pages",
	Long: `Collects the build result records left by Gradle invocations in this CI job
and reports them as a job summary table and as plain text in the log.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = newLogger(verbose)

		// Skip config loading for commands that don't need it.
		if cmd.Name() == "version" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		// CLI flags override the config file.
		if resultsDir != "" {
			cfg.ResultsDir = resultsDir
		}
		if cacheListener != "" {
			cfg.CacheListener = cacheListener
		}

		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .gradle-summary.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&runnerTemp, "runner-temp", "", "run-scoped temp dir (default: $RUNNER_TEMP)")
	rootCmd.PersistentFlags().StringVar(&resultsDir, "results-dir", "", "results subdirectory of the runner temp dir (default: from config)")
	rootCmd.PersistentFlags().StringVar(&cacheListener, "cache-listener", "", "recorded cache activity JSON (default: from config)")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

// newLogger builds the diagnostic logger. Report output never goes through
// it; it only narrates what the command is doing.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		NoColor:    !output.UseColor(),
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
