// Package cmd implements the commands of the configurator server binary.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Gorgui12/tekalis-configurator/internal/config"
	"github.com/Gorgui12/tekalis-configurator/pkg/logger"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "configurator",
	Short: "Recommend laptops that fit a shopper's needs",
	Long: "configurator serves ranked product recommendations over HTTP.\n" +
		"It scores every catalog item against the shopper's usage, budget,\n" +
		"brand and portability criteria and returns the best matches.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file path (default: built-in demo settings)")

	rootCmd.AddCommand(serveCmd(), migrateCmd(), seedCmd(), versionCommand())
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the file named by --config, or the built-in defaults
// when no file was given.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	l := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(l)
	return l
}
